package redis

import (
	"context"
	"time"

	"Nestling.com/config"
	"Nestling.com/pkg/constants"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

var redisDBActivation *redis.Client

func Load() {
	redisDBActivation = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       1,
	})
	if _, err := redisDBActivation.Ping(context.Background()).Result(); err != nil {
		hlog.Info("redisDBActivation", err)
	}
}

func activationKey(email string) string {
	return "activation:" + email
}

// StoreActivationCode 激活码与账户同寿命，一小时过期
func StoreActivationCode(ctx context.Context, email, code string) error {
	return redisDBActivation.Set(ctx, activationKey(email),
		code, time.Duration(constants.ActivationExpiry)*time.Second).Err()
}

// CheckActivationCode 返回false表示过期或不匹配
func CheckActivationCode(ctx context.Context, email, code string) (bool, error) {
	val, err := redisDBActivation.Get(ctx, activationKey(email)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return val == code, nil
}

func DeleteActivationCode(ctx context.Context, email string) {
	if err := redisDBActivation.Del(ctx, activationKey(email)).Err(); err != nil {
		hlog.Warnf("delete activation code failed: %v", err)
	}
}
