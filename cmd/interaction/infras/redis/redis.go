package redis

import (
	"context"
	"fmt"
	"time"

	"Nestling.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

var (
	redisDBInteraction *redis.Client
	rs                 *redsync.Redsync
)

func Load() {
	redisDBInteraction = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       2,
	})
	if _, err := redisDBInteraction.Ping(context.Background()).Result(); err != nil {
		hlog.Info("redisDBInteraction", err)
	}
	rs = redsync.New(goredis.NewPool(redisDBInteraction))
}

// NewToggleMutex 同一用户对同一目标的切换串行化，防止连点产生双行
func NewToggleMutex(name string) *redsync.Mutex {
	return rs.NewMutex("toggle:"+name, redsync.WithExpiry(5*time.Second), redsync.WithTries(3))
}

// IncrCommentCount 一分钟窗口内的发评计数
func IncrCommentCount(ctx context.Context, profileId int64) (int64, error) {
	key := fmt.Sprintf("comment:rate:%d:%d", profileId, time.Now().Unix()/60)
	count, err := redisDBInteraction.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		redisDBInteraction.Expire(ctx, key, time.Minute)
	}
	return count, nil
}
