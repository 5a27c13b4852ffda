package cache

import (
	"context"
	"encoding/json"
	"time"

	"Nestling.com/cmd/model"
	"Nestling.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

var feedClient *redis.Client

const (
	hotFeedKey = "feed:hot"
	hotFeedTTL = 5 * time.Minute
)

func Load() {
	feedClient = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       0,
	})
	if _, err := feedClient.Ping(context.Background()).Result(); err != nil {
		hlog.Info("feedClient", err)
	}
}

// GetHotFeed 缓存未命中返回nil切片而非错误
func GetHotFeed(ctx context.Context) ([]*model.PostSummary, error) {
	val, err := feedClient.Get(ctx, hotFeedKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var posts []*model.PostSummary
	if err := json.Unmarshal([]byte(val), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func SetHotFeed(ctx context.Context, posts []*model.PostSummary) error {
	b, err := json.Marshal(posts)
	if err != nil {
		return err
	}
	return feedClient.Set(ctx, hotFeedKey, b, hotFeedTTL).Err()
}

// InvalidateHotFeed 帖子增删后失效热榜
func InvalidateHotFeed(ctx context.Context) {
	if err := feedClient.Del(ctx, hotFeedKey).Err(); err != nil {
		hlog.Warnf("invalidate hot feed failed: %v", err)
	}
}
