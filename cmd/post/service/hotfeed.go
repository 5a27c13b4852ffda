package service

import (
	"context"

	"Nestling.com/cmd/model"
	"Nestling.com/cmd/post/dal/db"
	"Nestling.com/pkg/cache"
	"Nestling.com/pkg/constants"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type HotFeedService struct {
	ctx context.Context
}

func NewHotFeedService(ctx context.Context) *HotFeedService {
	return &HotFeedService{ctx: ctx}
}

// GetHotFeed 全站点赞榜，匿名访客和冷启动用户的入口
func (v *HotFeedService) GetHotFeed(limit int64) ([]*model.PostSummary, error) {
	if limit <= 0 || limit > constants.MaxPageSize {
		limit = constants.DefaultFeedSize
	}

	if cached, err := cache.GetHotFeed(v.ctx); err != nil {
		hlog.Warnf("hot feed cache read failed: %v", err)
	} else if cached != nil {
		if int64(len(cached)) > limit {
			return cached[:limit], nil
		}
		return cached, nil
	}

	posts, err := db.ListHotPosts(v.ctx, constants.MaxPageSize)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListHotPosts failed")
	}
	if err := cache.SetHotFeed(v.ctx, posts); err != nil {
		hlog.Warnf("hot feed cache write failed: %v", err)
	}
	if int64(len(posts)) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}
