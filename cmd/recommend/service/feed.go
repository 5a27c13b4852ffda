package service

import (
	"context"

	"Nestling.com/cmd/model"
	postdb "Nestling.com/cmd/post/dal/db"
	userdb "Nestling.com/cmd/user/dal/db"
	"Nestling.com/pkg/constants"
	"github.com/pkg/errors"
)

type FeedService struct {
	ctx    context.Context
	engine *Engine
}

func NewFeedService(ctx context.Context, engine *Engine) *FeedService {
	return &FeedService{ctx: ctx, engine: engine}
}

// GetFeed 按推荐引擎的顺序取出帖子本体
func (v *FeedService) GetFeed(userId int64, limit int64) ([]*model.Post, error) {
	if limit <= 0 || limit > constants.MaxPageSize {
		limit = constants.DefaultFeedSize
	}

	profile, exist, err := userdb.GetProfileByUserId(v.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetProfileByUserId failed")
	}
	var profileId int64
	if exist {
		profileId = profile.ProfileId
	}

	ids, err := v.engine.RecommendPosts(v.ctx, profileId, int(limit))
	if err != nil {
		return nil, errors.WithMessage(err, "engine.RecommendPosts failed")
	}
	posts, err := postdb.ListPostsByIds(v.ctx, ids)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListPostsByIds failed")
	}

	byId := make(map[int64]*model.Post, len(posts))
	for _, p := range posts {
		byId[p.PostId] = p
	}
	ordered := make([]*model.Post, 0, len(posts))
	for _, id := range ids {
		if p, ok := byId[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}
