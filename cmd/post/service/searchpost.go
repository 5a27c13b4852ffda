package service

import (
	"context"
	"strings"

	"Nestling.com/cmd/model"
	"Nestling.com/cmd/post/dal/db"
	"Nestling.com/cmd/post/infras/es"
	"Nestling.com/pkg/constants"
	"Nestling.com/pkg/errno"
	"github.com/pkg/errors"
)

type SearchPostService struct {
	ctx context.Context
}

func NewSearchPostService(ctx context.Context) *SearchPostService {
	return &SearchPostService{ctx: ctx}
}

// SearchPosts 先查索引拿id，再回表过滤掉已删除的帖子
func (v *SearchPostService) SearchPosts(keyword string, offset, limit int64) ([]*model.Post, int64, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, 0, errno.ParamErr.WithMessage("keyword is required")
	}
	if limit <= 0 || limit > constants.MaxPageSize {
		limit = constants.DefaultFeedSize
	}
	if offset < 0 {
		offset = 0
	}

	docs, total, err := es.SearchPosts(v.ctx, keyword, offset, limit)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "es.SearchPosts failed")
	}
	ids := make([]int64, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.PostId)
	}
	posts, err := db.ListPostsByIds(v.ctx, ids)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "dao.ListPostsByIds failed")
	}

	// 保持索引返回的相关度顺序
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
	return ordered, total, nil
}
