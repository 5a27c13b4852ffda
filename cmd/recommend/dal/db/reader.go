package db

import (
	"context"
	"strings"

	interdb "Nestling.com/cmd/interaction/dal/db"
	"Nestling.com/cmd/model"
	"Nestling.com/cmd/recommend/service"
	"Nestling.com/pkg/constants"
	"github.com/pkg/errors"
)

// GormReader 基于互动表和帖子表的DataReader实现
type GormReader struct{}

func NewGormReader() *GormReader {
	return &GormReader{}
}

var _ service.DataReader = (*GormReader)(nil)

func (r *GormReader) LikedPostIds(ctx context.Context, userId int64) ([]int64, error) {
	return interdb.ListLikedPostIds(ctx, userId)
}

// InteractedPostIds 表态、评论、浏览、分享过的帖子并集
func (r *GormReader) InteractedPostIds(ctx context.Context, userId int64) ([]int64, error) {
	queries := []struct {
		model interface{}
		where string
	}{
		{&model.PostReaction{}, "author_id = ?"},
		{&model.Comment{}, "author_id = ? AND deleted_at = ''"},
		{&model.PostView{}, "author_id = ?"},
		{&model.PostShare{}, "author_id = ?"},
	}
	seen := make(map[int64]bool)
	var ids []int64
	for _, q := range queries {
		var batch []int64
		err := interdb.DB.WithContext(ctx).Model(q.model).
			Distinct("post_id").
			Where(q.where, userId).
			Pluck("post_id", &batch).Error
		if err != nil {
			return nil, errors.Wrapf(err, "InteractedPostIds failed")
		}
		for _, id := range batch {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids, nil
}

func (r *GormReader) LikersOfPosts(ctx context.Context, postIds []int64) ([]int64, error) {
	if len(postIds) == 0 {
		return nil, nil
	}
	var ids []int64
	err := interdb.DB.WithContext(ctx).Model(&model.PostReaction{}).
		Distinct("author_id").
		Where("post_id IN ? AND kind = ?", postIds, constants.ReactionLike).
		Pluck("author_id", &ids).Error
	if err != nil {
		return nil, errors.Wrapf(err, "LikersOfPosts failed")
	}
	return ids, nil
}

func (r *GormReader) LikesOfUsers(ctx context.Context, userIds []int64) ([]service.LikeRow, error) {
	if len(userIds) == 0 {
		return nil, nil
	}
	var reactions []*model.PostReaction
	err := interdb.DB.WithContext(ctx).Model(&model.PostReaction{}).
		Where("author_id IN ? AND kind = ?", userIds, constants.ReactionLike).
		Find(&reactions).Error
	if err != nil {
		return nil, errors.Wrapf(err, "LikesOfUsers failed")
	}
	rows := make([]service.LikeRow, 0, len(reactions))
	for _, re := range reactions {
		rows = append(rows, service.LikeRow{UserId: re.AuthorId, PostId: re.PostId})
	}
	return rows, nil
}

func (r *GormReader) ActivePosts(ctx context.Context) ([]*service.PostInfo, error) {
	var posts []*model.Post
	err := interdb.DB.WithContext(ctx).Model(&model.Post{}).
		Select("post_id, tag, optional_tags").
		Where("deleted_at = ''").
		Find(&posts).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ActivePosts failed")
	}
	infos := make([]*service.PostInfo, 0, len(posts))
	for _, p := range posts {
		info := &service.PostInfo{PostId: p.PostId, Tag: p.Tag}
		if p.OptionalTags != "" {
			info.OptionalTags = strings.Split(p.OptionalTags, ",")
		}
		infos = append(infos, info)
	}
	return infos, nil
}
