package db

import (
	"context"

	"Nestling.com/cmd/model"
	"Nestling.com/pkg/constants"
	"Nestling.com/pkg/utils"
	"github.com/pkg/errors"
)

func CreatePostView(ctx context.Context, authorId, postId, timestamp int64) error {
	view := &model.PostView{
		AuthorId:  authorId,
		PostId:    postId,
		CreatedAt: utils.ConvertTimestampToString(timestamp),
	}
	if err := DB.WithContext(ctx).Create(view).Error; err != nil {
		return errors.Wrapf(err, "CreatePostView failed")
	}
	return nil
}

func CreatePostShare(ctx context.Context, authorId, postId, timestamp int64) error {
	share := &model.PostShare{
		AuthorId:  authorId,
		PostId:    postId,
		CreatedAt: utils.ConvertTimestampToString(timestamp),
	}
	if err := DB.WithContext(ctx).Create(share).Error; err != nil {
		return errors.Wrapf(err, "CreatePostShare failed")
	}
	return nil
}

// ListLikedPostIds 用户点过赞的帖子
func ListLikedPostIds(ctx context.Context, authorId int64) ([]int64, error) {
	var ids []int64
	err := DB.WithContext(ctx).Model(&model.PostReaction{}).
		Where("author_id = ? AND kind = ?", authorId, constants.ReactionLike).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListLikedPostIds failed")
	}
	return ids, nil
}
