package db

import (
	"context"
	"time"

	"Nestling.com/cmd/model"
	"Nestling.com/pkg/constants"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func GetPostReactionCounts(ctx context.Context, postId int64) (int64, int64, error) {
	var likes, dislikes int64
	err := DB.WithContext(ctx).Model(&model.PostReaction{}).
		Where("post_id = ? AND kind = ?", postId, constants.ReactionLike).Count(&likes).Error
	if err != nil {
		return 0, 0, errors.Wrapf(err, "GetPostReactionCounts failed")
	}
	err = DB.WithContext(ctx).Model(&model.PostReaction{}).
		Where("post_id = ? AND kind = ?", postId, constants.ReactionDislike).Count(&dislikes).Error
	if err != nil {
		return 0, 0, errors.Wrapf(err, "GetPostReactionCounts failed")
	}
	return likes, dislikes, nil
}

// GetUserPostReaction 空串表示当前无表态
func GetUserPostReaction(ctx context.Context, authorId, postId int64) (string, error) {
	var reaction model.PostReaction
	err := DB.WithContext(ctx).Model(&model.PostReaction{}).
		Where("author_id = ? AND post_id = ?", authorId, postId).First(&reaction).Error
	if err == gorm.ErrRecordNotFound {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "GetUserPostReaction failed")
	}
	return reaction.Kind, nil
}

func GetUserCommentReactions(ctx context.Context, authorId int64, commentIds []int64) (map[int64]string, error) {
	result := make(map[int64]string, len(commentIds))
	if len(commentIds) == 0 {
		return result, nil
	}
	var reactions []*model.CommentReaction
	err := DB.WithContext(ctx).Model(&model.CommentReaction{}).
		Where("author_id = ? AND comment_id IN ?", authorId, commentIds).Find(&reactions).Error
	if err != nil {
		return nil, errors.Wrapf(err, "GetUserCommentReactions failed")
	}
	for _, r := range reactions {
		result[r.CommentId] = r.Kind
	}
	return result, nil
}

// TogglePostReaction 同类表态撤销，异类表态改写，没有则新增。返回切换后的状态，空串表示已撤销
func TogglePostReaction(ctx context.Context, authorId, postId int64, kind string) (string, error) {
	var state string
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.PostReaction
		err := tx.Where("author_id = ? AND post_id = ?", authorId, postId).First(&existing).Error
		now := time.Now().Format(constants.DataFormate)

		switch {
		case err == gorm.ErrRecordNotFound:
			state = kind
			return tx.Create(&model.PostReaction{
				AuthorId:  authorId,
				PostId:    postId,
				Kind:      kind,
				CreatedAt: now,
				UpdatedAt: now,
			}).Error
		case err != nil:
			return err
		case existing.Kind == kind:
			state = ""
			return tx.Delete(&existing).Error
		default:
			state = kind
			return tx.Model(&existing).Updates(map[string]interface{}{
				"kind":       kind,
				"updated_at": now,
			}).Error
		}
	})
	if err != nil {
		return "", errors.Wrapf(err, "TogglePostReaction failed")
	}
	return state, nil
}

func ToggleCommentReaction(ctx context.Context, authorId, commentId int64, kind string) (string, error) {
	var state string
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.CommentReaction
		err := tx.Where("author_id = ? AND comment_id = ?", authorId, commentId).First(&existing).Error
		now := time.Now().Format(constants.DataFormate)

		switch {
		case err == gorm.ErrRecordNotFound:
			state = kind
			return tx.Create(&model.CommentReaction{
				AuthorId:  authorId,
				CommentId: commentId,
				Kind:      kind,
				CreatedAt: now,
				UpdatedAt: now,
			}).Error
		case err != nil:
			return err
		case existing.Kind == kind:
			state = ""
			return tx.Delete(&existing).Error
		default:
			state = kind
			return tx.Model(&existing).Updates(map[string]interface{}{
				"kind":       kind,
				"updated_at": now,
			}).Error
		}
	})
	if err != nil {
		return "", errors.Wrapf(err, "ToggleCommentReaction failed")
	}
	return state, nil
}
