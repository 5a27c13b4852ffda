package db

import (
	"context"
	"time"

	"Nestling.com/cmd/model"
	"Nestling.com/pkg/constants"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const commentViewSelect = "comments.comment_id, comments.author_id, comments.content, comments.created_at, " +
	"user_profiles.display_name AS author_name, " +
	"COALESCE(SUM(CASE WHEN comment_reactions.kind = ? THEN 1 ELSE 0 END), 0) AS like_count, " +
	"COALESCE(SUM(CASE WHEN comment_reactions.kind = ? THEN 1 ELSE 0 END), 0) AS dislike_count, " +
	"(SELECT COUNT(*) FROM comments AS replies WHERE replies.parent_id = comments.comment_id " +
	"AND replies.deleted_at = '') AS reply_count"

func commentViewQuery(ctx context.Context) *gorm.DB {
	return DB.WithContext(ctx).Model(&model.Comment{}).
		Select(commentViewSelect, constants.ReactionLike, constants.ReactionDislike).
		Joins("LEFT JOIN comment_reactions ON comment_reactions.comment_id = comments.comment_id").
		Joins("LEFT JOIN user_profiles ON user_profiles.profile_id = comments.author_id").
		Group("comments.comment_id, comments.author_id, comments.content, comments.created_at, user_profiles.display_name")
}

func CreateComment(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	if err := DB.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, errors.Wrapf(err, "CreateComment failed")
	}
	return comment, nil
}

func GetCommentById(ctx context.Context, commentId int64) (*model.Comment, bool, error) {
	var comment model.Comment
	err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ? AND deleted_at = ''", commentId).First(&comment).Error
	if err == gorm.ErrRecordNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "GetCommentById failed")
	}
	return &comment, true, nil
}

func CountComments(ctx context.Context, postId int64) (int64, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("post_id = ? AND deleted_at = ''", postId).Count(&count).Error
	if err != nil {
		return 0, errors.Wrapf(err, "CountComments failed")
	}
	return count, nil
}

func CountTopLevelComments(ctx context.Context, postId, excludeAuthorId int64) (int64, error) {
	query := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("post_id = ? AND parent_id = 0 AND deleted_at = ''", postId)
	if excludeAuthorId > 0 {
		query = query.Where("author_id != ?", excludeAuthorId)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountTopLevelComments failed")
	}
	return count, nil
}

// ListTopLevelComments 点赞数降序，相同则新评论在前。excludeAuthorId>0时跳过该作者
func ListTopLevelComments(ctx context.Context, postId, excludeAuthorId, offset, limit int64) ([]*model.CommentView, error) {
	query := commentViewQuery(ctx).
		Where("comments.post_id = ? AND comments.parent_id = 0 AND comments.deleted_at = ''", postId)
	if excludeAuthorId > 0 {
		query = query.Where("comments.author_id != ?", excludeAuthorId)
	}
	var views []*model.CommentView
	err := query.Order("like_count DESC, comments.created_at DESC").
		Offset(int(offset)).Limit(int(limit)).
		Scan(&views).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListTopLevelComments failed")
	}
	return views, nil
}

// ListOwnTopLevelComments 浏览者自己的评论不参与分页，全部取出
func ListOwnTopLevelComments(ctx context.Context, postId, authorId int64) ([]*model.CommentView, error) {
	var views []*model.CommentView
	err := commentViewQuery(ctx).
		Where("comments.post_id = ? AND comments.parent_id = 0 AND comments.author_id = ? AND comments.deleted_at = ''",
			postId, authorId).
		Order("like_count DESC, comments.created_at DESC").
		Scan(&views).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListOwnTopLevelComments failed")
	}
	return views, nil
}

// ListReplies limit小于等于0表示取全部
func ListReplies(ctx context.Context, parentId, offset, limit int64) ([]*model.ReplyView, error) {
	query := DB.WithContext(ctx).Model(&model.Comment{}).
		Select("comments.comment_id, comments.author_id, comments.content, comments.created_at, "+
			"user_profiles.display_name AS author_name, "+
			"COALESCE(SUM(CASE WHEN comment_reactions.kind = ? THEN 1 ELSE 0 END), 0) AS like_count, "+
			"COALESCE(SUM(CASE WHEN comment_reactions.kind = ? THEN 1 ELSE 0 END), 0) AS dislike_count",
			constants.ReactionLike, constants.ReactionDislike).
		Joins("LEFT JOIN comment_reactions ON comment_reactions.comment_id = comments.comment_id").
		Joins("LEFT JOIN user_profiles ON user_profiles.profile_id = comments.author_id").
		Where("comments.parent_id = ? AND comments.deleted_at = ''", parentId).
		Group("comments.comment_id, comments.author_id, comments.content, comments.created_at, user_profiles.display_name").
		Order("like_count DESC, comments.created_at DESC")
	if limit > 0 {
		query = query.Offset(int(offset)).Limit(int(limit))
	}
	var views []*model.ReplyView
	if err := query.Scan(&views).Error; err != nil {
		return nil, errors.Wrapf(err, "ListReplies failed")
	}
	return views, nil
}

func ListCommentsByAuthor(ctx context.Context, authorId int64) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("author_id = ? AND deleted_at = ''", authorId).
		Order("created_at DESC").Find(&comments).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListCommentsByAuthor failed")
	}
	return comments, nil
}

func SoftDeleteComment(ctx context.Context, commentId, authorId int64) (bool, error) {
	res := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ? AND author_id = ? AND deleted_at = ''", commentId, authorId).
		Update("deleted_at", time.Now().Format(constants.DataFormate))
	if res.Error != nil {
		return false, errors.Wrapf(res.Error, "SoftDeleteComment failed")
	}
	return res.RowsAffected > 0, nil
}
