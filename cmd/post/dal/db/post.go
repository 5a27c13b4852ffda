package db

import (
	"context"
	"time"

	"Nestling.com/cmd/model"
	"Nestling.com/pkg/constants"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreatePost(ctx context.Context, post *model.Post) (*model.Post, error) {
	if err := DB.WithContext(ctx).Create(post).Error; err != nil {
		return nil, errors.Wrapf(err, "CreatePost failed")
	}
	return post, nil
}

// GetPostById 软删除的帖子视为不存在
func GetPostById(ctx context.Context, postId int64) (*model.Post, bool, error) {
	var post model.Post
	err := DB.WithContext(ctx).Model(&model.Post{}).
		Where("post_id = ? AND deleted_at = ''", postId).First(&post).Error
	if err == gorm.ErrRecordNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "GetPostById failed")
	}
	return &post, true, nil
}

func DeletePost(ctx context.Context, postId int64) error {
	res := DB.WithContext(ctx).Model(&model.Post{}).
		Where("post_id = ? AND deleted_at = ''", postId).
		Update("deleted_at", time.Now().Format(constants.DataFormate))
	if res.Error != nil {
		return errors.Wrapf(res.Error, "DeletePost failed")
	}
	if res.RowsAffected == 0 {
		return errors.New("post not found")
	}
	return nil
}

func UpdatePostImages(ctx context.Context, postId int64, imageUrls string) error {
	if err := DB.WithContext(ctx).Model(&model.Post{}).
		Where("post_id = ?", postId).
		Update("image_urls", imageUrls).Error; err != nil {
		return errors.Wrapf(err, "UpdatePostImages failed")
	}
	return nil
}

// ListHotPosts 按点赞数排序的热榜，点赞数相同新帖在前
func ListHotPosts(ctx context.Context, limit int64) ([]*model.PostSummary, error) {
	var posts []*model.PostSummary
	err := DB.WithContext(ctx).Model(&model.Post{}).
		Select("posts.post_id, posts.author_id, user_profiles.display_name AS author_name, "+
			"posts.title, posts.tag, posts.created_at, "+
			"COUNT(post_reactions.reaction_id) AS like_count").
		Joins("LEFT JOIN post_reactions ON post_reactions.post_id = posts.post_id AND post_reactions.kind = ?",
			constants.ReactionLike).
		Joins("LEFT JOIN user_profiles ON user_profiles.profile_id = posts.author_id").
		Where("posts.deleted_at = ''").
		Group("posts.post_id, posts.author_id, user_profiles.display_name, posts.title, posts.tag, posts.created_at").
		Order("like_count DESC, posts.post_id DESC").
		Limit(int(limit)).
		Scan(&posts).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListHotPosts failed")
	}
	return posts, nil
}

func ListPostsByAuthor(ctx context.Context, authorId, offset, limit int64) ([]*model.Post, int64, error) {
	var posts []*model.Post
	var count int64
	query := DB.WithContext(ctx).Model(&model.Post{}).
		Where("author_id = ? AND deleted_at = ''", authorId)
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListPostsByAuthor count failed")
	}
	err := query.Order("created_at DESC").Offset(int(offset)).Limit(int(limit)).Find(&posts).Error
	if err != nil {
		return nil, 0, errors.Wrapf(err, "ListPostsByAuthor failed")
	}
	return posts, count, nil
}

func ListPostsByIds(ctx context.Context, postIds []int64) ([]*model.Post, error) {
	if len(postIds) == 0 {
		return nil, nil
	}
	var posts []*model.Post
	err := DB.WithContext(ctx).Model(&model.Post{}).
		Where("post_id IN ? AND deleted_at = ''", postIds).Find(&posts).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListPostsByIds failed")
	}
	return posts, nil
}

// GetViewCount 浏览数来自MQ消费端落的行
func GetViewCount(ctx context.Context, postId int64) (int64, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.PostView{}).
		Where("post_id = ?", postId).Count(&count).Error
	if err != nil {
		return 0, errors.Wrapf(err, "GetViewCount failed")
	}
	return count, nil
}

func GetShareCount(ctx context.Context, postId int64) (int64, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.PostShare{}).
		Where("post_id = ?", postId).Count(&count).Error
	if err != nil {
		return 0, errors.Wrapf(err, "GetShareCount failed")
	}
	return count, nil
}
