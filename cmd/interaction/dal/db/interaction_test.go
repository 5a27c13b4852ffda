package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"Nestling.com/cmd/model"
	"Nestling.com/pkg/constants"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupTestDB 连接本地测试库。CI或本机没有MySQL时跳过
func setupTestDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database integration test in short mode")
	}
	if DB != nil {
		return
	}
	dsn := "root:root@tcp(127.0.0.1:3306)/nestling_test?charset=utf8mb4&parseTime=True&loc=Local"
	conn, err := gorm.Open(mysql.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	if err = conn.AutoMigrate(&model.Comment{}, &model.PostReaction{},
		&model.CommentReaction{}, &model.UserProfile{}); err != nil {
		t.Skipf("migrate test tables failed: %v", err)
	}
	DB = conn
}

// uniqueId 每次测试用独立的id段，避免和库里既有数据撞车
func uniqueId() int64 {
	return time.Now().UnixNano() % 1e15
}

func TestTogglePostReactionInvariants(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	authorId := uniqueId()
	postId := authorId + 1
	t.Cleanup(func() {
		DB.Where("author_id = ?", authorId).Delete(&model.PostReaction{})
	})

	countRows := func() int64 {
		var count int64
		DB.Model(&model.PostReaction{}).
			Where("author_id = ? AND post_id = ?", authorId, postId).Count(&count)
		return count
	}

	t.Run("DoubleToggleReturnsToNoReaction", func(t *testing.T) {
		state, err := TogglePostReaction(ctx, authorId, postId, constants.ReactionLike)
		assert.NoError(t, err)
		assert.Equal(t, constants.ReactionLike, state)
		assert.Equal(t, int64(1), countRows())

		state, err = TogglePostReaction(ctx, authorId, postId, constants.ReactionLike)
		assert.NoError(t, err)
		assert.Equal(t, "", state)
		assert.Equal(t, int64(0), countRows())
	})

	t.Run("SwitchKindKeepsSingleRow", func(t *testing.T) {
		_, err := TogglePostReaction(ctx, authorId, postId, constants.ReactionLike)
		assert.NoError(t, err)
		state, err := TogglePostReaction(ctx, authorId, postId, constants.ReactionDislike)
		assert.NoError(t, err)
		assert.Equal(t, constants.ReactionDislike, state)

		// 换表态只改行，永远不会出现两行
		assert.Equal(t, int64(1), countRows())
		current, err := GetUserPostReaction(ctx, authorId, postId)
		assert.NoError(t, err)
		assert.Equal(t, constants.ReactionDislike, current)
	})
}

func TestToggleCommentReactionInvariants(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	authorId := uniqueId()
	commentId := authorId + 2
	t.Cleanup(func() {
		DB.Where("author_id = ?", authorId).Delete(&model.CommentReaction{})
	})

	state, err := ToggleCommentReaction(ctx, authorId, commentId, constants.ReactionDislike)
	assert.NoError(t, err)
	assert.Equal(t, constants.ReactionDislike, state)

	state, err = ToggleCommentReaction(ctx, authorId, commentId, constants.ReactionDislike)
	assert.NoError(t, err)
	assert.Equal(t, "", state)

	var count int64
	DB.Model(&model.CommentReaction{}).
		Where("author_id = ? AND comment_id = ?", authorId, commentId).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestTopLevelCommentPagination(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	postId := uniqueId()
	authorId := postId + 3
	t.Cleanup(func() {
		DB.Where("post_id = ?", postId).Delete(&model.Comment{})
	})

	// 五条评论，时间错开保证排序稳定
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		created := base.Add(time.Duration(i) * time.Minute).Format(constants.DataFormate)
		_, err := CreateComment(ctx, &model.Comment{
			AuthorId:  authorId,
			PostId:    postId,
			ParentId:  0,
			Content:   fmt.Sprintf("comment %d", i),
			CreatedAt: created,
			UpdatedAt: created,
		})
		assert.NoError(t, err)
	}

	full, err := ListTopLevelComments(ctx, postId, 0, 0, 100)
	assert.NoError(t, err)
	assert.Len(t, full, 5)

	// 两条一页翻完，页之间不重叠且顺序与全量一致
	var paged []int64
	for offset := int64(0); offset < 5; offset += 2 {
		page, err := ListTopLevelComments(ctx, postId, 0, offset, 2)
		assert.NoError(t, err)
		for _, view := range page {
			paged = append(paged, view.CommentId)
		}
	}
	assert.Len(t, paged, 5)
	for i, view := range full {
		assert.Equal(t, view.CommentId, paged[i])
	}

	total, err := CountTopLevelComments(ctx, postId, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)
}
