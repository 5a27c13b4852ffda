package service

import (
	"strings"
	"testing"

	"Nestling.com/cmd/model"
	"github.com/stretchr/testify/assert"
)

func TestValidateContent(t *testing.T) {
	t.Run("TrimsWhitespace", func(t *testing.T) {
		content, err := validateContent("  hello  ")
		assert.NoError(t, err)
		assert.Equal(t, "hello", content)
	})

	t.Run("RejectsEmpty", func(t *testing.T) {
		_, err := validateContent("   ")
		assert.Error(t, err)
	})

	t.Run("AcceptsExactly300", func(t *testing.T) {
		content, err := validateContent(strings.Repeat("a", 300))
		assert.NoError(t, err)
		assert.Len(t, content, 300)
	})

	t.Run("Rejects301", func(t *testing.T) {
		_, err := validateContent(strings.Repeat("a", 301))
		assert.Error(t, err)
	})
}

func TestPickMostLikedReply(t *testing.T) {
	t.Run("NoRepliesReturnsNil", func(t *testing.T) {
		assert.Nil(t, PickMostLikedReply(nil))
		assert.Nil(t, PickMostLikedReply([]*model.ReplyView{}))
	})

	t.Run("NetLikesWin", func(t *testing.T) {
		// 回复2赞多但踩也多，净赞数输给回复3
		replies := []*model.ReplyView{
			{CommentId: 1, LikeCount: 1, DislikeCount: 0},
			{CommentId: 2, LikeCount: 10, DislikeCount: 9},
			{CommentId: 3, LikeCount: 5, DislikeCount: 1},
		}
		best := PickMostLikedReply(replies)
		assert.Equal(t, int64(3), best.CommentId)
	})

	t.Run("TieGoesToLowerId", func(t *testing.T) {
		replies := []*model.ReplyView{
			{CommentId: 7, LikeCount: 2},
			{CommentId: 4, LikeCount: 2},
			{CommentId: 9, LikeCount: 2},
		}
		best := PickMostLikedReply(replies)
		assert.Equal(t, int64(4), best.CommentId)
	})

	t.Run("NegativeNetStillPicksOne", func(t *testing.T) {
		replies := []*model.ReplyView{
			{CommentId: 1, LikeCount: 0, DislikeCount: 5},
			{CommentId: 2, LikeCount: 0, DislikeCount: 2},
		}
		best := PickMostLikedReply(replies)
		assert.Equal(t, int64(2), best.CommentId)
	})
}
