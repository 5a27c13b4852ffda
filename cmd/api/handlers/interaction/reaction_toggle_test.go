package handlers

import (
	"testing"

	"Nestling.com/pkg/constants"
	"github.com/stretchr/testify/assert"
)

func TestStoredReactionKind(t *testing.T) {
	t.Run("PostEndpoint", func(t *testing.T) {
		kind, err := storedReactionKind(constants.InteractionLikePost, false)
		assert.NoError(t, err)
		assert.Equal(t, constants.ReactionLike, kind)

		kind, err = storedReactionKind(constants.InteractionDislikePost, false)
		assert.NoError(t, err)
		assert.Equal(t, constants.ReactionDislike, kind)

		// 评论类枚举打到帖子端点要被拒绝
		_, err = storedReactionKind(constants.InteractionLikeComment, false)
		assert.Error(t, err)
		_, err = storedReactionKind(constants.InteractionDislikeComment, false)
		assert.Error(t, err)
	})

	t.Run("CommentEndpoint", func(t *testing.T) {
		kind, err := storedReactionKind(constants.InteractionLikeComment, true)
		assert.NoError(t, err)
		assert.Equal(t, constants.ReactionLike, kind)

		kind, err = storedReactionKind(constants.InteractionDislikeComment, true)
		assert.NoError(t, err)
		assert.Equal(t, constants.ReactionDislike, kind)

		_, err = storedReactionKind(constants.InteractionLikePost, true)
		assert.Error(t, err)
		_, err = storedReactionKind(constants.InteractionDislikePost, true)
		assert.Error(t, err)
	})

	t.Run("NonToggleKindsRejected", func(t *testing.T) {
		for _, wire := range []string{
			constants.InteractionCommentPost,
			constants.InteractionReplyComment,
			constants.InteractionViewPost,
			constants.InteractionSharePost,
		} {
			_, err := storedReactionKind(wire, false)
			assert.Error(t, err, wire)
			_, err = storedReactionKind(wire, true)
			assert.Error(t, err, wire)
		}
	})

	t.Run("UnknownKindRejected", func(t *testing.T) {
		_, err := storedReactionKind("like", false)
		assert.Error(t, err)
		_, err = storedReactionKind("", true)
		assert.Error(t, err)
	})
}
