package service

import (
	"context"
	"fmt"

	"Nestling.com/cmd/interaction/dal/db"
	"Nestling.com/cmd/interaction/infras/redis"
	postdb "Nestling.com/cmd/post/dal/db"
	userdb "Nestling.com/cmd/user/dal/db"
	"Nestling.com/pkg/constants"
	"Nestling.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type ReactionService struct {
	ctx context.Context
}

func NewReactionService(ctx context.Context) *ReactionService {
	return &ReactionService{ctx: ctx}
}

func validKind(kind string) bool {
	return kind == constants.ReactionLike || kind == constants.ReactionDislike
}

// TogglePost 返回切换后的状态，空串表示撤销了表态
func (v *ReactionService) TogglePost(postId, userId int64, kind string) (string, error) {
	if !validKind(kind) {
		return "", errno.ParamErr.WithMessage("kind must be like or dislike")
	}
	if _, exist, err := postdb.GetPostById(v.ctx, postId); err != nil {
		return "", errors.WithMessage(err, "dao.GetPostById failed")
	} else if !exist {
		return "", errno.NotFoundErr.WithMessage("post not found")
	}
	profile, exist, err := userdb.GetProfileByUserId(v.ctx, userId)
	if err != nil {
		return "", errors.WithMessage(err, "dao.GetProfileByUserId failed")
	}
	if !exist {
		return "", errno.UserNotExistErr
	}

	// 同一用户对同一帖子的连续点击串行处理
	mutex := redis.NewToggleMutex(fmt.Sprintf("post:%d:%d", profile.ProfileId, postId))
	if err := mutex.LockContext(v.ctx); err != nil {
		hlog.Warnf("toggle mutex lock failed: %v", err)
	} else {
		defer func() {
			if _, err := mutex.UnlockContext(v.ctx); err != nil {
				hlog.Warnf("toggle mutex unlock failed: %v", err)
			}
		}()
	}

	state, err := db.TogglePostReaction(v.ctx, profile.ProfileId, postId, kind)
	if err != nil {
		return "", errors.WithMessage(err, "dao.TogglePostReaction failed")
	}
	return state, nil
}

// ToggleComment 目标必须是存在且未删除的评论或回复
func (v *ReactionService) ToggleComment(commentId, userId int64, kind string) (string, error) {
	if !validKind(kind) {
		return "", errno.ParamErr.WithMessage("kind must be like or dislike")
	}
	if _, exist, err := db.GetCommentById(v.ctx, commentId); err != nil {
		return "", errors.WithMessage(err, "dao.GetCommentById failed")
	} else if !exist {
		return "", errno.NotFoundErr.WithMessage("comment not found")
	}
	profile, exist, err := userdb.GetProfileByUserId(v.ctx, userId)
	if err != nil {
		return "", errors.WithMessage(err, "dao.GetProfileByUserId failed")
	}
	if !exist {
		return "", errno.UserNotExistErr
	}

	mutex := redis.NewToggleMutex(fmt.Sprintf("comment:%d:%d", profile.ProfileId, commentId))
	if err := mutex.LockContext(v.ctx); err != nil {
		hlog.Warnf("toggle mutex lock failed: %v", err)
	} else {
		defer func() {
			if _, err := mutex.UnlockContext(v.ctx); err != nil {
				hlog.Warnf("toggle mutex unlock failed: %v", err)
			}
		}()
	}

	state, err := db.ToggleCommentReaction(v.ctx, profile.ProfileId, commentId, kind)
	if err != nil {
		return "", errors.WithMessage(err, "dao.ToggleCommentReaction failed")
	}
	return state, nil
}
