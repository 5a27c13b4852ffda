package service

import (
	"context"

	"Nestling.com/cmd/post/dal/db"
	userdb "Nestling.com/cmd/user/dal/db"
	"Nestling.com/pkg/errno"
	"Nestling.com/pkg/mq"
	"github.com/pkg/errors"
)

type SharePostService struct {
	ctx context.Context
}

func NewSharePostService(ctx context.Context) *SharePostService {
	return &SharePostService{ctx: ctx}
}

func (v *SharePostService) SharePost(postId, userId int64) error {
	if _, exist, err := db.GetPostById(v.ctx, postId); err != nil {
		return errors.WithMessage(err, "dao.GetPostById failed")
	} else if !exist {
		return errno.NotFoundErr.WithMessage("post not found")
	}

	profile, ok, err := userdb.GetProfileByUserId(v.ctx, userId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetProfileByUserId failed")
	}
	if !ok {
		return errno.UserNotExistErr
	}

	if err := mq.Manager.PublishShareEvent(v.ctx, &mq.ShareEvent{
		PostId: postId,
		UserId: profile.ProfileId,
	}); err != nil {
		return errors.WithMessage(err, "publish share event failed")
	}
	return nil
}
