package service

import (
	"context"

	"Nestling.com/cmd/post/dal/db"
	"Nestling.com/cmd/post/infras/es"
	userdb "Nestling.com/cmd/user/dal/db"
	"Nestling.com/pkg/cache"
	"Nestling.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type DeletePostService struct {
	ctx context.Context
}

func NewDeletePostService(ctx context.Context) *DeletePostService {
	return &DeletePostService{ctx: ctx}
}

// DeletePost 只有作者本人能删，版主走moderation通道
func (v *DeletePostService) DeletePost(postId, userId int64) error {
	post, exist, err := db.GetPostById(v.ctx, postId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetPostById failed")
	}
	if !exist {
		return errno.NotFoundErr.WithMessage("post not found")
	}

	profile, ok, err := userdb.GetProfileByUserId(v.ctx, userId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetProfileByUserId failed")
	}
	if !ok || post.AuthorId != profile.ProfileId {
		return errno.PermissionErr
	}

	if err = db.DeletePost(v.ctx, postId); err != nil {
		return errors.WithMessage(err, "dao.DeletePost failed")
	}
	if err = es.DeletePost(v.ctx, postId); err != nil {
		hlog.Errorf("remove post %d from index failed: %v", postId, err)
	}
	cache.InvalidateHotFeed(v.ctx)
	return nil
}
