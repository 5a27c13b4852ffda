package service

import (
	"context"
	"encoding/json"

	interdb "Nestling.com/cmd/interaction/dal/db"
	"Nestling.com/cmd/model"
	"Nestling.com/cmd/post/dal/db"
	userdb "Nestling.com/cmd/user/dal/db"
	"Nestling.com/pkg/errno"
	"Nestling.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type GetPostService struct {
	ctx context.Context
}

func NewGetPostService(ctx context.Context) *GetPostService {
	return &GetPostService{ctx: ctx}
}

// GetPost viewerId为0表示匿名访问
func (v *GetPostService) GetPost(postId, viewerId int64) (*model.PostDetail, error) {
	post, exist, err := db.GetPostById(v.ctx, postId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetPostById failed")
	}
	if !exist {
		return nil, errno.NotFoundErr.WithMessage("post not found")
	}

	detail := &model.PostDetail{Post: post}
	if profile, ok, err := userdb.GetProfileById(v.ctx, post.AuthorId); err != nil {
		return nil, errors.WithMessage(err, "dao.GetProfileById failed")
	} else if ok {
		detail.AuthorName = profile.DisplayName
		detail.AuthorIcon = profile.IconUrl
	}

	if post.ImageUrls != "" {
		if err := json.Unmarshal([]byte(post.ImageUrls), &detail.Images); err != nil {
			hlog.Warnf("unmarshal image urls of post %d failed: %v", postId, err)
		}
	}

	likes, dislikes, err := interdb.GetPostReactionCounts(v.ctx, postId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetPostReactionCounts failed")
	}
	detail.LikeCount, detail.DislikeCount = likes, dislikes

	if detail.ViewCount, err = db.GetViewCount(v.ctx, postId); err != nil {
		return nil, errors.WithMessage(err, "dao.GetViewCount failed")
	}
	if detail.ShareCount, err = db.GetShareCount(v.ctx, postId); err != nil {
		return nil, errors.WithMessage(err, "dao.GetShareCount failed")
	}
	if detail.TotalComments, err = interdb.CountComments(v.ctx, postId); err != nil {
		return nil, errors.WithMessage(err, "dao.CountComments failed")
	}

	if viewerId > 0 {
		if profile, ok, err := userdb.GetProfileByUserId(v.ctx, viewerId); err == nil && ok {
			reaction, err := interdb.GetUserPostReaction(v.ctx, profile.ProfileId, postId)
			if err != nil {
				return nil, errors.WithMessage(err, "dao.GetUserPostReaction failed")
			}
			detail.UserReaction = reaction

			// 浏览走异步通道，失败不影响读取
			if err := mq.Manager.PublishViewEvent(v.ctx, &mq.ViewEvent{
				PostId: postId,
				UserId: profile.ProfileId,
			}); err != nil {
				hlog.Warnf("publish view event failed: %v", err)
			}
		}
	}
	return detail, nil
}
