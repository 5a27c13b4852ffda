package handlers

import (
	"context"

	"Nestling.com/cmd/interaction/service"
	"Nestling.com/pkg/constants"
	"Nestling.com/pkg/errno"
	"Nestling.com/pkg/jwt"
	"Nestling.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type toggleResult struct {
	State string `json:"state"` // 空串表示表态已撤销
}

// storedReactionKind 把线上的互动枚举翻译成存储的kind。
// 帖子类和评论类不能混用，非表态类的枚举值在这里直接拒绝
func storedReactionKind(wire string, forComment bool) (string, error) {
	switch wire {
	case constants.InteractionLikePost:
		if forComment {
			return "", errno.ParamErr.WithMessage(wire + " cannot target a comment")
		}
		return constants.ReactionLike, nil
	case constants.InteractionDislikePost:
		if forComment {
			return "", errno.ParamErr.WithMessage(wire + " cannot target a comment")
		}
		return constants.ReactionDislike, nil
	case constants.InteractionLikeComment:
		if !forComment {
			return "", errno.ParamErr.WithMessage(wire + " cannot target a post")
		}
		return constants.ReactionLike, nil
	case constants.InteractionDislikeComment:
		if !forComment {
			return "", errno.ParamErr.WithMessage(wire + " cannot target a post")
		}
		return constants.ReactionDislike, nil
	case constants.InteractionCommentPost, constants.InteractionReplyComment,
		constants.InteractionViewPost, constants.InteractionSharePost:
		return "", errno.ParamErr.WithMessage(wire + " is not a toggleable reaction")
	default:
		return "", errno.ParamErr.WithMessage("unknown interaction type: " + wire)
	}
}

func TogglePostReaction(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var UserId int64
	var param ToggleReactionParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if v, err = jwt.ConvertJWTPayloadToString(ctx, c); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	} else {
		UserId = utils.Transfer(v)
	}
	kind, err := storedReactionKind(param.Kind, false)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	state, err := service.NewReactionService(ctx).TogglePost(param.PostId, UserId, kind)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, toggleResult{State: state})
}

func ToggleCommentReaction(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var UserId int64
	var param ToggleReactionParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if v, err = jwt.ConvertJWTPayloadToString(ctx, c); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	} else {
		UserId = utils.Transfer(v)
	}
	kind, err := storedReactionKind(param.Kind, true)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	state, err := service.NewReactionService(ctx).ToggleComment(param.CommentId, UserId, kind)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, toggleResult{State: state})
}
