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

// ListComment 未登录也能看。登录用户自己的评论默认置顶，pin_own=false可以关掉
func ListComment(ctx context.Context, c *app.RequestContext) {
	var err error
	var param ListCommentParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var UserId int64
	if v, err := jwt.ConvertJWTPayloadToString(ctx, c); err == nil {
		UserId = utils.Transfer(v)
	}
	pinOwn := UserId > 0 && param.PinOwn != "false"
	page, err := service.NewCommentService(ctx).ListComments(param.PostId, UserId, param.Offset, param.Limit, pinOwn)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, page)
}

func ListReply(ctx context.Context, c *app.RequestContext) {
	var err error
	var param ListReplyParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if param.Limit <= 0 {
		param.Limit = constants.DefaultReplyLimit
	}
	var UserId int64
	if v, err := jwt.ConvertJWTPayloadToString(ctx, c); err == nil {
		UserId = utils.Transfer(v)
	}
	replies, err := service.NewCommentService(ctx).ListReplies(param.CommentId, UserId, param.Offset, param.Limit)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, replies)
}
