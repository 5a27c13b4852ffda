package handlers

import (
	"context"

	"Nestling.com/cmd/interaction/service"
	"Nestling.com/pkg/errno"
	"Nestling.com/pkg/jwt"
	"Nestling.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func CreateComment(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var UserId int64
	var param CreateCommentParam
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
	comment, err := service.NewCommentService(ctx).CreateComment(param.PostId, UserId, param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

func CreateReply(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var UserId int64
	var param CreateReplyParam
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
	reply, err := service.NewCommentService(ctx).CreateReply(param.CommentId, UserId, param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, reply)
}
