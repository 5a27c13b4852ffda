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

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var UserId int64
	var param DeleteCommentParam
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
	if err = service.NewCommentService(ctx).DeleteComment(param.CommentId, UserId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
