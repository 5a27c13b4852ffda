package handlers

import (
	"context"

	intersvc "Nestling.com/cmd/interaction/service"
	"Nestling.com/cmd/post/service"
	"Nestling.com/pkg/constants"
	"Nestling.com/pkg/errno"
	"Nestling.com/pkg/jwt"
	"Nestling.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// GetPost 详情带第一页排好序的评论
func GetPost(ctx context.Context, c *app.RequestContext) {
	var err error
	var param PostIdParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var UserId int64
	if v, err := jwt.ConvertJWTPayloadToString(ctx, c); err == nil {
		UserId = utils.Transfer(v)
	}

	detail, err := service.NewGetPostService(ctx).GetPost(param.PostId, UserId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	page, err := intersvc.NewCommentService(ctx).ListComments(param.PostId, UserId, 0, constants.DefaultCommentLimit, UserId > 0)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	detail.NextOffset = page.NextOffset
	SendResponse(c, errno.Success, map[string]interface{}{
		"detail":   detail,
		"comments": page,
	})
}
