package handlers

import (
	"context"
	"time"

	"Nestling.com/cmd/moderation/service"
	"Nestling.com/pkg/errno"
	"Nestling.com/pkg/jwt"
	"Nestling.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func ApplyUserAction(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var UserId int64
	var param UserActionParam
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
	history, err := service.NewActionService(ctx).ApplyUserAction(
		param.Action, param.UserId, UserId, param.Reason, time.Duration(param.Duration)*time.Second)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, history)
}

func RemovePost(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var UserId int64
	var param RemovePostParam
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
	if err = service.NewActionService(ctx).RemovePost(param.PostId, UserId, param.Reason); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func LiftAction(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var UserId int64
	var param LiftActionParam
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
	if err = service.NewActionService(ctx).LiftAction(param.HistoryId, UserId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// AuditUser 版主一键拉取某用户的全部违规线索
func AuditUser(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var UserId int64
	var param AuditUserParam
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
	audit, err := service.NewAuditService(ctx).AuditUser(param.UserId, UserId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, audit)
}
