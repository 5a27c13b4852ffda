package handlers

import (
	"context"

	"Nestling.com/cmd/user/service"
	"Nestling.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func Register(ctx context.Context, c *app.RequestContext) {
	var err error
	var param RegisterParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err = service.NewCreateUserService(ctx).CreateUser(param.UserName, param.PassWord, param.Email); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func Activate(ctx context.Context, c *app.RequestContext) {
	var err error
	var param ActivateParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err = service.NewActivateUserService(ctx).ActivateUser(param.Email, param.Code); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
