package handlers

import (
	"context"

	"Nestling.com/cmd/user/service"
	"Nestling.com/pkg/errno"
	"Nestling.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func LoginUser(ctx context.Context, c *app.RequestContext) {
	var loginVar LoginParam
	if err := c.Bind(&loginVar); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := service.NewLoginUserService(ctx).LoginUser(loginVar.UserName, loginVar.PassWord)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	hlog.Infof("user %s logged in", user.UserName)

	jwt.AccessTokenJwtMiddleware.LoginHandler(ctx, c)
	jwt.RefreshTokenJwtMiddleware.LoginHandler(ctx, c)

	AccessToken := c.GetString("Access-Token")
	RefreshToken := c.GetString("Refresh-Token")
	SendResponse(c, errno.Success, map[string]interface{}{
		"user":          user,
		"token":         AccessToken,
		"refresh_token": RefreshToken,
	})
}
