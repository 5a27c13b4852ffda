package authfunc

import (
	"context"

	handlers "Nestling.com/cmd/api/handlers/interaction"
	userdb "Nestling.com/cmd/user/dal/db"
	"Nestling.com/pkg/constants"
	"Nestling.com/pkg/errno"
	"Nestling.com/pkg/jwt"
	"Nestling.com/pkg/utils"

	"github.com/cloudwego/hertz/pkg/app"
)

func Auth() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		DoubleTokenAuthFunc(),
	)
}

func DoubleTokenAuthFunc() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if !jwt.IsAccessTokenAvailable(ctx, c) {
			if !jwt.IsRefreshTokenAvailable(ctx, c) {
				handlers.SendResponse(c, errno.ConvertErr(errno.TokenInvailedErr), nil)
				c.Abort()
				return
			}
			// refresh token还有效，补发一个access token
			jwt.GenerateAccessToken(ctx, c)
		}
		c.Next(ctx)
	}
}

// OptionalAuthFunc 公开路由上尽力识别登录用户，不拦截匿名访问
func OptionalAuthFunc() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		jwt.IsAccessTokenAvailable(ctx, c)
		c.Next(ctx)
	}
}

// AdminAuthFunc 版主专用路由，先过双token再查权限
func AdminAuthFunc() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		v, err := jwt.ConvertJWTPayloadToString(ctx, c)
		if err != nil {
			handlers.SendResponse(c, errno.ConvertErr(err), nil)
			c.Abort()
			return
		}
		user, exist, err := userdb.GetUserById(ctx, utils.Transfer(v))
		if err != nil || !exist || user.Power < constants.PowerModerator {
			handlers.SendResponse(c, errno.ConvertErr(errno.PermissionErr), nil)
			c.Abort()
			return
		}
		c.Next(ctx)
	}
}
