package jwt

import (
	"context"
	"time"

	"Nestling.com/cmd/model"
	"Nestling.com/cmd/user/service"
	"Nestling.com/config"
	"Nestling.com/pkg/errno"
	"Nestling.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/jwt"
)

var (
	AccessTokenJwtMiddleware  *jwt.HertzJWTMiddleware
	RefreshTokenJwtMiddleware *jwt.HertzJWTMiddleware
	IdentityKey               = "user_id"
)

// authenticate 两个中间件共用的登录校验
func authenticate(ctx context.Context, c *app.RequestContext) (interface{}, error) {
	var login struct {
		UserName string `form:"user_name" json:"user_name"`
		PassWord string `form:"password" json:"password"`
	}
	if err := c.Bind(&login); err != nil {
		return nil, err
	}
	return service.NewLoginUserService(ctx).LoginUser(login.UserName, login.PassWord)
}

// AccessTokenJwtInit 短期令牌，身份写入payload
func AccessTokenJwtInit() {
	var err error
	AccessTokenJwtMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "nestling-access",
		Key:           []byte(config.ConfigInfo.Jwt.AccessSecret),
		Timeout:       time.Hour,
		MaxRefresh:    time.Hour,
		IdentityKey:   IdentityKey,
		TokenLookup:   "header: Access-Token, query: token, cookie: jwt",
		TokenHeadName: "",
		Authenticator: authenticate,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if v, ok := data.(*model.User); ok {
				return jwt.MapClaims{
					IdentityKey: v.UserId,
				}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			return &model.User{
				UserId: utils.Transfer(claims[IdentityKey]),
			}
		},
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			c.Set("Access-Token", token)
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(code, map[string]interface{}{
				"code":    errno.AuthorizationCode,
				"message": message,
			})
		},
	})
	if err != nil {
		hlog.Fatalf("access token jwt init failed: %v", err)
	}
}

// RefreshTokenJwtInit 长期令牌，只用于换发access token
func RefreshTokenJwtInit() {
	var err error
	RefreshTokenJwtMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "nestling-refresh",
		Key:           []byte(config.ConfigInfo.Jwt.RefreshSecret),
		Timeout:       time.Hour * 72,
		MaxRefresh:    time.Hour * 72,
		IdentityKey:   IdentityKey,
		TokenLookup:   "header: Refresh-Token",
		TokenHeadName: "",
		Authenticator: authenticate,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if v, ok := data.(*model.User); ok {
				return jwt.MapClaims{
					IdentityKey: v.UserId,
				}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			return &model.User{
				UserId: utils.Transfer(claims[IdentityKey]),
			}
		},
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			c.Set("Refresh-Token", token)
		},
	})
	if err != nil {
		hlog.Fatalf("refresh token jwt init failed: %v", err)
	}
}

func IsAccessTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	claims, err := AccessTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return false
	}
	switch v := claims["exp"].(type) {
	case float64:
		if int64(v) < AccessTokenJwtMiddleware.TimeFunc().Unix() {
			return false
		}
	default:
		return false
	}
	c.Set("JWT_PAYLOAD", claims)
	return true
}

func IsRefreshTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	claims, err := RefreshTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return false
	}
	switch v := claims["exp"].(type) {
	case float64:
		if int64(v) < RefreshTokenJwtMiddleware.TimeFunc().Unix() {
			return false
		}
	default:
		return false
	}
	c.Set("JWT_PAYLOAD", claims)
	return true
}

// GenerateAccessToken refresh token有效时重新签发access token并随响应头返回
func GenerateAccessToken(ctx context.Context, c *app.RequestContext) {
	claims := jwt.ExtractClaims(ctx, c)
	tokenString, _, err := AccessTokenJwtMiddleware.TokenGenerator(&model.User{
		UserId: utils.Transfer(claims[IdentityKey]),
	})
	if err != nil {
		hlog.CtxErrorf(ctx, "generate access token failed: %v", err)
		return
	}
	c.Header("New-Access-Token", tokenString)
}

// ConvertJWTPayloadToString 从payload中取出当前用户id
func ConvertJWTPayloadToString(ctx context.Context, c *app.RequestContext) (string, error) {
	claims := jwt.ExtractClaims(ctx, c)
	v, ok := claims[IdentityKey]
	if !ok {
		return "", errno.TokenInvailedErr
	}
	return utils.ConvertInt64ToString(utils.Transfer(v)), nil
}
