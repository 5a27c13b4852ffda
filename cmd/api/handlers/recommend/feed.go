package handlers

import (
	"context"

	handlers "Nestling.com/cmd/api/handlers/interaction"
	postsvc "Nestling.com/cmd/post/service"
	recdb "Nestling.com/cmd/recommend/dal/db"
	"Nestling.com/cmd/recommend/service"
	"Nestling.com/pkg/errno"
	"Nestling.com/pkg/jwt"
	"Nestling.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func SendResponse(c *app.RequestContext, err error, data interface{}) {
	handlers.SendResponse(c, err, data)
}

type FeedParam struct {
	Limit int64 `form:"limit" query:"limit"`
}

var engine = service.NewEngine(
	service.NewCollaborativeFiltering(recdb.NewGormReader()),
	service.NewContentBased(recdb.NewGormReader()),
)

// Feed 登录用户走推荐引擎，匿名访客退回热榜
func Feed(ctx context.Context, c *app.RequestContext) {
	var err error
	var param FeedParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var UserId int64
	if v, err := jwt.ConvertJWTPayloadToString(ctx, c); err == nil {
		UserId = utils.Transfer(v)
	}

	if UserId <= 0 {
		posts, err := postsvc.NewHotFeedService(ctx).GetHotFeed(param.Limit)
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		SendResponse(c, errno.Success, posts)
		return
	}

	posts, err := service.NewFeedService(ctx, engine).GetFeed(UserId, param.Limit)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, posts)
}
