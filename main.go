package main

import (
	"context"
	"fmt"
	"time"

	"Nestling.com/cmd/api/router"
	interdb "Nestling.com/cmd/interaction/dal/db"
	interredis "Nestling.com/cmd/interaction/infras/redis"
	moddb "Nestling.com/cmd/moderation/dal/db"
	postdb "Nestling.com/cmd/post/dal/db"
	"Nestling.com/cmd/post/infras/es"
	userdb "Nestling.com/cmd/user/dal/db"
	userredis "Nestling.com/cmd/user/infras/redis"
	"Nestling.com/config"
	"Nestling.com/config/jaeger"
	"Nestling.com/config/pprof"
	"Nestling.com/pkg/cache"
	"Nestling.com/pkg/errno"
	"Nestling.com/pkg/jwt"
	"Nestling.com/pkg/mq"
	"Nestling.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
)

// behaviorSink 把MQ里的浏览和分享事件落到互动表
type behaviorSink struct{}

func (behaviorSink) HandleView(ctx context.Context, event *mq.ViewEvent) error {
	return interdb.CreatePostView(ctx, event.UserId, event.PostId, event.Timestamp)
}

func (behaviorSink) HandleShare(ctx context.Context, event *mq.ShareEvent) error {
	return interdb.CreatePostShare(ctx, event.UserId, event.PostId, event.Timestamp)
}

func Init() {
	config.Init()

	userdb.Init()
	postdb.Init()
	interdb.Init()
	moddb.Init()

	userredis.Load()
	interredis.Load()
	cache.Load()

	if err := oss.InitMinio(); err != nil {
		hlog.Fatalf("minio init failed: %v", err)
	}
	if err := es.InitEs(); err != nil {
		hlog.Fatalf("elastic init failed: %v", err)
	}
	if err := mq.InitMq(); err != nil {
		hlog.Fatalf("rabbitmq init failed: %v", err)
	}
	if err := mq.Manager.StartConsumers(context.Background(), behaviorSink{}); err != nil {
		hlog.Fatalf("start consumers failed: %v", err)
	}
}

func main() {
	Init()
	pprof.Load()

	closer := jaeger.Init(config.ConfigInfo.Jaeger.Service)
	defer closer.Close()

	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(64*1024*1024),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8870", "http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	jwt.AccessTokenJwtInit()
	jwt.RefreshTokenJwtInit()

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("[Recovery] err=%v", err),
			})
		})))

	router.Register(r)
	r.Spin()
}
