package router

import (
	admin "Nestling.com/cmd/api/handlers/admin"
	interaction "Nestling.com/cmd/api/handlers/interaction"
	post "Nestling.com/cmd/api/handlers/post"
	recommend "Nestling.com/cmd/api/handlers/recommend"
	user "Nestling.com/cmd/api/handlers/user"
	"Nestling.com/cmd/api/router/authfunc"
	"github.com/cloudwego/hertz/pkg/app/server"
)

// Register 公开路由不挂token校验，写操作全部要求登录
func Register(r *server.Hertz) {
	v1 := r.Group("/v1")

	u := v1.Group("/user")
	u.POST("/register", user.Register)
	u.POST("/activate", user.Activate)
	u.POST("/login", user.LoginUser)

	profile := u.Group("/profile", authfunc.Auth()...)
	profile.GET("/", user.GetProfile)
	profile.POST("/update", user.UpdateProfile)
	profile.POST("/icon", user.UploadIcon)
	profile.POST("/banner", user.UploadBanner)

	p := v1.Group("/post")
	p.GET("/detail", authfunc.OptionalAuthFunc(), post.GetPost)
	p.GET("/hot", post.HotFeed)
	p.GET("/search", post.SearchPosts)
	pAuth := p.Group("", authfunc.Auth()...)
	pAuth.POST("/create", post.CreatePost)
	pAuth.POST("/delete", post.DeletePost)
	pAuth.POST("/share", post.SharePost)

	i := v1.Group("/interaction")
	i.GET("/comment/list", authfunc.OptionalAuthFunc(), interaction.ListComment)
	i.GET("/reply/list", authfunc.OptionalAuthFunc(), interaction.ListReply)
	iAuth := i.Group("", authfunc.Auth()...)
	iAuth.POST("/comment/create", interaction.CreateComment)
	iAuth.POST("/reply/create", interaction.CreateReply)
	iAuth.POST("/comment/delete", interaction.DeleteComment)
	iAuth.POST("/post/react", interaction.TogglePostReaction)
	iAuth.POST("/comment/react", interaction.ToggleCommentReaction)

	v1.GET("/feed", authfunc.OptionalAuthFunc(), recommend.Feed)

	report := v1.Group("/report", authfunc.Auth()...)
	report.POST("/create", admin.CreateReport)

	adm := v1.Group("/admin", authfunc.Auth()...)
	adm.Use(authfunc.AdminAuthFunc())
	adm.GET("/reports", admin.ListReports)
	adm.POST("/report/resolve", admin.ResolveReport)
	adm.POST("/user/action", admin.ApplyUserAction)
	adm.POST("/post/remove", admin.RemovePost)
	adm.POST("/action/lift", admin.LiftAction)
	adm.GET("/user/audit", admin.AuditUser)
}
