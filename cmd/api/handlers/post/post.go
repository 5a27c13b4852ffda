package handlers

import (
	handlers "Nestling.com/cmd/api/handlers/interaction"
	"github.com/cloudwego/hertz/pkg/app"
)

func SendResponse(c *app.RequestContext, err error, data interface{}) {
	handlers.SendResponse(c, err, data)
}

type CreatePostParam struct {
	Title        string   `form:"title" json:"title"`
	Content      string   `form:"content" json:"content"`
	Tag          string   `form:"tag" json:"tag"`
	OptionalTags []string `form:"optional_tags" json:"optional_tags"`
}

type PostIdParam struct {
	PostId int64 `form:"post_id" query:"post_id" json:"post_id"`
}

type HotFeedParam struct {
	Limit int64 `form:"limit" query:"limit"`
}

type SearchParam struct {
	Keyword string `form:"keyword" query:"keyword"`
	Offset  int64  `form:"offset" query:"offset"`
	Limit   int64  `form:"limit" query:"limit"`
}
