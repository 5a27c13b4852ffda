package handlers

import (
	"Nestling.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

type CreateCommentParam struct {
	PostId  int64  `form:"post_id" json:"post_id"`
	Content string `form:"content" json:"content"`
}

type CreateReplyParam struct {
	CommentId int64  `form:"comment_id" json:"comment_id"`
	Content   string `form:"content" json:"content"`
}

type ListCommentParam struct {
	PostId int64  `form:"post_id" query:"post_id"`
	Offset int64  `form:"offset" query:"offset"`
	Limit  int64  `form:"limit" query:"limit"`
	PinOwn string `form:"pin_own" query:"pin_own"` // 不传按登录态取默认
}

type ListReplyParam struct {
	CommentId int64 `form:"comment_id" query:"comment_id"`
	Offset    int64 `form:"offset" query:"offset"`
	Limit     int64 `form:"limit" query:"limit"`
}

type DeleteCommentParam struct {
	CommentId int64 `form:"comment_id" json:"comment_id"`
}

type ToggleReactionParam struct {
	PostId    int64  `form:"post_id" json:"post_id"`
	CommentId int64  `form:"comment_id" json:"comment_id"`
	Kind      string `form:"kind" json:"kind"`
}
