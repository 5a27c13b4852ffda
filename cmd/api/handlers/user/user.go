package handlers

import (
	handlers "Nestling.com/cmd/api/handlers/interaction"
	"github.com/cloudwego/hertz/pkg/app"
)

// SendResponse 复用统一的响应封装
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	handlers.SendResponse(c, err, data)
}

type RegisterParam struct {
	UserName string `form:"user_name" json:"user_name"`
	PassWord string `form:"password" json:"password"`
	Email    string `form:"email" json:"email"`
}

type ActivateParam struct {
	Email string `form:"email" json:"email"`
	Code  string `form:"code" json:"code"`
}

type LoginParam struct {
	UserName string `form:"user_name" json:"user_name"`
	PassWord string `form:"password" json:"password"`
}

type UpdateProfileParam struct {
	DisplayName string `form:"display_name" json:"display_name"`
	Bio         string `form:"bio" json:"bio"`
}
