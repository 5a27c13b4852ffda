package handlers

import (
	"context"
	"io"

	"Nestling.com/cmd/user/service"
	"Nestling.com/pkg/errno"
	"Nestling.com/pkg/jwt"
	"Nestling.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func GetProfile(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var UserId int64
	if v, err = jwt.ConvertJWTPayloadToString(ctx, c); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	} else {
		UserId = utils.Transfer(v)
	}
	profile, err := service.NewProfileService(ctx).GetProfile(UserId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, profile)
}

func UpdateProfile(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var UserId int64
	var param UpdateProfileParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if v, err = jwt.ConvertJWTPayloadToString(ctx, c); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	} else {
		UserId = utils.Transfer(v)
	}
	if err = service.NewProfileService(ctx).UpdateProfile(UserId, param.DisplayName, param.Bio); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// UploadIcon multipart里的file字段是图片本体
func UploadIcon(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var UserId int64
	if v, err = jwt.ConvertJWTPayloadToString(ctx, c); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	} else {
		UserId = utils.Transfer(v)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	url, err := service.NewProfileService(ctx).UploadIcon(UserId, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]string{"icon_url": url})
}

func UploadBanner(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var UserId int64
	if v, err = jwt.ConvertJWTPayloadToString(ctx, c); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	} else {
		UserId = utils.Transfer(v)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	url, err := service.NewProfileService(ctx).UploadBanner(UserId, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]string{"banner_url": url})
}
