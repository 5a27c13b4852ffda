package handlers

import (
	"context"
	"io"

	"Nestling.com/cmd/post/service"
	"Nestling.com/pkg/errno"
	"Nestling.com/pkg/jwt"
	"Nestling.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// CreatePost 帖子字段和配图走同一个multipart表单，图片字段名为images
func CreatePost(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var UserId int64
	var param CreatePostParam
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

	var images []service.ImageUpload
	if form, err := c.MultipartForm(); err == nil {
		for _, fileHeader := range form.File["images"] {
			file, err := fileHeader.Open()
			if err != nil {
				SendResponse(c, errno.ConvertErr(err), nil)
				return
			}
			data, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				SendResponse(c, errno.ConvertErr(err), nil)
				return
			}
			images = append(images, service.ImageUpload{
				Data:        data,
				ContentType: fileHeader.Header.Get("Content-Type"),
			})
		}
	}

	post, err := service.NewCreatePostService(ctx).CreatePost(UserId, param.Title, param.Content, param.Tag, param.OptionalTags, images)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, post)
}
