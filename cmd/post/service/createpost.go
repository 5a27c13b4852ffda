package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"Nestling.com/cmd/model"
	"Nestling.com/cmd/post/dal/db"
	"Nestling.com/cmd/post/infras/es"
	userdb "Nestling.com/cmd/user/dal/db"
	"Nestling.com/pkg/cache"
	"Nestling.com/pkg/constants"
	"Nestling.com/pkg/errno"
	"Nestling.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

// ImageUpload 一张待上传的配图
type ImageUpload struct {
	Data        []byte
	ContentType string
}

type CreatePostService struct {
	ctx context.Context
}

func NewCreatePostService(ctx context.Context) *CreatePostService {
	return &CreatePostService{ctx: ctx}
}

func (v *CreatePostService) CreatePost(userId int64, title, content, tag string, optionalTags []string, images []ImageUpload) (*model.Post, error) {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > constants.MaxTitleLength {
		return nil, errno.ParamErr.WithMessage("title must be 1-255 chars")
	}
	if strings.TrimSpace(content) == "" {
		return nil, errno.ParamErr.WithMessage("content is required")
	}
	if !constants.IsAllowedCategory(tag) {
		return nil, errno.ParamErr.WithMessage("unknown category: " + tag)
	}
	if len(optionalTags) > constants.MaxOptionalTags {
		return nil, errno.ParamErr.WithMessage("too many optional tags")
	}
	seen := map[string]bool{tag: true}
	cleaned := make([]string, 0, len(optionalTags))
	for _, t := range optionalTags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		if !constants.IsAllowedCategory(t) {
			return nil, errno.ParamErr.WithMessage("unknown category: " + t)
		}
		seen[t] = true
		cleaned = append(cleaned, t)
	}
	if len(images) > constants.MaxImagesPerPost {
		return nil, errno.ParamErr.WithMessage("too many images")
	}

	profile, exist, err := userdb.GetProfileByUserId(v.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetProfileByUserId failed")
	}
	if !exist {
		return nil, errno.UserNotExistErr
	}

	now := time.Now().Format(constants.DataFormate)
	post := &model.Post{
		AuthorId:     profile.ProfileId,
		Title:        title,
		Content:      content,
		Tag:          tag,
		OptionalTags: strings.Join(cleaned, ","),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if post, err = db.CreatePost(v.ctx, post); err != nil {
		return nil, errors.WithMessage(err, "dao.CreatePost failed")
	}

	if len(images) > 0 {
		urls := make([]string, 0, len(images))
		for _, img := range images {
			url, err := oss.UploadPostImage(v.ctx, img.Data, img.ContentType, post.PostId)
			if err != nil {
				return nil, errors.WithMessage(err, "oss.UploadPostImage failed")
			}
			urls = append(urls, url)
		}
		b, _ := json.Marshal(urls)
		post.ImageUrls = string(b)
		if err = db.UpdatePostImages(v.ctx, post.PostId, post.ImageUrls); err != nil {
			return nil, errors.WithMessage(err, "dao.UpdatePostImages failed")
		}
	}

	// 检索与热榜对新帖的可见性允许短暂滞后
	if err = es.IndexPost(v.ctx, post); err != nil {
		hlog.Errorf("index post %d failed: %v", post.PostId, err)
	}
	cache.InvalidateHotFeed(v.ctx)
	return post, nil
}
