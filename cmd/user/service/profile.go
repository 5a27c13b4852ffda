package service

import (
	"context"

	"Nestling.com/cmd/model"
	"Nestling.com/cmd/user/dal/db"
	"Nestling.com/pkg/errno"
	"Nestling.com/pkg/oss"
	"Nestling.com/pkg/utils"
	"github.com/pkg/errors"
)

type ProfileService struct {
	ctx context.Context
}

func NewProfileService(ctx context.Context) *ProfileService {
	return &ProfileService{ctx: ctx}
}

func (v *ProfileService) GetProfile(userId int64) (*model.UserProfile, error) {
	profile, exist, err := db.GetProfileByUserId(v.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetProfileByUserId failed")
	}
	if !exist {
		return nil, errno.UserNotExistErr
	}
	return profile, nil
}

func (v *ProfileService) UpdateProfile(userId int64, displayName, bio string) error {
	fields := map[string]interface{}{}
	if displayName != "" {
		fields["display_name"] = displayName
	}
	if bio != "" {
		fields["bio"] = bio
	}
	if len(fields) == 0 {
		return errno.ParamErr.WithMessage("nothing to update")
	}
	if err := db.UpdateProfile(v.ctx, userId, fields); err != nil {
		return errors.WithMessage(err, "dao.UpdateProfile failed")
	}
	return nil
}

// UploadIcon 头像传到对象存储后把URL写回资料
func (v *ProfileService) UploadIcon(userId int64, data []byte, contentType string) (string, error) {
	url, err := oss.UploadIcon(v.ctx, data, contentType, utils.ConvertInt64ToString(userId))
	if err != nil {
		return "", errors.WithMessage(err, "oss.UploadIcon failed")
	}
	if err = db.UpdateProfile(v.ctx, userId, map[string]interface{}{"icon_url": url}); err != nil {
		return "", errors.WithMessage(err, "dao.UpdateProfile failed")
	}
	return url, nil
}

func (v *ProfileService) UploadBanner(userId int64, data []byte, contentType string) (string, error) {
	url, err := oss.UploadBanner(v.ctx, data, contentType, utils.ConvertInt64ToString(userId))
	if err != nil {
		return "", errors.WithMessage(err, "oss.UploadBanner failed")
	}
	if err = db.UpdateProfile(v.ctx, userId, map[string]interface{}{"banner_url": url}); err != nil {
		return "", errors.WithMessage(err, "dao.UpdateProfile failed")
	}
	return url, nil
}
