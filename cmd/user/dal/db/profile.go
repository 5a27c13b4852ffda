package db

import (
	"context"
	"time"

	"Nestling.com/cmd/model"
	"Nestling.com/pkg/constants"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func GetProfileByUserId(ctx context.Context, userId int64) (*model.UserProfile, bool, error) {
	var profile model.UserProfile
	err := DB.WithContext(ctx).Model(&model.UserProfile{}).Where("user_id = ?", userId).First(&profile).Error
	if err == gorm.ErrRecordNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "GetProfileByUserId failed")
	}
	return &profile, true, nil
}

func GetProfileById(ctx context.Context, profileId int64) (*model.UserProfile, bool, error) {
	var profile model.UserProfile
	err := DB.WithContext(ctx).Model(&model.UserProfile{}).Where("profile_id = ?", profileId).First(&profile).Error
	if err == gorm.ErrRecordNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "GetProfileById failed")
	}
	return &profile, true, nil
}

func UpdateProfile(ctx context.Context, userId int64, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now().Format(constants.DataFormate)
	if err := DB.WithContext(ctx).Model(&model.UserProfile{}).Where("user_id = ?", userId).
		Updates(fields).Error; err != nil {
		return errors.Wrapf(err, "UpdateProfile failed")
	}
	return nil
}
