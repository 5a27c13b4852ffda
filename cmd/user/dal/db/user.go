package db

import (
	"context"
	"time"

	"Nestling.com/cmd/model"
	"Nestling.com/pkg/constants"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateUserWithProfile(ctx context.Context, user *model.User, displayName string) (*model.User, error) {
	// 用户与资料必须同生共死
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile := &model.UserProfile{
			UserId:      user.UserId,
			DisplayName: displayName,
			CreatedAt:   user.CreatedAt,
			UpdatedAt:   user.CreatedAt,
		}
		return tx.Create(profile).Error
	})
	if err != nil {
		return nil, errors.Wrapf(err, "CreateUserWithProfile failed")
	}
	return user, nil
}

func GetUserByName(ctx context.Context, username string) (*model.User, bool, error) {
	var user model.User
	err := DB.WithContext(ctx).Model(&model.User{}).Where("user_name = ?", username).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "GetUserByName failed")
	}
	return &user, true, nil
}

func GetUserByEmail(ctx context.Context, email string) (*model.User, bool, error) {
	var user model.User
	err := DB.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "GetUserByEmail failed")
	}
	return &user, true, nil
}

func GetUserById(ctx context.Context, userId int64) (*model.User, bool, error) {
	var user model.User
	err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "GetUserById failed")
	}
	return &user, true, nil
}

// DeleteExpiredInactiveUser 未激活超过一小时的账户在下次占用检查时被惰性清理
func DeleteExpiredInactiveUser(ctx context.Context, email string) error {
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.Where("email = ?", email).First(&user).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.UserId).Delete(&model.UserProfile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return errors.Wrapf(err, "DeleteExpiredInactiveUser failed")
	}
	return nil
}

func ActivateUser(ctx context.Context, email string) (bool, error) {
	res := DB.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).
		Updates(map[string]interface{}{
			"active":     true,
			"updated_at": time.Now().Format(constants.DataFormate),
		})
	if res.Error != nil {
		return false, errors.Wrapf(res.Error, "ActivateUser failed")
	}
	return res.RowsAffected > 0, nil
}
