package service

import (
	"context"
	"time"

	moddb "Nestling.com/cmd/moderation/dal/db"
	"Nestling.com/cmd/model"
	"Nestling.com/cmd/user/dal/db"
	"Nestling.com/pkg/constants"
	"Nestling.com/pkg/errno"
	"Nestling.com/pkg/utils"
	"github.com/pkg/errors"
)

type LoginUserService struct {
	ctx context.Context
}

func NewLoginUserService(ctx context.Context) *LoginUserService {
	return &LoginUserService{ctx: ctx}
}

// LoginUser 登录名可以是用户名也可以是邮箱
func (v *LoginUserService) LoginUser(username, password string) (*model.User, error) {
	user, exist, err := db.GetUserByName(v.ctx, username)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUserByName failed")
	}
	if !exist && utils.IsValidEmail(username) {
		if user, exist, err = db.GetUserByEmail(v.ctx, username); err != nil {
			return nil, errors.WithMessage(err, "dao.GetUserByEmail failed")
		}
	}
	if !exist {
		return nil, errno.UserNotExistErr
	}

	if !user.Active {
		createdAt := utils.ConvertStringToTimestamp(user.CreatedAt)
		if time.Now().Unix()-createdAt > constants.ActivationExpiry {
			if err := db.DeleteExpiredInactiveUser(v.ctx, user.Email); err != nil {
				return nil, errors.WithMessage(err, "prune expired user failed")
			}
			return nil, errno.UserNotExistErr
		}
		return nil, errno.UserInactiveErr
	}

	if err, ok := utils.VerifyPassword(password, user.Password); err != nil || !ok {
		return nil, errno.AuthorizationErr.WithMessage("wrong username or password")
	}

	banned, err := moddb.HasActiveBan(v.ctx, user.UserId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.HasActiveBan failed")
	}
	if banned {
		return nil, errno.UserBannedErr
	}
	return user, nil
}
