package service

import (
	"context"
	"fmt"
	"time"

	"Nestling.com/cmd/model"
	"Nestling.com/cmd/user/dal/db"
	"Nestling.com/cmd/user/infras/redis"
	"Nestling.com/pkg/constants"
	"Nestling.com/pkg/errno"
	"Nestling.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type CreateUserService struct {
	ctx context.Context
}

func NewCreateUserService(ctx context.Context) *CreateUserService {
	return &CreateUserService{ctx: ctx}
}

func (v *CreateUserService) CreateUser(username, password, email string) error {
	if !utils.IsValidUsername(username) {
		return errno.ParamErr.WithMessage("username must be 3-15 chars of a-z, 0-9 and _")
	}
	if !utils.IsValidEmail(email) {
		return errno.ParamErr.WithMessage("invalid email address")
	}
	if len(password) < constants.MinPasswordLength {
		return errno.ParamErr.WithMessage("password must be at least 8 chars")
	}

	if err := v.checkOccupied(username, email); err != nil {
		return err
	}

	passWord, err := utils.Crypt(password)
	if err != nil {
		return errors.WithMessage(err, "Password fail to crypt")
	}
	now := time.Now().Format(constants.DataFormate)
	user := &model.User{
		UserName:  username,
		Password:  passWord,
		Email:     email,
		Active:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err = db.CreateUserWithProfile(v.ctx, user, username); err != nil {
		return errors.WithMessage(err, "dao.CreateUserWithProfile failed")
	}

	code, err := utils.GenerateActivationCode()
	if err != nil {
		return errors.WithMessage(err, "generate activation code failed")
	}
	if err = redis.StoreActivationCode(v.ctx, email, code); err != nil {
		return errors.WithMessage(err, "store activation code failed")
	}
	// 邮件失败不回滚注册，激活码可重新申请
	if err = utils.SendActivationEmail(email, username, code); err != nil {
		hlog.Errorf("send activation email to %s failed: %v", email, err)
	}
	return nil
}

// checkOccupied 用户名或邮箱被占用时报错，但超过一小时未激活的旧账户先清理再放行
func (v *CreateUserService) checkOccupied(username, email string) error {
	if user, exist, err := db.GetUserByName(v.ctx, username); err != nil {
		return errors.WithMessage(err, "dao.GetUserByName failed")
	} else if exist {
		if !v.expired(user) {
			return errno.DuplicateErr.WithMessage(v.occupiedMessage(user, "username already taken"))
		}
		if err := db.DeleteExpiredInactiveUser(v.ctx, user.Email); err != nil {
			return errors.WithMessage(err, "prune expired user failed")
		}
	}
	if user, exist, err := db.GetUserByEmail(v.ctx, email); err != nil {
		return errors.WithMessage(err, "dao.GetUserByEmail failed")
	} else if exist {
		if !v.expired(user) {
			return errno.DuplicateErr.WithMessage(v.occupiedMessage(user, "email already registered"))
		}
		if err := db.DeleteExpiredInactiveUser(v.ctx, user.Email); err != nil {
			return errors.WithMessage(err, "prune expired user failed")
		}
	}
	return nil
}

// occupiedMessage 占位的是未激活账户时提示还剩多少分钟释放
func (v *CreateUserService) occupiedMessage(user *model.User, base string) string {
	if user.Active {
		return base
	}
	createdAt := utils.ConvertStringToTimestamp(user.CreatedAt)
	remaining := (constants.ActivationExpiry - (time.Now().Unix() - createdAt) + 59) / 60
	return fmt.Sprintf("%s, the account expires in %d minutes unless activated", base, remaining)
}

func (v *CreateUserService) expired(user *model.User) bool {
	if user.Active {
		return false
	}
	createdAt := utils.ConvertStringToTimestamp(user.CreatedAt)
	return time.Now().Unix()-createdAt > constants.ActivationExpiry
}
