package service

import (
	"context"

	"Nestling.com/cmd/user/dal/db"
	"Nestling.com/cmd/user/infras/redis"
	"Nestling.com/pkg/errno"
	"github.com/pkg/errors"
)

type ActivateUserService struct {
	ctx context.Context
}

func NewActivateUserService(ctx context.Context) *ActivateUserService {
	return &ActivateUserService{ctx: ctx}
}

func (v *ActivateUserService) ActivateUser(email, code string) error {
	ok, err := redis.CheckActivationCode(v.ctx, email, code)
	if err != nil {
		return errors.WithMessage(err, "check activation code failed")
	}
	if !ok {
		return errno.ParamErr.WithMessage("activation code is wrong or expired")
	}

	updated, err := db.ActivateUser(v.ctx, email)
	if err != nil {
		return errors.WithMessage(err, "dao.ActivateUser failed")
	}
	if !updated {
		return errno.UserNotExistErr
	}
	redis.DeleteActivationCode(v.ctx, email)
	return nil
}
