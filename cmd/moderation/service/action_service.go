package service

import (
	"context"
	"time"

	"Nestling.com/cmd/model"
	"Nestling.com/cmd/moderation/dal/db"
	postdb "Nestling.com/cmd/post/dal/db"
	userdb "Nestling.com/cmd/user/dal/db"
	"Nestling.com/pkg/constants"
	"Nestling.com/pkg/errno"
	"github.com/pkg/errors"
)

type ActionService struct {
	ctx context.Context
}

func NewActionService(ctx context.Context) *ActionService {
	return &ActionService{ctx: ctx}
}

// checkModerator 处罚操作只有版主能做
func (v *ActionService) checkModerator(moderatorId int64) error {
	moderator, exist, err := userdb.GetUserById(v.ctx, moderatorId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetUserById failed")
	}
	if !exist {
		return errno.UserNotExistErr
	}
	if moderator.Power < constants.PowerModerator {
		return errno.PermissionErr
	}
	return nil
}

// ApplyUserAction ban和mute带时限，warn只留记录
func (v *ActionService) ApplyUserAction(actionType string, userId, moderatorId int64, reason string, duration time.Duration) (*model.ModerationHistory, error) {
	if err := v.checkModerator(moderatorId); err != nil {
		return nil, err
	}
	switch actionType {
	case constants.ModActionBan, constants.ModActionMute, constants.ModActionWarn:
	default:
		return nil, errno.ParamErr.WithMessage("unknown action type")
	}
	if _, exist, err := userdb.GetUserById(v.ctx, userId); err != nil {
		return nil, errors.WithMessage(err, "dao.GetUserById failed")
	} else if !exist {
		return nil, errno.UserNotExistErr
	}

	now := time.Now()
	history := &model.ModerationHistory{
		UserId:      userId,
		ActionType:  actionType,
		Reason:      reason,
		IsActive:    actionType != constants.ModActionWarn,
		StartDate:   now.Format(constants.DataFormate),
		ModeratorId: moderatorId,
		CreatedAt:   now.Format(constants.DataFormate),
	}
	if duration > 0 {
		history.EndDate = now.Add(duration).Format(constants.DataFormate)
	}
	if err := db.CreateModerationHistory(v.ctx, history); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateModerationHistory failed")
	}
	return history, nil
}

// RemovePost 版主下架帖子并留痕
func (v *ActionService) RemovePost(postId, moderatorId int64, reason string) error {
	if err := v.checkModerator(moderatorId); err != nil {
		return err
	}
	post, exist, err := postdb.GetPostById(v.ctx, postId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetPostById failed")
	}
	if !exist {
		return errno.NotFoundErr.WithMessage("post not found")
	}
	if err = postdb.DeletePost(v.ctx, postId); err != nil {
		return errors.WithMessage(err, "dao.DeletePost failed")
	}

	// 帖子作者存的是profile id，处罚记录落到对应的user id上
	var authorUserId int64
	if profile, ok, err := userdb.GetProfileById(v.ctx, post.AuthorId); err != nil {
		return errors.WithMessage(err, "dao.GetProfileById failed")
	} else if ok {
		authorUserId = profile.UserId
	}

	now := time.Now().Format(constants.DataFormate)
	history := &model.ModerationHistory{
		UserId:      authorUserId,
		PostId:      postId,
		ActionType:  constants.ModActionDeletePost,
		Reason:      reason,
		IsActive:    false,
		StartDate:   now,
		ModeratorId: moderatorId,
		CreatedAt:   now,
	}
	if err = db.CreateModerationHistory(v.ctx, history); err != nil {
		return errors.WithMessage(err, "dao.CreateModerationHistory failed")
	}
	return nil
}

func (v *ActionService) LiftAction(historyId, moderatorId int64) error {
	if err := v.checkModerator(moderatorId); err != nil {
		return err
	}
	if err := db.DeactivateAction(v.ctx, historyId); err != nil {
		return errors.WithMessage(err, "dao.DeactivateAction failed")
	}
	return nil
}

func (v *ActionService) GetUserHistory(userId, moderatorId int64) ([]*model.ModerationHistory, error) {
	if err := v.checkModerator(moderatorId); err != nil {
		return nil, err
	}
	history, err := db.ListModerationHistory(v.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListModerationHistory failed")
	}
	return history, nil
}
