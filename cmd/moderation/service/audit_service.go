package service

import (
	"context"

	interdb "Nestling.com/cmd/interaction/dal/db"
	"Nestling.com/cmd/model"
	"Nestling.com/cmd/moderation/dal/db"
	postdb "Nestling.com/cmd/post/dal/db"
	userdb "Nestling.com/cmd/user/dal/db"
	"Nestling.com/pkg/constants"
	"github.com/pkg/errors"
)

// UserAudit 一个用户的完整违规画像
type UserAudit struct {
	History  []*model.ModerationHistory `json:"history"`
	Posts    []*model.Post              `json:"posts"`
	Comments []*model.Comment           `json:"comments"`
	Reports  []*model.Report            `json:"reports"`
}

type AuditService struct {
	ctx context.Context
}

func NewAuditService(ctx context.Context) *AuditService {
	return &AuditService{ctx: ctx}
}

// AuditUser 版主审查用户：处罚史、发帖、评论、被上报记录一次取齐
func (v *AuditService) AuditUser(userId, moderatorId int64) (*UserAudit, error) {
	if err := NewActionService(v.ctx).checkModerator(moderatorId); err != nil {
		return nil, err
	}

	audit := &UserAudit{}
	var err error
	if audit.History, err = db.ListModerationHistory(v.ctx, userId); err != nil {
		return nil, errors.WithMessage(err, "dao.ListModerationHistory failed")
	}
	if audit.Reports, err = db.ListReportsAgainst(v.ctx, userId); err != nil {
		return nil, errors.WithMessage(err, "dao.ListReportsAgainst failed")
	}

	profile, ok, err := userdb.GetProfileByUserId(v.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetProfileByUserId failed")
	}
	if ok {
		if audit.Posts, _, err = postdb.ListPostsByAuthor(v.ctx, profile.ProfileId, 0, constants.MaxPageSize); err != nil {
			return nil, errors.WithMessage(err, "dao.ListPostsByAuthor failed")
		}
		if audit.Comments, err = interdb.ListCommentsByAuthor(v.ctx, profile.ProfileId); err != nil {
			return nil, errors.WithMessage(err, "dao.ListCommentsByAuthor failed")
		}
	}
	return audit, nil
}
