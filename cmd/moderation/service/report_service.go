package service

import (
	"context"
	"time"

	"Nestling.com/cmd/model"
	"Nestling.com/cmd/moderation/dal/db"
	"Nestling.com/pkg/constants"
	"Nestling.com/pkg/errno"
	"github.com/pkg/errors"
)

type ReportService struct {
	ctx context.Context
}

func NewReportService(ctx context.Context) *ReportService {
	return &ReportService{ctx: ctx}
}

// CreateReport 普通用户上报违规内容或用户
func (v *ReportService) CreateReport(reportType string, itemId, perpetratorId, reporterId int64, reason, description string) (*model.Report, error) {
	switch reportType {
	case constants.ReportTypeUser, constants.ReportTypePost, constants.ReportTypeComment:
	default:
		return nil, errno.ParamErr.WithMessage("unknown report type")
	}
	if reason == "" {
		return nil, errno.ParamErr.WithMessage("reason is required")
	}
	report := &model.Report{
		Type:            reportType,
		ReportedItemId:  itemId,
		PerpetratorId:   perpetratorId,
		ReportingUserId: reporterId,
		Reason:          reason,
		Description:     description,
		Status:          constants.ReportStatusOpen,
		CreatedAt:       time.Now().Format(constants.DataFormate),
	}
	if err := db.CreateReport(v.ctx, report); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateReport failed")
	}
	return report, nil
}

func (v *ReportService) ListReports(status string, offset, limit int64) ([]*model.Report, int64, error) {
	if limit <= 0 || limit > constants.MaxPageSize {
		limit = constants.DefaultFeedSize
	}
	if offset < 0 {
		offset = 0
	}
	reports, count, err := db.ListReportsByStatus(v.ctx, status, offset, limit)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "dao.ListReportsByStatus failed")
	}
	return reports, count, nil
}

func (v *ReportService) ResolveReport(reportId, moderatorId int64) error {
	report, exist, err := db.GetReportById(v.ctx, reportId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetReportById failed")
	}
	if !exist {
		return errno.NotFoundErr.WithMessage("report not found")
	}
	if report.Status == constants.ReportStatusResolved {
		return errno.DuplicateErr.WithMessage("report already resolved")
	}
	if err = db.ResolveReport(v.ctx, reportId, moderatorId, constants.ReportStatusResolved); err != nil {
		return errors.WithMessage(err, "dao.ResolveReport failed")
	}
	return nil
}
