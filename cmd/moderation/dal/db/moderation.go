package db

import (
	"context"
	"time"

	"Nestling.com/cmd/model"
	"Nestling.com/pkg/constants"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateReport(ctx context.Context, report *model.Report) error {
	if err := DB.WithContext(ctx).Create(report).Error; err != nil {
		return errors.Wrapf(err, "CreateReport failed")
	}
	return nil
}

func ListReportsByStatus(ctx context.Context, status string, offset, limit int64) ([]*model.Report, int64, error) {
	var reports []*model.Report
	var count int64
	query := DB.WithContext(ctx).Model(&model.Report{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListReportsByStatus count failed")
	}
	err := query.Order("created_at DESC").Offset(int(offset)).Limit(int(limit)).Find(&reports).Error
	if err != nil {
		return nil, 0, errors.Wrapf(err, "ListReportsByStatus failed")
	}
	return reports, count, nil
}

func GetReportById(ctx context.Context, reportId int64) (*model.Report, bool, error) {
	var report model.Report
	err := DB.WithContext(ctx).Where("report_id = ?", reportId).First(&report).Error
	if err == gorm.ErrRecordNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "GetReportById failed")
	}
	return &report, true, nil
}

// ResolveReport 裁决上报，记录经手的版主
func ResolveReport(ctx context.Context, reportId, moderatorId int64, status string) error {
	res := DB.WithContext(ctx).Model(&model.Report{}).Where("report_id = ?", reportId).
		Updates(map[string]interface{}{
			"status":       status,
			"moderator_id": moderatorId,
			"resolved_at":  time.Now().Format(constants.DataFormate),
		})
	if res.Error != nil {
		return errors.Wrapf(res.Error, "ResolveReport failed")
	}
	return nil
}

// ListReportsAgainst 针对某个用户的全部上报
func ListReportsAgainst(ctx context.Context, userId int64) ([]*model.Report, error) {
	var reports []*model.Report
	err := DB.WithContext(ctx).Where("perpetrator_id = ?", userId).
		Order("created_at DESC").Find(&reports).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListReportsAgainst failed")
	}
	return reports, nil
}

func CreateModerationHistory(ctx context.Context, history *model.ModerationHistory) error {
	if err := DB.WithContext(ctx).Create(history).Error; err != nil {
		return errors.Wrapf(err, "CreateModerationHistory failed")
	}
	return nil
}

func ListModerationHistory(ctx context.Context, userId int64) ([]*model.ModerationHistory, error) {
	var history []*model.ModerationHistory
	err := DB.WithContext(ctx).Where("user_id = ?", userId).
		Order("created_at DESC").Find(&history).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListModerationHistory failed")
	}
	return history, nil
}

// HasActiveBan 过期的封禁顺带失效
func HasActiveBan(ctx context.Context, userId int64) (bool, error) {
	now := time.Now().Format(constants.DataFormate)
	if err := DB.WithContext(ctx).Model(&model.ModerationHistory{}).
		Where("user_id = ? AND action_type = ? AND is_active = ? AND end_date != '' AND end_date < ?",
			userId, constants.ModActionBan, true, now).
		Update("is_active", false).Error; err != nil {
		return false, errors.Wrapf(err, "expire bans failed")
	}

	var count int64
	err := DB.WithContext(ctx).Model(&model.ModerationHistory{}).
		Where("user_id = ? AND action_type = ? AND is_active = ?", userId, constants.ModActionBan, true).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrapf(err, "HasActiveBan failed")
	}
	return count > 0, nil
}

// DeactivateAction 解除某条处罚
func DeactivateAction(ctx context.Context, historyId int64) error {
	res := DB.WithContext(ctx).Model(&model.ModerationHistory{}).
		Where("history_id = ?", historyId).Update("is_active", false)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "DeactivateAction failed")
	}
	return nil
}
