package model

type Report struct {
	ReportId        int64  `gorm:"column:report_id;primaryKey;autoIncrement" json:"report_id"`
	Type            string `gorm:"column:type;size:20" json:"type"` // user / post / comment
	ReportedItemId  int64  `gorm:"column:reported_item_id" json:"reported_item_id"`
	PerpetratorId   int64  `gorm:"column:perpetrator_id;index" json:"perpetrator_id"`
	ReportingUserId int64  `gorm:"column:reporting_user_id" json:"reporting_user_id"`
	Reason          string `gorm:"column:reason;size:100" json:"reason"`
	Description     string `gorm:"column:description;size:500" json:"description"`
	Status          string `gorm:"column:status;size:20" json:"status"`
	ModeratorId     int64  `gorm:"column:moderator_id" json:"moderator_id"`
	ResolvedAt      string `gorm:"column:resolved_at" json:"resolved_at"`
	CreatedAt       string `gorm:"column:created_at" json:"created_at"`
}

type ModerationHistory struct {
	HistoryId   int64  `gorm:"column:history_id;primaryKey;autoIncrement" json:"history_id"`
	UserId      int64  `gorm:"column:user_id;index" json:"user_id"`
	PostId      int64  `gorm:"column:post_id;index" json:"post_id"`
	ActionType  string `gorm:"column:action_type;size:20" json:"action_type"` // ban / mute / warn / delete_post
	Reason      string `gorm:"column:reason;size:200" json:"reason"`
	IsActive    bool   `gorm:"column:is_active" json:"is_active"`
	StartDate   string `gorm:"column:start_date" json:"start_date"`
	EndDate     string `gorm:"column:end_date" json:"end_date"`
	ModeratorId int64  `gorm:"column:moderator_id" json:"moderator_id"`
	CreatedAt   string `gorm:"column:created_at" json:"created_at"`
}
