package handlers

import (
	handlers "Nestling.com/cmd/api/handlers/interaction"
	"github.com/cloudwego/hertz/pkg/app"
)

func SendResponse(c *app.RequestContext, err error, data interface{}) {
	handlers.SendResponse(c, err, data)
}

type CreateReportParam struct {
	Type          string `form:"type" json:"type"`
	ItemId        int64  `form:"item_id" json:"item_id"`
	PerpetratorId int64  `form:"perpetrator_id" json:"perpetrator_id"`
	Reason        string `form:"reason" json:"reason"`
	Description   string `form:"description" json:"description"`
}

type ListReportParam struct {
	Status string `form:"status" query:"status"`
	Offset int64  `form:"offset" query:"offset"`
	Limit  int64  `form:"limit" query:"limit"`
}

type ResolveReportParam struct {
	ReportId int64 `form:"report_id" json:"report_id"`
}

type UserActionParam struct {
	UserId   int64  `form:"user_id" json:"user_id"`
	Action   string `form:"action" json:"action"`
	Reason   string `form:"reason" json:"reason"`
	Duration int64  `form:"duration" json:"duration"` // 秒，0表示不定期
}

type RemovePostParam struct {
	PostId int64  `form:"post_id" json:"post_id"`
	Reason string `form:"reason" json:"reason"`
}

type LiftActionParam struct {
	HistoryId int64 `form:"history_id" json:"history_id"`
}

type AuditUserParam struct {
	UserId int64 `form:"user_id" query:"user_id"`
}
