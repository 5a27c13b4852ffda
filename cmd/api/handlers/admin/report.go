package handlers

import (
	"context"

	"Nestling.com/cmd/moderation/service"
	"Nestling.com/pkg/errno"
	"Nestling.com/pkg/jwt"
	"Nestling.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// CreateReport 任何登录用户都能上报
func CreateReport(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var UserId int64
	var param CreateReportParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if v, err = jwt.ConvertJWTPayloadToString(ctx, c); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	} else {
		UserId = utils.Transfer(v)
	}
	report, err := service.NewReportService(ctx).CreateReport(
		param.Type, param.ItemId, param.PerpetratorId, UserId, param.Reason, param.Description)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, report)
}

func ListReports(ctx context.Context, c *app.RequestContext) {
	var err error
	var param ListReportParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	reports, total, err := service.NewReportService(ctx).ListReports(param.Status, param.Offset, param.Limit)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"reports": reports,
		"total":   total,
	})
}

func ResolveReport(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var UserId int64
	var param ResolveReportParam
	if err = c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if v, err = jwt.ConvertJWTPayloadToString(ctx, c); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	} else {
		UserId = utils.Transfer(v)
	}
	if err = service.NewReportService(ctx).ResolveReport(param.ReportId, UserId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
