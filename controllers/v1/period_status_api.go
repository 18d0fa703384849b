package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"hr-evaluation-backend/controllers"
	evaluationperiodhandler "hr-evaluation-backend/lib/evaluation-period"
	evaluationstatushandler "hr-evaluation-backend/lib/evaluation-status"
	xlsexport "hr-evaluation-backend/lib/export/xls"
	apimodels "hr-evaluation-backend/models/api"
)

type periodStatusApiController struct {
	controllers.BaseAPIController
}

func InitPeriodStatusApiRouters(app *fiber.App) {
	controller := periodStatusApiController{}
	app.Route("periods/:periodId", func(router fiber.Router) {
		router.Get("status", controller.list)
		router.Get("export/status", controller.export)
	})
}

// @Summary Статус оценки сотрудников периода
// @Tags Статус оценки
// @Description Сводный статус оценки всех сотрудников с линиями оценки в периоде
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   periodId          	path    	string  true    "period ID"
// @Success 200 {object} apimodels.Response{data=[]evaluationapimodels.EmployeeEvaluationStatus}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/periods/{periodId}/status [get]
func (c *periodStatusApiController) list(ctx *fiber.Ctx) error {
	periodID, err := c.GetIDByKey(ctx, "periodId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if _, err = evaluationperiodhandler.Instance.Get(periodID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения периода оценки")
	}

	list, err := evaluationstatushandler.Instance.ListPeriod(periodID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения статусов оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Выгрузка статусов оценки в Excel
// @Tags Статус оценки
// @Description Выгрузка статусов оценки сотрудников периода в Excel
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   periodId          	path    	string  true    "period ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/periods/{periodId}/export/status [get]
func (c *periodStatusApiController) export(ctx *fiber.Ctx) error {
	periodID, err := c.GetIDByKey(ctx, "periodId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	period, err := evaluationperiodhandler.Instance.Get(periodID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения периода оценки")
	}

	list, err := evaluationstatushandler.Instance.ListPeriod(periodID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения статусов оценки")
	}
	data, err := xlsexport.Instance.ExportPeriodStatus(period.Name, list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки статусов оценки в Excel")
	}
	fileName := fmt.Sprintf("evaluation-status-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}
