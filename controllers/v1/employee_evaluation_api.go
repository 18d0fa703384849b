package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-evaluation-backend/controllers"
	activityloghandler "hr-evaluation-backend/lib/activity-log"
	evaluationlinehandler "hr-evaluation-backend/lib/evaluation-line"
	evaluationstatushandler "hr-evaluation-backend/lib/evaluation-status"
	stepapprovalhandler "hr-evaluation-backend/lib/step-approval"
	wbsassignmenthandler "hr-evaluation-backend/lib/wbs-assignment"
	"hr-evaluation-backend/middleware"
	"hr-evaluation-backend/models"
	apimodels "hr-evaluation-backend/models/api"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
)

type employeeEvaluationApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeEvaluationApiRouters(app *fiber.App) {
	controller := employeeEvaluationApiController{}
	app.Route("periods/:periodId/employees/:employeeId", func(router fiber.Router) {
		router.Get("evaluation_line", controller.getLine)
		router.Put("evaluation_line/resolve", controller.resolveLine) // пересчет линий оценки
		router.Get("step_approval", controller.getStepApproval)
		router.Put("step_approval/:step", controller.updateStepApproval)
		router.Get("status", controller.status)
		router.Get("activity_log", controller.activityLog)
	})
}

func (c *employeeEvaluationApiController) getKeys(ctx *fiber.Ctx) (periodID, employeeID string, err error) {
	periodID, err = c.GetIDByKey(ctx, "periodId")
	if err != nil {
		return "", "", err
	}
	employeeID, err = c.GetIDByKey(ctx, "employeeId")
	if err != nil {
		return "", "", err
	}
	return periodID, employeeID, nil
}

// @Summary Линия оценки сотрудника
// @Tags Линия оценки
// @Description Оценщики первой и второй линии сотрудника в периоде
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   periodId          	path    	string  true    "period ID"
// @Param   employeeId          path    	string  true    "employee ID"
// @Success 200 {object} apimodels.Response{data=evaluationapimodels.EvaluationLineView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/periods/{periodId}/employees/{employeeId}/evaluation_line [get]
func (c *employeeEvaluationApiController) getLine(ctx *fiber.Ctx) error {
	periodID, employeeID, err := c.getKeys(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	view, err := evaluationlinehandler.Instance.Get(periodID, employeeID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения линии оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Пересчет линии оценки
// @Tags Линия оценки
// @Description Повторное определение оценщиков по текущему руководителю и руководителям проектов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   periodId          	path    	string  true    "period ID"
// @Param   employeeId          path    	string  true    "employee ID"
// @Success 200 {object} apimodels.Response{data=evaluationapimodels.EvaluationLineView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/periods/{periodId}/employees/{employeeId}/evaluation_line/resolve [put]
func (c *employeeEvaluationApiController) resolveLine(ctx *fiber.Ctx) error {
	periodID, employeeID, err := c.getKeys(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = wbsassignmenthandler.Instance.ResolveLines(periodID, employeeID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка пересчета линии оценки")
	}
	view, err := evaluationlinehandler.Instance.Get(periodID, employeeID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения линии оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Статусы подтверждения этапов
// @Tags Подтверждение этапов
// @Description Статусы подтверждения этапов оценки сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   periodId          	path    	string  true    "period ID"
// @Param   employeeId          path    	string  true    "employee ID"
// @Success 200 {object} apimodels.Response{data=evaluationapimodels.StepApprovalView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/periods/{periodId}/employees/{employeeId}/step_approval [get]
func (c *employeeEvaluationApiController) getStepApproval(ctx *fiber.Ctx) error {
	periodID, employeeID, err := c.getKeys(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	view, err := stepapprovalhandler.Instance.Get(periodID, employeeID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения статусов подтверждения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Изменение статуса этапа
// @Tags Подтверждение этапов
// @Description Подтверждение этапа (с каскадом), отправка на доработку или возврат в ожидание
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   periodId          	path    	string  true    "period ID"
// @Param   employeeId          path    	string  true    "employee ID"
// @Param   step          		path    	string  true    "criteria/self/primary/secondary"
// @Param	body body	 evaluationapimodels.StepApprovalUpdateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=evaluationapimodels.StepApprovalView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/periods/{periodId}/employees/{employeeId}/step_approval/{step} [put]
func (c *employeeEvaluationApiController) updateStepApproval(ctx *fiber.Ctx) error {
	periodID, employeeID, err := c.getKeys(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	step := models.EvaluationStep(ctx.Params("step"))
	if !step.IsValid() {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("неизвестный этап оценки"))
	}
	var payload evaluationapimodels.StepApprovalUpdateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(step); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	view, err := stepapprovalhandler.Instance.Update(periodID, employeeID, step, payload, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения статуса этапа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Статус оценки сотрудника
// @Tags Статус оценки
// @Description Сводный статус оценки сотрудника в периоде
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   periodId          	path    	string  true    "period ID"
// @Param   employeeId          path    	string  true    "employee ID"
// @Success 200 {object} apimodels.Response{data=evaluationapimodels.EmployeeEvaluationStatus}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/periods/{periodId}/employees/{employeeId}/status [get]
func (c *employeeEvaluationApiController) status(ctx *fiber.Ctx) error {
	periodID, employeeID, err := c.getKeys(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	view, err := evaluationstatushandler.Instance.Get(periodID, employeeID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения статуса оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Журнал действий
// @Tags Статус оценки
// @Description Журнал действий по оценке сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   periodId          	path    	string  true    "period ID"
// @Param   employeeId          path    	string  true    "employee ID"
// @Success 200 {object} apimodels.Response{data=[]evaluationapimodels.ActivityLogView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/periods/{periodId}/employees/{employeeId}/activity_log [get]
func (c *employeeEvaluationApiController) activityLog(ctx *fiber.Ctx) error {
	periodID, employeeID, err := c.getKeys(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := activityloghandler.Instance.List(periodID, employeeID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения журнала действий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
