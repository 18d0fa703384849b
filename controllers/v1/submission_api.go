package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-evaluation-backend/controllers"
	evaluationsubmissionhandler "hr-evaluation-backend/lib/evaluation-submission"
	"hr-evaluation-backend/middleware"
	apimodels "hr-evaluation-backend/models/api"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
)

type submissionApiController struct {
	controllers.BaseAPIController
}

func InitSubmissionApiRouters(app *fiber.App) {
	controller := submissionApiController{}
	app.Route("periods/:periodId/employees/:employeeId/submissions", func(router fiber.Router) {
		router.Post("criteria", controller.submitCriteria)
		router.Post("self", controller.submitSelf)
		router.Post("downward", controller.submitDownward)
	})
}

func (c *submissionApiController) getKeys(ctx *fiber.Ctx) (periodID, employeeID string, err error) {
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

// критерии и самооценку отправляет сам сотрудник или администратор
func isOwnerOrAdmin(ctx *fiber.Ctx, employeeID string) bool {
	return middleware.GetUserRole(ctx).IsAdmin() || middleware.GetUserID(ctx) == employeeID
}

// @Summary Отправка критериев оценки
// @Tags Отправка оценок
// @Description Отправка критериев оценки сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   periodId          	path    	string  true    "period ID"
// @Param   employeeId          path    	string  true    "employee ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/evaluation/periods/{periodId}/employees/{employeeId}/submissions/criteria [post]
func (c *submissionApiController) submitCriteria(ctx *fiber.Ctx) error {
	periodID, employeeID, err := c.getKeys(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if !isOwnerOrAdmin(ctx, employeeID) {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
	}

	if err = evaluationsubmissionhandler.Instance.SubmitCriteria(periodID, employeeID, middleware.GetUserID(ctx)); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки критериев оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отправка самооценки
// @Tags Отправка оценок
// @Description Сохранение самооценки по WBS и отправка оценщику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   periodId          	path    	string  true    "period ID"
// @Param   employeeId          path    	string  true    "employee ID"
// @Param	body body	 evaluationapimodels.SelfEvaluationData	true	"request body"
// @Success 200 {object} apimodels.Response{data=evaluationapimodels.SubmitResultView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/evaluation/periods/{periodId}/employees/{employeeId}/submissions/self [post]
func (c *submissionApiController) submitSelf(ctx *fiber.Ctx) error {
	periodID, employeeID, err := c.getKeys(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if !isOwnerOrAdmin(ctx, employeeID) {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
	}
	var payload evaluationapimodels.SelfEvaluationData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	result, err := evaluationsubmissionhandler.Instance.SubmitSelfEvaluation(periodID, employeeID, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки самооценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Оценка сотрудника оценщиком
// @Tags Отправка оценок
// @Description Сохранение и отправка оценки первой или второй линии, оценщик - текущий пользователь
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   periodId          	path    	string  true    "period ID"
// @Param   employeeId          path    	string  true    "employee ID"
// @Param	body body	 evaluationapimodels.DownwardEvaluationData	true	"request body"
// @Success 200 {object} apimodels.Response{data=evaluationapimodels.SubmitResultView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/evaluation/periods/{periodId}/employees/{employeeId}/submissions/downward [post]
func (c *submissionApiController) submitDownward(ctx *fiber.Ctx) error {
	periodID, employeeID, err := c.getKeys(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload evaluationapimodels.DownwardEvaluationData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	result, err := evaluationsubmissionhandler.Instance.SubmitDownward(periodID, employeeID, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}
