package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-evaluation-backend/controllers"
	wbsassignmenthandler "hr-evaluation-backend/lib/wbs-assignment"
	"hr-evaluation-backend/middleware"
	apimodels "hr-evaluation-backend/models/api"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
)

type wbsAssignmentApiController struct {
	controllers.BaseAPIController
}

func InitWbsAssignmentApiRouters(app *fiber.App) {
	controller := wbsAssignmentApiController{}
	app.Route("periods/:periodId/wbs_assignments", func(router fiber.Router) {
		router.Post("", controller.assign)
		router.Get("", controller.list)
		router.Delete(":id", controller.cancel)
	})
}

// @Summary Назначение WBS сотруднику
// @Tags Назначение WBS
// @Description Назначение WBS сотруднику, линии оценки пересчитываются
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   periodId          	path    	string  true    "period ID"
// @Param	body body	 evaluationapimodels.WbsAssignmentData	true	"request body"
// @Success 200 {object} apimodels.Response{data=evaluationapimodels.WbsAssignmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/periods/{periodId}/wbs_assignments [post]
func (c *wbsAssignmentApiController) assign(ctx *fiber.Ctx) error {
	periodID, err := c.GetIDByKey(ctx, "periodId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload evaluationapimodels.WbsAssignmentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	view, err := wbsassignmenthandler.Instance.Assign(periodID, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка назначения WBS")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Список назначений WBS
// @Tags Назначение WBS
// @Description Список назначений WBS периода, с фильтром по сотруднику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   periodId          	path    	string  true    "period ID"
// @Param   employee_id         query    	string  false   "employee ID"
// @Success 200 {object} apimodels.Response{data=[]evaluationapimodels.WbsAssignmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/periods/{periodId}/wbs_assignments [get]
func (c *wbsAssignmentApiController) list(ctx *fiber.Ctx) error {
	periodID, err := c.GetIDByKey(ctx, "periodId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := wbsassignmenthandler.Instance.List(periodID, ctx.Query("employee_id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка назначений WBS")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Отмена назначения WBS
// @Tags Назначение WBS
// @Description Отмена назначения WBS, оценщик второй линии снимается если у сотрудника не осталось назначений на WBS
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   periodId          	path    	string  true    "period ID"
// @Param   id          		path    	string  true    "assignment ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/periods/{periodId}/wbs_assignments/{id} [delete]
func (c *wbsAssignmentApiController) cancel(ctx *fiber.Ctx) error {
	periodID, err := c.GetIDByKey(ctx, "periodId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = wbsassignmenthandler.Instance.Cancel(periodID, id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отмены назначения WBS")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
