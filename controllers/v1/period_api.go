package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-evaluation-backend/controllers"
	evaluationperiodhandler "hr-evaluation-backend/lib/evaluation-period"
	"hr-evaluation-backend/lib/settings"
	"hr-evaluation-backend/middleware"
	apimodels "hr-evaluation-backend/models/api"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
	dbmodels "hr-evaluation-backend/models/db"
)

type periodApiController struct {
	controllers.BaseAPIController
}

func InitPeriodApiRouters(app *fiber.App) {
	controller := periodApiController{}
	app.Route("periods", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get("", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("start", controller.start)             // запуск периода
			idRoute.Put("phase", controller.changePhase)       // смена фазы
			idRoute.Put("permissions", controller.permissions) // разрешения на изменение настроек
			idRoute.Put("complete", controller.complete)       // завершение
		})
	})
	app.Route("settings/grade_ranges", func(router fiber.Router) {
		router.Get("", controller.getGradeRanges)
		router.Put("", controller.setGradeRanges)
	})
}

// @Summary Создание периода оценки
// @Tags Период оценки
// @Description Создание периода оценки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 evaluationapimodels.PeriodCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/periods [post]
func (c *periodApiController) create(ctx *fiber.Ctx) error {
	var payload evaluationapimodels.PeriodCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	id, err := evaluationperiodhandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания периода оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список периодов оценки
// @Tags Период оценки
// @Description Список периодов оценки
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]evaluationapimodels.PeriodView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/periods [get]
func (c *periodApiController) list(ctx *fiber.Ctx) error {
	list, err := evaluationperiodhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка периодов оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Получение периода оценки
// @Tags Период оценки
// @Description Получение периода оценки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true    "period ID"
// @Success 200 {object} apimodels.Response{data=evaluationapimodels.PeriodView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/periods/{id} [get]
func (c *periodApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	view, err := evaluationperiodhandler.Instance.GetView(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения периода оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Запуск периода оценки
// @Tags Период оценки
// @Description Запуск периода оценки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true    "period ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/periods/{id}/start [put]
func (c *periodApiController) start(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = evaluationperiodhandler.Instance.Start(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка запуска периода оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Смена фазы периода оценки
// @Tags Период оценки
// @Description Смена фазы периода оценки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true    "period ID"
// @Param	body body	 evaluationapimodels.PeriodPhaseData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/periods/{id}/phase [put]
func (c *periodApiController) changePhase(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload evaluationapimodels.PeriodPhaseData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = evaluationperiodhandler.Instance.ChangePhase(id, payload.Phase); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка смены фазы периода оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Разрешения на изменение настроек
// @Tags Период оценки
// @Description Разрешения на изменение настроек критериев, самооценки и итоговой оценки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true    "period ID"
// @Param	body body	 evaluationapimodels.PeriodPermissionsData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/periods/{id}/permissions [put]
func (c *periodApiController) permissions(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload evaluationapimodels.PeriodPermissionsData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = evaluationperiodhandler.Instance.UpdatePermissions(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения разрешений периода оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Завершение периода оценки
// @Tags Период оценки
// @Description Завершение периода оценки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true    "period ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/periods/{id}/complete [put]
func (c *periodApiController) complete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = evaluationperiodhandler.Instance.Complete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка завершения периода оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Диапазоны оценок по умолчанию
// @Tags Настройки
// @Description Диапазоны оценок, применяемые к новым периодам
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.GradeRange}
// @Failure 403
// @router /api/v1/admin/settings/grade_ranges [get]
func (c *periodApiController) getGradeRanges(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(settings.Instance.DefaultGradeRanges()))
}

// @Summary Изменение диапазонов оценок по умолчанию
// @Tags Настройки
// @Description Изменение диапазонов оценок, применяемых к новым периодам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 []dbmodels.GradeRange	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @router /api/v1/admin/settings/grade_ranges [put]
func (c *periodApiController) setGradeRanges(ctx *fiber.Ctx) error {
	var payload dbmodels.GradeRanges
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := settings.Instance.SetDefaultGradeRanges(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
