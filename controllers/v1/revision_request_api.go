package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-evaluation-backend/controllers"
	revisionrequesthandler "hr-evaluation-backend/lib/revision-request"
	stepapprovalhandler "hr-evaluation-backend/lib/step-approval"
	"hr-evaluation-backend/middleware"
	apimodels "hr-evaluation-backend/models/api"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
)

type revisionRequestApiController struct {
	controllers.BaseAPIController
}

func InitRevisionRequestApiRouters(app *fiber.App) {
	controller := revisionRequestApiController{}
	app.Route("revision_requests", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("response", controller.respond) // ответ получателя
			idRoute.Put("read", controller.read)        // отметка о прочтении
		})
	})
}

// @Summary Список запросов на доработку
// @Tags Запросы на доработку
// @Description Список запросов на доработку, не администратору доступны только адресованные ему
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   period_id          	query    	string  false   "period ID"
// @Param   employee_id         query    	string  false   "employee ID"
// @Param   recipient_id        query    	string  false   "recipient ID"
// @Param   step          		query    	string  false   "criteria/self/primary/secondary"
// @Param   only_open          	query    	bool  	false   "only open"
// @Success 200 {object} apimodels.Response{data=[]evaluationapimodels.RevisionRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/evaluation/revision_requests [get]
func (c *revisionRequestApiController) list(ctx *fiber.Ctx) error {
	var filter evaluationapimodels.RevisionRequestFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if !middleware.GetUserRole(ctx).IsAdmin() {
		filter.RecipientID = middleware.GetUserID(ctx)
	}

	list, err := revisionrequesthandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка запросов на доработку")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Запрос на доработку
// @Tags Запросы на доработку
// @Description Запрос на доработку с получателями
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true    "request ID"
// @Success 200 {object} apimodels.Response{data=evaluationapimodels.RevisionRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/evaluation/revision_requests/{id} [get]
func (c *revisionRequestApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	view, err := revisionrequesthandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения запроса на доработку")
	}
	if !middleware.GetUserRole(ctx).IsAdmin() && !isRecipient(view, middleware.GetUserID(ctx)) {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Ответ на запрос доработки
// @Tags Запросы на доработку
// @Description Ответ получателя, после ответа всех получателей этап возвращается в ожидание
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true    "request ID"
// @Param	body body	 evaluationapimodels.RevisionResponseData	true	"request body"
// @Success 200 {object} apimodels.Response{data=evaluationapimodels.RevisionResponseView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/evaluation/revision_requests/{id}/response [put]
func (c *revisionRequestApiController) respond(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload evaluationapimodels.RevisionResponseData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	view, err := stepapprovalhandler.Instance.RespondToRevision(id, middleware.GetUserID(ctx), payload.ResponseComment)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка ответа на запрос доработки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Отметка о прочтении
// @Tags Запросы на доработку
// @Description Отметка о прочтении запроса на доработку текущим пользователем
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true    "request ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/evaluation/revision_requests/{id}/read [put]
func (c *revisionRequestApiController) read(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = revisionrequesthandler.Instance.MarkRead(id, middleware.GetUserID(ctx)); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки о прочтении")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func isRecipient(view evaluationapimodels.RevisionRequestView, userID string) bool {
	for _, recipient := range view.Recipients {
		if recipient.RecipientID == userID {
			return true
		}
	}
	return false
}
