package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	apperrors "hr-evaluation-backend/lib/utils/app-errors"
	"hr-evaluation-backend/middleware"
	apimodels "hr-evaluation-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) QueryParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.QueryParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания параметров запроса")
		return errors.New("некорректные параметры запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetIDByKey(ctx, "id")
}

func (c *BaseAPIController) GetIDByKey(ctx *fiber.Ctx, key string) (string, error) {
	id := ctx.Params(key)
	if id == "" {
		return "", errors.Errorf("не указан параметр %v", key)
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("path", ctx.Path()).
		WithField("method", ctx.Method()).
		WithField("user_id", middleware.GetUserID(ctx))
}

// SendError типизированные ошибки отдаются клиенту с их текстом, остальные логируются и скрываются за msg
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	switch {
	case apperrors.IsNotFound(err):
		logger.WithError(err).Info(msg)
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(errors.Cause(err).Error()))
	case apperrors.IsForbidden(err):
		logger.WithError(err).Warn(msg)
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(errors.Cause(err).Error()))
	case apperrors.IsValidation(err):
		logger.WithError(err).Info(msg)
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(errors.Cause(err).Error()))
	}
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}
