package fiberlog

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	logger, hook := test.NewNullLogger()
	app := fiber.New()
	app.Use(New(Config{
		Logger: logger,
		Tags:   []string{TagStatus, TagMethod, TagPath, TagUserID, TagLatency},
	}))
	app.Get("/ok", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "success"})
	})
	app.Get("/bad", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "fail"})
	})

	t.Run(`успешный запрос check`, func(t *testing.T) {
		hook.Reset()
		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ok", nil))
		require.NoError(t, err)
		entry := hook.LastEntry()
		require.NotNil(t, entry)
		require.Equal(t, logrus.InfoLevel, entry.Level)
		require.Equal(t, fiber.StatusOK, entry.Data[TagStatus])
		require.Equal(t, "/ok", entry.Data[TagPath])
		require.NotContains(t, entry.Data, TagUserID)
	})

	t.Run(`ошибка клиента check`, func(t *testing.T) {
		hook.Reset()
		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/bad", nil))
		require.NoError(t, err)
		entry := hook.LastEntry()
		require.NotNil(t, entry)
		require.Equal(t, logrus.WarnLevel, entry.Level)
		require.Equal(t, fiber.StatusBadRequest, entry.Data[TagStatus])
	})
}
