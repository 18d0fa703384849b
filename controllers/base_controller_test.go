package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	apperrors "hr-evaluation-backend/lib/utils/app-errors"
	apimodels "hr-evaluation-backend/models/api"
)

func TestSendError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", errors.Wrap(apperrors.NewNotFound("период оценки", "p1"), "ошибка"), fiber.StatusNotFound, "период оценки не найден(а): p1"},
		{"forbidden", apperrors.NewForbidden("недостаточно прав"), fiber.StatusForbidden, "недостаточно прав"},
		{"validation", apperrors.NewValidation("нет данных"), fiber.StatusBadRequest, "нет данных"},
		{"internal", errors.New("connection refused"), fiber.StatusInternalServerError, "Ошибка операции"},
	}
	for _, tc := range cases {
		t.Run(tc.name+` check`, func(t *testing.T) {
			c := BaseAPIController{}
			app := fiber.New()
			app.Get("/", func(ctx *fiber.Ctx) error {
				return c.SendError(ctx, c.GetLogger(ctx), tc.err, "Ошибка операции")
			})
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.StatusCode)

			var body apimodels.Response
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, "fail", body.Status)
			require.Equal(t, tc.message, body.Message)
		})
	}
}
