package revisionrequesthandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	apperrors "hr-evaluation-backend/lib/utils/app-errors"
	"hr-evaluation-backend/lib/utils/testdb"
	"hr-evaluation-backend/models"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
)

func recipientCompleted(t *testing.T, h Provider, requestID, recipientID string) bool {
	view, err := h.Get(requestID)
	require.NoError(t, err)
	for _, recipient := range view.Recipients {
		if recipient.RecipientID == recipientID {
			return recipient.IsCompleted
		}
	}
	t.Fatalf("получатель %s не найден", recipientID)
	return false
}

func TestCompleteForSubmitter(t *testing.T) {
	t.Run(`self resubmission completes primary evaluator check`, func(t *testing.T) {
		h := NewHandlerWithTx(testdb.New(t))
		rec, err := h.Create("period", "emp", models.StepSelf, "доработать", "admin", []Recipient{
			{ID: "emp", Type: models.RecipientEvaluatee},
			{ID: "manager", Type: models.RecipientPrimaryEvaluator},
		})
		require.NoError(t, err)
		require.Len(t, rec.Recipients, 2)

		count, err := h.CompleteForSubmitter("period", "emp", models.StepSelf, "emp", models.RecipientEvaluatee, "готово")
		require.NoError(t, err)
		require.Equal(t, 2, count)
		require.True(t, recipientCompleted(t, h, rec.ID, "emp"))
		require.True(t, recipientCompleted(t, h, rec.ID, "manager"))

		allCompleted, err := h.AllCompleted(rec.ID)
		require.NoError(t, err)
		require.True(t, allCompleted)
	})

	t.Run(`primary submission does not couple check`, func(t *testing.T) {
		h := NewHandlerWithTx(testdb.New(t))
		rec, err := h.Create("period", "emp", models.StepPrimary, "доработать", "admin", []Recipient{
			{ID: "manager", Type: models.RecipientPrimaryEvaluator},
			{ID: "emp", Type: models.RecipientEvaluatee},
		})
		require.NoError(t, err)

		count, err := h.CompleteForSubmitter("period", "emp", models.StepPrimary, "manager", models.RecipientPrimaryEvaluator, "")
		require.NoError(t, err)
		require.Equal(t, 1, count)
		require.True(t, recipientCompleted(t, h, rec.ID, "manager"))
		require.False(t, recipientCompleted(t, h, rec.ID, "emp"))
	})

	t.Run(`nothing open is benign check`, func(t *testing.T) {
		h := NewHandlerWithTx(testdb.New(t))
		count, err := h.CompleteForSubmitter("period", "emp", models.StepCriteria, "emp", models.RecipientEvaluatee, "")
		require.NoError(t, err)
		require.Equal(t, 0, count)
	})

	t.Run(`other step untouched check`, func(t *testing.T) {
		h := NewHandlerWithTx(testdb.New(t))
		rec, err := h.Create("period", "emp", models.StepCriteria, "доработать", "admin", []Recipient{
			{ID: "emp", Type: models.RecipientEvaluatee},
		})
		require.NoError(t, err)
		count, err := h.CompleteForSubmitter("period", "emp", models.StepSelf, "emp", models.RecipientEvaluatee, "")
		require.NoError(t, err)
		require.Equal(t, 0, count)
		require.False(t, recipientCompleted(t, h, rec.ID, "emp"))
	})
}

func TestCompleteByResponse(t *testing.T) {
	t.Run(`single recipient completion check`, func(t *testing.T) {
		h := NewHandlerWithTx(testdb.New(t))
		rec, err := h.Create("period", "emp", models.StepSelf, "доработать", "admin", []Recipient{
			{ID: "emp", Type: models.RecipientEvaluatee},
			{ID: "manager", Type: models.RecipientPrimaryEvaluator},
		})
		require.NoError(t, err)

		updated, err := h.CompleteByResponse(rec.ID, "emp", "исправлено")
		require.NoError(t, err)
		require.Equal(t, models.StepSelf, updated.Step)
		require.Equal(t, "emp", updated.EmployeeID)

		allCompleted, err := h.AllCompleted(rec.ID)
		require.NoError(t, err)
		require.False(t, allCompleted)

		_, err = h.CompleteByResponse(rec.ID, "emp", "повторно")
		require.True(t, apperrors.IsNotFound(err))
	})

	t.Run(`secondary all completed spans requests check`, func(t *testing.T) {
		h := NewHandlerWithTx(testdb.New(t))
		first, err := h.Create("period", "emp", models.StepSecondary, "доработать", "admin", []Recipient{
			{ID: "pm1", Type: models.RecipientSecondaryEvaluator},
		})
		require.NoError(t, err)
		_, err = h.Create("period", "emp", models.StepSecondary, "доработать", "admin", []Recipient{
			{ID: "pm2", Type: models.RecipientSecondaryEvaluator},
		})
		require.NoError(t, err)

		_, err = h.CompleteByResponse(first.ID, "pm1", "готово")
		require.NoError(t, err)
		allCompleted, err := h.AllCompleted(first.ID)
		require.NoError(t, err)
		require.False(t, allCompleted)

		_, err = h.CompleteByScope("period", "emp", "pm2", models.StepSecondary, "готово")
		require.NoError(t, err)
		allCompleted, err = h.AllCompleted(first.ID)
		require.NoError(t, err)
		require.True(t, allCompleted)
	})

	t.Run(`unknown scope check`, func(t *testing.T) {
		h := NewHandlerWithTx(testdb.New(t))
		_, err := h.CompleteByScope("period", "emp", "pm", models.StepSecondary, "")
		require.True(t, apperrors.IsNotFound(err))
	})
}

func TestListAndRead(t *testing.T) {
	t.Run(`filter and mark read check`, func(t *testing.T) {
		h := NewHandlerWithTx(testdb.New(t))
		rec, err := h.Create("period", "emp", models.StepCriteria, "доработать", "admin", []Recipient{
			{ID: "emp", Type: models.RecipientEvaluatee},
			{ID: "emp", Type: models.RecipientEvaluatee},
		})
		require.NoError(t, err)
		require.Len(t, rec.Recipients, 1)
		_, err = h.Create("period", "other", models.StepSelf, "доработать", "admin", []Recipient{
			{ID: "other", Type: models.RecipientEvaluatee},
		})
		require.NoError(t, err)

		list, err := h.List(evaluationapimodels.RevisionRequestFilter{PeriodID: "period", RecipientID: "emp", OnlyOpen: true})
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, rec.ID, list[0].ID)

		require.NoError(t, h.MarkRead(rec.ID, "emp"))
		view, err := h.Get(rec.ID)
		require.NoError(t, err)
		require.True(t, view.Recipients[0].IsRead)

		require.True(t, apperrors.IsNotFound(h.MarkRead(rec.ID, "stranger")))
	})

	t.Run(`validation check`, func(t *testing.T) {
		h := NewHandlerWithTx(testdb.New(t))
		_, err := h.Create("period", "emp", models.StepSelf, " ", "admin", []Recipient{{ID: "emp", Type: models.RecipientEvaluatee}})
		require.True(t, apperrors.IsValidation(err))
		_, err = h.Create("period", "emp", models.StepSelf, "доработать", "admin", nil)
		require.True(t, apperrors.IsValidation(err))
	})
}
