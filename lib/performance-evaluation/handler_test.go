package performanceevaluationhandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	apperrors "hr-evaluation-backend/lib/utils/app-errors"
	"hr-evaluation-backend/lib/utils/testdb"
	"hr-evaluation-backend/models"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
)

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func TestCriteriaSubmission(t *testing.T) {
	t.Run(`submit twice check`, func(t *testing.T) {
		h := NewHandlerWithTx(testdb.New(t))
		require.NoError(t, h.SubmitCriteria("period", "emp", "emp"))
		require.ErrorIs(t, h.SubmitCriteria("period", "emp", "emp"), ErrAlreadySubmitted)

		submitted, err := h.IsCriteriaSubmitted("period", "emp")
		require.NoError(t, err)
		require.True(t, submitted)

		require.NoError(t, h.ResetCriteria("period", "emp", "admin"))
		submitted, err = h.IsCriteriaSubmitted("period", "emp")
		require.NoError(t, err)
		require.False(t, submitted)
		require.NoError(t, h.SubmitCriteria("period", "emp", "emp"))
	})
}

func TestSelfSubmission(t *testing.T) {
	t.Run(`submit and reset flags check`, func(t *testing.T) {
		h := NewHandlerWithTx(testdb.New(t))
		_, err := h.SubmitSelfToEvaluator("emp", "period", "emp")
		require.Error(t, err)

		_, err = h.SaveSelf("period", "emp", "emp", evaluationapimodels.SelfEvaluationData{WbsItemID: "w1", Content: "сделано", Score: intPtr(90)})
		require.NoError(t, err)
		_, err = h.SaveSelf("period", "emp", "emp", evaluationapimodels.SelfEvaluationData{WbsItemID: "w2", Content: "сделано"})
		require.NoError(t, err)

		result, err := h.SubmitSelfToEvaluator("emp", "period", "emp")
		require.NoError(t, err)
		require.Equal(t, SubmitResult{Submitted: 2}, result)
		result, err = h.SubmitSelfToEvaluator("emp", "period", "emp")
		require.NoError(t, err)
		require.Equal(t, SubmitResult{Skipped: 2}, result)
		_, err = h.SubmitSelfToManager("emp", "period", "admin")
		require.NoError(t, err)

		_, err = h.SaveSelf("period", "emp", "emp", evaluationapimodels.SelfEvaluationData{WbsItemID: "w1", Content: "изменено"})
		require.True(t, apperrors.IsValidation(err))

		require.NoError(t, h.ResetSelf("emp", "period", "admin"))
		list, err := h.ListSelf("period", "emp")
		require.NoError(t, err)
		require.Len(t, list, 2)
		for _, rec := range list {
			require.False(t, rec.SubmittedToEvaluator)
			require.False(t, rec.SubmittedToManager)
			require.Nil(t, rec.SubmittedToEvaluatorAt)
		}
	})
}

func TestDownwardSubmission(t *testing.T) {
	t.Run(`force submit bypasses score check`, func(t *testing.T) {
		h := NewHandlerWithTx(testdb.New(t))
		_, err := h.SaveDownward("period", "emp", "manager", "manager", evaluationapimodels.DownwardEvaluationData{
			EvaluationType: models.EvaluatorTypePrimary,
			Content:        "черновик",
		})
		require.NoError(t, err)

		_, err = h.SubmitDownward("manager", "emp", "period", models.EvaluatorTypePrimary, "manager")
		require.True(t, apperrors.IsValidation(err))

		result, err := h.ForceSubmitDownward("manager", "emp", "period", models.EvaluatorTypePrimary, "admin")
		require.NoError(t, err)
		require.Equal(t, SubmitResult{Submitted: 1}, result)

		result, err = h.ForceSubmitDownward("manager", "emp", "period", models.EvaluatorTypePrimary, "admin")
		require.NoError(t, err)
		require.Equal(t, SubmitResult{Skipped: 1}, result)
	})

	t.Run(`zero evaluations is empty result check`, func(t *testing.T) {
		h := NewHandlerWithTx(testdb.New(t))
		result, err := h.ForceSubmitDownward("pm", "emp", "period", models.EvaluatorTypeSecondary, "admin")
		require.NoError(t, err)
		require.Equal(t, SubmitResult{}, result)
	})

	t.Run(`reset by evaluator check`, func(t *testing.T) {
		h := NewHandlerWithTx(testdb.New(t))
		for _, evaluatorID := range []string{"pm1", "pm2"} {
			_, err := h.SaveDownward("period", "emp", evaluatorID, evaluatorID, evaluationapimodels.DownwardEvaluationData{
				EvaluationType: models.EvaluatorTypeSecondary,
				WbsItemID:      strPtr("w1"),
				Score:          intPtr(80),
			})
			require.NoError(t, err)
			_, err = h.SubmitDownward(evaluatorID, "emp", "period", models.EvaluatorTypeSecondary, evaluatorID)
			require.NoError(t, err)
		}

		require.NoError(t, h.ResetDownward("emp", "period", "pm1", models.EvaluatorTypeSecondary, "admin"))
		list, err := h.ListDownward("period", "emp")
		require.NoError(t, err)
		require.Len(t, list, 2)
		for _, rec := range list {
			require.Equal(t, rec.EvaluatorID == "pm2", rec.IsCompleted)
		}
	})
}
