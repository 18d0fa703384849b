package evaluationperiodhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"hr-evaluation-backend/lib/settings"
	apperrors "hr-evaluation-backend/lib/utils/app-errors"
	"hr-evaluation-backend/lib/utils/testdb"
	"hr-evaluation-backend/models"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
	dbmodels "hr-evaluation-backend/models/db"
)

func newTestHandler(t *testing.T) Provider {
	return NewHandlerWithTx(testdb.New(t), settings.New(nil))
}

func TestPeriodLifecycle(t *testing.T) {
	t.Run(`default grade ranges check`, func(t *testing.T) {
		h := newTestHandler(t)
		id, err := h.Create("admin", evaluationapimodels.PeriodCreateData{Name: "2026", StartDate: time.Now()})
		require.NoError(t, err)

		view, err := h.GetView(id)
		require.NoError(t, err)
		require.Equal(t, models.PeriodStatusWaiting, view.Status)
		require.Equal(t, models.PhaseWaiting, view.CurrentPhase)
		require.Equal(t, []dbmodels.GradeRange(settings.BuiltinGradeRanges), []dbmodels.GradeRange(view.GradeRanges))
	})

	t.Run(`start change phase complete check`, func(t *testing.T) {
		h := newTestHandler(t)
		id, err := h.Create("admin", evaluationapimodels.PeriodCreateData{Name: "2026", StartDate: time.Now()})
		require.NoError(t, err)

		require.True(t, apperrors.IsValidation(h.ChangePhase(id, models.PhasePerformance)))
		require.NoError(t, h.Start(id))
		require.True(t, apperrors.IsValidation(h.Start(id)))

		require.NoError(t, h.ChangePhase(id, models.PhaseSelfEvaluation))
		require.True(t, apperrors.IsValidation(h.ChangePhase(id, models.PhasePerformance)))

		enabled := true
		require.NoError(t, h.UpdatePermissions(id, evaluationapimodels.PeriodPermissionsData{FinalEvaluationSettingEnabled: &enabled}))

		require.NoError(t, h.ChangePhase(id, models.PhaseClosure))
		rec, err := h.Get(id)
		require.NoError(t, err)
		require.Equal(t, models.PeriodStatusCompleted, rec.Status)
		require.Equal(t, models.PhaseClosure, rec.CurrentPhase)
		require.NotNil(t, rec.CompletedAt)
		require.False(t, rec.CriteriaSettingEnabled)
		require.False(t, rec.SelfEvaluationSettingEnabled)
		require.False(t, rec.FinalEvaluationSettingEnabled)

		require.NoError(t, h.Complete(id))
		require.True(t, apperrors.IsValidation(h.UpdatePermissions(id, evaluationapimodels.PeriodPermissionsData{FinalEvaluationSettingEnabled: &enabled})))
	})

	t.Run(`unknown period check`, func(t *testing.T) {
		h := newTestHandler(t)
		_, err := h.Get("missing")
		require.True(t, apperrors.IsNotFound(err))
		require.True(t, apperrors.IsNotFound(h.Start("missing")))
	})
}
