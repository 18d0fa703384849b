package evaluationsubmissionhandler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	activityloghandler "hr-evaluation-backend/lib/activity-log"
	employeeprovider "hr-evaluation-backend/lib/dicts/employee"
	projectprovider "hr-evaluation-backend/lib/dicts/project"
	evaluationlinehandler "hr-evaluation-backend/lib/evaluation-line"
	performanceevaluationhandler "hr-evaluation-backend/lib/performance-evaluation"
	revisionrequesthandler "hr-evaluation-backend/lib/revision-request"
	apperrors "hr-evaluation-backend/lib/utils/app-errors"
	"hr-evaluation-backend/lib/utils/testdb"
	"hr-evaluation-backend/models"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
)

type fakeLines struct {
	types map[string]models.EvaluatorType
}

func (f fakeLines) CheckEvaluatorLine(periodID, employeeID, evaluatorID string, claimed models.EvaluatorType, wbsItemID *string) (bool, *models.EvaluatorType, error) {
	evaluatorType, ok := f.types[evaluatorID]
	if !ok {
		return false, nil, nil
	}
	return evaluatorType == claimed, &evaluatorType, nil
}

type reopenCall struct {
	step        models.EvaluationStep
	evaluatorID string
}

type fakeSteps struct {
	calls []reopenCall
	err   error
}

func (f *fakeSteps) ReopenAfterResubmission(periodID, employeeID string, step models.EvaluationStep, evaluatorID, by string) error {
	f.calls = append(f.calls, reopenCall{step: step, evaluatorID: evaluatorID})
	return f.err
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func newTestHandler(t *testing.T, steps *fakeSteps) (Provider, performanceevaluationhandler.Provider, revisionrequesthandler.Provider) {
	tx := testdb.New(t)
	gateway := performanceevaluationhandler.NewHandlerWithTx(tx)
	registry := revisionrequesthandler.NewHandlerWithTx(tx)
	lines := fakeLines{types: map[string]models.EvaluatorType{
		"manager": models.EvaluatorTypePrimary,
		"pm":      models.EvaluatorTypeSecondary,
	}}
	return NewHandlerWithDeps(gateway, lines, registry, steps, activityloghandler.NewHandlerWithTx(tx)), gateway, registry
}

func TestSubmitDownward(t *testing.T) {
	t.Run(`evaluator type mismatch is forbidden check`, func(t *testing.T) {
		h, _, _ := newTestHandler(t, &fakeSteps{})
		_, err := h.SubmitDownward("period", "emp", "pm", evaluationapimodels.DownwardEvaluationData{
			EvaluationType: models.EvaluatorTypePrimary,
			Score:          intPtr(70),
		})
		require.True(t, apperrors.IsForbidden(err))
		require.Contains(t, err.Error(), string(models.EvaluatorTypePrimary))
		require.Contains(t, err.Error(), string(models.EvaluatorTypeSecondary))
	})

	t.Run(`unassigned evaluator is forbidden check`, func(t *testing.T) {
		h, _, _ := newTestHandler(t, &fakeSteps{})
		_, err := h.SubmitDownward("period", "emp", "stranger", evaluationapimodels.DownwardEvaluationData{
			EvaluationType: models.EvaluatorTypePrimary,
		})
		require.True(t, apperrors.IsForbidden(err))
	})

	t.Run(`submission reopens step and completes requests check`, func(t *testing.T) {
		steps := &fakeSteps{}
		h, gateway, registry := newTestHandler(t, steps)
		rec, err := registry.Create("period", "emp", models.StepSecondary, "доработать", "admin", []revisionrequesthandler.Recipient{
			{ID: "pm", Type: models.RecipientSecondaryEvaluator},
		})
		require.NoError(t, err)

		result, err := h.SubmitDownward("period", "emp", "pm", evaluationapimodels.DownwardEvaluationData{
			EvaluationType: models.EvaluatorTypeSecondary,
			WbsItemID:      strPtr("w1"),
			Score:          intPtr(85),
			Submit:         true,
		})
		require.NoError(t, err)
		require.Equal(t, 1, result.Submitted)
		require.Equal(t, []reopenCall{{step: models.StepSecondary, evaluatorID: "pm"}}, steps.calls)

		allCompleted, err := registry.AllCompleted(rec.ID)
		require.NoError(t, err)
		require.True(t, allCompleted)

		list, err := gateway.ListDownward("period", "emp")
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.True(t, list[0].IsCompleted)
	})

	t.Run(`draft save does not submit check`, func(t *testing.T) {
		steps := &fakeSteps{}
		h, gateway, _ := newTestHandler(t, steps)
		_, err := h.SubmitDownward("period", "emp", "manager", evaluationapimodels.DownwardEvaluationData{
			EvaluationType: models.EvaluatorTypePrimary,
			Content:        "черновик",
		})
		require.NoError(t, err)
		require.Empty(t, steps.calls)
		list, err := gateway.ListDownward("period", "emp")
		require.NoError(t, err)
		require.False(t, list[0].IsCompleted)
	})
}

func TestSubmitCriteriaAndSelf(t *testing.T) {
	t.Run(`criteria twice is validation check`, func(t *testing.T) {
		h, _, _ := newTestHandler(t, &fakeSteps{})
		require.NoError(t, h.SubmitCriteria("period", "emp", "emp"))
		require.True(t, apperrors.IsValidation(h.SubmitCriteria("period", "emp", "emp")))
	})

	t.Run(`reopen failure does not fail submission check`, func(t *testing.T) {
		steps := &fakeSteps{err: errors.New("сбой")}
		h, _, registry := newTestHandler(t, steps)
		rec, err := registry.Create("period", "emp", models.StepSelf, "доработать", "admin", []revisionrequesthandler.Recipient{
			{ID: "emp", Type: models.RecipientEvaluatee},
			{ID: "manager", Type: models.RecipientPrimaryEvaluator},
		})
		require.NoError(t, err)

		result, err := h.SubmitSelfEvaluation("period", "emp", "emp", evaluationapimodels.SelfEvaluationData{WbsItemID: "w1", Score: intPtr(90)})
		require.NoError(t, err)
		require.Equal(t, 1, result.Submitted)
		require.Len(t, steps.calls, 1)

		allCompleted, err := registry.AllCompleted(rec.ID)
		require.NoError(t, err)
		require.True(t, allCompleted)
	})
}

func TestSubmitDownwardWithResolvedLines(t *testing.T) {
	tx := testdb.New(t)
	employees := employeeprovider.NewHandlerWithTx(tx)
	lines := evaluationlinehandler.NewHandlerWithTx(tx, employees, projectprovider.NewHandlerWithTx(tx))
	h := NewHandlerWithDeps(
		performanceevaluationhandler.NewHandlerWithTx(tx),
		lines,
		revisionrequesthandler.NewHandlerWithTx(tx),
		&fakeSteps{},
		activityloghandler.NewHandlerWithTx(tx),
	)

	managerID := testdb.CreateEmployee(t, tx, "manager", nil)
	pmID := testdb.CreateEmployee(t, tx, "pm", nil)
	employeeID := testdb.CreateEmployee(t, tx, "employee", &managerID)
	ownProjectID := testdb.CreateProject(t, tx, "own", &managerID)
	otherProjectID := testdb.CreateProject(t, tx, "other", &pmID)
	ownWbsID := testdb.CreateWbsItem(t, tx, ownProjectID, "1.1")
	otherWbsID := testdb.CreateWbsItem(t, tx, otherProjectID, "2.1")
	periodID := testdb.CreatePeriod(t, tx)

	require.NoError(t, lines.ResolvePrimary(employeeID, periodID))
	require.NoError(t, lines.ResolveSecondary(employeeID, ownWbsID, ownProjectID, periodID))
	require.NoError(t, lines.ResolveSecondary(employeeID, otherWbsID, otherProjectID, periodID))

	t.Run(`project manager claiming primary is forbidden check`, func(t *testing.T) {
		_, err := h.SubmitDownward(periodID, employeeID, pmID, evaluationapimodels.DownwardEvaluationData{
			EvaluationType: models.EvaluatorTypePrimary,
			WbsItemID:      &otherWbsID,
			Score:          intPtr(70),
		})
		require.True(t, apperrors.IsForbidden(err))
		require.Contains(t, err.Error(), string(models.EvaluatorTypePrimary))
		require.Contains(t, err.Error(), string(models.EvaluatorTypeSecondary))
	})

	t.Run(`manager who is project manager submits primary check`, func(t *testing.T) {
		_, err := h.SubmitDownward(periodID, employeeID, managerID, evaluationapimodels.DownwardEvaluationData{
			EvaluationType: models.EvaluatorTypePrimary,
			WbsItemID:      &ownWbsID,
			Score:          intPtr(80),
		})
		require.NoError(t, err)
	})

	t.Run(`manager who is project manager submits secondary check`, func(t *testing.T) {
		_, err := h.SubmitDownward(periodID, employeeID, managerID, evaluationapimodels.DownwardEvaluationData{
			EvaluationType: models.EvaluatorTypeSecondary,
			WbsItemID:      &ownWbsID,
			Score:          intPtr(75),
		})
		require.NoError(t, err)
	})

	t.Run(`project manager of another wbs is forbidden check`, func(t *testing.T) {
		_, err := h.SubmitDownward(periodID, employeeID, pmID, evaluationapimodels.DownwardEvaluationData{
			EvaluationType: models.EvaluatorTypeSecondary,
			WbsItemID:      &ownWbsID,
			Score:          intPtr(60),
		})
		require.True(t, apperrors.IsForbidden(err))
	})
}
