package evaluationlinehandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	employeeprovider "hr-evaluation-backend/lib/dicts/employee"
	projectprovider "hr-evaluation-backend/lib/dicts/project"
	apperrors "hr-evaluation-backend/lib/utils/app-errors"
	"hr-evaluation-backend/lib/utils/testdb"
	"hr-evaluation-backend/models"
	dbmodels "hr-evaluation-backend/models/db"
)

func newTestHandler(t *testing.T) (Provider, *gorm.DB) {
	tx := testdb.New(t)
	return NewHandlerWithTx(tx, employeeprovider.NewHandlerWithTx(tx), projectprovider.NewHandlerWithTx(tx)), tx
}

func countMappings(t *testing.T, tx *gorm.DB, periodID, employeeID string) int64 {
	var count int64
	require.NoError(t, tx.Model(&dbmodels.EvaluationLineMapping{}).
		Where("period_id = ? AND employee_id = ?", periodID, employeeID).
		Count(&count).Error)
	return count
}

func TestResolvePrimary(t *testing.T) {
	t.Run(`idempotent check`, func(t *testing.T) {
		h, tx := newTestHandler(t)
		managerID := testdb.CreateEmployee(t, tx, "manager", nil)
		employeeID := testdb.CreateEmployee(t, tx, "employee", &managerID)
		periodID := testdb.CreatePeriod(t, tx)

		require.NoError(t, h.ResolvePrimary(employeeID, periodID))
		require.NoError(t, h.ResolvePrimary(employeeID, periodID))
		require.EqualValues(t, 1, countMappings(t, tx, periodID, employeeID))

		evaluatorID, found, err := h.GetPrimaryEvaluator(periodID, employeeID)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, managerID, evaluatorID)
	})

	t.Run(`manager change overwrites single slot check`, func(t *testing.T) {
		h, tx := newTestHandler(t)
		firstID := testdb.CreateEmployee(t, tx, "first", nil)
		secondID := testdb.CreateEmployee(t, tx, "second", nil)
		employeeID := testdb.CreateEmployee(t, tx, "employee", &firstID)
		periodID := testdb.CreatePeriod(t, tx)

		require.NoError(t, h.ResolvePrimary(employeeID, periodID))
		testdb.SetEmployeeManager(t, tx, employeeID, &secondID)
		require.NoError(t, h.ResolvePrimary(employeeID, periodID))

		require.EqualValues(t, 1, countMappings(t, tx, periodID, employeeID))
		evaluatorID, found, err := h.GetPrimaryEvaluator(periodID, employeeID)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, secondID, evaluatorID)
	})

	t.Run(`no manager is no-op check`, func(t *testing.T) {
		h, tx := newTestHandler(t)
		employeeID := testdb.CreateEmployee(t, tx, "employee", nil)
		periodID := testdb.CreatePeriod(t, tx)

		require.NoError(t, h.ResolvePrimary(employeeID, periodID))
		require.EqualValues(t, 0, countMappings(t, tx, periodID, employeeID))
		_, found, err := h.GetPrimaryEvaluator(periodID, employeeID)
		require.NoError(t, err)
		require.False(t, found)
	})

	t.Run(`unknown employee check`, func(t *testing.T) {
		h, tx := newTestHandler(t)
		periodID := testdb.CreatePeriod(t, tx)
		err := h.ResolvePrimary("missing", periodID)
		require.Error(t, err)
		require.True(t, apperrors.IsNotFound(err))
	})

	t.Run(`unknown period check`, func(t *testing.T) {
		h, tx := newTestHandler(t)
		managerID := testdb.CreateEmployee(t, tx, "manager", nil)
		employeeID := testdb.CreateEmployee(t, tx, "employee", &managerID)
		err := h.ResolvePrimary(employeeID, "missing")
		require.Error(t, err)
		require.True(t, apperrors.IsNotFound(err))
	})
}

func TestResolveSecondary(t *testing.T) {
	t.Run(`one mapping per wbs check`, func(t *testing.T) {
		h, tx := newTestHandler(t)
		pmID := testdb.CreateEmployee(t, tx, "pm", nil)
		employeeID := testdb.CreateEmployee(t, tx, "employee", nil)
		projectID := testdb.CreateProject(t, tx, "project", &pmID)
		wbs1 := testdb.CreateWbsItem(t, tx, projectID, "1")
		wbs2 := testdb.CreateWbsItem(t, tx, projectID, "2")
		periodID := testdb.CreatePeriod(t, tx)

		require.NoError(t, h.ResolveSecondary(employeeID, wbs1, projectID, periodID))
		require.NoError(t, h.ResolveSecondary(employeeID, wbs1, projectID, periodID))
		require.NoError(t, h.ResolveSecondary(employeeID, wbs2, projectID, periodID))
		require.EqualValues(t, 2, countMappings(t, tx, periodID, employeeID))

		evaluators, err := h.ListSecondaryEvaluators(periodID, employeeID)
		require.NoError(t, err)
		require.Equal(t, []string{pmID}, evaluators)

		holds, _, err := h.CheckEvaluatorLine(periodID, employeeID, pmID, models.EvaluatorTypeSecondary, &wbs2)
		require.NoError(t, err)
		require.True(t, holds)
	})

	t.Run(`project manager change check`, func(t *testing.T) {
		h, tx := newTestHandler(t)
		pm1 := testdb.CreateEmployee(t, tx, "pm1", nil)
		pm2 := testdb.CreateEmployee(t, tx, "pm2", nil)
		employeeID := testdb.CreateEmployee(t, tx, "employee", nil)
		projectID := testdb.CreateProject(t, tx, "project", &pm1)
		wbsID := testdb.CreateWbsItem(t, tx, projectID, "1")
		periodID := testdb.CreatePeriod(t, tx)

		require.NoError(t, h.ResolveSecondary(employeeID, wbsID, projectID, periodID))
		testdb.SetProjectManager(t, tx, projectID, &pm2)
		require.NoError(t, h.ResolveSecondary(employeeID, wbsID, projectID, periodID))

		evaluators, err := h.ListSecondaryEvaluators(periodID, employeeID)
		require.NoError(t, err)
		require.Equal(t, []string{pm2}, evaluators)
	})

	t.Run(`no project manager is no-op check`, func(t *testing.T) {
		h, tx := newTestHandler(t)
		employeeID := testdb.CreateEmployee(t, tx, "employee", nil)
		projectID := testdb.CreateProject(t, tx, "project", nil)
		wbsID := testdb.CreateWbsItem(t, tx, projectID, "1")
		periodID := testdb.CreatePeriod(t, tx)

		require.NoError(t, h.ResolveSecondary(employeeID, wbsID, projectID, periodID))
		require.EqualValues(t, 0, countMappings(t, tx, periodID, employeeID))
	})

	t.Run(`unknown project check`, func(t *testing.T) {
		h, tx := newTestHandler(t)
		employeeID := testdb.CreateEmployee(t, tx, "employee", nil)
		periodID := testdb.CreatePeriod(t, tx)
		err := h.ResolveSecondary(employeeID, "wbs", "missing", periodID)
		require.True(t, apperrors.IsNotFound(err))
	})

	t.Run(`remove secondary check`, func(t *testing.T) {
		h, tx := newTestHandler(t)
		pmID := testdb.CreateEmployee(t, tx, "pm", nil)
		employeeID := testdb.CreateEmployee(t, tx, "employee", &pmID)
		projectID := testdb.CreateProject(t, tx, "project", &pmID)
		wbsID := testdb.CreateWbsItem(t, tx, projectID, "1")
		periodID := testdb.CreatePeriod(t, tx)

		require.NoError(t, h.ResolvePrimary(employeeID, periodID))
		require.NoError(t, h.ResolveSecondary(employeeID, wbsID, projectID, periodID))
		require.NoError(t, h.RemoveSecondary(employeeID, wbsID, periodID))
		require.NoError(t, h.RemoveSecondary(employeeID, wbsID, periodID))

		evaluators, err := h.ListSecondaryEvaluators(periodID, employeeID)
		require.NoError(t, err)
		require.Empty(t, evaluators)
		_, found, err := h.GetPrimaryEvaluator(periodID, employeeID)
		require.NoError(t, err)
		require.True(t, found)
	})
}

func TestCheckEvaluatorLine(t *testing.T) {
	t.Run(`primary slot ignores wbs check`, func(t *testing.T) {
		h, tx := newTestHandler(t)
		managerID := testdb.CreateEmployee(t, tx, "manager", nil)
		employeeID := testdb.CreateEmployee(t, tx, "employee", &managerID)
		periodID := testdb.CreatePeriod(t, tx)
		require.NoError(t, h.ResolvePrimary(employeeID, periodID))

		wbsID := "other"
		holds, _, err := h.CheckEvaluatorLine(periodID, employeeID, managerID, models.EvaluatorTypePrimary, &wbsID)
		require.NoError(t, err)
		require.True(t, holds)

		holds, actual, err := h.CheckEvaluatorLine(periodID, employeeID, "stranger", models.EvaluatorTypePrimary, nil)
		require.NoError(t, err)
		require.False(t, holds)
		require.Nil(t, actual)
	})

	t.Run(`manager who is project manager holds both lines check`, func(t *testing.T) {
		h, tx := newTestHandler(t)
		managerID := testdb.CreateEmployee(t, tx, "manager", nil)
		employeeID := testdb.CreateEmployee(t, tx, "employee", &managerID)
		projectID := testdb.CreateProject(t, tx, "project", &managerID)
		wbsID := testdb.CreateWbsItem(t, tx, projectID, "1")
		periodID := testdb.CreatePeriod(t, tx)
		require.NoError(t, h.ResolvePrimary(employeeID, periodID))
		require.NoError(t, h.ResolveSecondary(employeeID, wbsID, projectID, periodID))

		holds, _, err := h.CheckEvaluatorLine(periodID, employeeID, managerID, models.EvaluatorTypePrimary, &wbsID)
		require.NoError(t, err)
		require.True(t, holds)

		holds, _, err = h.CheckEvaluatorLine(periodID, employeeID, managerID, models.EvaluatorTypeSecondary, &wbsID)
		require.NoError(t, err)
		require.True(t, holds)
	})

	t.Run(`secondary claim needs matching wbs check`, func(t *testing.T) {
		h, tx := newTestHandler(t)
		managerID := testdb.CreateEmployee(t, tx, "manager", nil)
		employeeID := testdb.CreateEmployee(t, tx, "employee", &managerID)
		periodID := testdb.CreatePeriod(t, tx)
		require.NoError(t, h.ResolvePrimary(employeeID, periodID))

		holds, actual, err := h.CheckEvaluatorLine(periodID, employeeID, managerID, models.EvaluatorTypeSecondary, nil)
		require.NoError(t, err)
		require.False(t, holds)
		require.NotNil(t, actual)
		require.Equal(t, models.EvaluatorTypePrimary, *actual)
	})
}

func TestGet(t *testing.T) {
	t.Run(`view lists primary first check`, func(t *testing.T) {
		h, tx := newTestHandler(t)
		managerID := testdb.CreateEmployee(t, tx, "manager", nil)
		pmID := testdb.CreateEmployee(t, tx, "pm", nil)
		employeeID := testdb.CreateEmployee(t, tx, "employee", &managerID)
		projectID := testdb.CreateProject(t, tx, "project", &pmID)
		wbsID := testdb.CreateWbsItem(t, tx, projectID, "1")
		periodID := testdb.CreatePeriod(t, tx)

		require.NoError(t, h.ResolveSecondary(employeeID, wbsID, projectID, periodID))
		require.NoError(t, h.ResolvePrimary(employeeID, periodID))

		view, err := h.Get(periodID, employeeID)
		require.NoError(t, err)
		require.Len(t, view.Mappings, 2)
		require.Equal(t, models.EvaluatorTypePrimary, view.Mappings[0].EvaluatorType)
		require.Equal(t, managerID, view.Mappings[0].EvaluatorID)
		require.Equal(t, models.EvaluatorTypeSecondary, view.Mappings[1].EvaluatorType)

		ids, err := h.ListEmployeeIDs(periodID)
		require.NoError(t, err)
		require.Equal(t, []string{employeeID}, ids)
	})
}
