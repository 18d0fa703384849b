package wbsassignmenthandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	employeeprovider "hr-evaluation-backend/lib/dicts/employee"
	projectprovider "hr-evaluation-backend/lib/dicts/project"
	evaluationlinehandler "hr-evaluation-backend/lib/evaluation-line"
	apperrors "hr-evaluation-backend/lib/utils/app-errors"
	"hr-evaluation-backend/lib/utils/testdb"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
	dbmodels "hr-evaluation-backend/models/db"
)

func newTestHandler(t *testing.T) (Provider, evaluationlinehandler.Provider, *gorm.DB) {
	tx := testdb.New(t)
	employees := employeeprovider.NewHandlerWithTx(tx)
	projects := projectprovider.NewHandlerWithTx(tx)
	lines := evaluationlinehandler.NewHandlerWithTx(tx, employees, projects)
	return NewHandlerWithDeps(tx, employees, projects, lines), lines, tx
}

func TestAssign(t *testing.T) {
	t.Run(`assign builds both lines check`, func(t *testing.T) {
		h, lines, tx := newTestHandler(t)
		managerID := testdb.CreateEmployee(t, tx, "manager", nil)
		pmID := testdb.CreateEmployee(t, tx, "pm", nil)
		employeeID := testdb.CreateEmployee(t, tx, "employee", &managerID)
		projectID := testdb.CreateProject(t, tx, "project", &pmID)
		wbsID := testdb.CreateWbsItem(t, tx, projectID, "1.1")
		periodID := testdb.CreatePeriod(t, tx)

		data := evaluationapimodels.WbsAssignmentData{EmployeeID: employeeID, ProjectID: projectID, WbsItemID: wbsID}
		first, err := h.Assign(periodID, "admin", data)
		require.NoError(t, err)
		second, err := h.Assign(periodID, "admin", data)
		require.NoError(t, err)
		require.Equal(t, first.ID, second.ID)

		evaluatorID, found, err := lines.GetPrimaryEvaluator(periodID, employeeID)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, managerID, evaluatorID)

		secondary, err := lines.ListSecondaryEvaluators(periodID, employeeID)
		require.NoError(t, err)
		require.Equal(t, []string{pmID}, secondary)

		list, err := h.List(periodID, employeeID)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run(`wbs from another project check`, func(t *testing.T) {
		h, _, tx := newTestHandler(t)
		employeeID := testdb.CreateEmployee(t, tx, "employee", nil)
		projectID := testdb.CreateProject(t, tx, "project", nil)
		otherProjectID := testdb.CreateProject(t, tx, "other", nil)
		wbsID := testdb.CreateWbsItem(t, tx, otherProjectID, "2.1")
		periodID := testdb.CreatePeriod(t, tx)

		_, err := h.Assign(periodID, "admin", evaluationapimodels.WbsAssignmentData{EmployeeID: employeeID, ProjectID: projectID, WbsItemID: wbsID})
		require.Error(t, err)
		require.True(t, apperrors.IsValidation(err))
	})

	t.Run(`unknown employee check`, func(t *testing.T) {
		h, _, tx := newTestHandler(t)
		projectID := testdb.CreateProject(t, tx, "project", nil)
		wbsID := testdb.CreateWbsItem(t, tx, projectID, "1.1")
		periodID := testdb.CreatePeriod(t, tx)

		_, err := h.Assign(periodID, "admin", evaluationapimodels.WbsAssignmentData{EmployeeID: "missing", ProjectID: projectID, WbsItemID: wbsID})
		require.True(t, apperrors.IsNotFound(err))
	})

	t.Run(`unknown period leaves no assignment check`, func(t *testing.T) {
		h, _, tx := newTestHandler(t)
		pmID := testdb.CreateEmployee(t, tx, "pm", nil)
		employeeID := testdb.CreateEmployee(t, tx, "employee", nil)
		projectID := testdb.CreateProject(t, tx, "project", &pmID)
		wbsID := testdb.CreateWbsItem(t, tx, projectID, "1.1")

		_, err := h.Assign("missing-period", "admin", evaluationapimodels.WbsAssignmentData{EmployeeID: employeeID, ProjectID: projectID, WbsItemID: wbsID})
		require.True(t, apperrors.IsNotFound(err))

		var count int64
		require.NoError(t, tx.Model(&dbmodels.WbsAssignment{}).Where("period_id = ?", "missing-period").Count(&count).Error)
		require.EqualValues(t, 0, count)
	})
}

func TestCancel(t *testing.T) {
	t.Run(`cancel removes secondary evaluator check`, func(t *testing.T) {
		h, lines, tx := newTestHandler(t)
		pmID := testdb.CreateEmployee(t, tx, "pm", nil)
		employeeID := testdb.CreateEmployee(t, tx, "employee", nil)
		projectID := testdb.CreateProject(t, tx, "project", &pmID)
		wbsID := testdb.CreateWbsItem(t, tx, projectID, "1.1")
		periodID := testdb.CreatePeriod(t, tx)

		view, err := h.Assign(periodID, "admin", evaluationapimodels.WbsAssignmentData{EmployeeID: employeeID, ProjectID: projectID, WbsItemID: wbsID})
		require.NoError(t, err)
		require.NoError(t, h.Cancel(periodID, view.ID))

		secondary, err := lines.ListSecondaryEvaluators(periodID, employeeID)
		require.NoError(t, err)
		require.Empty(t, secondary)

		err = h.Cancel(periodID, view.ID)
		require.True(t, apperrors.IsNotFound(err))
	})
}

func TestResolveLines(t *testing.T) {
	t.Run(`manager and pm change picked up check`, func(t *testing.T) {
		h, lines, tx := newTestHandler(t)
		firstManagerID := testdb.CreateEmployee(t, tx, "first manager", nil)
		secondManagerID := testdb.CreateEmployee(t, tx, "second manager", nil)
		firstPmID := testdb.CreateEmployee(t, tx, "first pm", nil)
		secondPmID := testdb.CreateEmployee(t, tx, "second pm", nil)
		employeeID := testdb.CreateEmployee(t, tx, "employee", &firstManagerID)
		projectID := testdb.CreateProject(t, tx, "project", &firstPmID)
		wbsID := testdb.CreateWbsItem(t, tx, projectID, "1.1")
		periodID := testdb.CreatePeriod(t, tx)

		_, err := h.Assign(periodID, "admin", evaluationapimodels.WbsAssignmentData{EmployeeID: employeeID, ProjectID: projectID, WbsItemID: wbsID})
		require.NoError(t, err)

		testdb.SetEmployeeManager(t, tx, employeeID, &secondManagerID)
		testdb.SetProjectManager(t, tx, projectID, &secondPmID)
		require.NoError(t, h.ResolveLines(periodID, employeeID))

		evaluatorID, found, err := lines.GetPrimaryEvaluator(periodID, employeeID)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, secondManagerID, evaluatorID)

		secondary, err := lines.ListSecondaryEvaluators(periodID, employeeID)
		require.NoError(t, err)
		require.Equal(t, []string{secondPmID}, secondary)
	})
}
