package evaluationstatushandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	activityloghandler "hr-evaluation-backend/lib/activity-log"
	employeeprovider "hr-evaluation-backend/lib/dicts/employee"
	projectprovider "hr-evaluation-backend/lib/dicts/project"
	evaluationlinehandler "hr-evaluation-backend/lib/evaluation-line"
	performanceevaluationhandler "hr-evaluation-backend/lib/performance-evaluation"
	revisionrequesthandler "hr-evaluation-backend/lib/revision-request"
	stepapprovalhandler "hr-evaluation-backend/lib/step-approval"
	"hr-evaluation-backend/lib/utils/testdb"
	wbsassignmenthandler "hr-evaluation-backend/lib/wbs-assignment"
	"hr-evaluation-backend/models"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
	dbmodels "hr-evaluation-backend/models/db"
)

type silentNotifier struct{}

func (silentNotifier) RevisionRequested(rec dbmodels.EvaluationRevisionRequest) error {
	return nil
}

func TestEndToEnd(t *testing.T) {
	t.Run(`self approval cascades into complete status check`, func(t *testing.T) {
		tx := testdb.New(t)
		employees := employeeprovider.NewHandlerWithTx(tx)
		projects := projectprovider.NewHandlerWithTx(tx)
		lines := evaluationlinehandler.NewHandlerWithTx(tx, employees, projects)
		gateway := performanceevaluationhandler.NewHandlerWithTx(tx)
		registry := revisionrequesthandler.NewHandlerWithTx(tx)
		approvals := stepapprovalhandler.NewHandlerWithDeps(tx, gateway, registry, lines, activityloghandler.NewHandlerWithTx(tx), silentNotifier{})
		assignments := wbsassignmenthandler.NewHandlerWithDeps(tx, employees, projects, lines)
		status := NewHandlerWithDeps(employees, lines, gateway, approvals)

		managerID := testdb.CreateEmployee(t, tx, "M", nil)
		pmID := testdb.CreateEmployee(t, tx, "Q", nil)
		employeeID := testdb.CreateEmployee(t, tx, "X", &managerID)
		projectID := testdb.CreateProject(t, tx, "P", &pmID)
		wbsID := testdb.CreateWbsItem(t, tx, projectID, "W")
		periodID := testdb.CreatePeriod(t, tx)

		_, err := assignments.Assign(periodID, "admin", evaluationapimodels.WbsAssignmentData{
			EmployeeID: employeeID,
			ProjectID:  projectID,
			WbsItemID:  wbsID,
		})
		require.NoError(t, err)

		line, err := lines.Get(periodID, employeeID)
		require.NoError(t, err)
		require.Len(t, line.Mappings, 2)
		require.Equal(t, managerID, line.Mappings[0].EvaluatorID)
		require.Nil(t, line.Mappings[0].WbsItemID)
		require.Equal(t, pmID, line.Mappings[1].EvaluatorID)
		require.Equal(t, wbsID, *line.Mappings[1].WbsItemID)

		_, err = gateway.SaveDownward(periodID, employeeID, managerID, managerID, evaluationapimodels.DownwardEvaluationData{
			EvaluationType: models.EvaluatorTypePrimary,
		})
		require.NoError(t, err)
		_, err = gateway.SaveDownward(periodID, employeeID, pmID, pmID, evaluationapimodels.DownwardEvaluationData{
			EvaluationType: models.EvaluatorTypeSecondary,
			WbsItemID:      &wbsID,
		})
		require.NoError(t, err)

		before, err := status.Get(periodID, employeeID)
		require.NoError(t, err)
		require.Equal(t, evaluationapimodels.ProgressInProgress, before.Primary.Status)

		require.NoError(t, approvals.Approve(periodID, employeeID, models.StepSelf, "admin", "", models.CascadeDown))

		result, err := status.Get(periodID, employeeID)
		require.NoError(t, err)
		require.Equal(t, "X", result.EmployeeName)
		require.True(t, result.Primary.HasEvaluator)
		require.Equal(t, managerID, result.Primary.EvaluatorID)
		require.Equal(t, evaluationapimodels.ProgressComplete, result.Primary.Status)
		require.Equal(t, models.StepStatusApproved, result.Primary.ApprovalStatus)
		require.True(t, result.Secondary.HasEvaluator)
		require.Equal(t, evaluationapimodels.ProgressComplete, result.Secondary.Status)
		require.Len(t, result.Secondary.Evaluators, 1)
		require.Equal(t, pmID, result.Secondary.Evaluators[0].EvaluatorID)
		require.Equal(t, models.StepStatusApproved, result.Secondary.Evaluators[0].ApprovalStatus)
		require.Equal(t, models.StepStatusApproved, result.Self.ApprovalStatus)

		list, err := status.ListPeriod(periodID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, employeeID, list[0].EmployeeID)
	})

	t.Run(`no evaluators check`, func(t *testing.T) {
		tx := testdb.New(t)
		employees := employeeprovider.NewHandlerWithTx(tx)
		lines := evaluationlinehandler.NewHandlerWithTx(tx, employees, projectprovider.NewHandlerWithTx(tx))
		gateway := performanceevaluationhandler.NewHandlerWithTx(tx)
		approvals := stepapprovalhandler.NewHandlerWithDeps(tx, gateway, revisionrequesthandler.NewHandlerWithTx(tx), lines, activityloghandler.NewHandlerWithTx(tx), silentNotifier{})
		status := NewHandlerWithDeps(employees, lines, gateway, approvals)

		employeeID := testdb.CreateEmployee(t, tx, "X", nil)
		periodID := testdb.CreatePeriod(t, tx)

		result, err := status.Get(periodID, employeeID)
		require.NoError(t, err)
		require.False(t, result.Primary.HasEvaluator)
		require.False(t, result.Secondary.HasEvaluator)
		require.Equal(t, evaluationapimodels.ProgressNone, result.Secondary.Status)
		require.Equal(t, evaluationapimodels.ProgressNone, result.Criteria.Status)
		require.Equal(t, models.StepStatusPending, result.Criteria.ApprovalStatus)
	})
}
