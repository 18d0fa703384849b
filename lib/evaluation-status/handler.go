package evaluationstatushandler

import (
	"github.com/pkg/errors"
	employeeprovider "hr-evaluation-backend/lib/dicts/employee"
	evaluationlinehandler "hr-evaluation-backend/lib/evaluation-line"
	performanceevaluationhandler "hr-evaluation-backend/lib/performance-evaluation"
	stepapprovalhandler "hr-evaluation-backend/lib/step-approval"
	initchecker "hr-evaluation-backend/lib/utils/init-checker"
	"hr-evaluation-backend/models"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
	dbmodels "hr-evaluation-backend/models/db"
)

type Employees interface {
	Get(id string) (*dbmodels.Employee, error)
}

type Lines interface {
	GetPrimaryEvaluator(periodID, employeeID string) (evaluatorID string, found bool, err error)
	ListSecondaryEvaluators(periodID, employeeID string) ([]string, error)
	ListEmployeeIDs(periodID string) ([]string, error)
}

type Submissions interface {
	IsCriteriaSubmitted(periodID, employeeID string) (bool, error)
	ListSelf(periodID, employeeID string) ([]dbmodels.WbsSelfEvaluation, error)
	ListDownward(periodID, employeeID string) ([]dbmodels.DownwardEvaluation, error)
}

type Approvals interface {
	Get(periodID, employeeID string) (evaluationapimodels.StepApprovalView, error)
}

// Provider сводное состояние оценки сотрудника для дашборда и выгрузки
type Provider interface {
	Get(periodID, employeeID string) (evaluationapimodels.EmployeeEvaluationStatus, error)
	ListPeriod(periodID string) ([]evaluationapimodels.EmployeeEvaluationStatus, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithDeps(
		employeeprovider.Instance,
		evaluationlinehandler.Instance,
		performanceevaluationhandler.Instance,
		stepapprovalhandler.Instance,
	)
}

func NewHandlerWithDeps(employees Employees, lines Lines, submissions Submissions, approvals Approvals) Provider {
	instance := impl{
		employees:   employees,
		lines:       lines,
		submissions: submissions,
		approvals:   approvals,
	}
	initchecker.CheckInit(
		"employees", instance.employees,
		"lines", instance.lines,
		"submissions", instance.submissions,
		"approvals", instance.approvals,
	)
	return instance
}

type impl struct {
	employees   Employees
	lines       Lines
	submissions Submissions
	approvals   Approvals
}

func (i impl) Get(periodID, employeeID string) (evaluationapimodels.EmployeeEvaluationStatus, error) {
	result := evaluationapimodels.EmployeeEvaluationStatus{
		PeriodID:   periodID,
		EmployeeID: employeeID,
	}
	employee, err := i.employees.Get(employeeID)
	if err != nil {
		return result, err
	}
	result.EmployeeName = employee.Name

	approval, err := i.approvals.Get(periodID, employeeID)
	if err != nil {
		return result, err
	}

	criteriaSubmitted, err := i.submissions.IsCriteriaSubmitted(periodID, employeeID)
	if err != nil {
		return result, errors.Wrap(err, "ошибка получения состояния критериев")
	}
	result.Criteria = evaluationapimodels.SubmissionStatusView{
		ApprovalStatus: approval.Criteria.Status,
		Total:          1,
	}
	result.Criteria.Status = evaluationapimodels.ProgressNone
	if criteriaSubmitted {
		result.Criteria.Submitted = 1
		result.Criteria.Status = evaluationapimodels.ProgressComplete
	}

	selfList, err := i.submissions.ListSelf(periodID, employeeID)
	if err != nil {
		return result, errors.Wrap(err, "ошибка получения самооценок")
	}
	result.Self = evaluationapimodels.SubmissionStatusView{
		ApprovalStatus: approval.Self.Status,
		Total:          len(selfList),
	}
	for _, rec := range selfList {
		if rec.SubmittedToEvaluator {
			result.Self.Submitted++
		}
	}
	result.Self.Status = progress(result.Self.Total, result.Self.Submitted)

	downward, err := i.submissions.ListDownward(periodID, employeeID)
	if err != nil {
		return result, errors.Wrap(err, "ошибка получения оценок руководителей")
	}

	primaryID, found, err := i.lines.GetPrimaryEvaluator(periodID, employeeID)
	if err != nil {
		return result, err
	}
	result.Primary = evaluationapimodels.PrimaryStatusView{
		HasEvaluator: found,
		EvaluatorStatusView: evaluationapimodels.EvaluatorStatusView{
			ApprovalStatus: approval.Primary.Status,
			Status:         evaluationapimodels.ProgressNone,
		},
	}
	if found {
		result.Primary.EvaluatorStatusView = evaluatorStatus(primaryID, models.EvaluatorTypePrimary, approval.Primary.Status, downward)
	}

	secondaryIDs, err := i.lines.ListSecondaryEvaluators(periodID, employeeID)
	if err != nil {
		return result, err
	}
	secondaryApprovals := map[string]models.StepApprovalStatus{}
	for _, state := range approval.Secondary {
		secondaryApprovals[state.EvaluatorID] = state.Status
	}
	result.Secondary = evaluationapimodels.SecondaryStatusView{
		HasEvaluator: len(secondaryIDs) > 0,
		Evaluators:   make([]evaluationapimodels.EvaluatorStatusView, 0, len(secondaryIDs)),
	}
	for _, evaluatorID := range secondaryIDs {
		approvalStatus, exist := secondaryApprovals[evaluatorID]
		if !exist {
			approvalStatus = models.StepStatusPending
		}
		result.Secondary.Evaluators = append(result.Secondary.Evaluators, evaluatorStatus(evaluatorID, models.EvaluatorTypeSecondary, approvalStatus, downward))
	}
	result.Secondary.Status = aggregate(result.Secondary.Evaluators)
	return result, nil
}

func (i impl) ListPeriod(periodID string) ([]evaluationapimodels.EmployeeEvaluationStatus, error) {
	ids, err := i.lines.ListEmployeeIDs(periodID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения сотрудников периода")
	}
	result := make([]evaluationapimodels.EmployeeEvaluationStatus, 0, len(ids))
	for _, employeeID := range ids {
		status, err := i.Get(periodID, employeeID)
		if err != nil {
			return nil, err
		}
		result = append(result, status)
	}
	return result, nil
}

func evaluatorStatus(evaluatorID string, evaluationType models.EvaluatorType, approvalStatus models.StepApprovalStatus, downward []dbmodels.DownwardEvaluation) evaluationapimodels.EvaluatorStatusView {
	view := evaluationapimodels.EvaluatorStatusView{
		EvaluatorID:    evaluatorID,
		ApprovalStatus: approvalStatus,
	}
	for _, rec := range downward {
		if rec.EvaluatorID != evaluatorID || rec.EvaluationType != evaluationType {
			continue
		}
		view.Total++
		if rec.IsCompleted {
			view.Submitted++
		}
	}
	view.Status = progress(view.Total, view.Submitted)
	return view
}

func progress(total, submitted int) evaluationapimodels.ProgressStatus {
	switch {
	case total == 0:
		return evaluationapimodels.ProgressNone
	case submitted >= total:
		return evaluationapimodels.ProgressComplete
	}
	return evaluationapimodels.ProgressInProgress
}

func aggregate(list []evaluationapimodels.EvaluatorStatusView) evaluationapimodels.ProgressStatus {
	if len(list) == 0 {
		return evaluationapimodels.ProgressNone
	}
	complete := 0
	started := 0
	for _, item := range list {
		switch item.Status {
		case evaluationapimodels.ProgressComplete:
			complete++
			started++
		case evaluationapimodels.ProgressInProgress:
			started++
		}
	}
	switch {
	case complete == len(list):
		return evaluationapimodels.ProgressComplete
	case started > 0:
		return evaluationapimodels.ProgressInProgress
	}
	return evaluationapimodels.ProgressNone
}
