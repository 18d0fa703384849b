package evaluationapimodels

import "hr-evaluation-backend/models"

// ProgressStatus состояние заполнения оценок этапа
type ProgressStatus string

const (
	ProgressNone       ProgressStatus = "none"
	ProgressInProgress ProgressStatus = "in_progress"
	ProgressComplete   ProgressStatus = "complete"
)

type SubmissionStatusView struct {
	ApprovalStatus models.StepApprovalStatus `json:"approval_status"`
	Status         ProgressStatus            `json:"status"`
	Total          int                       `json:"total"`
	Submitted      int                       `json:"submitted"`
}

type EvaluatorStatusView struct {
	EvaluatorID    string                    `json:"evaluator_id"`
	ApprovalStatus models.StepApprovalStatus `json:"approval_status"`
	Status         ProgressStatus            `json:"status"`
	Total          int                       `json:"total"`
	Submitted      int                       `json:"submitted"`
}

type PrimaryStatusView struct {
	HasEvaluator bool `json:"has_evaluator"`
	EvaluatorStatusView
}

type SecondaryStatusView struct {
	HasEvaluator bool                  `json:"has_evaluator"`
	Status       ProgressStatus        `json:"status"`
	Evaluators   []EvaluatorStatusView `json:"evaluators"`
}

type EmployeeEvaluationStatus struct {
	PeriodID     string               `json:"period_id"`
	EmployeeID   string               `json:"employee_id"`
	EmployeeName string               `json:"employee_name"`
	Criteria     SubmissionStatusView `json:"criteria"`
	Self         SubmissionStatusView `json:"self"`
	Primary      PrimaryStatusView    `json:"primary"`
	Secondary    SecondaryStatusView  `json:"secondary"`
}
