package evaluationapimodels

import (
	"hr-evaluation-backend/models"
	apimodels "hr-evaluation-backend/models/api"
	dbmodels "hr-evaluation-backend/models/db"
)

type WbsAssignmentData struct {
	EmployeeID string `json:"employee_id" validate:"required"` // Сотрудник
	ProjectID  string `json:"project_id" validate:"required"`  // Проект
	WbsItemID  string `json:"wbs_item_id" validate:"required"` // WBS
}

func (r WbsAssignmentData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type WbsAssignmentView struct {
	ID         string `json:"id"`
	PeriodID   string `json:"period_id"`
	EmployeeID string `json:"employee_id"`
	ProjectID  string `json:"project_id"`
	WbsItemID  string `json:"wbs_item_id"`
}

func WbsAssignmentConvert(rec dbmodels.WbsAssignment) WbsAssignmentView {
	return WbsAssignmentView{
		ID:         rec.ID,
		PeriodID:   rec.PeriodID,
		EmployeeID: rec.EmployeeID,
		ProjectID:  rec.ProjectID,
		WbsItemID:  rec.WbsItemID,
	}
}

type EvaluationLineMappingView struct {
	ID            string               `json:"id"`
	EmployeeID    string               `json:"employee_id"`
	EvaluatorID   string               `json:"evaluator_id"`
	EvaluatorType models.EvaluatorType `json:"evaluator_type"`
	WbsItemID     *string              `json:"wbs_item_id"`
}

type EvaluationLineView struct {
	PeriodID   string                      `json:"period_id"`
	EmployeeID string                      `json:"employee_id"`
	Mappings   []EvaluationLineMappingView `json:"mappings"`
}
