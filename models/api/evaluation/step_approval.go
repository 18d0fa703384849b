package evaluationapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"hr-evaluation-backend/models"
	apimodels "hr-evaluation-backend/models/api"
	dbmodels "hr-evaluation-backend/models/db"
)

type StepApprovalUpdateData struct {
	Status          models.StepApprovalStatus `json:"status" validate:"required"` // Новый статус этапа
	RevisionComment string                    `json:"revision_comment"`           // Комментарий, обязателен для revision_requested
	EvaluatorID     string                    `json:"evaluator_id"`               // Оценщик второй линии, обязателен для этапа secondary
	Cascade         models.CascadeDirection   `json:"cascade"`                    // Каскадное подтверждение: ""/down/up
}

func (r StepApprovalUpdateData) Validate(step models.EvaluationStep) error {
	if err := apimodels.ValidateStruct(r); err != nil {
		return err
	}
	if !r.Status.IsValid() {
		return errors.Errorf("неизвестный статус: %v", r.Status)
	}
	if err := ValidateRevisionComment(r.Status, r.RevisionComment); err != nil {
		return err
	}
	if !r.Cascade.IsValid() {
		return errors.Errorf("неизвестное направление каскада: %v", r.Cascade)
	}
	if r.Cascade != models.CascadeNone && r.Status != models.StepStatusApproved {
		return errors.New("каскад возможен только при подтверждении этапа")
	}
	if step == models.StepSecondary && r.EvaluatorID == "" {
		return errors.New("для этапа secondary необходимо указать оценщика")
	}
	return nil
}

// ValidateRevisionComment комментарий обязателен только для статуса revision_requested
func ValidateRevisionComment(status models.StepApprovalStatus, comment string) error {
	hasComment := strings.TrimSpace(comment) != ""
	if status == models.StepStatusRevisionRequested && !hasComment {
		return errors.New("для отправки на доработку необходимо указать комментарий")
	}
	if status != models.StepStatusRevisionRequested && hasComment {
		return errors.New("комментарий указывается только при отправке на доработку")
	}
	return nil
}

type StepStateView struct {
	Step            models.EvaluationStep     `json:"step"`
	EvaluatorID     string                    `json:"evaluator_id,omitempty"`
	Status          models.StepApprovalStatus `json:"status"`
	StatusName      string                    `json:"status_name"`
	RevisionComment *string                   `json:"revision_comment"`
	UpdatedBy       string                    `json:"updated_by"`
	ApprovedAt      *time.Time                `json:"approved_at"`
}

type StepApprovalView struct {
	PeriodID   string          `json:"period_id"`
	EmployeeID string          `json:"employee_id"`
	Criteria   StepStateView   `json:"criteria"`
	Self       StepStateView   `json:"self"`
	Primary    StepStateView   `json:"primary"`
	Secondary  []StepStateView `json:"secondary"`
}

func StepStateConvert(step models.EvaluationStep, state dbmodels.StepState) StepStateView {
	if state.Status == "" {
		state.Status = models.StepStatusPending
	}
	return StepStateView{
		Step:            step,
		Status:          state.Status,
		StatusName:      state.Status.ToHuman(),
		RevisionComment: state.RevisionComment,
		UpdatedBy:       state.UpdatedBy,
		ApprovedAt:      state.ApprovedAt,
	}
}

func SecondaryStateConvert(rec dbmodels.SecondaryStepApproval) StepStateView {
	view := StepStateConvert(models.StepSecondary, dbmodels.StepState{
		Status:          rec.Status,
		RevisionComment: rec.RevisionComment,
		UpdatedBy:       rec.UpdatedBy,
		ApprovedAt:      rec.ApprovedAt,
	})
	view.EvaluatorID = rec.EvaluatorID
	return view
}

func StepApprovalConvert(periodID, employeeID string, rec *dbmodels.StepApproval, secondary []dbmodels.SecondaryStepApproval) StepApprovalView {
	if rec == nil {
		rec = &dbmodels.StepApproval{}
	}
	view := StepApprovalView{
		PeriodID:   periodID,
		EmployeeID: employeeID,
		Criteria:   StepStateConvert(models.StepCriteria, rec.StepState(models.StepCriteria)),
		Self:       StepStateConvert(models.StepSelf, rec.StepState(models.StepSelf)),
		Primary:    StepStateConvert(models.StepPrimary, rec.StepState(models.StepPrimary)),
		Secondary:  make([]StepStateView, 0, len(secondary)),
	}
	for _, item := range secondary {
		view.Secondary = append(view.Secondary, SecondaryStateConvert(item))
	}
	return view
}
