package evaluationapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hr-evaluation-backend/models"
	apimodels "hr-evaluation-backend/models/api"
	dbmodels "hr-evaluation-backend/models/db"
)

type RevisionResponseData struct {
	ResponseComment string `json:"response_comment" validate:"required"` // Ответ на запрос доработки
}

func (r RevisionResponseData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type RevisionRequestFilter struct {
	PeriodID    string                `json:"period_id" query:"period_id"`
	EmployeeID  string                `json:"employee_id" query:"employee_id"`
	RecipientID string                `json:"recipient_id" query:"recipient_id"`
	Step        models.EvaluationStep `json:"step" query:"step"`
	OnlyOpen    bool                  `json:"only_open" query:"only_open"`
}

func (r RevisionRequestFilter) Validate() error {
	if r.Step != "" && !r.Step.IsValid() {
		return errors.Errorf("неизвестный этап оценки: %v", r.Step)
	}
	return nil
}

type RevisionRecipientView struct {
	ID              string               `json:"id"`
	RecipientID     string               `json:"recipient_id"`
	RecipientType   models.RecipientType `json:"recipient_type"`
	IsRead          bool                 `json:"is_read"`
	IsCompleted     bool                 `json:"is_completed"`
	CompletedAt     *time.Time           `json:"completed_at"`
	ResponseComment *string              `json:"response_comment"`
}

type RevisionRequestView struct {
	ID          string                  `json:"id"`
	PeriodID    string                  `json:"period_id"`
	EmployeeID  string                  `json:"employee_id"`
	Step        models.EvaluationStep   `json:"step"`
	StepName    string                  `json:"step_name"`
	Comment     string                  `json:"comment"`
	RequestedBy string                  `json:"requested_by"`
	RequestedAt time.Time               `json:"requested_at"`
	Recipients  []RevisionRecipientView `json:"recipients"`
}

func RevisionRequestConvert(rec dbmodels.EvaluationRevisionRequest) RevisionRequestView {
	view := RevisionRequestView{
		ID:          rec.ID,
		PeriodID:    rec.PeriodID,
		EmployeeID:  rec.EmployeeID,
		Step:        rec.Step,
		StepName:    rec.Step.ToHuman(),
		Comment:     rec.Comment,
		RequestedBy: rec.RequestedBy,
		RequestedAt: rec.RequestedAt,
		Recipients:  make([]RevisionRecipientView, 0, len(rec.Recipients)),
	}
	for _, recipient := range rec.Recipients {
		view.Recipients = append(view.Recipients, RevisionRecipientView{
			ID:              recipient.ID,
			RecipientID:     recipient.RecipientID,
			RecipientType:   recipient.RecipientType,
			IsRead:          recipient.IsRead,
			IsCompleted:     recipient.IsCompleted,
			CompletedAt:     recipient.CompletedAt,
			ResponseComment: recipient.ResponseComment,
		})
	}
	return view
}

type RevisionResponseView struct {
	Request      RevisionRequestView `json:"request"`
	AllCompleted bool                `json:"all_completed"`
}
