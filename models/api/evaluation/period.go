package evaluationapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hr-evaluation-backend/models"
	apimodels "hr-evaluation-backend/models/api"
	dbmodels "hr-evaluation-backend/models/db"
)

type PeriodCreateData struct {
	Name                    string                `json:"name" validate:"required,max=255"` // Название периода
	Description             string                `json:"description"`                      // Описание
	StartDate               time.Time             `json:"start_date" validate:"required"`   // Дата начала
	EvaluationSetupDeadline *time.Time            `json:"evaluation_setup_deadline"`        // Срок настройки критериев
	PerformanceDeadline     *time.Time            `json:"performance_deadline"`             // Срок выполнения работ
	SelfEvaluationDeadline  *time.Time            `json:"self_evaluation_deadline"`         // Срок самооценки
	PeerEvaluationDeadline  *time.Time            `json:"peer_evaluation_deadline"`         // Срок оценки руководителями
	GradeRanges             []dbmodels.GradeRange `json:"grade_ranges"`                     // Диапазоны оценок, по умолчанию из настроек
}

func (r PeriodCreateData) Validate() error {
	if err := apimodels.ValidateStruct(r); err != nil {
		return err
	}
	deadlines := []*time.Time{r.EvaluationSetupDeadline, r.PerformanceDeadline, r.SelfEvaluationDeadline, r.PeerEvaluationDeadline}
	prev := r.StartDate
	for _, deadline := range deadlines {
		if deadline == nil {
			continue
		}
		if deadline.Before(prev) {
			return errors.New("сроки фаз должны идти по порядку и не раньше даты начала")
		}
		prev = *deadline
	}
	if len(r.GradeRanges) != 0 {
		return dbmodels.GradeRanges(r.GradeRanges).Validate()
	}
	return nil
}

type PeriodPhaseData struct {
	Phase models.PeriodPhase `json:"phase" validate:"required"` // Новая фаза
}

func (r PeriodPhaseData) Validate() error {
	if err := apimodels.ValidateStruct(r); err != nil {
		return err
	}
	if !r.Phase.IsValid() {
		return errors.Errorf("неизвестная фаза: %v", r.Phase)
	}
	return nil
}

type PeriodView struct {
	ID                            string                `json:"id"`
	Name                          string                `json:"name"`
	Description                   string                `json:"description"`
	Status                        models.PeriodStatus   `json:"status"`
	CurrentPhase                  models.PeriodPhase    `json:"current_phase"`
	StartDate                     time.Time             `json:"start_date"`
	EvaluationSetupDeadline       *time.Time            `json:"evaluation_setup_deadline"`
	PerformanceDeadline           *time.Time            `json:"performance_deadline"`
	SelfEvaluationDeadline        *time.Time            `json:"self_evaluation_deadline"`
	PeerEvaluationDeadline        *time.Time            `json:"peer_evaluation_deadline"`
	CompletedAt                   *time.Time            `json:"completed_at"`
	GradeRanges                   []dbmodels.GradeRange `json:"grade_ranges"`
	CriteriaSettingEnabled        bool                  `json:"criteria_setting_enabled"`
	SelfEvaluationSettingEnabled  bool                  `json:"self_evaluation_setting_enabled"`
	FinalEvaluationSettingEnabled bool                  `json:"final_evaluation_setting_enabled"`
}

func PeriodConvert(rec dbmodels.EvaluationPeriod) PeriodView {
	return PeriodView{
		ID:                            rec.ID,
		Name:                          rec.Name,
		Description:                   rec.Description,
		Status:                        rec.Status,
		CurrentPhase:                  rec.CurrentPhase,
		StartDate:                     rec.StartDate,
		EvaluationSetupDeadline:       rec.EvaluationSetupDeadline,
		PerformanceDeadline:           rec.PerformanceDeadline,
		SelfEvaluationDeadline:        rec.SelfEvaluationDeadline,
		PeerEvaluationDeadline:        rec.PeerEvaluationDeadline,
		CompletedAt:                   rec.CompletedAt,
		GradeRanges:                   rec.GradeRanges,
		CriteriaSettingEnabled:        rec.CriteriaSettingEnabled,
		SelfEvaluationSettingEnabled:  rec.SelfEvaluationSettingEnabled,
		FinalEvaluationSettingEnabled: rec.FinalEvaluationSettingEnabled,
	}
}

type PeriodPermissionsData struct {
	CriteriaSettingEnabled        *bool `json:"criteria_setting_enabled"`
	SelfEvaluationSettingEnabled  *bool `json:"self_evaluation_setting_enabled"`
	FinalEvaluationSettingEnabled *bool `json:"final_evaluation_setting_enabled"`
}

func (r PeriodPermissionsData) Validate() error {
	if r.CriteriaSettingEnabled == nil && r.SelfEvaluationSettingEnabled == nil && r.FinalEvaluationSettingEnabled == nil {
		return errors.New("не указаны изменяемые разрешения")
	}
	return nil
}
