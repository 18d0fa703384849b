package evaluationperiodhandler

import (
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-evaluation-backend/db"
	evaluationperiodstore "hr-evaluation-backend/lib/evaluation-period/store"
	"hr-evaluation-backend/lib/settings"
	apperrors "hr-evaluation-backend/lib/utils/app-errors"
	initchecker "hr-evaluation-backend/lib/utils/init-checker"
	"hr-evaluation-backend/models"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
	dbmodels "hr-evaluation-backend/models/db"
)

type Provider interface {
	Create(userID string, data evaluationapimodels.PeriodCreateData) (id string, err error)
	Get(id string) (*dbmodels.EvaluationPeriod, error)
	GetView(id string) (evaluationapimodels.PeriodView, error)
	List() ([]evaluationapimodels.PeriodView, error)
	Start(id string) error
	ChangePhase(id string, phase models.PeriodPhase) error
	UpdatePermissions(id string, data evaluationapimodels.PeriodPermissionsData) error
	Complete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := NewHandlerWithTx(db.DB, settings.Instance)
	Instance = instance
}

func NewHandlerWithTx(tx *gorm.DB, settingsProvider settings.Provider) Provider {
	instance := impl{
		store:    evaluationperiodstore.NewInstance(tx),
		settings: settingsProvider,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"settings", instance.settings,
	)
	return instance
}

type impl struct {
	store    evaluationperiodstore.Provider
	settings settings.Provider
}

func (i impl) getLogger(periodID string) *log.Entry {
	return log.WithField("period_id", periodID)
}

func (i impl) Create(userID string, data evaluationapimodels.PeriodCreateData) (id string, err error) {
	gradeRanges := dbmodels.GradeRanges(data.GradeRanges)
	if len(gradeRanges) == 0 {
		gradeRanges = i.settings.DefaultGradeRanges()
	}
	rec := dbmodels.EvaluationPeriod{
		Name:                    data.Name,
		Description:             data.Description,
		Status:                  models.PeriodStatusWaiting,
		CurrentPhase:            models.PhaseWaiting,
		StartDate:               data.StartDate,
		EvaluationSetupDeadline: data.EvaluationSetupDeadline,
		PerformanceDeadline:     data.PerformanceDeadline,
		SelfEvaluationDeadline:  data.SelfEvaluationDeadline,
		PeerEvaluationDeadline:  data.PeerEvaluationDeadline,
		GradeRanges:             gradeRanges,
		CreatedBy:               userID,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	i.getLogger(id).Info("создан период оценки")
	return id, nil
}

func (i impl) Get(id string) (*dbmodels.EvaluationPeriod, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("период оценки", id)
	}
	return rec, nil
}

func (i impl) GetView(id string) (evaluationapimodels.PeriodView, error) {
	rec, err := i.Get(id)
	if err != nil {
		return evaluationapimodels.PeriodView{}, err
	}
	return evaluationapimodels.PeriodConvert(*rec), nil
}

func (i impl) List() ([]evaluationapimodels.PeriodView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]evaluationapimodels.PeriodView, 0, len(list))
	for _, rec := range list {
		result = append(result, evaluationapimodels.PeriodConvert(rec))
	}
	return result, nil
}

func (i impl) Start(id string) error {
	rec, err := i.Get(id)
	if err != nil {
		return err
	}
	if rec.Status != models.PeriodStatusWaiting {
		return apperrors.NewValidation("запустить можно только ожидающий период, текущий статус: %v", rec.Status)
	}
	updMap := map[string]interface{}{
		"status":                          models.PeriodStatusInProgress,
		"current_phase":                   models.PhaseEvaluationSetup,
		"criteria_setting_enabled":        true,
		"self_evaluation_setting_enabled": false,
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	i.getLogger(id).Info("период оценки запущен")
	return nil
}

func (i impl) ChangePhase(id string, phase models.PeriodPhase) error {
	rec, err := i.Get(id)
	if err != nil {
		return err
	}
	if rec.Status != models.PeriodStatusInProgress {
		return apperrors.NewValidation("фазу можно менять только у запущенного периода")
	}
	if !phase.IsAfter(rec.CurrentPhase) {
		return apperrors.NewValidation("фаза может меняться только вперед: %v -> %v", rec.CurrentPhase, phase)
	}
	if phase == models.PhaseClosure {
		// закрытие делается через Complete, чтобы снять разрешения
		return i.Complete(id)
	}
	updMap := map[string]interface{}{
		"current_phase": phase,
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	i.getLogger(id).
		WithField("phase", phase).
		Info("изменена фаза периода оценки")
	return nil
}

func (i impl) UpdatePermissions(id string, data evaluationapimodels.PeriodPermissionsData) error {
	rec, err := i.Get(id)
	if err != nil {
		return err
	}
	if rec.Status == models.PeriodStatusCompleted {
		return apperrors.NewValidation("период оценки завершен, изменение разрешений недоступно")
	}
	updMap := map[string]interface{}{}
	if data.CriteriaSettingEnabled != nil {
		updMap["criteria_setting_enabled"] = *data.CriteriaSettingEnabled
	}
	if data.SelfEvaluationSettingEnabled != nil {
		updMap["self_evaluation_setting_enabled"] = *data.SelfEvaluationSettingEnabled
	}
	if data.FinalEvaluationSettingEnabled != nil {
		updMap["final_evaluation_setting_enabled"] = *data.FinalEvaluationSettingEnabled
	}
	return i.store.Update(id, updMap)
}

func (i impl) Complete(id string) error {
	rec, err := i.Get(id)
	if err != nil {
		return err
	}
	if rec.Status == models.PeriodStatusCompleted {
		return nil
	}
	if rec.Status != models.PeriodStatusInProgress {
		return apperrors.NewValidation("завершить можно только запущенный период")
	}
	updMap := map[string]interface{}{
		"status":                           models.PeriodStatusCompleted,
		"current_phase":                    models.PhaseClosure,
		"completed_at":                     time.Now(),
		"criteria_setting_enabled":         false,
		"self_evaluation_setting_enabled":  false,
		"final_evaluation_setting_enabled": false,
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	i.getLogger(id).Info("период оценки завершен")
	return nil
}
