package performanceevaluationhandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-evaluation-backend/db"
	criteriasubmissionstore "hr-evaluation-backend/lib/performance-evaluation/criteria-store"
	downwardevaluationstore "hr-evaluation-backend/lib/performance-evaluation/downward-store"
	selfevaluationstore "hr-evaluation-backend/lib/performance-evaluation/self-store"
	apperrors "hr-evaluation-backend/lib/utils/app-errors"
	"hr-evaluation-backend/models"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
	dbmodels "hr-evaluation-backend/models/db"
)

var ErrAlreadySubmitted = errors.New("критерии оценки уже отправлены")

// SubmitResult Submitted - отправлено сейчас, Skipped - уже были отправлены ранее
type SubmitResult struct {
	Submitted int
	Skipped   int
}

// Provider состояние отправки критериев, самооценок и оценок руководителей
type Provider interface {
	SubmitCriteria(periodID, employeeID, by string) error
	ResetCriteria(periodID, employeeID, by string) error
	IsCriteriaSubmitted(periodID, employeeID string) (bool, error)

	SaveSelf(periodID, employeeID, by string, data evaluationapimodels.SelfEvaluationData) (id string, err error)
	SubmitSelfToEvaluator(employeeID, periodID, by string) (SubmitResult, error)
	SubmitSelfToManager(employeeID, periodID, by string) (SubmitResult, error)
	ResetSelf(employeeID, periodID, by string) error
	ListSelf(periodID, employeeID string) ([]dbmodels.WbsSelfEvaluation, error)

	SaveDownward(periodID, employeeID, evaluatorID, by string, data evaluationapimodels.DownwardEvaluationData) (id string, err error)
	SubmitDownward(evaluatorID, employeeID, periodID string, evaluationType models.EvaluatorType, by string) (SubmitResult, error)
	ForceSubmitDownward(evaluatorID, employeeID, periodID string, evaluationType models.EvaluatorType, by string) (SubmitResult, error)
	ResetDownward(employeeID, periodID, evaluatorID string, evaluationType models.EvaluatorType, by string) error
	ListDownward(periodID, employeeID string) ([]dbmodels.DownwardEvaluation, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithTx(db.DB)
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		criteriaStore: criteriasubmissionstore.NewInstance(tx),
		selfStore:     selfevaluationstore.NewInstance(tx),
		downwardStore: downwardevaluationstore.NewInstance(tx),
	}
}

type impl struct {
	criteriaStore criteriasubmissionstore.Provider
	selfStore     selfevaluationstore.Provider
	downwardStore downwardevaluationstore.Provider
}

func (i impl) getLogger(periodID, employeeID string) *log.Entry {
	return log.
		WithField("period_id", periodID).
		WithField("employee_id", employeeID)
}

func (i impl) SubmitCriteria(periodID, employeeID, by string) error {
	rec, err := i.criteriaStore.Get(periodID, employeeID)
	if err != nil {
		return err
	}
	now := time.Now()
	if rec == nil {
		_, err = i.criteriaStore.Create(dbmodels.EvaluationCriteriaSubmission{
			BasePeriodModel: dbmodels.BasePeriodModel{
				PeriodID:   periodID,
				EmployeeID: employeeID,
			},
			IsSubmitted: true,
			SubmittedAt: &now,
			SubmittedBy: by,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка сохранения отправки критериев")
		}
		i.getLogger(periodID, employeeID).Info("критерии оценки отправлены")
		return nil
	}
	if rec.IsSubmitted {
		return ErrAlreadySubmitted
	}
	updMap := map[string]interface{}{
		"is_submitted": true,
		"submitted_at": now,
		"submitted_by": by,
	}
	if err = i.criteriaStore.Update(rec.ID, updMap); err != nil {
		return errors.Wrap(err, "ошибка сохранения отправки критериев")
	}
	i.getLogger(periodID, employeeID).Info("критерии оценки отправлены")
	return nil
}

func (i impl) ResetCriteria(periodID, employeeID, by string) error {
	rec, err := i.criteriaStore.Get(periodID, employeeID)
	if err != nil {
		return err
	}
	if rec == nil || !rec.IsSubmitted {
		return nil
	}
	updMap := map[string]interface{}{
		"is_submitted": false,
		"submitted_at": nil,
		"submitted_by": by,
	}
	if err = i.criteriaStore.Update(rec.ID, updMap); err != nil {
		return errors.Wrap(err, "ошибка сброса отправки критериев")
	}
	i.getLogger(periodID, employeeID).Info("отправка критериев сброшена")
	return nil
}

func (i impl) IsCriteriaSubmitted(periodID, employeeID string) (bool, error) {
	rec, err := i.criteriaStore.Get(periodID, employeeID)
	if err != nil {
		return false, err
	}
	return rec != nil && rec.IsSubmitted, nil
}

func (i impl) SaveSelf(periodID, employeeID, by string, data evaluationapimodels.SelfEvaluationData) (string, error) {
	rec, err := i.selfStore.Find(periodID, employeeID, data.WbsItemID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return i.selfStore.Create(dbmodels.WbsSelfEvaluation{
			BasePeriodModel: dbmodels.BasePeriodModel{
				PeriodID:   periodID,
				EmployeeID: employeeID,
			},
			WbsItemID: data.WbsItemID,
			Content:   data.Content,
			Score:     data.Score,
			UpdatedBy: by,
		})
	}
	if rec.SubmittedToEvaluator {
		return "", apperrors.NewValidation("самооценка уже отправлена и не может быть изменена")
	}
	updMap := map[string]interface{}{
		"content":    data.Content,
		"score":      data.Score,
		"updated_by": by,
	}
	if err = i.selfStore.Update(rec.ID, updMap); err != nil {
		return "", errors.Wrap(err, "ошибка сохранения самооценки")
	}
	return rec.ID, nil
}

func (i impl) SubmitSelfToEvaluator(employeeID, periodID, by string) (SubmitResult, error) {
	return i.submitSelf(employeeID, periodID, by, "submitted_to_evaluator", func(rec dbmodels.WbsSelfEvaluation) bool {
		return rec.SubmittedToEvaluator
	})
}

func (i impl) SubmitSelfToManager(employeeID, periodID, by string) (SubmitResult, error) {
	return i.submitSelf(employeeID, periodID, by, "submitted_to_manager", func(rec dbmodels.WbsSelfEvaluation) bool {
		return rec.SubmittedToManager
	})
}

func (i impl) submitSelf(employeeID, periodID, by, column string, isSubmitted func(rec dbmodels.WbsSelfEvaluation) bool) (SubmitResult, error) {
	result := SubmitResult{}
	list, err := i.selfStore.List(periodID, employeeID)
	if err != nil {
		return result, err
	}
	if len(list) == 0 {
		return result, errors.New("нет самооценок для отправки")
	}
	now := time.Now()
	for _, rec := range list {
		if isSubmitted(rec) {
			result.Skipped++
			continue
		}
		updMap := map[string]interface{}{
			column:         true,
			column + "_at": now,
			"updated_by":   by,
		}
		if err = i.selfStore.Update(rec.ID, updMap); err != nil {
			return result, errors.Wrap(err, "ошибка отправки самооценки")
		}
		result.Submitted++
	}
	i.getLogger(periodID, employeeID).
		WithField("column", column).
		WithField("submitted", result.Submitted).
		WithField("skipped", result.Skipped).
		Info("самооценка отправлена")
	return result, nil
}

func (i impl) ResetSelf(employeeID, periodID, by string) error {
	updMap := map[string]interface{}{
		"submitted_to_evaluator":    false,
		"submitted_to_evaluator_at": nil,
		"submitted_to_manager":      false,
		"submitted_to_manager_at":   nil,
		"updated_by":                by,
	}
	count, err := i.selfStore.UpdateByEmployee(periodID, employeeID, updMap)
	if err != nil {
		return errors.Wrap(err, "ошибка сброса отправки самооценки")
	}
	i.getLogger(periodID, employeeID).
		WithField("count", count).
		Info("отправка самооценки сброшена")
	return nil
}

func (i impl) ListSelf(periodID, employeeID string) ([]dbmodels.WbsSelfEvaluation, error) {
	return i.selfStore.List(periodID, employeeID)
}

func (i impl) SaveDownward(periodID, employeeID, evaluatorID, by string, data evaluationapimodels.DownwardEvaluationData) (string, error) {
	rec, err := i.downwardStore.Find(periodID, employeeID, evaluatorID, data.EvaluationType, data.WbsItemID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return i.downwardStore.Create(dbmodels.DownwardEvaluation{
			BasePeriodModel: dbmodels.BasePeriodModel{
				PeriodID:   periodID,
				EmployeeID: employeeID,
			},
			EvaluatorID:    evaluatorID,
			WbsItemID:      data.WbsItemID,
			EvaluationType: data.EvaluationType,
			Content:        data.Content,
			Score:          data.Score,
			UpdatedBy:      by,
		})
	}
	if rec.IsCompleted {
		return "", apperrors.NewValidation("оценка уже отправлена и не может быть изменена")
	}
	updMap := map[string]interface{}{
		"content":    data.Content,
		"score":      data.Score,
		"updated_by": by,
	}
	if err = i.downwardStore.Update(rec.ID, updMap); err != nil {
		return "", errors.Wrap(err, "ошибка сохранения оценки")
	}
	return rec.ID, nil
}

func (i impl) SubmitDownward(evaluatorID, employeeID, periodID string, evaluationType models.EvaluatorType, by string) (SubmitResult, error) {
	return i.submitDownward(evaluatorID, employeeID, periodID, evaluationType, by, false)
}

// ForceSubmitDownward отправка без проверки заполненности, ноль оценок не ошибка
func (i impl) ForceSubmitDownward(evaluatorID, employeeID, periodID string, evaluationType models.EvaluatorType, by string) (SubmitResult, error) {
	return i.submitDownward(evaluatorID, employeeID, periodID, evaluationType, by, true)
}

func (i impl) submitDownward(evaluatorID, employeeID, periodID string, evaluationType models.EvaluatorType, by string, force bool) (SubmitResult, error) {
	result := SubmitResult{}
	if !evaluationType.IsValid() {
		return result, errors.Errorf("неизвестный тип оценки: %v", evaluationType)
	}
	list, err := i.downwardStore.List(downwardevaluationstore.Filter{
		PeriodID:       periodID,
		EmployeeID:     employeeID,
		EvaluatorID:    evaluatorID,
		EvaluationType: evaluationType,
	})
	if err != nil {
		return result, err
	}
	ids := []string{}
	for _, rec := range list {
		if rec.IsCompleted {
			result.Skipped++
			continue
		}
		if !force && rec.Score == nil {
			return SubmitResult{}, apperrors.NewValidation("не указан балл в оценке %v", rec.ID)
		}
		ids = append(ids, rec.ID)
	}
	updMap := map[string]interface{}{
		"is_completed": true,
		"completed_at": time.Now(),
		"updated_by":   by,
	}
	count, err := i.downwardStore.UpdateByIDs(ids, updMap)
	if err != nil {
		return SubmitResult{}, errors.Wrap(err, "ошибка отправки оценки руководителя")
	}
	result.Submitted = int(count)
	i.getLogger(periodID, employeeID).
		WithField("evaluator_id", evaluatorID).
		WithField("evaluation_type", evaluationType).
		WithField("force", force).
		WithField("submitted", result.Submitted).
		WithField("skipped", result.Skipped).
		Info("оценки руководителя отправлены")
	return result, nil
}

// ResetDownward пустой evaluatorID - по всем оценщикам указанного типа
func (i impl) ResetDownward(employeeID, periodID, evaluatorID string, evaluationType models.EvaluatorType, by string) error {
	list, err := i.downwardStore.List(downwardevaluationstore.Filter{
		PeriodID:       periodID,
		EmployeeID:     employeeID,
		EvaluatorID:    evaluatorID,
		EvaluationType: evaluationType,
	})
	if err != nil {
		return err
	}
	ids := []string{}
	for _, rec := range list {
		if rec.IsCompleted {
			ids = append(ids, rec.ID)
		}
	}
	updMap := map[string]interface{}{
		"is_completed": false,
		"completed_at": nil,
		"updated_by":   by,
	}
	count, err := i.downwardStore.UpdateByIDs(ids, updMap)
	if err != nil {
		return errors.Wrap(err, "ошибка сброса отправки оценки руководителя")
	}
	i.getLogger(periodID, employeeID).
		WithField("evaluator_id", evaluatorID).
		WithField("evaluation_type", evaluationType).
		WithField("count", count).
		Info("отправка оценок руководителя сброшена")
	return nil
}

func (i impl) ListDownward(periodID, employeeID string) ([]dbmodels.DownwardEvaluation, error) {
	return i.downwardStore.List(downwardevaluationstore.Filter{
		PeriodID:   periodID,
		EmployeeID: employeeID,
	})
}
