package stepapprovalhandler

import (
	"github.com/pkg/errors"
	performanceevaluationhandler "hr-evaluation-backend/lib/performance-evaluation"
	apperrors "hr-evaluation-backend/lib/utils/app-errors"
	"hr-evaluation-backend/lib/utils/besteffort"
	"hr-evaluation-backend/models"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
)

const autoCompleteComment = "Оценка отправлена при подтверждении этапа"

// approveWithSubmissionSync статус -> отправка оценок -> закрытие запросов на доработку -> журнал
func (i impl) approveWithSubmissionSync(periodID, employeeID string, step models.EvaluationStep, updatedBy, evaluatorID string) error {
	logger := i.getLogger(periodID, employeeID, step).
		WithField("updated_by", updatedBy)
	switch step {
	case models.StepCriteria:
		if err := i.writeStatus(periodID, employeeID, step, models.StepStatusApproved, "", updatedBy, ""); err != nil {
			return err
		}
		err := i.gateway.SubmitCriteria(periodID, employeeID, updatedBy)
		if err != nil {
			if !errors.Is(err, performanceevaluationhandler.ErrAlreadySubmitted) {
				return errors.Wrap(err, "ошибка отправки критериев при подтверждении")
			}
			logger.WithError(err).Warn("критерии уже отправлены")
		}
	case models.StepSelf:
		if err := i.writeStatus(periodID, employeeID, step, models.StepStatusApproved, "", updatedBy, ""); err != nil {
			return err
		}
		if _, err := i.gateway.SubmitSelfToEvaluator(employeeID, periodID, updatedBy); err != nil {
			logger.WithError(err).Warn("не удалось отправить самооценку оценщику")
		}
		if _, err := i.gateway.SubmitSelfToManager(employeeID, periodID, updatedBy); err != nil {
			logger.WithError(err).Warn("не удалось отправить самооценку руководителю")
		}
	case models.StepPrimary:
		if err := i.writeStatus(periodID, employeeID, step, models.StepStatusApproved, "", updatedBy, ""); err != nil {
			return err
		}
		primaryID, found, err := i.lines.GetPrimaryEvaluator(periodID, employeeID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения руководителя первой линии")
		}
		if !found {
			logger.Info("руководитель первой линии не назначен, отправлять нечего")
			break
		}
		if err = i.forceSubmitDownward(periodID, employeeID, primaryID, models.EvaluatorTypePrimary, updatedBy); err != nil {
			return err
		}
		evaluatorID = primaryID
	case models.StepSecondary:
		if evaluatorID == "" {
			return apperrors.NewValidation("для этапа secondary необходимо указать оценщика")
		}
		if err := i.writeStatus(periodID, employeeID, step, models.StepStatusApproved, "", updatedBy, evaluatorID); err != nil {
			return err
		}
		if err := i.forceSubmitDownward(periodID, employeeID, evaluatorID, models.EvaluatorTypeSecondary, updatedBy); err != nil {
			return err
		}
	default:
		return apperrors.NewValidation("неизвестный этап оценки: %v", step)
	}
	i.recordActivity(periodID, employeeID, step, models.ActionApproved, updatedBy, evaluatorID, models.StepStatusApproved)
	return nil
}

func (i impl) forceSubmitDownward(periodID, employeeID, evaluatorID string, evaluationType models.EvaluatorType, updatedBy string) error {
	logger := i.getLogger(periodID, employeeID, evaluationType.Step()).
		WithField("evaluator_id", evaluatorID)
	result, err := i.gateway.ForceSubmitDownward(evaluatorID, employeeID, periodID, evaluationType, updatedBy)
	if err != nil {
		return errors.Wrap(err, "ошибка отправки оценок руководителя при подтверждении")
	}
	if result.Submitted == 0 && result.Skipped == 0 {
		logger.Info("нет оценок руководителя для отправки")
		return nil
	}
	recipientType := models.RecipientPrimaryEvaluator
	if evaluationType == models.EvaluatorTypeSecondary {
		recipientType = models.RecipientSecondaryEvaluator
	}
	besteffort.Run(logger, "закрытие запросов на доработку", func() error {
		_, err := i.registry.CompleteForSubmitter(periodID, employeeID, evaluationType.Step(), evaluatorID, recipientType, autoCompleteComment)
		return err
	})
	return nil
}

// RequestRevisionAndResetSubmission сброс отправки выполняется до записи статуса
func (i impl) RequestRevisionAndResetSubmission(periodID, employeeID string, step models.EvaluationStep, comment, requestedBy, evaluatorID string) error {
	if err := evaluationapimodels.ValidateRevisionComment(models.StepStatusRevisionRequested, comment); err != nil {
		return apperrors.NewValidation("%v", err.Error())
	}
	switch step {
	case models.StepCriteria:
		if err := i.gateway.ResetCriteria(periodID, employeeID, requestedBy); err != nil {
			return errors.Wrap(err, "ошибка сброса отправки критериев")
		}
	case models.StepSelf:
		if err := i.gateway.ResetSelf(employeeID, periodID, requestedBy); err != nil {
			return errors.Wrap(err, "ошибка сброса отправки самооценки")
		}
	case models.StepPrimary:
		primaryID, found, err := i.lines.GetPrimaryEvaluator(periodID, employeeID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения руководителя первой линии")
		}
		if found {
			if err = i.gateway.ResetDownward(employeeID, periodID, primaryID, models.EvaluatorTypePrimary, requestedBy); err != nil {
				return errors.Wrap(err, "ошибка сброса отправки оценки первой линии")
			}
		}
	case models.StepSecondary:
		if evaluatorID == "" {
			return apperrors.NewValidation("для этапа secondary необходимо указать оценщика")
		}
		if err := i.gateway.ResetDownward(employeeID, periodID, evaluatorID, models.EvaluatorTypeSecondary, requestedBy); err != nil {
			return errors.Wrap(err, "ошибка сброса отправки оценки второй линии")
		}
	default:
		return apperrors.NewValidation("неизвестный этап оценки: %v", step)
	}
	if err := i.writeStatus(periodID, employeeID, step, models.StepStatusRevisionRequested, comment, requestedBy, evaluatorID); err != nil {
		return err
	}
	i.recordActivity(periodID, employeeID, step, models.ActionRevisionRequested, requestedBy, evaluatorID, models.StepStatusRevisionRequested)
	return nil
}
