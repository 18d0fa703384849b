package stepapprovalhandler

import (
	"github.com/pkg/errors"
	apperrors "hr-evaluation-backend/lib/utils/app-errors"
	"hr-evaluation-backend/lib/utils/besteffort"
	"hr-evaluation-backend/models"
)

// cascadeTarget этап, подтверждаемый каскадом. fanOut - по каждому оценщику второй линии,
// ошибка одного оценщика не прерывает остальных. Ошибка этапа без fanOut прерывает каскад
type cascadeTarget struct {
	step   models.EvaluationStep
	fanOut bool
}

var cascadePlans = map[models.CascadeDirection]map[models.EvaluationStep][]cascadeTarget{
	models.CascadeDown: {
		models.StepSelf: {
			{step: models.StepPrimary},
			{step: models.StepSecondary, fanOut: true},
		},
		models.StepPrimary: {
			{step: models.StepSecondary, fanOut: true},
		},
	},
	models.CascadeUp: {
		models.StepPrimary: {
			{step: models.StepSelf},
		},
		models.StepSecondary: {
			{step: models.StepPrimary},
			{step: models.StepSelf},
		},
	},
}

func cascadePlan(direction models.CascadeDirection, fromStep models.EvaluationStep) ([]cascadeTarget, error) {
	if !fromStep.IsValid() {
		return nil, apperrors.NewValidation("неизвестный этап оценки: %v", fromStep)
	}
	plans, ok := cascadePlans[direction]
	if !ok {
		return nil, apperrors.NewValidation("неизвестное направление каскада: %v", direction)
	}
	return plans[fromStep], nil
}

func (i impl) CascadeApproveDown(periodID, employeeID string, fromStep models.EvaluationStep, updatedBy string) error {
	return i.runCascade(periodID, employeeID, models.CascadeDown, fromStep, updatedBy)
}

// CascadeApproveUp подтверждает этапы выше fromStep. Сам этап fromStep (в том числе строку
// конкретного оценщика второй линии) подтверждает Approve до вызова каскада
func (i impl) CascadeApproveUp(periodID, employeeID string, fromStep models.EvaluationStep, updatedBy string) error {
	return i.runCascade(periodID, employeeID, models.CascadeUp, fromStep, updatedBy)
}

func (i impl) runCascade(periodID, employeeID string, direction models.CascadeDirection, fromStep models.EvaluationStep, updatedBy string) error {
	plan, err := cascadePlan(direction, fromStep)
	if err != nil {
		return err
	}
	logger := i.getLogger(periodID, employeeID, fromStep).
		WithField("direction", direction)
	for _, target := range plan {
		if !target.fanOut {
			if err = i.approveWithSubmissionSync(periodID, employeeID, target.step, updatedBy, ""); err != nil {
				return errors.Wrapf(err, "ошибка каскадного подтверждения этапа %v", target.step)
			}
			continue
		}
		evaluators, err := i.lines.ListSecondaryEvaluators(periodID, employeeID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения оценщиков второй линии")
		}
		for _, evaluatorID := range evaluators {
			besteffort.Run(logger.WithField("evaluator_id", evaluatorID), "каскадное подтверждение второй линии", func() error {
				return i.approveWithSubmissionSync(periodID, employeeID, target.step, updatedBy, evaluatorID)
			})
		}
	}
	logger.WithField("targets", len(plan)).Debug("каскадное подтверждение выполнено")
	return nil
}
