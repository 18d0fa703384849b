package evaluationsubmissionhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	activityloghandler "hr-evaluation-backend/lib/activity-log"
	evaluationlinehandler "hr-evaluation-backend/lib/evaluation-line"
	performanceevaluationhandler "hr-evaluation-backend/lib/performance-evaluation"
	revisionrequesthandler "hr-evaluation-backend/lib/revision-request"
	stepapprovalhandler "hr-evaluation-backend/lib/step-approval"
	apperrors "hr-evaluation-backend/lib/utils/app-errors"
	"hr-evaluation-backend/lib/utils/besteffort"
	initchecker "hr-evaluation-backend/lib/utils/init-checker"
	"hr-evaluation-backend/models"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
	dbmodels "hr-evaluation-backend/models/db"
)

const resubmitComment = "Оценка отправлена повторно"

type Gateway interface {
	SubmitCriteria(periodID, employeeID, by string) error
	SaveSelf(periodID, employeeID, by string, data evaluationapimodels.SelfEvaluationData) (id string, err error)
	SubmitSelfToEvaluator(employeeID, periodID, by string) (performanceevaluationhandler.SubmitResult, error)
	SaveDownward(periodID, employeeID, evaluatorID, by string, data evaluationapimodels.DownwardEvaluationData) (id string, err error)
	SubmitDownward(evaluatorID, employeeID, periodID string, evaluationType models.EvaluatorType, by string) (performanceevaluationhandler.SubmitResult, error)
}

type EvaluatorLines interface {
	CheckEvaluatorLine(periodID, employeeID, evaluatorID string, claimed models.EvaluatorType, wbsItemID *string) (holds bool, actual *models.EvaluatorType, err error)
}

type RevisionCompleter interface {
	CompleteForSubmitter(periodID, employeeID string, step models.EvaluationStep, submitterID string, submitterType models.RecipientType, comment string) (int, error)
}

type StepReopener interface {
	ReopenAfterResubmission(periodID, employeeID string, step models.EvaluationStep, evaluatorID, by string) error
}

type ActivityLogSink interface {
	Record(rec dbmodels.EvaluationActivityLog) error
}

// Provider обычная (не принудительная) отправка оценок участниками
type Provider interface {
	SubmitCriteria(periodID, employeeID, userID string) error
	SubmitSelfEvaluation(periodID, employeeID, userID string, data evaluationapimodels.SelfEvaluationData) (evaluationapimodels.SubmitResultView, error)
	SubmitDownward(periodID, employeeID, evaluatorID string, data evaluationapimodels.DownwardEvaluationData) (evaluationapimodels.SubmitResultView, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithDeps(
		performanceevaluationhandler.Instance,
		evaluationlinehandler.Instance,
		revisionrequesthandler.Instance,
		stepapprovalhandler.Instance,
		activityloghandler.Instance,
	)
}

func NewHandlerWithDeps(gateway Gateway, lines EvaluatorLines, revisions RevisionCompleter, steps StepReopener, activityLog ActivityLogSink) Provider {
	instance := impl{
		gateway:     gateway,
		lines:       lines,
		revisions:   revisions,
		steps:       steps,
		activityLog: activityLog,
	}
	initchecker.CheckInit(
		"gateway", instance.gateway,
		"lines", instance.lines,
		"revisions", instance.revisions,
		"steps", instance.steps,
		"activityLog", instance.activityLog,
	)
	return instance
}

type impl struct {
	gateway     Gateway
	lines       EvaluatorLines
	revisions   RevisionCompleter
	steps       StepReopener
	activityLog ActivityLogSink
}

func (i impl) getLogger(periodID, employeeID string, step models.EvaluationStep) *log.Entry {
	return log.
		WithField("period_id", periodID).
		WithField("employee_id", employeeID).
		WithField("step", step)
}

func (i impl) SubmitCriteria(periodID, employeeID, userID string) error {
	if err := i.gateway.SubmitCriteria(periodID, employeeID, userID); err != nil {
		if errors.Is(err, performanceevaluationhandler.ErrAlreadySubmitted) {
			return apperrors.NewValidation("%v", err.Error())
		}
		return err
	}
	i.afterSubmit(periodID, employeeID, models.StepCriteria, employeeID, models.RecipientEvaluatee, userID)
	return nil
}

func (i impl) SubmitSelfEvaluation(periodID, employeeID, userID string, data evaluationapimodels.SelfEvaluationData) (evaluationapimodels.SubmitResultView, error) {
	if _, err := i.gateway.SaveSelf(periodID, employeeID, userID, data); err != nil {
		return evaluationapimodels.SubmitResultView{}, err
	}
	result, err := i.gateway.SubmitSelfToEvaluator(employeeID, periodID, userID)
	if err != nil {
		return evaluationapimodels.SubmitResultView{}, err
	}
	i.afterSubmit(periodID, employeeID, models.StepSelf, employeeID, models.RecipientEvaluatee, userID)
	return evaluationapimodels.SubmitResultView{
		Submitted: result.Submitted,
		Skipped:   result.Skipped,
	}, nil
}

func (i impl) SubmitDownward(periodID, employeeID, evaluatorID string, data evaluationapimodels.DownwardEvaluationData) (evaluationapimodels.SubmitResultView, error) {
	if err := i.authorizeEvaluator(periodID, employeeID, evaluatorID, data.EvaluationType, data.WbsItemID); err != nil {
		return evaluationapimodels.SubmitResultView{}, err
	}
	if _, err := i.gateway.SaveDownward(periodID, employeeID, evaluatorID, evaluatorID, data); err != nil {
		return evaluationapimodels.SubmitResultView{}, err
	}
	if !data.Submit {
		return evaluationapimodels.SubmitResultView{}, nil
	}
	result, err := i.gateway.SubmitDownward(evaluatorID, employeeID, periodID, data.EvaluationType, evaluatorID)
	if err != nil {
		return evaluationapimodels.SubmitResultView{}, err
	}
	recipientType := models.RecipientPrimaryEvaluator
	if data.EvaluationType == models.EvaluatorTypeSecondary {
		recipientType = models.RecipientSecondaryEvaluator
	}
	i.afterSubmit(periodID, employeeID, data.EvaluationType.Step(), evaluatorID, recipientType, evaluatorID)
	return evaluationapimodels.SubmitResultView{
		Submitted: result.Submitted,
		Skipped:   result.Skipped,
	}, nil
}

// authorizeEvaluator заявленный тип оценщика должен подтверждаться его линией оценки
func (i impl) authorizeEvaluator(periodID, employeeID, evaluatorID string, claimed models.EvaluatorType, wbsItemID *string) error {
	holds, actual, err := i.lines.CheckEvaluatorLine(periodID, employeeID, evaluatorID, claimed, wbsItemID)
	if err != nil {
		return err
	}
	if holds {
		return nil
	}
	if actual == nil {
		return apperrors.NewForbidden("оценщик %v не назначен для сотрудника %v", evaluatorID, employeeID)
	}
	if *actual == claimed {
		return apperrors.NewForbidden("недостаточно прав для оценки: оценщик %v не назначен по WBS %v", evaluatorID, derefWbs(wbsItemID))
	}
	return apperrors.NewForbidden("недостаточно прав для оценки: ожидался тип оценщика %v, фактический %v", claimed, *actual)
}

func derefWbs(wbsItemID *string) string {
	if wbsItemID == nil {
		return "-"
	}
	return *wbsItemID
}

// afterSubmit повторная отправка возвращает этап из доработки и закрывает запросы получателя
func (i impl) afterSubmit(periodID, employeeID string, step models.EvaluationStep, submitterID string, submitterType models.RecipientType, userID string) {
	logger := i.getLogger(periodID, employeeID, step).
		WithField("submitter_id", submitterID)
	evaluatorID := ""
	if step == models.StepSecondary {
		evaluatorID = submitterID
	}
	besteffort.Run(logger, "возврат этапа из доработки", func() error {
		return i.steps.ReopenAfterResubmission(periodID, employeeID, step, evaluatorID, userID)
	})
	besteffort.Run(logger, "закрытие запросов на доработку", func() error {
		_, err := i.revisions.CompleteForSubmitter(periodID, employeeID, step, submitterID, submitterType, resubmitComment)
		return err
	})
	besteffort.Run(logger, "запись журнала действий", func() error {
		return i.activityLog.Record(dbmodels.EvaluationActivityLog{
			BasePeriodModel: dbmodels.BasePeriodModel{
				PeriodID:   periodID,
				EmployeeID: employeeID,
			},
			ActivityType:      models.ActivityEvaluationSubmission,
			Action:            models.ActionSubmitted,
			Title:             "Отправлено: " + step.ToHuman(),
			RelatedEntityType: models.RelatedEntityEvaluation,
			PerformedBy:       userID,
			Metadata: dbmodels.ActivityMetadata{
				"step":           string(step),
				"submitter_type": string(submitterType),
			},
		})
	})
	logger.Info("оценка отправлена")
}
