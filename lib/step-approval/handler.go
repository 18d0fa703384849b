package stepapprovalhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-evaluation-backend/db"
	activityloghandler "hr-evaluation-backend/lib/activity-log"
	evaluationlinehandler "hr-evaluation-backend/lib/evaluation-line"
	"hr-evaluation-backend/lib/notification"
	performanceevaluationhandler "hr-evaluation-backend/lib/performance-evaluation"
	revisionrequesthandler "hr-evaluation-backend/lib/revision-request"
	stepapprovalstore "hr-evaluation-backend/lib/step-approval/store"
	apperrors "hr-evaluation-backend/lib/utils/app-errors"
	"hr-evaluation-backend/lib/utils/besteffort"
	initchecker "hr-evaluation-backend/lib/utils/init-checker"
	"hr-evaluation-backend/models"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
	dbmodels "hr-evaluation-backend/models/db"
)

// SubmissionGateway отправка и сброс отправки оценок
type SubmissionGateway interface {
	SubmitCriteria(periodID, employeeID, by string) error
	SubmitSelfToEvaluator(employeeID, periodID, by string) (performanceevaluationhandler.SubmitResult, error)
	SubmitSelfToManager(employeeID, periodID, by string) (performanceevaluationhandler.SubmitResult, error)
	ForceSubmitDownward(evaluatorID, employeeID, periodID string, evaluationType models.EvaluatorType, by string) (performanceevaluationhandler.SubmitResult, error)
	ResetCriteria(periodID, employeeID, by string) error
	ResetSelf(employeeID, periodID, by string) error
	ResetDownward(employeeID, periodID, evaluatorID string, evaluationType models.EvaluatorType, by string) error
}

type ActivityLogSink interface {
	Record(rec dbmodels.EvaluationActivityLog) error
}

type RevisionRegistry interface {
	Create(periodID, employeeID string, step models.EvaluationStep, comment, requestedBy string, recipients []revisionrequesthandler.Recipient) (*dbmodels.EvaluationRevisionRequest, error)
	CompleteForSubmitter(periodID, employeeID string, step models.EvaluationStep, submitterID string, submitterType models.RecipientType, comment string) (int, error)
	CompleteByResponse(requestID, recipientID, responseComment string) (*dbmodels.EvaluationRevisionRequest, error)
	AllCompleted(requestID string) (bool, error)
}

type EvaluatorLines interface {
	GetPrimaryEvaluator(periodID, employeeID string) (evaluatorID string, found bool, err error)
	ListSecondaryEvaluators(periodID, employeeID string) ([]string, error)
}

type Notifier interface {
	RevisionRequested(rec dbmodels.EvaluationRevisionRequest) error
}

// Provider подтверждение этапов оценки сотрудника
type Provider interface {
	ChangeStepApproval(periodID, employeeID string, step models.EvaluationStep, status models.StepApprovalStatus, revisionComment, updatedBy, evaluatorID string) (evaluationapimodels.StepApprovalView, error)
	Approve(periodID, employeeID string, step models.EvaluationStep, updatedBy, evaluatorID string, cascade models.CascadeDirection) error
	CascadeApproveDown(periodID, employeeID string, fromStep models.EvaluationStep, updatedBy string) error
	CascadeApproveUp(periodID, employeeID string, fromStep models.EvaluationStep, updatedBy string) error
	RequestRevision(periodID, employeeID string, step models.EvaluationStep, comment, requestedBy, evaluatorID string) (*dbmodels.EvaluationRevisionRequest, error)
	RequestRevisionAndResetSubmission(periodID, employeeID string, step models.EvaluationStep, comment, requestedBy, evaluatorID string) error
	Update(periodID, employeeID string, step models.EvaluationStep, data evaluationapimodels.StepApprovalUpdateData, userID string) (evaluationapimodels.StepApprovalView, error)
	Get(periodID, employeeID string) (evaluationapimodels.StepApprovalView, error)
	RespondToRevision(requestID, recipientID, comment string) (evaluationapimodels.RevisionResponseView, error)
	ReopenAfterResubmission(periodID, employeeID string, step models.EvaluationStep, evaluatorID, by string) error
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithDeps(
		db.DB,
		performanceevaluationhandler.Instance,
		revisionrequesthandler.Instance,
		evaluationlinehandler.Instance,
		activityloghandler.Instance,
		notification.Instance,
	)
}

func NewHandlerWithDeps(tx *gorm.DB, gateway SubmissionGateway, registry RevisionRegistry, lines EvaluatorLines, activityLog ActivityLogSink, notifier Notifier) Provider {
	instance := impl{
		store:       stepapprovalstore.NewInstance(tx),
		gateway:     gateway,
		registry:    registry,
		lines:       lines,
		activityLog: activityLog,
		notifier:    notifier,
	}
	initchecker.CheckInit(
		"gateway", instance.gateway,
		"registry", instance.registry,
		"lines", instance.lines,
		"activityLog", instance.activityLog,
		"notifier", instance.notifier,
	)
	return instance
}

type impl struct {
	store       stepapprovalstore.Provider
	gateway     SubmissionGateway
	registry    RevisionRegistry
	lines       EvaluatorLines
	activityLog ActivityLogSink
	notifier    Notifier
}

func (i impl) getLogger(periodID, employeeID string, step models.EvaluationStep) *log.Entry {
	return log.
		WithField("period_id", periodID).
		WithField("employee_id", employeeID).
		WithField("step", step)
}

func (i impl) ChangeStepApproval(periodID, employeeID string, step models.EvaluationStep, status models.StepApprovalStatus, revisionComment, updatedBy, evaluatorID string) (evaluationapimodels.StepApprovalView, error) {
	if !status.IsValid() {
		return evaluationapimodels.StepApprovalView{}, apperrors.NewValidation("неизвестный статус: %v", status)
	}
	if err := evaluationapimodels.ValidateRevisionComment(status, revisionComment); err != nil {
		return evaluationapimodels.StepApprovalView{}, apperrors.NewValidation("%v", err.Error())
	}
	if err := i.writeStatus(periodID, employeeID, step, status, revisionComment, updatedBy, evaluatorID); err != nil {
		return evaluationapimodels.StepApprovalView{}, err
	}
	i.recordActivity(periodID, employeeID, step, models.ActionStatusChanged, updatedBy, evaluatorID, status)
	return i.Get(periodID, employeeID)
}

func (i impl) Approve(periodID, employeeID string, step models.EvaluationStep, updatedBy, evaluatorID string, cascade models.CascadeDirection) error {
	if err := i.approveWithSubmissionSync(periodID, employeeID, step, updatedBy, evaluatorID); err != nil {
		return err
	}
	switch cascade {
	case models.CascadeNone:
		return nil
	case models.CascadeDown:
		return i.CascadeApproveDown(periodID, employeeID, step, updatedBy)
	case models.CascadeUp:
		return i.CascadeApproveUp(periodID, employeeID, step, updatedBy)
	}
	return apperrors.NewValidation("неизвестное направление каскада: %v", cascade)
}

func (i impl) RequestRevision(periodID, employeeID string, step models.EvaluationStep, comment, requestedBy, evaluatorID string) (*dbmodels.EvaluationRevisionRequest, error) {
	logger := i.getLogger(periodID, employeeID, step)
	if err := i.RequestRevisionAndResetSubmission(periodID, employeeID, step, comment, requestedBy, evaluatorID); err != nil {
		return nil, err
	}
	recipients, err := i.revisionRecipients(periodID, employeeID, step, evaluatorID)
	if err != nil {
		return nil, err
	}
	if len(recipients) == 0 {
		logger.Warn("нет получателей для запроса на доработку, запрос не создан")
		return nil, nil
	}
	rec, err := i.registry.Create(periodID, employeeID, step, comment, requestedBy, recipients)
	if err != nil {
		return nil, err
	}
	besteffort.Run(logger, "уведомление о запросе на доработку", func() error {
		return i.notifier.RevisionRequested(*rec)
	})
	return rec, nil
}

// revisionRecipients criteria/self - сотрудник и руководитель первой линии, primary - руководитель, secondary - указанный оценщик
func (i impl) revisionRecipients(periodID, employeeID string, step models.EvaluationStep, evaluatorID string) ([]revisionrequesthandler.Recipient, error) {
	switch step {
	case models.StepCriteria, models.StepSelf:
		recipients := []revisionrequesthandler.Recipient{{ID: employeeID, Type: models.RecipientEvaluatee}}
		primaryID, found, err := i.lines.GetPrimaryEvaluator(periodID, employeeID)
		if err != nil {
			return nil, err
		}
		if found {
			recipients = append(recipients, revisionrequesthandler.Recipient{ID: primaryID, Type: models.RecipientPrimaryEvaluator})
		}
		return recipients, nil
	case models.StepPrimary:
		primaryID, found, err := i.lines.GetPrimaryEvaluator(periodID, employeeID)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, nil
		}
		return []revisionrequesthandler.Recipient{{ID: primaryID, Type: models.RecipientPrimaryEvaluator}}, nil
	case models.StepSecondary:
		return []revisionrequesthandler.Recipient{{ID: evaluatorID, Type: models.RecipientSecondaryEvaluator}}, nil
	}
	return nil, errors.Errorf("неизвестный этап оценки: %v", step)
}

func (i impl) Update(periodID, employeeID string, step models.EvaluationStep, data evaluationapimodels.StepApprovalUpdateData, userID string) (evaluationapimodels.StepApprovalView, error) {
	if !step.IsValid() {
		return evaluationapimodels.StepApprovalView{}, apperrors.NewValidation("неизвестный этап оценки: %v", step)
	}
	if err := data.Validate(step); err != nil {
		return evaluationapimodels.StepApprovalView{}, apperrors.NewValidation("%v", err.Error())
	}
	switch data.Status {
	case models.StepStatusApproved:
		if err := i.Approve(periodID, employeeID, step, userID, data.EvaluatorID, data.Cascade); err != nil {
			return evaluationapimodels.StepApprovalView{}, err
		}
		return i.Get(periodID, employeeID)
	case models.StepStatusRevisionRequested:
		if _, err := i.RequestRevision(periodID, employeeID, step, data.RevisionComment, userID, data.EvaluatorID); err != nil {
			return evaluationapimodels.StepApprovalView{}, err
		}
		return i.Get(periodID, employeeID)
	case models.StepStatusPending:
		return i.ChangeStepApproval(periodID, employeeID, step, data.Status, "", userID, data.EvaluatorID)
	}
	return evaluationapimodels.StepApprovalView{}, apperrors.NewValidation("неизвестный статус: %v", data.Status)
}

func (i impl) Get(periodID, employeeID string) (evaluationapimodels.StepApprovalView, error) {
	rec, err := i.store.Get(periodID, employeeID)
	if err != nil {
		return evaluationapimodels.StepApprovalView{}, errors.Wrap(err, "ошибка получения статусов подтверждения")
	}
	secondary, err := i.store.ListSecondary(periodID, employeeID)
	if err != nil {
		return evaluationapimodels.StepApprovalView{}, errors.Wrap(err, "ошибка получения статусов второй линии")
	}
	return evaluationapimodels.StepApprovalConvert(periodID, employeeID, rec, secondary), nil
}

func (i impl) RespondToRevision(requestID, recipientID, comment string) (evaluationapimodels.RevisionResponseView, error) {
	rec, err := i.registry.CompleteByResponse(requestID, recipientID, comment)
	if err != nil {
		return evaluationapimodels.RevisionResponseView{}, err
	}
	logger := i.getLogger(rec.PeriodID, rec.EmployeeID, rec.Step).
		WithField("revision_request_id", rec.ID)
	allCompleted, err := i.registry.AllCompleted(rec.ID)
	if err != nil {
		return evaluationapimodels.RevisionResponseView{}, err
	}
	if allCompleted {
		if err = i.reopenAfterResponses(rec.PeriodID, rec.EmployeeID, rec.Step, recipientID); err != nil {
			return evaluationapimodels.RevisionResponseView{}, err
		}
		logger.Info("все получатели ответили на запрос доработки, этап возвращен на подтверждение")
	}
	relatedID := rec.ID
	besteffort.Run(logger, "запись журнала действий", func() error {
		return i.activityLog.Record(dbmodels.EvaluationActivityLog{
			BasePeriodModel: dbmodels.BasePeriodModel{
				PeriodID:   rec.PeriodID,
				EmployeeID: rec.EmployeeID,
			},
			ActivityType:      models.ActivityRevisionRequest,
			Action:            models.ActionRevisionCompleted,
			Title:             "Ответ на запрос доработки: " + rec.Step.ToHuman(),
			Description:       comment,
			RelatedEntityType: models.RelatedEntityRevisionRequest,
			RelatedEntityID:   &relatedID,
			PerformedBy:       recipientID,
			Metadata: dbmodels.ActivityMetadata{
				"step":          string(rec.Step),
				"all_completed": allCompleted,
			},
		})
	})
	return evaluationapimodels.RevisionResponseView{
		Request:      evaluationapimodels.RevisionRequestConvert(*rec),
		AllCompleted: allCompleted,
	}, nil
}

// ReopenAfterResubmission этап на доработке возвращается в ожидание подтверждения
func (i impl) ReopenAfterResubmission(periodID, employeeID string, step models.EvaluationStep, evaluatorID, by string) error {
	return i.reopenStep(periodID, employeeID, step, evaluatorID, by)
}

// reopenAfterResponses для secondary в ожидание возвращаются все оценщики второй линии на доработке
func (i impl) reopenAfterResponses(periodID, employeeID string, step models.EvaluationStep, by string) error {
	if step != models.StepSecondary {
		return i.reopenStep(periodID, employeeID, step, "", by)
	}
	list, err := i.store.ListSecondary(periodID, employeeID)
	if err != nil {
		return err
	}
	for _, rec := range list {
		if rec.Status != models.StepStatusRevisionRequested {
			continue
		}
		if err = i.writeStatus(periodID, employeeID, step, models.StepStatusPending, "", by, rec.EvaluatorID); err != nil {
			return err
		}
	}
	return nil
}

func (i impl) reopenStep(periodID, employeeID string, step models.EvaluationStep, evaluatorID, by string) error {
	status, err := i.currentStatus(periodID, employeeID, step, evaluatorID)
	if err != nil {
		return err
	}
	if status != models.StepStatusRevisionRequested {
		return nil
	}
	return i.writeStatus(periodID, employeeID, step, models.StepStatusPending, "", by, evaluatorID)
}

func (i impl) currentStatus(periodID, employeeID string, step models.EvaluationStep, evaluatorID string) (models.StepApprovalStatus, error) {
	switch step {
	case models.StepCriteria, models.StepSelf, models.StepPrimary:
		rec, err := i.store.Get(periodID, employeeID)
		if err != nil || rec == nil {
			return models.StepStatusPending, err
		}
		return rec.StepState(step).Status, nil
	case models.StepSecondary:
		rec, err := i.store.GetSecondary(periodID, employeeID, evaluatorID)
		if err != nil || rec == nil {
			return models.StepStatusPending, err
		}
		return rec.Status, nil
	}
	return "", errors.Errorf("неизвестный этап оценки: %v", step)
}

func (i impl) writeStatus(periodID, employeeID string, step models.EvaluationStep, status models.StepApprovalStatus, revisionComment, updatedBy, evaluatorID string) error {
	upd := stepapprovalstore.StatusUpdate{
		Status:    status,
		UpdatedBy: updatedBy,
	}
	if status == models.StepStatusRevisionRequested {
		upd.RevisionComment = &revisionComment
	}
	switch step {
	case models.StepCriteria, models.StepSelf, models.StepPrimary:
		if err := i.store.SetStatus(periodID, employeeID, step, upd); err != nil {
			return errors.Wrap(err, "ошибка сохранения статуса подтверждения")
		}
	case models.StepSecondary:
		if evaluatorID == "" {
			return apperrors.NewValidation("для этапа secondary необходимо указать оценщика")
		}
		if err := i.store.SetSecondaryStatus(periodID, employeeID, evaluatorID, upd); err != nil {
			return errors.Wrap(err, "ошибка сохранения статуса подтверждения второй линии")
		}
	default:
		return apperrors.NewValidation("неизвестный этап оценки: %v", step)
	}
	i.getLogger(periodID, employeeID, step).
		WithField("evaluator_id", evaluatorID).
		WithField("status", status).
		Info("изменен статус подтверждения этапа")
	return nil
}

func (i impl) recordActivity(periodID, employeeID string, step models.EvaluationStep, action models.ActivityAction, performedBy, evaluatorID string, status models.StepApprovalStatus) {
	logger := i.getLogger(periodID, employeeID, step)
	metadata := dbmodels.ActivityMetadata{
		"step":   string(step),
		"status": string(status),
	}
	if evaluatorID != "" {
		metadata["evaluator_id"] = evaluatorID
	}
	besteffort.Run(logger, "запись журнала действий", func() error {
		return i.activityLog.Record(dbmodels.EvaluationActivityLog{
			BasePeriodModel: dbmodels.BasePeriodModel{
				PeriodID:   periodID,
				EmployeeID: employeeID,
			},
			ActivityType:      models.ActivityStepApproval,
			Action:            action,
			Title:             step.ToHuman() + ": " + status.ToHuman(),
			RelatedEntityType: models.RelatedEntityStepApproval,
			PerformedBy:       performedBy,
			Metadata:          metadata,
		})
	})
}
