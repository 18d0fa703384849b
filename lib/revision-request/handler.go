package revisionrequesthandler

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-evaluation-backend/db"
	revisionrequeststore "hr-evaluation-backend/lib/revision-request/store"
	apperrors "hr-evaluation-backend/lib/utils/app-errors"
	"hr-evaluation-backend/models"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
	dbmodels "hr-evaluation-backend/models/db"
)

// Recipient адресат запроса на доработку
type Recipient struct {
	ID   string
	Type models.RecipientType
}

type Provider interface {
	Create(periodID, employeeID string, step models.EvaluationStep, comment, requestedBy string, recipients []Recipient) (*dbmodels.EvaluationRevisionRequest, error)
	CompleteForSubmitter(periodID, employeeID string, step models.EvaluationStep, submitterID string, submitterType models.RecipientType, comment string) (int, error)
	CompleteByResponse(requestID, recipientID, responseComment string) (*dbmodels.EvaluationRevisionRequest, error)
	CompleteByScope(periodID, employeeID, evaluatorID string, step models.EvaluationStep, responseComment string) (*dbmodels.EvaluationRevisionRequest, error)
	AllCompleted(requestID string) (bool, error)
	Get(requestID string) (evaluationapimodels.RevisionRequestView, error)
	List(filter evaluationapimodels.RevisionRequestFilter) ([]evaluationapimodels.RevisionRequestView, error)
	MarkRead(requestID, recipientID string) error
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithTx(db.DB)
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store: revisionrequeststore.NewInstance(tx),
	}
}

type impl struct {
	store revisionrequeststore.Provider
}

func (i impl) getLogger(periodID, employeeID string, step models.EvaluationStep) *log.Entry {
	return log.
		WithField("period_id", periodID).
		WithField("employee_id", employeeID).
		WithField("step", step)
}

func (i impl) Create(periodID, employeeID string, step models.EvaluationStep, comment, requestedBy string, recipients []Recipient) (*dbmodels.EvaluationRevisionRequest, error) {
	if !step.IsValid() {
		return nil, errors.Errorf("неизвестный этап оценки: %v", step)
	}
	if strings.TrimSpace(comment) == "" {
		return nil, apperrors.NewValidation("для запроса на доработку необходимо указать комментарий")
	}
	if len(recipients) == 0 {
		return nil, apperrors.NewValidation("у запроса на доработку нет получателей")
	}
	rec := dbmodels.EvaluationRevisionRequest{
		BasePeriodModel: dbmodels.BasePeriodModel{
			PeriodID:   periodID,
			EmployeeID: employeeID,
		},
		Step:        step,
		Comment:     comment,
		RequestedBy: requestedBy,
		RequestedAt: time.Now(),
		Recipients:  make([]dbmodels.EvaluationRevisionRequestRecipient, 0, len(recipients)),
	}
	seen := map[Recipient]struct{}{}
	for _, recipient := range recipients {
		if _, exist := seen[recipient]; exist {
			continue
		}
		seen[recipient] = struct{}{}
		rec.Recipients = append(rec.Recipients, dbmodels.EvaluationRevisionRequestRecipient{
			RecipientID:   recipient.ID,
			RecipientType: recipient.Type,
		})
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания запроса на доработку")
	}
	i.getLogger(periodID, employeeID, step).
		WithField("revision_request_id", id).
		WithField("recipients", len(rec.Recipients)).
		Info("создан запрос на доработку")
	return i.store.GetByID(id)
}

func (i impl) CompleteForSubmitter(periodID, employeeID string, step models.EvaluationStep, submitterID string, submitterType models.RecipientType, comment string) (int, error) {
	logger := i.getLogger(periodID, employeeID, step).
		WithField("submitter_id", submitterID).
		WithField("submitter_type", submitterType)
	scope := revisionrequeststore.RecipientScope{
		PeriodID:      periodID,
		EmployeeID:    employeeID,
		Step:          step,
		RecipientType: submitterType,
		RecipientID:   submitterID,
		OnlyOpen:      true,
	}
	list, err := i.store.ListRecipients(scope)
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения получателей запроса на доработку")
	}
	// доработка критериев и самооценки закрывается и для руководителя первой линии
	if step == models.StepCriteria || step == models.StepSelf {
		scope.RecipientType = models.RecipientPrimaryEvaluator
		scope.RecipientID = ""
		evaluators, err := i.store.ListRecipients(scope)
		if err != nil {
			return 0, errors.Wrap(err, "ошибка получения получателей запроса на доработку")
		}
		list = append(list, evaluators...)
	}
	if len(list) == 0 {
		logger.Debug("нет открытых запросов на доработку")
		return 0, nil
	}
	ids := make([]string, 0, len(list))
	for _, recipient := range list {
		ids = append(ids, recipient.ID)
	}
	count, err := i.store.CompleteRecipients(ids, responseComment(comment))
	if err != nil {
		return 0, errors.Wrap(err, "ошибка завершения запросов на доработку")
	}
	logger.WithField("completed", count).Info("запросы на доработку завершены повторной отправкой")
	return int(count), nil
}

// CompleteByResponse ответ получателя на запрос. Нет открытой записи получателя - NotFound,
// в отличие от CompleteForSubmitter, где отсутствие запросов штатно
func (i impl) CompleteByResponse(requestID, recipientID, comment string) (*dbmodels.EvaluationRevisionRequest, error) {
	recipient, err := i.store.GetOpenRecipient(requestID, recipientID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, apperrors.NewNotFound("открытый запрос на доработку для получателя", recipientID)
	}
	return i.complete(*recipient, comment)
}

// CompleteByScope ответ на последний открытый запрос оценщика по этапу. Нет открытых запросов - NotFound
func (i impl) CompleteByScope(periodID, employeeID, evaluatorID string, step models.EvaluationStep, comment string) (*dbmodels.EvaluationRevisionRequest, error) {
	list, err := i.store.ListRecipients(revisionrequeststore.RecipientScope{
		PeriodID:    periodID,
		EmployeeID:  employeeID,
		Step:        step,
		RecipientID: evaluatorID,
		OnlyOpen:    true,
	})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apperrors.NewNotFound("открытый запрос на доработку для получателя", evaluatorID)
	}
	return i.complete(list[len(list)-1], comment)
}

func (i impl) complete(recipient dbmodels.EvaluationRevisionRequestRecipient, comment string) (*dbmodels.EvaluationRevisionRequest, error) {
	if _, err := i.store.CompleteRecipients([]string{recipient.ID}, responseComment(comment)); err != nil {
		return nil, errors.Wrap(err, "ошибка завершения запроса на доработку")
	}
	rec, err := i.store.GetByID(recipient.RevisionRequestID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("запрос на доработку", recipient.RevisionRequestID)
	}
	i.getLogger(rec.PeriodID, rec.EmployeeID, rec.Step).
		WithField("revision_request_id", rec.ID).
		WithField("recipient_id", recipient.RecipientID).
		Info("получен ответ на запрос доработки")
	return rec, nil
}

func (i impl) AllCompleted(requestID string) (bool, error) {
	rec, err := i.store.GetByID(requestID)
	if err != nil {
		return false, err
	}
	if rec == nil {
		return false, apperrors.NewNotFound("запрос на доработку", requestID)
	}
	recipients := rec.Recipients
	if rec.Step == models.StepSecondary {
		recipients, err = i.store.ListRecipients(revisionrequeststore.RecipientScope{
			PeriodID:      rec.PeriodID,
			EmployeeID:    rec.EmployeeID,
			Step:          models.StepSecondary,
			RecipientType: models.RecipientSecondaryEvaluator,
		})
		if err != nil {
			return false, err
		}
	}
	for _, recipient := range recipients {
		if !recipient.IsCompleted {
			return false, nil
		}
	}
	return true, nil
}

func (i impl) Get(requestID string) (evaluationapimodels.RevisionRequestView, error) {
	rec, err := i.store.GetByID(requestID)
	if err != nil {
		return evaluationapimodels.RevisionRequestView{}, err
	}
	if rec == nil {
		return evaluationapimodels.RevisionRequestView{}, apperrors.NewNotFound("запрос на доработку", requestID)
	}
	return evaluationapimodels.RevisionRequestConvert(*rec), nil
}

func (i impl) List(filter evaluationapimodels.RevisionRequestFilter) ([]evaluationapimodels.RevisionRequestView, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка запросов на доработку")
	}
	result := make([]evaluationapimodels.RevisionRequestView, 0, len(list))
	for _, rec := range list {
		result = append(result, evaluationapimodels.RevisionRequestConvert(rec))
	}
	return result, nil
}

func (i impl) MarkRead(requestID, recipientID string) error {
	count, err := i.store.MarkRead(requestID, recipientID)
	if err != nil {
		return errors.Wrap(err, "ошибка отметки о прочтении запроса на доработку")
	}
	if count == 0 {
		return apperrors.NewNotFound("получатель запроса на доработку", recipientID)
	}
	return nil
}

func responseComment(comment string) *string {
	if strings.TrimSpace(comment) == "" {
		return nil
	}
	return &comment
}
