package notification

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	employeeprovider "hr-evaluation-backend/lib/dicts/employee"
	"hr-evaluation-backend/lib/smtp"
	initchecker "hr-evaluation-backend/lib/utils/init-checker"
	dbmodels "hr-evaluation-backend/models/db"
)

type EmployeeDirectory interface {
	ListByIDs(ids []string) ([]dbmodels.Employee, error)
}

// Provider почтовые уведомления участникам оценки
type Provider interface {
	RevisionRequested(rec dbmodels.EvaluationRevisionRequest) error
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithDeps(employeeprovider.Instance, smtp.Instance)
}

func NewHandlerWithDeps(employees EmployeeDirectory, sender smtp.Provider) Provider {
	instance := impl{
		employees: employees,
		sender:    sender,
	}
	initchecker.CheckInit(
		"employees", instance.employees,
		"sender", instance.sender,
	)
	return instance
}

type impl struct {
	employees EmployeeDirectory
	sender    smtp.Provider
}

// RevisionRequested письмо каждому получателю запроса, ошибки по получателям накапливаются
func (i impl) RevisionRequested(rec dbmodels.EvaluationRevisionRequest) error {
	logger := log.
		WithField("period_id", rec.PeriodID).
		WithField("employee_id", rec.EmployeeID).
		WithField("revision_request_id", rec.ID)
	if !i.sender.IsConfigured() {
		logger.Debug("smtp не настроен, уведомления о доработке не отправляются")
		return nil
	}
	ids := []string{rec.EmployeeID}
	for _, recipient := range rec.Recipients {
		ids = append(ids, recipient.RecipientID)
	}
	list, err := i.employees.ListByIDs(ids)
	if err != nil {
		return errors.Wrap(err, "ошибка получения получателей уведомления")
	}
	employees := make(map[string]dbmodels.Employee, len(list))
	for _, employee := range list {
		employees[employee.ID] = employee
	}
	var lastErr error
	for _, recipient := range rec.Recipients {
		employee, ok := employees[recipient.RecipientID]
		if !ok || employee.Email == "" {
			logger.
				WithField("recipient_id", recipient.RecipientID).
				Warn("у получателя не указан email, уведомление не отправлено")
			continue
		}
		msg, err := buildRevisionRequestedMsg(revisionRequestedData{
			RecipientName: employee.Name,
			EmployeeName:  employees[rec.EmployeeID].Name,
			StepName:      rec.Step.ToHuman(),
			Comment:       rec.Comment,
		})
		if err != nil {
			return err
		}
		if err = i.sender.SendEMail(employee.Email, revisionRequestedTitle, msg); err != nil {
			logger.
				WithField("recipient_id", recipient.RecipientID).
				WithError(err).
				Warn("не удалось отправить уведомление о доработке")
			lastErr = err
		}
	}
	return lastErr
}
