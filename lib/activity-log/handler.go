package activityloghandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-evaluation-backend/db"
	activitylogstore "hr-evaluation-backend/lib/activity-log/store"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
	dbmodels "hr-evaluation-backend/models/db"
)

// Provider журнал действий по оценке. Ошибки Record вызывающая сторона не пробрасывает
type Provider interface {
	Record(rec dbmodels.EvaluationActivityLog) error
	List(periodID, employeeID string) ([]evaluationapimodels.ActivityLogView, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithTx(db.DB)
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store: activitylogstore.NewInstance(tx),
	}
}

type impl struct {
	store activitylogstore.Provider
}

func (i impl) Record(rec dbmodels.EvaluationActivityLog) error {
	if rec.PeriodID == "" || rec.EmployeeID == "" {
		return errors.New("не указан период или сотрудник для записи журнала")
	}
	if rec.PerformedAt.IsZero() {
		rec.PerformedAt = time.Now()
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return errors.Wrap(err, "ошибка записи журнала действий")
	}
	log.
		WithField("period_id", rec.PeriodID).
		WithField("employee_id", rec.EmployeeID).
		WithField("activity_id", id).
		WithField("action", rec.Action).
		Debug("записано действие в журнал")
	return nil
}

func (i impl) List(periodID, employeeID string) ([]evaluationapimodels.ActivityLogView, error) {
	list, err := i.store.List(periodID, employeeID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения журнала действий")
	}
	result := make([]evaluationapimodels.ActivityLogView, 0, len(list))
	for _, rec := range list {
		result = append(result, evaluationapimodels.ActivityLogConvert(rec))
	}
	return result, nil
}
