package wbsassignmenthandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-evaluation-backend/db"
	employeeprovider "hr-evaluation-backend/lib/dicts/employee"
	projectprovider "hr-evaluation-backend/lib/dicts/project"
	evaluationlinehandler "hr-evaluation-backend/lib/evaluation-line"
	apperrors "hr-evaluation-backend/lib/utils/app-errors"
	initchecker "hr-evaluation-backend/lib/utils/init-checker"
	wbsassignmentstore "hr-evaluation-backend/lib/wbs-assignment/store"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
	dbmodels "hr-evaluation-backend/models/db"
)

type Projects interface {
	GetWbsItem(id string) (*dbmodels.WbsItem, error)
}

type Employees interface {
	Get(id string) (*dbmodels.Employee, error)
}

type LineResolver interface {
	ResolvePrimary(employeeID, periodID string) error
	ResolveSecondary(employeeID, wbsItemID, projectID, periodID string) error
	RemoveSecondary(employeeID, wbsItemID, periodID string) error
}

// Provider назначение сотрудникам WBS в периоде, каждое назначение перестраивает линии оценки
type Provider interface {
	Assign(periodID, userID string, data evaluationapimodels.WbsAssignmentData) (evaluationapimodels.WbsAssignmentView, error)
	Cancel(periodID, id string) error
	List(periodID, employeeID string) ([]evaluationapimodels.WbsAssignmentView, error)
	ResolveLines(periodID, employeeID string) error
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithDeps(db.DB, employeeprovider.Instance, projectprovider.Instance, evaluationlinehandler.Instance)
}

func NewHandlerWithDeps(tx *gorm.DB, employees Employees, projects Projects, lines LineResolver) Provider {
	instance := impl{
		store:     wbsassignmentstore.NewInstance(tx),
		employees: employees,
		projects:  projects,
		lines:     lines,
	}
	initchecker.CheckInit(
		"employees", instance.employees,
		"projects", instance.projects,
		"lines", instance.lines,
	)
	return instance
}

type impl struct {
	store     wbsassignmentstore.Provider
	employees Employees
	projects  Projects
	lines     LineResolver
}

func (i impl) Assign(periodID, userID string, data evaluationapimodels.WbsAssignmentData) (evaluationapimodels.WbsAssignmentView, error) {
	logger := log.
		WithField("period_id", periodID).
		WithField("employee_id", data.EmployeeID).
		WithField("wbs_item_id", data.WbsItemID)
	if _, err := i.employees.Get(data.EmployeeID); err != nil {
		return evaluationapimodels.WbsAssignmentView{}, err
	}
	wbsItem, err := i.projects.GetWbsItem(data.WbsItemID)
	if err != nil {
		return evaluationapimodels.WbsAssignmentView{}, err
	}
	if wbsItem.ProjectID != data.ProjectID {
		return evaluationapimodels.WbsAssignmentView{}, apperrors.NewValidation("WBS %v не относится к проекту %v", data.WbsItemID, data.ProjectID)
	}
	// линии строятся до записи назначения: неизвестный период не оставляет строк
	if err = i.lines.ResolveSecondary(data.EmployeeID, data.WbsItemID, data.ProjectID, periodID); err != nil {
		return evaluationapimodels.WbsAssignmentView{}, err
	}
	if err = i.lines.ResolvePrimary(data.EmployeeID, periodID); err != nil {
		return evaluationapimodels.WbsAssignmentView{}, err
	}
	rec, err := i.store.Find(periodID, data.EmployeeID, data.WbsItemID)
	if err != nil {
		return evaluationapimodels.WbsAssignmentView{}, err
	}
	if rec == nil {
		rec = &dbmodels.WbsAssignment{
			BasePeriodModel: dbmodels.BasePeriodModel{
				PeriodID:   periodID,
				EmployeeID: data.EmployeeID,
			},
			ProjectID:  data.ProjectID,
			WbsItemID:  data.WbsItemID,
			AssignedBy: userID,
		}
		rec.ID, err = i.store.Create(*rec)
		if err != nil {
			return evaluationapimodels.WbsAssignmentView{}, errors.Wrap(err, "ошибка назначения WBS")
		}
		logger.Info("сотруднику назначена WBS")
	}
	return evaluationapimodels.WbsAssignmentConvert(*rec), nil
}

func (i impl) Cancel(periodID, id string) error {
	rec, err := i.store.GetByID(periodID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("назначение WBS", id)
	}
	if err = i.store.Delete(rec.ID); err != nil {
		return errors.Wrap(err, "ошибка отмены назначения WBS")
	}
	remaining, err := i.store.Find(periodID, rec.EmployeeID, rec.WbsItemID)
	if err != nil {
		return err
	}
	if remaining == nil {
		if err = i.lines.RemoveSecondary(rec.EmployeeID, rec.WbsItemID, periodID); err != nil {
			return err
		}
	}
	log.
		WithField("period_id", periodID).
		WithField("employee_id", rec.EmployeeID).
		WithField("wbs_item_id", rec.WbsItemID).
		Info("назначение WBS отменено")
	return nil
}

func (i impl) List(periodID, employeeID string) ([]evaluationapimodels.WbsAssignmentView, error) {
	list, err := i.store.List(periodID, employeeID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения назначений WBS")
	}
	result := make([]evaluationapimodels.WbsAssignmentView, 0, len(list))
	for _, rec := range list {
		result = append(result, evaluationapimodels.WbsAssignmentConvert(rec))
	}
	return result, nil
}

// ResolveLines повторное построение линий оценки сотрудника по текущим назначениям
func (i impl) ResolveLines(periodID, employeeID string) error {
	if _, err := i.employees.Get(employeeID); err != nil {
		return err
	}
	if err := i.lines.ResolvePrimary(employeeID, periodID); err != nil {
		return err
	}
	list, err := i.store.List(periodID, employeeID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения назначений WBS")
	}
	for _, rec := range list {
		if err = i.lines.ResolveSecondary(employeeID, rec.WbsItemID, rec.ProjectID, periodID); err != nil {
			return err
		}
	}
	return nil
}
