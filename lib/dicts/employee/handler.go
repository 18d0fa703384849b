package employeeprovider

import (
	"gorm.io/gorm"
	"hr-evaluation-backend/db"
	employeestore "hr-evaluation-backend/lib/dicts/employee/store"
	apperrors "hr-evaluation-backend/lib/utils/app-errors"
	dbmodels "hr-evaluation-backend/models/db"
)

// Provider справочник сотрудников (оргструктура ведется во внешней системе)
type Provider interface {
	Get(id string) (*dbmodels.Employee, error)
	GetManagerID(employeeID string) (*string, error)
	ListByIDs(ids []string) ([]dbmodels.Employee, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithTx(db.DB)
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store: employeestore.NewInstance(tx),
	}
}

type impl struct {
	store employeestore.Provider
}

func (i impl) Get(id string) (*dbmodels.Employee, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("сотрудник", id)
	}
	return rec, nil
}

// GetManagerID nil без ошибки - руководитель не назначен
func (i impl) GetManagerID(employeeID string) (*string, error) {
	rec, err := i.Get(employeeID)
	if err != nil {
		return nil, err
	}
	if rec.ManagerID == nil || *rec.ManagerID == "" {
		return nil, nil
	}
	managerID := *rec.ManagerID
	return &managerID, nil
}

func (i impl) ListByIDs(ids []string) ([]dbmodels.Employee, error) {
	return i.store.ListByIDs(ids)
}
