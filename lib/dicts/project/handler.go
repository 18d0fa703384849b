package projectprovider

import (
	"gorm.io/gorm"
	"hr-evaluation-backend/db"
	projectstore "hr-evaluation-backend/lib/dicts/project/store"
	apperrors "hr-evaluation-backend/lib/utils/app-errors"
	dbmodels "hr-evaluation-backend/models/db"
)

type Provider interface {
	Get(id string) (*dbmodels.Project, error)
	GetProjectManagerID(projectID string) (*string, error)
	GetWbsItem(id string) (*dbmodels.WbsItem, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithTx(db.DB)
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store: projectstore.NewInstance(tx),
	}
}

type impl struct {
	store projectstore.Provider
}

func (i impl) Get(id string) (*dbmodels.Project, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("проект", id)
	}
	return rec, nil
}

// GetProjectManagerID nil без ошибки - у проекта нет руководителя
func (i impl) GetProjectManagerID(projectID string) (*string, error) {
	rec, err := i.Get(projectID)
	if err != nil {
		return nil, err
	}
	if rec.ManagerID == nil || *rec.ManagerID == "" {
		return nil, nil
	}
	managerID := *rec.ManagerID
	return &managerID, nil
}

func (i impl) GetWbsItem(id string) (*dbmodels.WbsItem, error) {
	rec, err := i.store.GetWbsItem(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("WBS", id)
	}
	return rec, nil
}
