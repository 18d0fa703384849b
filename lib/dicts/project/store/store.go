package projectstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-evaluation-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Project) (id string, err error)
	GetByID(id string) (rec *dbmodels.Project, err error)
	Update(id string, updMap map[string]interface{}) error
	CreateWbsItem(rec dbmodels.WbsItem) (id string, err error)
	GetWbsItem(id string) (rec *dbmodels.WbsItem, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Project) (id string, err error) {
	if err = i.db.Create(&rec).Error; err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Project, error) {
	rec := dbmodels.Project{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Project{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) CreateWbsItem(rec dbmodels.WbsItem) (id string, err error) {
	if err = i.db.Create(&rec).Error; err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetWbsItem(id string) (*dbmodels.WbsItem, error) {
	rec := dbmodels.WbsItem{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
