package wbsassignmentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-evaluation-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.WbsAssignment) (id string, err error)
	GetByID(periodID, id string) (*dbmodels.WbsAssignment, error)
	Find(periodID, employeeID, wbsItemID string) (*dbmodels.WbsAssignment, error)
	Delete(id string) error
	List(periodID, employeeID string) ([]dbmodels.WbsAssignment, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.WbsAssignment) (id string, err error) {
	if err = i.db.Create(&rec).Error; err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(periodID, id string) (*dbmodels.WbsAssignment, error) {
	rec := dbmodels.WbsAssignment{}
	err := i.db.
		Where("period_id = ?", periodID).
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

func (i impl) Find(periodID, employeeID, wbsItemID string) (*dbmodels.WbsAssignment, error) {
	rec := dbmodels.WbsAssignment{}
	err := i.db.
		Where("period_id = ?", periodID).
		Where("employee_id = ?", employeeID).
		Where("wbs_item_id = ?", wbsItemID).
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

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.WbsAssignment{}).
		Error
}

func (i impl) List(periodID, employeeID string) (list []dbmodels.WbsAssignment, err error) {
	list = []dbmodels.WbsAssignment{}
	tx := i.db.
		Where("period_id = ?", periodID)
	if employeeID != "" {
		tx = tx.Where("employee_id = ?", employeeID)
	}
	err = tx.
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
