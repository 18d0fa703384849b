package selfevaluationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-evaluation-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.WbsSelfEvaluation) (id string, err error)
	Find(periodID, employeeID, wbsItemID string) (*dbmodels.WbsSelfEvaluation, error)
	Update(id string, updMap map[string]interface{}) error
	UpdateByEmployee(periodID, employeeID string, updMap map[string]interface{}) (int64, error)
	List(periodID, employeeID string) ([]dbmodels.WbsSelfEvaluation, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.WbsSelfEvaluation) (id string, err error) {
	if err = i.db.Create(&rec).Error; err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Find(periodID, employeeID, wbsItemID string) (*dbmodels.WbsSelfEvaluation, error) {
	rec := dbmodels.WbsSelfEvaluation{}
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.WbsSelfEvaluation{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) UpdateByEmployee(periodID, employeeID string, updMap map[string]interface{}) (int64, error) {
	tx := i.db.
		Model(&dbmodels.WbsSelfEvaluation{}).
		Where("period_id = ?", periodID).
		Where("employee_id = ?", employeeID).
		Updates(updMap)
	return tx.RowsAffected, tx.Error
}

func (i impl) List(periodID, employeeID string) (list []dbmodels.WbsSelfEvaluation, err error) {
	list = []dbmodels.WbsSelfEvaluation{}
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
