package activitylogstore

import (
	"gorm.io/gorm"
	dbmodels "hr-evaluation-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.EvaluationActivityLog) (id string, err error)
	List(periodID, employeeID string) ([]dbmodels.EvaluationActivityLog, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.EvaluationActivityLog) (id string, err error) {
	if err = i.db.Create(&rec).Error; err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(periodID, employeeID string) (list []dbmodels.EvaluationActivityLog, err error) {
	list = []dbmodels.EvaluationActivityLog{}
	tx := i.db.
		Where("period_id = ?", periodID)
	if employeeID != "" {
		tx = tx.Where("employee_id = ?", employeeID)
	}
	err = tx.
		Order("performed_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
