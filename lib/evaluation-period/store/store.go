package evaluationperiodstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-evaluation-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.EvaluationPeriod) (id string, err error)
	GetByID(id string) (rec *dbmodels.EvaluationPeriod, err error)
	Update(id string, updMap map[string]interface{}) error
	List() (list []dbmodels.EvaluationPeriod, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.EvaluationPeriod) (id string, err error) {
	if err = i.db.Create(&rec).Error; err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.EvaluationPeriod, error) {
	rec := dbmodels.EvaluationPeriod{}
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
		Model(&dbmodels.EvaluationPeriod{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) List() (list []dbmodels.EvaluationPeriod, err error) {
	list = []dbmodels.EvaluationPeriod{}
	err = i.db.
		Order("start_date DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
