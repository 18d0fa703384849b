package criteriasubmissionstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-evaluation-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.EvaluationCriteriaSubmission) (id string, err error)
	Get(periodID, employeeID string) (*dbmodels.EvaluationCriteriaSubmission, error)
	Update(id string, updMap map[string]interface{}) error
	ListByPeriod(periodID string) ([]dbmodels.EvaluationCriteriaSubmission, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.EvaluationCriteriaSubmission) (id string, err error) {
	if err = i.db.Create(&rec).Error; err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Get(periodID, employeeID string) (*dbmodels.EvaluationCriteriaSubmission, error) {
	rec := dbmodels.EvaluationCriteriaSubmission{}
	err := i.db.
		Where("period_id = ?", periodID).
		Where("employee_id = ?", employeeID).
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
		Model(&dbmodels.EvaluationCriteriaSubmission{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) ListByPeriod(periodID string) (list []dbmodels.EvaluationCriteriaSubmission, err error) {
	list = []dbmodels.EvaluationCriteriaSubmission{}
	err = i.db.
		Where("period_id = ?", periodID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
