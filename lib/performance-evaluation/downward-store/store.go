package downwardevaluationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-evaluation-backend/models"
	dbmodels "hr-evaluation-backend/models/db"
)

// Filter пустые поля не участвуют в отборе
type Filter struct {
	PeriodID       string
	EmployeeID     string
	EvaluatorID    string
	EvaluationType models.EvaluatorType
}

type Provider interface {
	Create(rec dbmodels.DownwardEvaluation) (id string, err error)
	Find(periodID, employeeID, evaluatorID string, evaluationType models.EvaluatorType, wbsItemID *string) (*dbmodels.DownwardEvaluation, error)
	Update(id string, updMap map[string]interface{}) error
	UpdateByIDs(ids []string, updMap map[string]interface{}) (int64, error)
	List(filter Filter) ([]dbmodels.DownwardEvaluation, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.DownwardEvaluation) (id string, err error) {
	if err = i.db.Create(&rec).Error; err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Find(periodID, employeeID, evaluatorID string, evaluationType models.EvaluatorType, wbsItemID *string) (*dbmodels.DownwardEvaluation, error) {
	rec := dbmodels.DownwardEvaluation{}
	tx := i.db.
		Where("period_id = ?", periodID).
		Where("employee_id = ?", employeeID).
		Where("evaluator_id = ?", evaluatorID).
		Where("evaluation_type = ?", evaluationType)
	if wbsItemID == nil {
		tx = tx.Where("wbs_item_id IS NULL")
	} else {
		tx = tx.Where("wbs_item_id = ?", *wbsItemID)
	}
	err := tx.
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
		Model(&dbmodels.DownwardEvaluation{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) UpdateByIDs(ids []string, updMap map[string]interface{}) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tx := i.db.
		Model(&dbmodels.DownwardEvaluation{}).
		Where("id IN ?", ids).
		Updates(updMap)
	return tx.RowsAffected, tx.Error
}

func (i impl) List(filter Filter) (list []dbmodels.DownwardEvaluation, err error) {
	list = []dbmodels.DownwardEvaluation{}
	tx := i.db.
		Where("period_id = ?", filter.PeriodID)
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.EvaluatorID != "" {
		tx = tx.Where("evaluator_id = ?", filter.EvaluatorID)
	}
	if filter.EvaluationType != "" {
		tx = tx.Where("evaluation_type = ?", filter.EvaluationType)
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
