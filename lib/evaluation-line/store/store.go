package evaluationlinemappingstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-evaluation-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.EvaluationLineMapping) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	// FindByKey поиск по естественному ключу, wbsItemID == nil - слот первой линии
	FindByKey(periodID, employeeID string, wbsItemID *string) (rec *dbmodels.EvaluationLineMapping, err error)
	ListByEmployee(periodID, employeeID string) (list []dbmodels.EvaluationLineMapping, err error)
	ListByEvaluator(periodID, employeeID, evaluatorID string) (list []dbmodels.EvaluationLineMapping, err error)
	ListEmployeeIDs(periodID string) (ids []string, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.EvaluationLineMapping) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.EvaluationLineMapping{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.EvaluationLineMapping{}).
		Error
}

func (i impl) FindByKey(periodID, employeeID string, wbsItemID *string) (*dbmodels.EvaluationLineMapping, error) {
	rec := dbmodels.EvaluationLineMapping{}
	tx := i.db.
		Where("period_id = ?", periodID).
		Where("employee_id = ?", employeeID)
	if wbsItemID == nil {
		tx = tx.Where("wbs_item_id IS NULL")
	} else {
		tx = tx.Where("wbs_item_id = ?", *wbsItemID)
	}
	err := tx.
		Order("created_at ASC").
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

func (i impl) ListByEmployee(periodID, employeeID string) (list []dbmodels.EvaluationLineMapping, err error) {
	list = []dbmodels.EvaluationLineMapping{}
	err = i.db.
		Where("period_id = ?", periodID).
		Where("employee_id = ?", employeeID).
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByEvaluator(periodID, employeeID, evaluatorID string) (list []dbmodels.EvaluationLineMapping, err error) {
	list = []dbmodels.EvaluationLineMapping{}
	err = i.db.
		Where("period_id = ?", periodID).
		Where("employee_id = ?", employeeID).
		Where("evaluator_id = ?", evaluatorID).
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListEmployeeIDs(periodID string) (ids []string, err error) {
	ids = []string{}
	err = i.db.
		Model(&dbmodels.EvaluationLineMapping{}).
		Where("period_id = ?", periodID).
		Distinct("employee_id").
		Order("employee_id ASC").
		Pluck("employee_id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
