package evaluationlinestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-evaluation-backend/models"
	dbmodels "hr-evaluation-backend/models/db"
)

type Provider interface {
	FindOrCreate(evaluatorType models.EvaluatorType) (rec *dbmodels.EvaluationLine, err error)
	GetByID(id string) (rec *dbmodels.EvaluationLine, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) FindOrCreate(evaluatorType models.EvaluatorType) (*dbmodels.EvaluationLine, error) {
	rec := dbmodels.EvaluationLine{}
	err := i.db.
		Where("evaluator_type = ?", evaluatorType).
		First(&rec).
		Error
	if err == nil {
		return &rec, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	rec = dbmodels.EvaluationLine{
		EvaluatorType: evaluatorType,
		SortOrder:     1,
	}
	if evaluatorType == models.EvaluatorTypeSecondary {
		rec.SortOrder = 2
	}
	if err = i.db.Create(&rec).Error; err != nil {
		return nil, errors.Wrapf(err, "ошибка создания линии оценки %v", evaluatorType)
	}
	return &rec, nil
}

func (i impl) GetByID(id string) (*dbmodels.EvaluationLine, error) {
	rec := dbmodels.EvaluationLine{}
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
