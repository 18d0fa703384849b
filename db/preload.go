package db

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	evaluationlinestore "hr-evaluation-backend/lib/evaluation-line/line-store"
	"hr-evaluation-backend/models"
)

func InitPreload() {
	if err := PreloadEvaluationLines(DB); err != nil {
		log.WithError(err).Error("ошибка заполнения справочника линий оценки")
	}
}

// PreloadEvaluationLines линии первой и второй очереди должны существовать до построения маппингов
func PreloadEvaluationLines(tx *gorm.DB) error {
	lineStore := evaluationlinestore.NewInstance(tx)
	for _, evaluatorType := range []models.EvaluatorType{models.EvaluatorTypePrimary, models.EvaluatorTypeSecondary} {
		if _, err := lineStore.FindOrCreate(evaluatorType); err != nil {
			return err
		}
	}
	return nil
}
