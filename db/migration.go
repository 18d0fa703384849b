package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	dbmodels "hr-evaluation-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := Migrate(DB); err != nil {
		return err
	}
	log.Info("Миграция прошла успешно")
	return nil
}

// Migrate создает структуры на указанном соединении, используется и тестами на sqlite
func Migrate(tx *gorm.DB) error {
	entities := []struct {
		name  string
		model any
	}{
		{"Employee", &dbmodels.Employee{}},
		{"Project", &dbmodels.Project{}},
		{"WbsItem", &dbmodels.WbsItem{}},
		{"EvaluationPeriod", &dbmodels.EvaluationPeriod{}},
		{"EvaluationLine", &dbmodels.EvaluationLine{}},
		{"EvaluationLineMapping", &dbmodels.EvaluationLineMapping{}},
		{"WbsAssignment", &dbmodels.WbsAssignment{}},
		{"StepApproval", &dbmodels.StepApproval{}},
		{"SecondaryStepApproval", &dbmodels.SecondaryStepApproval{}},
		{"EvaluationRevisionRequest", &dbmodels.EvaluationRevisionRequest{}},
		{"EvaluationRevisionRequestRecipient", &dbmodels.EvaluationRevisionRequestRecipient{}},
		{"EvaluationCriteriaSubmission", &dbmodels.EvaluationCriteriaSubmission{}},
		{"WbsSelfEvaluation", &dbmodels.WbsSelfEvaluation{}},
		{"DownwardEvaluation", &dbmodels.DownwardEvaluation{}},
		{"EvaluationActivityLog", &dbmodels.EvaluationActivityLog{}},
	}
	for _, entity := range entities {
		if err := tx.AutoMigrate(entity.model); err != nil {
			return errors.Wrapf(err, "ошибка создания структуры %v", entity.name)
		}
	}
	for _, index := range naturalKeyIndexes {
		if err := tx.Exec(index.sql).Error; err != nil {
			return errors.Wrapf(err, "ошибка создания индекса %v", index.name)
		}
	}
	return nil
}

// naturalKeyIndexes уникальность записей, которые создаются через поиск и вставку
var naturalKeyIndexes = []struct {
	name string
	sql  string
}{
	{
		"idx_evaluation_line_mappings_wbs",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_evaluation_line_mappings_wbs ON evaluation_line_mappings (period_id, employee_id, wbs_item_id)",
	},
	{
		"idx_evaluation_line_mappings_primary",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_evaluation_line_mappings_primary ON evaluation_line_mappings (period_id, employee_id) WHERE wbs_item_id IS NULL",
	},
	{
		"idx_step_approvals_key",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_step_approvals_key ON step_approvals (period_id, employee_id)",
	},
	{
		"idx_secondary_step_approvals_key",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_secondary_step_approvals_key ON secondary_step_approvals (period_id, employee_id, evaluator_id)",
	},
}
