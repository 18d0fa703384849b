package db_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"hr-evaluation-backend/lib/utils/testdb"
	"hr-evaluation-backend/models"
	dbmodels "hr-evaluation-backend/models/db"
)

func periodModel(periodID, employeeID string) dbmodels.BasePeriodModel {
	return dbmodels.BasePeriodModel{PeriodID: periodID, EmployeeID: employeeID}
}

func TestNaturalKeyIndexes(t *testing.T) {
	t.Run(`one primary slot per employee check`, func(t *testing.T) {
		tx := testdb.New(t)
		require.NoError(t, tx.Create(&dbmodels.EvaluationLineMapping{BasePeriodModel: periodModel("p", "e"), EvaluatorID: "m1"}).Error)
		require.Error(t, tx.Create(&dbmodels.EvaluationLineMapping{BasePeriodModel: periodModel("p", "e"), EvaluatorID: "m2"}).Error)
	})

	t.Run(`one mapping per wbs check`, func(t *testing.T) {
		tx := testdb.New(t)
		w1, w2 := "w1", "w2"
		require.NoError(t, tx.Create(&dbmodels.EvaluationLineMapping{BasePeriodModel: periodModel("p", "e"), EvaluatorID: "pm", WbsItemID: &w1}).Error)
		require.NoError(t, tx.Create(&dbmodels.EvaluationLineMapping{BasePeriodModel: periodModel("p", "e"), EvaluatorID: "pm", WbsItemID: &w2}).Error)
		require.Error(t, tx.Create(&dbmodels.EvaluationLineMapping{BasePeriodModel: periodModel("p", "e"), EvaluatorID: "pm2", WbsItemID: &w1}).Error)
	})

	t.Run(`one step approval per employee check`, func(t *testing.T) {
		tx := testdb.New(t)
		require.NoError(t, tx.Create(&dbmodels.StepApproval{BasePeriodModel: periodModel("p", "e"), CriteriaStatus: models.StepStatusPending}).Error)
		require.Error(t, tx.Create(&dbmodels.StepApproval{BasePeriodModel: periodModel("p", "e"), CriteriaStatus: models.StepStatusPending}).Error)
	})

	t.Run(`one secondary approval per evaluator check`, func(t *testing.T) {
		tx := testdb.New(t)
		require.NoError(t, tx.Create(&dbmodels.SecondaryStepApproval{BasePeriodModel: periodModel("p", "e"), EvaluatorID: "pm1"}).Error)
		require.NoError(t, tx.Create(&dbmodels.SecondaryStepApproval{BasePeriodModel: periodModel("p", "e"), EvaluatorID: "pm2"}).Error)
		require.Error(t, tx.Create(&dbmodels.SecondaryStepApproval{BasePeriodModel: periodModel("p", "e"), EvaluatorID: "pm1"}).Error)
	})
}
