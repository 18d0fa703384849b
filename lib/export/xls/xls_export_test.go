package xlsexport

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"hr-evaluation-backend/models"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
)

func TestExportPeriodStatus(t *testing.T) {
	t.Run(`status rows check`, func(t *testing.T) {
		list := []evaluationapimodels.EmployeeEvaluationStatus{
			{
				EmployeeName: "Иванов",
				Criteria: evaluationapimodels.SubmissionStatusView{
					ApprovalStatus: models.StepStatusApproved,
					Status:         evaluationapimodels.ProgressComplete,
					Total:          1,
					Submitted:      1,
				},
				Self: evaluationapimodels.SubmissionStatusView{
					ApprovalStatus: models.StepStatusPending,
					Status:         evaluationapimodels.ProgressInProgress,
					Total:          2,
					Submitted:      1,
				},
				Primary: evaluationapimodels.PrimaryStatusView{
					HasEvaluator: true,
					EvaluatorStatusView: evaluationapimodels.EvaluatorStatusView{
						EvaluatorID:    "manager",
						ApprovalStatus: models.StepStatusPending,
						Status:         evaluationapimodels.ProgressNone,
					},
				},
				Secondary: evaluationapimodels.SecondaryStatusView{
					Status: evaluationapimodels.ProgressNone,
				},
			},
		}
		buf, err := impl{}.ExportPeriodStatus("Весна 2026", list)
		require.NoError(t, err)

		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Весна 2026")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, statusHeaders, rows[0])
		require.Equal(t, "Иванов", rows[1][0])
		require.Equal(t, "Завершено", rows[1][1])
		require.Equal(t, models.StepStatusApproved.ToHuman(), rows[1][2])
		require.Equal(t, "В работе (1/2)", rows[1][3])
		require.Equal(t, "manager", rows[1][5])
		require.Equal(t, "0", rows[1][8])
	})

	t.Run(`long sheet name check`, func(t *testing.T) {
		require.Len(t, []rune(sheetName("Очень длинное название периода оценки эффективности")), 31)
		require.Equal(t, "Статус оценки", sheetName(""))
	})
}
