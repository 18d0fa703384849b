package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
)

type Provider interface {
	ExportPeriodStatus(periodName string, list []evaluationapimodels.EmployeeEvaluationStatus) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var statusHeaders = []string{
	"Сотрудник",
	"Критерии",
	"Подтверждение критериев",
	"Самооценка",
	"Подтверждение самооценки",
	"Руководитель (1-я линия)",
	"Оценка 1-й линии",
	"Подтверждение 1-й линии",
	"Оценщики 2-й линии",
	"Оценка 2-й линии",
}

var progressHumanName = map[evaluationapimodels.ProgressStatus]string{
	evaluationapimodels.ProgressNone:       "Не начато",
	evaluationapimodels.ProgressInProgress: "В работе",
	evaluationapimodels.ProgressComplete:   "Завершено",
}

func (i impl) ExportPeriodStatus(periodName string, list []evaluationapimodels.EmployeeEvaluationStatus) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, statusHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		if err = applyDataCellStyle(f, sheet, 1, row+1, len(statusHeaders), row+len(list)); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
		for _, item := range list {
			row++
			if err = writeRow(f, sheet, row, statusRow(item)); err != nil {
				return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
			}
		}
	}
	if err = f.SetSheetName(sheet, sheetName(periodName)); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа в xlsx")
	}
	return f.WriteToBuffer()
}

func statusRow(item evaluationapimodels.EmployeeEvaluationStatus) []interface{} {
	primaryEvaluator := "Не назначен"
	if item.Primary.HasEvaluator {
		primaryEvaluator = item.Primary.EvaluatorID
	}
	return []interface{}{
		item.EmployeeName,
		progressHumanName[item.Criteria.Status],
		item.Criteria.ApprovalStatus.ToHuman(),
		fmt.Sprintf("%v (%d/%d)", progressHumanName[item.Self.Status], item.Self.Submitted, item.Self.Total),
		item.Self.ApprovalStatus.ToHuman(),
		primaryEvaluator,
		fmt.Sprintf("%v (%d/%d)", progressHumanName[item.Primary.Status], item.Primary.Submitted, item.Primary.Total),
		item.Primary.ApprovalStatus.ToHuman(),
		len(item.Secondary.Evaluators),
		progressHumanName[item.Secondary.Status],
	}
}

// sheetName excel ограничивает имя листа 31 символом
func sheetName(periodName string) string {
	name := []rune(periodName)
	if len(name) == 0 {
		return "Статус оценки"
	}
	if len(name) > 31 {
		name = name[:31]
	}
	return string(name)
}
