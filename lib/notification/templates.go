package notification

import (
	"bytes"
	"text/template"

	"github.com/pkg/errors"
)

const revisionRequestedTitle = "Запрос на доработку"

var revisionRequestedTpl = template.Must(template.New("revision_requested").Parse(
	`Здравствуйте, {{.RecipientName}}!

Этап «{{.StepName}}» оценки сотрудника {{.EmployeeName}} возвращен на доработку.

Комментарий: {{.Comment}}
`))

type revisionRequestedData struct {
	RecipientName string
	EmployeeName  string
	StepName      string
	Comment       string
}

func buildRevisionRequestedMsg(data revisionRequestedData) (string, error) {
	buf := new(bytes.Buffer)
	if err := revisionRequestedTpl.Execute(buf, data); err != nil {
		return "", errors.Wrap(err, "ошибка формирования текста уведомления")
	}
	return buf.String(), nil
}
