package evaluationapimodels

import (
	"github.com/pkg/errors"
	"hr-evaluation-backend/models"
	apimodels "hr-evaluation-backend/models/api"
)

type SelfEvaluationData struct {
	WbsItemID string `json:"wbs_item_id" validate:"required"`  // WBS
	Content   string `json:"content"`                          // Текст самооценки
	Score     *int   `json:"score" validate:"omitempty,gte=0"` // Балл
}

func (r SelfEvaluationData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type DownwardEvaluationData struct {
	EvaluationType models.EvaluatorType `json:"evaluation_type" validate:"required"` // primary/secondary
	WbsItemID      *string              `json:"wbs_item_id"`                         // WBS, для первой линии необязательно
	Content        string               `json:"content"`                             // Текст оценки
	Score          *int                 `json:"score" validate:"omitempty,gte=0"`    // Балл
	Submit         bool                 `json:"submit"`                              // Сразу отправить оценку
}

func (r DownwardEvaluationData) Validate() error {
	if err := apimodels.ValidateStruct(r); err != nil {
		return err
	}
	if !r.EvaluationType.IsValid() {
		return errors.Errorf("неизвестный тип оценки: %v", r.EvaluationType)
	}
	if r.EvaluationType == models.EvaluatorTypeSecondary && (r.WbsItemID == nil || *r.WbsItemID == "") {
		return errors.New("для оценки второй линии необходимо указать WBS")
	}
	if r.Submit && r.Score == nil {
		return errors.New("для отправки оценки необходимо указать балл")
	}
	return nil
}

type SubmitResultView struct {
	Submitted int `json:"submitted"`
	Skipped   int `json:"skipped"`
}
