package models

import "github.com/pkg/errors"

// EvaluationStep этап оценки, у каждого этапа свой статус подтверждения
type EvaluationStep string

const (
	StepCriteria  EvaluationStep = "criteria"
	StepSelf      EvaluationStep = "self"
	StepPrimary   EvaluationStep = "primary"
	StepSecondary EvaluationStep = "secondary"
)

var AllEvaluationSteps = []EvaluationStep{StepCriteria, StepSelf, StepPrimary, StepSecondary}

var stepHumanName = map[EvaluationStep]string{
	StepCriteria:  "Критерии оценки",
	StepSelf:      "Самооценка",
	StepPrimary:   "Оценка руководителя (1-я линия)",
	StepSecondary: "Оценка руководителя проекта (2-я линия)",
}

func (s EvaluationStep) IsValid() bool {
	switch s {
	case StepCriteria, StepSelf, StepPrimary, StepSecondary:
		return true
	}
	return false
}

func (s EvaluationStep) ToHuman() string {
	if human, exist := stepHumanName[s]; exist {
		return human
	}
	return string(s)
}

func ParseEvaluationStep(value string) (EvaluationStep, error) {
	step := EvaluationStep(value)
	if !step.IsValid() {
		return "", errors.Errorf("неизвестный этап оценки: %v", value)
	}
	return step, nil
}

// StepApprovalStatus статус подтверждения этапа. Отдельного "не отправлено" нет: pending без отправленных
// оценок, в проекции статусов это ProgressNone
type StepApprovalStatus string

const (
	StepStatusPending           StepApprovalStatus = "pending"
	StepStatusApproved          StepApprovalStatus = "approved"
	StepStatusRevisionRequested StepApprovalStatus = "revision_requested"
)

var stepStatusHumanName = map[StepApprovalStatus]string{
	StepStatusPending:           "Ожидает подтверждения",
	StepStatusApproved:          "Подтверждено",
	StepStatusRevisionRequested: "На доработке",
}

func (s StepApprovalStatus) IsValid() bool {
	switch s {
	case StepStatusPending, StepStatusApproved, StepStatusRevisionRequested:
		return true
	}
	return false
}

func (s StepApprovalStatus) ToHuman() string {
	if human, exist := stepStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// CascadeDirection направление каскадного подтверждения, выбирается вызывающей стороной
type CascadeDirection string

const (
	CascadeNone CascadeDirection = ""
	CascadeDown CascadeDirection = "down"
	CascadeUp   CascadeDirection = "up"
)

func (d CascadeDirection) IsValid() bool {
	switch d {
	case CascadeNone, CascadeDown, CascadeUp:
		return true
	}
	return false
}
