package models

// EvaluatorType тип линии оценки
type EvaluatorType string

const (
	EvaluatorTypePrimary   EvaluatorType = "primary"
	EvaluatorTypeSecondary EvaluatorType = "secondary"
)

func (t EvaluatorType) IsValid() bool {
	return t == EvaluatorTypePrimary || t == EvaluatorTypeSecondary
}

// Step этап, подтверждение которого относится к оценкам этого типа
func (t EvaluatorType) Step() EvaluationStep {
	if t == EvaluatorTypeSecondary {
		return StepSecondary
	}
	return StepPrimary
}

// RecipientType адресат запроса на доработку
type RecipientType string

const (
	RecipientEvaluatee          RecipientType = "evaluatee"
	RecipientPrimaryEvaluator   RecipientType = "primary_evaluator"
	RecipientSecondaryEvaluator RecipientType = "secondary_evaluator"
)

func (t RecipientType) IsValid() bool {
	switch t {
	case RecipientEvaluatee, RecipientPrimaryEvaluator, RecipientSecondaryEvaluator:
		return true
	}
	return false
}
