package models

type PeriodStatus string

const (
	PeriodStatusWaiting    PeriodStatus = "waiting"
	PeriodStatusInProgress PeriodStatus = "in-progress"
	PeriodStatusCompleted  PeriodStatus = "completed"
)

type PeriodPhase string

const (
	PhaseWaiting         PeriodPhase = "waiting"
	PhaseEvaluationSetup PeriodPhase = "evaluation-setup"
	PhasePerformance     PeriodPhase = "performance"
	PhaseSelfEvaluation  PeriodPhase = "self-evaluation"
	PhasePeerEvaluation  PeriodPhase = "peer-evaluation"
	PhaseClosure         PeriodPhase = "closure"
)

var phaseOrder = map[PeriodPhase]int{
	PhaseWaiting:         0,
	PhaseEvaluationSetup: 1,
	PhasePerformance:     2,
	PhaseSelfEvaluation:  3,
	PhasePeerEvaluation:  4,
	PhaseClosure:         5,
}

func (p PeriodPhase) IsValid() bool {
	_, ok := phaseOrder[p]
	return ok
}

// IsAfter фаза p идет строго позже other
func (p PeriodPhase) IsAfter(other PeriodPhase) bool {
	return phaseOrder[p] > phaseOrder[other]
}
