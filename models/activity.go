package models

type ActivityType string

const (
	ActivityStepApproval         ActivityType = "step_approval"
	ActivityRevisionRequest      ActivityType = "revision_request"
	ActivityEvaluationSubmission ActivityType = "evaluation_submission"
	ActivityEvaluationLine       ActivityType = "evaluation_line"
)

type ActivityAction string

const (
	ActionApproved          ActivityAction = "approved"
	ActionStatusChanged     ActivityAction = "status_changed"
	ActionRevisionRequested ActivityAction = "revision_requested"
	ActionRevisionCompleted ActivityAction = "revision_completed"
	ActionSubmitted         ActivityAction = "submitted"
	ActionResolved          ActivityAction = "resolved"
)

const (
	RelatedEntityStepApproval    = "step_approval"
	RelatedEntityRevisionRequest = "revision_request"
	RelatedEntityEvaluation      = "evaluation"
	RelatedEntityLineMapping     = "evaluation_line_mapping"
)
