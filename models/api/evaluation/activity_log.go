package evaluationapimodels

import (
	"time"

	"hr-evaluation-backend/models"
	dbmodels "hr-evaluation-backend/models/db"
)

type ActivityLogView struct {
	ID                string                    `json:"id"`
	PeriodID          string                    `json:"period_id"`
	EmployeeID        string                    `json:"employee_id"`
	ActivityType      models.ActivityType       `json:"activity_type"`
	Action            models.ActivityAction     `json:"action"`
	Title             string                    `json:"title"`
	Description       string                    `json:"description"`
	RelatedEntityType string                    `json:"related_entity_type"`
	RelatedEntityID   *string                   `json:"related_entity_id"`
	PerformedBy       string                    `json:"performed_by"`
	Metadata          dbmodels.ActivityMetadata `json:"metadata"`
	PerformedAt       time.Time                 `json:"performed_at"`
}

func ActivityLogConvert(rec dbmodels.EvaluationActivityLog) ActivityLogView {
	return ActivityLogView{
		ID:                rec.ID,
		PeriodID:          rec.PeriodID,
		EmployeeID:        rec.EmployeeID,
		ActivityType:      rec.ActivityType,
		Action:            rec.Action,
		Title:             rec.Title,
		Description:       rec.Description,
		RelatedEntityType: rec.RelatedEntityType,
		RelatedEntityID:   rec.RelatedEntityID,
		PerformedBy:       rec.PerformedBy,
		Metadata:          rec.Metadata,
		PerformedAt:       rec.PerformedAt,
	}
}
