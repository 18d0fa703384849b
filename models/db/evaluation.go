package dbmodels

import (
	"time"

	"hr-evaluation-backend/models"
)

type EvaluationCriteriaSubmission struct {
	BasePeriodModel
	IsSubmitted bool
	SubmittedAt *time.Time
	SubmittedBy string `gorm:"type:varchar(36)"`
}

type WbsSelfEvaluation struct {
	BasePeriodModel
	WbsItemID              string `gorm:"type:varchar(36);index"`
	Content                string
	Score                  *int
	SubmittedToEvaluator   bool
	SubmittedToEvaluatorAt *time.Time
	SubmittedToManager     bool
	SubmittedToManagerAt   *time.Time
	UpdatedBy              string `gorm:"type:varchar(36)"`
}

type DownwardEvaluation struct {
	BasePeriodModel
	EvaluatorID    string               `gorm:"type:varchar(36);index"`
	WbsItemID      *string              `gorm:"type:varchar(36)"`
	EvaluationType models.EvaluatorType `gorm:"type:varchar(20)"`
	Content        string
	Score          *int
	IsCompleted    bool
	CompletedAt    *time.Time
	UpdatedBy      string `gorm:"type:varchar(36)"`
}

type EvaluationActivityLog struct {
	BasePeriodModel
	ActivityType      models.ActivityType   `gorm:"type:varchar(40)"`
	Action            models.ActivityAction `gorm:"type:varchar(40)"`
	Title             string
	Description       string
	RelatedEntityType string           `gorm:"type:varchar(40)"`
	RelatedEntityID   *string          `gorm:"type:varchar(36)"`
	PerformedBy       string           `gorm:"type:varchar(36)"`
	Metadata          ActivityMetadata `gorm:"type:jsonb"`
	PerformedAt       time.Time
}
