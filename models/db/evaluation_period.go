package dbmodels

import (
	"time"

	"hr-evaluation-backend/models"
)

type EvaluationPeriod struct {
	BaseModel
	Name                          string `gorm:"type:varchar(255)"`
	Description                   string
	Status                        models.PeriodStatus `gorm:"type:varchar(20)"`
	CurrentPhase                  models.PeriodPhase  `gorm:"type:varchar(30)"`
	StartDate                     time.Time
	EvaluationSetupDeadline       *time.Time
	PerformanceDeadline           *time.Time
	SelfEvaluationDeadline        *time.Time
	PeerEvaluationDeadline        *time.Time
	CompletedAt                   *time.Time
	GradeRanges                   GradeRanges `gorm:"type:jsonb"`
	CriteriaSettingEnabled        bool
	SelfEvaluationSettingEnabled  bool
	FinalEvaluationSettingEnabled bool
	CreatedBy                     string `gorm:"type:varchar(36)"`
}
