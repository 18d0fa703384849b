package dbmodels

import (
	"time"

	"hr-evaluation-backend/models"
)

type EvaluationRevisionRequest struct {
	BasePeriodModel
	Step        models.EvaluationStep `gorm:"type:varchar(20);index"`
	Comment     string
	RequestedBy string `gorm:"type:varchar(36)"`
	RequestedAt time.Time
	Recipients  []EvaluationRevisionRequestRecipient `gorm:"foreignKey:RevisionRequestID"`
}

type EvaluationRevisionRequestRecipient struct {
	BaseModel
	RevisionRequestID string               `gorm:"type:varchar(36);index"`
	RecipientID       string               `gorm:"type:varchar(36);index"`
	RecipientType     models.RecipientType `gorm:"type:varchar(30)"`
	IsRead            bool
	ReadAt            *time.Time
	IsCompleted       bool
	CompletedAt       *time.Time
	ResponseComment   *string
}
