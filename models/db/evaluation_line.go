package dbmodels

import "hr-evaluation-backend/models"

type EvaluationLine struct {
	BaseModel
	EvaluatorType models.EvaluatorType `gorm:"type:varchar(20);uniqueIndex"`
	SortOrder     int
}

// EvaluationLineMapping кто кого оценивает. WbsItemID == nil - первая линия (руководитель),
// иначе вторая линия по конкретной WBS (руководитель проекта)
type EvaluationLineMapping struct {
	BasePeriodModel
	EvaluatorID      string  `gorm:"type:varchar(36);index"`
	WbsItemID        *string `gorm:"type:varchar(36);index"`
	EvaluationLineID string  `gorm:"type:varchar(36)"`
	UpdatedBy        string  `gorm:"type:varchar(36)"`
}

type WbsAssignment struct {
	BasePeriodModel
	ProjectID  string `gorm:"type:varchar(36);index"`
	WbsItemID  string `gorm:"type:varchar(36);index"`
	AssignedBy string `gorm:"type:varchar(36)"`
}
