package dbmodels

import (
	"time"

	"hr-evaluation-backend/models"
)

// StepApproval статусы подтверждения этапов criteria/self/primary по сотруднику в периоде
type StepApproval struct {
	BasePeriodModel
	CriteriaStatus          models.StepApprovalStatus `gorm:"type:varchar(30)"`
	CriteriaRevisionComment *string
	CriteriaUpdatedBy       string `gorm:"type:varchar(36)"`
	CriteriaApprovedAt      *time.Time
	SelfStatus              models.StepApprovalStatus `gorm:"type:varchar(30)"`
	SelfRevisionComment     *string
	SelfUpdatedBy           string `gorm:"type:varchar(36)"`
	SelfApprovedAt          *time.Time
	PrimaryStatus           models.StepApprovalStatus `gorm:"type:varchar(30)"`
	PrimaryRevisionComment  *string
	PrimaryUpdatedBy        string `gorm:"type:varchar(36)"`
	PrimaryApprovedAt       *time.Time
}

// StepState срез состояния одного этапа
type StepState struct {
	Status          models.StepApprovalStatus
	RevisionComment *string
	UpdatedBy       string
	ApprovedAt      *time.Time
}

func (s StepApproval) StepState(step models.EvaluationStep) StepState {
	switch step {
	case models.StepCriteria:
		return StepState{s.CriteriaStatus, s.CriteriaRevisionComment, s.CriteriaUpdatedBy, s.CriteriaApprovedAt}
	case models.StepSelf:
		return StepState{s.SelfStatus, s.SelfRevisionComment, s.SelfUpdatedBy, s.SelfApprovedAt}
	case models.StepPrimary:
		return StepState{s.PrimaryStatus, s.PrimaryRevisionComment, s.PrimaryUpdatedBy, s.PrimaryApprovedAt}
	}
	return StepState{}
}

// SecondaryStepApproval статус этапа secondary по каждому оценщику второй линии
type SecondaryStepApproval struct {
	BasePeriodModel
	EvaluatorID     string                    `gorm:"type:varchar(36);index"`
	Status          models.StepApprovalStatus `gorm:"type:varchar(30)"`
	RevisionComment *string
	UpdatedBy       string `gorm:"type:varchar(36)"`
	ApprovedAt      *time.Time
}
