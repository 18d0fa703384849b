package stepapprovalstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-evaluation-backend/models"
	dbmodels "hr-evaluation-backend/models/db"
)

// StatusUpdate новое состояние этапа, комментарий сохраняется только для revision_requested
type StatusUpdate struct {
	Status          models.StepApprovalStatus
	RevisionComment *string
	UpdatedBy       string
}

type Provider interface {
	Get(periodID, employeeID string) (*dbmodels.StepApproval, error)
	SetStatus(periodID, employeeID string, step models.EvaluationStep, upd StatusUpdate) error
	ListByPeriod(periodID string) ([]dbmodels.StepApproval, error)
	GetSecondary(periodID, employeeID, evaluatorID string) (*dbmodels.SecondaryStepApproval, error)
	ListSecondary(periodID, employeeID string) ([]dbmodels.SecondaryStepApproval, error)
	SetSecondaryStatus(periodID, employeeID, evaluatorID string, upd StatusUpdate) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Get(periodID, employeeID string) (*dbmodels.StepApproval, error) {
	rec := dbmodels.StepApproval{}
	err := i.db.
		Where("period_id = ?", periodID).
		Where("employee_id = ?", employeeID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) SetStatus(periodID, employeeID string, step models.EvaluationStep, upd StatusUpdate) error {
	prefix, err := columnPrefix(step)
	if err != nil {
		return err
	}
	upd = normalize(upd)
	rec, err := i.Get(periodID, employeeID)
	if err != nil {
		return err
	}
	if rec == nil {
		rec = &dbmodels.StepApproval{
			BasePeriodModel: dbmodels.BasePeriodModel{
				PeriodID:   periodID,
				EmployeeID: employeeID,
			},
			CriteriaStatus: models.StepStatusPending,
			SelfStatus:     models.StepStatusPending,
			PrimaryStatus:  models.StepStatusPending,
		}
		applyState(rec, step, upd)
		return i.db.Create(rec).Error
	}
	updMap := map[string]interface{}{
		prefix + "_status":           upd.Status,
		prefix + "_revision_comment": upd.RevisionComment,
		prefix + "_updated_by":       upd.UpdatedBy,
		prefix + "_approved_at":      approvedAt(upd.Status),
	}
	return i.db.
		Model(&dbmodels.StepApproval{}).
		Where("id = ?", rec.ID).
		Updates(updMap).
		Error
}

func (i impl) ListByPeriod(periodID string) (list []dbmodels.StepApproval, err error) {
	list = []dbmodels.StepApproval{}
	err = i.db.
		Where("period_id = ?", periodID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetSecondary(periodID, employeeID, evaluatorID string) (*dbmodels.SecondaryStepApproval, error) {
	rec := dbmodels.SecondaryStepApproval{}
	err := i.db.
		Where("period_id = ?", periodID).
		Where("employee_id = ?", employeeID).
		Where("evaluator_id = ?", evaluatorID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListSecondary(periodID, employeeID string) (list []dbmodels.SecondaryStepApproval, err error) {
	list = []dbmodels.SecondaryStepApproval{}
	err = i.db.
		Where("period_id = ?", periodID).
		Where("employee_id = ?", employeeID).
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SetSecondaryStatus(periodID, employeeID, evaluatorID string, upd StatusUpdate) error {
	upd = normalize(upd)
	rec, err := i.GetSecondary(periodID, employeeID, evaluatorID)
	if err != nil {
		return err
	}
	if rec == nil {
		rec = &dbmodels.SecondaryStepApproval{
			BasePeriodModel: dbmodels.BasePeriodModel{
				PeriodID:   periodID,
				EmployeeID: employeeID,
			},
			EvaluatorID:     evaluatorID,
			Status:          upd.Status,
			RevisionComment: upd.RevisionComment,
			UpdatedBy:       upd.UpdatedBy,
			ApprovedAt:      approvedAt(upd.Status),
		}
		return i.db.Create(rec).Error
	}
	updMap := map[string]interface{}{
		"status":           upd.Status,
		"revision_comment": upd.RevisionComment,
		"updated_by":       upd.UpdatedBy,
		"approved_at":      approvedAt(upd.Status),
	}
	return i.db.
		Model(&dbmodels.SecondaryStepApproval{}).
		Where("id = ?", rec.ID).
		Updates(updMap).
		Error
}

func columnPrefix(step models.EvaluationStep) (string, error) {
	switch step {
	case models.StepCriteria, models.StepSelf, models.StepPrimary:
		return string(step), nil
	}
	return "", errors.Errorf("этап %v не хранится в общей записи подтверждения", step)
}

func normalize(upd StatusUpdate) StatusUpdate {
	if upd.Status != models.StepStatusRevisionRequested {
		upd.RevisionComment = nil
	}
	return upd
}

func approvedAt(status models.StepApprovalStatus) *time.Time {
	if status != models.StepStatusApproved {
		return nil
	}
	now := time.Now()
	return &now
}

func applyState(rec *dbmodels.StepApproval, step models.EvaluationStep, upd StatusUpdate) {
	switch step {
	case models.StepCriteria:
		rec.CriteriaStatus = upd.Status
		rec.CriteriaRevisionComment = upd.RevisionComment
		rec.CriteriaUpdatedBy = upd.UpdatedBy
		rec.CriteriaApprovedAt = approvedAt(upd.Status)
	case models.StepSelf:
		rec.SelfStatus = upd.Status
		rec.SelfRevisionComment = upd.RevisionComment
		rec.SelfUpdatedBy = upd.UpdatedBy
		rec.SelfApprovedAt = approvedAt(upd.Status)
	case models.StepPrimary:
		rec.PrimaryStatus = upd.Status
		rec.PrimaryRevisionComment = upd.RevisionComment
		rec.PrimaryUpdatedBy = upd.UpdatedBy
		rec.PrimaryApprovedAt = approvedAt(upd.Status)
	}
}
