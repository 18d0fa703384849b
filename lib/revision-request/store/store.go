package revisionrequeststore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-evaluation-backend/models"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
	dbmodels "hr-evaluation-backend/models/db"
)

// RecipientScope выборка получателей по запросам (период, сотрудник, этап)
type RecipientScope struct {
	PeriodID      string
	EmployeeID    string
	Step          models.EvaluationStep
	RecipientType models.RecipientType
	RecipientID   string
	OnlyOpen      bool
}

type Provider interface {
	Create(rec dbmodels.EvaluationRevisionRequest) (id string, err error)
	GetByID(id string) (*dbmodels.EvaluationRevisionRequest, error)
	List(filter evaluationapimodels.RevisionRequestFilter) ([]dbmodels.EvaluationRevisionRequest, error)
	ListRecipients(scope RecipientScope) ([]dbmodels.EvaluationRevisionRequestRecipient, error)
	GetOpenRecipient(requestID, recipientID string) (*dbmodels.EvaluationRevisionRequestRecipient, error)
	CompleteRecipients(ids []string, responseComment *string) (int64, error)
	MarkRead(requestID, recipientID string) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.EvaluationRevisionRequest) (id string, err error) {
	if err = i.db.Create(&rec).Error; err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.EvaluationRevisionRequest, error) {
	rec := dbmodels.EvaluationRevisionRequest{}
	err := i.db.
		Preload("Recipients", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
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

func (i impl) List(filter evaluationapimodels.RevisionRequestFilter) (list []dbmodels.EvaluationRevisionRequest, err error) {
	list = []dbmodels.EvaluationRevisionRequest{}
	tx := i.db.
		Preload("Recipients", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		})
	if filter.PeriodID != "" {
		tx = tx.Where("period_id = ?", filter.PeriodID)
	}
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Step != "" {
		tx = tx.Where("step = ?", filter.Step)
	}
	if filter.RecipientID != "" || filter.OnlyOpen {
		sub := i.db.
			Model(&dbmodels.EvaluationRevisionRequestRecipient{}).
			Select("revision_request_id")
		if filter.RecipientID != "" {
			sub = sub.Where("recipient_id = ?", filter.RecipientID)
		}
		if filter.OnlyOpen {
			sub = sub.Where("is_completed = ?", false)
		}
		tx = tx.Where("id IN (?)", sub)
	}
	err = tx.
		Order("requested_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListRecipients(scope RecipientScope) (list []dbmodels.EvaluationRevisionRequestRecipient, err error) {
	list = []dbmodels.EvaluationRevisionRequestRecipient{}
	requestIDs := []string{}
	err = i.db.
		Model(&dbmodels.EvaluationRevisionRequest{}).
		Where("period_id = ?", scope.PeriodID).
		Where("employee_id = ?", scope.EmployeeID).
		Where("step = ?", scope.Step).
		Pluck("id", &requestIDs).
		Error
	if err != nil {
		return nil, err
	}
	if len(requestIDs) == 0 {
		return list, nil
	}
	tx := i.db.
		Where("revision_request_id IN ?", requestIDs)
	if scope.RecipientType != "" {
		tx = tx.Where("recipient_type = ?", scope.RecipientType)
	}
	if scope.RecipientID != "" {
		tx = tx.Where("recipient_id = ?", scope.RecipientID)
	}
	if scope.OnlyOpen {
		tx = tx.Where("is_completed = ?", false)
	}
	err = tx.
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetOpenRecipient(requestID, recipientID string) (*dbmodels.EvaluationRevisionRequestRecipient, error) {
	rec := dbmodels.EvaluationRevisionRequestRecipient{}
	err := i.db.
		Where("revision_request_id = ?", requestID).
		Where("recipient_id = ?", recipientID).
		Where("is_completed = ?", false).
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

func (i impl) CompleteRecipients(ids []string, responseComment *string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	updMap := map[string]interface{}{
		"is_completed":     true,
		"completed_at":     time.Now(),
		"response_comment": responseComment,
	}
	tx := i.db.
		Model(&dbmodels.EvaluationRevisionRequestRecipient{}).
		Where("id IN ?", ids).
		Where("is_completed = ?", false).
		Updates(updMap)
	return tx.RowsAffected, tx.Error
}

func (i impl) MarkRead(requestID, recipientID string) (int64, error) {
	updMap := map[string]interface{}{
		"is_read": true,
		"read_at": time.Now(),
	}
	tx := i.db.
		Model(&dbmodels.EvaluationRevisionRequestRecipient{}).
		Where("revision_request_id = ?", requestID).
		Where("recipient_id = ?", recipientID).
		Updates(updMap)
	return tx.RowsAffected, tx.Error
}
