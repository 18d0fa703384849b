package dbmodels

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// BasePeriodModel запись в рамках периода оценки по конкретному сотруднику
type BasePeriodModel struct {
	BaseModel
	PeriodID   string `gorm:"type:varchar(36);index"`
	EmployeeID string `gorm:"type:varchar(36);index"`
}
