package testdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"hr-evaluation-backend/models"
	dbmodels "hr-evaluation-backend/models/db"
)

func CreateEmployee(t *testing.T, tx *gorm.DB, name string, managerID *string) string {
	t.Helper()
	rec := dbmodels.Employee{
		EmployeeNumber: name,
		Name:           name,
		Email:          name + "@example.com",
		ManagerID:      managerID,
	}
	require.NoError(t, tx.Create(&rec).Error)
	return rec.ID
}

func CreateProject(t *testing.T, tx *gorm.DB, name string, managerID *string) string {
	t.Helper()
	rec := dbmodels.Project{
		Name:      name,
		ManagerID: managerID,
	}
	require.NoError(t, tx.Create(&rec).Error)
	return rec.ID
}

func CreateWbsItem(t *testing.T, tx *gorm.DB, projectID, code string) string {
	t.Helper()
	rec := dbmodels.WbsItem{
		ProjectID: projectID,
		Code:      code,
		Title:     code,
	}
	require.NoError(t, tx.Create(&rec).Error)
	return rec.ID
}

// CreatePeriod период в фазе оценки
func CreatePeriod(t *testing.T, tx *gorm.DB) string {
	t.Helper()
	rec := dbmodels.EvaluationPeriod{
		Name:         "period",
		Status:       models.PeriodStatusInProgress,
		CurrentPhase: models.PhasePerformance,
		StartDate:    time.Now(),
		CreatedBy:    models.SystemUser,
	}
	require.NoError(t, tx.Create(&rec).Error)
	return rec.ID
}

func SetEmployeeManager(t *testing.T, tx *gorm.DB, employeeID string, managerID *string) {
	t.Helper()
	require.NoError(t, tx.Model(&dbmodels.Employee{}).
		Where("id = ?", employeeID).
		Update("manager_id", managerID).Error)
}

func SetProjectManager(t *testing.T, tx *gorm.DB, projectID string, managerID *string) {
	t.Helper()
	require.NoError(t, tx.Model(&dbmodels.Project{}).
		Where("id = ?", projectID).
		Update("manager_id", managerID).Error)
}
