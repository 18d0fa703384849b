package dbmodels

type Employee struct {
	BaseModel
	EmployeeNumber string  `gorm:"type:varchar(50);index"`
	Name           string  `gorm:"type:varchar(255)"`
	Email          string  `gorm:"type:varchar(255)"`
	DepartmentID   string  `gorm:"type:varchar(36)"`
	ManagerID      *string `gorm:"type:varchar(36);index"`
}

type Project struct {
	BaseModel
	Name      string  `gorm:"type:varchar(255)"`
	ManagerID *string `gorm:"type:varchar(36)"`
}

type WbsItem struct {
	BaseModel
	ProjectID string `gorm:"type:varchar(36);index"`
	Code      string `gorm:"type:varchar(50)"`
	Title     string `gorm:"type:varchar(255)"`
}
