package employee

import (
	"time"

	"github.com/duchnb/ems-fullstack-app/internal/department"
)

type Employee struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	FirstName    string `gorm:"size:255;not null"`
	LastName     string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255;not null;uniqueIndex:uq_employee_email"`
	DepartmentID *int64 `gorm:"index"`

	Department *department.Department `gorm:"foreignKey:DepartmentID"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
