package role

import (
	"time"

	"github.com/injaz-systems/office-api/internal/permission"
	"gorm.io/gorm"
)

// JobRole groups permissions under a named position in the office hierarchy.
type JobRole struct {
	ID               uint                    `gorm:"primaryKey" json:"id"`
	Code             string                  `gorm:"size:50;uniqueIndex;not null" json:"code"`
	NameAr           string                  `gorm:"size:255;not null" json:"nameAr"`
	NameEn           string                  `gorm:"size:255" json:"nameEn"`
	Level            int                     `gorm:"not null;default:0" json:"level"`
	Department       string                  `gorm:"size:100" json:"department"`
	Description      string                  `gorm:"type:text" json:"description"`
	Responsibilities []string                `gorm:"type:jsonb;serializer:json" json:"responsibilities"`
	Permissions      []permission.Permission `gorm:"many2many:role_permissions" json:"permissions"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt          `gorm:"index" json:"-"`
}

// Assignment links an employee to a role. An employee holds at most one
// role per row; reassignment replaces the previous row.
type Assignment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"uniqueIndex;not null" json:"employeeId"`
	RoleID     uint      `gorm:"not null;index" json:"roleId"`
	AssignedBy string    `gorm:"size:255" json:"assignedBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (Assignment) TableName() string { return "employee_roles" }

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&JobRole{}, &Assignment{})
}
