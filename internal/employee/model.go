package employee

import (
	"time"

	"gorm.io/gorm"
)

// Employee statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Employee is a staff member and login account.
type Employee struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Code       string `gorm:"size:20;uniqueIndex" json:"employeeCode"`
	Name       string `gorm:"size:255;not null" json:"name"`
	NameEn     string `gorm:"size:255" json:"nameEn"`
	NationalID string `gorm:"size:20;uniqueIndex;not null" json:"nationalId"`
	Email      string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone      string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Password   string `gorm:"size:255;not null" json:"-"`

	Position   string    `gorm:"size:100" json:"position"`
	Department string    `gorm:"size:100" json:"department"`
	HireDate   time.Time `json:"hireDate"`
	BaseSalary float64   `json:"baseSalary"`
	JobLevel   string    `gorm:"size:50" json:"jobLevel"`
	Type       string    `gorm:"size:50" json:"type"`
	Status     string    `gorm:"size:20;not null;default:'active'" json:"status"`

	Nationality       string  `gorm:"size:100" json:"nationality"`
	GosiNumber        string  `gorm:"size:50" json:"gosiNumber"`
	IqamaNumber       string  `gorm:"size:50" json:"iqamaNumber"`
	PerformanceRating float64 `gorm:"not null;default:0" json:"performanceRating"`

	FrozenUntil  *time.Time `json:"frozenUntil,omitempty"`
	FrozenReason string     `json:"frozenReason,omitempty"`
}

// Migrate creates the table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Employee{})
}
