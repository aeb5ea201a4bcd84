// Package activity is the append-only audit trail written by the other
// handlers. Logging failures are reported to the caller as an error but are
// never allowed to fail the operation being logged.
package activity

import (
	"time"

	"gorm.io/gorm"
)

// Log is one recorded action.
type Log struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        time.Time `gorm:"not null;index;autoCreateTime" json:"date"`
	Action      string    `gorm:"size:100;not null" json:"action"`
	Description string    `json:"description"`
	Category    string    `gorm:"size:100" json:"category"`

	ClientID      *uint `gorm:"index" json:"clientId,omitempty"`
	PerformedByID *uint `gorm:"index" json:"performedById,omitempty"`
}

func (Log) TableName() string { return "activity_logs" }

// Migrate creates the table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Log{})
}

// Repository encapsulates DB access for the log.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Record appends one entry.
func (r *Repository) Record(entry *Log) error {
	return r.DB.Create(entry).Error
}

// ForClient returns a client's history, newest first.
func (r *Repository) ForClient(clientID uint) ([]Log, error) {
	var list []Log
	err := r.DB.Where("client_id = ?", clientID).Order("date desc").Find(&list).Error
	return list, err
}
