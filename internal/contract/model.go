package contract

import (
	"time"

	"github.com/injaz-systems/office-api/internal/client"
	"gorm.io/gorm"
)

// Contract is a signed engagement between the office and a client.
type Contract struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	ClientID    uint           `gorm:"not null;index" json:"clientId"`
	Client      *client.Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Value       float64        `gorm:"not null;default:0" json:"value"`
	Status      string         `gorm:"size:50;not null;default:'draft'" json:"status"`
	StartDate   *time.Time     `json:"startDate,omitempty"`
	EndDate     *time.Time     `json:"endDate,omitempty"`
	SignedAt    *time.Time     `json:"signedAt,omitempty"`
	Terms       string         `gorm:"type:text" json:"terms"`
	Notes       string         `gorm:"type:text" json:"notes"`
	CreatedByID *uint          `json:"createdById,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Contract{})
}
