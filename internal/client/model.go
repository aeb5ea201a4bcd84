package client

import (
	"time"

	"gorm.io/gorm"
)

// Client of the office, individual or company. Name, contact, address and
// identification are stored as jsonb blobs because older rows carry several
// historical shapes (see profile.go).
type Client struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Code     string `gorm:"size:20;uniqueIndex;not null" json:"clientCode"`
	Mobile   string `gorm:"size:20;uniqueIndex;not null" json:"mobile"`
	Email    string `gorm:"size:255" json:"email"`
	IDNumber string `gorm:"size:20;uniqueIndex;not null" json:"idNumber"`

	Name           Name           `gorm:"type:jsonb;serializer:json" json:"name"`
	Contact        map[string]any `gorm:"type:jsonb;serializer:json" json:"contact"`
	Address        map[string]any `gorm:"type:jsonb;serializer:json" json:"address"`
	Identification map[string]any `gorm:"type:jsonb;serializer:json" json:"identification"`

	Type         string  `gorm:"size:50;not null" json:"type"`
	Category     string  `gorm:"size:100" json:"category"`
	Nationality  string  `gorm:"size:100" json:"nationality"`
	Occupation   string  `gorm:"size:100" json:"occupation"`
	Company      string  `gorm:"size:255" json:"company"`
	TaxNumber    string  `gorm:"size:50" json:"taxNumber"`
	Rating       string  `gorm:"size:20" json:"rating"`
	SecretRating float64 `gorm:"not null;default:50" json:"secretRating"`
	Notes        string  `json:"notes"`
	IsActive     bool    `gorm:"not null;default:true" json:"isActive"`

	// Grading inputs maintained by transaction/payment flows.
	TotalFees             float64  `gorm:"not null;default:0" json:"totalFees"`
	ProjectTypes          []string `gorm:"type:jsonb;serializer:json" json:"projectTypes"`
	TransactionTypes      []string `gorm:"type:jsonb;serializer:json" json:"transactionTypes"`
	TotalTransactions     int      `gorm:"not null;default:0" json:"totalTransactions"`
	CompletedTransactions int      `gorm:"not null;default:0" json:"completedTransactions"`

	// Derived profile quality, recomputed on every update.
	CompletionPercentage float64 `gorm:"not null;default:0" json:"completionPercentage"`
	Grade                string  `gorm:"size:5" json:"grade"`
	GradeScore           int     `gorm:"not null;default:0" json:"gradeScore"`
}

// Migrate creates the table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Client{})
}
