package document

import (
	"time"

	"gorm.io/gorm"
)

// Document is the metadata record for a filed document. The binary itself
// lives outside this service; we only track where it belongs.
type Document struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Code          string         `gorm:"size:20;uniqueIndex" json:"code"`
	Title         string         `gorm:"size:255;not null" json:"title"`
	Category      string         `gorm:"size:100" json:"category"`
	FileName      string         `gorm:"size:255" json:"fileName"`
	MimeType      string         `gorm:"size:100" json:"mimeType"`
	SizeBytes     int64          `json:"sizeBytes"`
	StoragePath   string         `gorm:"size:500" json:"storagePath"`
	ClientID      *uint          `gorm:"index" json:"clientId,omitempty"`
	TransactionID *uint          `gorm:"index" json:"transactionId,omitempty"`
	UploadedByID  *uint          `json:"uploadedById,omitempty"`
	Notes         string         `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Document{})
}
