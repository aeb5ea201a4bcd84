package payment

import (
	"time"

	"github.com/injaz-systems/office-api/internal/feeledger"
	"gorm.io/gorm"
)

// Payment categories.
const (
	CategoryOfficeFees   = "أتعاب مكتب"
	CategoryFollowUpFees = "أتعاب تعقيب"
)

// Payment is one received amount, distributed over the transaction's fee
// items by the stored allocations. Amount always equals the sum of the
// allocation amounts that matched an item.
type Payment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Amount        float64   `gorm:"not null" json:"amount"`
	Date          time.Time `gorm:"not null;index" json:"date"`
	Method        string    `gorm:"size:50;not null;default:'Cash'" json:"method"`
	Category      string    `gorm:"size:100" json:"category"`
	IsFollowUpFee bool      `gorm:"not null;default:false" json:"isFollowUpFee"`
	Notes         string    `json:"notes"`
	ReceiptImage  string    `json:"receiptImage"`

	TransactionID uint  `gorm:"not null;index" json:"transactionId"`
	ReceivedByID  *uint `gorm:"index" json:"receivedById"`

	Allocations []feeledger.Allocation `gorm:"type:jsonb;serializer:json" json:"allocations"`
}

// Migrate creates the table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Payment{})
}
