package quotation

import (
	"time"

	"github.com/injaz-systems/office-api/internal/client"
	"gorm.io/gorm"
)

// LineItem is one priced row on a quotation.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// Quotation is a priced offer sent to a client before any contract exists.
// The number comes from the caller, not a sequence; the office reuses its
// paper numbering.
type Quotation struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Number      string         `gorm:"size:50;uniqueIndex;not null" json:"number"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	ClientID    uint           `gorm:"not null;index" json:"clientId"`
	Client      *client.Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Items       []LineItem     `gorm:"type:jsonb;serializer:json" json:"items"`
	Subtotal    float64        `gorm:"not null;default:0" json:"subtotal"`
	TaxRate     float64        `gorm:"not null;default:15" json:"taxRate"`
	Total       float64        `gorm:"not null;default:0" json:"total"`
	Status      string         `gorm:"size:50;not null;default:'pending'" json:"status"`
	ValidUntil  *time.Time     `json:"validUntil,omitempty"`
	Notes       string         `gorm:"type:text" json:"notes"`
	CreatedByID *uint          `json:"createdById,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Recalculate fills line totals, the subtotal and the taxed total.
func (q *Quotation) Recalculate() {
	var subtotal float64
	for i := range q.Items {
		q.Items[i].Total = q.Items[i].Quantity * q.Items[i].UnitPrice
		subtotal += q.Items[i].Total
	}
	q.Subtotal = subtotal
	q.Total = subtotal * (1 + q.TaxRate/100)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Quotation{})
}
