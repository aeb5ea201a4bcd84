package transactiontype

import (
	"encoding/json"
	"time"

	"github.com/injaz-systems/office-api/internal/feeledger"
	"gorm.io/gorm"
)

// TransactionType is a service catalog entry (building permit, demolition
// permit, ...). Its fee template seeds the ledger of every transaction
// created under it: DefaultCosts holds the categorized shape, Fees the older
// flat list still present on rows created before the redesign.
type TransactionType struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Code        string `gorm:"size:20;uniqueIndex" json:"code"`
	Name        string `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string `json:"description"`
	IsActive    bool   `gorm:"not null;default:true" json:"isActive"`

	Category      string  `json:"category"`
	CategoryAr    string  `json:"categoryAr"`
	Duration      int     `gorm:"not null;default:0" json:"duration"`
	EstimatedCost float64 `gorm:"not null;default:0" json:"estimatedCost"`
	Complexity    string  `json:"complexity"`

	Fees         []feeledger.FlatFee `gorm:"type:jsonb;serializer:json" json:"fees"`
	DefaultCosts feeledger.Structure `gorm:"type:jsonb;serializer:json" json:"defaultCosts"`
	Tasks        json.RawMessage     `gorm:"type:jsonb;serializer:json" json:"tasks"`
	Stages       json.RawMessage     `gorm:"type:jsonb;serializer:json" json:"stages"`
	Documents    []string            `gorm:"type:jsonb;serializer:json" json:"documents"`
	Authorities  []string            `gorm:"type:jsonb;serializer:json" json:"authorities"`
	Warnings     []string            `gorm:"type:jsonb;serializer:json" json:"warnings"`
	Notes        []string            `gorm:"type:jsonb;serializer:json" json:"notes"`
}

// TemplateStructure returns the categorized fee template for new
// transactions: the explicit default costs when present, otherwise the flat
// fee list expanded.
func (t *TransactionType) TemplateStructure() feeledger.Structure {
	if len(t.DefaultCosts) > 0 {
		return t.DefaultCosts
	}
	return feeledger.ExpandTemplate(t.Fees)
}

// Migrate creates the table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&TransactionType{})
}
