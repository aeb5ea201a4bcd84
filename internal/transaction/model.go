package transaction

import (
	"time"

	"github.com/injaz-systems/office-api/internal/client"
	"github.com/injaz-systems/office-api/internal/feeledger"
	"github.com/injaz-systems/office-api/internal/transactiontype"
	"gorm.io/gorm"
)

// Transaction is a client request processed by the office (permit, survey,
// subdivision, ...). The fee ledger lives on the row as a jsonb document;
// the three aggregate columns cache its sums and are recomputed on every
// mutation of the structure, never maintained incrementally.
type Transaction struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Code  string `gorm:"size:30;uniqueIndex;not null" json:"transactionCode"`
	Title string `gorm:"size:255;not null" json:"title"`

	ClientID uint           `gorm:"not null;index" json:"clientId"`
	Client   *client.Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	TransactionTypeID *uint                            `gorm:"index" json:"transactionTypeId"`
	TransactionType   *transactiontype.TransactionType `gorm:"foreignKey:TransactionTypeID" json:"transactionType,omitempty"`

	Priority              string  `gorm:"size:50;default:'متوسط'" json:"priority"`
	Description           string  `json:"description"`
	Category              string  `json:"category"`
	ProjectClassification string  `json:"projectClassification"`
	Status                string  `gorm:"size:50;default:'Draft'" json:"status"`
	StatusColor           string  `gorm:"size:20;default:'#6b7280'" json:"statusColor"`
	Location              string  `json:"location"`
	DeedNumber            string  `json:"deedNumber"`
	Progress              float64 `gorm:"not null;default:0" json:"progress"`

	Fees            feeledger.Structure `gorm:"type:jsonb;serializer:json" json:"fees"`
	TotalFees       float64             `gorm:"not null;default:0" json:"totalFees"`
	PaidAmount      float64             `gorm:"not null;default:0" json:"paidAmount"`
	RemainingAmount float64             `gorm:"not null;default:0" json:"remainingAmount"`

	Staff []StaffAssignment `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"staff,omitempty"`
}

// StaffAssignment links an employee to a transaction with a working role.
type StaffAssignment struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	TransactionID uint   `gorm:"not null;index" json:"transactionId"`
	EmployeeID    uint   `gorm:"not null;index" json:"employeeId"`
	Role          string `gorm:"size:100" json:"role"`
}

func (StaffAssignment) TableName() string { return "transaction_employees" }

// RefreshAggregate recomputes the cached totals from the fee structure.
func (t *Transaction) RefreshAggregate() {
	agg := feeledger.ComputeAggregate(t.Fees)
	t.TotalFees = agg.Total
	t.PaidAmount = agg.Paid
	t.RemainingAmount = agg.Remaining
}

// Migrate creates the tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Transaction{}, &StaffAssignment{})
}
