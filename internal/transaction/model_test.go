package transaction

import (
	"testing"

	"github.com/injaz-systems/office-api/internal/feeledger"
	"github.com/stretchr/testify/assert"
)

func TestRefreshAggregate(t *testing.T) {
	tr := Transaction{
		Fees: feeledger.Structure{
			{Category: "رسوم حكومية", Items: []feeledger.Item{
				{ID: "fee-1", Name: "رسوم فحص", Amount: 300, Paid: 100, Remaining: 200, Status: feeledger.StatusPartial},
				{ID: "fee-2", Name: "رسوم رخصة", Amount: 500, Paid: 500, Remaining: 0, Status: feeledger.StatusPaid},
			}},
		},
		// stale cached values
		TotalFees:       1,
		PaidAmount:      2,
		RemainingAmount: 3,
	}

	tr.RefreshAggregate()

	assert.Equal(t, 800.0, tr.TotalFees)
	assert.Equal(t, 600.0, tr.PaidAmount)
	assert.Equal(t, 200.0, tr.RemainingAmount)
}

func TestRefreshAggregateEmptyLedger(t *testing.T) {
	tr := Transaction{TotalFees: 100, PaidAmount: 50, RemainingAmount: 50}
	tr.RefreshAggregate()
	assert.Zero(t, tr.TotalFees)
	assert.Zero(t, tr.PaidAmount)
	assert.Zero(t, tr.RemainingAmount)
}
