package quotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecalculate(t *testing.T) {
	q := Quotation{
		TaxRate: 15,
		Items: []LineItem{
			{Description: "رفع مساحي", Quantity: 2, UnitPrice: 500},
			{Description: "إصدار رخصة", Quantity: 1, UnitPrice: 1500},
		},
	}
	q.Recalculate()

	assert.Equal(t, 1000.0, q.Items[0].Total)
	assert.Equal(t, 1500.0, q.Items[1].Total)
	assert.Equal(t, 2500.0, q.Subtotal)
	assert.InDelta(t, 2875.0, q.Total, 0.001)
}

func TestRecalculateNoItems(t *testing.T) {
	q := Quotation{TaxRate: 15}
	q.Recalculate()
	assert.Zero(t, q.Subtotal)
	assert.Zero(t, q.Total)
}
