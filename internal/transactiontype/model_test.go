package transactiontype

import (
	"testing"

	"github.com/injaz-systems/office-api/internal/feeledger"
	"github.com/stretchr/testify/assert"
)

func TestTemplateStructurePrefersDefaultCosts(t *testing.T) {
	tt := TransactionType{
		DefaultCosts: feeledger.Structure{
			{ID: "cat-0", Category: "رسوم حكومية", Items: []feeledger.Item{
				{ID: "fee-1", Name: "رسوم فحص", Amount: 300, Remaining: 300, Status: feeledger.StatusPending},
			}},
		},
		Fees: []feeledger.FlatFee{{Name: "ignored", Amount: 999}},
	}

	str := tt.TemplateStructure()
	assert.Len(t, str, 1)
	assert.Equal(t, "رسوم حكومية", str[0].Category)
	assert.Equal(t, 300.0, str[0].Items[0].Amount)
}

func TestTemplateStructureExpandsFlatFees(t *testing.T) {
	tt := TransactionType{
		Fees: []feeledger.FlatFee{
			{Name: "رسوم رخصة", Amount: 500, Authority: "البلدية"},
			{Name: "رسوم مساحة", Amount: 200},
		},
	}

	str := tt.TemplateStructure()
	assert.Len(t, str, 2)
	assert.Equal(t, "البلدية", str[0].Category)
	assert.Equal(t, feeledger.DefaultCategory, str[1].Category)

	agg := feeledger.ComputeAggregate(str)
	assert.Equal(t, 700.0, agg.Total)
	assert.Zero(t, agg.Paid)
}

func TestTemplateStructureEmpty(t *testing.T) {
	var tt TransactionType
	assert.Empty(t, tt.TemplateStructure())
}
