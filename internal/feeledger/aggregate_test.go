package feeledger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStructure() Structure {
	return Structure{
		{
			ID:       "cat-0",
			Category: "أمانة الرياض",
			Items: []Item{
				{ID: "i1", Name: "رسوم إصدار الرخصة", Amount: 1000, Paid: 400, Remaining: 600, Status: StatusPartial},
				{ID: "i2", Name: "رسوم المخطط", Amount: 500, Paid: 0, Remaining: 500, Status: StatusPending},
			},
		},
		{
			ID:       "cat-1",
			Category: DefaultCategory,
			Items: []Item{
				{ID: "i3", Name: "أتعاب المكتب", Amount: 2000, Paid: 2000, Remaining: 0, Status: StatusPaid},
			},
		},
	}
}

func TestComputeAggregate(t *testing.T) {
	agg := ComputeAggregate(sampleStructure())

	assert.Equal(t, 3500.0, agg.Total)
	assert.Equal(t, 2400.0, agg.Paid)
	assert.Equal(t, 1100.0, agg.Remaining)
}

func TestComputeAggregateRemainingIdentity(t *testing.T) {
	for _, s := range []Structure{sampleStructure(), {}, nil, {{Category: "x"}}} {
		agg := ComputeAggregate(s)
		assert.Equal(t, agg.Total-agg.Paid, agg.Remaining)
	}
}

func TestComputeAggregateEmpty(t *testing.T) {
	assert.Equal(t, Aggregate{}, ComputeAggregate(nil))
	assert.Equal(t, Aggregate{}, ComputeAggregate(Structure{}))
}

func TestComputeAggregateOverpaymentNotClamped(t *testing.T) {
	s := Structure{{Category: "c", Items: []Item{{ID: "i", Amount: 100, Paid: 150}}}}
	agg := ComputeAggregate(s)
	assert.Equal(t, -50.0, agg.Remaining)
}

func TestComputeFlatTotal(t *testing.T) {
	flat := []FlatFee{{Name: "A", Amount: 100}, {Name: "B", Amount: 50}}
	agg := ComputeFlatTotal(flat)

	assert.Equal(t, Aggregate{Total: 150, Paid: 0, Remaining: 150}, agg)
}

func TestComputeFlatTotalCostFallback(t *testing.T) {
	flat := []FlatFee{{Name: "A", Cost: 75}, {Name: "B", Amount: 25}}
	assert.Equal(t, 100.0, ComputeFlatTotal(flat).Total)
}

func TestNormalizeCategorized(t *testing.T) {
	raw, err := json.Marshal(sampleStructure())
	require.NoError(t, err)

	s := Normalize(raw)
	require.Len(t, s, 2)
	assert.Equal(t, "أمانة الرياض", s[0].Category)
	assert.Len(t, s[0].Items, 2)
}

func TestNormalizeFlatList(t *testing.T) {
	raw := json.RawMessage(`[{"name":"X","amount":10,"authority":"Muni"},{"name":"Z","amount":5}]`)

	s := Normalize(raw)
	require.Len(t, s, 2)
	assert.Equal(t, "Muni", s[0].Category)
	assert.Equal(t, DefaultCategory, s[1].Category)
}

func TestNormalizeMalformed(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize(json.RawMessage(`{}`)))
	assert.Empty(t, Normalize(json.RawMessage(`not json`)))
	assert.Empty(t, Normalize(json.RawMessage(`[]`)))
}

func TestCloneIsolation(t *testing.T) {
	orig := sampleStructure()
	clone := orig.Clone()
	clone[0].Items[0].Paid = 9999

	assert.Equal(t, 400.0, orig[0].Items[0].Paid)
}
