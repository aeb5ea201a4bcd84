package feeledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyAllocationsRejectsNonPositiveTotal(t *testing.T) {
	s := sampleStructure()

	_, err := ApplyAllocations(s, nil)
	assert.ErrorIs(t, err, ErrNothingAllocated)

	_, err = ApplyAllocations(s, []Allocation{{ItemID: "i1", Amount: 0}})
	assert.ErrorIs(t, err, ErrNothingAllocated)

	_, err = ApplyAllocations(s, []Allocation{{ItemID: "i1", Amount: 50}, {ItemID: "i2", Amount: -60}})
	assert.ErrorIs(t, err, ErrNothingAllocated)
}

func TestApplyAllocationsByID(t *testing.T) {
	res, err := ApplyAllocations(sampleStructure(), []Allocation{{ItemID: "i2", Amount: 100}})
	require.NoError(t, err)

	item := res.Structure[0].Items[1]
	assert.Equal(t, 100.0, item.Paid)
	assert.Equal(t, 400.0, item.Remaining)
	assert.Equal(t, StatusPartial, item.Status)
	assert.Equal(t, 100.0, res.TotalAllocated)
	assert.Empty(t, res.Unmatched)
}

func TestApplyAllocationsByNameWhenIDAbsent(t *testing.T) {
	res, err := ApplyAllocations(sampleStructure(), []Allocation{{ItemName: "رسوم المخطط", Amount: 50}})
	require.NoError(t, err)

	assert.Equal(t, 50.0, res.Structure[0].Items[1].Paid)
}

func TestApplyAllocationsStatusTransitions(t *testing.T) {
	s := Structure{{Category: "c", Items: []Item{{ID: "i1", Name: "n", Amount: 100, Remaining: 100, Status: StatusPending}}}}

	res, err := ApplyAllocations(s, []Allocation{{ItemID: "i1", Amount: 40}})
	require.NoError(t, err)
	assert.Equal(t, StatusPartial, res.Structure[0].Items[0].Status)

	res, err = ApplyAllocations(res.Structure, []Allocation{{ItemID: "i1", Amount: 60}})
	require.NoError(t, err)

	item := res.Structure[0].Items[0]
	assert.Equal(t, StatusPaid, item.Status)
	assert.Equal(t, 0.0, item.Remaining)
}

func TestApplyAllocationsAccumulate(t *testing.T) {
	s := Structure{{Category: "c", Items: []Item{{ID: "i1", Amount: 200}}}}
	alloc := []Allocation{{ItemID: "i1", Amount: 50}}

	res, err := ApplyAllocations(s, alloc)
	require.NoError(t, err)
	res, err = ApplyAllocations(res.Structure, alloc)
	require.NoError(t, err)

	assert.Equal(t, 100.0, res.Structure[0].Items[0].Paid)
}

func TestApplyAllocationsSameItemTwiceInOneCall(t *testing.T) {
	s := Structure{{Category: "c", Items: []Item{{ID: "i1", Amount: 200}}}}

	res, err := ApplyAllocations(s, []Allocation{{ItemID: "i1", Amount: 30}, {ItemID: "i1", Amount: 20}})
	require.NoError(t, err)

	assert.Equal(t, 50.0, res.Structure[0].Items[0].Paid)
	assert.Equal(t, 50.0, res.TotalAllocated)
}

func TestApplyAllocationsMoneyConservation(t *testing.T) {
	s := sampleStructure()
	allocs := []Allocation{
		{ItemID: "i1", Amount: 100},
		{ItemID: "i3", Amount: 250},
		{ItemID: "missing", Amount: 40},
		{ItemName: "رسوم المخطط", Amount: 60},
	}

	before := ComputeAggregate(s)
	res, err := ApplyAllocations(s, allocs)
	require.NoError(t, err)
	after := ComputeAggregate(res.Structure)

	assert.Equal(t, res.TotalAllocated, after.Paid-before.Paid)
	assert.Equal(t, 410.0, res.TotalAllocated)
}

func TestApplyAllocationsReportsUnmatched(t *testing.T) {
	res, err := ApplyAllocations(sampleStructure(), []Allocation{
		{ItemID: "i1", Amount: 10},
		{ItemID: "no-such-item", Amount: 99},
		{ItemName: "غير موجود", Amount: 7},
	})
	require.NoError(t, err)

	require.Len(t, res.Unmatched, 2)
	assert.Equal(t, 99.0, res.Unmatched[0].Amount)
	assert.Equal(t, 10.0, res.TotalAllocated)
}

func TestApplyAllocationsDoesNotMutateInput(t *testing.T) {
	s := sampleStructure()
	_, err := ApplyAllocations(s, []Allocation{{ItemID: "i1", Amount: 100}})
	require.NoError(t, err)

	assert.Equal(t, 400.0, s[0].Items[0].Paid)
}

func TestApplyAllocationsOverpayment(t *testing.T) {
	s := Structure{{Category: "c", Items: []Item{{ID: "i1", Amount: 100}}}}

	res, err := ApplyAllocations(s, []Allocation{{ItemID: "i1", Amount: 130}})
	require.NoError(t, err)

	item := res.Structure[0].Items[0]
	assert.Equal(t, -30.0, item.Remaining)
	assert.Equal(t, StatusPaid, item.Status)
}
