package feeledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTemplateGroupsByAuthority(t *testing.T) {
	flat := []FlatFee{
		{Name: "X", Amount: 10, Authority: "Muni"},
		{Name: "Y", Amount: 20, Authority: "Muni"},
		{Name: "Z", Amount: 5},
	}

	s := ExpandTemplate(flat)
	require.Len(t, s, 2)

	assert.Equal(t, "Muni", s[0].Category)
	assert.Len(t, s[0].Items, 2)
	assert.Equal(t, DefaultCategory, s[1].Category)
	assert.Len(t, s[1].Items, 1)
}

func TestExpandTemplateItemIDsFollowFlatPosition(t *testing.T) {
	flat := []FlatFee{
		{Name: "A", Amount: 1, Authority: "B-Auth"},
		{Name: "B", Amount: 2, Authority: "A-Auth"},
		{Name: "C", Amount: 3, Authority: "B-Auth"},
	}

	s := ExpandTemplate(flat)
	require.Len(t, s, 2)

	// ids come from the flat list index, not the position inside the group
	assert.Equal(t, "fee-tmpl-0", s[0].Items[0].ID)
	assert.Equal(t, "fee-tmpl-2", s[0].Items[1].ID)
	assert.Equal(t, "fee-tmpl-1", s[1].Items[0].ID)
	assert.Equal(t, "cat-0", s[0].ID)
	assert.Equal(t, "cat-1", s[1].ID)
}

func TestExpandTemplateItemsStartUnpaid(t *testing.T) {
	s := ExpandTemplate([]FlatFee{{Name: "A", Amount: 120}})
	require.Len(t, s, 1)
	item := s[0].Items[0]

	assert.Equal(t, 0.0, item.Paid)
	assert.Equal(t, 120.0, item.Remaining)
	assert.Equal(t, StatusPending, item.Status)
}

func TestExpandTemplatePreservesTotal(t *testing.T) {
	flat := []FlatFee{
		{Name: "X", Amount: 10, Authority: "Muni"},
		{Name: "Y", Cost: 20},
		{Name: "Z", Amount: 5},
	}

	assert.Equal(t, ComputeFlatTotal(flat).Total, ComputeAggregate(ExpandTemplate(flat)).Total)
}

func TestExpandTemplateIdempotent(t *testing.T) {
	flat := []FlatFee{{Name: "X", Amount: 10, Authority: "Muni"}, {Name: "Z", Amount: 5}}
	assert.Equal(t, ExpandTemplate(flat), ExpandTemplate(flat))
}

func TestExpandTemplateEmpty(t *testing.T) {
	assert.Empty(t, ExpandTemplate(nil))
	assert.Empty(t, ExpandTemplate([]FlatFee{}))
}
