package feeledger

import "errors"

// ErrNothingAllocated rejects a payment whose allocations sum to zero or less.
var ErrNothingAllocated = errors.New("must allocate a positive amount to at least one item")

// Allocation applies part of a payment to one fee item, addressed by id or,
// when the id is absent, by name.
type Allocation struct {
	ItemID   string  `json:"itemId,omitempty"`
	ItemName string  `json:"itemName,omitempty"`
	Amount   float64 `json:"amount"`
}

// Result of applying a set of allocations.
type Result struct {
	// Structure is the updated ledger; the input is never mutated.
	Structure Structure
	// TotalAllocated is the sum of the amounts that actually landed on an
	// item. It equals the sum of per-item paid deltas exactly.
	TotalAllocated float64
	// Unmatched collects allocations that named no existing item, for the
	// caller to report back instead of losing them silently.
	Unmatched []Allocation
}

// ApplyAllocations distributes payment amounts over the items of a
// categorized structure. Payments only accumulate: applying the same
// allocation twice doubles the item's paid amount. Each item's remaining and
// status are recomputed from the invariant remaining = amount - paid.
func ApplyAllocations(s Structure, allocations []Allocation) (Result, error) {
	var requested float64
	for _, alloc := range allocations {
		requested += alloc.Amount
	}
	if requested <= 0 {
		return Result{}, ErrNothingAllocated
	}

	out := Result{Structure: s.Clone()}

	for _, alloc := range allocations {
		item := out.Structure.findItem(alloc)
		if item == nil {
			out.Unmatched = append(out.Unmatched, alloc)
			continue
		}
		item.Paid += alloc.Amount
		item.Remaining = item.Amount - item.Paid
		item.Status = StatusFor(item.Amount, item.Paid)
		out.TotalAllocated += alloc.Amount
	}

	return out, nil
}

// findItem returns the first item matching the allocation, scanning
// categories in order. Id wins over name.
func (s Structure) findItem(alloc Allocation) *Item {
	for ci := range s {
		for ii := range s[ci].Items {
			item := &s[ci].Items[ii]
			if alloc.ItemID != "" {
				if item.ID == alloc.ItemID {
					return item
				}
				continue
			}
			if alloc.ItemName != "" && item.Name == alloc.ItemName {
				return item
			}
		}
	}
	return nil
}
