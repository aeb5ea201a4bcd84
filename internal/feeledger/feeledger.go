// Package feeledger holds the fee structure of a transaction and the
// arithmetic that keeps it consistent: aggregate totals, template expansion
// and payment allocation. It has no storage dependencies; handlers load the
// structure, call into this package and persist the result.
package feeledger

import (
	"encoding/json"
)

// Item statuses. An item is "paid" once nothing remains, "partial" while
// something has been paid, "pending" otherwise.
const (
	StatusPending = "pending"
	StatusPartial = "partial"
	StatusPaid    = "paid"
)

// DefaultCategory labels template fees that carry no issuing authority.
const DefaultCategory = "رسوم عامة"

// Item is a single billable line inside a category.
type Item struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Paid      float64 `json:"paid"`
	Remaining float64 `json:"remaining"`
	Status    string  `json:"status"`
}

// Category groups items under the authority that charges them.
type Category struct {
	ID       string `json:"id,omitempty"`
	Category string `json:"category"`
	Items    []Item `json:"items"`
}

// Structure is the categorized fee ledger stored on a transaction.
type Structure []Category

// FlatFee is the legacy shape: a bare fee definition with no payment state,
// as stored on transaction-type templates. Older rows carry the value in
// "cost" instead of "amount".
type FlatFee struct {
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Cost      float64 `json:"cost,omitempty"`
	Authority string  `json:"authority,omitempty"`
}

// Aggregate is the derived financial summary of a structure.
type Aggregate struct {
	Total     float64 `json:"total"`
	Paid      float64 `json:"paid"`
	Remaining float64 `json:"remaining"`
}

// StatusFor returns the status consistent with the given amounts.
func StatusFor(amount, paid float64) string {
	switch {
	case amount-paid <= 0:
		return StatusPaid
	case paid > 0:
		return StatusPartial
	default:
		return StatusPending
	}
}

// Clone returns a deep copy; mutations on the copy never reach the original.
func (s Structure) Clone() Structure {
	if s == nil {
		return nil
	}
	out := make(Structure, len(s))
	for i, cat := range s {
		items := make([]Item, len(cat.Items))
		copy(items, cat.Items)
		out[i] = Category{ID: cat.ID, Category: cat.Category, Items: items}
	}
	return out
}

// Normalize decodes a stored fees blob into the categorized shape. This is
// the only place the legacy flat list is detected: if the first element has
// an "items" key the blob is already categorized, otherwise it is a flat fee
// list and gets expanded. Malformed or empty input yields an empty structure,
// never an error the caller has to branch on beyond logging.
func Normalize(raw json.RawMessage) Structure {
	if len(raw) == 0 {
		return Structure{}
	}

	var probe []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil || len(probe) == 0 {
		return Structure{}
	}

	if _, ok := probe[0]["items"]; ok {
		var s Structure
		if err := json.Unmarshal(raw, &s); err != nil {
			return Structure{}
		}
		return s
	}

	var flat []FlatFee
	if err := json.Unmarshal(raw, &flat); err != nil {
		return Structure{}
	}
	return ExpandTemplate(flat)
}
