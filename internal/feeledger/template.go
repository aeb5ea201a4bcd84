package feeledger

import "fmt"

// ExpandTemplate converts a transaction-type's flat fee template into the
// categorized shape used on live transactions. Items are grouped by
// authority, categories keep first-seen order, and every item starts
// unpaid. Item ids are derived from the position in the flat list
// ("fee-tmpl-3"), so expanding the same template twice yields the same ids.
func ExpandTemplate(flat []FlatFee) Structure {
	if len(flat) == 0 {
		return Structure{}
	}

	var order []string
	groups := make(map[string][]Item)

	for idx, fee := range flat {
		category := fee.Authority
		if category == "" {
			category = DefaultCategory
		}
		if _, seen := groups[category]; !seen {
			order = append(order, category)
		}
		amount := fee.Amount
		if amount == 0 {
			amount = fee.Cost
		}
		groups[category] = append(groups[category], Item{
			ID:        fmt.Sprintf("fee-tmpl-%d", idx),
			Name:      fee.Name,
			Amount:    amount,
			Paid:      0,
			Remaining: amount,
			Status:    StatusPending,
		})
	}

	out := make(Structure, 0, len(order))
	for idx, category := range order {
		out = append(out, Category{
			ID:       fmt.Sprintf("cat-%d", idx),
			Category: category,
			Items:    groups[category],
		})
	}
	return out
}
