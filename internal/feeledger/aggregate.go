package feeledger

// ComputeAggregate sums amount and paid across every item of the structure.
// Remaining is total minus paid and is not clamped: an overpaid ledger shows
// a negative remainder instead of silently losing the excess. Empty input
// yields a zero aggregate.
func ComputeAggregate(s Structure) Aggregate {
	var agg Aggregate
	for _, cat := range s {
		for _, item := range cat.Items {
			agg.Total += item.Amount
			agg.Paid += item.Paid
		}
	}
	agg.Remaining = agg.Total - agg.Paid
	return agg
}

// ComputeFlatTotal sums a legacy flat fee list. The flat shape carries no
// payment state, so paid is always zero and everything remains due. Rows
// predating the rename keep the value in Cost, used when Amount is absent.
func ComputeFlatTotal(flat []FlatFee) Aggregate {
	var total float64
	for _, fee := range flat {
		amount := fee.Amount
		if amount == 0 {
			amount = fee.Cost
		}
		total += amount
	}
	return Aggregate{Total: total, Paid: 0, Remaining: total}
}
