package invoice

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Metrics are the derived totals of a single invoice.
type Metrics struct {
	// Sum is the net total over all positions.
	Sum decimal.Decimal
	// SumWithTax is the gross total, each position taxed at its own rate.
	SumWithTax decimal.Decimal
	// HoursWorked is the total of all position hours. Positions without
	// hours contribute nothing.
	HoursWorked decimal.Decimal
}

// CalculateMetrics computes the derived totals of an invoice.
func CalculateMetrics(inv *Invoice) Metrics {
	m := Metrics{
		Sum:         decimal.Zero,
		SumWithTax:  decimal.Zero,
		HoursWorked: decimal.Zero,
	}

	for _, pos := range inv.Positions {
		m.Sum = m.Sum.Add(pos.Amount)

		factor := decimal.NewFromInt(1).Add(pos.TaxPercentage.Div(hundred))
		m.SumWithTax = m.SumWithTax.Add(pos.Amount.Mul(factor))

		if pos.Hours != nil {
			m.HoursWorked = m.HoursWorked.Add(*pos.Hours)
		}
	}

	return m
}
