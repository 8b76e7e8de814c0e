package loan

import "math"

// Flat simple-interest arithmetic, kept bit-for-bit consistent with what the
// dashboards display. Not amortized.

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// TotalRepayment is principal plus simple interest over the term:
// P * (1 + r/100 * n/12).
func TotalRepayment(principal, rate float64, months int) float64 {
	return round2(principal * (1 + rate/100*float64(months)/12))
}

// MonthlyPayment is the flat installment: TotalRepayment / n.
func MonthlyPayment(principal, rate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	return round2(principal * (1 + rate/100*float64(months)/12) / float64(months))
}

// RemainingBalance is the flat-rate balance of an approved loan:
// P*(1+r/100) - amountPaid.
func RemainingBalance(principal, rate, amountPaid float64) float64 {
	return round2(principal*(1+rate/100) - amountPaid)
}
