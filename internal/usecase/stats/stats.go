package stats

import (
	"fmt"
	"time"

	"github.com/Jaswanth86/Credit/internal/domain/loan"
)

// Pure aggregate folds over loan records. Everything here is re-derivable
// from the record set alone and independent of input order.

type StatusCounts struct {
	Pending  int `json:"pending"`
	Verified int `json:"verified"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

func (c StatusCounts) Total() int { return c.Pending + c.Verified + c.Approved + c.Rejected }

type Summary struct {
	TotalLoans    int          `json:"total_loans"`
	ByStatus      StatusCounts `json:"loans_by_status"`
	TotalAmount   float64      `json:"total_amount"`
	AverageAmount float64      `json:"average_amount"`

	// Disbursed is the principal of approved loans; Collected what has been
	// paid back on them; Outstanding the flat-interest balance still owed.
	TotalDisbursed float64 `json:"total_amount_disbursed"`
	TotalCollected float64 `json:"total_amount_collected"`
	Outstanding    float64 `json:"outstanding_amount"`

	DefaultRate float64 `json:"default_rate"`
}

// Compute folds the record set into a Summary. Deterministic and
// order-independent; no running counters exist anywhere else.
func Compute(loans []loan.Loan) Summary {
	var s Summary
	var owedOnApproved float64
	for i := range loans {
		l := &loans[i]
		s.TotalLoans++
		s.TotalAmount += l.Amount
		switch l.Status {
		case loan.StatusPending:
			s.ByStatus.Pending++
		case loan.StatusVerified:
			s.ByStatus.Verified++
		case loan.StatusApproved:
			s.ByStatus.Approved++
			s.TotalDisbursed += l.Amount
			s.TotalCollected += l.AmountPaid
			owedOnApproved += l.Amount * (1 + l.InterestRate/100)
		case loan.StatusRejected:
			s.ByStatus.Rejected++
		}
	}
	if s.TotalLoans > 0 {
		s.AverageAmount = s.TotalAmount / float64(s.TotalLoans)
		s.DefaultRate = float64(s.ByStatus.Rejected) / float64(s.TotalLoans)
	}
	s.Outstanding = owedOnApproved - s.TotalCollected
	return s
}

type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthKey serializes as "YYYY-MM" so it can key a JSON object.

func (k MonthKey) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))), nil
}

func (k *MonthKey) UnmarshalText(b []byte) error {
	var y, m int
	if _, err := fmt.Sscanf(string(b), "%d-%d", &y, &m); err != nil {
		return err
	}
	if m < 1 || m > 12 {
		return fmt.Errorf("invalid month %d", m)
	}
	k.Year, k.Month = y, time.Month(m)
	return nil
}

type MonthlyBucket struct {
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

// ComputeMonthly groups loans by (year, month) of creation. Presentation
// ordering is the caller's concern.
func ComputeMonthly(loans []loan.Loan) map[MonthKey]MonthlyBucket {
	out := make(map[MonthKey]MonthlyBucket)
	for i := range loans {
		l := &loans[i]
		k := MonthKey{Year: l.CreatedAt.Year(), Month: l.CreatedAt.Month()}
		b := out[k]
		b.Count++
		b.TotalAmount += l.Amount
		out[k] = b
	}
	return out
}

type TypeBucket struct {
	LoanType    loan.Type `json:"loan_type"`
	Count       int       `json:"count"`
	TotalAmount float64   `json:"total_amount"`
}

// ComputeByType buckets loans per category, one bucket per category that
// actually occurs in the set.
func ComputeByType(loans []loan.Loan) map[loan.Type]TypeBucket {
	out := make(map[loan.Type]TypeBucket)
	for i := range loans {
		l := &loans[i]
		b := out[l.LoanType]
		b.LoanType = l.LoanType
		b.Count++
		b.TotalAmount += l.Amount
		out[l.LoanType] = b
	}
	return out
}
