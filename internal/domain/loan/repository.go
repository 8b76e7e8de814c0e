package loan

import "context"

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	Status   Status
	LoanType Type
	UserID   string
}

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the row within the ambient transaction.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	List(ctx context.Context, f Filter) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
	// SaveTransition persists l's status change with a compare-and-set guard on
	// the previous status; when the guard misses it returns ErrInvalidTransition
	// and writes nothing.
	SaveTransition(ctx context.Context, l *Loan, from Status) error
}
