package uow

import (
	"context"

	"github.com/Jaswanth86/Credit/internal/domain/loan"
	"github.com/Jaswanth86/Credit/internal/domain/user"
)

type Repos struct {
	Loans loan.Repository
	Users user.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock loan first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
