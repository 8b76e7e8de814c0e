package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	loanDomain "github.com/Jaswanth86/Credit/internal/domain/loan"
	"github.com/Jaswanth86/Credit/internal/domain/uow"
	userDomain "github.com/Jaswanth86/Credit/internal/domain/user"
	"github.com/Jaswanth86/Credit/pkg/id"

	"gorm.io/gorm"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)
	userRepo := NewUserRepository(db)

	loanID := id.NewID32()
	userID := id.NewID32()

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Users.Create(ctx, makeUser(userID, userDomain.RoleUser)); err != nil {
			return err
		}
		return r.Loans.Create(ctx, makeLoan(loanID, userID))
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	if _, err := loanRepo.GetByLoanID(ctx, loanID); err != nil {
		t.Fatalf("loan not visible after commit: %v", err)
	}
	if _, err := userRepo.GetByUserID(ctx, userID); err != nil {
		t.Fatalf("user not visible after commit: %v", err)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)

	loanID := id.NewID32()
	sentinel := errors.New("boom")

	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, makeLoan(loanID, id.NewID32())); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	if _, err := loanRepo.GetByLoanID(ctx, loanID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected loan not found after rollback, got %v", err)
	}
}

func TestGormUoW_WithinLoanTx_TransitionFlow(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)

	loanID := id.NewID32()
	if err := loanRepo.Create(ctx, makeLoan(loanID, id.NewID32())); err != nil {
		t.Fatalf("Create: %v", err)
	}

	verifier := id.NewID32()
	err := guow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if l.Status != loanDomain.StatusPending {
			t.Fatalf("locked loan status = %s", l.Status)
		}
		now := time.Now().UTC()
		from := l.Status
		l.Status = loanDomain.StatusVerified
		l.VerifiedBy = &verifier
		l.VerifiedAt = &now
		l.UpdatedAt = now
		return r.Loans.SaveTransition(ctx, l, from)
	})
	if err != nil {
		t.Fatalf("WithinLoanTx err: %v", err)
	}

	got, err := loanRepo.GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.Status != loanDomain.StatusVerified || got.VerifiedBy == nil {
		t.Fatalf("transition not committed: %+v", got)
	}
}

func TestGormUoW_WithinLoanTx_UnknownLoan(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)

	err := guow.WithinLoanTx(context.Background(), id.NewID32(), func(r uow.Repos, l *loanDomain.Loan) error {
		t.Fatal("callback must not run for a missing loan")
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
}
