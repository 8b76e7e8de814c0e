package loan

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domain "github.com/Jaswanth86/Credit/internal/domain/loan"
	"github.com/Jaswanth86/Credit/internal/domain/uow"
	"github.com/Jaswanth86/Credit/internal/domain/user"
	"github.com/Jaswanth86/Credit/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	loans  domain.Repository
	users  user.Repository
	uow    uow.UnitOfWork
	bounds Bounds
	logger *slog.Logger

	// now is swappable in tests.
	now func() time.Time
}

func NewUsecase(loans domain.Repository, users user.Repository, tx uow.UnitOfWork, b Bounds, logger *slog.Logger) *Usecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &Usecase{
		loans:  loans,
		users:  users,
		uow:    tx,
		bounds: b,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Submit creates a pending loan for the owning applicant. The owner must
// exist, be active, and have passed identity verification; that policy is
// enforced here rather than delegated to the persistence layer.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*LoanDTO, error) {
	if !domain.CanSubmit(in.ActorRole) {
		return nil, domain.ErrForbidden
	}
	now := u.now()
	if verr := validateSubmit(in, u.bounds, now); verr != nil {
		return nil, verr
	}

	owner, err := u.users.GetByUserID(ctx, in.UserID)
	switch {
	case errors.Is(err, user.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return nil, domain.ErrNotFound
	case err != nil:
		return nil, &domain.UpstreamError{Op: "get owner", Err: err}
	}
	if !owner.IsActive || !owner.IsVerified {
		return nil, domain.ErrForbidden
	}

	l := &domain.Loan{
		LoanID:         id.NewID32(),
		UserID:         in.UserID,
		FullName:       in.FullName,
		Email:          in.Email,
		Phone:          in.Phone,
		Amount:         in.Amount,
		LoanType:       in.LoanType,
		InterestRate:   in.InterestRate,
		DurationMonths: in.DurationMonths,
		DueDate:        in.DueDate,
		Purpose:        in.Purpose,
		Status:         domain.StatusPending,
		AmountPaid:     0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := u.loans.Create(ctx, l); err != nil {
		return nil, &domain.UpstreamError{Op: "create loan", Err: err}
	}

	u.logger.Info("loan submitted", "loan_id", l.LoanID, "user_id", l.UserID, "amount", l.Amount)
	return toDTO(l), nil
}

func (u *Usecase) Verify(ctx context.Context, in TransitionInput) (*LoanDTO, error) {
	return u.transition(ctx, domain.OpVerify, in)
}

func (u *Usecase) Approve(ctx context.Context, in TransitionInput) (*LoanDTO, error) {
	return u.transition(ctx, domain.OpApprove, in)
}

func (u *Usecase) Reject(ctx context.Context, in TransitionInput) (*LoanDTO, error) {
	return u.transition(ctx, domain.OpReject, in)
}

// transition runs one guarded state change: lock the row, check the rule
// table, stamp audit fields, then persist with a compare-and-set on the
// previous status. Either everything lands or nothing does.
func (u *Usecase) transition(ctx context.Context, op domain.Operation, in TransitionInput) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domain.Loan) error {
		from := l.Status
		to, err := domain.CheckTransition(op, from, in.ActorRole)
		if err != nil {
			return err
		}

		now := u.now()
		l.Status = to
		l.UpdatedAt = now
		switch op {
		case domain.OpVerify:
			actor := in.ActorID
			l.VerifiedBy = &actor
			l.VerifiedAt = &now
		case domain.OpApprove:
			actor := in.ActorID
			l.ApprovedBy = &actor
			l.ApprovedAt = &now
		case domain.OpReject:
			if in.Notes != "" {
				notes := in.Notes
				l.RejectionReason = &notes
			}
		}

		if err := r.Loans.SaveTransition(ctx, l, from); err != nil {
			if errors.Is(err, domain.ErrInvalidTransition) {
				// A concurrent transition won the compare-and-set.
				return &domain.TransitionError{Op: op, Current: from}
			}
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, u.mapErr(string(op), err)
	}
	u.logger.Info("loan transition", "op", string(op), "loan_id", in.LoanID, "actor", in.ActorID, "status", dto.Status)
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, u.mapErr("get", err)
	}
	return toDTO(l), nil
}

func (u *Usecase) List(ctx context.Context, f domain.Filter) ([]LoanDTO, error) {
	loans, err := u.loans.List(ctx, f)
	if err != nil {
		return nil, &domain.UpstreamError{Op: "list loans", Err: err}
	}
	out := make([]LoanDTO, 0, len(loans))
	for i := range loans {
		out = append(out, *toDTO(&loans[i]))
	}
	return out, nil
}

// mapErr normalizes repository errors into the domain taxonomy. Domain errors
// pass through; record-not-found maps to ErrNotFound; the rest is upstream.
func (u *Usecase) mapErr(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, domain.ErrNotFound):
		return domain.ErrNotFound
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrForbidden):
		return err
	default:
		return &domain.UpstreamError{Op: op, Err: err}
	}
}
