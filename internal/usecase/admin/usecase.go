package admin

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Jaswanth86/Credit/internal/domain/loan"
	"github.com/Jaswanth86/Credit/internal/domain/user"

	"gorm.io/gorm"
)

// Usecase covers the admin-only user administration surface. It mutates
// UserAccount records, never LoanRecord; the lifecycle engine only reads the
// flags set here.
type Usecase struct {
	users  user.Repository
	logger *slog.Logger
}

func NewUsecase(users user.Repository, logger *slog.Logger) *Usecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &Usecase{users: users, logger: logger}
}

func (u *Usecase) ListUsers(ctx context.Context) ([]user.User, error) {
	out, err := u.users.List(ctx)
	if err != nil {
		return nil, &loan.UpstreamError{Op: "list users", Err: err}
	}
	return out, nil
}

// SetActive toggles the account's active flag.
func (u *Usecase) SetActive(ctx context.Context, userID string, active bool) (*user.User, error) {
	acct, err := u.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	acct.IsActive = active
	if err := u.users.Save(ctx, acct); err != nil {
		return nil, &loan.UpstreamError{Op: "save user", Err: err}
	}
	u.logger.Info("user status changed", "user_id", userID, "active", active)
	return acct, nil
}

// SetRole changes the account's role.
func (u *Usecase) SetRole(ctx context.Context, userID string, role user.Role) (*user.User, error) {
	if !user.ValidRole(role) {
		return nil, &loan.ValidationError{Fields: []loan.FieldError{
			{Field: "role", Message: "must be one of user, verifier, admin"},
		}}
	}
	acct, err := u.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	acct.Role = role
	if err := u.users.Save(ctx, acct); err != nil {
		return nil, &loan.UpstreamError{Op: "save user", Err: err}
	}
	u.logger.Info("user role changed", "user_id", userID, "role", string(role))
	return acct, nil
}

func (u *Usecase) load(ctx context.Context, userID string) (*user.User, error) {
	acct, err := u.users.GetByUserID(ctx, userID)
	switch {
	case errors.Is(err, user.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return nil, user.ErrNotFound
	case err != nil:
		return nil, &loan.UpstreamError{Op: "get user", Err: err}
	}
	return acct, nil
}
