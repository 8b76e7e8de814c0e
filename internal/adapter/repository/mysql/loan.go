package mysql

import (
	"context"

	loanDomain "github.com/Jaswanth86/Credit/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

// GetByLoanIDForUpdate locks the row; only meaningful inside a transaction.
func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ?", loanID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) List(ctx context.Context, f loanDomain.Filter) ([]loanDomain.Loan, error) {
	q := r.db.WithContext(ctx).Model(&loanDomain.Loan{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.LoanType != "" {
		q = q.Where("loan_type = ?", f.LoanType)
	}
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	var out []loanDomain.Loan
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

// SaveTransition applies a status change guarded by a compare-and-set on the
// previous status. Zero rows affected means another transition got there
// first: nothing is written and ErrInvalidTransition comes back. Audit fields
// are only included when set, so earlier stamps are never cleared.
func (r *LoanRepository) SaveTransition(ctx context.Context, l *loanDomain.Loan, from loanDomain.Status) error {
	updates := map[string]any{
		"status":     l.Status,
		"updated_at": l.UpdatedAt,
	}
	if l.VerifiedBy != nil {
		updates["verified_by"] = *l.VerifiedBy
		updates["verified_at"] = *l.VerifiedAt
	}
	if l.ApprovedBy != nil {
		updates["approved_by"] = *l.ApprovedBy
		updates["approved_at"] = *l.ApprovedAt
	}
	if l.RejectionReason != nil {
		updates["rejection_reason"] = *l.RejectionReason
	}

	res := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("id = ? AND status = ?", l.ID, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return loanDomain.ErrInvalidTransition
	}
	return nil
}
