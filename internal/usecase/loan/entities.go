package loan

import (
	"time"

	domain "github.com/Jaswanth86/Credit/internal/domain/loan"
	"github.com/Jaswanth86/Credit/internal/domain/user"
)

type SubmitInput struct {
	// UserID and ActorRole come from the authenticated identity, not the body.
	UserID         string      `json:"-"`
	ActorRole      user.Role   `json:"-"`
	FullName       string      `json:"full_name"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	Amount         float64     `json:"amount"`
	LoanType       domain.Type `json:"loan_type"`
	InterestRate   float64     `json:"interest_rate"`
	DurationMonths int         `json:"duration_months"`
	DueDate        time.Time   `json:"due_date"`
	Purpose        string      `json:"purpose"`
}

// TransitionInput identifies the loan and the acting identity for
// verify/approve/reject. Notes become the rejection reason on reject.
type TransitionInput struct {
	LoanID    string
	ActorID   string
	ActorRole user.Role
	Notes     string
}

type LoanDTO struct {
	LoanID         string      `json:"loan_id"`
	UserID         string      `json:"user_id"`
	FullName       string      `json:"full_name"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	Amount         float64     `json:"amount"`
	LoanType       domain.Type `json:"loan_type"`
	InterestRate   float64     `json:"interest_rate"`
	DurationMonths int         `json:"duration_months"`
	DueDate        time.Time   `json:"due_date"`
	Purpose        string      `json:"purpose"`
	Status         string      `json:"status"`
	AmountPaid     float64     `json:"amount_paid"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`

	VerifiedBy      *string    `json:"verified_by,omitempty"`
	VerifiedAt      *time.Time `json:"verified_at,omitempty"`
	ApprovedBy      *string    `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`

	// Display-only repayment figures derived from the terms above.
	MonthlyPayment   float64 `json:"monthly_payment"`
	TotalRepayment   float64 `json:"total_repayment"`
	RemainingBalance float64 `json:"remaining_balance"`
}

func toDTO(l *domain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:         l.LoanID,
		UserID:         l.UserID,
		FullName:       l.FullName,
		Email:          l.Email,
		Phone:          l.Phone,
		Amount:         l.Amount,
		LoanType:       l.LoanType,
		InterestRate:   l.InterestRate,
		DurationMonths: l.DurationMonths,
		DueDate:        l.DueDate,
		Purpose:        l.Purpose,
		Status:         string(l.Status),
		AmountPaid:     l.AmountPaid,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,

		VerifiedBy:      l.VerifiedBy,
		VerifiedAt:      l.VerifiedAt,
		ApprovedBy:      l.ApprovedBy,
		ApprovedAt:      l.ApprovedAt,
		RejectionReason: l.RejectionReason,

		MonthlyPayment:   domain.MonthlyPayment(l.Amount, l.InterestRate, l.DurationMonths),
		TotalRepayment:   domain.TotalRepayment(l.Amount, l.InterestRate, l.DurationMonths),
		RemainingBalance: domain.RemainingBalance(l.Amount, l.InterestRate, l.AmountPaid),
	}
}
