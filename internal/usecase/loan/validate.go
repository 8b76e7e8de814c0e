package loan

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	domain "github.com/Jaswanth86/Credit/internal/domain/loan"
)

// Bounds are the configured principal limits for a submission.
type Bounds struct {
	MinAmount float64
	MaxAmount float64
}

var rePhone = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// validateSubmit checks every construct-time invariant and collects all
// failures, so a malformed submission reports the full field list at once.
func validateSubmit(in SubmitInput, b Bounds, now time.Time) *domain.ValidationError {
	var fields []domain.FieldError
	add := func(field, msg string) {
		fields = append(fields, domain.FieldError{Field: field, Message: msg})
	}

	if strings.TrimSpace(in.FullName) == "" {
		add("full_name", "is required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		add("email", "must be a valid email address")
	}
	if !rePhone.MatchString(in.Phone) {
		add("phone", "must be 7-15 digits, optionally prefixed with +")
	}
	if in.Amount < b.MinAmount || in.Amount > b.MaxAmount {
		add("amount", fmt.Sprintf("must be between %.0f and %.0f", b.MinAmount, b.MaxAmount))
	}
	if !domain.ValidType(in.LoanType) {
		add("loan_type", "must be one of personal, home, auto, education, business, mortgage")
	}
	if in.InterestRate < 0 {
		add("interest_rate", "must not be negative")
	}
	if in.DurationMonths <= 0 {
		add("duration_months", "must be a positive number of months")
	}
	if !in.DueDate.After(now) {
		add("due_date", "must be in the future")
	}
	if strings.TrimSpace(in.Purpose) == "" {
		add("purpose", "is required")
	}

	if len(fields) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: fields}
}
