package stats

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/Jaswanth86/Credit/internal/domain/loan"
	"github.com/Jaswanth86/Credit/internal/domain/user"
)

// Cache is a byte cache for computed statistics. A nil or failing cache only
// costs a recompute; the record set stays the single source of truth.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
}

const adminStatsKey = "stats:admin"

type Service struct {
	loans    loan.Repository
	users    user.Repository
	cache    Cache
	cacheTTL time.Duration
	logger   *slog.Logger
}

func NewService(loans loan.Repository, users user.Repository, cache Cache, ttl time.Duration, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{loans: loans, users: users, cache: cache, cacheTTL: ttl, logger: logger}
}

// ApplicantStats scopes the figures to one owner's loans.
type ApplicantStats struct {
	LoanCount        int          `json:"loan_count"`
	ByStatus         StatusCounts `json:"loans_by_status"`
	TotalBorrowed    float64      `json:"total_borrowed"`
	TotalToRepay     float64      `json:"total_to_repay"`
	TotalPaid        float64      `json:"total_paid"`
	TotalOutstanding float64      `json:"total_outstanding"`
}

func (s *Service) ForApplicant(ctx context.Context, userID string) (*ApplicantStats, error) {
	loans, err := s.loans.List(ctx, loan.Filter{UserID: userID})
	if err != nil {
		return nil, &loan.UpstreamError{Op: "list loans", Err: err}
	}
	sum := Compute(loans)
	out := &ApplicantStats{
		LoanCount:        sum.TotalLoans,
		ByStatus:         sum.ByStatus,
		TotalBorrowed:    sum.TotalDisbursed,
		TotalPaid:        sum.TotalCollected,
		TotalOutstanding: sum.Outstanding,
	}
	for i := range loans {
		if loans[i].Status == loan.StatusApproved {
			out.TotalToRepay += loan.TotalRepayment(loans[i].Amount, loans[i].InterestRate, loans[i].DurationMonths)
		}
	}
	return out, nil
}

// VerifierStats describes the pending queue.
type VerifierStats struct {
	PendingCount       int                        `json:"pending_verification_count"`
	TotalPendingAmount float64                    `json:"total_pending_amount"`
	ByType             map[loan.Type]TypeBucket   `json:"loans_by_type"`
	Monthly            map[MonthKey]MonthlyBucket `json:"monthly_applications"`
}

func (s *Service) ForVerifier(ctx context.Context) (*VerifierStats, error) {
	pending, err := s.loans.List(ctx, loan.Filter{Status: loan.StatusPending})
	if err != nil {
		return nil, &loan.UpstreamError{Op: "list pending loans", Err: err}
	}
	out := &VerifierStats{
		PendingCount: len(pending),
		ByType:       ComputeByType(pending),
		Monthly:      ComputeMonthly(pending),
	}
	for i := range pending {
		out.TotalPendingAmount += pending[i].Amount
	}
	return out, nil
}

// AdminStats covers the whole system.
type AdminStats struct {
	Summary
	TotalUsers  int                        `json:"total_users"`
	ActiveUsers int                        `json:"active_users"`
	Monthly     map[MonthKey]MonthlyBucket `json:"monthly_applications"`
	ByType      map[loan.Type]TypeBucket   `json:"loans_by_type"`
}

// ForAdmin recomputes the system-wide figures, consulting the cache first.
// Cache hits are a short-TTL accelerator; the recompute is authoritative.
func (s *Service) ForAdmin(ctx context.Context) (*AdminStats, error) {
	if s.cache != nil {
		if b, err := s.cache.Get(ctx, adminStatsKey); err == nil && len(b) > 0 {
			var cached AdminStats
			if json.Unmarshal(b, &cached) == nil {
				return &cached, nil
			}
		}
	}

	loans, err := s.loans.List(ctx, loan.Filter{})
	if err != nil {
		return nil, &loan.UpstreamError{Op: "list loans", Err: err}
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, &loan.UpstreamError{Op: "list users", Err: err}
	}

	out := &AdminStats{
		Summary: Compute(loans),
		Monthly: ComputeMonthly(loans),
		ByType:  ComputeByType(loans),
	}
	out.TotalUsers = len(users)
	for i := range users {
		if users[i].IsActive {
			out.ActiveUsers++
		}
	}

	if s.cache != nil {
		if b, err := json.Marshal(out); err == nil {
			if err := s.cache.Set(ctx, adminStatsKey, b, s.cacheTTL); err != nil {
				s.logger.Warn("stats cache set failed", "err", err)
			}
		}
	}
	return out, nil
}
