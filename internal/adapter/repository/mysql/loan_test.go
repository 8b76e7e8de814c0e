package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	loanDomain "github.com/Jaswanth86/Credit/internal/domain/loan"
	"github.com/Jaswanth86/Credit/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no ENUM) ---

type loanSQLite struct {
	ID              uint64     `gorm:"primaryKey;column:id"`
	LoanID          string     `gorm:"size:32;column:loan_id"`
	UserID          string     `gorm:"size:32;column:user_id"`
	FullName        string     `gorm:"column:full_name"`
	Email           string     `gorm:"column:email"`
	Phone           string     `gorm:"column:phone"`
	Amount          float64    `gorm:"column:amount"`
	LoanType        string     `gorm:"type:text;column:loan_type"` // ← no enum
	InterestRate    float64    `gorm:"column:interest_rate"`
	DurationMonths  int        `gorm:"column:duration_months"`
	DueDate         time.Time  `gorm:"column:due_date"`
	Purpose         string     `gorm:"column:purpose"`
	Status          string     `gorm:"type:text;column:status"` // ← no enum
	AmountPaid      float64    `gorm:"column:amount_paid"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
	VerifiedBy      *string    `gorm:"column:verified_by"`
	VerifiedAt      *time.Time `gorm:"column:verified_at"`
	ApprovedBy      *string    `gorm:"column:approved_by"`
	ApprovedAt      *time.Time `gorm:"column:approved_at"`
	RejectionReason *string    `gorm:"column:rejection_reason"`
}

func (loanSQLite) TableName() string { return "loans" }

type userSQLite struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	UserID     string    `gorm:"size:32;column:user_id"`
	FullName   string    `gorm:"column:full_name"`
	Email      string    `gorm:"column:email"`
	Role       string    `gorm:"type:text;column:role"` // ← no enum
	IsActive   bool      `gorm:"column:is_active"`
	IsVerified bool      `gorm:"column:is_verified"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (userSQLite) TableName() string { return "users" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// IMPORTANT: migrate the sqlite-safe models, NOT the domain models.
	if err := db.AutoMigrate(&loanSQLite{}, &userSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeLoan(loanID, userID string) *loanDomain.Loan {
	return &loanDomain.Loan{
		LoanID:         loanID,
		UserID:         userID,
		FullName:       "Asha Rao",
		Email:          "asha@example.com",
		Phone:          "+14155550123",
		Amount:         5000,
		LoanType:       loanDomain.TypePersonal,
		InterestRate:   5,
		DurationMonths: 12,
		DueDate:        time.Now().UTC().AddDate(1, 0, 0),
		Purpose:        "working capital",
		Status:         loanDomain.StatusPending,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
}

func TestCreateAndGetByLoanID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	loanID := id.NewID32()
	owner := id.NewID32()

	l := makeLoan(loanID, owner)
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.LoanID != loanID || got.UserID != owner {
		t.Errorf("unexpected loan: %+v", got)
	}
	if got.Status != loanDomain.StatusPending {
		t.Errorf("status = %s, want pending", got.Status)
	}
}

func TestList_Filters(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	ownerA := id.NewID32()
	ownerB := id.NewID32()

	a := makeLoan(id.NewID32(), ownerA)
	b := makeLoan(id.NewID32(), ownerA)
	b.Status = loanDomain.StatusVerified
	b.LoanType = loanDomain.TypeAuto
	c := makeLoan(id.NewID32(), ownerB)
	for _, l := range []*loanDomain.Loan{a, b, c} {
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	byOwner, err := repo.List(ctx, loanDomain.Filter{UserID: ownerA})
	if err != nil {
		t.Fatalf("List by owner: %v", err)
	}
	if len(byOwner) != 2 {
		t.Fatalf("owner list len = %d, want 2", len(byOwner))
	}

	pending, err := repo.List(ctx, loanDomain.Filter{Status: loanDomain.StatusPending})
	if err != nil {
		t.Fatalf("List by status: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("pending list len = %d, want 2", len(pending))
	}

	autos, err := repo.List(ctx, loanDomain.Filter{LoanType: loanDomain.TypeAuto, UserID: ownerA})
	if err != nil {
		t.Fatalf("List by type: %v", err)
	}
	if len(autos) != 1 || autos[0].LoanID != b.LoanID {
		t.Fatalf("auto list = %+v", autos)
	}

	all, err := repo.List(ctx, loanDomain.Filter{})
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("all list len = %d, want 3", len(all))
	}
}

func TestSaveTransition_CompareAndSet(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan(id.NewID32(), id.NewID32())
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	now := time.Now().UTC()
	verifier := id.NewID32()
	l.Status = loanDomain.StatusVerified
	l.UpdatedAt = now
	l.VerifiedBy = &verifier
	l.VerifiedAt = &now

	if err := repo.SaveTransition(ctx, l, loanDomain.StatusPending); err != nil {
		t.Fatalf("SaveTransition: %v", err)
	}

	got, err := repo.GetByLoanID(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.Status != loanDomain.StatusVerified {
		t.Fatalf("status = %s, want verified", got.Status)
	}
	if got.VerifiedBy == nil || *got.VerifiedBy != verifier {
		t.Fatalf("verified_by not stamped: %+v", got)
	}
}

func TestSaveTransition_StaleGuardWritesNothing(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan(id.NewID32(), id.NewID32())
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// First transition wins.
	now := time.Now().UTC()
	verifier := id.NewID32()
	win := *l
	win.Status = loanDomain.StatusVerified
	win.UpdatedAt = now
	win.VerifiedBy = &verifier
	win.VerifiedAt = &now
	if err := repo.SaveTransition(ctx, &win, loanDomain.StatusPending); err != nil {
		t.Fatalf("winning SaveTransition: %v", err)
	}

	// Second transition still believes the loan is pending: CAS must miss.
	lose := *l
	reason := "duplicate"
	lose.Status = loanDomain.StatusRejected
	lose.RejectionReason = &reason
	err := repo.SaveTransition(ctx, &lose, loanDomain.StatusPending)
	if !errors.Is(err, loanDomain.ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition, got %v", err)
	}

	got, err := repo.GetByLoanID(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.Status != loanDomain.StatusVerified {
		t.Fatalf("loser overwrote status: %s", got.Status)
	}
	if got.RejectionReason != nil {
		t.Fatalf("loser leaked fields: %+v", got.RejectionReason)
	}
}

func TestSaveTransition_NeverClearsEarlierStamps(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan(id.NewID32(), id.NewID32())
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	now := time.Now().UTC()
	verifier := id.NewID32()
	l.Status = loanDomain.StatusVerified
	l.VerifiedBy = &verifier
	l.VerifiedAt = &now
	l.UpdatedAt = now
	if err := repo.SaveTransition(ctx, l, loanDomain.StatusPending); err != nil {
		t.Fatalf("verify: %v", err)
	}

	admin := id.NewID32()
	later := now.Add(time.Hour)
	l.Status = loanDomain.StatusApproved
	l.ApprovedBy = &admin
	l.ApprovedAt = &later
	l.UpdatedAt = later
	if err := repo.SaveTransition(ctx, l, loanDomain.StatusVerified); err != nil {
		t.Fatalf("approve: %v", err)
	}

	got, err := repo.GetByLoanID(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.VerifiedBy == nil || *got.VerifiedBy != verifier {
		t.Fatalf("verification stamp cleared: %+v", got)
	}
	if got.ApprovedBy == nil || *got.ApprovedBy != admin {
		t.Fatalf("approval stamp missing: %+v", got)
	}
}
