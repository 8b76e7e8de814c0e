package loan

import (
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Terminal reports whether no further transition may leave s.
func Terminal(s Status) bool {
	return s == StatusApproved || s == StatusRejected
}

type Type string

const (
	TypePersonal  Type = "personal"
	TypeHome      Type = "home"
	TypeAuto      Type = "auto"
	TypeEducation Type = "education"
	TypeBusiness  Type = "business"
	TypeMortgage  Type = "mortgage"
)

// Types lists every valid loan category.
var Types = []Type{TypePersonal, TypeHome, TypeAuto, TypeEducation, TypeBusiness, TypeMortgage}

func ValidType(t Type) bool {
	for _, v := range Types {
		if t == v {
			return true
		}
	}
	return false
}

type Loan struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID string `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	UserID string `gorm:"size:32;index:idx_loans_user_status" json:"user_id"`

	// Contact snapshot captured at submission time.
	FullName string `gorm:"size:120" json:"full_name"`
	Email    string `gorm:"size:120" json:"email"`
	Phone    string `gorm:"size:20" json:"phone"`

	Amount         float64   `gorm:"type:decimal(18,2)" json:"amount"`
	LoanType       Type      `gorm:"type:enum('personal','home','auto','education','business','mortgage')" json:"loan_type"`
	InterestRate   float64   `gorm:"type:decimal(6,2)" json:"interest_rate"`
	DurationMonths int       `gorm:"column:duration_months" json:"duration_months"`
	DueDate        time.Time `gorm:"type:date" json:"due_date"`
	Purpose        string    `gorm:"type:text" json:"purpose"`

	Status     Status  `gorm:"type:enum('pending','verified','approved','rejected');default:'pending';index:idx_loans_user_status" json:"status"`
	AmountPaid float64 `gorm:"type:decimal(18,2);default:0" json:"amount_paid"`

	// Audit stamps. The *_By/*_At pairs are set exactly once by the
	// transition that produces the matching status and never cleared.
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	VerifiedBy      *string    `gorm:"size:32" json:"verified_by,omitempty"`
	VerifiedAt      *time.Time `json:"verified_at,omitempty"`
	ApprovedBy      *string    `gorm:"size:32" json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason *string    `gorm:"type:text" json:"rejection_reason,omitempty"`
}

func (Loan) TableName() string { return "loans" }
