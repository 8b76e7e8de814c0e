package http

import (
	"net/http"
	"time"

	mw "github.com/Jaswanth86/Credit/internal/adapter/middleware"
	loanDomain "github.com/Jaswanth86/Credit/internal/domain/loan"
	"github.com/Jaswanth86/Credit/internal/domain/user"
	loanuc "github.com/Jaswanth86/Credit/internal/usecase/loan"
	"github.com/Jaswanth86/Credit/pkg/metrics"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct {
	uc      *loanuc.Usecase
	metrics *metrics.Collector
}

func NewLoanHandler(uc *loanuc.Usecase, m *metrics.Collector) *LoanHandler {
	return &LoanHandler{uc: uc, metrics: m}
}

type submitLoanReq struct {
	FullName       string  `json:"full_name"       validate:"required"`
	Email          string  `json:"email"           validate:"required,email"`
	Phone          string  `json:"phone"           validate:"required,phone"`
	Amount         float64 `json:"amount"          validate:"required,gt=0"`
	LoanType       string  `json:"loan_type"       validate:"required,loantype"`
	InterestRate   float64 `json:"interest_rate"   validate:"gte=0"`
	DurationMonths int     `json:"duration_months" validate:"required,gte=1"`
	// Canonical date `YYYY-MM-DD`
	DueDate string `json:"due_date" validate:"required,datetime=2006-01-02"`
	Purpose string `json:"purpose"  validate:"required"`
}

func (h *LoanHandler) SubmitLoan(c echo.Context) error {
	actorID, role, ok := mw.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing actor identity"})
	}

	var req submitLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dueDate, _ := time.Parse("2006-01-02", req.DueDate)

	dto, err := h.uc.Submit(c.Request().Context(), loanuc.SubmitInput{
		UserID:         actorID,
		ActorRole:      role,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Amount:         req.Amount,
		LoanType:       loanDomain.Type(req.LoanType),
		InterestRate:   req.InterestRate,
		DurationMonths: req.DurationMonths,
		DueDate:        dueDate,
		Purpose:        req.Purpose,
	})
	h.metrics.RecordSubmission(err)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	actorID, role, ok := mw.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing actor identity"})
	}
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	// Applicants only see their own records.
	if role == user.RoleUser && dto.UserID != actorID {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	actorID, role, ok := mw.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing actor identity"})
	}

	f := loanDomain.Filter{
		Status:   loanDomain.Status(c.QueryParam("status")),
		LoanType: loanDomain.Type(c.QueryParam("loan_type")),
		UserID:   c.QueryParam("user_id"),
	}
	// Applicants are always scoped to their own loans.
	if role == user.RoleUser {
		f.UserID = actorID
	}

	out, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type transitionReq struct {
	Notes string `json:"notes"`
}

func (h *LoanHandler) VerifyLoan(c echo.Context) error {
	return h.transition(c, loanDomain.OpVerify)
}

func (h *LoanHandler) ApproveLoan(c echo.Context) error {
	return h.transition(c, loanDomain.OpApprove)
}

func (h *LoanHandler) RejectLoan(c echo.Context) error {
	return h.transition(c, loanDomain.OpReject)
}

func (h *LoanHandler) transition(c echo.Context, op loanDomain.Operation) error {
	actorID, role, ok := mw.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing actor identity"})
	}
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req transitionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	in := loanuc.TransitionInput{LoanID: loanID, ActorID: actorID, ActorRole: role, Notes: req.Notes}

	var (
		dto *loanuc.LoanDTO
		err error
	)
	switch op {
	case loanDomain.OpVerify:
		dto, err = h.uc.Verify(c.Request().Context(), in)
	case loanDomain.OpApprove:
		dto, err = h.uc.Approve(c.Request().Context(), in)
	case loanDomain.OpReject:
		dto, err = h.uc.Reject(c.Request().Context(), in)
	}
	h.metrics.RecordTransition(string(op), err)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
