package http

import (
	"net/http"

	mw "github.com/Jaswanth86/Credit/internal/adapter/middleware"
	loanDomain "github.com/Jaswanth86/Credit/internal/domain/loan"
	"github.com/Jaswanth86/Credit/internal/domain/user"
	adminuc "github.com/Jaswanth86/Credit/internal/usecase/admin"
	loanuc "github.com/Jaswanth86/Credit/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	uc    *adminuc.Usecase
	loans *loanuc.Usecase
}

func NewAdminHandler(uc *adminuc.Usecase, loans *loanuc.Usecase) *AdminHandler {
	return &AdminHandler{uc: uc, loans: loans}
}

// requireAdmin returns false after writing the refusal.
func requireAdmin(c echo.Context) bool {
	_, role, ok := mw.ActorFrom(c)
	if !ok {
		_ = c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing actor identity"})
		return false
	}
	if role != user.RoleAdmin {
		_ = c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
		return false
	}
	return true
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	if !requireAdmin(c) {
		return nil
	}
	out, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) ListUserLoans(c echo.Context) error {
	if !requireAdmin(c) {
		return nil
	}
	out, err := h.loans.List(c.Request().Context(), loanDomain.Filter{UserID: c.Param("user_id")})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type updateUserStatusReq struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

func (h *AdminHandler) UpdateUserStatus(c echo.Context) error {
	if !requireAdmin(c) {
		return nil
	}
	var req updateUserStatusReq
	if err := c.Bind(&req); err != nil || req.IsActive == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	out, err := h.uc.SetActive(c.Request().Context(), c.Param("user_id"), *req.IsActive)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type updateUserRoleReq struct {
	Role string `json:"role" validate:"required"`
}

func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	if !requireAdmin(c) {
		return nil
	}
	var req updateUserRoleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	out, err := h.uc.SetRole(c.Request().Context(), c.Param("user_id"), user.Role(req.Role))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
