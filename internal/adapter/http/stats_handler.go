package http

import (
	"net/http"

	mw "github.com/Jaswanth86/Credit/internal/adapter/middleware"
	"github.com/Jaswanth86/Credit/internal/domain/user"
	"github.com/Jaswanth86/Credit/internal/usecase/stats"

	"github.com/labstack/echo/v4"
)

type StatsHandler struct{ svc *stats.Service }

func NewStatsHandler(svc *stats.Service) *StatsHandler { return &StatsHandler{svc: svc} }

// GetStats scopes the figures by the caller's role: applicants get "my
// loans", verifiers the pending queue, admins the whole system.
func (h *StatsHandler) GetStats(c echo.Context) error {
	actorID, role, ok := mw.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing actor identity"})
	}

	ctx := c.Request().Context()
	switch role {
	case user.RoleUser:
		out, err := h.svc.ForApplicant(ctx, actorID)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(http.StatusOK, out)
	case user.RoleVerifier:
		out, err := h.svc.ForVerifier(ctx)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(http.StatusOK, out)
	case user.RoleAdmin:
		out, err := h.svc.ForAdmin(ctx)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(http.StatusOK, out)
	default:
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	}
}
