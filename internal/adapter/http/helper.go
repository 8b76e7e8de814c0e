package http

import (
	"errors"
	"net/http"

	loanDomain "github.com/Jaswanth86/Credit/internal/domain/loan"
	userDomain "github.com/Jaswanth86/Credit/internal/domain/user"

	"github.com/labstack/echo/v4"
)

// writeDomainError maps the error taxonomy onto HTTP statuses:
// ValidationError 422, InvalidTransition 409, NotFound 404, Forbidden 403,
// Upstream 503 (retryable), anything else 500.
func writeDomainError(c echo.Context, err error) error {
	var verr *loanDomain.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: verr.Fields,
		})
	}

	var terr *loanDomain.TransitionError
	if errors.As(err, &terr) {
		return c.JSON(http.StatusConflict, map[string]string{
			"error":          "invalid transition",
			"operation":      string(terr.Op),
			"current_status": string(terr.Current),
		})
	}

	var uerr *loanDomain.UpstreamError
	switch {
	case errors.Is(err, loanDomain.ErrNotFound), errors.Is(err, userDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, loanDomain.ErrForbidden):
		return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
	case errors.Is(err, loanDomain.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, map[string]string{"error": "invalid transition"})
	case errors.As(err, &uerr):
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "upstream unavailable, retry later"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
