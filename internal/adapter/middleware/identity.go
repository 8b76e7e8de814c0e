package middleware

import (
	"net/http"
	"strings"

	"github.com/Jaswanth86/Credit/internal/domain/user"

	"github.com/labstack/echo/v4"
)

// Actor identity travels in headers; authentication itself happens upstream
// and these values are trusted input here.
const (
	HeaderActorID   = "Ax-Actor-Id"
	HeaderActorRole = "Ax-Actor-Role"

	ctxActorID   = "actor_id"
	ctxActorRole = "actor_role"
)

// ActorMiddleware requires a well-formed actor identity on every request.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := strings.TrimSpace(c.Request().Header.Get(HeaderActorID))
			if !reHex32.MatchString(id) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing or invalid " + HeaderActorID})
			}
			role := user.Role(strings.TrimSpace(c.Request().Header.Get(HeaderActorRole)))
			if !user.ValidRole(role) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing or invalid " + HeaderActorRole})
			}
			c.Set(ctxActorID, id)
			c.Set(ctxActorRole, role)
			return next(c)
		}
	}
}

// ActorFrom returns the identity stored by ActorMiddleware.
func ActorFrom(c echo.Context) (string, user.Role, bool) {
	id, _ := c.Get(ctxActorID).(string)
	role, _ := c.Get(ctxActorRole).(user.Role)
	if id == "" || !user.ValidRole(role) {
		return "", "", false
	}
	return id, role, true
}

// SetActor injects an identity directly; test helper.
func SetActor(c echo.Context, id string, role user.Role) {
	c.Set(ctxActorID, id)
	c.Set(ctxActorRole, role)
}
