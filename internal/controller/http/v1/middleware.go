package v1

import "github.com/labstack/echo/v4"

const (
	actorHeader     = "X-User-ID"
	actorContextKey = "actor"
)

// Identity resolves the caller's identity from the request, or leaves it
// absent. Verification belongs to the identity provider in front of this
// service; here the id is only used for authorship stamping and the
// auth-required gate.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if actor := c.Request().Header.Get(actorHeader); actor != "" {
				c.Set(actorContextKey, actor)
			}
			return next(c)
		}
	}
}

func actorFrom(c echo.Context) string {
	if actor, ok := c.Get(actorContextKey).(string); ok {
		return actor
	}
	return ""
}
