package account

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
)

type Principal int

const (
	ISADMIN = iota
	ISKNOWN
)

const (
	RequesterIdCtxKey      = "requesterId"
	RequesterIsAdminCtxKey = "requesterIsAdmin"
)

// RequesterHeader carries the client-remembered identity. There are no
// session tokens in this system, so the header is trusted as-is after
// being resolved against the user table.
const RequesterHeader = "X-Requester"

// IdentifyRequester resolves the requester header to a stored user and
// stashes id and admin flag into the request context. An unknown or
// missing requester passes through anonymously; Restrict decides later.
func (s *service) IdentifyRequester(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Account.IdentifyRequester")
		defer span.End()

		username := c.Request().Header.Get(RequesterHeader)
		if username != "" {
			user, err := s.repo.GetByUsername(ctx, username)
			if err == nil {
				c.Set(RequesterIdCtxKey, user.ID)
				c.Set(RequesterIsAdminCtxKey, user.IsAdmin)
				span.SetAttributes(attribute.String("Requester", user.Username))
				span.SetAttributes(attribute.Bool("RequesterIsAdmin", user.IsAdmin))
			} else {
				span.RecordError(err)
			}
		}

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// Restrict guards a route with a capability check on the resolved requester
func Restrict(principal Principal) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), "Account.Restrict")
			defer span.End()

			requesterId, known := c.Get(RequesterIdCtxKey).(uint)
			isAdmin, _ := c.Get(RequesterIsAdminCtxKey).(bool)

			switch principal {
			case ISADMIN:
				if !known || !isAdmin {
					return c.JSON(http.StatusForbidden, echo.Map{
						"error":  "you are not authorized to perform this action",
						"detail": "you are not admin",
					})
				}

			case ISKNOWN:
				if !known || requesterId == 0 {
					return c.JSON(http.StatusForbidden, echo.Map{
						"error":  "you are not authorized to perform this action",
						"detail": "you are not known",
					})
				}
			}

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
