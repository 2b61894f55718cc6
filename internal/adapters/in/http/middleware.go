package http

import (
	"strings"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// actorIDContextKey carries the authenticated account id through the request
// context.
const actorIDContextKey = "actor_id"

// requireRole guards an endpoint with bearer-token authentication.
// The token must be an access token carrying the given role; the subject id
// is parsed and stored in the request context for the handler.
func (s *Server) requireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return s.respondError(ctx, ErrMissingToken)
			}

			claims, err := s.verifier.Verify(token, auth.PurposeAccess)
			if err != nil {
				return s.respondError(ctx, err)
			}
			if claims.Role != role {
				return s.respondError(ctx, ErrForbiddenRole)
			}

			actorID, err := kernel.UUIDFromString(claims.Subject)
			if err != nil {
				return s.respondError(ctx, auth.ErrTokenInvalid)
			}

			ctx.Set(actorIDContextKey, actorID)
			return next(ctx)
		}
	}
}

// actorID returns the authenticated account id stored by requireRole.
func actorID(ctx echo.Context) kernel.UUID {
	id, _ := ctx.Get(actorIDContextKey).(kernel.UUID)
	return id
}
