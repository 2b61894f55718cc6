package http

import (
	"errors"
	"net/http"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/partner"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/domain/services"
	"shiptrack/internal/pkg/auth"
	"shiptrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Errors raised by the HTTP layer itself rather than the application core.
var (
	// ErrInvalidCredentials deliberately does not say whether the email or the
	// password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailNotVerified is returned when a partner logs in before completing
	// email verification.
	ErrEmailNotVerified = errors.New("email is not verified")

	// ErrMissingToken is returned when a protected endpoint is called without
	// a bearer token.
	ErrMissingToken = errors.New("authorization token is required")

	// ErrForbiddenRole is returned when the token role does not match the
	// endpoint's required role.
	ErrForbiddenRole = errors.New("this endpoint is not available for the token role")
)

// Error is the JSON body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps an application error onto an HTTP status and writes the
// JSON error body.
func (s *Server) respondError(ctx echo.Context, err error) error {
	code := statusCode(err)
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

// statusCode classifies application errors into HTTP statuses.
// Unrecognized errors map to 500 so internal failures are never mistaken for
// client mistakes.
func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound

	case errors.Is(err, commands.ErrNotShipmentOwner),
		errors.Is(err, commands.ErrNotAssignedPartner),
		errors.Is(err, auth.ErrTokenInvalid),
		errors.Is(err, auth.ErrTokenPurposeMismatch),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrEmailNotVerified),
		errors.Is(err, ErrMissingToken):
		return http.StatusUnauthorized

	case errors.Is(err, ErrForbiddenRole):
		return http.StatusForbidden

	case errors.Is(err, services.ErrNoPartnerAvailable):
		return http.StatusNotAcceptable

	case errors.Is(err, shipment.ErrShipmentAlreadyTerminal),
		errors.Is(err, shipment.ErrShipmentNotTerminal),
		errors.Is(err, shipment.ErrReviewAlreadyAttached),
		errors.Is(err, shipment.ErrPartnerAlreadyAssigned),
		errors.Is(err, partner.ErrCapacityBelowActiveLoad),
		errors.Is(err, partner.ErrPartnerAtCapacity),
		errors.Is(err, commands.ErrEmailAlreadyRegistered):
		return http.StatusConflict

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrNothingToUpdate),
		errors.Is(err, commands.ErrClientEmailIsRequired),
		errors.Is(err, commands.ErrNameIsRequired),
		errors.Is(err, commands.ErrPasswordIsTooShort),
		errors.Is(err, commands.ErrTokenIsRequired):
		return http.StatusUnprocessableEntity

	default:
		return http.StatusInternalServerError
	}
}
