package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/domain/services"
	"shiptrack/internal/pkg/auth"
	"shiptrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errs.NewObjectNotFoundError("shipmentID", "abc"), http.StatusNotFound},
		{commands.ErrNotShipmentOwner, http.StatusUnauthorized},
		{commands.ErrNotAssignedPartner, http.StatusUnauthorized},
		{auth.ErrTokenInvalid, http.StatusUnauthorized},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrForbiddenRole, http.StatusForbidden},
		{services.ErrNoPartnerAvailable, http.StatusNotAcceptable},
		{shipment.ErrShipmentAlreadyTerminal, http.StatusConflict},
		{shipment.ErrReviewAlreadyAttached, http.StatusConflict},
		{commands.ErrEmailAlreadyRegistered, http.StatusConflict},
		{errs.NewValueIsRequiredError("content"), http.StatusUnprocessableEntity},
		{errs.NewValueIsOutOfRangeError("weight", 30.0, 0, 25), http.StatusUnprocessableEntity},
		{commands.ErrNothingToUpdate, http.StatusUnprocessableEntity},
		{fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.err.Error(), func(t *testing.T) {
			assert.Equal(t, test.want, statusCode(test.err))
		})
	}
}

func TestRequireRole(t *testing.T) {
	codec := auth.NewJWTCodec("test-secret")
	server := &Server{verifier: codec}

	var seenActor kernel.UUID
	handler := server.requireRole(auth.RolePartner)(func(ctx echo.Context) error {
		seenActor = actorID(ctx)
		return ctx.NoContent(http.StatusOK)
	})

	invoke := func(t *testing.T, authorization string) *httptest.ResponseRecorder {
		t.Helper()
		e := echo.New()
		req := httptest.NewRequest(http.MethodPatch, "/partners/me", nil)
		if authorization != "" {
			req.Header.Set(echo.HeaderAuthorization, authorization)
		}
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))
		return rec
	}

	t.Run("should pass valid partner token and expose actor id", func(t *testing.T) {
		partnerID := kernel.NewUUID()
		token, err := codec.Sign(partnerID.String(), auth.RolePartner, auth.PurposeAccess, time.Hour)
		require.NoError(t, err)

		rec := invoke(t, "Bearer "+token)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, partnerID.IsEqual(seenActor))
	})

	t.Run("should reject missing token", func(t *testing.T) {
		rec := invoke(t, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject wrong role", func(t *testing.T) {
		token, err := codec.Sign(kernel.NewUUID().String(), auth.RoleSeller, auth.PurposeAccess, time.Hour)
		require.NoError(t, err)

		rec := invoke(t, "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("should reject verification token used as access token", func(t *testing.T) {
		token, err := codec.Sign(kernel.NewUUID().String(), "", auth.PurposeVerify, time.Hour)
		require.NoError(t, err)

		rec := invoke(t, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject garbage token", func(t *testing.T) {
		rec := invoke(t, "Bearer not-a-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
