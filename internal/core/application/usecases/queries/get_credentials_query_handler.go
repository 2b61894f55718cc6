package queries

import (
	"context"
	"database/sql"
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/auth"
	"shiptrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCredentialsQueryHandler looks up a stored credential by email and role.
// Password comparison stays with the caller; this handler never sees the
// plaintext password.
type GetCredentialsQueryHandler struct {
	db *gorm.DB
}

// NewGetCredentialsQueryHandler creates a handler for credential lookups.
// Requires a GORM database connection for query execution.
func NewGetCredentialsQueryHandler(db *gorm.DB) GetCredentialsQueryHandler {
	return GetCredentialsQueryHandler{db: db}
}

// Handle executes the credential lookup.
// Returns errs.ObjectNotFoundError when no account with the email exists for
// the requested role.
func (h GetCredentialsQueryHandler) Handle(
	ctx context.Context,
	query GetCredentialsQuery,
) (GetCredentialsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCredentialsQueryResponse{}, err
	}

	table := "sellers"
	if query.Role() == auth.RolePartner {
		table = "partners"
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			password_hash,
			email_verified
		FROM `+table+`
		WHERE email = ?
	`, query.Email()).Row()

	var response GetCredentialsQueryResponse
	var id uuid.UUID

	err := row.Scan(
		&id,
		&response.Name,
		&response.PasswordHash,
		&response.EmailVerified,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetCredentialsQueryResponse{}, errs.NewObjectNotFoundError("email", query.Email())
	}
	if err != nil {
		return GetCredentialsQueryResponse{}, err
	}

	accountID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetCredentialsQueryResponse{}, err
	}
	response.ID = accountID

	return response, nil
}
