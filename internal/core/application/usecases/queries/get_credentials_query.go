package queries

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/auth"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrGetCredentialsQueryIsNotConstructed = errors.New(
	"GetCredentialsQuery must be created via NewGetCredentialsQuery constructor",
)

// GetCredentialsQuery retrieves the stored credential for a login attempt.
// The role selects the account table; sellers and partners may share an email
// without colliding.
type GetCredentialsQuery struct {
	email string
	role  string

	guard guard.ConstructorGuard
}

// NewGetCredentialsQuery creates a credential lookup query.
func NewGetCredentialsQuery(email, role string) (GetCredentialsQuery, error) {
	if email == "" {
		return GetCredentialsQuery{}, errs.NewValueIsRequiredError("email")
	}
	if role != auth.RoleSeller && role != auth.RolePartner {
		return GetCredentialsQuery{}, errs.NewValueIsInvalidError("role")
	}

	return GetCredentialsQuery{
		email: email,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCredentialsQuery) Validate() error {
	return q.guard.Validate(ErrGetCredentialsQueryIsNotConstructed)
}

// Email returns the login email.
func (q GetCredentialsQuery) Email() string {
	return q.email
}

// Role returns the account role being authenticated.
func (q GetCredentialsQuery) Role() string {
	return q.role
}

// GetCredentialsQueryResponse carries what the login flow needs to check a
// password and issue an access token.
type GetCredentialsQueryResponse struct {
	ID            kernel.UUID
	Name          string
	PasswordHash  string
	EmailVerified bool
}
