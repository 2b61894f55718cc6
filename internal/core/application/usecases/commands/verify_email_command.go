package commands

import (
	"errors"

	"shiptrack/internal/pkg/guard"
)

var (
	ErrVerifyEmailCommandIsNotConstructed = errors.New(
		"VerifyEmailCommand must be created via NewVerifyEmailCommand constructor",
	)
	ErrTokenIsRequired = errors.New("token is required")
)

// VerifyEmailCommand carries the verification token from a signup link.
// The token identifies both the account and its role.
type VerifyEmailCommand struct { //nolint:recvcheck //using for validation
	token string

	guard guard.ConstructorGuard
}

// NewVerifyEmailCommand creates an email verification command.
func NewVerifyEmailCommand(token string) (VerifyEmailCommand, error) {
	command := VerifyEmailCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setToken(token); err != nil {
		return VerifyEmailCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyEmailCommand) Validate() error {
	return c.guard.Validate(ErrVerifyEmailCommandIsNotConstructed)
}

// Token returns the signed verification token.
func (c VerifyEmailCommand) Token() string {
	return c.token
}

func (c *VerifyEmailCommand) setToken(token string) error {
	if token == "" {
		return ErrTokenIsRequired
	}

	c.token = token
	return nil
}
