package commands

import (
	"errors"
	"fmt"
	"strings"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrSignupSellerCommandIsNotConstructed = errors.New(
	"SignupSellerCommand must be created via NewSignupSellerCommand constructor",
)

// SignupSellerCommand represents a seller registration request.
// The origin zip code is optional; when set it becomes the first-event
// location for shipments the seller places.
type SignupSellerCommand struct { //nolint:recvcheck //using for validation
	sellerID kernel.UUID
	name     string
	email    string
	password string
	zipCode  *kernel.ZipCode

	guard guard.ConstructorGuard
}

// NewSignupSellerCommand creates a seller registration command.
func NewSignupSellerCommand(
	sellerID kernel.UUID,
	name string,
	email string,
	password string,
	zipCode *int,
) (SignupSellerCommand, error) {
	command := SignupSellerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSellerID(sellerID),
		command.setName(name),
		command.setEmail(email),
		command.setPassword(password),
		command.setZipCode(zipCode),
	); err != nil {
		return SignupSellerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SignupSellerCommand) Validate() error {
	return c.guard.Validate(ErrSignupSellerCommandIsNotConstructed)
}

// SellerID returns the unique identifier for the new seller.
func (c SignupSellerCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// Name returns the seller's display name.
func (c SignupSellerCommand) Name() string {
	return c.name
}

// Email returns the seller's login address.
func (c SignupSellerCommand) Email() string {
	return c.email
}

// Password returns the plain-text signup password. It is hashed by the
// handler and never persisted as-is.
func (c SignupSellerCommand) Password() string {
	return c.password
}

// ZipCode returns the optional origin zip code.
func (c SignupSellerCommand) ZipCode() *kernel.ZipCode {
	return c.zipCode
}

func (c *SignupSellerCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}

	c.sellerID = sellerID
	return nil
}

func (c *SignupSellerCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *SignupSellerCommand) setEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause(
			"email", fmt.Errorf("%q is not an email address", email))
	}

	c.email = email
	return nil
}

func (c *SignupSellerCommand) setPassword(password string) error {
	if len(password) < passwordMinLength {
		return ErrPasswordIsTooShort
	}

	c.password = password
	return nil
}

func (c *SignupSellerCommand) setZipCode(value *int) error {
	if value == nil {
		return nil
	}

	zip, err := kernel.NewZipCode(*value)
	if err != nil {
		return err
	}

	c.zipCode = &zip
	return nil
}
