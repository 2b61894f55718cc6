package commands

import (
	"errors"
	"fmt"
	"strings"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

// passwordMinLength is the shortest accepted signup password.
const passwordMinLength = 8

var (
	ErrSignupPartnerCommandIsNotConstructed = errors.New(
		"SignupPartnerCommand must be created via NewSignupPartnerCommand constructor",
	)
	ErrNameIsRequired     = errors.New("name is required")
	ErrPasswordIsTooShort = fmt.Errorf("password must be at least %d characters", passwordMinLength)
)

// SignupPartnerCommand represents a delivery partner registration request.
// Carries the partner's credentials, serviceable area, and capacity limit.
type SignupPartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID           kernel.UUID
	name                string
	email               string
	password            string
	serviceableZipCodes []kernel.ZipCode
	maxCapacity         int

	guard guard.ConstructorGuard
}

// NewSignupPartnerCommand creates a partner registration command.
// Validates credentials, the serviceable area, and the capacity limit.
func NewSignupPartnerCommand(
	partnerID kernel.UUID,
	name string,
	email string,
	password string,
	serviceableZipCodes []int,
	maxCapacity int,
) (SignupPartnerCommand, error) {
	command := SignupPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPartnerID(partnerID),
		command.setName(name),
		command.setEmail(email),
		command.setPassword(password),
		command.setServiceableZipCodes(serviceableZipCodes),
		command.setMaxCapacity(maxCapacity),
	); err != nil {
		return SignupPartnerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SignupPartnerCommand) Validate() error {
	return c.guard.Validate(ErrSignupPartnerCommandIsNotConstructed)
}

// PartnerID returns the unique identifier for the new partner.
func (c SignupPartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Name returns the partner's display name.
func (c SignupPartnerCommand) Name() string {
	return c.name
}

// Email returns the partner's login address.
func (c SignupPartnerCommand) Email() string {
	return c.email
}

// Password returns the plain-text signup password. It is hashed by the
// handler and never persisted as-is.
func (c SignupPartnerCommand) Password() string {
	return c.password
}

// ServiceableZipCodes returns the validated serviceable area.
func (c SignupPartnerCommand) ServiceableZipCodes() []kernel.ZipCode {
	return c.serviceableZipCodes
}

// MaxCapacity returns the limit on concurrently active shipments.
func (c SignupPartnerCommand) MaxCapacity() int {
	return c.maxCapacity
}

func (c *SignupPartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *SignupPartnerCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *SignupPartnerCommand) setEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause(
			"email", fmt.Errorf("%q is not an email address", email))
	}

	c.email = email
	return nil
}

func (c *SignupPartnerCommand) setPassword(password string) error {
	if len(password) < passwordMinLength {
		return ErrPasswordIsTooShort
	}

	c.password = password
	return nil
}

func (c *SignupPartnerCommand) setServiceableZipCodes(values []int) error {
	if len(values) == 0 {
		return errs.NewValueIsRequiredError("serviceableZipCodes")
	}

	zips := make([]kernel.ZipCode, 0, len(values))
	for _, value := range values {
		zip, err := kernel.NewZipCode(value)
		if err != nil {
			return err
		}
		zips = append(zips, zip)
	}

	c.serviceableZipCodes = zips
	return nil
}

func (c *SignupPartnerCommand) setMaxCapacity(maxCapacity int) error {
	if maxCapacity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxCapacity", fmt.Errorf("%d is negative", maxCapacity))
	}

	c.maxCapacity = maxCapacity
	return nil
}
