package commands

import (
	"errors"
	"fmt"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrUpdatePartnerCommandIsNotConstructed = errors.New(
	"UpdatePartnerCommand must be created via NewUpdatePartnerCommand constructor",
)

// UpdatePartnerCommand represents a partner's profile update.
// Both the serviceable area and the capacity limit are optional; at least one
// must be present.
type UpdatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID           kernel.UUID
	serviceableZipCodes []kernel.ZipCode
	maxCapacity         *int

	guard guard.ConstructorGuard
}

// NewUpdatePartnerCommand creates a partner profile update command.
func NewUpdatePartnerCommand(
	partnerID kernel.UUID,
	serviceableZipCodes []int,
	maxCapacity *int,
) (UpdatePartnerCommand, error) {
	command := UpdatePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPartnerID(partnerID),
		command.setServiceableZipCodes(serviceableZipCodes),
		command.setMaxCapacity(maxCapacity),
	); err != nil {
		return UpdatePartnerCommand{}, err
	}

	if command.serviceableZipCodes == nil && command.maxCapacity == nil {
		return UpdatePartnerCommand{}, ErrNothingToUpdate
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePartnerCommandIsNotConstructed)
}

// PartnerID returns the identifier of the partner being updated.
func (c UpdatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// ServiceableZipCodes returns the new serviceable area, or nil to keep the
// current one.
func (c UpdatePartnerCommand) ServiceableZipCodes() []kernel.ZipCode {
	return c.serviceableZipCodes
}

// MaxCapacity returns the new capacity limit, or nil to keep the current one.
func (c UpdatePartnerCommand) MaxCapacity() *int {
	return c.maxCapacity
}

func (c *UpdatePartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *UpdatePartnerCommand) setServiceableZipCodes(values []int) error {
	if values == nil {
		return nil
	}
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

func (c *UpdatePartnerCommand) setMaxCapacity(maxCapacity *int) error {
	if maxCapacity == nil {
		return nil
	}
	if *maxCapacity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxCapacity", fmt.Errorf("%d is negative", *maxCapacity))
	}

	c.maxCapacity = maxCapacity
	return nil
}
