package commands

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrUpdateShipmentCommandIsNotConstructed = errors.New(
		"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
	)
	ErrNothingToUpdate = errors.New("update must carry a status, location, or estimated delivery")
)

// UpdateShipmentCommand represents a partner's progress update for a shipment.
// Every field beyond the identifiers is optional: a status and/or location
// produces a new timeline event, an estimated delivery changes the promise,
// and the description overrides the inferred event wording.
//
// Example:
//
//	status := shipment.StatusOutForDelivery
//	cmd, err := NewUpdateShipmentCommand(partnerID, shipmentID, &status, nil, "", nil)
//	if err != nil {
//	    return err
//	}
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	partnerID         kernel.UUID
	shipmentID        kernel.UUID
	status            *shipment.Status
	location          *kernel.ZipCode
	description       string
	estimatedDelivery *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command carrying a partner's update.
// At least one of status, location, or estimated delivery must be present.
func NewUpdateShipmentCommand(
	partnerID kernel.UUID,
	shipmentID kernel.UUID,
	status *shipment.Status,
	location *int,
	description string,
	estimatedDelivery *time.Time,
) (UpdateShipmentCommand, error) {
	command := UpdateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPartnerID(partnerID),
		command.setShipmentID(shipmentID),
		command.setStatus(status),
		command.setLocation(location),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	if command.status == nil && command.location == nil && estimatedDelivery == nil {
		return UpdateShipmentCommand{}, ErrNothingToUpdate
	}

	command.description = description
	command.estimatedDelivery = estimatedDelivery
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateShipmentCommandIsNotConstructed if validation fails.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// PartnerID returns the identifier of the partner submitting the update.
func (c UpdateShipmentCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// ShipmentID returns the identifier of the shipment being updated.
func (c UpdateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Status returns the new status, or nil when the update carries none.
func (c UpdateShipmentCommand) Status() *shipment.Status {
	return c.status
}

// Location returns the event location, or nil when the update carries none.
func (c UpdateShipmentCommand) Location() *kernel.ZipCode {
	return c.location
}

// Description returns the explicit event description, or "" to infer one.
func (c UpdateShipmentCommand) Description() string {
	return c.description
}

// EstimatedDelivery returns the new promised delivery time, or nil.
func (c UpdateShipmentCommand) EstimatedDelivery() *time.Time {
	return c.estimatedDelivery
}

func (c *UpdateShipmentCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *UpdateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentCommand) setStatus(status *shipment.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateShipmentCommand) setLocation(location *int) error {
	if location == nil {
		return nil
	}

	zip, err := kernel.NewZipCode(*location)
	if err != nil {
		return err
	}

	c.location = &zip
	return nil
}
