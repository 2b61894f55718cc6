package commands

import (
	"errors"
	"fmt"
	"strings"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrContentIsRequired     = errors.New("content is required")
	ErrClientEmailIsRequired = errors.New("client email is required")
)

// CreateShipmentCommand represents a request to place a new shipment.
// Encapsulates the parcel details, the destination, and the recipient's
// contact information.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewCreateShipmentCommand(shipmentID, sellerID, "ceramic mugs", 2.5, 10001, "client@example.com", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place shipment: %w", err)
//	}
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	sellerID    kernel.UUID
	content     string
	weight      float64
	destination kernel.ZipCode
	clientEmail string
	clientPhone *string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to place a new shipment.
// Validates identifiers, the parcel weight, the destination zip code, and the
// recipient email. Returns an error if any validation fails.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	sellerID kernel.UUID,
	content string,
	weight float64,
	destination int,
	clientEmail string,
	clientPhone *string,
) (CreateShipmentCommand, error) {
	command := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setSellerID(sellerID),
		command.setContent(content),
		command.setWeight(weight),
		command.setDestination(destination),
		command.setClientEmail(clientEmail),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	command.clientPhone = clientPhone
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// SellerID returns the identifier of the seller placing the shipment.
func (c CreateShipmentCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// Content returns the parcel description.
func (c CreateShipmentCommand) Content() string {
	return c.content
}

// Weight returns the parcel weight in kilograms.
func (c CreateShipmentCommand) Weight() float64 {
	return c.weight
}

// Destination returns the delivery zip code.
func (c CreateShipmentCommand) Destination() kernel.ZipCode {
	return c.destination
}

// ClientEmail returns the recipient's notification address.
func (c CreateShipmentCommand) ClientEmail() string {
	return c.clientEmail
}

// ClientPhone returns the recipient's optional phone number.
func (c CreateShipmentCommand) ClientPhone() *string {
	return c.clientPhone
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}

	c.sellerID = sellerID
	return nil
}

func (c *CreateShipmentCommand) setContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrContentIsRequired
	}

	c.content = content
	return nil
}

func (c *CreateShipmentCommand) setWeight(weight float64) error {
	if weight <= 0 || weight > shipment.WeightMaxKg {
		return errs.NewValueIsOutOfRangeError("weight", weight, 0, shipment.WeightMaxKg)
	}

	c.weight = weight
	return nil
}

func (c *CreateShipmentCommand) setDestination(destination int) error {
	zip, err := kernel.NewZipCode(destination)
	if err != nil {
		return err
	}

	c.destination = zip
	return nil
}

func (c *CreateShipmentCommand) setClientEmail(clientEmail string) error {
	if clientEmail == "" {
		return ErrClientEmailIsRequired
	}
	if !strings.Contains(clientEmail, "@") {
		return errs.NewValueIsInvalidErrorWithCause(
			"clientEmail", fmt.Errorf("%q is not an email address", clientEmail))
	}

	c.clientEmail = clientEmail
	return nil
}
