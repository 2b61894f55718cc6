package shipment

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

// ErrEventIsNotConstructed is returned when an Event instance was not created
// through the NewEvent constructor.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")

// Event is a single entry in a shipment's timeline. Events are append-only:
// once recorded they are never edited or removed.
//
// Each event carries a per-shipment sequence number assigned at append time.
// The sequence breaks ties between events with identical timestamps, making
// timeline ordering deterministic (newest appended wins).
type Event struct {
	// id is the unique identifier for the event
	id kernel.UUID

	// shipmentID links the event to its owning shipment
	shipmentID kernel.UUID

	// status is the shipment status this event records
	status Status

	// location is the zip code where the event occurred
	location kernel.ZipCode

	// description is a free-text note; derived from status when not supplied
	description string

	// sequence is the per-shipment append order, starting at 1
	sequence int

	// occurredAt is the event creation timestamp
	occurredAt time.Time

	guard guard.ConstructorGuard
}

// NewEvent creates a validated Event. All fields are required; location
// and description inference happens on the shipment aggregate before
// construction, so an Event is always complete.
func NewEvent(
	id kernel.UUID,
	shipmentID kernel.UUID,
	status Status,
	location kernel.ZipCode,
	description string,
	sequence int,
	occurredAt time.Time,
) (*Event, error) {
	event := &Event{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		event.setID(id),
		event.setShipmentID(shipmentID),
		event.setStatus(status),
		event.setLocation(location),
		event.setDescription(description),
		event.setSequence(sequence),
		event.setOccurredAt(occurredAt),
	); err != nil {
		return nil, err
	}

	return event, nil
}

// Validate ensures the Event instance was properly constructed through NewEvent.
func (e *Event) Validate() error {
	if e == nil {
		return ErrEventIsNotConstructed
	}
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// IsEqual compares two events by their unique identifiers.
func (e *Event) IsEqual(other *Event) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID {
	return e.id
}

// ShipmentID returns the identifier of the shipment this event belongs to.
func (e *Event) ShipmentID() kernel.UUID {
	return e.shipmentID
}

// Status returns the shipment status this event records.
func (e *Event) Status() Status {
	return e.status
}

// Location returns the zip code where the event occurred.
func (e *Event) Location() kernel.ZipCode {
	return e.location
}

// Description returns the event description.
func (e *Event) Description() string {
	return e.description
}

// Sequence returns the per-shipment append order of the event.
func (e *Event) Sequence() int {
	return e.sequence
}

// OccurredAt returns the event creation timestamp.
func (e *Event) OccurredAt() time.Time {
	return e.occurredAt
}

func (e *Event) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Event) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.shipmentID = id
	return nil
}

func (e *Event) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}

func (e *Event) setLocation(location kernel.ZipCode) error {
	if err := location.Validate(); err != nil {
		return err
	}
	e.location = location
	return nil
}

func (e *Event) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	e.description = description
	return nil
}

func (e *Event) setSequence(sequence int) error {
	if sequence < 1 {
		return errs.NewValueIsInvalidError("sequence")
	}
	e.sequence = sequence
	return nil
}

func (e *Event) setOccurredAt(occurredAt time.Time) error {
	if occurredAt.IsZero() {
		return errs.NewValueIsRequiredError("occurredAt")
	}
	e.occurredAt = occurredAt
	return nil
}
