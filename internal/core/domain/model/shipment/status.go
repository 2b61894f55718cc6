package shipment

import (
	"fmt"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions to ensure
// shipments follow the delivery workflow.
//
// State transitions:
//
//	Placed ──> InTransit ──> OutForDelivery ──> Delivered
//	   │            │               │
//	   └────────────┴───────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal; no transition leaves them.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPlaced is the initial status when a shipment is created and a
	// delivery partner has been assigned.
	StatusPlaced

	// StatusInTransit indicates the shipment is moving between facilities.
	// Transitions into this status are considered too frequent to notify on.
	StatusInTransit

	// StatusOutForDelivery indicates the shipment is on its final leg.
	StatusOutForDelivery

	// StatusDelivered indicates successful delivery. Terminal.
	StatusDelivered

	// StatusCancelled indicates the owning seller cancelled the shipment. Terminal.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "unknown",
		StatusPlaced:         "placed",
		StatusInTransit:      "in_transit",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusCancelled:      "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPlaced:         "placed",
		StatusInTransit:      "in_transit",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusCancelled:      "cancelled",
	}
}

// StatusFromString parses a wire representation into a Status.
// Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Placed, InTransit, OutForDelivery, Delivered, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Returns "unknown" for invalid status values.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is defined away from
// this status. Delivered and Cancelled are terminal.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// DefaultDescription derives the event description recorded when no
// explicit description is supplied:
//
//	placed           -> "assigned delivery partner"
//	out_for_delivery -> "shipment out for delivery"
//	delivered        -> "successfully delivered"
//	cancelled        -> "cancelled by seller"
//	in_transit       -> "scanned at {location}"
//	anything else    -> "status updated to {status}"
func (s Status) DefaultDescription(location kernel.ZipCode) string {
	switch s {
	case StatusPlaced:
		return "assigned delivery partner"
	case StatusOutForDelivery:
		return "shipment out for delivery"
	case StatusDelivered:
		return "successfully delivered"
	case StatusCancelled:
		return "cancelled by seller"
	case StatusInTransit:
		return fmt.Sprintf("scanned at %s", location)
	default:
		return fmt.Sprintf("status updated to %s", s)
	}
}
