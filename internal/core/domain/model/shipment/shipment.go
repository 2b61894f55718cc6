package shipment

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

const (
	// WeightMaxKg is the heaviest parcel the system accepts, in kilograms.
	WeightMaxKg = 25.0

	// EstimatedDeliveryLead is the default promise window added to the
	// creation time when a shipment is placed.
	EstimatedDeliveryLead = 72 * time.Hour
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not created
	// through the NewShipment or RestoreShipment factory methods.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrShipmentAlreadyTerminal is returned when an operation attempts to
	// move a shipment that has already reached Delivered or Cancelled.
	ErrShipmentAlreadyTerminal = errors.New("shipment is already in a terminal status")

	// ErrPartnerAlreadyAssigned is returned when a delivery partner is assigned
	// to a shipment that already has one. Assignment is immutable.
	ErrPartnerAlreadyAssigned = errors.New("shipment already has a delivery partner assigned")

	// ErrShipmentNotTerminal is returned when a review is attached before the
	// shipment reached a terminal status.
	ErrShipmentNotTerminal = errors.New("shipment has not reached a terminal status")

	// ErrReviewAlreadyAttached is returned when a second review is attached.
	// A shipment carries at most one review.
	ErrReviewAlreadyAttached = errors.New("shipment already has a review")
)

// Shipment is the aggregate root of the tracking domain. It owns the parcel
// description, the assigned delivery partner, the append-only timeline of
// events, and the optional client review.
//
// Shipment follows these invariants:
//   - Weight is positive and never exceeds WeightMaxKg
//   - The destination zip code is valid
//   - The current status is derived from the newest timeline event; a shipment
//     with no events is considered Placed
//   - Delivered and Cancelled are terminal: no event may be recorded after them
//   - The partner assignment, once set, never changes
//   - At most one review, attached only after a terminal status
//
// All state changes flow through methods on the aggregate so the invariants
// hold at every point in the lifecycle.
type Shipment struct {
	// id is the unique identifier for the shipment
	id kernel.UUID

	// content is the human-readable description of the parcel
	content string

	// weight is the parcel weight in kilograms
	weight float64

	// destination is the delivery zip code
	destination kernel.ZipCode

	// clientEmail is the recipient's notification address
	clientEmail string

	// clientPhone is the recipient's optional phone number
	clientPhone *string

	// sellerID identifies the seller that placed the shipment
	sellerID kernel.UUID

	// partnerID is the assigned delivery partner (nil until assignment)
	partnerID *kernel.UUID

	// estimatedDelivery is the promised delivery time
	estimatedDelivery time.Time

	// createdAt is the shipment creation timestamp
	createdAt time.Time

	// events is the append-only timeline, in append order
	events []*Event

	// review is the client's one-time rating (nil until submitted)
	review *Review

	guard guard.ConstructorGuard
}

// NewShipment creates a new Shipment with validation. The estimated delivery
// time is derived from the creation time plus EstimatedDeliveryLead; the
// timeline starts empty and the partner unassigned.
//
// Parameters:
//   - id: Unique identifier for the shipment (must be a valid UUID)
//   - content: Description of the parcel (required)
//   - weight: Parcel weight in kilograms (0 < weight <= WeightMaxKg)
//   - destination: Delivery zip code
//   - clientEmail: Recipient notification address (required)
//   - clientPhone: Optional recipient phone number
//   - sellerID: The seller placing the shipment
//   - createdAt: Creation timestamp
//
// Returns the created shipment, or a joined validation error describing every
// invalid parameter.
func NewShipment(
	id kernel.UUID,
	content string,
	weight float64,
	destination kernel.ZipCode,
	clientEmail string,
	clientPhone *string,
	sellerID kernel.UUID,
	createdAt time.Time,
) (*Shipment, error) {
	shipment := &Shipment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipment.setID(id),
		shipment.setContent(content),
		shipment.setWeight(weight),
		shipment.setDestination(destination),
		shipment.setClientEmail(clientEmail),
		shipment.setSellerID(sellerID),
		shipment.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	shipment.clientPhone = clientPhone
	shipment.estimatedDelivery = createdAt.Add(EstimatedDeliveryLead)
	return shipment, nil
}

// RestoreShipment reconstructs a Shipment from persistence. Unlike NewShipment
// it accepts the full persisted state, including the assigned partner, the
// stored estimated delivery time, the recorded timeline, and the review.
//
// The same field validations apply; events are kept in the order supplied,
// which must be append order.
func RestoreShipment(
	id kernel.UUID,
	content string,
	weight float64,
	destination kernel.ZipCode,
	clientEmail string,
	clientPhone *string,
	sellerID kernel.UUID,
	partnerID *kernel.UUID,
	estimatedDelivery time.Time,
	createdAt time.Time,
	events []*Event,
	review *Review,
) (*Shipment, error) {
	shipment, err := NewShipment(id, content, weight, destination, clientEmail, clientPhone, sellerID, createdAt)
	if err != nil {
		return nil, err
	}

	if partnerID != nil {
		if err := shipment.AssignPartner(*partnerID); err != nil {
			return nil, err
		}
	}
	if !estimatedDelivery.IsZero() {
		shipment.estimatedDelivery = estimatedDelivery
	}

	for _, event := range events {
		if err := event.Validate(); err != nil {
			return nil, err
		}
	}
	shipment.events = events

	if review != nil {
		if err := review.Validate(); err != nil {
			return nil, err
		}
		shipment.review = review
	}

	return shipment, nil
}

// Validate ensures the Shipment instance was properly constructed through
// NewShipment or RestoreShipment. Call this when reconstructing shipments
// from persistence to ensure data integrity.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// Content returns the parcel description.
func (s *Shipment) Content() string {
	return s.content
}

// Weight returns the parcel weight in kilograms.
func (s *Shipment) Weight() float64 {
	return s.weight
}

// Destination returns the delivery zip code.
func (s *Shipment) Destination() kernel.ZipCode {
	return s.destination
}

// ClientEmail returns the recipient's notification address.
func (s *Shipment) ClientEmail() string {
	return s.clientEmail
}

// ClientPhone returns the recipient's phone number, or nil.
func (s *Shipment) ClientPhone() *string {
	return s.clientPhone
}

// SellerID returns the identifier of the seller that placed the shipment.
func (s *Shipment) SellerID() kernel.UUID {
	return s.sellerID
}

// Partner returns the assigned delivery partner's ID.
// Returns nil if no partner is assigned yet.
func (s *Shipment) Partner() *kernel.UUID {
	return s.partnerID
}

// EstimatedDelivery returns the promised delivery time.
func (s *Shipment) EstimatedDelivery() time.Time {
	return s.estimatedDelivery
}

// CreatedAt returns the shipment creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// Review returns the attached client review, or nil.
func (s *Shipment) Review() *Review {
	return s.review
}

// Events returns the timeline in append order. The returned slice is a copy;
// mutating it does not affect the aggregate.
func (s *Shipment) Events() []*Event {
	events := make([]*Event, len(s.events))
	copy(events, s.events)
	return events
}

// Status returns the shipment's current status, derived from the newest
// timeline event. A shipment with no events yet is Placed.
func (s *Shipment) Status() Status {
	newest := s.newestEvent()
	if newest == nil {
		return StatusPlaced
	}
	return newest.Status()
}

// IsTerminal reports whether the shipment has reached Delivered or Cancelled.
func (s *Shipment) IsTerminal() bool {
	return s.Status().IsTerminal()
}

// IsOverdue reports whether the shipment is past its estimated delivery time
// without having reached a terminal status.
func (s *Shipment) IsOverdue(now time.Time) bool {
	return !s.IsTerminal() && now.After(s.estimatedDelivery)
}

// Timeline returns the events ordered newest first. Events with identical
// timestamps are broken by sequence, so the most recently appended entry
// always leads.
func (s *Shipment) Timeline() []*Event {
	timeline := s.Events()
	sort.SliceStable(timeline, func(i, j int) bool {
		if !timeline[i].OccurredAt().Equal(timeline[j].OccurredAt()) {
			return timeline[i].OccurredAt().After(timeline[j].OccurredAt())
		}
		return timeline[i].Sequence() > timeline[j].Sequence()
	})
	return timeline
}

// FirstEvent returns the oldest timeline event (the one with the lowest
// sequence number), or nil when the timeline is empty.
func (s *Shipment) FirstEvent() *Event {
	var first *Event
	for _, event := range s.events {
		if first == nil || event.Sequence() < first.Sequence() {
			first = event
		}
	}
	return first
}

// AssignPartner assigns a delivery partner to the shipment. The assignment is
// immutable: a second call returns ErrPartnerAlreadyAssigned.
func (s *Shipment) AssignPartner(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	if s.partnerID != nil {
		return ErrPartnerAlreadyAssigned
	}

	s.partnerID = &partnerID
	return nil
}

// RecordEvent appends a new event to the timeline and returns it.
//
// The shipment must not be terminal; recording after Delivered or Cancelled
// returns ErrShipmentAlreadyTerminal.
//
// Missing details are inferred rather than rejected:
//   - A nil location falls back to the oldest event's location, or the
//     destination when the timeline is empty
//   - An empty description falls back to the status's default wording
//
// The event receives the next per-shipment sequence number, so later appends
// win timeline ordering even at identical timestamps.
func (s *Shipment) RecordEvent(
	id kernel.UUID,
	status Status,
	location *kernel.ZipCode,
	description string,
	occurredAt time.Time,
) (*Event, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if s.IsTerminal() {
		return nil, ErrShipmentAlreadyTerminal
	}

	eventLocation := s.inferLocation(location)
	if description == "" {
		description = status.DefaultDescription(eventLocation)
	}

	event, err := NewEvent(id, s.id, status, eventLocation, description, len(s.events)+1, occurredAt)
	if err != nil {
		return nil, err
	}

	s.events = append(s.events, event)
	return event, nil
}

// Cancel moves the shipment to Cancelled by recording a cancellation event.
// Cancelling a shipment that is already Delivered or Cancelled returns
// ErrShipmentAlreadyTerminal.
func (s *Shipment) Cancel(eventID kernel.UUID, occurredAt time.Time) (*Event, error) {
	return s.RecordEvent(eventID, StatusCancelled, nil, "", occurredAt)
}

// ChangeEstimatedDelivery replaces the promised delivery time.
func (s *Shipment) ChangeEstimatedDelivery(estimatedDelivery time.Time) error {
	if estimatedDelivery.IsZero() {
		return errs.NewValueIsRequiredError("estimatedDelivery")
	}
	s.estimatedDelivery = estimatedDelivery
	return nil
}

// AttachReview attaches the client's review to the shipment.
//
// Business rules:
//   - The shipment must have reached a terminal status
//   - Only one review per shipment
func (s *Shipment) AttachReview(review *Review) error {
	if err := review.Validate(); err != nil {
		return err
	}
	if !s.IsTerminal() {
		return ErrShipmentNotTerminal
	}
	if s.review != nil {
		return ErrReviewAlreadyAttached
	}

	s.review = review
	return nil
}

// inferLocation resolves the location for a new event: the explicit value if
// given, otherwise the oldest event's location, otherwise the destination.
func (s *Shipment) inferLocation(location *kernel.ZipCode) kernel.ZipCode {
	if location != nil {
		return *location
	}
	if first := s.FirstEvent(); first != nil {
		return first.Location()
	}
	return s.destination
}

// newestEvent returns the event with the highest sequence number, or nil.
func (s *Shipment) newestEvent() *Event {
	var newest *Event
	for _, event := range s.events {
		if newest == nil || event.Sequence() > newest.Sequence() {
			newest = event
		}
	}
	return newest
}

// setID validates and sets the shipment's unique identifier.
func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

// setContent validates and sets the parcel description.
func (s *Shipment) setContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errs.NewValueIsRequiredError("content")
	}
	s.content = content
	return nil
}

// setWeight validates and sets the parcel weight.
// Weight must be positive and must not exceed WeightMaxKg.
func (s *Shipment) setWeight(weight float64) error {
	if weight <= 0 || weight > WeightMaxKg {
		return errs.NewValueIsOutOfRangeError("weight", weight, 0, WeightMaxKg)
	}
	s.weight = weight
	return nil
}

// setDestination validates and sets the delivery zip code.
func (s *Shipment) setDestination(destination kernel.ZipCode) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	s.destination = destination
	return nil
}

// setClientEmail validates and sets the recipient's notification address.
func (s *Shipment) setClientEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("clientEmail")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause(
			"clientEmail", fmt.Errorf("%q is not an email address", email))
	}
	s.clientEmail = email
	return nil
}

// setSellerID validates and sets the owning seller's identifier.
func (s *Shipment) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	s.sellerID = sellerID
	return nil
}

// setCreatedAt validates and sets the creation timestamp.
func (s *Shipment) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	s.createdAt = createdAt
	return nil
}
