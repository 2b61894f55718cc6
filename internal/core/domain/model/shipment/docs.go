// Package shipment provides domain entities and business logic for shipment
// tracking. It implements the Shipment aggregate root with its append-only
// event timeline, derived status, and client review.
//
// The package includes:
//   - Shipment: The aggregate root owning parcel details, partner assignment,
//     the event timeline, and the optional review
//   - Event: An immutable, sequence-numbered timeline entry
//   - Status: A state machine over the shipment lifecycle
//   - Review: The client's one-time rating of a finished shipment
//
// Key business rules:
//   - The current status is derived from the newest timeline event; a shipment
//     without events is Placed
//   - Delivered and Cancelled are terminal: no event may follow them
//   - Event locations and descriptions are inferred when omitted
//   - The partner assignment is immutable once set
//   - A review may be attached once, and only after a terminal status
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
