// Package partner provides domain entities and business logic for delivery
// partner management. It implements the Partner aggregate root with its
// credentials, serviceable area, and capacity accounting.
//
// Key business rules:
//   - A partner serves a fixed set of zip codes, updatable as a whole
//   - The active shipment load never exceeds the maximum capacity
//   - Capacity changes cannot strand shipments already in flight
//   - The signup email must be verified before the partner can sign in
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package partner
