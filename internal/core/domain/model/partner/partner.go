package partner

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

// Domain errors for partner operations.
var (
	// ErrPartnerIsNotConstructed is returned when using an improperly initialized Partner.
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")

	// ErrPartnerAtCapacity is returned when a shipment is accepted while the
	// partner's active load already equals its maximum capacity.
	ErrPartnerAtCapacity = errors.New("partner has no remaining capacity")

	// ErrCapacityBelowActiveLoad is returned when the maximum capacity is
	// lowered beneath the number of shipments currently in flight.
	ErrCapacityBelowActiveLoad = errors.New("max capacity cannot drop below the active shipment load")
)

// Partner represents a delivery partner in the system.
// It is an aggregate root that manages the partner's identity, credentials,
// serviceable area, and delivery capacity.
//
// Key responsibilities:
//   - Managing partner identity and login credentials
//   - Tracking the zip codes the partner serves
//   - Enforcing the capacity limit on concurrently active shipments
//
// Business rules:
//   - Partner must have a valid UUID, non-empty name, email, and password hash
//   - The serviceable area must contain at least one valid zip code
//   - Maximum capacity is non-negative; the active load never exceeds it
//   - The email must be verified before the partner can sign in
type Partner struct {
	// id uniquely identifies the partner
	id kernel.UUID

	// name is the partner's display name
	name string

	// email is the partner's login and notification address
	email string

	// passwordHash is the bcrypt hash of the partner's password
	passwordHash string

	// emailVerified reports whether the signup email was confirmed
	emailVerified bool

	// serviceableZipCodes is the set of zip codes the partner delivers to
	serviceableZipCodes []kernel.ZipCode

	// maxCapacity is the limit on concurrently active shipments
	maxCapacity int

	// activeShipments is the number of assigned, non-terminal shipments
	activeShipments int

	// createdAt is the partner registration timestamp
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewPartner creates a new Partner with the specified parameters.
// Fresh partners start unverified with no active shipments.
//
// Parameters:
//   - id: Unique identifier for the partner (must be a valid UUID)
//   - name: Display name (required)
//   - email: Login address (required, must look like an email)
//   - passwordHash: Hash of the partner's password (required)
//   - serviceableZipCodes: Zip codes the partner serves (at least one)
//   - maxCapacity: Limit on concurrently active shipments (non-negative)
//   - createdAt: Registration timestamp
//
// Returns the created partner, or a joined validation error describing every
// invalid parameter.
func NewPartner(
	id kernel.UUID,
	name string,
	email string,
	passwordHash string,
	serviceableZipCodes []kernel.ZipCode,
	maxCapacity int,
	createdAt time.Time,
) (*Partner, error) {
	partner := &Partner{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		partner.setID(id),
		partner.setName(name),
		partner.setEmail(email),
		partner.setPasswordHash(passwordHash),
		partner.setServiceableZipCodes(serviceableZipCodes),
		partner.setMaxCapacity(maxCapacity),
		partner.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return partner, nil
}

// RestorePartner reconstructs a Partner aggregate from persistent storage,
// including its verification flag and the current active shipment load.
// The restored partner behaves identically to one created through normal
// domain operations.
func RestorePartner(
	id kernel.UUID,
	name string,
	email string,
	passwordHash string,
	emailVerified bool,
	serviceableZipCodes []kernel.ZipCode,
	maxCapacity int,
	activeShipments int,
	createdAt time.Time,
) (*Partner, error) {
	partner, err := NewPartner(id, name, email, passwordHash, serviceableZipCodes, maxCapacity, createdAt)
	if err != nil {
		return nil, err
	}

	if activeShipments < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"activeShipments", fmt.Errorf("%d is negative", activeShipments))
	}

	partner.emailVerified = emailVerified
	partner.activeShipments = activeShipments
	return partner, nil
}

// Validate checks if the Partner was properly constructed using NewPartner.
// The zero value of Partner is invalid and will fail this validation.
func (p *Partner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// IsEqual compares two partners by their unique identifiers.
func (p *Partner) IsEqual(other *Partner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the partner's unique identifier.
func (p *Partner) ID() kernel.UUID {
	return p.id
}

// Name returns the partner's display name.
func (p *Partner) Name() string {
	return p.name
}

// Email returns the partner's login address.
func (p *Partner) Email() string {
	return p.email
}

// PasswordHash returns the hash of the partner's password.
func (p *Partner) PasswordHash() string {
	return p.passwordHash
}

// EmailVerified reports whether the signup email was confirmed.
func (p *Partner) EmailVerified() bool {
	return p.emailVerified
}

// ServiceableZipCodes returns the zip codes the partner serves.
// The returned slice is a copy; mutating it does not affect the aggregate.
func (p *Partner) ServiceableZipCodes() []kernel.ZipCode {
	zips := make([]kernel.ZipCode, len(p.serviceableZipCodes))
	copy(zips, p.serviceableZipCodes)
	return zips
}

// MaxCapacity returns the limit on concurrently active shipments.
func (p *Partner) MaxCapacity() int {
	return p.maxCapacity
}

// ActiveShipments returns the number of assigned, non-terminal shipments.
func (p *Partner) ActiveShipments() int {
	return p.activeShipments
}

// CreatedAt returns the partner registration timestamp.
func (p *Partner) CreatedAt() time.Time {
	return p.createdAt
}

// CurrentCapacity returns the number of additional shipments the partner can
// take right now.
func (p *Partner) CurrentCapacity() int {
	remaining := p.maxCapacity - p.activeShipments
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Serves reports whether the partner delivers to the given zip code.
func (p *Partner) Serves(zip kernel.ZipCode) bool {
	for _, serviced := range p.serviceableZipCodes {
		if serviced.IsEqual(zip) {
			return true
		}
	}
	return false
}

// CanAccept reports whether the partner serves the destination and still has
// remaining capacity for one more shipment.
func (p *Partner) CanAccept(destination kernel.ZipCode) bool {
	return p.Serves(destination) && p.CurrentCapacity() > 0
}

// AcceptShipment increments the partner's active load.
// Returns ErrPartnerAtCapacity when no capacity remains.
func (p *Partner) AcceptShipment() error {
	if p.CurrentCapacity() == 0 {
		return ErrPartnerAtCapacity
	}
	p.activeShipments++
	return nil
}

// ReleaseShipment decrements the partner's active load when an assigned
// shipment reaches a terminal status. A load of zero stays at zero.
func (p *Partner) ReleaseShipment() {
	if p.activeShipments > 0 {
		p.activeShipments--
	}
}

// VerifyEmail marks the signup email as confirmed. Verifying an already
// verified partner is a no-op.
func (p *Partner) VerifyEmail() {
	p.emailVerified = true
}

// UpdateServiceableZipCodes replaces the partner's serviceable area.
// The new area must contain at least one valid zip code.
func (p *Partner) UpdateServiceableZipCodes(zips []kernel.ZipCode) error {
	return p.setServiceableZipCodes(zips)
}

// UpdateMaxCapacity replaces the capacity limit.
//
// Business rules:
//   - The new capacity must not be negative
//   - The new capacity must not drop below the current active load
func (p *Partner) UpdateMaxCapacity(maxCapacity int) error {
	if maxCapacity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxCapacity", fmt.Errorf("%d is negative", maxCapacity))
	}
	if maxCapacity < p.activeShipments {
		return ErrCapacityBelowActiveLoad
	}
	p.maxCapacity = maxCapacity
	return nil
}

// setID validates and sets the partner's unique identifier.
func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setName validates and sets the display name.
func (p *Partner) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

// setEmail validates and sets the login address.
func (p *Partner) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause(
			"email", fmt.Errorf("%q is not an email address", email))
	}
	p.email = email
	return nil
}

// setPasswordHash validates and sets the password hash.
func (p *Partner) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	p.passwordHash = passwordHash
	return nil
}

// setServiceableZipCodes validates and sets the serviceable area.
func (p *Partner) setServiceableZipCodes(zips []kernel.ZipCode) error {
	if len(zips) == 0 {
		return errs.NewValueIsRequiredError("serviceableZipCodes")
	}
	for _, zip := range zips {
		if err := zip.Validate(); err != nil {
			return err
		}
	}
	p.serviceableZipCodes = make([]kernel.ZipCode, len(zips))
	copy(p.serviceableZipCodes, zips)
	return nil
}

// setMaxCapacity validates and sets the capacity limit. Zero is a valid
// limit: such a partner exists but is never eligible for assignment.
func (p *Partner) setMaxCapacity(maxCapacity int) error {
	if maxCapacity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxCapacity", fmt.Errorf("%d is negative", maxCapacity))
	}
	p.maxCapacity = maxCapacity
	return nil
}

// setCreatedAt validates and sets the registration timestamp.
func (p *Partner) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	p.createdAt = createdAt
	return nil
}
