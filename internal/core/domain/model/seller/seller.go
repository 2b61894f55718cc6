// Package seller provides the Seller aggregate: the merchant account that
// places shipments. Sellers carry login credentials, an email verification
// flag, and an optional origin zip code used as the first-event location for
// the shipments they place.
package seller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

// ErrSellerIsNotConstructed is returned when using an improperly initialized Seller.
var ErrSellerIsNotConstructed = errors.New("Seller must be created via NewSeller constructor")

// Seller is the merchant account that places shipments.
type Seller struct {
	// id uniquely identifies the seller
	id kernel.UUID

	// name is the seller's display name
	name string

	// email is the seller's login and notification address
	email string

	// passwordHash is the bcrypt hash of the seller's password
	passwordHash string

	// emailVerified reports whether the signup email was confirmed
	emailVerified bool

	// zipCode is the seller's optional origin zip code
	zipCode *kernel.ZipCode

	// createdAt is the registration timestamp
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewSeller creates a new Seller with validation. Fresh sellers start
// unverified; the origin zip code is optional.
func NewSeller(
	id kernel.UUID,
	name string,
	email string,
	passwordHash string,
	zipCode *kernel.ZipCode,
	createdAt time.Time,
) (*Seller, error) {
	seller := &Seller{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		seller.setID(id),
		seller.setName(name),
		seller.setEmail(email),
		seller.setPasswordHash(passwordHash),
		seller.setZipCode(zipCode),
		seller.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return seller, nil
}

// RestoreSeller reconstructs a Seller aggregate from persistent storage,
// including its verification flag.
func RestoreSeller(
	id kernel.UUID,
	name string,
	email string,
	passwordHash string,
	emailVerified bool,
	zipCode *kernel.ZipCode,
	createdAt time.Time,
) (*Seller, error) {
	seller, err := NewSeller(id, name, email, passwordHash, zipCode, createdAt)
	if err != nil {
		return nil, err
	}

	seller.emailVerified = emailVerified
	return seller, nil
}

// Validate checks if the Seller was properly constructed using NewSeller.
func (s *Seller) Validate() error {
	if s == nil {
		return ErrSellerIsNotConstructed
	}
	return s.guard.Validate(ErrSellerIsNotConstructed)
}

// IsEqual compares two sellers by their unique identifiers.
func (s *Seller) IsEqual(other *Seller) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the seller's unique identifier.
func (s *Seller) ID() kernel.UUID {
	return s.id
}

// Name returns the seller's display name.
func (s *Seller) Name() string {
	return s.name
}

// Email returns the seller's login address.
func (s *Seller) Email() string {
	return s.email
}

// PasswordHash returns the hash of the seller's password.
func (s *Seller) PasswordHash() string {
	return s.passwordHash
}

// EmailVerified reports whether the signup email was confirmed.
func (s *Seller) EmailVerified() bool {
	return s.emailVerified
}

// ZipCode returns the seller's origin zip code, or nil when unset.
func (s *Seller) ZipCode() *kernel.ZipCode {
	return s.zipCode
}

// CreatedAt returns the registration timestamp.
func (s *Seller) CreatedAt() time.Time {
	return s.createdAt
}

// VerifyEmail marks the signup email as confirmed. Idempotent.
func (s *Seller) VerifyEmail() {
	s.emailVerified = true
}

func (s *Seller) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Seller) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Seller) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause(
			"email", fmt.Errorf("%q is not an email address", email))
	}
	s.email = email
	return nil
}

func (s *Seller) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	s.passwordHash = passwordHash
	return nil
}

func (s *Seller) setZipCode(zipCode *kernel.ZipCode) error {
	if zipCode == nil {
		return nil
	}
	if err := zipCode.Validate(); err != nil {
		return err
	}
	s.zipCode = zipCode
	return nil
}

func (s *Seller) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	s.createdAt = createdAt
	return nil
}
