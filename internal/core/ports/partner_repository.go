package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for partner aggregates.
// Restored partners carry their current active shipment load so capacity
// checks work directly on the aggregate.
type PartnerRepository interface {
	// Add persists a new partner aggregate to storage.
	Add(ctx context.Context, aggregate *partner.Partner) error

	// Update persists changes to an existing partner aggregate.
	Update(ctx context.Context, aggregate *partner.Partner) error

	// Get retrieves a partner aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// GetByEmail retrieves a partner aggregate by its login address.
	GetByEmail(ctx context.Context, email string) (*partner.Partner, error)

	// GetAllServingZipCode retrieves every partner whose serviceable area
	// includes the given zip code, ordered by registration time. The order is
	// the candidate order for first-fit assignment, so it must be stable.
	GetAllServingZipCode(ctx context.Context, zip kernel.ZipCode) ([]*partner.Partner, error)
}
