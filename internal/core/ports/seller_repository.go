package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/seller"
)

// SellerRepository defines the persistence contract for seller aggregates.
type SellerRepository interface {
	// Add persists a new seller aggregate to storage.
	Add(ctx context.Context, aggregate *seller.Seller) error

	// Update persists changes to an existing seller aggregate.
	Update(ctx context.Context, aggregate *seller.Seller) error

	// Get retrieves a seller aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*seller.Seller, error)

	// GetByEmail retrieves a seller aggregate by its login address.
	GetByEmail(ctx context.Context, email string) (*seller.Seller, error)
}
