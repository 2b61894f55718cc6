package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// Implementations persist the aggregate as a whole: the shipment row, its
// timeline events, and the attached review.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate, including
	// newly appended timeline events and the attached review.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier, with its
	// full timeline and review loaded.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// Delete removes a shipment and its timeline from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllOverdue retrieves all non-terminal shipments whose estimated
	// delivery time lies in the past. Used by the overdue sweep job.
	GetAllOverdue(ctx context.Context) ([]*shipment.Shipment, error)
}
