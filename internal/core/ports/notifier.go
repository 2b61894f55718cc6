package ports

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
)

// StatusNotification carries everything a downstream channel needs to tell
// the client about a shipment status change.
type StatusNotification struct {
	ShipmentID     kernel.UUID
	Status         shipment.Status
	Description    string
	RecipientEmail string
	RecipientPhone *string
	SellerName     string
	PartnerName    string
}

// Notifier publishes status notifications to the delivery channel (email,
// SMS broker, message bus). Publishing is fire-and-forget from the caller's
// perspective: failures must never affect the originating operation.
type Notifier interface {
	NotifyStatusChange(ctx context.Context, notification StatusNotification) error
}
