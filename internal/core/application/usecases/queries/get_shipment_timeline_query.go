package queries

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrGetShipmentTimelineQueryIsNotConstructed = errors.New(
	"GetShipmentTimelineQuery must be created via NewGetShipmentTimelineQuery constructor",
)

// GetShipmentTimelineQuery retrieves the event history of a shipment,
// newest-first. This ordering is what tracking pages render.
type GetShipmentTimelineQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentTimelineQuery creates a timeline query for a shipment.
func NewGetShipmentTimelineQuery(shipmentID kernel.UUID) (GetShipmentTimelineQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentTimelineQuery{}, err
	}

	return GetShipmentTimelineQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentTimelineQueryIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment whose timeline is requested.
func (q GetShipmentTimelineQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// GetShipmentTimelineQueryResponse is a single timeline entry.
type GetShipmentTimelineQueryResponse struct {
	ID          kernel.UUID
	Status      string
	Location    kernel.ZipCode
	Description string
	OccurredAt  time.Time
}
