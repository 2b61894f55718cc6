package queries

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves a single shipment with its current status,
// assigned partner name and review, if one was submitted.
//
// Example:
//
//	query, err := NewGetShipmentQuery(shipmentID)
//	if err != nil {
//	    return err
//	}
//
//	shipment, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get shipment: %w", err)
//	}
//
//	fmt.Printf("Shipment %s is %s\n", shipment.ID, shipment.Status)
type GetShipmentQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for a single shipment by id.
func NewGetShipmentQuery(shipmentID kernel.UUID) (GetShipmentQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the identifier of the requested shipment.
func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// GetShipmentQueryResponse is the shipment read model served to tracking
// pages and dashboards.
type GetShipmentQueryResponse struct {
	ID                kernel.UUID
	Content           string
	Weight            float64
	Destination       kernel.ZipCode
	Status            string
	ClientEmail       string
	ClientPhone       *string
	PartnerName       string
	EstimatedDelivery time.Time
	CreatedAt         time.Time
	Review            *ReviewResponse
}

// ReviewResponse is the review read model nested in a shipment response.
type ReviewResponse struct {
	Rating  int
	Comment *string
}
