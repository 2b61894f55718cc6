package queries

import (
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/guard"
)

var ErrGetOverdueShipmentsQueryIsNotConstructed = errors.New(
	"GetOverdueShipmentsQuery must be created via NewGetOverdueShipmentsQuery constructor",
)

// GetOverdueShipmentsQuery retrieves active shipments past their estimated
// delivery time. Terminal shipments are never overdue.
//
// Example:
//
//	query := NewGetOverdueShipmentsQuery()
//	handler := NewGetOverdueShipmentsQueryHandler(db)
//
//	overdue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get overdue shipments: %w", err)
//	}
//
//	fmt.Printf("%d shipments past their estimate\n", len(overdue))
type GetOverdueShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOverdueShipmentsQuery creates a query to retrieve overdue shipments.
// This is a parameterless query evaluated against the current time.
func NewGetOverdueShipmentsQuery() GetOverdueShipmentsQuery {
	return GetOverdueShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueShipmentsQueryIsNotConstructed)
}

// GetOverdueShipmentsQueryResponse represents one overdue shipment.
type GetOverdueShipmentsQueryResponse struct {
	ID                kernel.UUID
	Destination       kernel.ZipCode
	Status            string
	PartnerName       string
	EstimatedDelivery time.Time
}
