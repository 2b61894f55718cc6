package queries

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentTimelineQueryHandler retrieves shipment events from the database.
// Events with the same timestamp fall back to append order, so the returned
// slice is deterministic.
type GetShipmentTimelineQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentTimelineQueryHandler creates a handler for timeline queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentTimelineQueryHandler(db *gorm.DB) GetShipmentTimelineQueryHandler {
	return GetShipmentTimelineQueryHandler{db: db}
}

// Handle executes the timeline query.
// Returns events newest-first, or errs.ObjectNotFoundError when the shipment
// id does not resolve.
func (h GetShipmentTimelineQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentTimelineQuery,
) ([]GetShipmentTimelineQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var shipmentCount int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT count(*) FROM shipments WHERE id = ?
	`, query.ShipmentID().String()).Scan(&shipmentCount).Error
	if err != nil {
		return nil, err
	}
	if shipmentCount == 0 {
		return nil, errs.NewObjectNotFoundError("shipmentID", query.ShipmentID())
	}

	events := make([]GetShipmentTimelineQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			location,
			description,
			occurred_at
		FROM shipment_events
		WHERE shipment_id = ?
		ORDER BY occurred_at DESC, sequence DESC
	`, query.ShipmentID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event GetShipmentTimelineQueryResponse
		var id uuid.UUID
		var location int32

		err = rows.Scan(
			&id,
			&event.Status,
			&location,
			&event.Description,
			&event.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		eventID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		event.ID = eventID

		zip, zipErr := kernel.NewZipCode(int(location))
		if zipErr != nil {
			return nil, zipErr
		}
		event.Location = zip

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
