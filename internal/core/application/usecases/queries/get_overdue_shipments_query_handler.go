package queries

import (
	"context"
	"database/sql"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueShipmentsQueryHandler retrieves overdue shipments from the database.
// Backs the operational dashboard and the periodic overdue sweep.
type GetOverdueShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueShipmentsQueryHandler creates a handler for overdue shipment queries.
// Requires a GORM database connection for query execution.
func NewGetOverdueShipmentsQueryHandler(db *gorm.DB) GetOverdueShipmentsQueryHandler {
	return GetOverdueShipmentsQueryHandler{db: db}
}

// Handle executes the query against the current time.
// Results are sorted oldest estimate first, so the most overdue shipments
// surface at the top.
func (h GetOverdueShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueShipmentsQuery,
) ([]GetOverdueShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetOverdueShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.destination,
			s.status,
			p.name,
			s.estimated_delivery
		FROM shipments s
		LEFT JOIN partners p ON p.id = s.partner_id
		WHERE s.estimated_delivery < NOW()
		  AND s.status NOT IN (?, ?)
		ORDER BY s.estimated_delivery
	`, shipment.StatusDelivered.String(), shipment.StatusCancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var overdue GetOverdueShipmentsQueryResponse
		var id uuid.UUID
		var destination int32
		var partnerName sql.NullString

		err = rows.Scan(
			&id,
			&destination,
			&overdue.Status,
			&partnerName,
			&overdue.EstimatedDelivery,
		)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		overdue.ID = shipmentID

		zip, zipErr := kernel.NewZipCode(int(destination))
		if zipErr != nil {
			return nil, zipErr
		}
		overdue.Destination = zip

		if partnerName.Valid {
			overdue.PartnerName = partnerName.String
		}

		shipments = append(shipments, overdue)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
