package queries

import (
	"context"
	"database/sql"
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves a shipment read model from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for single-shipment queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query for one shipment.
// Returns errs.ObjectNotFoundError when the id does not resolve.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.content,
			s.weight,
			s.destination,
			s.status,
			s.client_email,
			s.client_phone,
			p.name,
			s.estimated_delivery,
			s.created_at,
			r.rating,
			r.comment
		FROM shipments s
		LEFT JOIN partners p ON p.id = s.partner_id
		LEFT JOIN reviews r ON r.shipment_id = s.id
		WHERE s.id = ?
	`, query.ShipmentID().String()).Row()

	var response GetShipmentQueryResponse
	var id uuid.UUID
	var destination int32
	var clientPhone, partnerName, comment sql.NullString
	var rating sql.NullInt64

	err := row.Scan(
		&id,
		&response.Content,
		&response.Weight,
		&destination,
		&response.Status,
		&response.ClientEmail,
		&clientPhone,
		&partnerName,
		&response.EstimatedDelivery,
		&response.CreatedAt,
		&rating,
		&comment,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipmentID", query.ShipmentID())
	}
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	response.ID = shipmentID

	zip, err := kernel.NewZipCode(int(destination))
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	response.Destination = zip

	if clientPhone.Valid {
		response.ClientPhone = &clientPhone.String
	}
	if partnerName.Valid {
		response.PartnerName = partnerName.String
	}
	if rating.Valid {
		review := ReviewResponse{Rating: int(rating.Int64)}
		if comment.Valid {
			review.Comment = &comment.String
		}
		response.Review = &review
	}

	return response, nil
}
