// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// This package implements the repository pattern for the shipment domain aggregate, handling
// the conversion between domain entities and database representations.
package shipmentrepo

import (
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// The status column is denormalized from the newest event so read-side queries
// and overdue sweeps can filter without joining the event table.
type ShipmentDTO struct {
	ID                uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Content           string      `gorm:"type:varchar(255);not null"`
	Weight            float64     `gorm:"type:numeric(6,2);not null"`
	Destination       int32       `gorm:"type:int;not null;index"`
	Status            string      `gorm:"type:varchar(32);not null;index"`
	ClientEmail       string      `gorm:"type:varchar(255);not null"`
	ClientPhone       *string     `gorm:"type:varchar(32)"`
	SellerID          uuid.UUID   `gorm:"type:uuid;not null;index"`
	PartnerID         *uuid.UUID  `gorm:"type:uuid;index"`
	EstimatedDelivery time.Time   `gorm:"not null;index"`
	CreatedAt         time.Time   `gorm:"not null"`
	Events            []EventDTO  `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
	Review            *ReviewDTO  `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// EventDTO represents the database structure for persisting shipment events.
// Events are append-only; sequence preserves per-shipment append order for
// deterministic timeline tie-breaks.
type EventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Status      string    `gorm:"type:varchar(32);not null"`
	Location    int32     `gorm:"type:int;not null"`
	Description string    `gorm:"type:text;not null"`
	Sequence    int       `gorm:"type:int;not null"`
	OccurredAt  time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for shipment event entities.
// Overrides GORM's default naming convention to use "shipment_events".
func (EventDTO) TableName() string {
	return "shipment_events"
}

// ReviewDTO represents the database structure for persisting shipment reviews.
// One review per shipment, enforced by a unique index on the foreign key.
type ReviewDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Rating     int       `gorm:"type:int;not null"`
	Comment    *string   `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the database table name for review entities.
// Overrides GORM's default naming convention to use "reviews".
func (ReviewDTO) TableName() string {
	return "reviews"
}

// fromDomain converts a shipment domain aggregate to its database representation.
// Maps the full aggregate including the event ledger and the optional review.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	shipmentID := aggregate.ID().Bytes()

	var partnerID *uuid.UUID
	if id := aggregate.Partner(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	events := make([]EventDTO, 0, len(aggregate.Events()))
	for _, event := range aggregate.Events() {
		events = append(events, EventDTO{
			ID:          event.ID().Bytes(),
			ShipmentID:  shipmentID,
			Status:      event.Status().String(),
			Location:    int32(event.Location()),
			Description: event.Description(),
			Sequence:    event.Sequence(),
			OccurredAt:  event.OccurredAt(),
		})
	}

	var review *ReviewDTO
	if r := aggregate.Review(); r != nil {
		review = &ReviewDTO{
			ID:         r.ID().Bytes(),
			ShipmentID: shipmentID,
			Rating:     r.Rating(),
			Comment:    r.Comment(),
			CreatedAt:  r.CreatedAt(),
		}
	}

	return ShipmentDTO{
		ID:                shipmentID,
		Content:           aggregate.Content(),
		Weight:            aggregate.Weight(),
		Destination:       int32(aggregate.Destination()),
		Status:            aggregate.Status().String(),
		ClientEmail:       aggregate.ClientEmail(),
		ClientPhone:       aggregate.ClientPhone(),
		SellerID:          aggregate.SellerID().Bytes(),
		PartnerID:         partnerID,
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		CreatedAt:         aggregate.CreatedAt(),
		Events:            events,
		Review:            review,
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including events and review using RestoreShipment.
// Events must be supplied in sequence (append) order.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}
		partnerID = &pID
	}

	destination, err := kernel.NewZipCode(int(dto.Destination))
	if err != nil {
		return nil, err
	}

	events := make([]*shipment.Event, 0, len(dto.Events))
	for _, eventDto := range dto.Events {
		event, eventErr := eventToDomain(eventDto)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	var review *shipment.Review
	if dto.Review != nil {
		review, err = reviewToDomain(*dto.Review)
		if err != nil {
			return nil, err
		}
	}

	return shipment.RestoreShipment(
		id,
		dto.Content,
		dto.Weight,
		destination,
		dto.ClientEmail,
		dto.ClientPhone,
		sellerID,
		partnerID,
		dto.EstimatedDelivery,
		dto.CreatedAt,
		events,
		review,
	)
}

// eventToDomain converts an event DTO to a domain entity.
func eventToDomain(dto EventDTO) (*shipment.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewZipCode(int(dto.Location))
	if err != nil {
		return nil, err
	}

	return shipment.NewEvent(id, shipmentID, status, location, dto.Description, dto.Sequence, dto.OccurredAt)
}

// reviewToDomain converts a review DTO to a domain entity.
func reviewToDomain(dto ReviewDTO) (*shipment.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return shipment.NewReview(id, dto.Rating, dto.Comment, dto.CreatedAt)
}
