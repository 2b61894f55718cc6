// Package partnerrepo provides data transfer objects and mapping functions for partner persistence.
// This package implements the repository pattern for the delivery partner domain aggregate,
// handling the conversion between domain entities and database representations.
package partnerrepo

import (
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/partner"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PartnerDTO represents the database structure for persisting partner aggregates.
// The serviceable zip code set is stored as a native postgres array so the
// serving-partner lookup stays a single indexed query. The active shipment
// count is derived from the shipments table on load, never stored.
type PartnerDTO struct {
	ID                  uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Name                string        `gorm:"type:varchar(255);not null"`
	Email               string        `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash        string        `gorm:"type:varchar(255);not null"`
	EmailVerified       bool          `gorm:"not null"`
	ServiceableZipCodes pq.Int64Array `gorm:"type:bigint[];not null"`
	MaxCapacity         int           `gorm:"type:int;not null"`
	CreatedAt           time.Time     `gorm:"not null;index"`
}

// TableName specifies the database table name for partner entities.
// Overrides GORM's default naming convention to use "partners".
func (PartnerDTO) TableName() string {
	return "partners"
}

// fromDomain converts a partner domain aggregate to its database representation.
func fromDomain(aggregate *partner.Partner) PartnerDTO {
	zips := make(pq.Int64Array, 0, len(aggregate.ServiceableZipCodes()))
	for _, zip := range aggregate.ServiceableZipCodes() {
		zips = append(zips, int64(zip))
	}

	return PartnerDTO{
		ID:                  aggregate.ID().Bytes(),
		Name:                aggregate.Name(),
		Email:               aggregate.Email(),
		PasswordHash:        aggregate.PasswordHash(),
		EmailVerified:       aggregate.EmailVerified(),
		ServiceableZipCodes: zips,
		MaxCapacity:         aggregate.MaxCapacity(),
		CreatedAt:           aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a partner domain aggregate.
// The active shipment count comes from the caller, which derives it from the
// shipments table within the same transaction.
func toDomain(dto PartnerDTO, activeShipments int) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	zips := make([]kernel.ZipCode, 0, len(dto.ServiceableZipCodes))
	for _, value := range dto.ServiceableZipCodes {
		zip, zipErr := kernel.NewZipCode(int(value))
		if zipErr != nil {
			return nil, zipErr
		}
		zips = append(zips, zip)
	}

	return partner.RestorePartner(
		id,
		dto.Name,
		dto.Email,
		dto.PasswordHash,
		dto.EmailVerified,
		zips,
		dto.MaxCapacity,
		activeShipments,
		dto.CreatedAt,
	)
}
