// Package sellerrepo provides data transfer objects and mapping functions for seller persistence.
// This package implements the repository pattern for the seller domain aggregate, handling
// the conversion between domain entities and database representations.
package sellerrepo

import (
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/seller"

	"github.com/google/uuid"
)

// SellerDTO represents the database structure for persisting seller aggregates.
type SellerDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	EmailVerified bool      `gorm:"not null"`
	ZipCode       *int32    `gorm:"type:int"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the database table name for seller entities.
// Overrides GORM's default naming convention to use "sellers".
func (SellerDTO) TableName() string {
	return "sellers"
}

// fromDomain converts a seller domain aggregate to its database representation.
func fromDomain(aggregate *seller.Seller) SellerDTO {
	var zipCode *int32
	if zip := aggregate.ZipCode(); zip != nil {
		raw := int32(*zip)
		zipCode = &raw
	}

	return SellerDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Email:         aggregate.Email(),
		PasswordHash:  aggregate.PasswordHash(),
		EmailVerified: aggregate.EmailVerified(),
		ZipCode:       zipCode,
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a seller domain aggregate using RestoreSeller.
func toDomain(dto SellerDTO) (*seller.Seller, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var zipCode *kernel.ZipCode
	if dto.ZipCode != nil {
		zip, zipErr := kernel.NewZipCode(int(*dto.ZipCode))
		if zipErr != nil {
			return nil, zipErr
		}
		zipCode = &zip
	}

	return seller.RestoreSeller(
		id,
		dto.Name,
		dto.Email,
		dto.PasswordHash,
		dto.EmailVerified,
		zipCode,
		dto.CreatedAt,
	)
}
