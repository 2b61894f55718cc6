package partnerrepo

import (
	"context"
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/partner"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPartnerRepository implements PartnerRepository using GORM.
type GormPartnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPartnerRepository creates a new GORM partner repository.
func NewGormPartnerRepository(db *gorm.DB, tracker aggregateTracker) *GormPartnerRepository {
	return &GormPartnerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new partner to the database.
func (r *GormPartnerRepository) Add(ctx context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing partner to the database.
// Only the stored profile is written; the active shipment count is derived
// state and never persisted on the partner row.
func (r *GormPartnerRepository) Update(ctx context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PartnerDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":                  dto.Name,
		"email":                 dto.Email,
		"password_hash":         dto.PasswordHash,
		"email_verified":        dto.EmailVerified,
		"serviceable_zip_codes": dto.ServiceableZipCodes,
		"max_capacity":          dto.MaxCapacity,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a partner by ID with its current active shipment load.
func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partner", id.String())
		}
		return nil, err
	}

	active, err := r.countActiveShipments(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, active)
}

// GetByEmail retrieves a partner by their unique login email.
func (r *GormPartnerRepository) GetByEmail(ctx context.Context, email string) (*partner.Partner, error) {
	var dto PartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email)
		}
		return nil, err
	}

	active, err := r.countActiveShipments(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, active)
}

// GetAllServingZipCode retrieves all partners whose serviceable set contains
// the zip code, ordered by registration time. The ordering is stable and is
// the candidate order the assignment engine iterates in, so it must not
// change without considering assignment semantics.
//
// Example:
//
//	candidates, err := repo.GetAllServingZipCode(ctx, destination)
//	if err != nil {
//		return fmt.Errorf("failed to get serving partners: %w", err)
//	}
//	for _, p := range candidates {
//		fmt.Printf("Candidate: %s (capacity %d)\n", p.Name(), p.CurrentCapacity())
//	}
func (r *GormPartnerRepository) GetAllServingZipCode(
	ctx context.Context,
	zip kernel.ZipCode,
) ([]*partner.Partner, error) {
	if err := zip.Validate(); err != nil {
		return nil, err
	}

	var dtos []PartnerDTO
	err := r.db.WithContext(ctx).
		Where("? = ANY(serviceable_zip_codes)", int64(zip)).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	partners := make([]*partner.Partner, 0, len(dtos))
	for _, dto := range dtos {
		active, countErr := r.countActiveShipments(ctx, dto.ID)
		if countErr != nil {
			return nil, countErr
		}

		p, domainErr := toDomain(dto, active)
		if domainErr != nil {
			return nil, domainErr
		}
		partners = append(partners, p)
	}

	return partners, nil
}

// countActiveShipments derives the partner's current load from the shipments
// table. Active excludes terminal statuses.
func (r *GormPartnerRepository) countActiveShipments(ctx context.Context, partnerID any) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("shipments").
		Where("partner_id = ?", partnerID).
		Where("status NOT IN (?, ?)", shipment.StatusDelivered.String(), shipment.StatusCancelled.String()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
