package commands

import (
	"context"
)

// UpdatePartnerCommandHandler handles partner profile updates.
// Capacity reductions are bounded by the partner's active shipment load, so
// shipments already in flight are never stranded.
type UpdatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewUpdatePartnerCommandHandler creates a handler for partner profile updates.
func NewUpdatePartnerCommandHandler(uowFactory PartnerUoWFactory) UpdatePartnerCommandHandler {
	return UpdatePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the profile update. Returns
// partner.ErrCapacityBelowActiveLoad when the new capacity would drop under
// the active load.
func (h UpdatePartnerCommandHandler) Handle(ctx context.Context, cmd UpdatePartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()
	account, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if cmd.ServiceableZipCodes() != nil {
		if err = account.UpdateServiceableZipCodes(cmd.ServiceableZipCodes()); err != nil {
			return err
		}
	}

	if cmd.MaxCapacity() != nil {
		if err = account.UpdateMaxCapacity(*cmd.MaxCapacity()); err != nil {
			return err
		}
	}

	if err = partnerRepo.Update(ctx, account); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
