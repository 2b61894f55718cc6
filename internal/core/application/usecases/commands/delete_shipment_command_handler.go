package commands

import (
	"context"
)

// DeleteShipmentCommandHandler handles seller-initiated shipment deletion.
// Deletion removes the shipment row together with its timeline events and
// review; it is the hard-remove counterpart to cancellation.
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewDeleteShipmentCommandHandler creates a handler for shipment deletion.
func NewDeleteShipmentCommandHandler(uowFactory ShipmentUoWFactory) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command. Verifies ownership before removing
// the shipment; returns ErrNotShipmentOwner for foreign shipments.
func (h DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()
	tracked, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if !tracked.SellerID().IsEqual(cmd.SellerID()) {
		return ErrNotShipmentOwner
	}

	if err = shipmentRepo.Delete(ctx, tracked.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
