package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/ports"
)

// ErrNotShipmentOwner is returned when a seller operates on a shipment that
// was placed by a different seller.
var ErrNotShipmentOwner = errors.New("shipment does not belong to this seller")

// CancelShipmentCommandHandler handles seller-initiated cancellations.
// Cancellation records a terminal "cancelled" timeline event; cancelling a
// shipment that already reached a terminal status fails with
// shipment.ErrShipmentAlreadyTerminal.
type CancelShipmentCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCancelShipmentCommandHandler creates a handler for shipment cancellation.
func NewCancelShipmentCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "cancel_shipment_handler"),
	}
}

// Handle processes the cancellation command.
// Verifies ownership, records the cancellation event, and notifies the client
// after commit.
func (h CancelShipmentCommandHandler) Handle(ctx context.Context, cmd CancelShipmentCommand) error {
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

	event, err := tracked.Cancel(kernel.NewUUID(), time.Now().UTC())
	if err != nil {
		return err
	}

	owner, err := uow.SellerRepository().Get(ctx, tracked.SellerID())
	if err != nil {
		return err
	}

	// PartnerID is nullable at the persistence layer, so an unassigned row
	// must not panic the handler.
	var partnerName string
	if assignedID := tracked.Partner(); assignedID != nil {
		assigned, err := uow.PartnerRepository().Get(ctx, *assignedID)
		if err != nil {
			return err
		}
		partnerName = assigned.Name()
	}

	if err = shipmentRepo.Update(ctx, tracked); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	dispatchNotification(h.notifier, h.logger, ports.StatusNotification{
		ShipmentID:     tracked.ID(),
		Status:         event.Status(),
		Description:    event.Description(),
		RecipientEmail: tracked.ClientEmail(),
		RecipientPhone: tracked.ClientPhone(),
		SellerName:     owner.Name(),
		PartnerName:    partnerName,
	})

	return nil
}
