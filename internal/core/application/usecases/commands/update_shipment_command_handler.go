package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/ports"
)

// ErrNotAssignedPartner is returned when a partner submits an update for a
// shipment that is assigned to someone else (or not assigned at all).
var ErrNotAssignedPartner = errors.New("shipment is not assigned to this partner")

// UpdateShipmentCommandHandler handles partner progress updates.
// Appends timeline events, adjusts the delivery promise, and notifies the
// client about meaningful status changes.
//
// Example:
//
//	handler := NewUpdateShipmentCommandHandler(uowFactory, notifier, logger)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNotAssignedPartner):
//	    // Another partner owns this shipment
//	case errors.Is(err, shipment.ErrShipmentAlreadyTerminal):
//	    // Shipment already delivered or cancelled
//	}
type UpdateShipmentCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewUpdateShipmentCommandHandler creates a handler for partner updates.
func NewUpdateShipmentCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "update_shipment_handler"),
	}
}

// Handle processes the partner's update.
//
// Workflow:
//   - Verifies the submitting partner is the one assigned to the shipment
//   - Rejects updates to shipments already in a terminal status
//   - Appends a timeline event when the update carries a status or location;
//     an update with only an estimated delivery changes no timeline state
//   - Commits, then notifies the client unless the new status is in_transit
func (h UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) error {
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

	if tracked.Partner() == nil || !tracked.Partner().IsEqual(cmd.PartnerID()) {
		return ErrNotAssignedPartner
	}
	if tracked.IsTerminal() {
		return shipment.ErrShipmentAlreadyTerminal
	}

	var event *shipment.Event
	if cmd.Status() != nil || cmd.Location() != nil {
		eventStatus := tracked.Status()
		if cmd.Status() != nil {
			eventStatus = *cmd.Status()
		}

		event, err = tracked.RecordEvent(
			kernel.NewUUID(), eventStatus, cmd.Location(), cmd.Description(), time.Now().UTC())
		if err != nil {
			return err
		}
	}

	if cmd.EstimatedDelivery() != nil {
		if err = tracked.ChangeEstimatedDelivery(*cmd.EstimatedDelivery()); err != nil {
			return err
		}
	}

	updater, err := uow.PartnerRepository().Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	var sellerName string
	if event != nil {
		owner, err := uow.SellerRepository().Get(ctx, tracked.SellerID())
		if err != nil {
			return err
		}
		sellerName = owner.Name()
	}

	if err = shipmentRepo.Update(ctx, tracked); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if event != nil {
		dispatchNotification(h.notifier, h.logger, ports.StatusNotification{
			ShipmentID:     tracked.ID(),
			Status:         event.Status(),
			Description:    event.Description(),
			RecipientEmail: tracked.ClientEmail(),
			RecipientPhone: tracked.ClientPhone(),
			SellerName:     sellerName,
			PartnerName:    updater.Name(),
		})
	}

	return nil
}
