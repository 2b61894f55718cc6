package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/domain/services"
	"shiptrack/internal/core/ports"
)

// CreateShipmentCommandHandler handles the business logic for placing a shipment.
// Picks a delivery partner with the first-fit strategy, records the initial
// "placed" event, and persists everything in a single transaction.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, notifier, logger)
//	cmd, _ := NewCreateShipmentCommand(shipmentID, sellerID, "books", 3, 10001, "client@example.com", nil)
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrNoPartnerAvailable) {
//	    // No partner covers the destination right now
//	}
type CreateShipmentCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCreateShipmentCommandHandler creates a handler for shipment placement.
// Requires a UoWFactory for coordinating shipment, partner, and seller state.
func NewCreateShipmentCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "create_shipment_handler"),
	}
}

// Handle processes the shipment placement command.
//
// Workflow:
//   - Loads the owning seller
//   - Retrieves partners serving the destination, in registration order
//   - Assigns the first partner with remaining capacity
//   - Records the initial "placed" event, located at the seller's zip code
//     when one is set, at the destination otherwise
//   - Commits shipment and partner load atomically
//
// Returns services.ErrNoPartnerAvailable when no partner can take the
// shipment; in that case nothing is persisted.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
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

	owner, err := uow.SellerRepository().Get(ctx, cmd.SellerID())
	if err != nil {
		return err
	}

	newShipment, err := shipment.NewShipment(
		cmd.ShipmentID(),
		cmd.Content(),
		cmd.Weight(),
		cmd.Destination(),
		cmd.ClientEmail(),
		cmd.ClientPhone(),
		owner.ID(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	partnerRepo := uow.PartnerRepository()
	candidates, err := partnerRepo.GetAllServingZipCode(ctx, cmd.Destination())
	if err != nil {
		return err
	}

	assigned, err := services.NewPartnerAssigner().Assign(newShipment, candidates)
	if err != nil {
		return err
	}

	origin := newShipment.Destination()
	if owner.ZipCode() != nil {
		origin = *owner.ZipCode()
	}

	event, err := newShipment.RecordEvent(
		kernel.NewUUID(),
		shipment.StatusPlaced,
		&origin,
		fmt.Sprintf("assigned to partner %s", assigned.Name()),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Add(ctx, newShipment); err != nil {
		return err
	}

	if err = partnerRepo.Update(ctx, assigned); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	dispatchNotification(h.notifier, h.logger, ports.StatusNotification{
		ShipmentID:     newShipment.ID(),
		Status:         event.Status(),
		Description:    event.Description(),
		RecipientEmail: newShipment.ClientEmail(),
		RecipientPhone: newShipment.ClientPhone(),
		SellerName:     owner.Name(),
		PartnerName:    assigned.Name(),
	})

	return nil
}
