package commands_test

import (
	"context"
	"testing"
	"time"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateShipmentCommandHandler_Handle_StatusUpdate(t *testing.T) {
	ctx := context.Background()

	updater := testPartner(t, 5, 1, 10001)
	sellerID := kernel.NewUUID()
	owner := testSeller(t, nil)
	tracked := testAssignedShipment(t, sellerID, updater.ID())

	status := shipment.StatusOutForDelivery
	cmd, err := commands.NewUpdateShipmentCommand(updater.ID(), tracked.ID(), &status, nil, "", nil)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	partnerRepo := new(MockPartnerRepository)
	sellerRepo := new(MockSellerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, tracked.ID()).Return(tracked, nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("Get", ctx, updater.ID()).Return(updater, nil).Once(),
		uow.On("SellerRepository").Return(sellerRepo).Once(),
		sellerRepo.On("Get", ctx, sellerID).Return(owner, nil).Once(),
		shipmentRepo.On("Update", ctx, tracked).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := newRecordingNotifier()
	handler := commands.NewUpdateShipmentCommandHandler(factory, notifier, testLogger())

	require.NoError(t, handler.Handle(ctx, cmd))
	assert.Equal(t, shipment.StatusOutForDelivery, tracked.Status())

	notification := notifier.await(t)
	assert.Equal(t, shipment.StatusOutForDelivery, notification.Status)
	assert.Equal(t, "Acme Store", notification.SellerName)
	assert.Equal(t, "Speedy Couriers", notification.PartnerName)

	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateShipmentCommandHandler_Handle_InTransitSkipsNotification(t *testing.T) {
	ctx := context.Background()

	updater := testPartner(t, 5, 1, 10001)
	sellerID := kernel.NewUUID()
	tracked := testAssignedShipment(t, sellerID, updater.ID())

	status := shipment.StatusInTransit
	location := 60601
	cmd, err := commands.NewUpdateShipmentCommand(updater.ID(), tracked.ID(), &status, &location, "", nil)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	partnerRepo := new(MockPartnerRepository)
	sellerRepo := new(MockSellerRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	shipmentRepo.On("Get", ctx, tracked.ID()).Return(tracked, nil).Once()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	partnerRepo.On("Get", ctx, updater.ID()).Return(updater, nil).Once()
	uow.On("SellerRepository").Return(sellerRepo).Once()
	sellerRepo.On("Get", ctx, sellerID).Return(testSeller(t, nil), nil).Once()
	shipmentRepo.On("Update", ctx, tracked).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := newRecordingNotifier()
	handler := commands.NewUpdateShipmentCommandHandler(factory, notifier, testLogger())

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, shipment.StatusInTransit, tracked.Status())
	timeline := tracked.Timeline()
	assert.Equal(t, "scanned at 60601", timeline[0].Description())
	notifier.assertSilent(t)
}

func TestUpdateShipmentCommandHandler_Handle_LocationOnlyKeepsStatus(t *testing.T) {
	ctx := context.Background()

	updater := testPartner(t, 5, 1, 10001)
	sellerID := kernel.NewUUID()
	tracked := testAssignedShipment(t, sellerID, updater.ID())

	location := 60601
	cmd, err := commands.NewUpdateShipmentCommand(updater.ID(), tracked.ID(), nil, &location, "", nil)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	partnerRepo := new(MockPartnerRepository)
	sellerRepo := new(MockSellerRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	shipmentRepo.On("Get", ctx, tracked.ID()).Return(tracked, nil).Once()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	partnerRepo.On("Get", ctx, updater.ID()).Return(updater, nil).Once()
	uow.On("SellerRepository").Return(sellerRepo).Once()
	sellerRepo.On("Get", ctx, sellerID).Return(testSeller(t, nil), nil).Once()
	shipmentRepo.On("Update", ctx, tracked).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateShipmentCommandHandler(factory, nil, testLogger())
	require.NoError(t, handler.Handle(ctx, cmd))

	// Status unchanged, but a new event marks the location.
	assert.Equal(t, shipment.StatusPlaced, tracked.Status())
	require.Len(t, tracked.Events(), 2)
	assert.True(t, tracked.Timeline()[0].Location().IsEqual(zipOf(t, location)))
}

func TestUpdateShipmentCommandHandler_Handle_EstimateOnlyRecordsNoEvent(t *testing.T) {
	ctx := context.Background()

	updater := testPartner(t, 5, 1, 10001)
	tracked := testAssignedShipment(t, kernel.NewUUID(), updater.ID())

	estimate := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	cmd, err := commands.NewUpdateShipmentCommand(updater.ID(), tracked.ID(), nil, nil, "", &estimate)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	shipmentRepo.On("Get", ctx, tracked.ID()).Return(tracked, nil).Once()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	partnerRepo.On("Get", ctx, updater.ID()).Return(updater, nil).Once()
	shipmentRepo.On("Update", ctx, tracked).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := newRecordingNotifier()
	handler := commands.NewUpdateShipmentCommandHandler(factory, notifier, testLogger())

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, estimate, tracked.EstimatedDelivery())
	assert.Len(t, tracked.Events(), 1)
	notifier.assertSilent(t)
}

func TestUpdateShipmentCommandHandler_Handle_NotAssignedPartner(t *testing.T) {
	ctx := context.Background()

	tracked := testAssignedShipment(t, kernel.NewUUID(), kernel.NewUUID())
	stranger := kernel.NewUUID()

	status := shipment.StatusDelivered
	cmd, err := commands.NewUpdateShipmentCommand(stranger, tracked.ID(), &status, nil, "", nil)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	shipmentRepo.On("Get", ctx, tracked.ID()).Return(tracked, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateShipmentCommandHandler(factory, nil, testLogger())

	err = handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrNotAssignedPartner)
	assert.Len(t, tracked.Events(), 1)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateShipmentCommandHandler_Handle_TerminalShipment(t *testing.T) {
	ctx := context.Background()

	updater := testPartner(t, 5, 0, 10001)
	tracked := testAssignedShipment(t, kernel.NewUUID(), updater.ID())
	_, err := tracked.RecordEvent(
		kernel.NewUUID(), shipment.StatusDelivered, nil, "", time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	status := shipment.StatusOutForDelivery
	cmd, err := commands.NewUpdateShipmentCommand(updater.ID(), tracked.ID(), &status, nil, "", nil)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	shipmentRepo.On("Get", ctx, tracked.ID()).Return(tracked, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateShipmentCommandHandler(factory, nil, testLogger())

	err = handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, shipment.ErrShipmentAlreadyTerminal)
	uow.AssertNotCalled(t, "Commit", ctx)
}
