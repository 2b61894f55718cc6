package commands_test

import (
	"context"
	"testing"
	"time"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func deliveredShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	tracked := testAssignedShipment(t, kernel.NewUUID(), kernel.NewUUID())
	_, err := tracked.RecordEvent(
		kernel.NewUUID(), shipment.StatusDelivered, nil, "",
		time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return tracked
}

func reviewToken(t *testing.T, codec auth.JWTCodec, shipmentID kernel.UUID) string {
	t.Helper()
	token, err := codec.Sign(shipmentID.String(), "", auth.PurposeReview, time.Hour)
	require.NoError(t, err)
	return token
}

func TestSubmitReviewCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	codec := auth.NewJWTCodec("test-secret")

	tracked := deliveredShipment(t)
	comment := "arrived early, great condition"
	cmd, err := commands.NewSubmitReviewCommand(reviewToken(t, codec, tracked.ID()), 5, &comment)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, tracked.ID()).Return(tracked, nil).Once(),
		shipmentRepo.On("Update", ctx, tracked).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSubmitReviewCommandHandler(factory, codec)

	require.NoError(t, handler.Handle(ctx, cmd))

	review := tracked.Review()
	require.NotNil(t, review)
	assert.Equal(t, 5, review.Rating())
	require.NotNil(t, review.Comment())
	assert.Equal(t, comment, *review.Comment())

	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitReviewCommandHandler_Handle_NotTerminal(t *testing.T) {
	ctx := context.Background()
	codec := auth.NewJWTCodec("test-secret")

	tracked := testAssignedShipment(t, kernel.NewUUID(), kernel.NewUUID())
	cmd, err := commands.NewSubmitReviewCommand(reviewToken(t, codec, tracked.ID()), 4, nil)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	shipmentRepo.On("Get", ctx, tracked.ID()).Return(tracked, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSubmitReviewCommandHandler(factory, codec)

	err = handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, shipment.ErrShipmentNotTerminal)
	assert.Nil(t, tracked.Review())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestSubmitReviewCommandHandler_Handle_SecondReview(t *testing.T) {
	ctx := context.Background()
	codec := auth.NewJWTCodec("test-secret")

	tracked := deliveredShipment(t)
	first, err := shipment.NewReview(kernel.NewUUID(), 3, nil, time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, tracked.AttachReview(first))

	cmd, err := commands.NewSubmitReviewCommand(reviewToken(t, codec, tracked.ID()), 5, nil)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	shipmentRepo.On("Get", ctx, tracked.ID()).Return(tracked, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSubmitReviewCommandHandler(factory, codec)

	err = handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, shipment.ErrReviewAlreadyAttached)
	assert.Equal(t, 3, tracked.Review().Rating())
}

func TestSubmitReviewCommandHandler_Handle_WrongPurposeToken(t *testing.T) {
	ctx := context.Background()
	codec := auth.NewJWTCodec("test-secret")

	token, err := codec.Sign(kernel.NewUUID().String(), auth.RoleSeller, auth.PurposeAccess, time.Hour)
	require.NoError(t, err)

	cmd, err := commands.NewSubmitReviewCommand(token, 5, nil)
	require.NoError(t, err)

	factory := new(MockShipmentUoWFactory)
	handler := commands.NewSubmitReviewCommandHandler(factory, codec)

	err = handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, auth.ErrTokenPurposeMismatch)
	factory.AssertNotCalled(t, "Create")
}
