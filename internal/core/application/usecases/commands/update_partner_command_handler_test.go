package commands_test

import (
	"context"
	"testing"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/partner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdatePartnerCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()

	account := testPartner(t, 5, 2, 10001)

	newCapacity := 10
	cmd, err := commands.NewUpdatePartnerCommand(account.ID(), []int{10001, 60601}, &newCapacity)
	require.NoError(t, err)

	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("Get", ctx, account.ID()).Return(account, nil).Once(),
		partnerRepo.On("Update", ctx, account).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdatePartnerCommandHandler(factory)

	require.NoError(t, handler.Handle(ctx, cmd))
	assert.Equal(t, 10, account.MaxCapacity())
	assert.True(t, account.Serves(zipOf(t, 60601)))
	assert.Equal(t, 8, account.CurrentCapacity())

	partnerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdatePartnerCommandHandler_Handle_CapacityOnly(t *testing.T) {
	ctx := context.Background()

	account := testPartner(t, 5, 0, 10001)

	newCapacity := 3
	cmd, err := commands.NewUpdatePartnerCommand(account.ID(), nil, &newCapacity)
	require.NoError(t, err)

	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	partnerRepo.On("Get", ctx, account.ID()).Return(account, nil).Once()
	partnerRepo.On("Update", ctx, account).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdatePartnerCommandHandler(factory)

	require.NoError(t, handler.Handle(ctx, cmd))
	assert.Equal(t, 3, account.MaxCapacity())
	assert.True(t, account.Serves(zipOf(t, 10001)))
}

func TestUpdatePartnerCommandHandler_Handle_CapacityBelowActiveLoad(t *testing.T) {
	ctx := context.Background()

	account := testPartner(t, 5, 4, 10001)

	newCapacity := 2
	cmd, err := commands.NewUpdatePartnerCommand(account.ID(), nil, &newCapacity)
	require.NoError(t, err)

	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	partnerRepo.On("Get", ctx, account.ID()).Return(account, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdatePartnerCommandHandler(factory)

	err = handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, partner.ErrCapacityBelowActiveLoad)
	assert.Equal(t, 5, account.MaxCapacity())
	partnerRepo.AssertNotCalled(t, "Update", ctx, account)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewUpdatePartnerCommand_NothingToUpdate(t *testing.T) {
	account := testPartner(t, 5, 0, 10001)

	_, err := commands.NewUpdatePartnerCommand(account.ID(), nil, nil)
	require.ErrorIs(t, err, commands.ErrNothingToUpdate)
}
