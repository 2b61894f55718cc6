package commands_test

import (
	"context"
	"testing"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/partner"
	"shiptrack/internal/pkg/auth"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSignupPartnerCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	codec := auth.NewJWTCodec("test-secret")
	hasher := auth.NewBcryptHasher()

	partnerID := kernel.NewUUID()
	cmd, err := commands.NewSignupPartnerCommand(
		partnerID, "Speedy Couriers", "ops@speedy.example.com", "s3cretpass", []int{10001, 10002}, 5)
	require.NoError(t, err)

	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)

	var created *partner.Partner

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetByEmail", ctx, "ops@speedy.example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "ops@speedy.example.com")).Once(),
		partnerRepo.On("Add", ctx, mock.AnythingOfType("*partner.Partner")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*partner.Partner)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSignupPartnerCommandHandler(factory, hasher, codec)

	token, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The token activates exactly this account.
	claims, err := codec.Verify(token, auth.PurposeVerify)
	require.NoError(t, err)
	assert.Equal(t, partnerID.String(), claims.Subject)
	assert.Equal(t, auth.RolePartner, claims.Role)

	require.NotNil(t, created)
	assert.False(t, created.EmailVerified())
	assert.NotEqual(t, "s3cretpass", created.PasswordHash())
	require.NoError(t, hasher.Compare(created.PasswordHash(), "s3cretpass"))

	partnerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSignupPartnerCommandHandler_Handle_EmailTaken(t *testing.T) {
	ctx := context.Background()

	existing := testPartner(t, 5, 0, 10001)
	cmd, err := commands.NewSignupPartnerCommand(
		kernel.NewUUID(), "Speedy Couriers", existing.Email(), "s3cretpass", []int{10001}, 5)
	require.NoError(t, err)

	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	partnerRepo.On("GetByEmail", ctx, existing.Email()).Return(existing, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSignupPartnerCommandHandler(factory, auth.NewBcryptHasher(), auth.NewJWTCodec("test-secret"))

	_, err = handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrEmailAlreadyRegistered)
	partnerRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}

func TestNewSignupPartnerCommand_Validation(t *testing.T) {
	t.Run("should reject short password", func(t *testing.T) {
		_, err := commands.NewSignupPartnerCommand(
			kernel.NewUUID(), "Speedy", "ops@speedy.example.com", "short", []int{10001}, 5)
		require.ErrorIs(t, err, commands.ErrPasswordIsTooShort)
	})

	t.Run("should reject empty serviceable area", func(t *testing.T) {
		_, err := commands.NewSignupPartnerCommand(
			kernel.NewUUID(), "Speedy", "ops@speedy.example.com", "s3cretpass", nil, 5)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid zip code", func(t *testing.T) {
		_, err := commands.NewSignupPartnerCommand(
			kernel.NewUUID(), "Speedy", "ops@speedy.example.com", "s3cretpass", []int{123}, 5)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject negative capacity", func(t *testing.T) {
		_, err := commands.NewSignupPartnerCommand(
			kernel.NewUUID(), "Speedy", "ops@speedy.example.com", "s3cretpass", []int{10001}, -1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should allow zero capacity", func(t *testing.T) {
		cmd, err := commands.NewSignupPartnerCommand(
			kernel.NewUUID(), "Speedy", "ops@speedy.example.com", "s3cretpass", []int{10001}, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, cmd.MaxCapacity())
	})
}
