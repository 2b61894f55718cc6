package seller_test

import (
	"testing"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/seller"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeller(t *testing.T) {
	validID := kernel.NewUUID()
	createdAt := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)

	t.Run("should create valid seller without zip code", func(t *testing.T) {
		s, err := seller.NewSeller(validID, "Acme Store", "shop@acme.example.com", "$2a$10$hash", nil, createdAt)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, "Acme Store", s.Name())
		assert.Equal(t, "shop@acme.example.com", s.Email())
		assert.False(t, s.EmailVerified())
		assert.Nil(t, s.ZipCode())
	})

	t.Run("should create valid seller with zip code", func(t *testing.T) {
		zip, err := kernel.NewZipCode(30301)
		require.NoError(t, err)

		s, err := seller.NewSeller(validID, "Acme Store", "shop@acme.example.com", "hash", &zip, createdAt)

		require.NoError(t, err)
		require.NotNil(t, s.ZipCode())
		assert.True(t, s.ZipCode().IsEqual(zip))
	})

	t.Run("should fail with invalid zip code", func(t *testing.T) {
		invalidZip := kernel.ZipCode(1)

		s, err := seller.NewSeller(validID, "Acme Store", "shop@acme.example.com", "hash", &invalidZip, createdAt)

		require.Error(t, err)
		assert.Nil(t, s)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		s, err := seller.NewSeller(validID, "", "shop@acme.example.com", "hash", nil, createdAt)

		require.Error(t, err)
		assert.Nil(t, s)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with malformed email", func(t *testing.T) {
		s, err := seller.NewSeller(validID, "Acme Store", "acme", "hash", nil, createdAt)

		require.Error(t, err)
		assert.Nil(t, s)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject direct struct instantiation", func(t *testing.T) {
		var s seller.Seller
		require.ErrorIs(t, s.Validate(), seller.ErrSellerIsNotConstructed)
	})
}

func TestRestoreSeller(t *testing.T) {
	t.Run("should restore verification flag", func(t *testing.T) {
		s, err := seller.RestoreSeller(
			kernel.NewUUID(), "Acme Store", "shop@acme.example.com", "hash", true, nil,
			time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC))

		require.NoError(t, err)
		assert.True(t, s.EmailVerified())
	})
}

func TestSeller_VerifyEmail(t *testing.T) {
	s, err := seller.NewSeller(
		kernel.NewUUID(), "Acme Store", "shop@acme.example.com", "hash", nil,
		time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	s.VerifyEmail()
	assert.True(t, s.EmailVerified())
}
