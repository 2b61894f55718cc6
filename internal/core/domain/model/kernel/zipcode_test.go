package kernel_test

import (
	"testing"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZipCode(t *testing.T) {
	t.Run("should create valid zip codes", func(t *testing.T) {
		testCases := []int{10000, 10001, 55555, 99999}

		for _, value := range testCases {
			zip, err := kernel.NewZipCode(value)
			require.NoError(t, err)
			assert.Equal(t, value, int(zip))
		}
	})

	t.Run("should reject out of range values", func(t *testing.T) {
		testCases := []int{-1, 0, 9999, 100000}

		for _, value := range testCases {
			_, err := kernel.NewZipCode(value)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

func TestZipCode_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var zip kernel.ZipCode
		require.Error(t, zip.Validate())
	})

	t.Run("constructed value is valid", func(t *testing.T) {
		zip, err := kernel.NewZipCode(10001)
		require.NoError(t, err)
		require.NoError(t, zip.Validate())
	})
}

func TestZipCode_String(t *testing.T) {
	zip, err := kernel.NewZipCode(10001)
	require.NoError(t, err)
	assert.Equal(t, "10001", zip.String())
}

func TestZipCode_IsEqual(t *testing.T) {
	a, err := kernel.NewZipCode(10001)
	require.NoError(t, err)
	b, err := kernel.NewZipCode(10001)
	require.NoError(t, err)
	c, err := kernel.NewZipCode(10002)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
