package shipment_test

import (
	"fmt"
	"testing"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(shipment.StatusUnknown))
		assert.Equal(t, 1, int(shipment.StatusPlaced))
		assert.Equal(t, 2, int(shipment.StatusInTransit))
		assert.Equal(t, 3, int(shipment.StatusOutForDelivery))
		assert.Equal(t, 4, int(shipment.StatusDelivered))
		assert.Equal(t, 5, int(shipment.StatusCancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []shipment.Status{
			shipment.StatusPlaced,
			shipment.StatusInTransit,
			shipment.StatusOutForDelivery,
			shipment.StatusDelivered,
			shipment.StatusCancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject StatusUnknown", func(t *testing.T) {
		err := shipment.StatusUnknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "value is invalid: status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []shipment.Status{
			shipment.Status(-1),
			shipment.Status(6),
			shipment.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire representation for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   shipment.Status
			expected string
		}{
			{shipment.StatusPlaced, "placed"},
			{shipment.StatusInTransit, "in_transit"},
			{shipment.StatusOutForDelivery, "out_for_delivery"},
			{shipment.StatusDelivered, "delivered"},
			{shipment.StatusCancelled, "cancelled"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return unknown for invalid statuses", func(t *testing.T) {
		invalidStatuses := []shipment.Status{
			shipment.StatusUnknown,
			shipment.Status(-1),
			shipment.Status(6),
		}

		for _, status := range invalidStatuses {
			assert.Equal(t, "unknown", status.String())
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every wire representation", func(t *testing.T) {
		testCases := []struct {
			value    string
			expected shipment.Status
		}{
			{"placed", shipment.StatusPlaced},
			{"in_transit", shipment.StatusInTransit},
			{"out_for_delivery", shipment.StatusOutForDelivery},
			{"delivered", shipment.StatusDelivered},
			{"cancelled", shipment.StatusCancelled},
		}

		for _, tc := range testCases {
			t.Run(tc.value, func(t *testing.T) {
				status, err := shipment.StatusFromString(tc.value)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, status)
			})
		}
	})

	t.Run("should reject unrecognized values", func(t *testing.T) {
		invalidValues := []string{"", "unknown", "PLACED", "shipped", "in transit"}

		for _, value := range invalidValues {
			t.Run(fmt.Sprintf("should reject %q", value), func(t *testing.T) {
				status, err := shipment.StatusFromString(value)

				require.Error(t, err)
				assert.Equal(t, shipment.StatusUnknown, status)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})

	t.Run("should round-trip with String", func(t *testing.T) {
		for _, status := range []shipment.Status{
			shipment.StatusPlaced,
			shipment.StatusInTransit,
			shipment.StatusOutForDelivery,
			shipment.StatusDelivered,
			shipment.StatusCancelled,
		} {
			parsed, err := shipment.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("delivered and cancelled are terminal", func(t *testing.T) {
		assert.True(t, shipment.StatusDelivered.IsTerminal())
		assert.True(t, shipment.StatusCancelled.IsTerminal())
	})

	t.Run("active statuses are not terminal", func(t *testing.T) {
		assert.False(t, shipment.StatusPlaced.IsTerminal())
		assert.False(t, shipment.StatusInTransit.IsTerminal())
		assert.False(t, shipment.StatusOutForDelivery.IsTerminal())
		assert.False(t, shipment.StatusUnknown.IsTerminal())
	})
}

func TestStatus_DefaultDescription(t *testing.T) {
	location, err := kernel.NewZipCode(10001)
	require.NoError(t, err)

	t.Run("should derive fixed wording per status", func(t *testing.T) {
		testCases := []struct {
			status   shipment.Status
			expected string
		}{
			{shipment.StatusPlaced, "assigned delivery partner"},
			{shipment.StatusOutForDelivery, "shipment out for delivery"},
			{shipment.StatusDelivered, "successfully delivered"},
			{shipment.StatusCancelled, "cancelled by seller"},
		}

		for _, tc := range testCases {
			t.Run(tc.status.String(), func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.status.DefaultDescription(location))
			})
		}
	})

	t.Run("in_transit should include the location", func(t *testing.T) {
		assert.Equal(t, "scanned at 10001", shipment.StatusInTransit.DefaultDescription(location))
	})
}
