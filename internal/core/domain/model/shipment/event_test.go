package shipment_test

import (
	"testing"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	shipmentID := kernel.NewUUID()
	occurredAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("should create valid event", func(t *testing.T) {
		id := kernel.NewUUID()
		event, err := shipment.NewEvent(
			id, shipmentID, shipment.StatusInTransit,
			mustZip(t, 10001), "scanned at 10001", 1, occurredAt)

		require.NoError(t, err)
		require.NoError(t, event.Validate())
		assert.True(t, event.ID().IsEqual(id))
		assert.True(t, event.ShipmentID().IsEqual(shipmentID))
		assert.Equal(t, shipment.StatusInTransit, event.Status())
		assert.Equal(t, "scanned at 10001", event.Description())
		assert.Equal(t, 1, event.Sequence())
		assert.Equal(t, occurredAt, event.OccurredAt())
	})

	t.Run("should fail with empty description", func(t *testing.T) {
		event, err := shipment.NewEvent(
			kernel.NewUUID(), shipmentID, shipment.StatusInTransit,
			mustZip(t, 10001), "", 1, occurredAt)

		require.Error(t, err)
		assert.Nil(t, event)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with non-positive sequence", func(t *testing.T) {
		for _, sequence := range []int{0, -1} {
			event, err := shipment.NewEvent(
				kernel.NewUUID(), shipmentID, shipment.StatusInTransit,
				mustZip(t, 10001), "scanned", sequence, occurredAt)

			require.Error(t, err)
			assert.Nil(t, event)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		event, err := shipment.NewEvent(
			kernel.NewUUID(), shipmentID, shipment.StatusUnknown,
			mustZip(t, 10001), "scanned", 1, occurredAt)

		require.Error(t, err)
		assert.Nil(t, event)
	})

	t.Run("should fail with zero timestamp", func(t *testing.T) {
		event, err := shipment.NewEvent(
			kernel.NewUUID(), shipmentID, shipment.StatusInTransit,
			mustZip(t, 10001), "scanned", 1, time.Time{})

		require.Error(t, err)
		assert.Nil(t, event)
	})

	t.Run("should reject direct struct instantiation", func(t *testing.T) {
		var event shipment.Event
		require.ErrorIs(t, event.Validate(), shipment.ErrEventIsNotConstructed)
	})
}
