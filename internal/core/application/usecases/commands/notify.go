package commands

import (
	"context"
	"log/slog"
	"time"

	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/ports"
)

const notifyTimeout = 5 * time.Second

// dispatchNotification publishes a status notification in the background,
// after the originating transaction has committed. Transitions into
// in_transit are too frequent to notify on and are skipped. Failures are
// logged and swallowed so the shipment operation is never affected.
func dispatchNotification(notifier ports.Notifier, logger *slog.Logger, notification ports.StatusNotification) {
	if notifier == nil || notification.Status == shipment.StatusInTransit {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := notifier.NotifyStatusChange(ctx, notification); err != nil {
			logger.ErrorContext(ctx, "Status notification failed",
				"shipment_id", notification.ShipmentID.String(),
				"status", notification.Status.String(),
				"error", err)
		}
	}()
}
