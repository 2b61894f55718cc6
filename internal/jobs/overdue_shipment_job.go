package jobs

import (
	"context"
	"log/slog"

	"shiptrack/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueShipmentJob periodically sweeps for active shipments past their
// estimated delivery time and logs them for operational follow-up.
// The sweep is read-only; it never mutates shipment state.
type OverdueShipmentJob struct {
	handler queries.GetOverdueShipmentsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueShipmentJob creates a new job for the overdue shipment sweep.
// Uses GetOverdueShipmentsQueryHandler to find shipments past their estimate
// every minute.
func NewOverdueShipmentJob(handler queries.GetOverdueShipmentsQueryHandler, logger *slog.Logger) *OverdueShipmentJob {
	return &OverdueShipmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_shipment_job"),
	}
}

// Start begins the overdue shipment sweep to run every minute.
func (j *OverdueShipmentJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOverdueShipmentsQuery()

		overdue, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue shipment sweep failed", "error", err)
			return
		}

		for _, s := range overdue {
			j.logger.WarnContext(ctx, "Shipment past estimated delivery",
				"shipment_id", s.ID.String(),
				"status", s.Status,
				"partner", s.PartnerName,
				"estimated_delivery", s.EstimatedDelivery,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue shipment sweep started (running every minute)")
	return nil
}

// Stop stops the overdue shipment sweep.
func (j *OverdueShipmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue shipment sweep stopped")
}
