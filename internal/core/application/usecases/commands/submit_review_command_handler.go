package commands

import (
	"context"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/auth"
)

// SubmitReviewCommandHandler handles client review submissions.
// The review token references the shipment directly; the single-use property
// comes from the aggregate, which refuses a second review.
type SubmitReviewCommandHandler struct {
	uowFactory ShipmentUoWFactory
	verifier   auth.TokenVerifier
}

// NewSubmitReviewCommandHandler creates a handler for review submission.
func NewSubmitReviewCommandHandler(
	uowFactory ShipmentUoWFactory,
	verifier auth.TokenVerifier,
) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
		verifier:   verifier,
	}
}

// Handle verifies the token and attaches the review to its shipment.
//
// Returns:
//   - auth.ErrTokenInvalid for bad or expired tokens
//   - shipment.ErrShipmentNotTerminal before delivery or cancellation
//   - shipment.ErrReviewAlreadyAttached on a second submission
func (h SubmitReviewCommandHandler) Handle(ctx context.Context, cmd SubmitReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	claims, err := h.verifier.Verify(cmd.Token(), auth.PurposeReview)
	if err != nil {
		return err
	}

	shipmentID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return auth.ErrTokenInvalid
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	tracked, err := shipmentRepo.Get(ctx, shipmentID)
	if err != nil {
		return err
	}

	review, err := shipment.NewReview(kernel.NewUUID(), cmd.Rating(), cmd.Comment(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = tracked.AttachReview(review); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, tracked); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
