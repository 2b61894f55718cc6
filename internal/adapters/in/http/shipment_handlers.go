package http

import (
	"net/http"
	"time"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type createShipmentRequest struct {
	Content     string  `json:"content"`
	Weight      float64 `json:"weight"`
	Destination int     `json:"destination"`
	ClientEmail string  `json:"client_email"`
	ClientPhone *string `json:"client_phone"`
}

type createShipmentResponse struct {
	ID string `json:"id"`
}

// CreateShipment registers a new shipment for the authenticated seller and
// assigns a delivery partner serving the destination.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var request createShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(
		shipmentID,
		actorID(ctx),
		request.Content,
		request.Weight,
		request.Destination,
		request.ClientEmail,
		request.ClientPhone,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.createShipmentCommandHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createShipmentResponse{ID: shipmentID.String()})
}

type updateShipmentRequest struct {
	Status            *string    `json:"status"`
	Location          *int       `json:"location"`
	Description       string     `json:"description"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
}

// UpdateShipment records a progress update from the assigned partner:
// a status change, a location checkpoint, a new delivery estimate, or any
// combination of those.
func (s *Server) UpdateShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var request updateShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	var status *shipment.Status
	if request.Status != nil {
		parsed, err := shipment.StatusFromString(*request.Status)
		if err != nil {
			return s.respondError(ctx, err)
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateShipmentCommand(
		actorID(ctx),
		shipmentID,
		status,
		request.Location,
		request.Description,
		request.EstimatedDelivery,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.updateShipmentCommandHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelShipment cancels a shipment owned by the authenticated seller.
func (s *Server) CancelShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCancelShipmentCommand(actorID(ctx), shipmentID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.cancelShipmentCommandHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteShipment removes a shipment together with its events and review.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteShipmentCommand(actorID(ctx), shipmentID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.deleteShipmentCommandHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type reviewResponse struct {
	Rating  int     `json:"rating"`
	Comment *string `json:"comment,omitempty"`
}

type shipmentResponse struct {
	ID                string          `json:"id"`
	Content           string          `json:"content"`
	Weight            float64         `json:"weight"`
	Destination       string          `json:"destination"`
	Status            string          `json:"status"`
	ClientEmail       string          `json:"client_email"`
	ClientPhone       *string         `json:"client_phone,omitempty"`
	PartnerName       string          `json:"partner_name,omitempty"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
	CreatedAt         time.Time       `json:"created_at"`
	Review            *reviewResponse `json:"review,omitempty"`
}

// GetShipment serves the shipment read model for tracking pages.
func (s *Server) GetShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.getShipmentQueryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := shipmentResponse{
		ID:                result.ID.String(),
		Content:           result.Content,
		Weight:            result.Weight,
		Destination:       result.Destination.String(),
		Status:            result.Status,
		ClientEmail:       result.ClientEmail,
		ClientPhone:       result.ClientPhone,
		PartnerName:       result.PartnerName,
		EstimatedDelivery: result.EstimatedDelivery,
		CreatedAt:         result.CreatedAt,
	}
	if result.Review != nil {
		response.Review = &reviewResponse{
			Rating:  result.Review.Rating,
			Comment: result.Review.Comment,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type timelineEntryResponse struct {
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// GetShipmentTimeline serves the shipment's event history, newest-first.
func (s *Server) GetShipmentTimeline(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetShipmentTimelineQuery(shipmentID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	entries, err := s.getShipmentTimelineQueryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]timelineEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, timelineEntryResponse{
			Status:      entry.Status,
			Location:    entry.Location.String(),
			Description: entry.Description,
			OccurredAt:  entry.OccurredAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

type overdueShipmentResponse struct {
	ID                string    `json:"id"`
	Destination       string    `json:"destination"`
	Status            string    `json:"status"`
	PartnerName       string    `json:"partner_name,omitempty"`
	EstimatedDelivery time.Time `json:"estimated_delivery"`
}

// ListOverdueShipments serves active shipments past their estimated delivery
// time, soonest-overdue first.
func (s *Server) ListOverdueShipments(ctx echo.Context) error {
	query := queries.NewGetOverdueShipmentsQuery()

	overdue, err := s.getOverdueShipmentsQueryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]overdueShipmentResponse, 0, len(overdue))
	for _, item := range overdue {
		response = append(response, overdueShipmentResponse{
			ID:                item.ID.String(),
			Destination:       item.Destination.String(),
			Status:            item.Status,
			PartnerName:       item.PartnerName,
			EstimatedDelivery: item.EstimatedDelivery,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}
