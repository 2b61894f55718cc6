// Package http exposes the REST API of the shipment tracking service.
//
// The server is a thin adapter: every endpoint binds a request body, builds a
// command or query through its validating constructor, and delegates to the
// application layer. No business rules live here; the handlers only translate
// between HTTP and the use case contracts.
package http

import (
	"time"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// accessTokenTTL bounds how long a login session stays valid.
const accessTokenTTL = 24 * time.Hour

// Server holds the application handlers behind the REST API.
type Server struct {
	createShipmentCommandHandler commands.CreateShipmentCommandHandler
	updateShipmentCommandHandler commands.UpdateShipmentCommandHandler
	cancelShipmentCommandHandler commands.CancelShipmentCommandHandler
	deleteShipmentCommandHandler commands.DeleteShipmentCommandHandler
	signupSellerCommandHandler   commands.SignupSellerCommandHandler
	signupPartnerCommandHandler  commands.SignupPartnerCommandHandler
	verifyEmailCommandHandler    commands.VerifyEmailCommandHandler
	updatePartnerCommandHandler  commands.UpdatePartnerCommandHandler
	submitReviewCommandHandler   commands.SubmitReviewCommandHandler

	getShipmentQueryHandler         queries.GetShipmentQueryHandler
	getShipmentTimelineQueryHandler queries.GetShipmentTimelineQueryHandler
	getOverdueShipmentsQueryHandler queries.GetOverdueShipmentsQueryHandler
	getCredentialsQueryHandler      queries.GetCredentialsQueryHandler

	hasher   auth.Hasher
	signer   auth.TokenSigner
	verifier auth.TokenVerifier
}

// NewServer creates a Server wired with all command and query handlers.
func NewServer(
	createShipmentCommandHandler commands.CreateShipmentCommandHandler,
	updateShipmentCommandHandler commands.UpdateShipmentCommandHandler,
	cancelShipmentCommandHandler commands.CancelShipmentCommandHandler,
	deleteShipmentCommandHandler commands.DeleteShipmentCommandHandler,
	signupSellerCommandHandler commands.SignupSellerCommandHandler,
	signupPartnerCommandHandler commands.SignupPartnerCommandHandler,
	verifyEmailCommandHandler commands.VerifyEmailCommandHandler,
	updatePartnerCommandHandler commands.UpdatePartnerCommandHandler,
	submitReviewCommandHandler commands.SubmitReviewCommandHandler,
	getShipmentQueryHandler queries.GetShipmentQueryHandler,
	getShipmentTimelineQueryHandler queries.GetShipmentTimelineQueryHandler,
	getOverdueShipmentsQueryHandler queries.GetOverdueShipmentsQueryHandler,
	getCredentialsQueryHandler queries.GetCredentialsQueryHandler,
	hasher auth.Hasher,
	signer auth.TokenSigner,
	verifier auth.TokenVerifier,
) *Server {
	return &Server{
		createShipmentCommandHandler: createShipmentCommandHandler,
		updateShipmentCommandHandler: updateShipmentCommandHandler,
		cancelShipmentCommandHandler: cancelShipmentCommandHandler,
		deleteShipmentCommandHandler: deleteShipmentCommandHandler,
		signupSellerCommandHandler:   signupSellerCommandHandler,
		signupPartnerCommandHandler:  signupPartnerCommandHandler,
		verifyEmailCommandHandler:    verifyEmailCommandHandler,
		updatePartnerCommandHandler:  updatePartnerCommandHandler,
		submitReviewCommandHandler:   submitReviewCommandHandler,

		getShipmentQueryHandler:         getShipmentQueryHandler,
		getShipmentTimelineQueryHandler: getShipmentTimelineQueryHandler,
		getOverdueShipmentsQueryHandler: getOverdueShipmentsQueryHandler,
		getCredentialsQueryHandler:      getCredentialsQueryHandler,

		hasher:   hasher,
		signer:   signer,
		verifier: verifier,
	}
}

// RegisterRoutes mounts all endpoints on the echo instance under /api/v1.
//
// Tracking endpoints (shipment lookup, timeline, reviews) are public so a
// client can follow a shipment without an account. Mutating shipment
// endpoints require a seller or partner access token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/sellers", s.SignupSeller)
	api.POST("/partners", s.SignupPartner)
	api.POST("/auth/verify", s.VerifyEmail)
	api.POST("/auth/login", s.Login)

	api.POST("/shipments", s.CreateShipment, s.requireRole(auth.RoleSeller))
	api.GET("/shipments/overdue", s.ListOverdueShipments)
	api.GET("/shipments/:id", s.GetShipment)
	api.GET("/shipments/:id/timeline", s.GetShipmentTimeline)
	api.PATCH("/shipments/:id", s.UpdateShipment, s.requireRole(auth.RolePartner))
	api.POST("/shipments/:id/cancel", s.CancelShipment, s.requireRole(auth.RoleSeller))
	api.DELETE("/shipments/:id", s.DeleteShipment, s.requireRole(auth.RoleSeller))

	api.PATCH("/partners/me", s.UpdatePartner, s.requireRole(auth.RolePartner))
	api.POST("/reviews", s.SubmitReview)
}
