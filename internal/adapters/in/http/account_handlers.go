package http

import (
	"errors"
	"net/http"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/auth"
	"shiptrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type signupSellerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	ZipCode  *int   `json:"zip_code"`
}

type signupResponse struct {
	ID string `json:"id"`
	// VerificationToken is returned in the response body because email
	// delivery is handled by a separate communications service consuming the
	// notification topic.
	VerificationToken string `json:"verification_token"`
}

// SignupSeller registers a seller account and returns its email verification
// token.
func (s *Server) SignupSeller(ctx echo.Context) error {
	var request signupSellerRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	sellerID := kernel.NewUUID()
	cmd, err := commands.NewSignupSellerCommand(
		sellerID,
		request.Name,
		request.Email,
		request.Password,
		request.ZipCode,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	token, err := s.signupSellerCommandHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, signupResponse{
		ID:                sellerID.String(),
		VerificationToken: token,
	})
}

type signupPartnerRequest struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Password            string `json:"password"`
	ServiceableZipCodes []int  `json:"serviceable_zip_codes"`
	MaxCapacity         int    `json:"max_capacity"`
}

// SignupPartner registers a delivery partner account and returns its email
// verification token.
func (s *Server) SignupPartner(ctx echo.Context) error {
	var request signupPartnerRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	partnerID := kernel.NewUUID()
	cmd, err := commands.NewSignupPartnerCommand(
		partnerID,
		request.Name,
		request.Email,
		request.Password,
		request.ServiceableZipCodes,
		request.MaxCapacity,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	token, err := s.signupPartnerCommandHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, signupResponse{
		ID:                partnerID.String(),
		VerificationToken: token,
	})
}

type verifyEmailRequest struct {
	Token string `json:"token"`
}

// VerifyEmail marks the account referenced by the verification token as
// verified.
func (s *Server) VerifyEmail(ctx echo.Context) error {
	var request verifyEmailRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewVerifyEmailCommand(request.Token)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.verifyEmailCommandHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	Name        string `json:"name"`
}

// Login exchanges email and password for an access token.
// Partners must verify their email before they can log in; sellers may log in
// right away so they can create shipments while verification is pending.
func (s *Server) Login(ctx echo.Context) error {
	var request loginRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	query, err := queries.NewGetCredentialsQuery(request.Email, request.Role)
	if err != nil {
		return s.respondError(ctx, err)
	}

	credentials, err := s.getCredentialsQueryHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return s.respondError(ctx, ErrInvalidCredentials)
	}
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.hasher.Compare(credentials.PasswordHash, request.Password); err != nil {
		return s.respondError(ctx, ErrInvalidCredentials)
	}

	if request.Role == auth.RolePartner && !credentials.EmailVerified {
		return s.respondError(ctx, ErrEmailNotVerified)
	}

	token, err := s.signer.Sign(credentials.ID.String(), request.Role, auth.PurposeAccess, accessTokenTTL)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		AccessToken: token,
		Name:        credentials.Name,
	})
}

type updatePartnerRequest struct {
	ServiceableZipCodes []int `json:"serviceable_zip_codes"`
	MaxCapacity         *int  `json:"max_capacity"`
}

// UpdatePartner changes the authenticated partner's serviceable zip codes
// and capacity.
func (s *Server) UpdatePartner(ctx echo.Context) error {
	var request updatePartnerRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewUpdatePartnerCommand(
		actorID(ctx),
		request.ServiceableZipCodes,
		request.MaxCapacity,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.updatePartnerCommandHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type submitReviewRequest struct {
	Token   string  `json:"token"`
	Rating  int     `json:"rating"`
	Comment *string `json:"comment"`
}

// SubmitReview attaches a delivery review to the shipment referenced by the
// review token. The token is single-purpose, so no account is needed.
func (s *Server) SubmitReview(ctx echo.Context) error {
	var request submitReviewRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewSubmitReviewCommand(request.Token, request.Rating, request.Comment)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.submitReviewCommandHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}
