package commands

import (
	"context"
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/partner"
	"shiptrack/internal/pkg/auth"
	"shiptrack/internal/pkg/errs"
)

// verifyTokenTTL bounds how long a signup verification link stays valid.
const verifyTokenTTL = 24 * time.Hour

// ErrEmailAlreadyRegistered is returned when a signup reuses an email that
// already belongs to an account of the same role.
var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// SignupPartnerCommandHandler handles delivery partner registration.
// Hashes the password, persists the unverified partner, and issues the email
// verification token the partner must present to activate the account.
type SignupPartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
	hasher     auth.Hasher
	signer     auth.TokenSigner
}

// NewSignupPartnerCommandHandler creates a handler for partner registration.
func NewSignupPartnerCommandHandler(
	uowFactory PartnerUoWFactory,
	hasher auth.Hasher,
	signer auth.TokenSigner,
) SignupPartnerCommandHandler {
	return SignupPartnerCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		signer:     signer,
	}
}

// Handle processes the registration command and returns the verification
// token for the new account. Fails with ErrEmailAlreadyRegistered when the
// email is taken.
func (h SignupPartnerCommandHandler) Handle(ctx context.Context, cmd SignupPartnerCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()
	if _, err = partnerRepo.GetByEmail(ctx, cmd.Email()); err == nil {
		return "", ErrEmailAlreadyRegistered
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return "", err
	}

	newPartner, err := partner.NewPartner(
		cmd.PartnerID(),
		cmd.Name(),
		cmd.Email(),
		passwordHash,
		cmd.ServiceableZipCodes(),
		cmd.MaxCapacity(),
		time.Now().UTC(),
	)
	if err != nil {
		return "", err
	}

	if err = partnerRepo.Add(ctx, newPartner); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return h.signer.Sign(newPartner.ID().String(), auth.RolePartner, auth.PurposeVerify, verifyTokenTTL)
}
