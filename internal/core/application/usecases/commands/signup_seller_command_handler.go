package commands

import (
	"context"
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/seller"
	"shiptrack/internal/pkg/auth"
	"shiptrack/internal/pkg/errs"
)

// SignupSellerCommandHandler handles seller registration.
// Hashes the password, persists the unverified seller, and issues the email
// verification token for the new account.
type SignupSellerCommandHandler struct {
	uowFactory SellerUoWFactory
	hasher     auth.Hasher
	signer     auth.TokenSigner
}

// NewSignupSellerCommandHandler creates a handler for seller registration.
func NewSignupSellerCommandHandler(
	uowFactory SellerUoWFactory,
	hasher auth.Hasher,
	signer auth.TokenSigner,
) SignupSellerCommandHandler {
	return SignupSellerCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		signer:     signer,
	}
}

// Handle processes the registration command and returns the verification
// token for the new account. Fails with ErrEmailAlreadyRegistered when the
// email is taken.
func (h SignupSellerCommandHandler) Handle(ctx context.Context, cmd SignupSellerCommand) (string, error) {
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

	sellerRepo := uow.SellerRepository()
	if _, err = sellerRepo.GetByEmail(ctx, cmd.Email()); err == nil {
		return "", ErrEmailAlreadyRegistered
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return "", err
	}

	newSeller, err := seller.NewSeller(
		cmd.SellerID(),
		cmd.Name(),
		cmd.Email(),
		passwordHash,
		cmd.ZipCode(),
		time.Now().UTC(),
	)
	if err != nil {
		return "", err
	}

	if err = sellerRepo.Add(ctx, newSeller); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return h.signer.Sign(newSeller.ID().String(), auth.RoleSeller, auth.PurposeVerify, verifyTokenTTL)
}
