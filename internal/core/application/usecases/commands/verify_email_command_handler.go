package commands

import (
	"context"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/auth"
)

// VerifyEmailCommandHandler activates a freshly registered account.
// The verification token carries the account id and role, so a single
// endpoint serves both sellers and partners.
type VerifyEmailCommandHandler struct {
	uowFactory UoWFactory
	verifier   auth.TokenVerifier
}

// NewVerifyEmailCommandHandler creates a handler for email verification.
func NewVerifyEmailCommandHandler(uowFactory UoWFactory, verifier auth.TokenVerifier) VerifyEmailCommandHandler {
	return VerifyEmailCommandHandler{
		uowFactory: uowFactory,
		verifier:   verifier,
	}
}

// Handle verifies the token and marks the account's email as confirmed.
// Verifying an already confirmed account is a no-op. Returns
// auth.ErrTokenInvalid for bad or expired tokens.
func (h VerifyEmailCommandHandler) Handle(ctx context.Context, cmd VerifyEmailCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	claims, err := h.verifier.Verify(cmd.Token(), auth.PurposeVerify)
	if err != nil {
		return err
	}

	accountID, err := kernel.UUIDFromString(claims.Subject)
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

	switch claims.Role {
	case auth.RoleSeller:
		account, getErr := uow.SellerRepository().Get(ctx, accountID)
		if getErr != nil {
			return getErr
		}
		account.VerifyEmail()
		if updErr := uow.SellerRepository().Update(ctx, account); updErr != nil {
			return updErr
		}
	case auth.RolePartner:
		account, getErr := uow.PartnerRepository().Get(ctx, accountID)
		if getErr != nil {
			return getErr
		}
		account.VerifyEmail()
		if updErr := uow.PartnerRepository().Update(ctx, account); updErr != nil {
			return updErr
		}
	default:
		return auth.ErrTokenInvalid
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
