package services

import (
	"context"

	"github.com/webgroup16/contacts_app/internal/core/domain"
)

// TokenIssuerSvc mints the scoped JWT variants used by the application.
type TokenIssuerSvc interface {
	// GenerateTokenPair issues a fresh access+refresh pair for the user.
	GenerateTokenPair(ctx context.Context, user *domain.User) (domain.TokenPair, error)

	// GenerateEmailConfirmationToken issues a confirmation token for email.
	GenerateEmailConfirmationToken(email string) (string, error)

	// GeneratePasswordResetToken issues a password-reset token for email.
	GeneratePasswordResetToken(email string) (string, error)
}

// TokenVerifierSvc validates tokens and extracts their subject.
// Every decode checks signature, expiry and the exact scope tag; any
// failure reports apperrors.ErrUnauthorized.
type TokenVerifierSvc interface {
	DecodeRefreshToken(token string) (email string, err error)
	DecodeEmailConfirmationToken(token string) (email string, err error)
	DecodePasswordResetToken(token string) (email string, err error)
}

// CurrentUserSvc resolves the account behind a bearer access token using
// the look-aside cache.
type CurrentUserSvc interface {
	// ResolveCurrentUser verifies an access token and loads its user,
	// cache first, store on miss.
	ResolveCurrentUser(ctx context.Context, accessToken string) (*domain.User, error)

	// CacheUser warms the look-aside cache with a fresh snapshot.
	CacheUser(ctx context.Context, user *domain.User)
}

// TokenSvcFacade combines token issuance, verification and user resolution.
type TokenSvcFacade interface {
	TokenIssuerSvc
	TokenVerifierSvc
	CurrentUserSvc
}
