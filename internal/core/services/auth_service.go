package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/webgroup16/contacts_app/internal/apperrors"
	"github.com/webgroup16/contacts_app/internal/core/domain"
	portsrepo "github.com/webgroup16/contacts_app/internal/core/ports/repositories"
	portssvc "github.com/webgroup16/contacts_app/internal/core/ports/services"
	"github.com/webgroup16/contacts_app/internal/platform/config"
)

// Claims is the JWT payload for every token the application issues. The
// scope tag discriminates the token's purpose so one variant can never be
// redeemed as another.
type Claims struct {
	jwt.RegisteredClaims
	Scope domain.TokenScope `json:"scope"`
}

// tokenService implements the TokenSvcFacade. It owns token issuance and
// verification plus the cache-aside lookup of the current user.
type tokenService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepository
	cache    portsrepo.UserCache
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userRepo portsrepo.UserRepository, cache portsrepo.UserCache) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:      cfg,
		userRepo: userRepo,
		cache:    cache,
	}
}

func (s *tokenService) issueToken(subject string, scope domain.TokenScope, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.JWTIssuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Scope: scope,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", scope, err)
	}
	return signed, nil
}

// decodeScoped verifies signature and expiry, then requires the exact scope
// tag. Any failure reports ErrUnauthorized.
func (s *tokenService) decodeScoped(tokenString string, scope domain.TokenScope) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.ErrUnauthorized
	}
	if claims.Scope != scope {
		return "", fmt.Errorf("invalid scope for token: %w", apperrors.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return "", apperrors.ErrUnauthorized
	}
	return claims.Subject, nil
}

func (s *tokenService) GenerateTokenPair(ctx context.Context, user *domain.User) (domain.TokenPair, error) {
	accessToken, err := s.issueToken(user.Email, domain.ScopeAccess, s.cfg.AccessTokenExpiry)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refreshToken, err := s.issueToken(user.Email, domain.ScopeRefresh, s.cfg.RefreshTokenExpiry)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

func (s *tokenService) GenerateEmailConfirmationToken(email string) (string, error) {
	return s.issueToken(email, domain.ScopeEmailConfirmation, s.cfg.EmailConfirmTokenExpiry)
}

func (s *tokenService) GeneratePasswordResetToken(email string) (string, error) {
	return s.issueToken(email, domain.ScopePasswordReset, s.cfg.PasswordResetTokenExpiry)
}

func (s *tokenService) DecodeRefreshToken(token string) (string, error) {
	return s.decodeScoped(token, domain.ScopeRefresh)
}

func (s *tokenService) DecodeEmailConfirmationToken(token string) (string, error) {
	return s.decodeScoped(token, domain.ScopeEmailConfirmation)
}

func (s *tokenService) DecodePasswordResetToken(token string) (string, error) {
	return s.decodeScoped(token, domain.ScopePasswordReset)
}

// ResolveCurrentUser verifies an access token and loads the user behind it,
// checking the look-aside cache before the store. On a miss each concurrent
// caller may load and rewrite the entry independently; entries are immutable
// snapshots within the TTL so last-write-wins is acceptable.
func (s *tokenService) ResolveCurrentUser(ctx context.Context, accessToken string) (*domain.User, error) {
	email, err := s.decodeScoped(accessToken, domain.ScopeAccess)
	if err != nil {
		return nil, err
	}

	user, err := s.cache.GetUser(ctx, email)
	if err == nil && user != nil {
		return user, nil
	}

	user, err = s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load user for access token: %w", err)
	}

	// Cache write failure is not fatal; the next request reloads from the store.
	_ = s.cache.SetUser(ctx, user)

	return user, nil
}

func (s *tokenService) CacheUser(ctx context.Context, user *domain.User) {
	_ = s.cache.SetUser(ctx, user)
}
