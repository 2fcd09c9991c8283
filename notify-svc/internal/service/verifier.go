package service

import (
	"context"
	"errors"

	"restaurant-ordering/notify-svc/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "order-svc"

type RevocationChecker interface {
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

type VerifierInterface interface {
	Admin(ctx context.Context, token string) (*domain.Principal, error)
}

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenVerifier checks session tokens issued by order-svc. It shares the
// signing secret and the revocation keys but never issues tokens itself.
type TokenVerifier struct {
	secret  []byte
	revoked RevocationChecker
}

func NewTokenVerifier(secret string, revoked RevocationChecker) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret), revoked: revoked}
}

func (v *TokenVerifier) verify(ctx context.Context, token string) (*domain.Principal, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, errors.Join(ErrUnauthenticated, err)
	}
	if claims.Subject == "" || claims.ID == "" {
		return nil, ErrUnauthenticated
	}

	if v.revoked != nil {
		revoked, err := v.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, ErrUnauthenticated
		}
	}

	return &domain.Principal{UserID: claims.Subject, SessionID: claims.ID, Role: claims.Role}, nil
}

// Admin accepts only live administrator sessions.
func (v *TokenVerifier) Admin(ctx context.Context, token string) (*domain.Principal, error) {
	p, err := v.verify(ctx, token)
	if err != nil {
		return nil, err
	}
	if p.Role != domain.AdminRole {
		return nil, ErrForbidden
	}
	return p, nil
}

var _ VerifierInterface = (*TokenVerifier)(nil)
