package service

import (
	"errors"
	"time"

	"restaurant-ordering/order-svc/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

type sessionClaims struct {
	DisplayName string      `json:"name"`
	Email       string      `json:"email"`
	Role        domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 session tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, issuer: "order-svc"}
}

func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

func (t *TokenIssuer) Issue(sess *domain.Session) (string, error) {
	claims := sessionClaims{
		DisplayName: sess.DisplayName,
		Email:       sess.Email,
		Role:        sess.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   sess.UserID,
			ID:        sess.ID,
			IssuedAt:  jwt.NewNumericDate(sess.ExpiresAt.Add(-t.ttl)),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *TokenIssuer) Parse(token string) (*domain.Session, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(t.issuer))
	if err != nil {
		return nil, errors.Join(ErrUnauthenticated, err)
	}
	if claims.Subject == "" || claims.ID == "" {
		return nil, ErrUnauthenticated
	}

	sess := &domain.Session{
		ID:          claims.ID,
		UserID:      claims.Subject,
		DisplayName: claims.DisplayName,
		Email:       claims.Email,
		Role:        claims.Role,
	}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}
	return sess, nil
}
