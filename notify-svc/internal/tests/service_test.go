package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant-ordering/notify-svc/internal/domain"
	"restaurant-ordering/notify-svc/internal/mocks"
	"restaurant-ordering/notify-svc/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_ListClampsLimit(t *testing.T) {
	store := mocks.NewNotificationStore(t)
	store.On("List", mock.Anything, service.DefaultListLimit).Return([]domain.Notification{{ID: "order_o1"}}, nil).Twice()
	store.On("List", mock.Anything, 5).Return([]domain.Notification{}, nil).Once()

	svc := service.NewNotificationService(store)

	got, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.List(context.Background(), 10000)
	require.NoError(t, err)

	_, err = svc.List(context.Background(), 5)
	require.NoError(t, err)
}

func TestNotificationService_MarkRead(t *testing.T) {
	store := mocks.NewNotificationStore(t)
	store.On("MarkRead", mock.Anything, "order_o1").Return(&domain.Notification{ID: "order_o1", Read: true}, nil)
	store.On("MarkRead", mock.Anything, "missing").Return(nil, service.ErrNotFound)

	svc := service.NewNotificationService(store)

	n, err := svc.MarkRead(context.Background(), "order_o1")
	require.NoError(t, err)
	assert.True(t, n.Read)

	_, err = svc.MarkRead(context.Background(), "missing")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestAnalyticsService(t *testing.T) {
	ranking := []domain.DishPopularity{{DishID: "paella", Category: "mains", Name: "Paella", Score: 7}}

	store := mocks.NewPopularityStore(t)
	store.On("Top", mock.Anything, mock.MatchedBy(func(day *time.Time) bool {
		return day != nil && day.Location() == time.UTC
	}), 10).Return(ranking, nil).Once()
	store.On("Top", mock.Anything, (*time.Time)(nil), 3).Return(ranking, nil).Once()

	svc := service.NewAnalyticsService(store)

	got, err := svc.TopToday(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, ranking, got)

	got, err = svc.TopAllTime(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, ranking, got)
}

const verifierSecret = "test-secret"

func signToken(t *testing.T, secret, issuer, role string, expires time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "u1",
		"jti":  "s1",
		"iss":  issuer,
		"role": role,
		"exp":  expires.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestTokenVerifier_Admin(t *testing.T) {
	later := time.Now().Add(time.Hour)

	tests := []struct {
		name       string
		token      string
		setupMocks func(*mocks.RevocationChecker)
		wantErr    error
	}{
		{
			name:  "live admin session",
			token: signToken(t, verifierSecret, "order-svc", "admin", later),
			setupMocks: func(revoked *mocks.RevocationChecker) {
				revoked.On("IsRevoked", mock.Anything, "s1").Return(false, nil)
			},
		},
		{
			name:  "customer session",
			token: signToken(t, verifierSecret, "order-svc", "customer", later),
			setupMocks: func(revoked *mocks.RevocationChecker) {
				revoked.On("IsRevoked", mock.Anything, "s1").Return(false, nil)
			},
			wantErr: service.ErrForbidden,
		},
		{
			name:  "revoked session",
			token: signToken(t, verifierSecret, "order-svc", "admin", later),
			setupMocks: func(revoked *mocks.RevocationChecker) {
				revoked.On("IsRevoked", mock.Anything, "s1").Return(true, nil)
			},
			wantErr: service.ErrUnauthenticated,
		},
		{
			name:       "foreign issuer",
			token:      signToken(t, verifierSecret, "someone-else", "admin", later),
			setupMocks: func(*mocks.RevocationChecker) {},
			wantErr:    service.ErrUnauthenticated,
		},
		{
			name:       "wrong secret",
			token:      signToken(t, "other-secret", "order-svc", "admin", later),
			setupMocks: func(*mocks.RevocationChecker) {},
			wantErr:    service.ErrUnauthenticated,
		},
		{
			name:       "expired",
			token:      signToken(t, verifierSecret, "order-svc", "admin", time.Now().Add(-time.Minute)),
			setupMocks: func(*mocks.RevocationChecker) {},
			wantErr:    service.ErrUnauthenticated,
		},
		{
			name:       "missing",
			setupMocks: func(*mocks.RevocationChecker) {},
			wantErr:    service.ErrUnauthenticated,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			revoked := mocks.NewRevocationChecker(t)
			testCase.setupMocks(revoked)

			verifier := service.NewTokenVerifier(verifierSecret, revoked)
			p, err := verifier.Admin(context.Background(), testCase.token)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", p.UserID)
			assert.Equal(t, "s1", p.SessionID)
		})
	}
}

func TestTokenVerifier_RevocationLookupFails(t *testing.T) {
	revoked := mocks.NewRevocationChecker(t)
	revoked.On("IsRevoked", mock.Anything, "s1").Return(false, errors.New("redis down"))

	verifier := service.NewTokenVerifier(verifierSecret, revoked)
	_, err := verifier.Admin(context.Background(), signToken(t, verifierSecret, "order-svc", "admin", time.Now().Add(time.Hour)))

	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrUnauthenticated)
}
