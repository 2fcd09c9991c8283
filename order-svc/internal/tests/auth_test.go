package tests

import (
	"context"
	"testing"
	"time"

	"restaurant-ordering/order-svc/internal/domain"
	"restaurant-ordering/order-svc/internal/mocks"
	"restaurant-ordering/order-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	store    *mocks.DocumentStore
	sessions *mocks.SessionStore
	carts    *mocks.CartStore
	svc      *service.AuthService
}

func newAuthFixture(t *testing.T) authFixture {
	f := authFixture{
		store:    mocks.NewDocumentStore(t),
		sessions: mocks.NewSessionStore(t),
		carts:    mocks.NewCartStore(t),
	}
	tokens := service.NewTokenIssuer("test-secret", time.Hour)
	f.svc = service.NewAuthService(f.store, f.sessions, f.carts, tokens, quietLogger())
	return f
}

func (f authFixture) expectUser(t *testing.T, email, userID, password string, role domain.Role) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	f.store.On("Get", mock.Anything, "emails", email).
		Return(docOf(t, "emails", email, map[string]string{"user_id": userID}), nil).Once()
	f.store.On("Get", mock.Anything, "users", userID).
		Return(docOf(t, "users", userID, map[string]any{
			"email":         email,
			"display_name":  "Ana",
			"role":          role,
			"password_hash": string(hash),
		}), nil).Once()
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name         string
		email        string
		password     string
		prepareMocks func(f authFixture)
		wantErr      error
	}{
		{
			name:     "new customer",
			email:    "  Ana@Example.com ",
			password: "paella123",
			prepareMocks: func(f authFixture) {
				f.store.On("Create", mock.Anything, "emails", "ana@example.com", mock.Anything).Return(nil).Once()
				f.store.On("Set", mock.Anything, "users", mock.AnythingOfType("string"), mock.Anything, false).Return(nil).Once()
			},
		},
		{
			name:     "email already registered",
			email:    "ana@example.com",
			password: "paella123",
			prepareMocks: func(f authFixture) {
				f.store.On("Create", mock.Anything, "emails", "ana@example.com", mock.Anything).Return(domain.ErrAlreadyExists).Once()
			},
			wantErr: service.ErrEmailTaken,
		},
		{
			name:         "invalid email",
			email:        "not-an-email",
			password:     "paella123",
			prepareMocks: func(authFixture) {},
			wantErr:      service.ErrInvalidRegistration,
		},
		{
			name:         "short password",
			email:        "ana@example.com",
			password:     "123",
			prepareMocks: func(authFixture) {},
			wantErr:      service.ErrInvalidRegistration,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newAuthFixture(t)
			testCase.prepareMocks(f)

			user, err := f.svc.Register(context.Background(), testCase.email, testCase.password, "Ana")
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, user.ID)
			assert.Equal(t, "ana@example.com", user.Email)
			assert.Equal(t, "ana", user.Username)
			assert.Equal(t, domain.RoleCustomer, user.Role)
		})
	}
}

func TestAuthService_LoginAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)
	f.expectUser(t, "chef@example.com", "admin-1", "s3cret-pass", domain.RoleAdmin)

	token, sess, err := f.svc.Login(ctx, "Chef@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin-1", sess.UserID)
	assert.Equal(t, domain.RoleAdmin, sess.Role)
	assert.True(t, sess.ExpiresAt.After(time.Now()))

	f.sessions.On("IsRevoked", ctx, sess.ID).Return(false, nil).Once()
	resolved, err := f.svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, resolved.ID)
	assert.Equal(t, "admin-1", resolved.UserID)
	assert.Equal(t, "Ana", resolved.DisplayName)
	assert.True(t, resolved.IsAdmin())
	assert.True(t, sess.ExpiresAt.Equal(resolved.ExpiresAt))
}

func TestAuthService_LoginFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.expectUser(t, "ana@example.com", "u1", "right-password", domain.RoleCustomer)
		_, _, err := f.svc.Login(ctx, "ana@example.com", "wrong-password")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newAuthFixture(t)
		f.store.On("Get", mock.Anything, "emails", "ghost@example.com").Return(domain.Document{}, domain.ErrNotFound).Once()
		_, _, err := f.svc.Login(ctx, "ghost@example.com", "whatever")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown role is treated as customer", func(t *testing.T) {
		f := newAuthFixture(t)
		f.expectUser(t, "ana@example.com", "u1", "right-password", domain.Role("superuser"))
		_, sess, err := f.svc.Login(ctx, "ana@example.com", "right-password")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleCustomer, sess.Role)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)
	f.expectUser(t, "ana@example.com", "u1", "right-password", domain.RoleCustomer)
	token, sess, err := f.svc.Login(ctx, "ana@example.com", "right-password")
	require.NoError(t, err)

	t.Run("revoked session", func(t *testing.T) {
		f.sessions.On("IsRevoked", ctx, sess.ID).Return(true, nil).Once()
		_, err := f.svc.Authenticate(ctx, token)
		assert.ErrorIs(t, err, service.ErrUnauthenticated)
	})

	t.Run("tampered token", func(t *testing.T) {
		_, err := f.svc.Authenticate(ctx, token+"x")
		assert.ErrorIs(t, err, service.ErrUnauthenticated)
	})

	t.Run("token from another secret", func(t *testing.T) {
		other := service.NewTokenIssuer("other-secret", time.Hour)
		forged, err := other.Issue(&domain.Session{ID: "s", UserID: "u1", Role: domain.RoleAdmin, ExpiresAt: time.Now().Add(time.Hour)})
		require.NoError(t, err)
		_, err = f.svc.Authenticate(ctx, forged)
		assert.ErrorIs(t, err, service.ErrUnauthenticated)
	})

	t.Run("expired token", func(t *testing.T) {
		issuer := service.NewTokenIssuer("test-secret", time.Hour)
		expired, err := issuer.Issue(&domain.Session{ID: "s", UserID: "u1", ExpiresAt: time.Now().Add(-time.Minute)})
		require.NoError(t, err)
		_, err = f.svc.Authenticate(ctx, expired)
		assert.ErrorIs(t, err, service.ErrUnauthenticated)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := f.svc.Authenticate(ctx, "")
		assert.ErrorIs(t, err, service.ErrUnauthenticated)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)
	sess := &domain.Session{ID: "s1", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}

	f.sessions.On("Revoke", ctx, "s1", sess.ExpiresAt).Return(nil).Once()
	f.carts.On("Clear", ctx, "s1").Return(nil).Once()

	assert.NoError(t, f.svc.Logout(ctx, sess))
	assert.ErrorIs(t, f.svc.Logout(ctx, nil), service.ErrUnauthenticated)
}

func TestAuthService_SetRole(t *testing.T) {
	ctx := context.Background()

	t.Run("promote customer", func(t *testing.T) {
		f := newAuthFixture(t)
		f.expectUser(t, "ana@example.com", "u1", "paella123", domain.RoleCustomer)
		f.store.On("Set", mock.Anything, "users", "u1", map[string]any{"role": domain.RoleAdmin}, true).Return(nil).Once()

		user, err := f.svc.SetRole(ctx, "ANA@example.com", domain.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})

	t.Run("already admin", func(t *testing.T) {
		f := newAuthFixture(t)
		f.expectUser(t, "chef@example.com", "admin-1", "s3cret-pass", domain.RoleAdmin)

		user, err := f.svc.SetRole(ctx, "chef@example.com", domain.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newAuthFixture(t)
		f.store.On("Get", mock.Anything, "emails", "ghost@example.com").Return(domain.Document{}, domain.ErrNotFound).Once()

		_, err := f.svc.SetRole(ctx, "ghost@example.com", domain.RoleAdmin)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("unknown role", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.svc.SetRole(ctx, "ana@example.com", domain.Role("chef"))
		assert.ErrorIs(t, err, service.ErrInvalidRole)
	})
}
