package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"restaurant-ordering/order-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// userRecord is the stored form of a user. The hash never leaves the service.
type userRecord struct {
	domain.User
	PasswordHash string `json:"password_hash"`
}

type emailRecord struct {
	UserID string `json:"user_id"`
}

type AuthService struct {
	store    DocumentStore
	sessions SessionStore
	carts    CartStore
	tokens   *TokenIssuer
	now      func() time.Time
	log      *logrus.Entry
}

func NewAuthService(store DocumentStore, sessions SessionStore, carts CartStore, tokens *TokenIssuer, log *logrus.Entry) *AuthService {
	return &AuthService{
		store:    store,
		sessions: sessions,
		carts:    carts,
		tokens:   tokens,
		now:      time.Now,
		log:      log,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a customer account. The email is reserved first so two
// concurrent sign-ups with the same address cannot both succeed.
func (s *AuthService) Register(ctx context.Context, email, password, displayName string) (domain.User, error) {
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.User{}, ErrInvalidRegistration
	}
	if len(password) < minPasswordLength {
		return domain.User{}, ErrInvalidRegistration
	}

	id, err := uuid.NewV7()
	if err != nil {
		return domain.User{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	err = s.store.Create(ctx, emailsCollection, email, emailRecord{UserID: id.String()})
	if errors.Is(err, domain.ErrAlreadyExists) {
		return domain.User{}, ErrEmailTaken
	}
	if err != nil {
		return domain.User{}, unavailable("reserve email", err)
	}

	username, _, _ := strings.Cut(email, "@")
	user := domain.User{
		ID:          id.String(),
		Email:       email,
		Username:    username,
		DisplayName: strings.TrimSpace(displayName),
		Role:        domain.RoleCustomer,
		CreatedAt:   s.now().UTC(),
	}
	record := userRecord{User: user, PasswordHash: string(hash)}
	if err := s.store.Set(ctx, usersCollection, user.ID, record, false); err != nil {
		if delErr := s.store.Delete(ctx, emailsCollection, email); delErr != nil {
			s.log.WithError(delErr).WithField("email", email).Warn("could not release email reservation")
		}
		return domain.User{}, unavailable("create user", err)
	}

	s.log.WithField("user_id", user.ID).Info("user registered")
	return user, nil
}

func (s *AuthService) lookup(ctx context.Context, email string) (*userRecord, error) {
	doc, err := s.store.Get(ctx, emailsCollection, email)
	if err != nil {
		return nil, err
	}
	var ref emailRecord
	if err := doc.Decode(&ref); err != nil {
		return nil, err
	}

	doc, err = s.store.Get(ctx, usersCollection, ref.UserID)
	if err != nil {
		return nil, err
	}
	var record userRecord
	if err := doc.Decode(&record); err != nil {
		return nil, err
	}
	record.ID = doc.ID
	return &record, nil
}

// Login checks the password and opens a new session. The role stored on the
// user record is copied into the session token here and nowhere else.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Session, error) {
	record, err := s.lookup(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, unavailable("login", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	role := record.Role
	if role != domain.RoleAdmin {
		role = domain.RoleCustomer
	}
	sess := &domain.Session{
		ID:          uuid.NewString(),
		UserID:      record.ID,
		DisplayName: record.DisplayName,
		Email:       record.Email,
		Role:        role,
		ExpiresAt:   s.now().Add(s.tokens.TTL()).UTC().Truncate(time.Second),
	}
	token, err := s.tokens.Issue(sess)
	if err != nil {
		return "", nil, err
	}

	s.log.WithFields(logrus.Fields{"user_id": sess.UserID, "role": sess.Role}).Info("user logged in")
	return token, sess, nil
}

// Logout revokes the session and drops its cart.
func (s *AuthService) Logout(ctx context.Context, sess *domain.Session) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	if err := s.sessions.Revoke(ctx, sess.ID, sess.ExpiresAt); err != nil {
		return unavailable("revoke session", err)
	}
	if err := s.carts.Clear(ctx, sess.ID); err != nil {
		s.log.WithError(err).WithField("session_id", sess.ID).Warn("cart not cleared on logout")
	}
	return nil
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	sess, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.sessions.IsRevoked(ctx, sess.ID)
	if err != nil {
		return nil, unavailable("check session", err)
	}
	if revoked {
		return nil, ErrUnauthenticated
	}
	return sess, nil
}

// SetRole changes the stored role of a user. Sessions already issued keep
// the role they were opened with.
func (s *AuthService) SetRole(ctx context.Context, email string, role domain.Role) (domain.User, error) {
	if role != domain.RoleAdmin && role != domain.RoleCustomer {
		return domain.User{}, ErrInvalidRole
	}

	record, err := s.lookup(ctx, normalizeEmail(email))
	if err != nil {
		return domain.User{}, unavailable("find user", err)
	}
	if record.Role == role {
		return record.User, nil
	}

	patch := map[string]any{"role": role}
	if err := s.store.Set(ctx, usersCollection, record.ID, patch, true); err != nil {
		return domain.User{}, unavailable("set role", err)
	}

	s.log.WithFields(logrus.Fields{"user_id": record.ID, "role": role}).Info("user role changed")
	record.Role = role
	return record.User, nil
}

var _ AuthServiceInterface = (*AuthService)(nil)
