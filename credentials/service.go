// Package credentials registers accounts, verifies logins and runs the
// password reset flow against an injected user store.
package credentials

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/google/uuid"
	"github.com/raushankrgupta/nutritrack/models"
)

// MinPasswordLength applies to login, registration and reset.
const MinPasswordLength = 6

// Service implements the credential operations. It holds no state of its own;
// every call is a read-modify-write against the stores.
type Service struct {
	users  UserStore
	tokens ResetTokenStore
	logger *slog.Logger

	now       func() time.Time
	newCode   func() (string, error)
	newUserID func() string
}

// NewService builds a Service over the given stores.
func NewService(users UserStore, tokens ResetTokenStore, logger *slog.Logger) *Service {
	return &Service{
		users:     users,
		tokens:    tokens,
		logger:    logger,
		now:       time.Now,
		newCode:   generateResetCode,
		newUserID: func() string { return uuid.New().String() },
	}
}

// generateResetCode returns a uniform 6-digit code in 100000..999999.
func generateResetCode() (string, error) {
	const min int64 = 100000
	const span int64 = 900000

	n, err := rand.Int(rand.Reader, big.NewInt(span))
	if err != nil {
		return "", fmt.Errorf("crypto rand failed: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+min), nil
}

// validPassword counts UTF-16 code units, so a 3-emoji password is long enough.
func validPassword(p string) bool {
	return len(utf16.Encode([]rune(p))) >= MinPasswordLength
}

// Register creates an account with a hashed password.
func (s *Service) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	n := strings.TrimSpace(name)
	e := NormalizeEmail(email)
	if n == "" || e == "" || !validPassword(password) {
		return nil, ErrInvalidRegistration
	}

	existing, err := s.users.GetUser(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	now := s.now()
	user := &models.User{
		ID:           s.newUserID(),
		Name:         n,
		Email:        e,
		PasswordHash: HashPassword(password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.PutUser(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// VerifyLogin checks a password against the stored hash. Accounts stored
// without a hash take the supplied password's hash and are logged in.
func (s *Service) VerifyLogin(ctx context.Context, email, password string) (*models.User, error) {
	e := strings.TrimSpace(email)
	if e == "" || !validPassword(password) {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetUser(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	hash := HashPassword(password)
	if user.PasswordHash == "" {
		user.PasswordHash = hash
		user.UpdatedAt = s.now()
		if err := s.users.PutUser(ctx, user); err != nil {
			return nil, fmt.Errorf("migrate password hash: %w", err)
		}
		s.logger.Info("legacy account migrated to hashed password", "user_id", user.ID)
		return user, nil
	}

	if user.PasswordHash != hash {
		s.logger.Warn("login rejected: password mismatch", "user_id", user.ID)
		return nil, ErrInvalidPassword
	}
	return user, nil
}

// GetUser returns the account registered under email.
func (s *Service) GetUser(ctx context.Context, email string) (*models.User, error) {
	e := strings.TrimSpace(email)
	if e == "" {
		return nil, ErrMissingEmail
	}
	user, err := s.users.GetUser(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// RequestPasswordReset issues a fresh 6-digit code for email, replacing any
// pending one, and returns it for out-of-band delivery.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	e := strings.TrimSpace(email)
	if e == "" {
		return "", ErrMissingEmail
	}

	user, err := s.users.GetUser(ctx, e)
	if err != nil {
		return "", fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	code, err := s.newCode()
	if err != nil {
		return "", err
	}
	if err := s.tokens.SaveResetToken(ctx, e, code); err != nil {
		return "", fmt.Errorf("save reset code: %w", err)
	}

	s.logger.Info("password reset requested", "user_id", user.ID)
	return code, nil
}

// ResetPassword replaces the password when token matches the pending code.
// A wrong code leaves the pending code in place; a correct one consumes it.
func (s *Service) ResetPassword(ctx context.Context, email, token, newPassword string) error {
	e := strings.TrimSpace(email)
	t := strings.TrimSpace(token)
	if e == "" || t == "" || !validPassword(newPassword) {
		return ErrInvalidParameters
	}

	stored, err := s.tokens.GetResetToken(ctx, e)
	if err != nil {
		return fmt.Errorf("lookup reset code: %w", err)
	}
	if stored == "" || stored != t {
		s.logger.Warn("password reset rejected: code mismatch")
		return ErrInvalidResetCode
	}

	user, err := s.users.GetUser(ctx, e)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	user.PasswordHash = HashPassword(newPassword)
	user.UpdatedAt = s.now()
	if err := s.users.PutUser(ctx, user); err != nil {
		return fmt.Errorf("save password: %w", err)
	}
	if err := s.tokens.DeleteResetToken(ctx, e); err != nil {
		return fmt.Errorf("clear reset code: %w", err)
	}

	s.logger.Info("password reset completed", "user_id", user.ID)
	return nil
}

// ClearPasswordReset drops any pending reset code for email.
func (s *Service) ClearPasswordReset(ctx context.Context, email string) error {
	e := strings.TrimSpace(email)
	if e == "" {
		return ErrMissingEmail
	}
	return s.tokens.DeleteResetToken(ctx, e)
}

// DeleteUser removes the account and its pending reset code.
func (s *Service) DeleteUser(ctx context.Context, email string) error {
	e := strings.TrimSpace(email)
	if e == "" {
		return ErrMissingEmail
	}
	if err := s.users.DeleteUser(ctx, e); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if err := s.tokens.DeleteResetToken(ctx, e); err != nil {
		return fmt.Errorf("clear reset code: %w", err)
	}
	return nil
}
