package credentials

import (
	"context"
	"errors"
	"strings"

	"github.com/raushankrgupta/nutritrack/models"
	"github.com/raushankrgupta/nutritrack/storage"
)

// UserStore looks up credential records by email, case-insensitively.
// GetUser returns (nil, nil) when no record exists.
type UserStore interface {
	GetUser(ctx context.Context, email string) (*models.User, error)
	PutUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, email string) error
}

// ResetTokenStore holds at most one pending reset code per email.
// GetResetToken returns "" when nothing is pending.
type ResetTokenStore interface {
	GetResetToken(ctx context.Context, email string) (string, error)
	SaveResetToken(ctx context.Context, email, code string) error
	DeleteResetToken(ctx context.Context, email string) error
}

// NormalizeEmail trims and lower-cases an email for use as a key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func userKey(email string) string  { return "user:" + NormalizeEmail(email) }
func resetKey(email string) string { return "reset:" + NormalizeEmail(email) }

// KVStore implements UserStore and ResetTokenStore on a storage.Store.
type KVStore struct {
	kv storage.Store
}

// NewKVStore wraps kv.
func NewKVStore(kv storage.Store) *KVStore {
	return &KVStore{kv: kv}
}

func (s *KVStore) GetUser(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := storage.GetJSON(ctx, s.kv, userKey(email), &u)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *KVStore) PutUser(ctx context.Context, user *models.User) error {
	return storage.PutJSON(ctx, s.kv, userKey(user.Email), user)
}

func (s *KVStore) DeleteUser(ctx context.Context, email string) error {
	return s.kv.Delete(ctx, userKey(email))
}

func (s *KVStore) GetResetToken(ctx context.Context, email string) (string, error) {
	raw, err := s.kv.Get(ctx, resetKey(email))
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (s *KVStore) SaveResetToken(ctx context.Context, email, code string) error {
	return s.kv.Put(ctx, resetKey(email), []byte(code))
}

func (s *KVStore) DeleteResetToken(ctx context.Context, email string) error {
	return s.kv.Delete(ctx, resetKey(email))
}
