package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/xuandat7/food-delivery-FE-sub000/internal/domain"
	"github.com/xuandat7/food-delivery-FE-sub000/internal/storage"
)

type Session struct {
	mu       sync.RWMutex
	store    storage.Store
	token    string
	user     *domain.User
	userType string
	now      func() time.Time
	onEnd    []func()
}

func New(store storage.Store) *Session {
	return &Session{store: store, now: time.Now}
}

func (s *Session) Load(ctx context.Context) error {
	token, err := s.store.Get(ctx, storage.KeyToken)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = string(token.Value)

	if entry, err := s.store.Get(ctx, storage.KeyUserData); err == nil {
		var u domain.User
		if err := json.Unmarshal(entry.Value, &u); err == nil {
			s.user = &u
		} else {
			log.Printf("[session] discarding unreadable userData: %v", err)
		}
	}
	if entry, err := s.store.Get(ctx, storage.KeyUserType); err == nil {
		s.userType = string(entry.Value)
	}
	return nil
}

func (s *Session) Begin(ctx context.Context, token string, user domain.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return err
	}
	writes := []struct {
		key   string
		value []byte
	}{
		{storage.KeyToken, []byte(token)},
		{storage.KeyUserData, userJSON},
		{storage.KeyUser, userJSON},
		{storage.KeyUserType, []byte(user.Role)},
	}
	for _, w := range writes {
		if err := s.store.Set(ctx, w.key, w.value); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.token = token
	s.user = &user
	s.userType = user.Role
	s.mu.Unlock()
	return nil
}

// Token returns the bearer token while it is present and not past its expiry.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return "", false
	}
	if exp, ok := expiry(token); ok && !s.now().Before(exp) {
		return "", false
	}
	return token, true
}

func (s *Session) ExpiresAt() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return expiry(s.token)
}

func (s *Session) User() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

func (s *Session) UserType() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userType
}

func (s *Session) SetUser(ctx context.Context, user domain.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, storage.KeyUserData, userJSON); err != nil {
		return err
	}
	if err := s.store.Set(ctx, storage.KeyUser, userJSON); err != nil {
		return err
	}
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return nil
}

func (s *Session) OnInvalidate(fn func()) {
	s.mu.Lock()
	s.onEnd = append(s.onEnd, fn)
	s.mu.Unlock()
}

func (s *Session) Invalidate(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.userType = ""
	hooks := append([]func(){}, s.onEnd...)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
	return s.store.Delete(ctx, storage.KeyToken, storage.KeyUserData, storage.KeyUser, storage.KeyUserType)
}

func (s *Session) FirstLaunch(ctx context.Context) (bool, error) {
	_, err := s.store.Get(ctx, storage.KeyFirstLaunch)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return false, err
	}
	return true, s.store.Set(ctx, storage.KeyFirstLaunch, []byte("false"))
}

func expiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
