package identity

import (
	"context"
	"sync"

	"github.com/tripal/tripal-blast/pkg/middleware/auth"
	"github.com/tripal/tripal-blast/pkg/middleware/logger"
	"github.com/tripal/tripal-blast/pkg/repo/model"
)

type UserLoader interface {
	GetUserByID(ctx context.Context, uid int64) (*model.User, error)
}

// Session is the process-wide acting identity. It starts anonymous.
type Session struct {
	mu      sync.RWMutex
	current *model.User
}

var (
	once       sync.Once
	defaultSes *Session
)

func NewSession() *Session {
	return &Session{current: model.AnonymousUser()}
}

func Default() *Session {
	once.Do(func() {
		defaultSes = NewSession()
	})
	return defaultSes
}

func (s *Session) Current() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Session) Login(user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = user
}

func (s *Session) Logout() {
	s.Login(model.AnonymousUser())
}

// Impersonate runs fn as user uid and reverts the session to anonymous on every
// exit path, including errors and panics. Lookup and fn errors are returned as is.
func (s *Session) Impersonate(ctx context.Context, users UserLoader, uid int64, fn func(ctx context.Context) error) error {
	user, err := users.GetUserByID(ctx, uid)
	if err != nil {
		return err
	}

	s.Login(user)
	defer s.Logout()
	logger.Debugf(ctx, "impersonating user %d", uid)

	return fn(auth.WithUser(ctx, user))
}
