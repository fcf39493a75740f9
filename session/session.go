/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/storagemodels"
)

// Session tracks the current user of one dashboard session. Components that
// need the current actor are handed a *Session instead of reading a global.
type Session struct {
	mu        sync.RWMutex
	id        string
	directory *Directory
	current   storagemodels.Record
	now       func() time.Time
	logger    zerolog.Logger
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the session logger
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithClock replaces time.Now for profile update timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// New starts a session logged in as the directory's default user.
func New(directory *Directory, opts ...Option) *Session {
	s := &Session{
		id:        uuid.NewString(),
		directory: directory,
		now:       time.Now,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.current = directory.Default()
	s.logger = s.logger.With().Str("session", s.id).Logger()
	return s
}

// ID returns the session's unique id
func (s *Session) ID() string {
	return s.id
}

// Me returns the current user, or nil when logged out.
func (s *Session) Me(ctx context.Context) (storagemodels.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone(), nil
}

// Login makes the user with the given email current. Both credentials must be
// non-empty; they are not otherwise checked. An email missing from the
// directory logs in as the default user under that email.
func (s *Session) Login(ctx context.Context, email, password string) (storagemodels.Record, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errors.NewValidationError(FieldEmail, "must not be empty")
	}
	if password == "" {
		return nil, errors.NewValidationError("password", "must not be empty")
	}

	user := s.directory.FindByEmail(email)
	if user == nil {
		user = s.directory.Default()
		if user == nil {
			user = storagemodels.Record{}
		}
		user[FieldEmail] = email
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()

	s.logger.Info().Str("user", user.ID()).Msg("logged in")
	return user.Clone(), nil
}

// Logout clears the current user
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.logger.Info().Msg("logged out")
	return nil
}

// UpdateProfile merges updates into the current user and refreshes its
// updated_date. It returns nil when nobody is logged in. The directory itself
// is never modified.
func (s *Session) UpdateProfile(ctx context.Context, updates storagemodels.Record) (storagemodels.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, nil
	}
	for k, v := range updates.Clone() {
		if k == storagemodels.FieldID {
			continue
		}
		s.current[k] = v
	}
	s.current[storagemodels.FieldUpdatedDate] = strfmt.DateTime(s.now().UTC()).String()

	s.logger.Debug().Str("user", s.current.ID()).Int("fields", len(updates)).Msg("profile updated")
	return s.current.Clone(), nil
}

// Reset returns the session to its initial state, logged in as the default user
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.directory.Default()
}
