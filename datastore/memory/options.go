/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory

import (
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/suparena/recordstore/metrics"
)

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for store diagnostics
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithClock replaces time.Now as the source of created_date and updated_date
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocale sets the collation locale used by List. Defaults to English.
func WithLocale(tag language.Tag) Option {
	return func(s *Store) {
		s.locale = tag
	}
}

// WithMetrics records operations and store size on m
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}
