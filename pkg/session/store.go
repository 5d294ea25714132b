// Package session keeps short-lived per-visitor state in memory, keyed by a
// random cookie. Values are stored by copy so concurrent requests never share
// a mutable struct.
package session

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/penguin/pkg/lifecycle"
)

type entry[T any] struct {
	value   T
	expires time.Time
}

// Store is an expiring in-memory map of session values.
type Store[T any] struct {
	mu      sync.Mutex
	entries map[string]entry[T]

	cookie string
	secure bool
	ttl    time.Duration
	sweep  time.Duration
	logger *slog.Logger
}

// New creates a Store from a finalized Config.
func New[T any](cfg *Config, logger *slog.Logger) *Store[T] {
	return &Store[T]{
		entries: make(map[string]entry[T]),
		cookie:  cfg.CookieName,
		secure:  cfg.Secure,
		ttl:     cfg.TTLDuration(),
		sweep:   cfg.SweepIntervalDuration(),
		logger:  logger.With("system", "session"),
	}
}

// Start runs the expiry sweeper until the coordinator shuts down.
func (s *Store[T]) Start(lc *lifecycle.Coordinator) error {
	s.logger.Info("starting session store", "ttl", s.ttl, "sweep_interval", s.sweep)

	lc.Run(func(ctx context.Context) {
		ticker := time.NewTicker(s.sweep)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.logger.Info("session store stopped")
				return
			case <-ticker.C:
				if n := s.Sweep(); n > 0 {
					s.logger.Debug("expired sessions removed", "count", n)
				}
			}
		}
	})

	return nil
}

// Load returns the session id and value carried by the request cookie.
// A missing, malformed, unknown, or expired cookie yields a fresh id and the
// zero value.
func (s *Store[T]) Load(r *http.Request) (string, T) {
	if c, err := r.Cookie(s.cookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			if v, ok := s.Get(c.Value); ok {
				return c.Value, v
			}
		}
	}

	var zero T
	return uuid.NewString(), zero
}

// Save stores value under id, extends its expiry, and sets the cookie.
func (s *Store[T]) Save(w http.ResponseWriter, id string, value T) {
	s.Put(id, value)
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Get returns a copy of the value for id if present and unexpired.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || time.Now().After(e.expires) {
		var zero T
		return zero, false
	}
	return e.value, true
}

// Put stores value under id with a fresh expiry.
func (s *Store[T]) Put(id string, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = entry[T]{value: value, expires: time.Now().Add(s.ttl)}
}

// Delete removes id.
func (s *Store[T]) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

// Len returns the number of stored sessions, expired or not.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep removes expired sessions and returns how many were removed.
func (s *Store[T]) Sweep() int {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.entries {
		if now.After(e.expires) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}
