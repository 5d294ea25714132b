package session_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/JaimeStill/penguin/pkg/lifecycle"
	"github.com/JaimeStill/penguin/pkg/session"
)

type visit struct {
	Count int
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStore(t *testing.T, ttl, sweep string) *session.Store[visit] {
	t.Helper()
	cfg := session.Config{TTL: ttl, SweepInterval: sweep}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	return session.New[visit](&cfg, discard())
}

func TestConfigFinalize(t *testing.T) {
	t.Setenv("TEST_SESSION_TTL", "30m")
	t.Setenv("TEST_SESSION_SECURE", "true")

	cfg := session.Config{}
	err := cfg.Finalize(&session.Env{TTL: "TEST_SESSION_TTL", Secure: "TEST_SESSION_SECURE"})
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if cfg.CookieName != "penguin_session" {
		t.Errorf("cookie_name: got %q, want penguin_session", cfg.CookieName)
	}
	if cfg.TTLDuration() != 30*time.Minute {
		t.Errorf("ttl: got %v, want 30m", cfg.TTLDuration())
	}
	if cfg.SweepIntervalDuration() != 5*time.Minute {
		t.Errorf("sweep_interval: got %v, want 5m", cfg.SweepIntervalDuration())
	}
	if !cfg.Secure {
		t.Error("secure should be true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  session.Config
	}{
		{"bad ttl", session.Config{TTL: "soon"}},
		{"negative ttl", session.Config{TTL: "-1m"}},
		{"bad sweep", session.Config{SweepInterval: "often"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(nil); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	store := newStore(t, "1h", "1m")

	id, v := store.Load(httptest.NewRequest("GET", "/", nil))
	if v.Count != 0 {
		t.Fatalf("fresh session count: got %d, want 0", v.Count)
	}

	v.Count++
	rec := httptest.NewRecorder()
	store.Save(rec, id, v)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies: got %d, want 1", len(cookies))
	}
	if !cookies[0].HttpOnly {
		t.Error("cookie should be HttpOnly")
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookies[0])

	gotID, got := store.Load(req)
	if gotID != id {
		t.Errorf("id: got %s, want %s", gotID, id)
	}
	if got.Count != 1 {
		t.Errorf("count: got %d, want 1", got.Count)
	}
}

func TestLoadRejectsForeignCookie(t *testing.T) {
	store := newStore(t, "1h", "1m")

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "penguin_session", Value: "not-a-uuid"})

	id, _ := store.Load(req)
	if id == "not-a-uuid" {
		t.Error("malformed cookie value reused as session id")
	}
}

func TestExpiry(t *testing.T) {
	store := newStore(t, "10ms", "1m")
	store.Put("a", visit{Count: 1})

	time.Sleep(20 * time.Millisecond)

	if _, ok := store.Get("a"); ok {
		t.Error("expired session still returned")
	}
	if n := store.Sweep(); n != 1 {
		t.Errorf("swept: got %d, want 1", n)
	}
	if store.Len() != 0 {
		t.Errorf("len after sweep: got %d, want 0", store.Len())
	}
}

func TestSweeperStopsOnShutdown(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := newStore(t, "5ms", "5ms")
	lc := lifecycle.New()

	if err := store.Start(lc); err != nil {
		t.Fatalf("start: %v", err)
	}
	store.Put("a", visit{})

	deadline := time.Now().Add(time.Second)
	for store.Len() > 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if store.Len() != 0 {
		t.Error("sweeper did not evict expired session")
	}

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
