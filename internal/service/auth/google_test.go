package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"WyckoffLab/pkg/cache"
	applogger "WyckoffLab/pkg/logger"
)

func verifierLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func TestGoogleVerifierResolvesEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id_token") != "tok-1" {
			t.Fatalf("unexpected token %q", r.URL.Query().Get("id_token"))
		}
		w.Write([]byte(`{"email":"alice@example.com","email_verified":"true","expires_in":"3600"}`))
	}))
	defer srv.Close()

	v := NewGoogleVerifier(srv.URL, time.Minute, time.Second, cache.NewMemoryCache(), verifierLogger(t))
	id, err := v.CurrentUserID(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id != "alice@example.com" {
		t.Fatalf("got id %q", id)
	}
}

func TestGoogleVerifierEmptyToken(t *testing.T) {
	v := NewGoogleVerifier("http://127.0.0.1:0", time.Minute, time.Second, cache.NewMemoryCache(), verifierLogger(t))
	id, err := v.CurrentUserID(context.Background(), "")
	if err != nil || id != "" {
		t.Fatalf("empty token: id=%q err=%v", id, err)
	}
}

func TestGoogleVerifierRejectedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_token"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	v := NewGoogleVerifier(srv.URL, time.Minute, time.Second, cache.NewMemoryCache(), verifierLogger(t))
	id, err := v.CurrentUserID(context.Background(), "bad")
	if err != nil {
		t.Fatalf("rejected token must not error: %v", err)
	}
	if id != "" {
		t.Fatalf("rejected token yielded id %q", id)
	}
}

func TestGoogleVerifierUnverifiedEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"email":"alice@example.com","email_verified":"false"}`))
	}))
	defer srv.Close()

	v := NewGoogleVerifier(srv.URL, time.Minute, time.Second, cache.NewMemoryCache(), verifierLogger(t))
	id, err := v.CurrentUserID(context.Background(), "tok")
	if err != nil || id != "" {
		t.Fatalf("unverified email: id=%q err=%v", id, err)
	}
}

func TestGoogleVerifierEndpointFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusInternalServerError)
	}))
	defer srv.Close()

	v := NewGoogleVerifier(srv.URL, time.Minute, time.Second, cache.NewMemoryCache(), verifierLogger(t))
	if _, err := v.CurrentUserID(context.Background(), "tok"); err == nil {
		t.Fatalf("expected error on endpoint failure")
	}
}

func TestGoogleVerifierCachesSession(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		w.Write([]byte(`{"email":"alice@example.com","email_verified":"true"}`))
	}))
	defer srv.Close()

	v := NewGoogleVerifier(srv.URL, time.Minute, time.Second, cache.NewMemoryCache(), verifierLogger(t))
	for i := 0; i < 3; i++ {
		id, err := v.CurrentUserID(context.Background(), "tok-cached")
		if err != nil || id != "alice@example.com" {
			t.Fatalf("attempt %d: id=%q err=%v", i, id, err)
		}
	}
	if got := atomic.LoadInt64(&calls); got != 1 {
		t.Fatalf("expected 1 upstream call, got %d", got)
	}
}

func TestStaticProvider(t *testing.T) {
	p := NewStaticProvider()
	id, err := p.CurrentUserID(context.Background(), "dev-user")
	if err != nil || id != "dev-user" {
		t.Fatalf("static provider: id=%q err=%v", id, err)
	}
	id, err = p.CurrentUserID(context.Background(), "")
	if err != nil || id != "" {
		t.Fatalf("static provider empty: id=%q err=%v", id, err)
	}
}
