package session

import (
	"context"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore("") // in-memory
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestTokenRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Empty store: no token, no error.
	tok, err := s.Token(ctx)
	if err != nil {
		t.Fatalf("Token on empty store: %v", err)
	}
	if tok != "" {
		t.Errorf("got token %q, want empty", tok)
	}

	if err := s.Set(ctx, Session{Token: "tok-abc", Email: "staff@carelink.test"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	tok, err = s.Token(ctx)
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if tok != "tok-abc" {
		t.Errorf("got token %q, want %q", tok, "tok-abc")
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	tok, err = s.Token(ctx)
	if err != nil {
		t.Fatalf("Token after Clear: %v", err)
	}
	if tok != "" {
		t.Errorf("got token %q after Clear, want empty", tok)
	}
}

func TestGetReturnsFullSession(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Get(ctx); err != ErrNoSession {
		t.Fatalf("Get on empty store: got %v, want ErrNoSession", err)
	}

	in := Session{
		Token:     "tok-xyz",
		Email:     "staff@carelink.test",
		BaseURL:   "https://api.carelink.test",
		CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	if err := s.Set(ctx, in); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := s.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Token != in.Token {
		t.Errorf("Token = %q, want %q", got.Token, in.Token)
	}
	if got.Email != in.Email {
		t.Errorf("Email = %q, want %q", got.Email, in.Email)
	}
	if got.BaseURL != in.BaseURL {
		t.Errorf("BaseURL = %q, want %q", got.BaseURL, in.BaseURL)
	}
}

func TestSetReplacesExistingSession(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, Session{Token: "first"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, Session{Token: "second"}); err != nil {
		t.Fatalf("Set (replace): %v", err)
	}

	tok, err := s.Token(ctx)
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if tok != "second" {
		t.Errorf("got token %q, want %q", tok, "second")
	}
}

func TestClearIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear on empty store: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewSQLiteStore(dir)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	if err := s.Set(ctx, Session{Token: "persisted", Email: "staff@carelink.test"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := NewSQLiteStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	tok, err := s2.Token(ctx)
	if err != nil {
		t.Fatalf("Token after reopen: %v", err)
	}
	if tok != "persisted" {
		t.Errorf("got token %q after reopen, want %q", tok, "persisted")
	}
}

func TestMemStore(t *testing.T) {
	m := NewMemStore()
	ctx := context.Background()

	if _, err := m.Get(ctx); err != ErrNoSession {
		t.Fatalf("Get on empty store: got %v, want ErrNoSession", err)
	}
	if err := m.Set(ctx, Session{Token: "tok"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	tok, _ := m.Token(ctx)
	if tok != "tok" {
		t.Errorf("got token %q, want %q", tok, "tok")
	}
	if err := m.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	tok, _ = m.Token(ctx)
	if tok != "" {
		t.Errorf("got token %q after Clear, want empty", tok)
	}
}
