package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/carelinkhq/carectl/internal/model"
	"github.com/carelinkhq/carectl/internal/session"
)

// newTestClient wires a Client against an httptest server with an in-memory
// session store and no retries (individual tests opt back in).
func newTestClient(t *testing.T, handler http.Handler, opts ...Option) (*Client, *session.MemStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := session.NewMemStore()
	opts = append([]Option{WithRetries(0)}, opts...)
	return New(srv.URL, store, opts...), store
}

func okEnvelope(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"message": "ok",
		"data":    data,
	})
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	c, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		okEnvelope(w, model.Admin{ID: "a1"})
	}))

	ctx := context.Background()
	if err := store.Set(ctx, session.Session{Token: "tok-123"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if _, err := c.Profile(ctx); err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
	}
}

func TestNoAuthorizationHeaderWithoutToken(t *testing.T) {
	var hadAuth bool
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		okEnvelope(w, model.Admin{})
	}))

	if _, err := c.Profile(context.Background()); err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if hadAuth {
		t.Error("Authorization header sent without a token")
	}
}

func TestUnauthorizedFiresHandlerOnceWithFixedMessage(t *testing.T) {
	var calls atomic.Int32
	handler := UnauthorizedFunc(func() { calls.Add(1) })

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"token blacklisted by middleware"}`))
	}), WithUnauthorizedHandler(handler))

	_, err := c.Profile(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != SessionExpiredMessage {
		t.Errorf("error = %q, want the fixed session-expired message", err.Error())
	}
	if !IsSessionExpired(err) {
		t.Error("IsSessionExpired = false, want true")
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("handler invoked %d times, want exactly 1", n)
	}
}

func TestUnauthorizedWithoutHandlerDoesNotPanic(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := c.Profile(context.Background())
	if !IsSessionExpired(err) {
		t.Fatalf("got %v, want session-expired error", err)
	}
}

func TestPanickingHandlerIsContained(t *testing.T) {
	handler := UnauthorizedFunc(func() { panic("listener bug") })
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}), WithUnauthorizedHandler(handler))

	_, err := c.Profile(context.Background())
	if !IsSessionExpired(err) {
		t.Fatalf("got %v, want session-expired error despite panicking handler", err)
	}
}

func TestServerErrorMessageSurfaced(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"success":false,"message":"Email address is already registered"}`))
	}))

	_, err := c.Profile(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Email address is already registered" {
		t.Errorf("error = %q, want the server message verbatim", err.Error())
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *Error", err)
	}
	if apiErr.Kind != KindServer {
		t.Errorf("Kind = %v, want KindServer", apiErr.Kind)
	}
	if apiErr.Status != http.StatusUnprocessableEntity {
		t.Errorf("Status = %d, want 422", apiErr.Status)
	}
}

func TestServerErrorFallbackMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false}`))
	}))

	_, err := c.Profile(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != genericErrorMessage {
		t.Errorf("error = %q, want %q", err.Error(), genericErrorMessage)
	}
}

func TestNetworkErrorKind(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	store := session.NewMemStore()
	c := New(srv.URL, store, WithRetries(0))
	srv.Close() // connection refused from here on

	_, err := c.Profile(context.Background())
	if !IsNetwork(err) {
		t.Fatalf("got %v, want network-kind error", err)
	}
	if err.Error() != networkErrorMessage {
		t.Errorf("error = %q, want %q", err.Error(), networkErrorMessage)
	}
}

func TestDecodeErrorKind(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>definitely not json</html>`))
	}))

	_, err := c.Profile(context.Background())
	if !IsDecode(err) {
		t.Fatalf("got %v, want decode-kind error", err)
	}
}

func TestGetRetriesAreBounded(t *testing.T) {
	var hits atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		okEnvelope(w, model.Admin{ID: "a1"})
	}), WithRetries(2))

	env, err := c.Profile(context.Background())
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if env.Data.ID != "a1" {
		t.Errorf("Data.ID = %q, want %q", env.Data.ID, "a1")
	}
	if n := hits.Load(); n != 3 {
		t.Errorf("server hit %d times, want 3 (1 call + 2 retries)", n)
	}
}

func TestRetriesExhaustedSurfaceLastError(t *testing.T) {
	var hits atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"success":false,"message":"upstream maintenance"}`))
	}), WithRetries(1))

	_, err := c.Profile(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "upstream maintenance" {
		t.Errorf("error = %q, want %q", err.Error(), "upstream maintenance")
	}
	if n := hits.Load(); n != 2 {
		t.Errorf("server hit %d times, want 2", n)
	}
}

func TestMutationsAreNeverRetried(t *testing.T) {
	var hits atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}), WithRetries(2))

	_, err := c.SendEmail(context.Background(), model.EmailRequest{
		RecipientEmail: "user@carelink.test", Title: "Hi", Body: "Hello",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("server hit %d times for POST, want exactly 1", n)
	}
}

func TestUnauthorizedIsNotRetried(t *testing.T) {
	var hits atomic.Int32
	var calls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}), WithRetries(2), WithUnauthorizedHandler(UnauthorizedFunc(func() { calls.Add(1) })))

	_, err := c.Profile(context.Background())
	if !IsSessionExpired(err) {
		t.Fatalf("got %v, want session-expired error", err)
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("server hit %d times for a 401, want exactly 1", n)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("handler invoked %d times, want exactly 1", n)
	}
}

func TestCallerHeadersOverrideDefaults(t *testing.T) {
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		okEnvelope(w, nil)
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, session.NewMemStore(), WithRetries(0))
	_, _, err := c.call(context.Background(), http.MethodGet, "/admin/profile", nil,
		map[string]string{"Content-Type": "application/vnd.carelink+json"}, nil)
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if gotContentType != "application/vnd.carelink+json" {
		t.Errorf("Content-Type = %q, caller header should override the default", gotContentType)
	}
}

func TestRequestIDHeaderSet(t *testing.T) {
	var gotID string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		okEnvelope(w, nil)
	}))

	if _, err := c.Profile(context.Background()); err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if gotID == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestLogoutHookReplaceAndClear(t *testing.T) {
	var first, second atomic.Int32
	hook := &LogoutHook{}

	hook.Register(func() { first.Add(1) })
	hook.Register(func() { second.Add(1) })
	hook.OnUnauthorized()

	if n := first.Load(); n != 0 {
		t.Errorf("replaced handler invoked %d times, want 0", n)
	}
	if n := second.Load(); n != 1 {
		t.Errorf("second handler invoked %d times, want 1", n)
	}

	hook.Clear()
	hook.OnUnauthorized() // must not panic with an empty slot
	if n := second.Load(); n != 1 {
		t.Errorf("handler invoked after Clear, count = %d, want 1", n)
	}

	hook.Clear() // idempotent
}

func TestLogoutHookContainsPanickingCallback(t *testing.T) {
	hook := &LogoutHook{}
	hook.Register(func() { panic("boom") })
	hook.OnUnauthorized() // must not propagate
}
