package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/carelinkhq/carectl/internal/model"
	"github.com/carelinkhq/carectl/internal/session"
)

// recorded captures the last request the fake API saw.
type recorded struct {
	method string
	path   string
	query  string
	body   []byte
}

func recordingServer(t *testing.T, rec *recorded, data any) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.body, _ = io.ReadAll(r.Body)
		okEnvelope(w, data)
	})
}

func TestCaregiversListQuery(t *testing.T) {
	var rec recorded
	c, _ := newTestClient(t, recordingServer(t, &rec, model.CaregiverList{
		Caregivers: []model.Caregiver{{ID: "cg-1", Email: "amina@carelink.test"}},
		Pagination: model.Pagination{Page: 2, Limit: 10, Total: 37, TotalPages: 4, HasNext: true, HasPrev: true},
	}))

	env, err := c.Caregivers(context.Background(), ListParams{
		Page: 2, Limit: 10, SortBy: "created_at", SortOrder: "DESC",
	})
	if err != nil {
		t.Fatalf("Caregivers: %v", err)
	}

	if rec.method != http.MethodGet {
		t.Errorf("method = %s, want GET", rec.method)
	}
	if rec.path != "/users/caregivers" {
		t.Errorf("path = %q, want /users/caregivers", rec.path)
	}
	want := "limit=10&page=2&sortBy=created_at&sortOrder=DESC"
	if rec.query != want {
		t.Errorf("query = %q, want %q", rec.query, want)
	}

	// The envelope comes back unchanged.
	if len(env.Data.Caregivers) != 1 || env.Data.Caregivers[0].ID != "cg-1" {
		t.Errorf("unexpected list payload: %+v", env.Data)
	}
	if !env.Data.Pagination.HasNext {
		t.Error("pagination lost in transit")
	}
}

func TestListParamsOmitsZeroValues(t *testing.T) {
	var rec recorded
	c, _ := newTestClient(t, recordingServer(t, &rec, model.CareSeekerList{}))

	if _, err := c.CareSeekers(context.Background(), ListParams{}); err != nil {
		t.Fatalf("CareSeekers: %v", err)
	}
	if rec.query != "" {
		t.Errorf("query = %q, want empty for zero params", rec.query)
	}
	if rec.path != "/users/careseekers" {
		t.Errorf("path = %q, want /users/careseekers", rec.path)
	}
}

func TestCaregiverDetailPath(t *testing.T) {
	var rec recorded
	c, _ := newTestClient(t, recordingServer(t, &rec, model.CaregiverDetail{}))

	if _, err := c.Caregiver(context.Background(), "cg-42"); err != nil {
		t.Fatalf("Caregiver: %v", err)
	}
	if rec.path != "/users/caregivers/cg-42" {
		t.Errorf("path = %q, want /users/caregivers/cg-42", rec.path)
	}
}

func TestVerifyDocumentPathAndBody(t *testing.T) {
	tests := []struct {
		doc      string
		wantPath string
	}{
		{model.DocValidID, "/kyc/admin/u-7/verify-valid-id"},
		{model.DocWorkAuthorization, "/kyc/admin/u-7/verify-work-authorization"},
		{model.DocPassport, "/kyc/admin/u-7/verify-passport"},
	}

	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			var rec recorded
			c, _ := newTestClient(t, recordingServer(t, &rec, model.VerificationResult{}))

			if _, err := c.VerifyDocument(context.Background(), "u-7", tt.doc, true); err != nil {
				t.Fatalf("VerifyDocument: %v", err)
			}
			if rec.method != http.MethodPost {
				t.Errorf("method = %s, want POST", rec.method)
			}
			if rec.path != tt.wantPath {
				t.Errorf("path = %q, want %q", rec.path, tt.wantPath)
			}

			var body model.VerifyDocumentRequest
			if err := json.Unmarshal(rec.body, &body); err != nil {
				t.Fatalf("body: %v", err)
			}
			if !body.Verified {
				t.Error("body.verified = false, want true")
			}
		})
	}
}

func TestSendEmailBody(t *testing.T) {
	var rec recorded
	c, _ := newTestClient(t, recordingServer(t, &rec, model.EmailResult{MessageID: "msg-1"}))

	req := model.EmailRequest{
		RecipientEmail: "amina@carelink.test",
		Title:          "Account notice",
		Body:           "Your KYC documents were approved.",
	}
	env, err := c.SendEmail(context.Background(), req)
	if err != nil {
		t.Fatalf("SendEmail: %v", err)
	}

	if rec.method != http.MethodPost || rec.path != "/admin/send-email" {
		t.Errorf("got %s %s, want POST /admin/send-email", rec.method, rec.path)
	}

	var body model.EmailRequest
	if err := json.Unmarshal(rec.body, &body); err != nil {
		t.Fatalf("body: %v", err)
	}
	if body != req {
		t.Errorf("body = %+v, want %+v", body, req)
	}
	if env.Data.MessageID != "msg-1" {
		t.Errorf("MessageID = %q, want msg-1", env.Data.MessageID)
	}
}

func TestAdminEndpoints(t *testing.T) {
	var rec recorded
	c, _ := newTestClient(t, recordingServer(t, &rec, []model.Admin{{ID: "a1"}}))

	if _, err := c.Admins(context.Background()); err != nil {
		t.Fatalf("Admins: %v", err)
	}
	if rec.method != http.MethodGet || rec.path != "/admin" {
		t.Errorf("got %s %s, want GET /admin", rec.method, rec.path)
	}
}

func TestCreateAdminBody(t *testing.T) {
	var rec recorded
	c, _ := newTestClient(t, recordingServer(t, &rec, model.Admin{ID: "a2"}))

	req := model.CreateAdminRequest{
		Email:     "new@carelink.test",
		FirstName: "Tunde",
		LastName:  "Bello",
		Role:      model.RoleSupportAgent,
		Password:  "initial-password",
	}
	if _, err := c.CreateAdmin(context.Background(), req); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	if rec.method != http.MethodPost || rec.path != "/admin" {
		t.Errorf("got %s %s, want POST /admin", rec.method, rec.path)
	}

	var body model.CreateAdminRequest
	if err := json.Unmarshal(rec.body, &body); err != nil {
		t.Fatalf("body: %v", err)
	}
	if body != req {
		t.Errorf("body = %+v, want %+v", body, req)
	}
}

func TestBookingAndTransactionPaths(t *testing.T) {
	var rec recorded
	c, _ := newTestClient(t, recordingServer(t, &rec, model.BookingList{}))

	if _, err := c.Bookings(context.Background(), ListParams{Page: 1, Limit: 20}); err != nil {
		t.Fatalf("Bookings: %v", err)
	}
	if rec.path != "/bookings" || rec.query != "limit=20&page=1" {
		t.Errorf("got %s?%s, want /bookings?limit=20&page=1", rec.path, rec.query)
	}

	if _, err := c.Booking(context.Background(), "bk-9"); err != nil {
		t.Fatalf("Booking: %v", err)
	}
	if rec.path != "/bookings/bk-9" {
		t.Errorf("path = %q, want /bookings/bk-9", rec.path)
	}

	if _, err := c.Transactions(context.Background(), ListParams{}); err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if rec.path != "/transactions" {
		t.Errorf("path = %q, want /transactions", rec.path)
	}
}

func TestLoginFlowStoresAndUsesToken(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /admin/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Error("login request must be unauthenticated")
		}
		okEnvelope(w, model.LoginResult{
			AccessToken: "fresh-token",
			Admin:       model.Admin{ID: "a1", Email: "staff@carelink.test"},
		})
	})
	mux.HandleFunc("GET /admin/profile", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		okEnvelope(w, model.Admin{ID: "a1"})
	})

	c, store := newTestClient(t, mux)
	ctx := context.Background()

	env, err := c.Login(ctx, "staff@carelink.test", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// The auth owner persists the returned token; the next call picks it up.
	if err := store.Set(ctx, session.Session{
		Token: env.Data.AccessToken,
		Email: env.Data.Admin.Email,
	}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if _, err := c.Profile(ctx); err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if gotAuth != "Bearer fresh-token" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer fresh-token")
	}
}

func TestUnauthorizedClearsSessionViaHook(t *testing.T) {
	c, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	ctx := context.Background()
	if err := store.Set(ctx, session.Session{Token: "stale"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Wire the session owner the way the CLI does: the hook clears the store.
	hook := &LogoutHook{}
	hook.Register(func() { store.Clear(ctx) })
	c.onUnauthorized = hook

	_, err := c.Profile(ctx)
	if !IsSessionExpired(err) {
		t.Fatalf("got %v, want session-expired error", err)
	}

	tok, _ := store.Token(ctx)
	if tok != "" {
		t.Errorf("token %q still present, want store cleared by hook", tok)
	}
}
