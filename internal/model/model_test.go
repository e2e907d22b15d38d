package model

import (
	"encoding/json"
	"testing"
)

func TestPaginationStartEnd(t *testing.T) {
	tests := []struct {
		name      string
		p         Pagination
		wantStart int
		wantEnd   int
	}{
		{"first page", Pagination{Page: 1, Limit: 10, Total: 45}, 1, 10},
		{"middle page", Pagination{Page: 3, Limit: 10, Total: 45}, 21, 30},
		{"last partial page", Pagination{Page: 5, Limit: 10, Total: 45}, 41, 45},
		{"empty result set", Pagination{Page: 1, Limit: 10, Total: 0}, 0, 0},
		{"single item", Pagination{Page: 1, Limit: 10, Total: 1}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Start(); got != tt.wantStart {
				t.Errorf("Start() = %d, want %d", got, tt.wantStart)
			}
			if got := tt.p.End(); got != tt.wantEnd {
				t.Errorf("End() = %d, want %d", got, tt.wantEnd)
			}
		})
	}
}

func TestMetricTrend(t *testing.T) {
	if got := (Metric{Value: 100, ChangePct: 12.5}).Trend(); got != "up" {
		t.Errorf("Trend() = %q, want %q", got, "up")
	}
	if got := (Metric{Value: 100, ChangePct: -3}).Trend(); got != "down" {
		t.Errorf("Trend() = %q, want %q", got, "down")
	}
	if got := (Metric{Value: 100}).Trend(); got != "flat" {
		t.Errorf("Trend() = %q, want %q", got, "flat")
	}
}

func TestAdminFullName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Ada", "Okafor", "Ada Okafor"},
		{"Ada", "", "Ada"},
		{"", "Okafor", "Okafor"},
	}
	for _, tt := range tests {
		a := Admin{FirstName: tt.first, LastName: tt.last}
		if got := a.FullName(); got != tt.want {
			t.Errorf("FullName() = %q, want %q", got, tt.want)
		}
	}
}

func TestEnvelopeDecode(t *testing.T) {
	raw := `{"success":true,"message":"ok","data":{"access_token":"tok-123","admin":{"id":"a1","email":"staff@carelink.test","first_name":"Ada","last_name":"Okafor","role":"admin","is_active":true,"created_at":"2025-06-01T10:00:00Z"}}}`

	var env Envelope[LoginResult]
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !env.Success {
		t.Error("expected success=true")
	}
	if env.Data.AccessToken != "tok-123" {
		t.Errorf("AccessToken = %q, want %q", env.Data.AccessToken, "tok-123")
	}
	if env.Data.Admin.Email != "staff@carelink.test" {
		t.Errorf("Admin.Email = %q, want %q", env.Data.Admin.Email, "staff@carelink.test")
	}
	if env.Data.Admin.Role != RoleAdmin {
		t.Errorf("Admin.Role = %q, want %q", env.Data.Admin.Role, RoleAdmin)
	}
}
