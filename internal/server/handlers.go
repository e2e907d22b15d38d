package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/carelinkhq/carectl/internal/api"
)

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// handleReadyz reports ready only when the upstream API accepts the stored
// session: a gateway with an expired session serves nothing useful.
func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if _, err := s.client.Profile(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"reason": err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	env, err := s.client.Dashboard(r.Context())
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, env)
}

func (s *Server) handleCaregivers(w http.ResponseWriter, r *http.Request) {
	env, err := s.client.Caregivers(r.Context(), listParamsFromQuery(r))
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, env)
}

func (s *Server) handleCaregiver(w http.ResponseWriter, r *http.Request) {
	env, err := s.client.Caregiver(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, env)
}

func (s *Server) handleCareSeekers(w http.ResponseWriter, r *http.Request) {
	env, err := s.client.CareSeekers(r.Context(), listParamsFromQuery(r))
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, env)
}

func (s *Server) handleCareSeeker(w http.ResponseWriter, r *http.Request) {
	env, err := s.client.CareSeeker(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, env)
}

func (s *Server) handleBookings(w http.ResponseWriter, r *http.Request) {
	env, err := s.client.Bookings(r.Context(), listParamsFromQuery(r))
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, env)
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	env, err := s.client.Transactions(r.Context(), listParamsFromQuery(r))
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, env)
}

// writeUpstreamError maps dispatcher failures onto gateway statuses:
// an expired session is the operator's problem (502 with instructions),
// connectivity is 504, and server-reported errors are mirrored.
func (s *Server) writeUpstreamError(w http.ResponseWriter, err error) {
	switch {
	case api.IsSessionExpired(err):
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"success": false,
			"message": "Gateway session expired. Re-authenticate with 'carectl login' and restart the gateway.",
		})
	case api.IsNetwork(err):
		writeJSON(w, http.StatusGatewayTimeout, map[string]any{
			"success": false,
			"message": "Upstream API unreachable",
		})
	default:
		status := http.StatusInternalServerError
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Status != 0 {
			status = apiErr.Status
		}
		writeJSON(w, status, map[string]any{
			"success": false,
			"message": err.Error(),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// listParamsFromQuery forwards the standard pagination controls from the
// gateway query string to the upstream API unchanged.
func listParamsFromQuery(r *http.Request) api.ListParams {
	q := r.URL.Query()
	p := api.ListParams{
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		p.Page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		p.Limit = v
	}
	return p
}
