package model

// Metric is one dashboard figure with its change against the previous
// period, used for the up/down indicators on the overview screen.
type Metric struct {
	Value     float64 `json:"value"`
	ChangePct float64 `json:"change_pct"`
}

// Trend classifies the period-over-period change as "up", "down", or "flat".
func (m Metric) Trend() string {
	switch {
	case m.ChangePct > 0:
		return "up"
	case m.ChangePct < 0:
		return "down"
	default:
		return "flat"
	}
}

// DashboardMetrics is the data payload of GET /admin/dashboard.
type DashboardMetrics struct {
	TotalCaregivers  Metric `json:"total_caregivers"`
	TotalCareSeekers Metric `json:"total_careseekers"`
	TotalBookings    Metric `json:"total_bookings"`
	TotalRevenue     Metric `json:"total_revenue"`
	PendingKYC       Metric `json:"pending_kyc"`
	OpenReports      Metric `json:"open_reports"`
}
