package dto

// SummaryResponse reports all-time totals for the dashboard.
type SummaryResponse struct {
	TotalIn  float64 `json:"totalIn"`
	TotalOut float64 `json:"totalOut"`
	Profit   float64 `json:"profit"`
}
