package dto

import "github.com/tijarati/tijarati_host/internal/models"

// PartnerResponse is the UI-facing shape of a stored partner.
type PartnerResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Percent        float64         `json:"percent"`
	CreatedAt      int64           `json:"createdAt"`
	InvestedAmount float64         `json:"investedAmount,omitempty"`
	InvestedDate   string          `json:"investedDate,omitempty"`
	ProfitSchedule string          `json:"profitSchedule,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	Payouts        []models.Payout `json:"payouts,omitempty"`
	IsMock         bool            `json:"isMock,omitempty"`
}

// SavePartnerRequest carries a partner to upsert. A nil ID asks the store to
// assign the next sequence id.
type SavePartnerRequest struct {
	ID             *int64          `json:"id"`
	Name           string          `json:"name" binding:"required"`
	Percent        float64         `json:"percent"`
	CreatedAt      int64           `json:"createdAt"`
	InvestedAmount float64         `json:"investedAmount"`
	InvestedDate   string          `json:"investedDate"`
	ProfitSchedule string          `json:"profitSchedule"`
	Notes          string          `json:"notes"`
	Payouts        []models.Payout `json:"payouts"`
	IsMock         bool            `json:"isMock"`
}

// SavePartnerResponse reports the id the store kept or assigned.
type SavePartnerResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}
