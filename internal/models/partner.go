package models

// Payout is a single profit-distribution sub-entry for a partner.
// The ordered list is persisted as a JSON blob in a TEXT column.
type Payout struct {
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Paid   bool    `json:"paid"`
}

// Partner is a stored profit-share partner. A zero ID asks the store to
// assign the next sequence id; any non-zero id (demo records use negative
// ones) is preserved with replace semantics.
type Partner struct {
	ID             int64
	Name           string // Non-empty
	Percent        float64
	CreatedAt      int64 // Epoch millis
	InvestedAmount float64
	InvestedDate   string
	ProfitSchedule string // Free-text distribution schedule
	Notes          string
	Payouts        []Payout
	IsMock         bool
}
