package sqlite

import (
	"encoding/json"

	"github.com/tijarati/tijarati_host/internal/models"
)

// Installments and payouts are persisted as JSON blobs in TEXT columns.
// Encoding round-trips losslessly for well-formed lists; decoding malformed
// or empty text yields an empty list rather than an error, so one corrupted
// blob cannot break a full list read.

func encodeInstallments(list []models.Installment) string {
	if len(list) == 0 {
		return ""
	}
	b, err := json.Marshal(list)
	if err != nil {
		return ""
	}
	return string(b)
}

func decodeInstallments(raw string) []models.Installment {
	if raw == "" {
		return []models.Installment{}
	}
	var list []models.Installment
	if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
		return []models.Installment{}
	}
	return list
}

func encodePayouts(list []models.Payout) string {
	if len(list) == 0 {
		return ""
	}
	b, err := json.Marshal(list)
	if err != nil {
		return ""
	}
	return string(b)
}

func decodePayouts(raw string) []models.Payout {
	if raw == "" {
		return []models.Payout{}
	}
	var list []models.Payout
	if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
		return []models.Payout{}
	}
	return list
}
