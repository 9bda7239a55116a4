package mapping

import (
	"time"

	"github.com/tijarati/tijarati_host/internal/dto"
	"github.com/tijarati/tijarati_host/internal/models"
)

// ToModelPartner maps an incoming save request to the stored row shape.
// A nil request id becomes zero, which the store treats as "assign next".
func ToModelPartner(r dto.SavePartnerRequest) models.Partner {
	var id int64
	if r.ID != nil {
		id = *r.ID
	}
	createdAt := r.CreatedAt
	if createdAt == 0 {
		createdAt = time.Now().UnixMilli()
	}
	return models.Partner{
		ID:             id,
		Name:           r.Name,
		Percent:        r.Percent,
		CreatedAt:      createdAt,
		InvestedAmount: r.InvestedAmount,
		InvestedDate:   r.InvestedDate,
		ProfitSchedule: r.ProfitSchedule,
		Notes:          r.Notes,
		Payouts:        r.Payouts,
		IsMock:         r.IsMock,
	}
}

// ToPartnerResponse maps a stored row to the UI-facing shape.
func ToPartnerResponse(m models.Partner) dto.PartnerResponse {
	return dto.PartnerResponse{
		ID:             m.ID,
		Name:           m.Name,
		Percent:        m.Percent,
		CreatedAt:      m.CreatedAt,
		InvestedAmount: m.InvestedAmount,
		InvestedDate:   m.InvestedDate,
		ProfitSchedule: m.ProfitSchedule,
		Notes:          m.Notes,
		Payouts:        m.Payouts,
		IsMock:         m.IsMock,
	}
}

// ToPartnerResponses maps a slice of stored rows, returning an empty slice
// rather than nil.
func ToPartnerResponses(ms []models.Partner) []dto.PartnerResponse {
	out := make([]dto.PartnerResponse, len(ms))
	for i, m := range ms {
		out[i] = ToPartnerResponse(m)
	}
	return out
}
