package mapping

import (
	"time"

	"github.com/tijarati/tijarati_host/internal/dto"
	"github.com/tijarati/tijarati_host/internal/models"
)

const defaultCurrency = "MAD"

// ToModelTransaction maps an incoming save request to the stored row shape,
// resolving legacy field fallbacks and defaults the way older UI bundles
// expect.
func ToModelTransaction(r dto.SaveTransactionRequest) models.Transaction {
	currency := r.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	createdAt := r.CreatedAt
	if createdAt == 0 {
		createdAt = time.Now().UnixMilli()
	}
	var reminderID string
	if r.ReminderID != nil {
		reminderID = *r.ReminderID
	}
	return models.Transaction{
		ID:           r.ID,
		Type:         models.TransactionType(r.Type),
		Item:         r.Item,
		Amount:       r.ResolvedAmount(),
		Quantity:     r.ResolvedQuantity(),
		UnitPrice:    r.ResolvedUnitPrice(),
		PricingMode:  r.PricingMode,
		Date:         r.Date,
		IsCredit:     r.IsCredit,
		ClientName:   r.ClientName,
		PaidAmount:   r.ResolvedPaidAmount(),
		IsFullyPaid:  r.IsFullyPaid,
		Currency:     currency,
		CreatedAt:    createdAt,
		DueDate:      r.DueDate,
		ReminderID:   reminderID,
		Installments: r.Installments,
		IsMock:       r.IsMock,
	}
}

// ToTransactionResponse maps a stored row to the UI-facing shape.
func ToTransactionResponse(m models.Transaction) dto.TransactionResponse {
	var reminderID *string
	if m.ReminderID != "" {
		id := m.ReminderID
		reminderID = &id
	}
	return dto.TransactionResponse{
		ID:             m.ID,
		Type:           string(m.Type),
		Item:           m.Item,
		Quantity:       m.Quantity,
		UnitPriceBase:  m.UnitPrice,
		AmountBase:     m.Amount,
		PricingMode:    m.PricingMode,
		Date:           m.Date,
		IsCredit:       m.IsCredit,
		ClientName:     m.ClientName,
		PaidAmountBase: m.PaidAmount,
		IsFullyPaid:    m.IsFullyPaid,
		Currency:       m.Currency,
		CreatedAt:      m.CreatedAt,
		DueDate:        m.DueDate,
		ReminderID:     reminderID,
		Installments:   m.Installments,
		IsMock:         m.IsMock,
	}
}

// ToTransactionResponses maps a slice of stored rows, returning an empty
// slice rather than nil so the UI always receives an array.
func ToTransactionResponses(ms []models.Transaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, len(ms))
	for i, m := range ms {
		out[i] = ToTransactionResponse(m)
	}
	return out
}
