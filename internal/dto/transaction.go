package dto

import "github.com/tijarati/tijarati_host/internal/models"

// TransactionResponse is the UI-facing shape of a stored transaction.
// Field names match what the embedded web UI expects on the wire.
type TransactionResponse struct {
	ID             string               `json:"id"`
	Type           string               `json:"type"`
	Item           string               `json:"item"`
	Quantity       float64              `json:"quantity"`
	UnitPriceBase  float64              `json:"unitPriceBase"`
	AmountBase     float64              `json:"amountBase"`
	PricingMode    string               `json:"pricingMode,omitempty"`
	Date           string               `json:"date"`
	IsCredit       bool                 `json:"isCredit"`
	ClientName     string               `json:"clientName"`
	PaidAmountBase float64              `json:"paidAmountBase"`
	IsFullyPaid    bool                 `json:"isFullyPaid"`
	Currency       string               `json:"currency"`
	CreatedAt      int64                `json:"createdAt"`
	DueDate        string               `json:"dueDate"`
	ReminderID     *string              `json:"reminderId"`
	Installments   []models.Installment `json:"installments,omitempty"`
	IsMock         bool                 `json:"isMock,omitempty"`
}

// SaveTransactionRequest accepts both the current Base-suffixed amount fields
// and the legacy names older UI bundles still send. Pointers keep the
// presence information the fallback needs.
type SaveTransactionRequest struct {
	ID             string               `json:"id" binding:"required"`
	Type           string               `json:"type"`
	Item           string               `json:"item"`
	Quantity       *float64             `json:"quantity"`
	UnitPriceBase  *float64             `json:"unitPriceBase"`
	UnitPrice      *float64             `json:"unitPrice"`
	AmountBase     *float64             `json:"amountBase"`
	Amount         *float64             `json:"amount"`
	PricingMode    string               `json:"pricingMode"`
	Date           string               `json:"date"`
	IsCredit       bool                 `json:"isCredit"`
	ClientName     string               `json:"clientName"`
	PaidAmountBase *float64             `json:"paidAmountBase"`
	PaidAmount     *float64             `json:"paidAmount"`
	IsFullyPaid    bool                 `json:"isFullyPaid"`
	Currency       string               `json:"currency"`
	CreatedAt      int64                `json:"createdAt"`
	DueDate        string               `json:"dueDate"`
	ReminderID     *string              `json:"reminderId"`
	Installments   []models.Installment `json:"installments"`
	IsMock         bool                 `json:"isMock"`
}

// ResolvedAmount returns amountBase when present, falling back to amount.
func (r SaveTransactionRequest) ResolvedAmount() float64 {
	return firstNumber(r.AmountBase, r.Amount)
}

// ResolvedUnitPrice returns unitPriceBase when present, falling back to unitPrice.
func (r SaveTransactionRequest) ResolvedUnitPrice() float64 {
	return firstNumber(r.UnitPriceBase, r.UnitPrice)
}

// ResolvedPaidAmount returns paidAmountBase when present, falling back to paidAmount.
func (r SaveTransactionRequest) ResolvedPaidAmount() float64 {
	return firstNumber(r.PaidAmountBase, r.PaidAmount)
}

// ResolvedQuantity returns the quantity, defaulting to 1 when absent.
func (r SaveTransactionRequest) ResolvedQuantity() float64 {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

func firstNumber(vals ...*float64) float64 {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return 0
}
