package models

// TransactionType indicates whether a transaction is a sale or a purchase.
type TransactionType string

const (
	Sale     TransactionType = "sale"
	Purchase TransactionType = "purchase"
)

// Installment is a single sub-entry of a credit transaction paid in parts.
// The ordered list is persisted as a JSON blob in a TEXT column.
type Installment struct {
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Paid   bool    `json:"paid"`
}

// Transaction is a stored bookkeeping record. The id is caller-assigned and
// immutable; saves are replace-semantics upserts keyed by it.
type Transaction struct {
	ID           string          // Primary key, externally generated
	Type         TransactionType // sale or purchase
	Item         string
	Amount       float64 // Total amount in base currency
	Quantity     float64 // Defaults to 1
	UnitPrice    float64
	PricingMode  string
	Date         string // Calendar date string, list ordering key
	IsCredit     bool
	ClientName   string // Counterparty, required when IsCredit
	PaidAmount   float64
	IsFullyPaid  bool
	Currency     string
	CreatedAt    int64  // Epoch millis
	DueDate      string // Optional
	ReminderID   string // Scheduler handle, empty when none
	Installments []Installment
	IsMock       bool // Tags demo records for bulk removal
}

// NormalizePaidState recomputes IsFullyPaid for non-installment records.
// Records with installments track paid state per sub-entry instead.
func (t *Transaction) NormalizePaidState() {
	if len(t.Installments) == 0 {
		t.IsFullyPaid = t.PaidAmount >= t.Amount
	}
}
