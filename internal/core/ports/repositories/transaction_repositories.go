package repositories

import (
	"context"

	"github.com/tijarati/tijarati_host/internal/models"
)

// TransactionRepository is the persistence port for transaction records.
type TransactionRepository interface {
	// SaveTransaction is a replace-semantics insert keyed by the record id.
	// Saving an id that does not exist yet acts as a create.
	SaveTransaction(ctx context.Context, txn models.Transaction) error

	// FindTransactionByID returns apperrors.ErrNotFound when no row matches.
	FindTransactionByID(ctx context.Context, id string) (*models.Transaction, error)

	// ListTransactions returns all rows ordered by date descending.
	ListTransactions(ctx context.Context) ([]models.Transaction, error)

	// DeleteTransaction removes the row; deleting an absent id is a no-op.
	DeleteTransaction(ctx context.Context, id string) error

	// ListReminderIDs returns every non-empty reminder handle currently
	// referenced by stored transactions.
	ListReminderIDs(ctx context.Context) ([]string, error)

	// ListMockReminderIDs is ListReminderIDs restricted to demo-flagged rows.
	ListMockReminderIDs(ctx context.Context) ([]string, error)
}
