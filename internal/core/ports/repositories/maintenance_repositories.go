package repositories

import (
	"context"

	"github.com/tijarati/tijarati_host/internal/models"
)

// MaintenanceRepository groups the multi-statement bulk writes. Every method
// runs inside a single database transaction: either all statements are
// applied or none are visible.
type MaintenanceRepository interface {
	// ClearAll deletes every row from both tables and resets the partner
	// sequence so the next auto-assigned id is 1.
	ClearAll(ctx context.Context) error

	// ReplaceAll deletes all existing rows, inserts the incoming partners
	// (skipping blank names, preserving explicit ids) and transactions
	// (skipping blank ids), then advances the partner sequence to at least
	// the maximum inserted partner id. Returns counts of rows actually
	// inserted.
	ReplaceAll(ctx context.Context, txns []models.Transaction, partners []models.Partner) (partnersInserted, txnsInserted int, err error)

	// DeleteMockData removes every demo-flagged row from both tables.
	DeleteMockData(ctx context.Context) error

	// InsertMockData inserts the given demo rows.
	InsertMockData(ctx context.Context, txns []models.Transaction, partners []models.Partner) error
}
