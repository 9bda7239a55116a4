package services

import (
	"context"

	"github.com/tijarati/tijarati_host/internal/dto"
)

// MaintenanceSvcFacade exposes the atomic bulk operations. Reminder handles
// referenced by affected rows are cancelled best-effort before each write
// transaction begins; a handle that fails to cancel never aborts the
// operation.
type MaintenanceSvcFacade interface {
	ClearAll(ctx context.Context) error
	ImportReplace(ctx context.Context, state dto.ImportState) (dto.ImportCounts, error)
	// SetMockData inserts the deterministic demo set when enabling and
	// removes every demo-flagged row when disabling.
	SetMockData(ctx context.Context, enabled bool) error
}
