package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	portsrepo "github.com/tijarati/tijarati_host/internal/core/ports/repositories"
	"github.com/tijarati/tijarati_host/internal/models"
)

// SQLiteMaintenanceRepository runs the multi-statement bulk writes. Each
// method is a single BEGIN..COMMIT block; any failure inside the block rolls
// everything back so a partial clear or import is never observable.
type SQLiteMaintenanceRepository struct {
	BaseRepository
	log *slog.Logger
}

func newSQLiteMaintenanceRepository(db *sql.DB, logger *slog.Logger) *SQLiteMaintenanceRepository {
	return &SQLiteMaintenanceRepository{BaseRepository: BaseRepository{DB: db}, log: logger}
}

var _ portsrepo.MaintenanceRepository = (*SQLiteMaintenanceRepository)(nil)

// rollbackOnErr rolls back when err is set. A rollback failure is logged but
// never masks the original error.
func (r *SQLiteMaintenanceRepository) rollbackOnErr(tx *sql.Tx, err error) {
	if err == nil {
		return
	}
	if rbErr := r.Rollback(tx); rbErr != nil {
		r.log.Error("Rollback failed", slog.String("error", rbErr.Error()))
	}
}

func (r *SQLiteMaintenanceRepository) ClearAll(ctx context.Context) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { r.rollbackOnErr(tx, err) }()

	if _, err = tx.ExecContext(ctx, `DELETE FROM transactions;`); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM partners;`); err != nil {
		return fmt.Errorf("failed to clear partners: %w", err)
	}
	// Reset the autoincrement counter so the next partner gets id 1.
	if _, err = tx.ExecContext(ctx, `DELETE FROM sqlite_sequence WHERE name = 'partners';`); err != nil {
		return fmt.Errorf("failed to reset partner sequence: %w", err)
	}
	return r.Commit(tx)
}

func (r *SQLiteMaintenanceRepository) ReplaceAll(ctx context.Context, txns []models.Transaction, partners []models.Partner) (partnersInserted, txnsInserted int, err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, 0, err
	}
	defer func() { r.rollbackOnErr(tx, err) }()

	if _, err = tx.ExecContext(ctx, `DELETE FROM transactions;`); err != nil {
		return 0, 0, fmt.Errorf("failed to clear transactions for import: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM partners;`); err != nil {
		return 0, 0, fmt.Errorf("failed to clear partners for import: %w", err)
	}
	// Drop the sequence row so the counter restarts from the imported ids.
	// AUTOINCREMENT recreates it on insert, keeping seq at the largest
	// explicit id, so a later auto-assigned id never collides with one we
	// preserved. sqlite_sequence has no unique constraint on name, which is
	// why the row is deleted rather than upserted.
	if _, err = tx.ExecContext(ctx, `DELETE FROM sqlite_sequence WHERE name = 'partners';`); err != nil {
		return 0, 0, fmt.Errorf("failed to reset partner sequence for import: %w", err)
	}

	for _, p := range partners {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		if _, err = savePartner(ctx, tx, p); err != nil {
			return 0, 0, err
		}
		partnersInserted++
	}

	for _, t := range txns {
		if strings.TrimSpace(t.ID) == "" {
			continue
		}
		if err = saveTransaction(ctx, tx, t); err != nil {
			return 0, 0, err
		}
		txnsInserted++
	}

	if err = r.Commit(tx); err != nil {
		return 0, 0, err
	}
	return partnersInserted, txnsInserted, nil
}

func (r *SQLiteMaintenanceRepository) DeleteMockData(ctx context.Context) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { r.rollbackOnErr(tx, err) }()

	if _, err = tx.ExecContext(ctx, `DELETE FROM transactions WHERE isMock = 1;`); err != nil {
		return fmt.Errorf("failed to delete mock transactions: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM partners WHERE isMock = 1;`); err != nil {
		return fmt.Errorf("failed to delete mock partners: %w", err)
	}
	return r.Commit(tx)
}

func (r *SQLiteMaintenanceRepository) InsertMockData(ctx context.Context, txns []models.Transaction, partners []models.Partner) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { r.rollbackOnErr(tx, err) }()

	for _, p := range partners {
		if _, err = savePartner(ctx, tx, p); err != nil {
			return err
		}
	}
	for _, t := range txns {
		if err = saveTransaction(ctx, tx, t); err != nil {
			return err
		}
	}
	return r.Commit(tx)
}
