package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tijarati/tijarati_host/internal/apperrors"
	portsrepo "github.com/tijarati/tijarati_host/internal/core/ports/repositories"
	"github.com/tijarati/tijarati_host/internal/models"
)

type SQLiteTransactionRepository struct {
	db *sql.DB
}

func newSQLiteTransactionRepository(db *sql.DB) *SQLiteTransactionRepository {
	return &SQLiteTransactionRepository{db: db}
}

var _ portsrepo.TransactionRepository = (*SQLiteTransactionRepository)(nil)

const transactionColumns = `id, type, item, amount, quantity, unitPrice, pricingMode, date, isCredit, clientName, paidAmount, isFullyPaid, currency, createdAt, dueDate, reminderId, installments, isMock`

const saveTransactionSQL = `
	INSERT OR REPLACE INTO transactions (` + transactionColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`

// saveTransaction is shared by the direct upsert and the atomic bulk writes.
func saveTransaction(ctx context.Context, ex execer, t models.Transaction) error {
	t.NormalizePaidState()
	_, err := ex.ExecContext(ctx, saveTransactionSQL,
		t.ID,
		string(t.Type),
		t.Item,
		t.Amount,
		t.Quantity,
		t.UnitPrice,
		nullString(t.PricingMode),
		t.Date,
		boolToInt(t.IsCredit),
		t.ClientName,
		t.PaidAmount,
		boolToInt(t.IsFullyPaid),
		t.Currency,
		t.CreatedAt,
		nullString(t.DueDate),
		nullString(t.ReminderID),
		nullString(encodeInstallments(t.Installments)),
		boolToInt(t.IsMock),
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", t.ID, err)
	}
	return nil
}

func (r *SQLiteTransactionRepository) SaveTransaction(ctx context.Context, txn models.Transaction) error {
	return saveTransaction(ctx, r.db, txn)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanTransaction tolerates NULLs in every non-key column: rows written by
// older app versions predate several of them.
func scanTransaction(row rowScanner) (models.Transaction, error) {
	var (
		t            models.Transaction
		ttype        sql.NullString
		item         sql.NullString
		amount       sql.NullFloat64
		quantity     sql.NullFloat64
		unitPrice    sql.NullFloat64
		pricingMode  sql.NullString
		date         sql.NullString
		isCredit     sql.NullInt64
		clientName   sql.NullString
		paidAmount   sql.NullFloat64
		isFullyPaid  sql.NullInt64
		currency     sql.NullString
		createdAt    sql.NullInt64
		dueDate      sql.NullString
		reminderID   sql.NullString
		installments sql.NullString
		isMock       sql.NullInt64
	)
	err := row.Scan(&t.ID, &ttype, &item, &amount, &quantity, &unitPrice, &pricingMode,
		&date, &isCredit, &clientName, &paidAmount, &isFullyPaid, &currency,
		&createdAt, &dueDate, &reminderID, &installments, &isMock)
	if err != nil {
		return models.Transaction{}, err
	}
	t.Type = models.TransactionType(ttype.String)
	t.Item = item.String
	t.Amount = amount.Float64
	t.Quantity = quantity.Float64
	if !quantity.Valid {
		t.Quantity = 1
	}
	t.UnitPrice = unitPrice.Float64
	t.PricingMode = pricingMode.String
	t.Date = date.String
	t.IsCredit = isCredit.Int64 != 0
	t.ClientName = clientName.String
	t.PaidAmount = paidAmount.Float64
	t.IsFullyPaid = isFullyPaid.Int64 != 0
	t.Currency = currency.String
	t.CreatedAt = createdAt.Int64
	t.DueDate = dueDate.String
	t.ReminderID = reminderID.String
	t.Installments = decodeInstallments(installments.String)
	t.IsMock = isMock.Int64 != 0
	return t, nil
}

func (r *SQLiteTransactionRepository) FindTransactionByID(ctx context.Context, id string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = ?;`
	t, err := scanTransaction(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by id %s: %w", id, err)
	}
	return &t, nil
}

func (r *SQLiteTransactionRepository) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date DESC;`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return txns, nil
}

func (r *SQLiteTransactionRepository) DeleteTransaction(ctx context.Context, id string) error {
	// Deleting an absent id is a no-op by contract.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?;`, id); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", id, err)
	}
	return nil
}

func (r *SQLiteTransactionRepository) ListReminderIDs(ctx context.Context) ([]string, error) {
	return r.reminderIDs(ctx, `SELECT reminderId FROM transactions WHERE reminderId IS NOT NULL AND reminderId != '';`)
}

func (r *SQLiteTransactionRepository) ListMockReminderIDs(ctx context.Context) ([]string, error) {
	return r.reminderIDs(ctx, `SELECT reminderId FROM transactions WHERE reminderId IS NOT NULL AND reminderId != '' AND isMock = 1;`)
}

func (r *SQLiteTransactionRepository) reminderIDs(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminder ids: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan reminder id: %w", err)
		}
		ids = append(ids, id)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating reminder ids: %w", rows.Err())
	}
	return ids, nil
}
