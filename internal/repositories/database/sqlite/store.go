package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens (creating if absent) the single-file store. The connection pool
// is capped at one connection: sqlite allows a single writer at a time and a
// shared connection keeps :memory: test stores coherent.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

const createTablesSQL = `
CREATE TABLE IF NOT EXISTS transactions (
	id TEXT PRIMARY KEY,
	type TEXT,
	item TEXT,
	amount REAL,
	quantity REAL,
	date TEXT,
	isCredit INTEGER,
	clientName TEXT,
	paidAmount REAL,
	isFullyPaid INTEGER,
	currency TEXT,
	createdAt INTEGER
);
CREATE TABLE IF NOT EXISTS partners (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT,
	percent REAL,
	createdAt INTEGER
);
`

// Columns added after the first shipped schema. The store may open files
// written by older app versions, so these are applied additively at every
// open; existing rows default the new columns to NULL. Columns are never
// removed or renamed.
var additiveColumns = []struct {
	table  string
	column string
	ddl    string
}{
	{"transactions", "unitPrice", "ALTER TABLE transactions ADD COLUMN unitPrice REAL"},
	{"transactions", "pricingMode", "ALTER TABLE transactions ADD COLUMN pricingMode TEXT"},
	{"transactions", "dueDate", "ALTER TABLE transactions ADD COLUMN dueDate TEXT"},
	{"transactions", "reminderId", "ALTER TABLE transactions ADD COLUMN reminderId TEXT"},
	{"transactions", "installments", "ALTER TABLE transactions ADD COLUMN installments TEXT"},
	{"transactions", "isMock", "ALTER TABLE transactions ADD COLUMN isMock INTEGER DEFAULT 0"},
	{"partners", "investedAmount", "ALTER TABLE partners ADD COLUMN investedAmount REAL"},
	{"partners", "investedDate", "ALTER TABLE partners ADD COLUMN investedDate TEXT"},
	{"partners", "profitSchedule", "ALTER TABLE partners ADD COLUMN profitSchedule TEXT"},
	{"partners", "notes", "ALTER TABLE partners ADD COLUMN notes TEXT"},
	{"partners", "payouts", "ALTER TABLE partners ADD COLUMN payouts TEXT"},
	{"partners", "isMock", "ALTER TABLE partners ADD COLUMN isMock INTEGER DEFAULT 0"},
}

// Migrate creates both tables if absent and appends any columns introduced
// since the file was written. Idempotent; a column that already exists never
// fails the open.
func Migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if _, err := db.ExecContext(ctx, createTablesSQL); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	existing := map[string]map[string]bool{}
	for _, table := range []string{"transactions", "partners"} {
		cols, err := tableColumns(ctx, db, table)
		if err != nil {
			return err
		}
		existing[table] = cols
	}

	for _, ac := range additiveColumns {
		if existing[ac.table][ac.column] {
			continue
		}
		if _, err := db.ExecContext(ctx, ac.ddl); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("failed to add column %s.%s: %w", ac.table, ac.column, err)
		}
		logger.Info("Added column", slog.String("table", ac.table), slog.String("column", ac.column))
	}
	return nil
}

func tableColumns(ctx context.Context, db *sql.DB, table string) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, fmt.Errorf("failed to inspect columns of %s: %w", table, err)
	}
	defer rows.Close()

	cols := map[string]bool{}
	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan column info of %s: %w", table, err)
		}
		cols[name] = true
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating column info of %s: %w", table, rows.Err())
	}
	return cols, nil
}
