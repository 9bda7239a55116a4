package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	portsrepo "github.com/tijarati/tijarati_host/internal/core/ports/repositories"
	"github.com/tijarati/tijarati_host/internal/models"
)

type SQLitePartnerRepository struct {
	db *sql.DB
}

func newSQLitePartnerRepository(db *sql.DB) *SQLitePartnerRepository {
	return &SQLitePartnerRepository{db: db}
}

var _ portsrepo.PartnerRepository = (*SQLitePartnerRepository)(nil)

const partnerColumns = `id, name, percent, createdAt, investedAmount, investedDate, profitSchedule, notes, payouts, isMock`

const savePartnerWithIDSQL = `
	INSERT OR REPLACE INTO partners (` + partnerColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`

const savePartnerAutoIDSQL = `
	INSERT INTO partners (name, percent, createdAt, investedAmount, investedDate, profitSchedule, notes, payouts, isMock)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
`

// savePartner is shared by the direct upsert and the atomic bulk writes.
// An explicit non-zero id (demo records use negative ones) is preserved with
// replace semantics; a zero id lets the sequence assign the next one.
func savePartner(ctx context.Context, ex execer, p models.Partner) (int64, error) {
	if p.ID != 0 {
		_, err := ex.ExecContext(ctx, savePartnerWithIDSQL,
			p.ID, p.Name, p.Percent, p.CreatedAt, p.InvestedAmount,
			nullString(p.InvestedDate), nullString(p.ProfitSchedule), nullString(p.Notes),
			nullString(encodePayouts(p.Payouts)), boolToInt(p.IsMock),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to save partner %d: %w", p.ID, err)
		}
		return p.ID, nil
	}

	res, err := ex.ExecContext(ctx, savePartnerAutoIDSQL,
		p.Name, p.Percent, p.CreatedAt, p.InvestedAmount,
		nullString(p.InvestedDate), nullString(p.ProfitSchedule), nullString(p.Notes),
		nullString(encodePayouts(p.Payouts)), boolToInt(p.IsMock),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert partner %s: %w", p.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read assigned partner id: %w", err)
	}
	return id, nil
}

func (r *SQLitePartnerRepository) SavePartner(ctx context.Context, p models.Partner) (int64, error) {
	return savePartner(ctx, r.db, p)
}

func scanPartner(row rowScanner) (models.Partner, error) {
	var (
		p              models.Partner
		name           sql.NullString
		percent        sql.NullFloat64
		createdAt      sql.NullInt64
		investedAmount sql.NullFloat64
		investedDate   sql.NullString
		profitSchedule sql.NullString
		notes          sql.NullString
		payouts        sql.NullString
		isMock         sql.NullInt64
	)
	err := row.Scan(&p.ID, &name, &percent, &createdAt, &investedAmount,
		&investedDate, &profitSchedule, &notes, &payouts, &isMock)
	if err != nil {
		return models.Partner{}, err
	}
	p.Name = name.String
	p.Percent = percent.Float64
	p.CreatedAt = createdAt.Int64
	p.InvestedAmount = investedAmount.Float64
	p.InvestedDate = investedDate.String
	p.ProfitSchedule = profitSchedule.String
	p.Notes = notes.String
	p.Payouts = decodePayouts(payouts.String)
	p.IsMock = isMock.Int64 != 0
	return p, nil
}

func (r *SQLitePartnerRepository) ListPartners(ctx context.Context) ([]models.Partner, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+partnerColumns+` FROM partners;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query partners: %w", err)
	}
	defer rows.Close()

	partners := []models.Partner{}
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan partner row: %w", err)
		}
		partners = append(partners, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating partner rows: %w", rows.Err())
	}
	return partners, nil
}

func (r *SQLitePartnerRepository) DeletePartner(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM partners WHERE id = ?;`, id); err != nil {
		return fmt.Errorf("failed to delete partner %d: %w", id, err)
	}
	return nil
}
