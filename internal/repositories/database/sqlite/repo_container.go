package sqlite

import (
	"database/sql"
	"log/slog"

	portsrepo "github.com/tijarati/tijarati_host/internal/core/ports/repositories"
)

// NewRepositoryContainer wires the sqlite implementations of every
// repository port over one shared database handle.
func NewRepositoryContainer(db *sql.DB, logger *slog.Logger) portsrepo.RepositoryContainer {
	return portsrepo.RepositoryContainer{
		Transaction: newSQLiteTransactionRepository(db),
		Partner:     newSQLitePartnerRepository(db),
		Maintenance: newSQLiteMaintenanceRepository(db, logger),
	}
}
