package repositories

import (
	"context"

	"github.com/tijarati/tijarati_host/internal/models"
)

// PartnerRepository is the persistence port for partner records.
type PartnerRepository interface {
	// SavePartner upserts the partner and returns the id it kept. A zero id
	// asks the store to assign the next sequence id; any non-zero id is
	// preserved with replace semantics.
	SavePartner(ctx context.Context, p models.Partner) (int64, error)

	// ListPartners returns all rows.
	ListPartners(ctx context.Context) ([]models.Partner, error)

	// DeletePartner removes the row; deleting an absent id is a no-op.
	DeletePartner(ctx context.Context, id int64) error
}
