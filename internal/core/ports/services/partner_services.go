package services

import (
	"context"

	"github.com/tijarati/tijarati_host/internal/dto"
)

// PartnerSvcFacade exposes partner operations to the bridge handler and the
// REST relay.
type PartnerSvcFacade interface {
	ListPartners(ctx context.Context) ([]dto.PartnerResponse, error)
	// SavePartner returns the id the store kept or assigned.
	SavePartner(ctx context.Context, req dto.SavePartnerRequest) (int64, error)
	DeletePartner(ctx context.Context, id int64) error
}
