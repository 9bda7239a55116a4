package services

import (
	"context"

	"github.com/tijarati/tijarati_host/internal/dto"
)

// TransactionSvcFacade exposes transaction operations to the bridge handler
// and the REST relay.
type TransactionSvcFacade interface {
	ListTransactions(ctx context.Context) ([]dto.TransactionResponse, error)
	SaveTransaction(ctx context.Context, req dto.SaveTransactionRequest) error
	// DeleteTransaction best-effort cancels any reminder attached to the
	// record before removing it. Deleting an absent id succeeds.
	DeleteTransaction(ctx context.Context, id string) error
}
