package services

import (
	"context"

	"github.com/tijarati/tijarati_host/internal/dto"
)

// SummarySvcFacade computes dashboard totals over stored transactions.
type SummarySvcFacade interface {
	Summary(ctx context.Context) (dto.SummaryResponse, error)
}
