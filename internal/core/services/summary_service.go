package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	portsrepo "github.com/tijarati/tijarati_host/internal/core/ports/repositories"
	portssvc "github.com/tijarati/tijarati_host/internal/core/ports/services"
	"github.com/tijarati/tijarati_host/internal/dto"
	"github.com/tijarati/tijarati_host/internal/models"
)

// SummaryService computes all-time dashboard totals. Totals are accumulated
// with decimals so thousands of float-stored amounts don't drift.
type SummaryService struct {
	repo portsrepo.TransactionRepository
	log  *slog.Logger
}

func NewSummaryService(repo portsrepo.TransactionRepository, logger *slog.Logger) *SummaryService {
	return &SummaryService{repo: repo, log: logger}
}

var _ portssvc.SummarySvcFacade = (*SummaryService)(nil)

func (s *SummaryService) Summary(ctx context.Context) (dto.SummaryResponse, error) {
	txns, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return dto.SummaryResponse{}, fmt.Errorf("failed to compute summary: %w", err)
	}

	totalIn := decimal.Zero
	totalOut := decimal.Zero
	for _, t := range txns {
		amount := decimal.NewFromFloat(t.Amount)
		switch t.Type {
		case models.Sale:
			totalIn = totalIn.Add(amount)
		case models.Purchase:
			totalOut = totalOut.Add(amount)
		}
	}

	return dto.SummaryResponse{
		TotalIn:  totalIn.InexactFloat64(),
		TotalOut: totalOut.InexactFloat64(),
		Profit:   totalIn.Sub(totalOut).InexactFloat64(),
	}, nil
}
