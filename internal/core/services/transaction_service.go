package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tijarati/tijarati_host/internal/apperrors"
	portsrepo "github.com/tijarati/tijarati_host/internal/core/ports/repositories"
	portssvc "github.com/tijarati/tijarati_host/internal/core/ports/services"
	"github.com/tijarati/tijarati_host/internal/dto"
	"github.com/tijarati/tijarati_host/internal/utils/mapping"
)

type TransactionService struct {
	repo      portsrepo.TransactionRepository
	reminders portssvc.ReminderSvcFacade
	log       *slog.Logger
}

func NewTransactionService(repo portsrepo.TransactionRepository, reminders portssvc.ReminderSvcFacade, logger *slog.Logger) *TransactionService {
	return &TransactionService{repo: repo, reminders: reminders, log: logger}
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

func (s *TransactionService) ListTransactions(ctx context.Context) ([]dto.TransactionResponse, error) {
	txns, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return mapping.ToTransactionResponses(txns), nil
}

func (s *TransactionService) SaveTransaction(ctx context.Context, req dto.SaveTransactionRequest) error {
	if strings.TrimSpace(req.ID) == "" {
		return fmt.Errorf("transaction id is required: %w", apperrors.ErrValidation)
	}
	if err := s.repo.SaveTransaction(ctx, mapping.ToModelTransaction(req)); err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

// DeleteTransaction best-effort cancels any reminder still attached to the
// record before removing the row. A dangling scheduled notification is an
// acceptable degraded state, so cancellation failures are only logged.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id string) error {
	txn, err := s.repo.FindTransactionByID(ctx, id)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.log.Warn("Reminder lookup before delete failed", slog.String("txn_id", id), slog.String("error", err.Error()))
	}
	if txn != nil && txn.ReminderID != "" {
		s.reminders.Cancel(ctx, txn.ReminderID)
	}
	if err := s.repo.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
