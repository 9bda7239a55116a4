package services

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/tijarati/tijarati_host/internal/core/ports/repositories"
	portssvc "github.com/tijarati/tijarati_host/internal/core/ports/services"
	"github.com/tijarati/tijarati_host/internal/dto"
	"github.com/tijarati/tijarati_host/internal/models"
	"github.com/tijarati/tijarati_host/internal/utils/mapping"
)

// MaintenanceService drives the atomic bulk operations: reminder cleanup
// happens best-effort before the write transaction begins, then the
// repository applies the whole write or none of it.
type MaintenanceService struct {
	txnRepo   portsrepo.TransactionRepository
	maintRepo portsrepo.MaintenanceRepository
	reminders portssvc.ReminderSvcFacade
	log       *slog.Logger
}

func NewMaintenanceService(
	txnRepo portsrepo.TransactionRepository,
	maintRepo portsrepo.MaintenanceRepository,
	reminders portssvc.ReminderSvcFacade,
	logger *slog.Logger,
) *MaintenanceService {
	return &MaintenanceService{
		txnRepo:   txnRepo,
		maintRepo: maintRepo,
		reminders: reminders,
		log:       logger,
	}
}

var _ portssvc.MaintenanceSvcFacade = (*MaintenanceService)(nil)

// cancelReminders cancels each handle individually; one bad handle must not
// abort the cleanup of the rest, and cleanup failure must not abort the
// caller's operation.
func (s *MaintenanceService) cancelReminders(ctx context.Context, ids []string, err error) {
	if err != nil {
		s.log.Warn("Reminder handle lookup failed, skipping cleanup", slog.String("error", err.Error()))
		return
	}
	for _, id := range ids {
		s.reminders.Cancel(ctx, id)
	}
}

func (s *MaintenanceService) ClearAll(ctx context.Context) error {
	ids, err := s.txnRepo.ListReminderIDs(ctx)
	s.cancelReminders(ctx, ids, err)

	if err := s.maintRepo.ClearAll(ctx); err != nil {
		return fmt.Errorf("failed to clear all data: %w", err)
	}
	s.log.Info("All data cleared")
	return nil
}

func (s *MaintenanceService) ImportReplace(ctx context.Context, state dto.ImportState) (dto.ImportCounts, error) {
	ids, err := s.txnRepo.ListReminderIDs(ctx)
	s.cancelReminders(ctx, ids, err)

	txns := make([]models.Transaction, len(state.Transactions))
	for i, t := range state.Transactions {
		txns[i] = mapping.ToModelTransaction(t)
	}
	partners := make([]models.Partner, len(state.Partners))
	for i, p := range state.Partners {
		partners[i] = mapping.ToModelPartner(p)
	}

	partnersInserted, txnsInserted, err := s.maintRepo.ReplaceAll(ctx, txns, partners)
	if err != nil {
		return dto.ImportCounts{}, fmt.Errorf("import failed: %w", err)
	}

	counts := dto.ImportCounts{Partners: partnersInserted, Transactions: txnsInserted}
	s.log.Info("Import applied",
		slog.Int("partners", counts.Partners),
		slog.Int("transactions", counts.Transactions),
	)
	return counts, nil
}

func (s *MaintenanceService) SetMockData(ctx context.Context, enabled bool) error {
	if enabled {
		if err := s.maintRepo.InsertMockData(ctx, demoTransactions(), demoPartners()); err != nil {
			return fmt.Errorf("failed to insert demo data: %w", err)
		}
		s.log.Info("Demo data enabled")
		return nil
	}

	ids, err := s.txnRepo.ListMockReminderIDs(ctx)
	s.cancelReminders(ctx, ids, err)

	if err := s.maintRepo.DeleteMockData(ctx); err != nil {
		return fmt.Errorf("failed to remove demo data: %w", err)
	}
	s.log.Info("Demo data disabled")
	return nil
}
