package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/tijarati/tijarati_host/internal/apperrors"
	portssvc "github.com/tijarati/tijarati_host/internal/core/ports/services"
	"github.com/tijarati/tijarati_host/internal/dto"
	"github.com/tijarati/tijarati_host/internal/platform/notify"
)

// minLeadSeconds is the scheduling floor: some platform schedulers silently
// drop near-immediate triggers.
const minLeadSeconds = 5

type ReminderService struct {
	scheduler notify.Scheduler
	log       *slog.Logger
	now       func() time.Time
}

func NewReminderService(scheduler notify.Scheduler, logger *slog.Logger) *ReminderService {
	return &ReminderService{scheduler: scheduler, log: logger, now: time.Now}
}

var _ portssvc.ReminderSvcFacade = (*ReminderService)(nil)

func (s *ReminderService) Schedule(ctx context.Context, req dto.ScheduleReminderPayload) (string, error) {
	ts := req.Timestamp
	if ts <= 0 || math.IsNaN(ts) || math.IsInf(ts, 0) {
		return "", fmt.Errorf("invalid timestamp: %w", apperrors.ErrInvalidTime)
	}

	diffMillis := int64(ts) - s.now().UnixMilli()
	// Ceiling of the whole-second difference.
	diffSeconds := (diffMillis + 999) / 1000
	if diffSeconds < minLeadSeconds {
		return "", apperrors.ErrInvalidTime
	}

	title := req.Title
	if title == "" {
		title = "Debt reminder"
	}
	handle, err := s.scheduler.ScheduleOneShot(ctx, diffSeconds, notify.Content{
		Title: title,
		Body:  req.Body,
		Data:  map[string]string{"txId": req.TxID},
	})
	if err != nil {
		return "", fmt.Errorf("failed to schedule reminder: %w", err)
	}
	s.log.Info("Reminder scheduled",
		slog.String("reminder_id", handle),
		slog.String("txn_id", req.TxID),
		slog.Int64("in_seconds", diffSeconds),
	)
	return handle, nil
}

// Cancel is best-effort: a missing handle or a platform failure leaves at
// worst a dangling notification, which is preferable to failing the caller's
// larger operation.
func (s *ReminderService) Cancel(ctx context.Context, handle string) {
	if handle == "" {
		return
	}
	if err := s.scheduler.CancelScheduled(ctx, handle); err != nil {
		s.log.Warn("Reminder cancellation failed", slog.String("reminder_id", handle), slog.String("error", err.Error()))
	}
}
