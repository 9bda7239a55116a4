package services

import (
	"context"

	"github.com/tijarati/tijarati_host/internal/dto"
)

// ReminderSvcFacade schedules and cancels time-based notifications linked to
// transaction records.
type ReminderSvcFacade interface {
	// Schedule returns an opaque handle, or apperrors.ErrInvalidTime when the
	// timestamp is not a finite future time at least five seconds ahead. On
	// rejection no platform call is issued.
	Schedule(ctx context.Context, req dto.ScheduleReminderPayload) (string, error)
	// Cancel is best-effort: a missing handle or a platform failure is
	// logged, never escalated.
	Cancel(ctx context.Context, handle string)
}
