package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tijarati/tijarati_host/internal/apperrors"
)

// Content is what the platform shows when a scheduled notification fires.
type Content struct {
	Title string
	Body  string
	Data  map[string]string
}

// Scheduler is the platform notification seam: one-shot, non-repeating
// timers identified by opaque handles.
type Scheduler interface {
	ScheduleOneShot(ctx context.Context, delaySeconds int64, content Content) (string, error)
	CancelScheduled(ctx context.Context, handle string) error
}

// TimerScheduler is an in-process Scheduler backed by one-shot timers.
// Deliver is invoked when a timer fires; by default the notification is
// logged.
type TimerScheduler struct {
	mu      sync.Mutex
	pending map[string]*time.Timer
	log     *slog.Logger
	deliver func(Content)
}

var _ Scheduler = (*TimerScheduler)(nil)

func NewTimerScheduler(logger *slog.Logger, deliver func(Content)) *TimerScheduler {
	s := &TimerScheduler{
		pending: make(map[string]*time.Timer),
		log:     logger,
		deliver: deliver,
	}
	if s.deliver == nil {
		s.deliver = func(c Content) {
			logger.Info("Notification fired", slog.String("title", c.Title), slog.String("body", c.Body))
		}
	}
	return s
}

func (s *TimerScheduler) ScheduleOneShot(ctx context.Context, delaySeconds int64, content Content) (string, error) {
	if delaySeconds <= 0 {
		return "", fmt.Errorf("delay must be positive: %w", apperrors.ErrInvalidTime)
	}
	handle := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[handle] = time.AfterFunc(time.Duration(delaySeconds)*time.Second, func() {
		s.mu.Lock()
		delete(s.pending, handle)
		s.mu.Unlock()
		s.deliver(content)
	})
	return handle, nil
}

func (s *TimerScheduler) CancelScheduled(ctx context.Context, handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.pending[handle]
	if !ok {
		return fmt.Errorf("unknown reminder handle %s: %w", handle, apperrors.ErrNotFound)
	}
	t.Stop()
	delete(s.pending, handle)
	return nil
}

// PendingCount reports how many timers are still armed.
func (s *TimerScheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
