package services

import (
	"log/slog"

	portsrepo "github.com/tijarati/tijarati_host/internal/core/ports/repositories"
	portssvc "github.com/tijarati/tijarati_host/internal/core/ports/services"
	"github.com/tijarati/tijarati_host/internal/platform/notify"
)

// NewServiceContainer wires the full service layer over the repository
// container, the platform scheduler and the device capability service.
func NewServiceContainer(
	repos portsrepo.RepositoryContainer,
	scheduler notify.Scheduler,
	device portssvc.DeviceSvcFacade,
	logger *slog.Logger,
) *portssvc.ServiceContainer {
	reminders := NewReminderService(scheduler, logger)
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.Transaction, reminders, logger),
		Partner:     NewPartnerService(repos.Partner, logger),
		Maintenance: NewMaintenanceService(repos.Transaction, repos.Maintenance, reminders, logger),
		Reminder:    reminders,
		Device:      device,
		Summary:     NewSummaryService(repos.Transaction, logger),
	}
}
