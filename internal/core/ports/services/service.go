package services

// ServiceContainer bundles the service facades handed to the bridge handler
// and the REST relay at startup.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Partner     PartnerSvcFacade
	Maintenance MaintenanceSvcFacade
	Reminder    ReminderSvcFacade
	Device      DeviceSvcFacade
	Summary     SummarySvcFacade
}
