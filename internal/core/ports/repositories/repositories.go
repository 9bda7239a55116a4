package repositories

// RepositoryContainer bundles the repository ports handed to the service
// layer at startup.
type RepositoryContainer struct {
	Transaction TransactionRepository
	Partner     PartnerRepository
	Maintenance MaintenanceRepository
}
