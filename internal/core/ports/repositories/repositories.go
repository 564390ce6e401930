package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// layer at startup.
type RepositoryProvider struct {
	LeadRepo       LeadRepository
	ClientRepo     ClientRepository
	SupportRepo    SupportRepository
	UserRepo       UserRepository
	ProjectRepo    ProjectRepository
	TaskRepo       TaskRepository
	ContractRepo   ContractRepository
	EntryRepo      FinancialEntryRepository
	PayableRepo    PayableRepository
	ReceivableRepo ReceivableRepository
	ReportingRepo  ReportingRepository
}
