package services

import (
	portsrepo "github.com/wevomedia/wevo_media_app/internal/core/ports/repositories"
	portssvc "github.com/wevomedia/wevo_media_app/internal/core/ports/services"
)

// NewServiceContainer wires every service onto the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Lead:       NewLeadService(repos.LeadRepo),
		Client:     NewClientService(repos.ClientRepo),
		Support:    NewSupportService(repos.SupportRepo),
		User:       NewUserService(repos.UserRepo),
		Project:    NewProjectService(repos.ProjectRepo),
		Task:       NewTaskService(repos.TaskRepo),
		Contract:   NewContractService(repos.ContractRepo),
		Entry:      NewFinancialEntryService(repos.EntryRepo),
		Payable:    NewPayableService(repos.PayableRepo),
		Receivable: NewReceivableService(repos.ReceivableRepo),
		Reporting:  NewReportingService(repos.ReportingRepo),
	}
}

// Compile-time checks that each service satisfies its facade.
var (
	_ portssvc.LeadSvcFacade           = (*LeadService)(nil)
	_ portssvc.ClientSvcFacade         = (*ClientService)(nil)
	_ portssvc.SupportSvcFacade        = (*SupportService)(nil)
	_ portssvc.UserSvcFacade           = (*UserService)(nil)
	_ portssvc.ProjectSvcFacade        = (*ProjectService)(nil)
	_ portssvc.TaskSvcFacade           = (*TaskService)(nil)
	_ portssvc.ContractSvcFacade       = (*ContractService)(nil)
	_ portssvc.FinancialEntrySvcFacade = (*FinancialEntryService)(nil)
	_ portssvc.PayableSvcFacade        = (*PayableService)(nil)
	_ portssvc.ReceivableSvcFacade     = (*ReceivableService)(nil)
	_ portssvc.ReportingSvcFacade      = (*ReportingService)(nil)
)
