package services

// ServiceContainer bundles the service facades handed to the handlers.
type ServiceContainer struct {
	Lead       LeadSvcFacade
	Client     ClientSvcFacade
	Support    SupportSvcFacade
	User       UserSvcFacade
	Project    ProjectSvcFacade
	Task       TaskSvcFacade
	Contract   ContractSvcFacade
	Entry      FinancialEntrySvcFacade
	Payable    PayableSvcFacade
	Receivable ReceivableSvcFacade
	Reporting  ReportingSvcFacade
}
