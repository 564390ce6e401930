package domain

// Report names, fixed at compile time. Each identifies one canned query in the
// report catalog; none take arguments.
const (
	ReportClientsAboveAvgTickets    = "clients_above_avg_tickets"
	ReportProjectsHighPriorityTasks = "projects_high_priority_tasks"
	ReportProjectFinancialSummary   = "project_financial_summary"
	ReportClientSupportStats        = "client_support_stats"
	ReportPendingAccountsUnion      = "pending_accounts_union"
	ReportCommonTaxIDs              = "common_tax_ids"
)

// ReportInfo describes one entry of the report catalog.
type ReportInfo struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ReportRow maps a column name to its value for a single result row.
type ReportRow map[string]any

// ReportResult is a generic tabular result. Columns preserves the order of the
// query's select list; Rows preserves the order returned by the database.
type ReportResult struct {
	Name    string      `json:"name"`
	Title   string      `json:"title"`
	Columns []string    `json:"columns"`
	Rows    []ReportRow `json:"rows"`
}

// DashboardSummary carries the entity counts shown on the landing page.
type DashboardSummary struct {
	TotalLeads    int64 `json:"totalLeads"`
	TotalClients  int64 `json:"totalClients"`
	TotalProjects int64 `json:"totalProjects"`
	TotalTasks    int64 `json:"totalTasks"`
}
