package dto

import "github.com/wevomedia/wevo_media_app/internal/core/domain"

// ReportResponse is the generic tabular payload for one executed report.
// Columns preserves the select-list order so a generic table renderer can lay
// the rows out without knowing the report.
type ReportResponse struct {
	Name    string             `json:"name"`
	Title   string             `json:"title"`
	Columns []string           `json:"columns"`
	Rows    []domain.ReportRow `json:"rows"`
}

// ListReportsResponse wraps the report catalog listing.
type ListReportsResponse struct {
	Reports []domain.ReportInfo `json:"reports"`
}

// DashboardResponse carries the entity counts for the landing page.
type DashboardResponse struct {
	TotalLeads    int64 `json:"totalLeads"`
	TotalClients  int64 `json:"totalClients"`
	TotalProjects int64 `json:"totalProjects"`
	TotalTasks    int64 `json:"totalTasks"`
}

// ToReportResponse converts a domain report result to its response form.
func ToReportResponse(r *domain.ReportResult) ReportResponse {
	return ReportResponse{
		Name:    r.Name,
		Title:   r.Title,
		Columns: r.Columns,
		Rows:    r.Rows,
	}
}

// ToDashboardResponse converts a domain dashboard summary to its response form.
func ToDashboardResponse(s *domain.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		TotalLeads:    s.TotalLeads,
		TotalClients:  s.TotalClients,
		TotalProjects: s.TotalProjects,
		TotalTasks:    s.TotalTasks,
	}
}
