package repositories

import (
	"context"

	"github.com/wevomedia/wevo_media_app/internal/core/domain"
)

// ReportingRepository exposes the fixed catalog of named, zero-argument
// analytical queries. RunReport returns apperrors.ErrNotFound for a name that
// is not in the catalog; query execution errors propagate unretried.
type ReportingRepository interface {
	ListReports() []domain.ReportInfo
	RunReport(ctx context.Context, name string) (*domain.ReportResult, error)
	GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}

// SchemaManager provisions the relational schema. Provision runs the whole
// DDL batch inside one transaction and must be a no-op when run again.
type SchemaManager interface {
	Provision(ctx context.Context) error
}
