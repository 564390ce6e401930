package services

import (
	"context"

	"github.com/wevomedia/wevo_media_app/internal/core/domain"
)

// ReportingSvcFacade exposes the fixed report catalog to the web layer.
type ReportingSvcFacade interface {
	ListReports() []domain.ReportInfo
	RunReport(ctx context.Context, name string) (*domain.ReportResult, error)
	GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}
