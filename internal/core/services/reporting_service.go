package services

import (
	"context"
	"fmt"

	"github.com/wevomedia/wevo_media_app/internal/core/domain"
	portsrepo "github.com/wevomedia/wevo_media_app/internal/core/ports/repositories"
)

type ReportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

func NewReportingService(reportingRepo portsrepo.ReportingRepository) *ReportingService {
	return &ReportingService{reportingRepo: reportingRepo}
}

func (s *ReportingService) ListReports() []domain.ReportInfo {
	return s.reportingRepo.ListReports()
}

// RunReport executes one catalog query. There is no retry: a failed query
// surfaces as an error on this request and the next request starts fresh.
func (s *ReportingService) RunReport(ctx context.Context, name string) (*domain.ReportResult, error) {
	result, err := s.reportingRepo.RunReport(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to run report %s: %w", name, err)
	}
	return result, nil
}

func (s *ReportingService) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	summary, err := s.reportingRepo.GetDashboardSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard summary: %w", err)
	}
	return summary, nil
}
