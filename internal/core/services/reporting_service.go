package services

import (
	"context"

	"github.com/workforceapp/wfm_backend/internal/core/domain"
	portsrepo "github.com/workforceapp/wfm_backend/internal/core/ports/repositories"
	portssvc "github.com/workforceapp/wfm_backend/internal/core/ports/services"
)

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepositoryFacade
}

// NewReportingService creates the dashboard analytics service.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	return s.reportingRepo.GetDashboardSummary(ctx)
}
