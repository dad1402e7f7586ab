package repositories

import (
	"context"

	"github.com/workforceapp/wfm_backend/internal/core/domain"
)

// ReportingReader defines read operations for aggregated dashboard data
type ReportingReader interface {
	// GetDashboardSummary computes the organization-wide totals and the
	// employee hiring status breakdown in a single consistent snapshot.
	GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}

// ReportingRepositoryFacade combines all reporting-related repository interfaces
type ReportingRepositoryFacade interface {
	ReportingReader
}
