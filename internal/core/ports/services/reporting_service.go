package services

import (
	"context"

	"github.com/workforceapp/wfm_backend/internal/core/domain"
)

// ReportingSvcFacade defines the application service surface for dashboard
// analytics.
type ReportingSvcFacade interface {
	// GetDashboardSummary returns organization-wide totals and the employee
	// hiring status breakdown.
	GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}
