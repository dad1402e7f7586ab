package pgsql

import (
	"context"
	"fmt"

	"github.com/workforceapp/wfm_backend/internal/core/domain"
	portsrepo "github.com/workforceapp/wfm_backend/internal/core/ports/repositories"
)

type ReportingRepository struct {
	db DBPool
}

func newReportingRepository(db DBPool) portsrepo.ReportingRepositoryFacade {
	return &ReportingRepository{db: db}
}

// Ensure ReportingRepository implements portsrepo.ReportingRepositoryFacade
var _ portsrepo.ReportingRepositoryFacade = (*ReportingRepository)(nil)

// GetDashboardSummary reads the organization-wide totals and the employee
// hiring status breakdown.
func (r *ReportingRepository) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	var summary domain.DashboardSummary

	totalsQuery := `
		SELECT
			(SELECT COUNT(*) FROM companies),
			(SELECT COUNT(*) FROM departments),
			(SELECT COUNT(*) FROM employees);
	`
	err := r.db.QueryRow(ctx, totalsQuery).Scan(
		&summary.TotalCompanies,
		&summary.TotalDepartments,
		&summary.TotalEmployees,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query dashboard totals: %w", err)
	}

	breakdownQuery := `
		SELECT status, COUNT(*)
		FROM employees
		GROUP BY status
		ORDER BY status;
	`
	rows, err := r.db.Query(ctx, breakdownQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query status breakdown: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row domain.StatusCount
		var status string
		if err := rows.Scan(&status, &row.Count); err != nil {
			return nil, fmt.Errorf("failed to scan status breakdown: %w", err)
		}
		row.Status = domain.HiringStatus(status)
		summary.EmployeeStatusBreakdown = append(summary.EmployeeStatusBreakdown, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read status breakdown: %w", err)
	}

	return &summary, nil
}
