package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// The derived counters on companies and departments are never adjusted
// incrementally. Every structural write recomputes them from the live rows
// inside the same transaction, so a partial failure can never leave a stale
// count behind.

func refreshCompanyCounters(ctx context.Context, tx pgx.Tx, companyID string) error {
	query := `
		UPDATE companies SET
			num_departments = (SELECT COUNT(*) FROM departments WHERE company_id = $1),
			num_employees = (SELECT COUNT(*) FROM employees WHERE company_id = $1)
		WHERE company_id = $1;
	`
	if _, err := tx.Exec(ctx, query, companyID); err != nil {
		return fmt.Errorf("failed to refresh counters for company %s: %w", companyID, err)
	}
	return nil
}

func refreshDepartmentCounters(ctx context.Context, tx pgx.Tx, departmentID string) error {
	query := `
		UPDATE departments SET
			num_employees = (SELECT COUNT(*) FROM employees WHERE department_id = $1)
		WHERE department_id = $1;
	`
	if _, err := tx.Exec(ctx, query, departmentID); err != nil {
		return fmt.Errorf("failed to refresh counters for department %s: %w", departmentID, err)
	}
	return nil
}
