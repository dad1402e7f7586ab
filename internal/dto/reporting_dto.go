package dto

import "github.com/workforceapp/wfm_backend/internal/core/domain"

// StatusCountResponse is one row of the employee hiring status breakdown.
type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// DashboardResponse is the API representation of the analytics dashboard.
type DashboardResponse struct {
	TotalCompanies          int                   `json:"total_companies"`
	TotalDepartments        int                   `json:"total_departments"`
	TotalEmployees          int                   `json:"total_employees"`
	EmployeeStatusBreakdown []StatusCountResponse `json:"employee_status_breakdown"`
}

// ToDashboardResponse maps a dashboard summary to its API representation.
func ToDashboardResponse(summary domain.DashboardSummary) DashboardResponse {
	breakdown := make([]StatusCountResponse, 0, len(summary.EmployeeStatusBreakdown))
	for _, row := range summary.EmployeeStatusBreakdown {
		breakdown = append(breakdown, StatusCountResponse{
			Status: string(row.Status),
			Count:  row.Count,
		})
	}
	return DashboardResponse{
		TotalCompanies:          summary.TotalCompanies,
		TotalDepartments:        summary.TotalDepartments,
		TotalEmployees:          summary.TotalEmployees,
		EmployeeStatusBreakdown: breakdown,
	}
}
