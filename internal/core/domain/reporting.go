package domain

// StatusCount is one row of the dashboard status breakdown. Only statuses
// actually present in the data are enumerated.
type StatusCount struct {
	Status HiringStatus `json:"status"`
	Count  int          `json:"count"`
}

// DashboardSummary aggregates entity totals and the employee status breakdown.
type DashboardSummary struct {
	TotalCompanies          int           `json:"total_companies"`
	TotalDepartments        int           `json:"total_departments"`
	TotalEmployees          int           `json:"total_employees"`
	EmployeeStatusBreakdown []StatusCount `json:"employee_status_breakdown"`
}
