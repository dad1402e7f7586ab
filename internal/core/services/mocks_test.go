package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/workforceapp/wfm_backend/internal/core/domain"
)

// stubTxManager satisfies the TransactionManager part of the repository
// facades; the services under test never drive transactions directly.
type stubTxManager struct{}

func (stubTxManager) Begin(ctx context.Context) (pgx.Tx, error)     { return nil, nil }
func (stubTxManager) Commit(ctx context.Context, tx pgx.Tx) error   { return nil }
func (stubTxManager) Rollback(ctx context.Context, tx pgx.Tx) error { return nil }

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
	SaveUserFn           func(ctx context.Context, user domain.User) error
	FindUserByIDFn       func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	FindUsersFn          func(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateUserFn         func(ctx context.Context, user domain.User) error
	DeleteUserFn         func(ctx context.Context, userID string) error
	UpdateRefreshTokenFn func(ctx context.Context, userID string, refreshTokenHash string, expiresAt time.Time) error
	ClearRefreshTokenFn  func(ctx context.Context, userID string) error
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if m.FindUsersFn != nil {
		return m.FindUsersFn(ctx, limit, offset)
	}
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiresAt time.Time) error {
	if m.UpdateRefreshTokenFn != nil {
		return m.UpdateRefreshTokenFn(ctx, userID, refreshTokenHash, expiresAt)
	}
	args := m.Called(ctx, userID, refreshTokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	if m.ClearRefreshTokenFn != nil {
		return m.ClearRefreshTokenFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mock.Mock
	stubTxManager
	SaveCompanyFn     func(ctx context.Context, company domain.Company) error
	FindCompanyByIDFn func(ctx context.Context, companyID string) (*domain.Company, error)
	FindCompaniesFn   func(ctx context.Context, limit, offset int) ([]domain.Company, error)
	UpdateCompanyFn   func(ctx context.Context, company domain.Company) error
	DeleteCompanyFn   func(ctx context.Context, companyID string) error
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	if m.SaveCompanyFn != nil {
		return m.SaveCompanyFn(ctx, company)
	}
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	if m.FindCompanyByIDFn != nil {
		return m.FindCompanyByIDFn(ctx, companyID)
	}
	args := m.Called(ctx, companyID)
	var company *domain.Company
	if args.Get(0) != nil {
		company = args.Get(0).(*domain.Company)
	}
	return company, args.Error(1)
}

func (m *MockCompanyRepository) FindCompanies(ctx context.Context, limit, offset int) ([]domain.Company, error) {
	if m.FindCompaniesFn != nil {
		return m.FindCompaniesFn(ctx, limit, offset)
	}
	args := m.Called(ctx, limit, offset)
	var companies []domain.Company
	if args.Get(0) != nil {
		companies = args.Get(0).([]domain.Company)
	}
	return companies, args.Error(1)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	if m.UpdateCompanyFn != nil {
		return m.UpdateCompanyFn(ctx, company)
	}
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) DeleteCompany(ctx context.Context, companyID string) error {
	if m.DeleteCompanyFn != nil {
		return m.DeleteCompanyFn(ctx, companyID)
	}
	args := m.Called(ctx, companyID)
	return args.Error(0)
}

// --- Mock DepartmentRepository ---
type MockDepartmentRepository struct {
	mock.Mock
	stubTxManager
	SaveDepartmentFn             func(ctx context.Context, department domain.Department) error
	FindDepartmentByIDFn         func(ctx context.Context, departmentID string) (*domain.Department, error)
	FindDepartmentsFn            func(ctx context.Context, limit, offset int) ([]domain.Department, error)
	FindDepartmentsByCompanyIDFn func(ctx context.Context, companyID string) ([]domain.Department, error)
	UpdateDepartmentFn           func(ctx context.Context, department domain.Department, previousCompanyID string) error
	DeleteDepartmentFn           func(ctx context.Context, departmentID string, companyID string) error
}

func (m *MockDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	if m.SaveDepartmentFn != nil {
		return m.SaveDepartmentFn(ctx, department)
	}
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *MockDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	if m.FindDepartmentByIDFn != nil {
		return m.FindDepartmentByIDFn(ctx, departmentID)
	}
	args := m.Called(ctx, departmentID)
	var department *domain.Department
	if args.Get(0) != nil {
		department = args.Get(0).(*domain.Department)
	}
	return department, args.Error(1)
}

func (m *MockDepartmentRepository) FindDepartments(ctx context.Context, limit, offset int) ([]domain.Department, error) {
	if m.FindDepartmentsFn != nil {
		return m.FindDepartmentsFn(ctx, limit, offset)
	}
	args := m.Called(ctx, limit, offset)
	var departments []domain.Department
	if args.Get(0) != nil {
		departments = args.Get(0).([]domain.Department)
	}
	return departments, args.Error(1)
}

func (m *MockDepartmentRepository) FindDepartmentsByCompanyID(ctx context.Context, companyID string) ([]domain.Department, error) {
	if m.FindDepartmentsByCompanyIDFn != nil {
		return m.FindDepartmentsByCompanyIDFn(ctx, companyID)
	}
	args := m.Called(ctx, companyID)
	var departments []domain.Department
	if args.Get(0) != nil {
		departments = args.Get(0).([]domain.Department)
	}
	return departments, args.Error(1)
}

func (m *MockDepartmentRepository) UpdateDepartment(ctx context.Context, department domain.Department, previousCompanyID string) error {
	if m.UpdateDepartmentFn != nil {
		return m.UpdateDepartmentFn(ctx, department, previousCompanyID)
	}
	args := m.Called(ctx, department, previousCompanyID)
	return args.Error(0)
}

func (m *MockDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID string, companyID string) error {
	if m.DeleteDepartmentFn != nil {
		return m.DeleteDepartmentFn(ctx, departmentID, companyID)
	}
	args := m.Called(ctx, departmentID, companyID)
	return args.Error(0)
}

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
	stubTxManager
	FindEmployeeByIDFn            func(ctx context.Context, employeeID string) (*domain.Employee, error)
	FindEmployeeByUserIDFn        func(ctx context.Context, userID string) (*domain.Employee, error)
	FindEmployeesFn               func(ctx context.Context, limit, offset int) ([]domain.Employee, error)
	FindEmployeesByDepartmentIDFn func(ctx context.Context, departmentID string) ([]domain.Employee, error)
	CreateEmployeeWithUserFn      func(ctx context.Context, employee domain.Employee, user domain.User) error
	UpdateEmployeeWithUserFn      func(ctx context.Context, employee domain.Employee, user *domain.User, previousCompanyID string, previousDepartmentID string) error
	DeleteEmployeeWithUserFn      func(ctx context.Context, employee domain.Employee) error
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	if m.FindEmployeeByIDFn != nil {
		return m.FindEmployeeByIDFn(ctx, employeeID)
	}
	args := m.Called(ctx, employeeID)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	if m.FindEmployeeByUserIDFn != nil {
		return m.FindEmployeeByUserIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployees(ctx context.Context, limit, offset int) ([]domain.Employee, error) {
	if m.FindEmployeesFn != nil {
		return m.FindEmployeesFn(ctx, limit, offset)
	}
	args := m.Called(ctx, limit, offset)
	var employees []domain.Employee
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.Employee)
	}
	return employees, args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeesByDepartmentID(ctx context.Context, departmentID string) ([]domain.Employee, error) {
	if m.FindEmployeesByDepartmentIDFn != nil {
		return m.FindEmployeesByDepartmentIDFn(ctx, departmentID)
	}
	args := m.Called(ctx, departmentID)
	var employees []domain.Employee
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.Employee)
	}
	return employees, args.Error(1)
}

func (m *MockEmployeeRepository) CreateEmployeeWithUser(ctx context.Context, employee domain.Employee, user domain.User) error {
	if m.CreateEmployeeWithUserFn != nil {
		return m.CreateEmployeeWithUserFn(ctx, employee, user)
	}
	args := m.Called(ctx, employee, user)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployeeWithUser(ctx context.Context, employee domain.Employee, user *domain.User, previousCompanyID string, previousDepartmentID string) error {
	if m.UpdateEmployeeWithUserFn != nil {
		return m.UpdateEmployeeWithUserFn(ctx, employee, user, previousCompanyID, previousDepartmentID)
	}
	args := m.Called(ctx, employee, user, previousCompanyID, previousDepartmentID)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployeeWithUser(ctx context.Context, employee domain.Employee) error {
	if m.DeleteEmployeeWithUserFn != nil {
		return m.DeleteEmployeeWithUserFn(ctx, employee)
	}
	args := m.Called(ctx, employee)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
	GetDashboardSummaryFn func(ctx context.Context) (*domain.DashboardSummary, error)
}

func (m *MockReportingRepository) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	if m.GetDashboardSummaryFn != nil {
		return m.GetDashboardSummaryFn(ctx)
	}
	args := m.Called(ctx)
	var summary *domain.DashboardSummary
	if args.Get(0) != nil {
		summary = args.Get(0).(*domain.DashboardSummary)
	}
	return summary, args.Error(1)
}
