package pgsql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/workforceapp/wfm_backend/internal/apperrors"
	"github.com/workforceapp/wfm_backend/internal/core/domain"
)

func newEmployeeRepoWithMock(t *testing.T) (*PgxEmployeeRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: mock}}, mock
}

func testEmployee() domain.Employee {
	now := time.Now()
	return domain.Employee{
		EmployeeID:   "emp-1",
		CompanyID:    "company-1",
		DepartmentID: "department-1",
		UserID:       "user-1",
		Name:         "Jane Doe",
		Email:        "jane.work@acme.test",
		Status:       domain.StatusApplicationReceived,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "creator-1",
			LastUpdatedAt: now,
			LastUpdatedBy: "creator-1",
		},
	}
}

func TestCreateEmployeeWithUser_CommitsAllSteps(t *testing.T) {
	repo, mock := newEmployeeRepoWithMock(t)
	employee := testEmployee()
	user := domain.User{UserID: "user-1", Email: "jane@acme.test", Role: domain.RoleEmployee}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO employees").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("UPDATE companies SET").
		WithArgs(employee.CompanyID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE departments SET").
		WithArgs(employee.DepartmentID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	if err := repo.CreateEmployeeWithUser(context.Background(), employee, user); err != nil {
		t.Fatalf("CreateEmployeeWithUser returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateEmployeeWithUser_DuplicateEmailRollsBack(t *testing.T) {
	repo, mock := newEmployeeRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := repo.CreateEmployeeWithUser(context.Background(), testEmployee(), domain.User{UserID: "user-1"})
	if !errors.Is(err, apperrors.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateEmployeeWithUser_RefreshesPreviousDepartment(t *testing.T) {
	repo, mock := newEmployeeRepoWithMock(t)
	employee := testEmployee()
	previousDepartmentID := "department-0"

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE employees SET").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE companies SET").
		WithArgs(employee.CompanyID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE departments SET").
		WithArgs(employee.DepartmentID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE departments SET").
		WithArgs(previousDepartmentID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	if err := repo.UpdateEmployeeWithUser(context.Background(), employee, nil, employee.CompanyID, previousDepartmentID); err != nil {
		t.Fatalf("UpdateEmployeeWithUser returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateEmployeeWithUser_CompanyMoveRefreshesBothCompanies(t *testing.T) {
	repo, mock := newEmployeeRepoWithMock(t)
	employee := testEmployee()
	previousCompanyID := "company-0"
	previousDepartmentID := "department-0"

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE employees SET").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE companies SET").
		WithArgs(employee.CompanyID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE departments SET").
		WithArgs(employee.DepartmentID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE companies SET").
		WithArgs(previousCompanyID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE departments SET").
		WithArgs(previousDepartmentID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	if err := repo.UpdateEmployeeWithUser(context.Background(), employee, nil, previousCompanyID, previousDepartmentID); err != nil {
		t.Fatalf("UpdateEmployeeWithUser returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateEmployeeWithUser_UpdatesPairedUser(t *testing.T) {
	repo, mock := newEmployeeRepoWithMock(t)
	employee := testEmployee()
	user := domain.User{UserID: "user-1", Email: "renamed@acme.test", Role: domain.RoleManager, IsStaff: true}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE employees SET").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE users SET").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE companies SET").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE departments SET").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	if err := repo.UpdateEmployeeWithUser(context.Background(), employee, &user, employee.CompanyID, employee.DepartmentID); err != nil {
		t.Fatalf("UpdateEmployeeWithUser returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateEmployeeWithUser_MissingRowIsNotFound(t *testing.T) {
	repo, mock := newEmployeeRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE employees SET").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err := repo.UpdateEmployeeWithUser(context.Background(), testEmployee(), nil, "", "")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteEmployeeWithUser_CascadesThroughUser(t *testing.T) {
	repo, mock := newEmployeeRepoWithMock(t)
	employee := testEmployee()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM users").
		WithArgs(employee.UserID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("UPDATE companies SET").
		WithArgs(employee.CompanyID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE departments SET").
		WithArgs(employee.DepartmentID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	if err := repo.DeleteEmployeeWithUser(context.Background(), employee); err != nil {
		t.Fatalf("DeleteEmployeeWithUser returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindEmployeeByID_NotFound(t *testing.T) {
	repo, mock := newEmployeeRepoWithMock(t)

	mock.ExpectQuery("SELECT (.+) FROM employees").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindEmployeeByID(context.Background(), "missing")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
