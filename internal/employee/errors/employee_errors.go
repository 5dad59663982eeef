package employeeerrors

import (
	"fmt"
	"net/http"

	"github.com/Haseebinvader/SalaryManagement/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	// Branch resolution failures are validation errors (400), not 404:
	// the missing resource is a field of the request, not the target.
	ErrBranchNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Branch not found",
		http.StatusBadRequest,
	)
	ErrInvalidBranchID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid branchId",
		http.StatusBadRequest,
	)

	ErrEmployeeIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Employee ID must be a non-empty string",
		http.StatusBadRequest,
	)
	ErrNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Name must be a non-empty string",
		http.StatusBadRequest,
	)
	ErrSalaryMonthRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Salary Month must be a non-empty string",
		http.StatusBadRequest,
	)

	// Raised when the unique index fires without the pre-check having
	// caught it (concurrent create of the same pair).
	ErrDuplicateEntry = apperror.New(
		apperror.CodeConflict,
		"Duplicate entry",
		http.StatusConflict,
	)
)

// DuplicateSalaryMonth names the conflicting pair so the admin can see
// which record already holds the month.
func DuplicateSalaryMonth(employeeID, salaryMonth string) *apperror.AppError {
	return apperror.New(
		apperror.CodeConflict,
		fmt.Sprintf(
			"An employee with ID %q already exists for the salary month %q. Please use a different month or update the existing record.",
			employeeID, salaryMonth,
		),
		http.StatusConflict,
	)
}
