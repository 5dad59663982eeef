package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/Haseebinvader/SalaryManagement/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates storage failures into the error
// taxonomy. A 23505 on the composite index means a concurrent writer
// won the (employeeId, salaryMonth) race after our pre-check passed;
// it surfaces as the same conflict error the pre-check raises.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employee_salary_month" {
			return employeeerrors.ErrDuplicateEntry
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_salary_month") {
		return employeeerrors.ErrDuplicateEntry
	}

	return err
}
