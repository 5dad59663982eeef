package employee

import (
	"time"

	"github.com/google/uuid"
)

// Employee is one payroll computation for one (employeeId, salaryMonth)
// pair. The composite unique index is the authoritative duplicate guard;
// the service-level pre-check only exists for the friendlier message.
// Amounts are stored in the smallest currency unit.
type Employee struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID string    `gorm:"size:64;not null;uniqueIndex:uq_employee_salary_month"`
	Name       string    `gorm:"size:255;not null;index"`

	// No FK constraint: deleting a branch leaves dangling references
	// and reads render an unknown branch.
	BranchID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Branch   *EmployeeBranch `gorm:"foreignKey:BranchID;references:ID"`

	SalaryMonth string `gorm:"size:64;not null;uniqueIndex:uq_employee_salary_month"`

	BasicPay           int64 `gorm:"type:bigint;not null;default:0"`
	ProductRebate      int64 `gorm:"type:bigint;not null;default:0"`
	PointsRebate       int64 `gorm:"type:bigint;not null;default:0"`
	PerformanceRebate  int64 `gorm:"type:bigint;not null;default:0"`
	HouseRentDeduction int64 `gorm:"type:bigint;not null;default:0"`
	FoodDeduction      int64 `gorm:"type:bigint;not null;default:0"`
	LoanDeduction      int64 `gorm:"type:bigint;not null;default:0"`
	LoanRemaining      int64 `gorm:"type:bigint;not null;default:0"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// EmployeeBranch is a read-side projection of the branches table used
// for eager loading without importing the branch package.
type EmployeeBranch struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (EmployeeBranch) TableName() string {
	return "branches"
}
