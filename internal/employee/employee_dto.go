package employee

type CreateEmployeeRequest struct {
	EmployeeID  string `json:"employeeId" binding:"required"`
	Name        string `json:"name" binding:"required"`
	BranchID    string `json:"branchId" binding:"required,uuid"`
	SalaryMonth string `json:"salaryMonth" binding:"required"`

	BasicPay           int64 `json:"basicPay" binding:"gte=0"`
	ProductRebate      int64 `json:"productRebate" binding:"gte=0"`
	PointsRebate       int64 `json:"pointsRebate" binding:"gte=0"`
	PerformanceRebate  int64 `json:"performanceRebate" binding:"gte=0"`
	HouseRentDeduction int64 `json:"houseRentDeduction" binding:"gte=0"`
	FoodDeduction      int64 `json:"foodDeduction" binding:"gte=0"`
	LoanDeduction      int64 `json:"loanDeduction" binding:"gte=0"`
	LoanRemaining      int64 `json:"loanRemaining" binding:"gte=0"`
}

// UpdateEmployeeRequest is a partial update: only non-nil fields are
// validated and applied. RepaymentAmount is a delta; the server
// derives the new loan balance itself.
type UpdateEmployeeRequest struct {
	EmployeeID  *string `json:"employeeId"`
	Name        *string `json:"name"`
	BranchID    *string `json:"branchId" binding:"omitempty,uuid"`
	SalaryMonth *string `json:"salaryMonth"`

	BasicPay           *int64 `json:"basicPay" binding:"omitempty,gte=0"`
	ProductRebate      *int64 `json:"productRebate" binding:"omitempty,gte=0"`
	PointsRebate       *int64 `json:"pointsRebate" binding:"omitempty,gte=0"`
	PerformanceRebate  *int64 `json:"performanceRebate" binding:"omitempty,gte=0"`
	HouseRentDeduction *int64 `json:"houseRentDeduction" binding:"omitempty,gte=0"`
	FoodDeduction      *int64 `json:"foodDeduction" binding:"omitempty,gte=0"`
	LoanDeduction      *int64 `json:"loanDeduction" binding:"omitempty,gte=0"`
	LoanRemaining      *int64 `json:"loanRemaining" binding:"omitempty,gte=0"`

	RepaymentAmount *int64 `json:"repaymentAmount" binding:"omitempty,gte=0"`
}

type EmployeeBranchResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID          string                  `json:"id"`
	EmployeeID  string                  `json:"employeeId"`
	Name        string                  `json:"name"`
	BranchID    string                  `json:"branchId"`
	Branch      *EmployeeBranchResponse `json:"branch,omitempty"`
	SalaryMonth string                  `json:"salaryMonth"`

	BasicPay           int64 `json:"basicPay"`
	ProductRebate      int64 `json:"productRebate"`
	PointsRebate       int64 `json:"pointsRebate"`
	PerformanceRebate  int64 `json:"performanceRebate"`
	HouseRentDeduction int64 `json:"houseRentDeduction"`
	FoodDeduction      int64 `json:"foodDeduction"`
	LoanDeduction      int64 `json:"loanDeduction"`
	LoanRemaining      int64 `json:"loanRemaining"`

	GrossPay int64 `json:"grossPay"`
	NetPay   int64 `json:"netPay"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ListFilter carries the optional query filters of GET /employees.
// Month is a "YYYY-MM" bucket compared against parsed salaryMonth
// labels. Page/Limit of zero means unpaginated.
type ListFilter struct {
	Search   string
	SearchID string
	BranchID string
	Month    string
	Page     int
	Limit    int
}
