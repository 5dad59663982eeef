package payroll

// Amounts are stored in the smallest currency unit to avoid floating
// point error; the calculator is pure and holds no state.

type Breakdown struct {
	BasicPay           int64
	ProductRebate      int64
	PointsRebate       int64
	PerformanceRebate  int64
	HouseRentDeduction int64
	FoodDeduction      int64
	LoanDeduction      int64
}

// GrossPay is the sum of all earning components.
func GrossPay(b Breakdown) int64 {
	return b.BasicPay + b.ProductRebate + b.PointsRebate + b.PerformanceRebate
}

// NetPay is gross pay minus all deduction components.
func NetPay(b Breakdown) int64 {
	return GrossPay(b) - b.HouseRentDeduction - b.FoodDeduction - b.LoanDeduction
}

// ApplyRepayment reduces a loan balance by a repayment amount, floored
// at zero. Non-positive amounts leave the balance unchanged.
func ApplyRepayment(balance, amount int64) int64 {
	if amount <= 0 {
		return balance
	}
	remaining := balance - amount
	if remaining < 0 {
		return 0
	}
	return remaining
}
