package employee

import (
	"fmt"
	"net/http"

	"github.com/Haseebinvader/SalaryManagement/internal/terms"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Payslip renders one employee record as a printable PDF salary slip,
// including the static terms and conditions.
func (h *Handler) Payslip(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	pdf, err := buildSimplePayslipPDF(payslipLines(resp))
	if err != nil {
		h.logger.Error("payslip render failed", zap.String("id", id), zap.Error(err))
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=payslip-%s.pdf", resp.EmployeeID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func payslipLines(resp EmployeeResponse) []string {
	branchName := "Unknown branch"
	if resp.Branch != nil {
		branchName = resp.Branch.Name
	}

	lines := []string{
		"Salary Slip",
		"",
		fmt.Sprintf("Employee ID: %s", resp.EmployeeID),
		fmt.Sprintf("Name: %s", resp.Name),
		fmt.Sprintf("Branch: %s", branchName),
		fmt.Sprintf("Salary Month: %s", resp.SalaryMonth),
		"",
		fmt.Sprintf("Basic Pay: %d", resp.BasicPay),
		fmt.Sprintf("Product Rebate: %d", resp.ProductRebate),
		fmt.Sprintf("Points Rebate: %d", resp.PointsRebate),
		fmt.Sprintf("Performance Rebate: %d", resp.PerformanceRebate),
		fmt.Sprintf("House Rent Deduction: %d", resp.HouseRentDeduction),
		fmt.Sprintf("Food Deduction: %d", resp.FoodDeduction),
		fmt.Sprintf("Loan Deduction: %d", resp.LoanDeduction),
		fmt.Sprintf("Loan Remaining: %d", resp.LoanRemaining),
		"",
		fmt.Sprintf("Gross Pay: %d", resp.GrossPay),
		fmt.Sprintf("Net Pay: %d", resp.NetPay),
		"",
		"Terms and Conditions",
	}

	return append(lines, terms.Lines()...)
}
