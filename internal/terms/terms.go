// Package terms holds the static terms-and-conditions text shown on
// salary slips and served to the dashboard.
package terms

import (
	"net/http"
	"strconv"

	"github.com/Haseebinvader/SalaryManagement/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Term struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

var All = []Term{
	{
		Title: "Resignation Policy",
		Body:  "If an employee resigns immediately or without proper notice, one month's salary will be deducted.",
	},
	{
		Title: "Loan Repayment",
		Body:  "Employees must repay loans as per the agreed schedule. Failure to do so may result in deductions from salary.",
	},
	{
		Title: "Salary Components",
		Body:  "Salary includes basic pay, product rebate, points rebate, and performance rebate. Deductions include house rent, food expenses, and loan repayments.",
	},
	{
		Title: "Branch Assignment",
		Body:  "Employees are assigned to branches and their performance is evaluated accordingly.",
	},
}

// Lines renders the terms as numbered plain-text lines for the payslip.
func Lines() []string {
	lines := make([]string, 0, len(All))
	for i, t := range All {
		lines = append(lines, strconv.Itoa(i+1)+". "+t.Title+": "+t.Body)
	}
	return lines
}

func GetTerms(c *gin.Context) {
	response.Success(c, http.StatusOK, All, nil)
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/terms", GetTerms)
}
