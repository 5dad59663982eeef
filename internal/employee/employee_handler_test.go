package employee_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Haseebinvader/SalaryManagement/internal/employee"
	employeeerrors "github.com/Haseebinvader/SalaryManagement/internal/employee/errors"
	"github.com/Haseebinvader/SalaryManagement/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeService struct {
	CreateFn  func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetAllFn  func(ctx context.Context, f employee.ListFilter) ([]employee.EmployeeResponse, *response.PaginationMeta, error)
	GetByIDFn func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	UpdateFn  func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context, filter employee.ListFilter) ([]employee.EmployeeResponse, *response.PaginationMeta, error) {
	return f.GetAllFn(ctx, filter)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "E1", req.EmployeeID)
				assert.Equal(t, int64(1000), req.BasicPay)
				return employee.EmployeeResponse{
					EmployeeID: req.EmployeeID,
					GrossPay:   1000,
					NetPay:     900,
				}, nil
			},
		}
		h := employee.NewHandler(svc)

		body := `{
			"employeeId": "E1",
			"name": "Amina",
			"branchId": "3f1c8f2e-9f1a-4c5e-8d2b-1a2b3c4d5e6f",
			"salaryMonth": "January 2025",
			"basicPay": 1000,
			"houseRentDeduction": 100
		}`

		c, w := newTestContext(t)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"grossPay":1000`)
		assert.Contains(t, w.Body.String(), `"netPay":900`)
	})

	t.Run("negative pay component is a 400", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		h := employee.NewHandler(svc)

		body := `{
			"employeeId": "E1",
			"name": "Amina",
			"branchId": "3f1c8f2e-9f1a-4c5e-8d2b-1a2b3c4d5e6f",
			"salaryMonth": "January 2025",
			"basicPay": -5
		}`

		c, w := newTestContext(t)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})

	t.Run("duplicate salary month is a 409", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.DuplicateSalaryMonth("E1", "January 2025")
			},
		}
		h := employee.NewHandler(svc)

		body := `{
			"employeeId": "E1",
			"name": "Amina",
			"branchId": "3f1c8f2e-9f1a-4c5e-8d2b-1a2b3c4d5e6f",
			"salaryMonth": "January 2025"
		}`

		c, w := newTestContext(t)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "E1")
		assert.Contains(t, w.Body.String(), "January 2025")
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	t.Run("query params flow into the filter", func(t *testing.T) {
		var got employee.ListFilter
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context, f employee.ListFilter) ([]employee.EmployeeResponse, *response.PaginationMeta, error) {
				got = f
				meta := response.NewPaginationMeta(1, 2, 5)
				return []employee.EmployeeResponse{{EmployeeID: "E1"}}, &meta, nil
			},
		}
		h := employee.NewHandler(svc)

		c, w := newTestContext(t)
		c.Request = httptest.NewRequest(http.MethodGet,
			"/api/v1/employees?search=ami&searchId=E1&branchId=b1&month=January+2025&page=2&limit=5", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ami", got.Search)
		assert.Equal(t, "E1", got.SearchID)
		assert.Equal(t, "b1", got.BranchID)
		assert.Equal(t, "January 2025", got.Month)
		assert.Equal(t, 2, got.Page)
		assert.Equal(t, 5, got.Limit)
		assert.Contains(t, w.Body.String(), `"meta"`)
	})

	t.Run("no pagination params leaves meta out", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context, f employee.ListFilter) ([]employee.EmployeeResponse, *response.PaginationMeta, error) {
				return []employee.EmployeeResponse{}, nil, nil
			},
		}
		h := employee.NewHandler(svc)

		c, w := newTestContext(t)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), `"meta"`)
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	t.Run("partial body reaches the service as pointers", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "abc", id)
				require.NotNil(t, req.LoanRemaining)
				assert.Equal(t, int64(500), *req.LoanRemaining)
				require.NotNil(t, req.RepaymentAmount)
				assert.Equal(t, int64(200), *req.RepaymentAmount)
				assert.Nil(t, req.Name)
				return employee.EmployeeResponse{LoanRemaining: 300}, nil
			},
		}
		h := employee.NewHandler(svc)

		c, w := newTestContext(t)
		req := httptest.NewRequest(http.MethodPut, "/api/v1/employees/abc",
			strings.NewReader(`{"loanRemaining":500,"repaymentAmount":200}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"loanRemaining":300`)
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		h := employee.NewHandler(svc)

		c, w := newTestContext(t)
		req := httptest.NewRequest(http.MethodPut, "/api/v1/employees/missing", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: "missing"}}

		h.Update(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	svc := &fakeEmployeeService{
		DeleteFn: func(ctx context.Context, id string) error {
			assert.Equal(t, "abc", id)
			return nil
		},
	}
	h := employee.NewHandler(svc)

	c, w := newTestContext(t)
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/employees/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Employee deleted")
}

func TestEmployeeHandler_Payslip(t *testing.T) {
	t.Run("renders a pdf attachment", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{
					EmployeeID:  "E1",
					Name:        "Amina",
					SalaryMonth: "January 2025",
					GrossPay:    1000,
					NetPay:      900,
				}, nil
			},
		}
		h := employee.NewHandler(svc)

		c, w := newTestContext(t)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees/abc/payslip", nil)
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		h.Payslip(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "payslip-E1.pdf")
		assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-"))
	})

	t.Run("unknown employee is a 404", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		h := employee.NewHandler(svc)

		c, w := newTestContext(t)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees/missing/payslip", nil)
		c.Params = gin.Params{{Key: "id", Value: "missing"}}

		h.Payslip(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
