package branch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Haseebinvader/SalaryManagement/internal/branch"
	brancherrors "github.com/Haseebinvader/SalaryManagement/internal/branch/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeBranchService struct {
	CreateFn func(ctx context.Context, req branch.CreateBranchRequest) (branch.BranchResponse, error)
	GetAllFn func(ctx context.Context) ([]branch.BranchResponse, error)
	RenameFn func(ctx context.Context, id string, req branch.UpdateBranchRequest) (branch.BranchResponse, error)
	DeleteFn func(ctx context.Context, id string) error
}

func (f *fakeBranchService) Create(ctx context.Context, req branch.CreateBranchRequest) (branch.BranchResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeBranchService) GetAll(ctx context.Context) ([]branch.BranchResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeBranchService) Rename(ctx context.Context, id string, req branch.UpdateBranchRequest) (branch.BranchResponse, error) {
	return f.RenameFn(ctx, id, req)
}
func (f *fakeBranchService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestBranchHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeBranchService{
			CreateFn: func(ctx context.Context, req branch.CreateBranchRequest) (branch.BranchResponse, error) {
				assert.Equal(t, "Colombo", req.Name)
				return branch.BranchResponse{ID: uuid.New().String(), Name: req.Name}, nil
			},
		}
		h := branch.NewHandler(svc)

		c, w := newTestContext(t)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/branches", strings.NewReader(`{"name":"Colombo"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Colombo")
	})

	t.Run("missing name is a 400", func(t *testing.T) {
		svc := &fakeBranchService{}
		h := branch.NewHandler(svc)

		c, w := newTestContext(t)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/branches", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})
}

func TestBranchHandler_Update(t *testing.T) {
	t.Run("duplicate name is a 409", func(t *testing.T) {
		svc := &fakeBranchService{
			RenameFn: func(ctx context.Context, id string, req branch.UpdateBranchRequest) (branch.BranchResponse, error) {
				return branch.BranchResponse{}, brancherrors.ErrBranchNameAlreadyExists
			},
		}
		h := branch.NewHandler(svc)

		c, w := newTestContext(t)
		req := httptest.NewRequest(http.MethodPut, "/api/v1/branches/b1", strings.NewReader(`{"name":"Kandy"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: "b1"}}

		h.Update(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "CONFLICT")
	})
}

func TestBranchHandler_Delete(t *testing.T) {
	t.Run("unknown id is a 404", func(t *testing.T) {
		svc := &fakeBranchService{
			DeleteFn: func(ctx context.Context, id string) error {
				return brancherrors.ErrBranchNotFound
			},
		}
		h := branch.NewHandler(svc)

		c, w := newTestContext(t)
		c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/branches/missing", nil)
		c.Params = gin.Params{{Key: "id", Value: "missing"}}

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})

	t.Run("success returns a message", func(t *testing.T) {
		svc := &fakeBranchService{
			DeleteFn: func(ctx context.Context, id string) error { return nil },
		}
		h := branch.NewHandler(svc)

		c, w := newTestContext(t)
		c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/branches/b1", nil)
		c.Params = gin.Params{{Key: "id", Value: "b1"}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Branch deleted")
	})
}

func TestBranchHandler_GetAll(t *testing.T) {
	svc := &fakeBranchService{
		GetAllFn: func(ctx context.Context) ([]branch.BranchResponse, error) {
			return []branch.BranchResponse{{ID: "b1", Name: "Colombo"}}, nil
		},
	}
	h := branch.NewHandler(svc)

	c, w := newTestContext(t)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/branches", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Colombo")
}
