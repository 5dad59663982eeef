package employee

import (
	"context"
	"database/sql"
	"strings"
	"time"

	employeeerrors "github.com/Haseebinvader/SalaryManagement/internal/employee/errors"
	"github.com/Haseebinvader/SalaryManagement/internal/payroll"
	"github.com/Haseebinvader/SalaryManagement/internal/shared/contextutil"
	"github.com/Haseebinvader/SalaryManagement/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, f ListFilter) ([]EmployeeResponse, *response.PaginationMeta, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("salary_month", req.SalaryMonth),
	)

	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID == "" {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeIDRequired
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return EmployeeResponse{}, employeeerrors.ErrNameRequired
	}
	salaryMonth := strings.TrimSpace(req.SalaryMonth)
	if salaryMonth == "" {
		return EmployeeResponse{}, employeeerrors.ErrSalaryMonthRequired
	}
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidBranchID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.BranchExists(ctx, branchID.String())
	if err != nil {
		s.logger.Error("create employee branch lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if !exists {
		s.logger.Warn("create employee branch not found", zap.String("branch_id", branchID.String()))
		return EmployeeResponse{}, employeeerrors.ErrBranchNotFound
	}

	// Fast-path duplicate check; the unique index remains the
	// authoritative guard for the concurrent case.
	dup, err := qtx.ExistsForSalaryMonth(ctx, employeeID, salaryMonth, "")
	if err != nil {
		s.logger.Error("create employee duplicate check failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if dup {
		s.logger.Warn("create employee duplicate salary month",
			zap.String("employee_id", employeeID),
			zap.String("salary_month", salaryMonth),
		)
		return EmployeeResponse{}, employeeerrors.DuplicateSalaryMonth(employeeID, salaryMonth)
	}

	empl := &Employee{
		ID:                 uuid.New(),
		EmployeeID:         employeeID,
		Name:               name,
		BranchID:           branchID,
		SalaryMonth:        salaryMonth,
		BasicPay:           req.BasicPay,
		ProductRebate:      req.ProductRebate,
		PointsRebate:       req.PointsRebate,
		PerformanceRebate:  req.PerformanceRebate,
		HouseRentDeduction: req.HouseRentDeduction,
		FoodDeduction:      req.FoodDeduction,
		LoanDeduction:      req.LoanDeduction,
		LoanRemaining:      req.LoanRemaining,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	created, err := qtx.FindByID(ctx, empl.ID.String())
	if err != nil {
		s.logger.Error("create employee fetch created failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("id", empl.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("salary_month", salaryMonth),
	)

	return mapToResponse(*created), nil
}

func (s *service) GetAll(
	ctx context.Context,
	f ListFilter,
) ([]EmployeeResponse, *response.PaginationMeta, error) {
	empls, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, nil, err
	}

	if month := strings.TrimSpace(f.Month); month != "" {
		empls = filterByMonth(empls, month)
	}

	resp := mapToListResponse(empls)

	if f.Page <= 0 && f.Limit <= 0 {
		return resp, nil, nil
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = 10
	}

	total := int64(len(resp))
	start := (page - 1) * limit
	end := start + limit
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, limit)
	return resp[start:end], &meta, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.EmployeeID != nil {
		trimmed := strings.TrimSpace(*req.EmployeeID)
		if trimmed == "" {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeIDRequired
		}
		empl.EmployeeID = trimmed
	}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return EmployeeResponse{}, employeeerrors.ErrNameRequired
		}
		empl.Name = trimmed
	}
	if req.SalaryMonth != nil {
		trimmed := strings.TrimSpace(*req.SalaryMonth)
		if trimmed == "" {
			return EmployeeResponse{}, employeeerrors.ErrSalaryMonthRequired
		}
		empl.SalaryMonth = trimmed
	}
	if req.BranchID != nil {
		branchID, err := uuid.Parse(*req.BranchID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidBranchID
		}
		exists, err := qtx.BranchExists(ctx, branchID.String())
		if err != nil {
			s.logger.Error("update employee branch lookup failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		if !exists {
			return EmployeeResponse{}, employeeerrors.ErrBranchNotFound
		}
		empl.BranchID = branchID
		empl.Branch = nil
	}

	// Re-check uniqueness with the effective pair, excluding this
	// record so an unrelated-field edit never self-conflicts.
	if req.EmployeeID != nil || req.SalaryMonth != nil {
		dup, err := qtx.ExistsForSalaryMonth(ctx, empl.EmployeeID, empl.SalaryMonth, id)
		if err != nil {
			s.logger.Error("update employee duplicate check failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		if dup {
			s.logger.Warn("update employee duplicate salary month",
				zap.String("employee_id", empl.EmployeeID),
				zap.String("salary_month", empl.SalaryMonth),
			)
			return EmployeeResponse{}, employeeerrors.DuplicateSalaryMonth(empl.EmployeeID, empl.SalaryMonth)
		}
	}

	if req.BasicPay != nil {
		empl.BasicPay = *req.BasicPay
	}
	if req.ProductRebate != nil {
		empl.ProductRebate = *req.ProductRebate
	}
	if req.PointsRebate != nil {
		empl.PointsRebate = *req.PointsRebate
	}
	if req.PerformanceRebate != nil {
		empl.PerformanceRebate = *req.PerformanceRebate
	}
	if req.HouseRentDeduction != nil {
		empl.HouseRentDeduction = *req.HouseRentDeduction
	}
	if req.FoodDeduction != nil {
		empl.FoodDeduction = *req.FoodDeduction
	}
	if req.LoanDeduction != nil {
		empl.LoanDeduction = *req.LoanDeduction
	}
	if req.LoanRemaining != nil {
		empl.LoanRemaining = *req.LoanRemaining
	}

	// The repayment subtraction happens here, never in the client: the
	// balance on record (including a balance edit in this same request)
	// is reduced by the delta and floored at zero.
	if req.RepaymentAmount != nil && *req.RepaymentAmount > 0 {
		empl.LoanRemaining = payroll.ApplyRepayment(empl.LoanRemaining, *req.RepaymentAmount)
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	updated, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch updated failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.String("id", id),
	)

	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete employee success", zap.String("id", id))
	return nil
}

// filterByMonth keeps records whose parsed salaryMonth matches the
// requested YYYY-MM bucket; unparseable labels fall back to a
// case-insensitive substring match against the raw filter value.
func filterByMonth(empls []Employee, month string) []Employee {
	want, wantOK := payroll.ParseSalaryMonth(month)
	filtered := make([]Employee, 0, len(empls))
	for _, e := range empls {
		key, ok := payroll.ParseSalaryMonth(e.SalaryMonth)
		if ok && wantOK {
			if key == want {
				filtered = append(filtered, e)
			}
			continue
		}
		if strings.Contains(strings.ToLower(e.SalaryMonth), strings.ToLower(month)) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                 empl.ID.String(),
		EmployeeID:         empl.EmployeeID,
		Name:               empl.Name,
		BranchID:           empl.BranchID.String(),
		SalaryMonth:        empl.SalaryMonth,
		BasicPay:           empl.BasicPay,
		ProductRebate:      empl.ProductRebate,
		PointsRebate:       empl.PointsRebate,
		PerformanceRebate:  empl.PerformanceRebate,
		HouseRentDeduction: empl.HouseRentDeduction,
		FoodDeduction:      empl.FoodDeduction,
		LoanDeduction:      empl.LoanDeduction,
		LoanRemaining:      empl.LoanRemaining,
		GrossPay:           payroll.GrossPay(breakdown(empl)),
		NetPay:             payroll.NetPay(breakdown(empl)),
		CreatedAt:          empl.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          empl.UpdatedAt.Format(time.RFC3339),
	}
	if empl.Branch != nil {
		resp.Branch = &EmployeeBranchResponse{
			ID:   empl.Branch.ID.String(),
			Name: empl.Branch.Name,
		}
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func breakdown(empl Employee) payroll.Breakdown {
	return payroll.Breakdown{
		BasicPay:           empl.BasicPay,
		ProductRebate:      empl.ProductRebate,
		PointsRebate:       empl.PointsRebate,
		PerformanceRebate:  empl.PerformanceRebate,
		HouseRentDeduction: empl.HouseRentDeduction,
		FoodDeduction:      empl.FoodDeduction,
		LoanDeduction:      empl.LoanDeduction,
	}
}
