package employee

import (
	"context"
	"database/sql"
	"strings"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context, f ListFilter) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	ExistsForSalaryMonth(ctx context.Context, employeeID, salaryMonth, excludeID string) (bool, error)
	BranchExists(ctx context.Context, branchID string) (bool, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

// FindAll applies the SQL-expressible filters; the month-bucket filter
// needs label parsing and lives in the service.
func (r *repository) FindAll(ctx context.Context, f ListFilter) ([]Employee, error) {
	var empls []Employee

	q := r.db.WithContext(ctx).
		Preload("Branch").
		Order("created_at DESC")

	if s := strings.TrimSpace(f.Search); s != "" {
		q = q.Where("name ILIKE ?", "%"+s+"%")
	}
	if s := strings.TrimSpace(f.SearchID); s != "" {
		q = q.Where("employee_id ILIKE ?", "%"+s+"%")
	}
	if f.BranchID != "" {
		q = q.Where("branch_id = ?", f.BranchID)
	}

	err := q.Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Branch").
		First(&empl, "id = ?", id).Error
	return &empl, err
}

// ExistsForSalaryMonth is the duplicate pre-check; excludeID keeps an
// updated record from conflicting with itself.
func (r *repository) ExistsForSalaryMonth(ctx context.Context, employeeID, salaryMonth, excludeID string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("employee_id = ?", employeeID).
		Where("salary_month = ?", salaryMonth)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) BranchExists(ctx context.Context, branchID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("branches").
		Where("id = ?", branchID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Employee{}, "id = ?", id).Error
}
