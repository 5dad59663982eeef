package branch

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=branch_repo.go -destination=mock/branch_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, b *Branch) error
	FindAll(ctx context.Context) ([]Branch, error)
	FindByID(ctx context.Context, id string) (*Branch, error)
	ExistsByName(ctx context.Context, name string, excludeID string) (bool, error)
	Update(ctx context.Context, b *Branch) error
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

func (r *repository) Create(ctx context.Context, b *Branch) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Branch, error) {
	var branches []Branch
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&branches).Error
	return branches, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Branch, error) {
	var b Branch
	err := r.db.WithContext(ctx).
		First(&b, "id = ?", id).Error
	return &b, err
}

// ExistsByName backs the rename conflict check; excludeID keeps a
// branch from conflicting with itself.
func (r *repository) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&Branch{}).
		Where("name = ?", name)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, b *Branch) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Branch{}, "id = ?", id).Error
}
