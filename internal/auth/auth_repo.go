package auth

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Admin, error)
	Create(ctx context.Context, admin *Admin) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Admin, error) {
	var admin Admin
	err := r.db.WithContext(ctx).
		First(&admin, "email = ?", email).Error
	return &admin, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Admin, error) {
	var admin Admin
	err := r.db.WithContext(ctx).
		First(&admin, "id = ?", id).Error
	return &admin, err
}

func (r *repository) Create(ctx context.Context, admin *Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}
