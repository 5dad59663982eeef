package branch

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	brancherrors "github.com/Haseebinvader/SalaryManagement/internal/branch/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	branchListCacheKey = "branches:all"
	branchListCacheTTL = 5 * time.Minute
)

//go:generate mockgen -source=branch_service.go -destination=mock/branch_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateBranchRequest) (BranchResponse, error)
	GetAll(ctx context.Context) ([]BranchResponse, error)
	Rename(ctx context.Context, id string, req UpdateBranchRequest) (BranchResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("branch.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("branch.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// Create persists a new branch. Duplicate names are allowed here; only
// Rename enforces name uniqueness.
func (s *service) Create(
	ctx context.Context,
	req CreateBranchRequest,
) (BranchResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return BranchResponse{}, brancherrors.ErrBranchNameRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create branch begin tx failed", zap.Error(err))
		return BranchResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	b := &Branch{
		ID:   uuid.New(),
		Name: name,
	}

	if err := qtx.Create(ctx, b); err != nil {
		s.logger.Error("create branch persist failed", zap.Error(err))
		return BranchResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create branch commit failed", zap.Error(err))
		return BranchResponse{}, err
	}

	s.invalidateListCache(ctx)
	s.logger.Info("create branch success", zap.String("branch_id", b.ID.String()))

	return mapToResponse(*b), nil
}

func (s *service) GetAll(ctx context.Context) ([]BranchResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, branchListCacheKey).Result()
		if err == nil {
			var resp []BranchResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	// singleflight keeps concurrent cache misses from stampeding the DB
	v, err, _ := s.sf.Do(branchListCacheKey, func() (interface{}, error) {
		branches, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(branches)

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, branchListCacheKey, payload, branchListCacheTTL).Err(); err != nil {
					s.logger.Error("failed to populate branch list cache", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]BranchResponse), nil
}

func (s *service) Rename(
	ctx context.Context,
	id string,
	req UpdateBranchRequest,
) (BranchResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return BranchResponse{}, brancherrors.ErrBranchNameRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("rename branch begin tx failed", zap.Error(err))
		return BranchResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	b, err := qtx.FindByID(ctx, id)
	if err != nil {
		return BranchResponse{}, mapRepositoryError(err)
	}

	taken, err := qtx.ExistsByName(ctx, name, id)
	if err != nil {
		s.logger.Error("rename branch duplicate check failed", zap.Error(err))
		return BranchResponse{}, err
	}
	if taken {
		s.logger.Warn("rename branch duplicate name",
			zap.String("branch_id", id),
			zap.String("name", name),
		)
		return BranchResponse{}, brancherrors.ErrBranchNameAlreadyExists
	}

	b.Name = name

	if err := qtx.Update(ctx, b); err != nil {
		s.logger.Error("rename branch persist failed", zap.Error(err))
		return BranchResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("rename branch commit failed", zap.Error(err))
		return BranchResponse{}, err
	}

	s.invalidateListCache(ctx)
	s.logger.Info("rename branch success", zap.String("branch_id", id))

	return mapToResponse(*b), nil
}

// Delete removes a branch without checking employee references; reads
// tolerate the resulting dangling branch IDs.
func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete branch begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete branch failed", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete branch commit failed", zap.Error(err))
		return err
	}

	s.invalidateListCache(ctx)
	s.logger.Info("delete branch success", zap.String("branch_id", id))
	return nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, branchListCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate branch list cache",
			zap.Error(err),
			zap.String("key", branchListCacheKey),
		)
	}
}

func mapToResponse(b Branch) BranchResponse {
	return BranchResponse{
		ID:        b.ID.String(),
		Name:      b.Name,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(branches []Branch) []BranchResponse {
	res := make([]BranchResponse, len(branches))
	for i, b := range branches {
		res[i] = mapToResponse(b)
	}
	return res
}
