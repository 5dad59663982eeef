package auth

import (
	"context"
	"errors"
	"os"
	"time"

	autherrors "github.com/Haseebinvader/SalaryManagement/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AuthResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, adminID string) (*AuthResponse, error)
	EnsureAdmin(ctx context.Context, email, password string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (string, string, AuthResponse, error) {
	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// same error for unknown email and wrong password
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	accessToken, err := s.generateToken(admin.ID.String(), admin.Email, accessTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(admin.ID.String(), admin.Email, refreshTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("admin login success", zap.String("admin_id", admin.ID.String()))

	return accessToken, refreshToken, AuthResponse{
		ID:    admin.ID.String(),
		Email: admin.Email,
	}, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	adminIDStr, ok := claims["admin_id"].(string)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	adminID, err := uuid.Parse(adminIDStr)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidAdminID
	}

	admin, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrAdminNotFound
	}

	newAccessToken, err := s.generateToken(admin.ID.String(), admin.Email, accessTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	newRefreshToken, err := s.generateToken(admin.ID.String(), admin.Email, refreshTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccessToken, newRefreshToken, AuthResponse{
		ID:    admin.ID.String(),
		Email: admin.Email,
	}, nil
}

func (s *service) GetMe(ctx context.Context, adminID string) (*AuthResponse, error) {
	id, err := uuid.Parse(adminID)
	if err != nil {
		return nil, autherrors.ErrInvalidAdminID
	}

	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrAdminNotFound
	}

	return &AuthResponse{
		ID:    admin.ID.String(),
		Email: admin.Email,
	}, nil
}

// EnsureAdmin creates the admin credential when it does not exist yet.
// Used by cmd/seedadmin; idempotent.
func (s *service) EnsureAdmin(ctx context.Context, email, password string) error {
	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		s.logger.Info("admin already present", zap.String("email", email))
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &Admin{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hashed),
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("admin seeded", zap.String("email", email))
	return nil
}

func (s *service) generateToken(adminID, email string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": adminID,
		"email":    email,
		"exp":      time.Now().Add(ttl).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
