package auth_test

import (
	"context"
	"os"
	"testing"

	"github.com/Haseebinvader/SalaryManagement/internal/auth"
	autherrors "github.com/Haseebinvader/SalaryManagement/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeAuthRepo struct {
	admins map[string]*auth.Admin // keyed by email
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{admins: map[string]*auth.Admin{}}
}

func (f *fakeAuthRepo) GetByEmail(_ context.Context, email string) (*auth.Admin, error) {
	admin, ok := f.admins[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return admin, nil
}

func (f *fakeAuthRepo) GetByID(_ context.Context, id uuid.UUID) (*auth.Admin, error) {
	for _, admin := range f.admins {
		if admin.ID == id {
			return admin, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepo) Create(_ context.Context, admin *auth.Admin) error {
	f.admins[admin.Email] = admin
	return nil
}

func seedAdmin(t *testing.T, repo *fakeAuthRepo, email, password string) *auth.Admin {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &auth.Admin{ID: uuid.New(), Email: email, Password: string(hashed)}
	repo.admins[email] = admin
	return admin
}

func TestAuthService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("success issues signed tokens", func(t *testing.T) {
		repo := newFakeAuthRepo()
		admin := seedAdmin(t, repo, "admin@example.com", "s3cret")
		svc := auth.NewService(repo)

		access, refresh, resp, err := svc.Login(context.Background(), "admin@example.com", "s3cret")

		require.NoError(t, err)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, admin.ID.String(), resp.ID)
		assert.Equal(t, "admin@example.com", resp.Email)

		token, err := jwt.Parse(access, func(token *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, admin.ID.String(), claims["admin_id"])
		assert.Equal(t, "admin@example.com", claims["email"])
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := newFakeAuthRepo()
		seedAdmin(t, repo, "admin@example.com", "s3cret")
		svc := auth.NewService(repo)

		_, _, _, err := svc.Login(context.Background(), "admin@example.com", "wrong")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email yields the same error", func(t *testing.T) {
		svc := auth.NewService(newFakeAuthRepo())

		_, _, _, err := svc.Login(context.Background(), "nobody@example.com", "s3cret")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("valid refresh token rotates the pair", func(t *testing.T) {
		repo := newFakeAuthRepo()
		admin := seedAdmin(t, repo, "admin@example.com", "s3cret")
		svc := auth.NewService(repo)

		_, refresh, _, err := svc.Login(context.Background(), "admin@example.com", "s3cret")
		require.NoError(t, err)

		access, newRefresh, resp, err := svc.RefreshToken(context.Background(), refresh)

		require.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
		assert.Equal(t, admin.ID.String(), resp.ID)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		svc := auth.NewService(newFakeAuthRepo())

		_, _, _, err := svc.RefreshToken(context.Background(), "not.a.token")

		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("token for a deleted admin is rejected", func(t *testing.T) {
		repo := newFakeAuthRepo()
		seedAdmin(t, repo, "admin@example.com", "s3cret")
		svc := auth.NewService(repo)

		_, refresh, _, err := svc.Login(context.Background(), "admin@example.com", "s3cret")
		require.NoError(t, err)

		delete(repo.admins, "admin@example.com")

		_, _, _, err = svc.RefreshToken(context.Background(), refresh)

		assert.ErrorIs(t, err, autherrors.ErrAdminNotFound)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := newFakeAuthRepo()
		admin := seedAdmin(t, repo, "admin@example.com", "s3cret")
		svc := auth.NewService(repo)

		resp, err := svc.GetMe(context.Background(), admin.ID.String())

		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", resp.Email)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := auth.NewService(newFakeAuthRepo())

		_, err := svc.GetMe(context.Background(), "not-a-uuid")

		assert.ErrorIs(t, err, autherrors.ErrInvalidAdminID)
	})
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := auth.NewService(repo)

	require.NoError(t, svc.EnsureAdmin(context.Background(), "admin@example.com", "s3cret"))
	first := repo.admins["admin@example.com"]
	require.NotNil(t, first)

	// Second run must not replace the stored credential.
	require.NoError(t, svc.EnsureAdmin(context.Background(), "admin@example.com", "different"))
	assert.Equal(t, first, repo.admins["admin@example.com"])

	err := bcrypt.CompareHashAndPassword([]byte(first.Password), []byte("s3cret"))
	assert.NoError(t, err)
}
