package app

import (
	"database/sql"
	"os"

	"github.com/Haseebinvader/SalaryManagement/internal/auth"
	"github.com/Haseebinvader/SalaryManagement/internal/branch"
	"github.com/Haseebinvader/SalaryManagement/internal/employee"
	"github.com/Haseebinvader/SalaryManagement/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App owns the process-wide resources. They are constructed exactly
// once here and closed exactly once by Close; nothing is lazily
// initialized on the request path.
type App struct {
	GormDB *gorm.DB
	SQLDB  *sql.DB
	Redis  *redis.Client
}

func Build(router *gin.Engine) (*App, error) {
	gormDB, err := connection.ConnectGORMWithRetry(connection.PostgresConfig{
		Host:     os.Getenv("DB_HOST"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		DBName:   os.Getenv("DB_NAME"),
		Port:     os.Getenv("DB_PORT"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
	}, 5)
	if err != nil {
		return nil, err
	}

	if err := gormDB.AutoMigrate(
		&auth.Admin{},
		&branch.Branch{},
		&employee.Employee{},
	); err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return nil, err
	}

	a := &App{
		GormDB: gormDB,
		SQLDB:  sqlDB,
		Redis:  rdb,
	}

	registerModules(router, a.SQLDB, a.GormDB, a.Redis)

	return a, nil
}

func (a *App) Close() {
	if err := a.Redis.Close(); err != nil {
		zap.L().Error("redis close failed", zap.Error(err))
	}
	if err := connection.CloseGORM(a.GormDB); err != nil {
		zap.L().Error("database close failed", zap.Error(err))
	}
}
