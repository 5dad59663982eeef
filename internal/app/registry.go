package app

import (
	"database/sql"

	"github.com/Haseebinvader/SalaryManagement/internal/auth"
	"github.com/Haseebinvader/SalaryManagement/internal/branch"
	"github.com/Haseebinvader/SalaryManagement/internal/employee"
	"github.com/Haseebinvader/SalaryManagement/internal/middleware"
	"github.com/Haseebinvader/SalaryManagement/internal/terms"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(20, 40))

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	branchRepo := branch.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)

	// --- Services ---
	authService := auth.NewService(authRepo)
	branchService := branch.NewService(db, branchRepo, rdb)
	employeeService := employee.NewService(db, employeeRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	branchHandler := branch.NewHandler(branchService)
	employeeHandler := employee.NewHandler(employeeService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		branch.RegisterRoutes(api, branchHandler)
		employee.RegisterRoutes(api, employeeHandler)
		terms.RegisterRoutes(api)
	}
}
