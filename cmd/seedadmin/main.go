package main

import (
	"context"
	"os"

	"github.com/Haseebinvader/SalaryManagement/internal/auth"
	"github.com/Haseebinvader/SalaryManagement/internal/shared/connection"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Seeds the admin credential from ADMIN_EMAIL / ADMIN_PASSWORD.
// Safe to run repeatedly; an existing admin is left untouched.
func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		logger.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	gormDB, err := connection.ConnectGORMWithRetry(connection.PostgresConfig{
		Host:     os.Getenv("DB_HOST"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		DBName:   os.Getenv("DB_NAME"),
		Port:     os.Getenv("DB_PORT"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
	}, 3)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer connection.CloseGORM(gormDB)

	if err := gormDB.AutoMigrate(&auth.Admin{}); err != nil {
		logger.Fatal("migrate admins failed", zap.Error(err))
	}

	svc := auth.NewService(auth.NewRepository(gormDB), logger)
	if err := svc.EnsureAdmin(context.Background(), email, password); err != nil {
		logger.Fatal("seed admin failed", zap.Error(err))
	}

	logger.Info("seed admin complete", zap.String("email", email))
}
