package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Khaled-elnabawy/smart-ambulance-api/cmd"
	httpadapter "github.com/Khaled-elnabawy/smart-ambulance-api/internal/adapters/in/http"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/jobs"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/adapters/out/postgres/driverrepo"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/adapters/out/postgres/historyrepo"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/adapters/out/postgres/requestrepo"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/logging"
)

func main() {
	configs := getConfigs()
	logger := logging.NewLogger(configs.LogLevel)

	gormDB, err := openDatabase(configs)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := migrate(gormDB); err != nil {
		logger.Error("Failed to run schema migration", "error", err)
		os.Exit(1)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	server := httpadapter.NewServer(
		app.CreateCreateRequestCommandHandler(),
		app.CreateAcceptRequestCommandHandler(),
		app.CreateRejectRequestCommandHandler(),
		app.CreateMarkArrivedCommandHandler(),
		app.CreateCompleteRequestCommandHandler(),
		app.CreateCancelRequestCommandHandler(),
		app.CreateRegisterDriverCommandHandler(),
		app.CreateSetDriverAvailabilityCommandHandler(),
		app.CreateUpdateDriverLocationCommandHandler(),
		app.CreateGetRequestQueryHandler(),
		app.CreateGetPendingRequestsQueryHandler(),
		app.CreateGetAvailableDriversQueryHandler(),
	)

	e := echo.New()
	e.HideBanner = true
	httpadapter.RegisterMiddleware(e, logger)
	server.RegisterRoutes(e)

	jobManager := jobs.NewJobManager(app.CreateAssignPendingRequestCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)
		logger.Info("HTTP server starting", "addr", addr)
		if err := e.Start(addr); err != nil {
			logger.Info("HTTP server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}

func getConfigs() cmd.Config {
	// A missing .env file is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:   envOrDefault("HTTP_PORT", "8080"),
		DBHost:     envOrDefault("DB_HOST", "localhost"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     envOrDefault("DB_USER", "postgres"),
		DBPassword: envOrDefault("DB_PASSWORD", "postgres"),
		DBName:     envOrDefault("DB_NAME", "dispatch"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),
		LogLevel:   envOrDefault("LOG_LEVEL", "info"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&requestrepo.RequestDTO{},
		&driverrepo.DriverDTO{},
		&historyrepo.RecordDTO{},
	)
}
