package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/personnel-roster/internal/config"
	"github.com/personnel-roster/internal/domain"
	"github.com/personnel-roster/internal/handler"
	"github.com/personnel-roster/internal/migrations"
	"github.com/personnel-roster/internal/repository"
	"github.com/personnel-roster/internal/roster"
	"github.com/personnel-roster/internal/seed"
	"github.com/personnel-roster/internal/service"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Загрузка начального набора записей
	employees, err := loadEmployees(context.Background(), cfg)
	if err != nil {
		logger.Error("failed to load employees", slog.String("source", cfg.Seed.Source), slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("employees loaded", slog.String("source", cfg.Seed.Source), slog.Int("count", len(employees)))

	// Хранилище создаётся один раз на процесс и передаётся сервису
	store := roster.NewStore(employees)
	rosterService := service.NewRosterService(store, cfg.Report.TopEarners, logger)
	rosterHandler := handler.NewRosterHandler(rosterService, logger)

	// Настройка роутера
	router := handler.NewRouter(rosterHandler, logger)
	httpHandler := router.Setup()

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("server is starting", slog.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		os.Exit(1)
	}

	<-done
	logger.Info("server stopped")
}

func loadEmployees(ctx context.Context, cfg *config.Config) ([]domain.Employee, error) {
	switch cfg.Seed.Source {
	case config.SeedFile:
		return seed.LoadFile(cfg.Seed.File)
	case config.SeedDatabase:
		return loadFromDatabase(ctx, cfg.Database)
	default:
		return seed.Default(), nil
	}
}

// loadFromDatabase читает записи из таблицы; пустая таблица заполняется встроенным набором.
// Изменения в памяти обратно в БД не записываются.
func loadFromDatabase(ctx context.Context, cfg config.DatabaseConfig) ([]domain.Employee, error) {
	db, err := connectDB(cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	defer sqlDB.Close()

	if err := migrations.Run(sqlDB, cfg.Driver); err != nil {
		return nil, err
	}

	repo := repository.NewEmployeeRepository(db)
	return repository.SeedIfEmpty(ctx, repo, seed.Default())
}

func connectDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	if cfg.Driver == "sqlite" {
		return gorm.Open(sqlite.Open(cfg.DSN()), gormCfg)
	}

	var db *gorm.DB
	var err error

	for range 30 {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), gormCfg)
		if err == nil {
			sqlDB, _ := db.DB()
			if sqlDB.Ping() == nil {
				return db, nil
			}
		}
		time.Sleep(time.Second)
	}

	return nil, fmt.Errorf("failed to connect to database after 30 attempts: %w", err)
}
