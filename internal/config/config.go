package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Источники начального набора записей
const (
	SeedBuiltin  = "builtin"
	SeedFile     = "file"
	SeedDatabase = "database"
)

// Config содержит настройки приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Seed     SeedConfig
	Log      LogConfig
	Report   ReportConfig
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Port string
}

// DatabaseConfig - настройки подключения к БД
type DatabaseConfig struct {
	Driver     string
	SQLitePath string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
}

// SeedConfig - откуда загружать записи при старте
type SeedConfig struct {
	Source string
	File   string
}

// LogConfig - настройки логирования
type LogConfig struct {
	Level string
}

// ReportConfig - настройки сводных отчётов
type ReportConfig struct {
	TopEarners int
}

// DSN возвращает строку подключения для выбранного драйвера
func (c *DatabaseConfig) DSN() string {
	if c.Driver == "sqlite" {
		return c.SQLitePath
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// SlogLevel переводит уровень из конфигурации в slog.Level
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	topN, err := strconv.Atoi(getEnv("TOP_EARNERS", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOP_EARNERS: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "sqlite"),
			SQLitePath: getEnv("SQLITE_PATH", "roster.db"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", "postgres"),
			DBName:     getEnv("DB_NAME", "roster"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
		},
		Seed: SeedConfig{
			Source: getEnv("SEED_SOURCE", SeedBuiltin),
			File:   getEnv("SEED_FILE", ""),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Report: ReportConfig{
			TopEarners: topN,
		},
	}

	switch cfg.Seed.Source {
	case SeedBuiltin, SeedDatabase:
	case SeedFile:
		if cfg.Seed.File == "" {
			return nil, fmt.Errorf("SEED_FILE is required when SEED_SOURCE=%s", SeedFile)
		}
	default:
		return nil, fmt.Errorf("unknown SEED_SOURCE %q", cfg.Seed.Source)
	}

	if cfg.Seed.Source == SeedDatabase && cfg.Database.Driver != "sqlite" && cfg.Database.Driver != "postgres" {
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.Database.Driver)
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
