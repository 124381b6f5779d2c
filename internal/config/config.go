package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Schedule ScheduleConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// ScheduleConfig holds the workday constants the attendance classifier runs with.
type ScheduleConfig struct {
	ExpectedStart string // "HH:MM"
	GraceMinutes  int
	FullDayHours  int
}

// PayrollConfig holds engine-wide payroll constants.
type PayrollConfig struct {
	AttendanceBonusRate string // decimal fraction, e.g. "0.05"
}

func Load() (*Config, error) {
	// .env is optional outside development
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "nomina"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Workday schedule constants
	graceMinutes, err := strconv.Atoi(getEnv("SCHEDULE_GRACE_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_GRACE_MINUTES: %w", err)
	}
	fullDayHours, err := strconv.Atoi(getEnv("SCHEDULE_FULL_DAY_HOURS", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_FULL_DAY_HOURS: %w", err)
	}

	config.Schedule = ScheduleConfig{
		ExpectedStart: getEnv("SCHEDULE_EXPECTED_START", "08:00"),
		GraceMinutes:  graceMinutes,
		FullDayHours:  fullDayHours,
	}

	config.Payroll = PayrollConfig{
		AttendanceBonusRate: getEnv("PAYROLL_ATTENDANCE_BONUS_RATE", "0.05"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Schedule.GraceMinutes < 0 {
		return fmt.Errorf("SCHEDULE_GRACE_MINUTES must be non-negative")
	}
	if c.Schedule.FullDayHours <= 0 {
		return fmt.Errorf("SCHEDULE_FULL_DAY_HOURS must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
