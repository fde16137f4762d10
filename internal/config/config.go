package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Redis    RedisConfig    `toml:"redis"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig настройки опциональной advisory-блокировки по scope.
// При enabled=false бронирования защищает только сериализуемая транзакция.
type RedisConfig struct {
	Enabled        bool   `toml:"enabled"`
	Addr           string `toml:"addr"`
	Password       string `toml:"password"`
	LockTTLSeconds int    `toml:"lock_ttl_seconds"`
}

// BookingConfig поведение движка бронирования
type BookingConfig struct {
	// InitialStatus статус создаваемой брони: pending или confirmed
	InitialStatus string `toml:"initial_status"`
	// HidePastSlots скрывать ли в выдаче доступности слоты текущего дня,
	// время которых уже прошло
	HidePastSlots bool `toml:"hide_past_slots"`
	// AttemptTimeoutSeconds бюджет одной попытки бронирования
	AttemptTimeoutSeconds int `toml:"attempt_timeout_seconds"`
}

// Load читает и валидирует конфигурацию из toml файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "salon-booking-service",
		},
		Redis: RedisConfig{
			Addr:           "localhost:6379",
			LockTTLSeconds: 5,
		},
		Booking: BookingConfig{
			InitialStatus:         string(domain.DefaultInitialStatus),
			AttemptTimeoutSeconds: 5,
		},
	}
}

func (c *Config) validate() error {
	if c.Database.User == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.user and database.dbname are required")
	}

	status, ok := domain.ParseAppointmentStatus(c.Booking.InitialStatus)
	if !ok || !domain.IsCreationStatus(status) {
		return fmt.Errorf("config: booking.initial_status must be pending or confirmed, got %q", c.Booking.InitialStatus)
	}

	if c.Booking.AttemptTimeoutSeconds <= 0 {
		return fmt.Errorf("config: booking.attempt_timeout_seconds must be positive")
	}

	if c.Redis.Enabled && c.Redis.LockTTLSeconds <= 0 {
		return fmt.Errorf("config: redis.lock_ttl_seconds must be positive when redis is enabled")
	}

	return nil
}
