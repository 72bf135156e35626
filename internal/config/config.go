package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/VP-ApprovalService/internal/domain"
)

// Config конфигурация сервиса, загружается из TOML файла
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
	Admin    AdminConfig    `toml:"admin"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`  // пустое значение - логи в stdout
	Level string `toml:"level"` // debug | info | warn | error
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig настройки расписания
// Окно видимости и локальный часовой пояс для вычисления границ суток
type ScheduleConfig struct {
	LocalUTCOffsetHours int `toml:"local_utc_offset_hours"`
	WindowBeforeHours   int `toml:"window_before_hours"`
	WindowAfterHours    int `toml:"window_after_hours"`
}

// Window возвращает окно видимости расписания
func (s ScheduleConfig) Window() domain.ScheduleWindow {
	return domain.ScheduleWindow{
		Before: time.Duration(s.WindowBeforeHours) * time.Hour,
		After:  time.Duration(s.WindowAfterHours) * time.Hour,
	}
}

// Location возвращает фиксированный локальный часовой пояс сообщества
func (s ScheduleConfig) Location() *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC+%d", s.LocalUTCOffsetHours), s.LocalUTCOffsetHours*3600)
}

// AdminConfig настройки административного доступа
// Пароль сравнивается на равенство при каждом запросе удаления.
// Это не полноценная аутентификация, а общий секрет сообщества
type AdminConfig struct {
	Password string `toml:"password"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := &Config{
		// Дефолты, если секции не заданы в файле
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path: "/metrics",
		},
		Schedule: ScheduleConfig{
			LocalUTCOffsetHours: domain.DefaultLocalUTCOffsetHours,
			WindowBeforeHours:   domain.DefaultWindowBeforeHours,
			WindowAfterHours:    domain.DefaultWindowAfterHours,
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if c.Admin.Password == "" {
		return fmt.Errorf("config: admin.password is required")
	}
	if c.Schedule.WindowBeforeHours < 0 || c.Schedule.WindowAfterHours < 0 {
		return fmt.Errorf("config: schedule window bounds must be non-negative")
	}
	return nil
}
