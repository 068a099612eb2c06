package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации
	// Ошибка фатальна: сервис не должен стартовать с такой конфигурацией
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса, загружается один раз при старте
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Company  CompanyConfig  `toml:"company"`
	Overlap  OverlapConfig  `toml:"overlap"`
}

// ServerConfig настройки HTTP сервера
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

// DSN собирает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CompanyConfig фиксированные рабочие часы компании в её собственной таймзоне
type CompanyConfig struct {
	Timezone            string `toml:"timezone"`
	OpenHour            int    `toml:"open_hour"`
	OpenMinute          int    `toml:"open_minute"`
	OpenDurationMinutes int    `toml:"open_duration_minutes"`

	// location заполняется при валидации
	location *time.Location
}

// OverlapConfig политика проверки пересечений встреч
type OverlapConfig struct {
	CheckByCustomer bool `toml:"check_by_customer"`
	CheckByContact  bool `toml:"check_by_contact"`
}

// Load читает и валидирует конфигурацию из TOML файла
// Любая ошибка валидации фатальна - сервис не стартует
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %v", ErrInvalidConfig, path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}

	loc, err := time.LoadLocation(c.Company.Timezone)
	if err != nil {
		return fmt.Errorf("%w: company.timezone %q is not a valid IANA zone: %v",
			ErrInvalidConfig, c.Company.Timezone, err)
	}
	c.Company.location = loc

	if c.Company.OpenHour < 0 || c.Company.OpenHour > 23 {
		return fmt.Errorf("%w: company.open_hour must be 0-23", ErrInvalidConfig)
	}
	if c.Company.OpenMinute < 0 || c.Company.OpenMinute > 59 {
		return fmt.Errorf("%w: company.open_minute must be 0-59", ErrInvalidConfig)
	}
	if c.Company.OpenDurationMinutes <= 0 {
		return fmt.Errorf("%w: company.open_duration_minutes must be positive", ErrInvalidConfig)
	}
	if c.Company.OpenDurationMinutes > domain.MaxOpenDurationMinutes {
		return fmt.Errorf("%w: company.open_duration_minutes must not exceed %d",
			ErrInvalidConfig, domain.MaxOpenDurationMinutes)
	}

	return nil
}

// CompanyHours конвертирует конфигурацию в доменную модель рабочих часов
func (c *Config) CompanyHours() domain.CompanyHours {
	return domain.CompanyHours{
		Location:        c.Company.location,
		OpenHour:        c.Company.OpenHour,
		OpenMinute:      c.Company.OpenMinute,
		DurationMinutes: c.Company.OpenDurationMinutes,
	}
}

// OverlapPolicy конвертирует конфигурацию в доменную политику пересечений
func (c *Config) OverlapPolicy() domain.OverlapPolicy {
	return domain.OverlapPolicy{
		CheckByCustomer: c.Overlap.CheckByCustomer,
		CheckByContact:  c.Overlap.CheckByContact,
	}
}
