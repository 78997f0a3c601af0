package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/arcsportszone/ARC-BookingService/internal/domain"
	"github.com/arcsportszone/ARC-BookingService/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Heatmap  HeatmapConfig  `toml:"heatmap"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах).
// Write timeout намеренно отсутствует: /events держит соединение открытым
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к Postgres
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
	LockTimeoutMS   int    `toml:"lock_timeout_ms"`
}

// DSN возвращает строку подключения lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// HeatmapConfig границы дневной сетки теплокарты ("HH:MM")
type HeatmapConfig struct {
	DayStart string `toml:"day_start"`
	DayEnd   string `toml:"day_end"`
}

// DayStartMinutes начало сетки в минутах с полуночи
func (c HeatmapConfig) DayStartMinutes() int {
	if m, err := types.ParseTimeLabel(c.DayStart); err == nil {
		return m
	}
	return domain.DefaultDayStartMinutes
}

// DayEndMinutes конец сетки в минутах с полуночи
func (c HeatmapConfig) DayEndMinutes() int {
	if m, err := types.ParseTimeLabel(c.DayEnd); err == nil {
		return m
	}
	return domain.DefaultDayEndMinutes
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8083
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "arc-booking-service"
	}
	if cfg.Heatmap.DayStartMinutes() >= cfg.Heatmap.DayEndMinutes() {
		return nil, fmt.Errorf("config: heatmap day_start %q must be before day_end %q",
			cfg.Heatmap.DayStart, cfg.Heatmap.DayEnd)
	}

	return &cfg, nil
}
