package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Redis        RedisConfig        `toml:"redis"`
	RabbitMQ     RabbitMQConfig     `toml:"rabbitmq"`
	Auth         AuthConfig         `toml:"auth"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Booking      BookingConfig      `toml:"booking"`
	RateLimit    RateLimitConfig    `toml:"rate_limit"`
	StationCache StationCacheConfig `toml:"station_cache"`
}

// ServerConfig HTTP сервер, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig подключение к Postgres
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

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig подключение к Redis
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// RabbitMQConfig очередь почтовых заданий
type RabbitMQConfig struct {
	Enabled    bool   `toml:"enabled"`
	URL        string `toml:"url"`
	Exchange   string `toml:"exchange"`
	RoutingKey string `toml:"routing_key"`
}

// AuthConfig проверка JWT
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

// LogsConfig логирование
type LogsConfig struct {
	Level  string `toml:"level"`
	File   string `toml:"file"`
	Format string `toml:"format"`
}

// MetricsConfig prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig правила бронирования
type BookingConfig struct {
	// Timezone часовой пояс станций, в нём проверяется "бронирование в прошлом"
	Timezone            string `toml:"timezone"`
	ReminderLeadMinutes int    `toml:"reminder_lead_minutes"`
	AllowedDurations    []int  `toml:"allowed_durations"`
}

// Location загружает часовой пояс
func (b BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(b.Timezone)
}

// ReminderLead время до начала сессии, за которое отправляется напоминание
func (b BookingConfig) ReminderLead() time.Duration {
	return time.Duration(b.ReminderLeadMinutes) * time.Minute
}

// RateLimitConfig ограничение частоты изменяющих запросов на клиента
// TrustedProxies CIDR или IP прокси, чьему X-Forwarded-For можно верить.
// IdleTTL в секундах, после него лимитер клиента забывается.
type RateLimitConfig struct {
	Enabled           bool     `toml:"enabled"`
	RequestsPerSecond float64  `toml:"requests_per_second"`
	Burst             int      `toml:"burst"`
	TrustedProxies    []string `toml:"trusted_proxies"`
	IdleTTL           int      `toml:"idle_ttl"`
}

// IdleTimeout время простоя, после которого клиент удаляется из лимитера
func (r RateLimitConfig) IdleTimeout() time.Duration {
	return time.Duration(r.IdleTTL) * time.Second
}

// StationCacheConfig кэш справочника станций, TTL в секундах
type StationCacheConfig struct {
	TTL int `toml:"ttl"`
}

// Load читает .env (если есть), подставляет переменные окружения в файл конфигурации,
// применяет значения по умолчанию и валидирует результат.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if _, err := toml.Decode(os.ExpandEnv(string(data)), &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "mail"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "mail.booking"
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Logs.Format == "" {
		c.Logs.Format = "json"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "chargemate_booking"
	}

	if c.Booking.Timezone == "" {
		c.Booking.Timezone = "UTC"
	}
	if c.Booking.ReminderLeadMinutes == 0 {
		c.Booking.ReminderLeadMinutes = 10
	}
	if len(c.Booking.AllowedDurations) == 0 {
		c.Booking.AllowedDurations = []int{30, 60, 90, 120}
	}

	if c.RateLimit.RequestsPerSecond == 0 {
		c.RateLimit.RequestsPerSecond = 5
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 10
	}
	if c.RateLimit.IdleTTL == 0 {
		c.RateLimit.IdleTTL = 600
	}

	if c.StationCache.TTL == 0 {
		c.StationCache.TTL = 300
	}
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return errors.New("database host is required")
	}
	if c.Database.DBName == "" {
		return errors.New("database name is required")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth jwt_secret is required")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return errors.New("redis addr is required when redis is enabled")
	}
	if c.RabbitMQ.Enabled && c.RabbitMQ.URL == "" {
		return errors.New("rabbitmq url is required when rabbitmq is enabled")
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("invalid booking timezone %q: %w", c.Booking.Timezone, err)
	}
	for _, d := range c.Booking.AllowedDurations {
		if d <= 0 || d%30 != 0 {
			return fmt.Errorf("allowed duration %d must be a positive multiple of 30", d)
		}
	}
	for _, p := range c.RateLimit.TrustedProxies {
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return fmt.Errorf("invalid rate_limit trusted proxy %q", p)
			}
		}
	}
	if c.Booking.ReminderLeadMinutes < 0 {
		return errors.New("reminder_lead_minutes must not be negative")
	}
	return nil
}
