package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	YooKassa YooKassaConfig `toml:"yookassa"`
	Mail     MailConfig     `toml:"mail"`
	Booking  BookingConfig  `toml:"booking"`
	Webhook  WebhookConfig  `toml:"webhook"`
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

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// YooKassaConfig настройки платежного шлюза ЮKassa
// Передается в клиент явно через конструктор, не через глобальное состояние
type YooKassaConfig struct {
	ShopID    string `toml:"shop_id"`
	SecretKey string `toml:"secret_key"`
	BaseURL   string `toml:"base_url"`   // https://api.yookassa.ru/v3
	ReturnURL string `toml:"return_url"` // базовый URL возврата, id бронирования добавляется как query-параметр
	Timeout   int    `toml:"timeout"`    // секунды
}

// MailConfig настройки SMTP для уведомлений гостям
type MailConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

// BookingConfig бизнес-настройки бронирования
type BookingConfig struct {
	// ExtraGuestSurcharge доплата за каждого гостя сверх первого, за ночь (₽)
	ExtraGuestSurcharge float64 `toml:"extra_guest_surcharge"`
}

// WebhookConfig настройки приема уведомлений от ЮKassa
type WebhookConfig struct {
	// AllowlistEnabled включает проверку IP источника по списку сетей ЮKassa
	AllowlistEnabled bool     `toml:"allowlist_enabled"`
	AllowedNetworks  []string `toml:"allowed_networks"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Booking.ExtraGuestSurcharge == 0 {
		cfg.Booking.ExtraGuestSurcharge = defaultExtraGuestSurcharge
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

const defaultExtraGuestSurcharge = 1400.0

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if c.YooKassa.ShopID == "" || c.YooKassa.SecretKey == "" {
		return fmt.Errorf("config: yookassa.shop_id and yookassa.secret_key are required")
	}
	if c.YooKassa.ReturnURL == "" {
		return fmt.Errorf("config: yookassa.return_url is required")
	}
	if c.Booking.ExtraGuestSurcharge < 0 {
		return fmt.Errorf("config: booking.extra_guest_surcharge must not be negative")
	}
	return nil
}
