package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// EnvDBPassword переменная окружения, переопределяющая пароль БД
const EnvDBPassword = "HOTEL_DB_PASSWORD"

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Hotel    HotelConfig    `toml:"hotel"`
	Database DatabaseConfig `toml:"database"`
	Jobs     JobsConfig     `toml:"jobs"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// HotelConfig параметры инвентаря и тарифа
type HotelConfig struct {
	MaxRooms             int   `toml:"max_rooms"`
	NightlyRate          int64 `toml:"nightly_rate"`
	BlockDiscountPercent *int  `toml:"block_discount_percent"` // nil = значение по умолчанию
}

type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
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

type JobsConfig struct {
	OccupancySchedule string `toml:"occupancy_schedule"` // cron-выражение, пусто = отключено
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// BlockDiscount возвращает скидку для блоков с учётом значения по умолчанию
func (c HotelConfig) BlockDiscount() int {
	if c.BlockDiscountPercent == nil {
		return domain.DefaultBlockDiscountPercent
	}
	return *c.BlockDiscountPercent
}

// Load читает TOML-файл, .env (если есть) и применяет значения по умолчанию
func Load(path string) (*Config, error) {
	if err := loadEnv(".env"); err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if password := os.Getenv(EnvDBPassword); password != "" {
		cfg.Database.Password = password
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadEnv подгружает переменные из .env; отсутствующий файл не ошибка
func loadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func (c *Config) setDefaults() {
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
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "smc-hotel-service"
	}
	if c.Hotel.MaxRooms == 0 {
		c.Hotel.MaxRooms = domain.DefaultMaxRooms
	}
	if c.Hotel.NightlyRate == 0 {
		c.Hotel.NightlyRate = domain.DefaultNightlyRate
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
}

// Validate проверяет бизнес-ограничения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Hotel.MaxRooms < domain.MaxBlockSize || c.Hotel.MaxRooms > domain.MaxRoomsLimit {
		return fmt.Errorf("%w: hotel.max_rooms must be in %d..%d",
			ErrInvalidConfig, domain.MaxBlockSize, domain.MaxRoomsLimit)
	}
	if c.Hotel.NightlyRate < 0 {
		return fmt.Errorf("%w: hotel.nightly_rate must not be negative", ErrInvalidConfig)
	}
	if d := c.Hotel.BlockDiscount(); d < 0 || d > domain.MaxDiscountPercent {
		return fmt.Errorf("%w: hotel.block_discount_percent must be in 0..%d",
			ErrInvalidConfig, domain.MaxDiscountPercent)
	}
	if c.Database.Enabled && (c.Database.Host == "" || c.Database.DBName == "") {
		return fmt.Errorf("%w: database.host and database.dbname are required when database is enabled",
			ErrInvalidConfig)
	}
	return nil
}
