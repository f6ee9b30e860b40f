package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// Config конфигурация сервиса, загружается из TOML файла
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Storage StorageConfig `toml:"storage"`
	Booking BookingConfig `toml:"booking"`
	Rooms   []RoomConfig  `toml:"rooms"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig настройки файлового хранилища
type StorageConfig struct {
	BookingsFile string `toml:"bookings_file"`
	FloorMapsDir string `toml:"floor_maps_dir"`
}

// BookingConfig правила бронирования
type BookingConfig struct {
	HorizonDays int `toml:"horizon_days"`
}

// RoomConfig одна комната каталога. Столы задаются либо явным списком,
// либо количеством (тогда генерируются метки "Desk 1".."Desk N").
type RoomConfig struct {
	Code      string   `toml:"code"`
	Desks     []string `toml:"desks"`
	DeskCount int      `toml:"desk_count"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
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
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			File:  "logs/service.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "deskbooking",
		},
		Storage: StorageConfig{
			BookingsFile: domain.DefaultBookingsFile,
			FloorMapsDir: domain.DefaultFloorMapsDir,
		},
		Booking: BookingConfig{
			HorizonDays: domain.DefaultHorizonDays,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port %d is out of range", c.Server.HTTPPort)
	}
	if c.Booking.HorizonDays < domain.MinHorizonDays || c.Booking.HorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("booking.horizon_days %d is out of range [%d, %d]",
			c.Booking.HorizonDays, domain.MinHorizonDays, domain.MaxHorizonDays)
	}
	if c.Storage.BookingsFile == "" {
		return fmt.Errorf("storage.bookings_file is empty")
	}
	for i, room := range c.Rooms {
		if room.Code == "" {
			return fmt.Errorf("rooms[%d].code is empty", i)
		}
		if len(room.Desks) == 0 && room.DeskCount <= 0 {
			return fmt.Errorf("rooms[%d] %q: either desks or desk_count is required", i, room.Code)
		}
	}
	return nil
}

// Catalog строит каталог комнат из конфигурации.
// Без секции [[rooms]] используется каталог по умолчанию.
func (c *Config) Catalog() (*domain.RoomCatalog, error) {
	if len(c.Rooms) == 0 {
		return domain.DefaultRoomCatalog(), nil
	}

	rooms := make([]domain.Room, len(c.Rooms))
	for i, room := range c.Rooms {
		desks := room.Desks
		if len(desks) == 0 {
			desks = make([]string, room.DeskCount)
			for d := range desks {
				desks[d] = fmt.Sprintf("Desk %d", d+1)
			}
		}
		rooms[i] = domain.Room{Code: room.Code, Desks: desks}
	}
	return domain.NewRoomCatalog(rooms)
}
