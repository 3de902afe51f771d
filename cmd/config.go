package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"catalog/internal/adapters/out/persistence"
	"catalog/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"
	"gorm.io/gorm/logger"
)

// Configuration keys. Every key is read from the environment under the same
// name; a .env file in the working directory is loaded first.
const (
	KeyHTTPPort           = "HTTP_PORT"
	KeyDBDriver           = "DB_DRIVER"
	KeyDBHost             = "DB_HOST"
	KeyDBPort             = "DB_PORT"
	KeyDBUser             = "DB_USER"
	KeyDBPassword         = "DB_PASSWORD"
	KeyDBName             = "DB_NAME"
	KeyDBSslMode          = "DB_SSLMODE"
	KeySQLitePath         = "SQLITE_PATH"
	KeyLogLevel           = "LOG_LEVEL"
	KeyLogFormat          = "LOG_FORMAT"
	KeyOrderCheckSchedule = "ORDER_CHECK_SCHEDULE"
)

var (
	ErrUnknownLogFormat = errors.New("unknown log format")
	ErrUnknownDBDriver  = errors.New("unknown database driver")
)

type Config struct {
	HTTPPort           string
	DBDriver           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	SQLitePath         string
	LogLevel           string
	LogFormat          string
	OrderCheckSchedule string
}

// NewViper loads .env into the process environment (a missing file is fine)
// and returns a viper instance reading the environment with the catalog
// defaults. Bind command line flags onto it before calling LoadConfig.
func NewViper(envFile string) (*viper.Viper, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(KeyHTTPPort, "8080")
	v.SetDefault(KeyDBDriver, persistence.DriverPostgres)
	v.SetDefault(KeyDBHost, "localhost")
	v.SetDefault(KeyDBPort, "5432")
	v.SetDefault(KeyDBUser, "postgres")
	v.SetDefault(KeyDBPassword, "")
	v.SetDefault(KeyDBName, "catalog")
	v.SetDefault(KeyDBSslMode, "disable")
	v.SetDefault(KeySQLitePath, "catalog.db")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyOrderCheckSchedule, jobs.DefaultOrderCheckSchedule)

	return v, nil
}

// LoadConfig reads and checks the configuration.
func LoadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		HTTPPort:           v.GetString(KeyHTTPPort),
		DBDriver:           strings.ToLower(v.GetString(KeyDBDriver)),
		DBHost:             v.GetString(KeyDBHost),
		DBPort:             v.GetString(KeyDBPort),
		DBUser:             v.GetString(KeyDBUser),
		DBPassword:         v.GetString(KeyDBPassword),
		DBName:             v.GetString(KeyDBName),
		DBSslMode:          v.GetString(KeyDBSslMode),
		SQLitePath:         v.GetString(KeySQLitePath),
		LogLevel:           v.GetString(KeyLogLevel),
		LogFormat:          strings.ToLower(v.GetString(KeyLogFormat)),
		OrderCheckSchedule: v.GetString(KeyOrderCheckSchedule),
	}

	if _, err := cfg.slogLevel(); err != nil {
		return Config{}, err
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownLogFormat, cfg.LogFormat)
	}
	if cfg.DBDriver != persistence.DriverPostgres && cfg.DBDriver != persistence.DriverSQLite {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownDBDriver, cfg.DBDriver)
	}

	return cfg, nil
}

// DatabaseOptions addresses the configured database. gorm logs SQL only at
// debug level.
func (c Config) DatabaseOptions() persistence.Options {
	opts := persistence.Options{Driver: c.DBDriver, LogLevel: logger.Warn}
	if level, _ := c.slogLevel(); level <= slog.LevelDebug {
		opts.LogLevel = logger.Info
	}

	switch c.DBDriver {
	case persistence.DriverSQLite:
		opts.DSN = c.SQLitePath
	default:
		opts.DSN = persistence.PostgresDSN(c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
	}
	return opts
}

// NewLogger builds the application logger writing to w.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, _ := c.slogLevel()
	options := &slog.HandlerOptions{Level: level}

	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, options))
	}
	return slog.New(slog.NewTextHandler(w, options))
}

// EchoLogLevel maps LOG_LEVEL onto echo's gommon logger.
func (c Config) EchoLogLevel() log.Lvl {
	level, _ := c.slogLevel()
	switch {
	case level <= slog.LevelDebug:
		return log.DEBUG
	case level <= slog.LevelInfo:
		return log.INFO
	case level <= slog.LevelWarn:
		return log.WARN
	default:
		return log.ERROR
	}
}

func (c Config) slogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}
	return level, nil
}
