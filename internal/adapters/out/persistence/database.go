// Package persistence is the GORM adapter of the catalog: database opening,
// schema migration and the Unit of Work that binds every repository to one
// transaction.
//
// PostgreSQL is the production store. SQLite serves local runs and tests;
// its pool is limited to one connection so transactions serialize the way
// the series row locks serialize them on PostgreSQL.
package persistence

import (
	"errors"
	"fmt"
	"strings"

	"catalog/internal/adapters/out/persistence/characterrepo"
	"catalog/internal/adapters/out/persistence/entryrepo"
	"catalog/internal/adapters/out/persistence/entrytyperepo"
	"catalog/internal/adapters/out/persistence/seriesrepo"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var ErrUnknownDriver = errors.New("unknown database driver")

// Options selects and addresses the database.
type Options struct {
	// Driver is DriverPostgres or DriverSQLite.
	Driver string
	// DSN is a PostgreSQL connection string or an SQLite file path.
	DSN string
	// LogLevel is the gorm logger level; zero keeps gorm silent.
	LogLevel logger.LogLevel
}

// PostgresDSN builds a key/value connection string. The session time zone is
// UTC so entry dates round-trip as UTC midnight.
func PostgresDSN(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		host, port, user, password, dbName, sslMode)
}

// Open connects to the database described by opts.
//
// Example:
//
//	db, err := persistence.Open(persistence.Options{Driver: persistence.DriverSQLite, DSN: "catalog.db"})
//	if err != nil {
//	    return err
//	}
//	if err = persistence.Migrate(db); err != nil {
//	    return err
//	}
func Open(opts Options) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch opts.Driver {
	case DriverPostgres:
		dialector = postgres.Open(opts.DSN)
	case DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(opts.DSN))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, opts.Driver)
	}

	level := opts.LogLevel
	if level == 0 {
		level = logger.Silent
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", opts.Driver, err)
	}

	if opts.Driver == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Migrate creates or updates every catalog table, parents first.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&seriesrepo.SeriesDTO{},
		&entrytyperepo.EntryTypeDTO{},
		&entryrepo.EntryDTO{},
		&characterrepo.CharacterDTO{},
		&characterrepo.InfoDTO{},
	)
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// sqliteDSN enables foreign keys, which SQLite leaves off per connection.
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}
