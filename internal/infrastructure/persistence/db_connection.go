package persistence

import (
	"fmt"
	"log"

	"github.com/jakenef/project-rsa/internal/pkg/config"
	"github.com/jakenef/project-rsa/internal/pkg/logger"
	"github.com/jakenef/project-rsa/internal/pkg/validators"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDBConnection opens the key pair store described by settings.
// For postgres the named database is created when it does not exist yet.
func NewDBConnection(settings config.DatabaseSettings, logger logger.Logger) (*gorm.DB, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database settings: %w", err)
	}

	var db *gorm.DB
	var err error

	switch settings.Type {
	case config.PostgresDbType:
		db, err = connectPostgres(settings, logger)
	case config.SqliteDbType:
		db, err = connectSQLite(settings)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}

	if err != nil {
		return nil, err
	}

	logger.Info("Connected to ", settings.Type, " key pair store")
	return db, nil
}

// connectPostgres connects to the server, ensures settings.Name exists, then reconnects to it
func connectPostgres(settings config.DatabaseSettings, logger logger.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(settings.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	if err := ensureDatabase(db, settings.Name, logger); err != nil {
		_ = CloseDB(db)
		return nil, err
	}

	if err := CloseDB(db); err != nil {
		return nil, fmt.Errorf("failed to close initial DB connection: %w", err)
	}

	dsn := fmt.Sprintf("%s dbname=%s", settings.DSN, settings.Name)
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database '%s': %w", settings.Name, err)
	}
	return db, nil
}

// ensureDatabase creates name unless pg_database already lists it.
// CREATE DATABASE takes no bind parameters, so name must be a plain identifier.
func ensureDatabase(db *gorm.DB, name string, logger logger.Logger) error {
	if !validators.IsDatabaseName(name) {
		return fmt.Errorf("database name %q is not a plain identifier", name)
	}

	var count int64
	if err := db.Raw("SELECT count(*) FROM pg_database WHERE datname = ?", name).Scan(&count).Error; err != nil {
		return fmt.Errorf("failed to look up database '%s': %w", name, err)
	}
	if count > 0 {
		return nil
	}

	if err := db.Exec(fmt.Sprintf("CREATE DATABASE %q", name)).Error; err != nil {
		return fmt.Errorf("failed to create database '%s': %w", name, err)
	}
	logger.Info("Created database ", name)
	return nil
}

// connectSQLite opens settings.DSN, or an in-memory database when it is empty
func connectSQLite(settings config.DatabaseSettings) (*gorm.DB, error) {
	dsn := settings.DSN
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	return db, nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// DropDatabase drops a PostgreSQL database (test cleanup utility)
func DropDatabase(adminDSN, dbName string) error {
	if !validators.IsDatabaseName(dbName) {
		return fmt.Errorf("database name %q is not a plain identifier", dbName)
	}

	db, err := gorm.Open(postgres.Open(adminDSN), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer func() {
		if err := CloseDB(db); err != nil {
			log.Printf("Warning: failed to close database connection: %v", err)
		}
	}()

	if err := db.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %q", dbName)).Error; err != nil {
		return fmt.Errorf("failed to drop database '%s': %w", dbName, err)
	}

	return nil
}
