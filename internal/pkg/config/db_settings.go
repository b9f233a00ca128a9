package config

import (
	"fmt"

	"github.com/jakenef/project-rsa/internal/pkg/validators"
)

// Supported database types
const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
)

// DatabaseSettings describes where key pair metadata is stored.
// For sqlite an empty DSN selects an in-memory database.
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=sqlite postgres"`
	DSN  string `mapstructure:"dsn"`
	Name string `mapstructure:"name" validate:"omitempty,dbname"`
}

// DefaultDatabaseSettings returns a file backed sqlite store.
func DefaultDatabaseSettings() DatabaseSettings {
	return DatabaseSettings{
		Type: SqliteDbType,
		DSN:  "project-rsa.db",
	}
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to build validator: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.Type == PostgresDbType {
		if s.DSN == "" {
			return fmt.Errorf("dsn is required for postgres")
		}
		if s.Name == "" {
			return fmt.Errorf("database name is required for postgres")
		}
	}

	return nil
}
