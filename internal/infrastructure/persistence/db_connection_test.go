//go:build unit
// +build unit

package persistence

import (
	"testing"

	"github.com/jakenef/project-rsa/internal/infrastructure/persistence/models"
	"github.com/jakenef/project-rsa/internal/pkg/config"
	"github.com/jakenef/project-rsa/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDBConnection_InMemorySQLite(t *testing.T) {
	db, err := NewDBConnection(config.DatabaseSettings{Type: config.SqliteDbType}, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	defer func() { require.NoError(t, CloseDB(db)) }()

	require.NoError(t, db.AutoMigrate(&models.KeyPairModel{}))
	assert.True(t, db.Migrator().HasTable(&models.KeyPairModel{}))
}

func TestNewDBConnection_RejectsSettingsBeforeConnecting(t *testing.T) {
	tests := []struct {
		name     string
		settings config.DatabaseSettings
	}{
		{
			// no server listens here; the name check must fail first
			name: "postgres name with statement separator",
			settings: config.DatabaseSettings{
				Type: config.PostgresDbType,
				DSN:  "host=127.0.0.1 port=1 connect_timeout=1",
				Name: "rsa; DROP DATABASE postgres",
			},
		},
		{
			name:     "unsupported type",
			settings: config.DatabaseSettings{Type: "mysql", DSN: "root@tcp(localhost)/rsa"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := NewDBConnection(tt.settings, testutil.SetupTestLogger(t))
			require.Error(t, err)
			assert.Nil(t, db)
			assert.Contains(t, err.Error(), "invalid database settings")
		})
	}
}

func TestDropDatabase_RejectsNonIdentifier(t *testing.T) {
	err := DropDatabase("host=127.0.0.1 port=1 connect_timeout=1", `keys"; DROP DATABASE postgres; --`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a plain identifier")
}
