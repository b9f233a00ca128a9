//go:build integration
// +build integration

package persistence

import (
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
	"github.com/jakenef/project-rsa/internal/domain/keys"
	"github.com/jakenef/project-rsa/internal/infrastructure/persistence/models"
	"github.com/jakenef/project-rsa/internal/pkg/config"
	"github.com/jakenef/project-rsa/internal/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Test constants
const (
	TestPrimeBits8  = 8
	TestPrimeBits16 = 16

	TestPrimalityTestMillerRabin = "miller-rabin"
	TestPrimalityTestFermat      = "fermat"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	KeyPairRepo keys.KeyPairRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = db.AutoMigrate(&models.KeyPairModel{})
	require.NoError(t, err, "Failed to migrate schema")

	keyPairRepo, err := NewGormKeyPairRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create key pair repository")

	return &TestContext{
		DB:          db,
		KeyPairRepo: keyPairRepo,
	}
}

// CreateTestKeyPair creates a stored key pair around the p = 61, q = 53 textbook key
func CreateTestKeyPair(t *testing.T) *keys.KeyPairMeta {
	t.Helper()
	return CreateTestKeyPairWithOptions(t, TestPrimeBits8, TestPrimalityTestMillerRabin, time.Now())
}

// CreateTestKeyPairWithOptions creates a test key pair with custom options
func CreateTestKeyPairWithOptions(t *testing.T, primeBits int, primalityTest string, created time.Time) *keys.KeyPairMeta {
	t.Helper()

	keyPair := &cryptoalg.KeyPair{
		Public:  cryptoalg.PublicKey{Modulus: big.NewInt(3233), Exponent: big.NewInt(17)},
		Private: cryptoalg.PrivateKey{Modulus: big.NewInt(3233), Exponent: big.NewInt(2753)},
	}

	meta, err := keys.NewKeyPairMeta(uuid.NewString(), primeBits, primalityTest, keyPair, created)
	require.NoError(t, err)
	return meta
}
