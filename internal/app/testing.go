//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/jakenef/project-rsa/internal/domain/keys"
	"github.com/jakenef/project-rsa/internal/infrastructure/cryptography"
	"github.com/jakenef/project-rsa/internal/infrastructure/persistence"
	"github.com/jakenef/project-rsa/internal/pkg/config"
	"github.com/jakenef/project-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// Small primes keep the integration suite fast
const (
	TestPrimeBits = 32
	TestSeed      = 2024
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	KeyPairService keys.KeyPairService
	CipherService  keys.CipherService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	settings := config.DefaultRSASettings()
	settings.CipherWorkers = 4
	rsaProcessor, err := cryptography.NewRSAProcessor(&settings, cryptography.NewSeededSource(TestSeed), logger)
	require.NoError(t, err, "Failed to create RSA processor")

	keyPairService, err := NewKeyPairService(dbContext.KeyPairRepo, rsaProcessor, settings.PrimalityTest, logger)
	require.NoError(t, err, "Failed to create KeyPairService")

	cipherService, err := NewCipherService(dbContext.KeyPairRepo, rsaProcessor, logger)
	require.NoError(t, err, "Failed to create CipherService")

	return &TestServices{
		KeyPairService: keyPairService,
		CipherService:  cipherService,
		DBContext:      dbContext,
	}
}
