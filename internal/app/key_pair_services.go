package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
	"github.com/jakenef/project-rsa/internal/domain/keys"
	"github.com/jakenef/project-rsa/internal/pkg/logger"
	"github.com/jakenef/project-rsa/internal/pkg/validators"
)

// keyPairService implements the KeyPairService interface on top of an RSAProcessor and a KeyPairRepository
type keyPairService struct {
	keyPairRepo   keys.KeyPairRepository
	rsaProcessor  cryptoalg.RSAProcessor
	primalityTest string
	logger        logger.Logger
}

// NewKeyPairService creates a new keyPairService instance. primalityTest is recorded
// on every stored key pair and names the test the processor was configured with.
func NewKeyPairService(keyPairRepo keys.KeyPairRepository, rsaProcessor cryptoalg.RSAProcessor, primalityTest string, logger logger.Logger) (keys.KeyPairService, error) {
	if keyPairRepo == nil {
		return nil, fmt.Errorf("key pair repository cannot be nil")
	}
	if rsaProcessor == nil {
		return nil, fmt.Errorf("rsa processor cannot be nil")
	}
	return &keyPairService{
		keyPairRepo:   keyPairRepo,
		rsaProcessor:  rsaProcessor,
		primalityTest: primalityTest,
		logger:        logger,
	}, nil
}

// Generate creates a key pair from two primes of primeBits bits each and stores it.
func (s *keyPairService) Generate(ctx context.Context, primeBits int) (*keys.KeyPairMeta, error) {
	if primeBits < validators.MinPrimeBits || primeBits > validators.MaxPrimeBits {
		return nil, cryptoalg.Errorf("Generate", cryptoalg.ErrInvalidBitLength,
			"prime bits must be between %d and %d, got %d", validators.MinPrimeBits, validators.MaxPrimeBits, primeBits)
	}

	keyPair, err := s.rsaProcessor.GenerateKeys(ctx, primeBits)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	keyPairMeta, err := keys.NewKeyPairMeta(uuid.NewString(), primeBits, s.primalityTest, keyPair, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to describe key pair: %w", err)
	}

	if err := s.keyPairRepo.Create(ctx, keyPairMeta); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return keyPairMeta, nil
}

// List retrieves all key pairs based on a query.
func (s *keyPairService) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	keyPairMetas, err := s.keyPairRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return keyPairMetas, nil
}

// GetByID retrieves a key pair by its ID.
func (s *keyPairService) GetByID(ctx context.Context, keyPairID string) (*keys.KeyPairMeta, error) {
	keyPairMeta, err := s.keyPairRepo.GetByID(ctx, keyPairID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return keyPairMeta, nil
}

// DeleteByID deletes a key pair by its ID.
func (s *keyPairService) DeleteByID(ctx context.Context, keyPairID string) error {
	if err := s.keyPairRepo.DeleteByID(ctx, keyPairID); err != nil {
		return fmt.Errorf("failed to delete key pair: %w", err)
	}
	return nil
}
