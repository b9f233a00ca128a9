package app

import (
	"context"
	"fmt"

	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
	"github.com/jakenef/project-rsa/internal/domain/keys"
	"github.com/jakenef/project-rsa/internal/pkg/logger"
)

// cipherService implements the CipherService interface with key pairs looked up by id
type cipherService struct {
	keyPairRepo  keys.KeyPairRepository
	rsaProcessor cryptoalg.RSAProcessor
	logger       logger.Logger
}

// NewCipherService creates a new cipherService instance
func NewCipherService(keyPairRepo keys.KeyPairRepository, rsaProcessor cryptoalg.RSAProcessor, logger logger.Logger) (keys.CipherService, error) {
	if keyPairRepo == nil {
		return nil, fmt.Errorf("key pair repository cannot be nil")
	}
	if rsaProcessor == nil {
		return nil, fmt.Errorf("rsa processor cannot be nil")
	}
	return &cipherService{
		keyPairRepo:  keyPairRepo,
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

// Encrypt encrypts plainText with the public half of the key pair.
func (s *cipherService) Encrypt(ctx context.Context, keyPairID string, plainText []byte) ([]byte, error) {
	keyPairMeta, err := s.keyPairRepo.GetByID(ctx, keyPairID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	publicKey, err := keyPairMeta.PublicKey()
	if err != nil {
		return nil, fmt.Errorf("failed to load public key: %w", err)
	}

	cipherText, err := s.rsaProcessor.Encrypt(ctx, plainText, publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info(fmt.Sprintf("Encrypted %d bytes with key pair %s", len(plainText), keyPairID))
	return cipherText, nil
}

// Decrypt decrypts cipherText with the private half of the key pair.
func (s *cipherService) Decrypt(ctx context.Context, keyPairID string, cipherText []byte) ([]byte, error) {
	keyPairMeta, err := s.keyPairRepo.GetByID(ctx, keyPairID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	privateKey, err := keyPairMeta.PrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to load private key: %w", err)
	}

	plainText, err := s.rsaProcessor.Decrypt(ctx, cipherText, privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info(fmt.Sprintf("Decrypted %d bytes with key pair %s", len(cipherText), keyPairID))
	return plainText, nil
}
