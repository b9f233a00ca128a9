//go:build unit
// +build unit

package v1

import (
	"context"
	"math/big"

	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
	"github.com/jakenef/project-rsa/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

// MockKeyPairService is a mock implementation of KeyPairService
type MockKeyPairService struct {
	mock.Mock
}

func (m *MockKeyPairService) Generate(ctx context.Context, primeBits int) (*keys.KeyPairMeta, error) {
	args := m.Called(ctx, primeBits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairService) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairService) GetByID(ctx context.Context, keyPairID string) (*keys.KeyPairMeta, error) {
	args := m.Called(ctx, keyPairID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairService) DeleteByID(ctx context.Context, keyPairID string) error {
	args := m.Called(ctx, keyPairID)
	return args.Error(0)
}

// MockCipherService is a mock implementation of CipherService
type MockCipherService struct {
	mock.Mock
}

func (m *MockCipherService) Encrypt(ctx context.Context, keyPairID string, plainText []byte) ([]byte, error) {
	args := m.Called(ctx, keyPairID, plainText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCipherService) Decrypt(ctx context.Context, keyPairID string, cipherText []byte) ([]byte, error) {
	args := m.Called(ctx, keyPairID, cipherText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockRSAProcessor is a mock implementation of RSAProcessor
type MockRSAProcessor struct {
	mock.Mock
}

func (m *MockRSAProcessor) GenerateKeys(ctx context.Context, primeBits int) (*cryptoalg.KeyPair, error) {
	args := m.Called(ctx, primeBits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoalg.KeyPair), args.Error(1)
}

func (m *MockRSAProcessor) GeneratePrime(ctx context.Context, bits int) (*big.Int, error) {
	args := m.Called(ctx, bits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockRSAProcessor) IsProbablyPrime(n *big.Int, test cryptoalg.PrimalityTest, rounds int) (bool, error) {
	args := m.Called(n, test, rounds)
	return args.Bool(0), args.Error(1)
}

func (m *MockRSAProcessor) Encrypt(ctx context.Context, plainText []byte, publicKey *cryptoalg.PublicKey) ([]byte, error) {
	args := m.Called(ctx, plainText, publicKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRSAProcessor) Decrypt(ctx context.Context, cipherText []byte, privateKey *cryptoalg.PrivateKey) ([]byte, error) {
	args := m.Called(ctx, cipherText, privateKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRSAProcessor) SavePublicKeyToFile(publicKey *cryptoalg.PublicKey, filename string) error {
	args := m.Called(publicKey, filename)
	return args.Error(0)
}

func (m *MockRSAProcessor) SavePrivateKeyToFile(privateKey *cryptoalg.PrivateKey, filename string) error {
	args := m.Called(privateKey, filename)
	return args.Error(0)
}

func (m *MockRSAProcessor) ReadPublicKey(publicKeyPath string) (*cryptoalg.PublicKey, error) {
	args := m.Called(publicKeyPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoalg.PublicKey), args.Error(1)
}

func (m *MockRSAProcessor) ReadPrivateKey(privateKeyPath string) (*cryptoalg.PrivateKey, error) {
	args := m.Called(privateKeyPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoalg.PrivateKey), args.Error(1)
}
