package keys

import (
	"context"
	"errors"
)

// ErrKeyPairNotFound is returned when no key pair has the requested id.
var ErrKeyPairNotFound = errors.New("key pair not found")

// KeyPairService defines methods for generating and managing stored key pairs.
type KeyPairService interface {
	// Generate creates a key pair from two primes of primeBits bits each and stores it.
	// It returns the stored KeyPairMeta and any error encountered.
	Generate(ctx context.Context, primeBits int) (*KeyPairMeta, error)

	// List retrieves all key pairs considering a query filter when set.
	List(ctx context.Context, query *KeyPairQuery) ([]*KeyPairMeta, error)

	// GetByID retrieves a key pair by its unique ID.
	GetByID(ctx context.Context, keyPairID string) (*KeyPairMeta, error)

	// DeleteByID deletes a key pair by its unique ID.
	DeleteByID(ctx context.Context, keyPairID string) error
}

// CipherService encrypts and decrypts payloads with stored key pairs.
type CipherService interface {
	// Encrypt encrypts plainText with the public half of the key pair.
	Encrypt(ctx context.Context, keyPairID string, plainText []byte) ([]byte, error)

	// Decrypt decrypts cipherText with the private half of the key pair.
	Decrypt(ctx context.Context, keyPairID string, cipherText []byte) ([]byte, error)
}

// KeyPairRepository defines the interface for KeyPair-related operations
type KeyPairRepository interface {
	Create(ctx context.Context, keyPair *KeyPairMeta) error
	List(ctx context.Context, query *KeyPairQuery) ([]*KeyPairMeta, error)
	GetByID(ctx context.Context, keyPairID string) (*KeyPairMeta, error)
	DeleteByID(ctx context.Context, keyPairID string) error
}
