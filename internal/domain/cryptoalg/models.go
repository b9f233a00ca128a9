package cryptoalg

import (
	"fmt"
	"math/big"
)

// PublicKey is the (modulus, public exponent) half of a key pair.
type PublicKey struct {
	Modulus  *big.Int
	Exponent *big.Int
}

// PrivateKey is the (modulus, private exponent) half of a key pair.
type PrivateKey struct {
	Modulus  *big.Int
	Exponent *big.Int
}

// KeyPair holds both halves of a generated key. Both share the same modulus.
type KeyPair struct {
	Public  PublicKey
	Private PrivateKey
}

// ChunkLayout fixes how a byte stream is cut for a given modulus.
// ChunkSize is the plaintext width and is strictly smaller than BlockSize, the
// ciphertext width, so every chunk value is below the modulus.
type ChunkLayout struct {
	ChunkSize int
	BlockSize int
}

// NewChunkLayout derives the layout of modulus.
func NewChunkLayout(modulus *big.Int) (ChunkLayout, error) {
	if modulus == nil || modulus.Sign() <= 0 {
		return ChunkLayout{}, Errorf("NewChunkLayout", ErrInvalidModulus, "modulus must be positive")
	}
	bits := modulus.BitLen()
	if bits < MinModulusBits {
		return ChunkLayout{}, Errorf("NewChunkLayout", ErrInvalidModulus,
			"modulus has %d bits, at least %d required", bits, MinModulusBits)
	}
	return ChunkLayout{
		ChunkSize: (bits - 1) / 8,
		BlockSize: (bits + 7) / 8,
	}, nil
}

// Layout returns the chunk layout of the key's modulus.
func (k *PublicKey) Layout() (ChunkLayout, error) {
	if err := k.Validate(); err != nil {
		return ChunkLayout{}, err
	}
	return NewChunkLayout(k.Modulus)
}

// Validate checks that both components are present and positive.
func (k *PublicKey) Validate() error {
	if k == nil {
		return Errorf("Validate", ErrNilKey, "public key is nil")
	}
	return validateComponents("public key", k.Modulus, k.Exponent)
}

// Layout returns the chunk layout of the key's modulus.
func (k *PrivateKey) Layout() (ChunkLayout, error) {
	if err := k.Validate(); err != nil {
		return ChunkLayout{}, err
	}
	return NewChunkLayout(k.Modulus)
}

// Validate checks that both components are present and positive.
func (k *PrivateKey) Validate() error {
	if k == nil {
		return Errorf("Validate", ErrNilKey, "private key is nil")
	}
	return validateComponents("private key", k.Modulus, k.Exponent)
}

// ModulusBits returns the bit length of the shared modulus.
func (kp *KeyPair) ModulusBits() int {
	if kp == nil || kp.Public.Modulus == nil {
		return 0
	}
	return kp.Public.Modulus.BitLen()
}

func validateComponents(kind string, modulus, exponent *big.Int) error {
	if modulus == nil || exponent == nil {
		return Errorf("Validate", ErrNilKey, "%s is missing modulus or exponent", kind)
	}
	if modulus.Sign() <= 0 || exponent.Sign() <= 0 {
		return Errorf("Validate", ErrNilKey, "%s components must be positive", kind)
	}
	return nil
}

// String prints the key without its exponent.
func (k *PrivateKey) String() string {
	if k == nil || k.Modulus == nil {
		return "PrivateKey<nil>"
	}
	return fmt.Sprintf("PrivateKey<%d-bit modulus>", k.Modulus.BitLen())
}
