package cryptoalg

import (
	"context"
	"math/big"
)

// RandomSource supplies uniformly distributed integers for candidate sampling and
// primality witnesses. Implementations must be safe for concurrent use.
type RandomSource interface {
	// Int returns a uniform value in [0, max). max must be positive.
	Int(max *big.Int) (*big.Int, error)
}

// PrimalityTester decides whether n is probably prime using rounds random witnesses.
// A true prime is never rejected.
type PrimalityTester interface {
	IsProbablyPrime(n *big.Int, rounds int) (bool, error)
}

// PrimeGenerator samples random primes of an exact bit length.
type PrimeGenerator interface {
	// GenerateLargePrime returns a prime with exactly bits bits that passed rounds
	// witness rounds. The search stops early when ctx is done.
	GenerateLargePrime(ctx context.Context, bits, rounds int) (*big.Int, error)
}

// KeyPairGenerator builds RSA key pairs from two fresh primes of primeBits bits each.
type KeyPairGenerator interface {
	GenerateKeyPair(ctx context.Context, primeBits int) (*KeyPair, error)
}

// BlockCipher encrypts and decrypts byte slices chunk by chunk.
// Either call returns the full result or an error, never a partial output.
type BlockCipher interface {
	Encrypt(ctx context.Context, plainText []byte, publicKey *PublicKey) ([]byte, error)
	Decrypt(ctx context.Context, cipherText []byte, privateKey *PrivateKey) ([]byte, error)
}

// RSAProcessor handles the textbook RSA operations exposed to the CLI and the API.
type RSAProcessor interface {
	// GenerateKeys generates a key pair from two primes of primeBits bits each.
	GenerateKeys(ctx context.Context, primeBits int) (*KeyPair, error)

	// GeneratePrime returns a random prime of exactly bits bits.
	GeneratePrime(ctx context.Context, bits int) (*big.Int, error)

	// IsProbablyPrime runs the selected test with the given number of rounds.
	IsProbablyPrime(n *big.Int, test PrimalityTest, rounds int) (bool, error)

	// Encrypt encrypts plaintext with the public key.
	Encrypt(ctx context.Context, plainText []byte, publicKey *PublicKey) ([]byte, error)

	// Decrypt decrypts ciphertext with the private key.
	Decrypt(ctx context.Context, cipherText []byte, privateKey *PrivateKey) ([]byte, error)

	// SavePublicKeyToFile writes the modulus and public exponent as two decimal lines.
	SavePublicKeyToFile(publicKey *PublicKey, filename string) error

	// SavePrivateKeyToFile writes the modulus and private exponent as two decimal lines.
	SavePrivateKeyToFile(privateKey *PrivateKey, filename string) error

	// ReadPublicKey reads a key file written by SavePublicKeyToFile.
	ReadPublicKey(publicKeyPath string) (*PublicKey, error)

	// ReadPrivateKey reads a key file written by SavePrivateKeyToFile.
	ReadPrivateKey(privateKeyPath string) (*PrivateKey, error)
}
