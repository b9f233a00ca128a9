package cryptography

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
	"github.com/jakenef/project-rsa/internal/pkg/config"
	"github.com/jakenef/project-rsa/internal/pkg/logger"
)

// rsaProcessor wires the generators, testers and cipher behind the RSAProcessor interface
type rsaProcessor struct {
	settings config.RSASettings
	random   cryptoalg.RandomSource
	primes   cryptoalg.PrimeGenerator
	keys     cryptoalg.KeyPairGenerator
	cipher   cryptoalg.BlockCipher
	logger   logger.Logger
}

// NewRSAProcessor creates an RSAProcessor from validated settings. A nil random
// source selects crypto/rand.
func NewRSAProcessor(settings *config.RSASettings, random cryptoalg.RandomSource, logger logger.Logger) (cryptoalg.RSAProcessor, error) {
	if settings == nil {
		return nil, fmt.Errorf("rsa settings cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rsa settings: %w", err)
	}
	if random == nil {
		random = NewCryptoSource()
	}

	tester, err := NewPrimalityTester(cryptoalg.PrimalityTest(settings.PrimalityTest), random)
	if err != nil {
		return nil, fmt.Errorf("failed to create primality tester: %w", err)
	}

	primes, err := NewPrimeGenerator(tester, random, settings.SearchWorkers, settings.MaxAttempts)
	if err != nil {
		return nil, fmt.Errorf("failed to create prime generator: %w", err)
	}

	keys, err := NewKeyPairGenerator(primes, settings.Rounds, cryptoalg.DefaultCandidateExponents(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair generator: %w", err)
	}

	cipher, err := NewBlockCipher(settings.CipherWorkers)
	if err != nil {
		return nil, fmt.Errorf("failed to create block cipher: %w", err)
	}

	return &rsaProcessor{
		settings: *settings,
		random:   random,
		primes:   primes,
		keys:     keys,
		cipher:   cipher,
		logger:   logger,
	}, nil
}

// GenerateKeys generates a key pair from two primes of primeBits bits each.
func (r *rsaProcessor) GenerateKeys(ctx context.Context, primeBits int) (*cryptoalg.KeyPair, error) {
	keyPair, err := r.keys.GenerateKeyPair(ctx, primeBits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}
	r.logger.Info(fmt.Sprintf("Generated RSA key pair with %d-bit modulus and e=%s",
		keyPair.ModulusBits(), keyPair.Public.Exponent))
	return keyPair, nil
}

// GeneratePrime returns a random prime of exactly bits bits.
func (r *rsaProcessor) GeneratePrime(ctx context.Context, bits int) (*big.Int, error) {
	prime, err := r.primes.GenerateLargePrime(ctx, bits, r.settings.Rounds)
	if err != nil {
		return nil, fmt.Errorf("failed to generate prime: %w", err)
	}
	r.logger.Info(fmt.Sprintf("Generated %d-bit prime", prime.BitLen()))
	return prime, nil
}

// IsProbablyPrime runs the selected test with the given number of rounds.
func (r *rsaProcessor) IsProbablyPrime(n *big.Int, test cryptoalg.PrimalityTest, rounds int) (bool, error) {
	tester, err := NewPrimalityTester(test, r.random)
	if err != nil {
		return false, err
	}
	return tester.IsProbablyPrime(n, rounds)
}

// Encrypt encrypts plaintext chunk by chunk with the public key.
func (r *rsaProcessor) Encrypt(ctx context.Context, plainText []byte, publicKey *cryptoalg.PublicKey) ([]byte, error) {
	cipherText, err := r.cipher.Encrypt(ctx, plainText, publicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}
	r.logger.Info("RSA encryption succeeded")
	return cipherText, nil
}

// Decrypt decrypts ciphertext chunk by chunk with the private key.
func (r *rsaProcessor) Decrypt(ctx context.Context, cipherText []byte, privateKey *cryptoalg.PrivateKey) ([]byte, error) {
	plainText, err := r.cipher.Decrypt(ctx, cipherText, privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}
	r.logger.Info("RSA decryption succeeded")
	return plainText, nil
}

// SavePublicKeyToFile writes the modulus and public exponent as two decimal lines.
func (r *rsaProcessor) SavePublicKeyToFile(publicKey *cryptoalg.PublicKey, filename string) error {
	if err := publicKey.Validate(); err != nil {
		return err
	}
	if err := writeKeyFile(filename, publicKey.Modulus, publicKey.Exponent); err != nil {
		return fmt.Errorf("failed to save public key: %w", err)
	}
	r.logger.Info("Saved RSA public key ", filename)
	return nil
}

// SavePrivateKeyToFile writes the modulus and private exponent as two decimal lines.
func (r *rsaProcessor) SavePrivateKeyToFile(privateKey *cryptoalg.PrivateKey, filename string) error {
	if err := privateKey.Validate(); err != nil {
		return err
	}
	if err := writeKeyFile(filename, privateKey.Modulus, privateKey.Exponent); err != nil {
		return fmt.Errorf("failed to save private key: %w", err)
	}
	r.logger.Info("Saved RSA private key ", filename)
	return nil
}

// ReadPublicKey reads a key file written by SavePublicKeyToFile.
func (r *rsaProcessor) ReadPublicKey(publicKeyPath string) (*cryptoalg.PublicKey, error) {
	modulus, exponent, err := readKeyFile(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read public key: %w", err)
	}
	key := &cryptoalg.PublicKey{Modulus: modulus, Exponent: exponent}
	if _, err := key.Layout(); err != nil {
		return nil, fmt.Errorf("unable to use public key: %w", err)
	}
	return key, nil
}

// ReadPrivateKey reads a key file written by SavePrivateKeyToFile.
func (r *rsaProcessor) ReadPrivateKey(privateKeyPath string) (*cryptoalg.PrivateKey, error) {
	modulus, exponent, err := readKeyFile(privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read private key: %w", err)
	}
	key := &cryptoalg.PrivateKey{Modulus: modulus, Exponent: exponent}
	if _, err := key.Layout(); err != nil {
		return nil, fmt.Errorf("unable to use private key: %w", err)
	}
	return key, nil
}

func writeKeyFile(filename string, modulus, exponent *big.Int) error {
	file, err := os.OpenFile(filepath.Clean(filename), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create key file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("warning: failed to close file: %v\n", err)
		}
	}()

	if _, err := fmt.Fprintf(file, "%s\n%s\n", modulus.String(), exponent.String()); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	return nil
}

func readKeyFile(path string) (modulus, exponent *big.Int, err error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open key file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("warning: failed to close file: %v\n", err)
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("unable to read key file: %w", err)
	}
	if len(lines) != 2 {
		return nil, nil, fmt.Errorf("key file must hold exactly two lines, found %d", len(lines))
	}

	modulus, ok := new(big.Int).SetString(lines[0], 10)
	if !ok || modulus.Sign() <= 0 {
		return nil, nil, fmt.Errorf("key file modulus is not a positive decimal integer")
	}
	exponent, ok = new(big.Int).SetString(lines[1], 10)
	if !ok || exponent.Sign() <= 0 {
		return nil, nil, fmt.Errorf("key file exponent is not a positive decimal integer")
	}
	return modulus, exponent, nil
}
