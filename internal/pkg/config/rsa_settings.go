package config

import (
	"fmt"

	"github.com/jakenef/project-rsa/internal/pkg/validators"
)

// Primality test names accepted in RSASettings.PrimalityTest
const (
	PrimalityTestMillerRabin = "miller-rabin"
	PrimalityTestFermat      = "fermat"
)

// Defaults used when a setting is omitted
const (
	DefaultPrimeBits = 512
	DefaultRounds    = 20
	DefaultWorkers   = 1
)

// RSASettings controls key generation and the block cipher.
// MaxAttempts caps the number of prime candidates per search; zero means unbounded.
type RSASettings struct {
	PrimeBits     int    `mapstructure:"prime_bits" validate:"primebits"`
	Rounds        int    `mapstructure:"rounds" validate:"min=1,max=256"`
	PrimalityTest string `mapstructure:"primality_test" validate:"required,oneof=miller-rabin fermat"`
	SearchWorkers int    `mapstructure:"search_workers" validate:"min=1,max=64"`
	CipherWorkers int    `mapstructure:"cipher_workers" validate:"min=1,max=64"`
	MaxAttempts   int    `mapstructure:"max_attempts" validate:"min=0"`
}

// DefaultRSASettings returns single threaded Miller-Rabin generation of 512-bit primes.
func DefaultRSASettings() RSASettings {
	return RSASettings{
		PrimeBits:     DefaultPrimeBits,
		Rounds:        DefaultRounds,
		PrimalityTest: PrimalityTestMillerRabin,
		SearchWorkers: DefaultWorkers,
		CipherWorkers: DefaultWorkers,
	}
}

// Validate checks that all fields in RSASettings are valid
func (s *RSASettings) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to build validator: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RSASettings: %w", err)
	}
	return nil
}
