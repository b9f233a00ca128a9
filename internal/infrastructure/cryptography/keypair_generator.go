package cryptography

import (
	"context"
	"fmt"
	"math/big"

	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
	"github.com/jakenef/project-rsa/internal/pkg/logger"
)

// keyPairGenerator draws two distinct primes and picks the first candidate public
// exponent that is invertible modulo phi.
type keyPairGenerator struct {
	primes    cryptoalg.PrimeGenerator
	rounds    int
	exponents []*big.Int
	logger    logger.Logger
}

// NewKeyPairGenerator creates a KeyPairGenerator. exponents lists the candidate
// public exponents; they must be odd, at least 3 and strictly increasing.
func NewKeyPairGenerator(primes cryptoalg.PrimeGenerator, rounds int, exponents []int64, logger logger.Logger) (cryptoalg.KeyPairGenerator, error) {
	if primes == nil {
		return nil, fmt.Errorf("prime generator cannot be nil")
	}
	if rounds < 1 {
		return nil, fmt.Errorf("rounds must be at least 1, got %d", rounds)
	}
	if len(exponents) == 0 {
		return nil, fmt.Errorf("candidate exponent list cannot be empty")
	}

	candidates := make([]*big.Int, len(exponents))
	for i, e := range exponents {
		if e < 3 || e%2 == 0 {
			return nil, fmt.Errorf("candidate exponent %d must be odd and at least 3", e)
		}
		if i > 0 && e <= exponents[i-1] {
			return nil, fmt.Errorf("candidate exponents must be strictly increasing, %d follows %d", e, exponents[i-1])
		}
		candidates[i] = big.NewInt(e)
	}

	return &keyPairGenerator{
		primes:    primes,
		rounds:    rounds,
		exponents: candidates,
		logger:    logger,
	}, nil
}

// GenerateKeyPair returns a key pair whose modulus is the product of two distinct
// primeBits-bit primes.
func (g *keyPairGenerator) GenerateKeyPair(ctx context.Context, primeBits int) (*cryptoalg.KeyPair, error) {
	if primeBits < cryptoalg.MinPrimeBits {
		return nil, cryptoalg.Errorf("GenerateKeyPair", cryptoalg.ErrInvalidBitLength,
			"primes need at least %d bits, got %d", cryptoalg.MinPrimeBits, primeBits)
	}

	p, err := g.primes.GenerateLargePrime(ctx, primeBits, g.rounds)
	if err != nil {
		return nil, fmt.Errorf("failed to generate p: %w", err)
	}

	var q *big.Int
	for {
		q, err = g.primes.GenerateLargePrime(ctx, primeBits, g.rounds)
		if err != nil {
			return nil, fmt.Errorf("failed to generate q: %w", err)
		}
		if q.Cmp(p) != 0 {
			break
		}
		g.logger.Debug("Sampled q equal to p, drawing again")
	}

	modulus := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(new(big.Int).Sub(p, bigOne), new(big.Int).Sub(q, bigOne))

	e, d, err := g.selectExponents(phi)
	if err != nil {
		return nil, err
	}

	return &cryptoalg.KeyPair{
		Public:  cryptoalg.PublicKey{Modulus: modulus, Exponent: e},
		Private: cryptoalg.PrivateKey{Modulus: new(big.Int).Set(modulus), Exponent: d},
	}, nil
}

// selectExponents scans the candidates in order and returns the first e coprime
// to phi together with d = y mod phi from extended_gcd(phi, e).
func (g *keyPairGenerator) selectExponents(phi *big.Int) (e, d *big.Int, err error) {
	for _, candidate := range g.exponents {
		if candidate.Cmp(phi) >= 0 {
			break
		}
		_, y, gcd := extendedGCD(phi, candidate)
		if gcd.Cmp(bigOne) != 0 {
			continue
		}
		return new(big.Int).Set(candidate), y.Mod(y, phi), nil
	}
	return nil, nil, cryptoalg.Errorf("GenerateKeyPair", cryptoalg.ErrNoInvertibleExponent,
		"none of %d candidate exponents is coprime to phi", len(g.exponents))
}
