package cryptography

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mathrand "math/rand"
	"sync"

	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
)

// cryptoSource draws from the operating system CSPRNG.
type cryptoSource struct{}

// NewCryptoSource returns a RandomSource backed by crypto/rand.
func NewCryptoSource() cryptoalg.RandomSource {
	return cryptoSource{}
}

func (cryptoSource) Int(max *big.Int) (*big.Int, error) {
	if max == nil || max.Sign() <= 0 {
		return nil, cryptoalg.Errorf("Int", cryptoalg.ErrInvalidOperand, "max must be positive")
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return nil, fmt.Errorf("failed to read random value: %w", err)
	}
	return n, nil
}

// seededSource is a reproducible source for tests. The mutex serialises access to
// the underlying math/rand generator, which is not safe for concurrent use.
type seededSource struct {
	mu  sync.Mutex
	rnd *mathrand.Rand
}

// NewSeededSource returns a deterministic RandomSource. It must never be used for real keys.
func NewSeededSource(seed int64) cryptoalg.RandomSource {
	return &seededSource{rnd: mathrand.New(mathrand.NewSource(seed))}
}

func (s *seededSource) Int(max *big.Int) (*big.Int, error) {
	if max == nil || max.Sign() <= 0 {
		return nil, cryptoalg.Errorf("Int", cryptoalg.ErrInvalidOperand, "max must be positive")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return new(big.Int).Rand(s.rnd, max), nil
}

// randomInRange returns a uniform value in [lo, hi].
func randomInRange(src cryptoalg.RandomSource, lo, hi *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, bigOne)
	n, err := src.Int(span)
	if err != nil {
		return nil, err
	}
	return n.Add(n, lo), nil
}

// randomOddWithBits returns a uniform odd value with exactly bits bits.
func randomOddWithBits(src cryptoalg.RandomSource, bits int) (*big.Int, error) {
	limit := new(big.Int).Lsh(bigOne, uint(bits))
	n, err := src.Int(limit)
	if err != nil {
		return nil, err
	}
	n.SetBit(n, bits-1, 1)
	n.SetBit(n, 0, 1)
	return n, nil
}
