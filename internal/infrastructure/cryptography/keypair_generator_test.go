//go:build unit
// +build unit

package cryptography

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
	"github.com/jakenef/project-rsa/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrimes hands out a fixed sequence of primes regardless of the requested size
type scriptedPrimes struct {
	mu     sync.Mutex
	primes []int64
	calls  int
	err    error
}

func (s *scriptedPrimes) GenerateLargePrime(_ context.Context, _, _ int) (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	p := s.primes[s.calls%len(s.primes)]
	s.calls++
	return big.NewInt(p), nil
}

func TestGenerateKeyPair_RoundTrip(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	primes := newMillerRabinGenerator(t, 21, 1)

	generator, err := NewKeyPairGenerator(primes, cryptoalg.DefaultRounds, cryptoalg.DefaultCandidateExponents(), log)
	require.NoError(t, err)

	for _, bits := range []int{8, 16, 32, 64, 128} {
		keyPair, err := generator.GenerateKeyPair(context.Background(), bits)
		require.NoError(t, err)

		n := keyPair.Public.Modulus
		assert.Equal(t, 0, n.Cmp(keyPair.Private.Modulus))
		assert.GreaterOrEqual(t, n.BitLen(), 2*bits-1)
		assert.LessOrEqual(t, n.BitLen(), 2*bits)

		for _, m := range []int64{0, 1, 2, 42, 255} {
			msg := big.NewInt(m)
			c := modExp(msg, keyPair.Public.Exponent, n)
			back := modExp(c, keyPair.Private.Exponent, n)
			assert.Equal(t, 0, msg.Cmp(back), "bits=%d m=%d", bits, m)
		}
	}
}

func TestGenerateKeyPair_TextbookPrimes(t *testing.T) {
	primes := &scriptedPrimes{primes: []int64{61, 53}}
	generator, err := NewKeyPairGenerator(primes, 5, cryptoalg.DefaultCandidateExponents(), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	keyPair, err := generator.GenerateKeyPair(context.Background(), cryptoalg.MinPrimeBits)
	require.NoError(t, err)

	// phi = 3120 = 2^4 * 3 * 5 * 13, so 3 and 5 are skipped
	assert.Equal(t, int64(3233), keyPair.Public.Modulus.Int64())
	assert.Equal(t, int64(7), keyPair.Public.Exponent.Int64())
	assert.Equal(t, int64(1783), keyPair.Private.Exponent.Int64())
}

func TestGenerateKeyPair_RedrawsDuplicatePrime(t *testing.T) {
	primes := &scriptedPrimes{primes: []int64{61, 61, 61, 53}}
	generator, err := NewKeyPairGenerator(primes, 5, []int64{17}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	keyPair, err := generator.GenerateKeyPair(context.Background(), cryptoalg.MinPrimeBits)
	require.NoError(t, err)

	assert.Equal(t, 4, primes.calls)
	assert.Equal(t, int64(3233), keyPair.Public.Modulus.Int64())
	assert.Equal(t, int64(2753), keyPair.Private.Exponent.Int64())
}

func TestGenerateKeyPair_NoInvertibleExponent(t *testing.T) {
	tests := []struct {
		name      string
		exponents []int64
	}{
		{"shares a factor with phi", []int64{3}},
		{"exponent not below phi", []int64{3, 73}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// p = 7, q = 13 gives phi = 72
			primes := &scriptedPrimes{primes: []int64{7, 13}}
			generator, err := NewKeyPairGenerator(primes, 5, tt.exponents, testutil.SetupTestLogger(t))
			require.NoError(t, err)

			_, err = generator.GenerateKeyPair(context.Background(), cryptoalg.MinPrimeBits)
			require.Error(t, err)
			assert.True(t, errors.Is(err, cryptoalg.ErrNoInvertibleExponent))
		})
	}
}

func TestGenerateKeyPair_PrimeGeneratorError(t *testing.T) {
	primes := &scriptedPrimes{err: errors.New("entropy exhausted")}
	generator, err := NewKeyPairGenerator(primes, 5, []int64{3}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = generator.GenerateKeyPair(context.Background(), 16)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entropy exhausted")
}

func TestGenerateKeyPair_TooFewBits(t *testing.T) {
	primes := &scriptedPrimes{primes: []int64{61, 53}}
	generator, err := NewKeyPairGenerator(primes, 5, []int64{17}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = generator.GenerateKeyPair(context.Background(), cryptoalg.MinPrimeBits-1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cryptoalg.ErrInvalidBitLength))
	assert.Equal(t, 0, primes.calls)
}

func TestNewKeyPairGenerator_Invalid(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	primes := &scriptedPrimes{primes: []int64{61, 53}}

	tests := []struct {
		name      string
		primes    cryptoalg.PrimeGenerator
		rounds    int
		exponents []int64
	}{
		{"nil prime generator", nil, 5, []int64{3}},
		{"no rounds", primes, 0, []int64{3}},
		{"no exponents", primes, 5, nil},
		{"even exponent", primes, 5, []int64{3, 4}},
		{"exponent below three", primes, 5, []int64{1, 3}},
		{"not increasing", primes, 5, []int64{17, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKeyPairGenerator(tt.primes, tt.rounds, tt.exponents, log)
			assert.Error(t, err)
		})
	}
}
