package cryptography

import (
	"context"
	"fmt"
	"math/big"
	"sync/atomic"

	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
	"golang.org/x/sync/errgroup"
)

// primeGenerator samples odd candidates with the top bit set and keeps the first
// one that passes the tester. Several workers may search at once; the first hit wins.
type primeGenerator struct {
	tester      cryptoalg.PrimalityTester
	random      cryptoalg.RandomSource
	workers     int
	maxAttempts int64
}

// NewPrimeGenerator creates a PrimeGenerator. workers is the number of concurrent
// search loops. maxAttempts caps the candidates drawn per call across all workers;
// zero leaves the search unbounded.
func NewPrimeGenerator(tester cryptoalg.PrimalityTester, random cryptoalg.RandomSource, workers, maxAttempts int) (cryptoalg.PrimeGenerator, error) {
	if tester == nil {
		return nil, fmt.Errorf("primality tester cannot be nil")
	}
	if random == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	if workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", workers)
	}
	if maxAttempts < 0 {
		return nil, fmt.Errorf("max attempts must not be negative, got %d", maxAttempts)
	}
	return &primeGenerator{
		tester:      tester,
		random:      random,
		workers:     workers,
		maxAttempts: int64(maxAttempts),
	}, nil
}

// GenerateLargePrime returns a prime of exactly bits bits.
func (g *primeGenerator) GenerateLargePrime(ctx context.Context, bits, rounds int) (*big.Int, error) {
	if bits < 2 {
		return nil, cryptoalg.Errorf("GenerateLargePrime", cryptoalg.ErrInvalidBitLength, "need at least 2 bits, got %d", bits)
	}
	if rounds < 1 {
		return nil, cryptoalg.Errorf("GenerateLargePrime", cryptoalg.ErrInvalidOperand, "rounds must be at least 1, got %d", rounds)
	}

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, groupCtx := errgroup.WithContext(searchCtx)
	found := make(chan *big.Int, g.workers)
	var attempts atomic.Int64

	for i := 0; i < g.workers; i++ {
		group.Go(func() error {
			for groupCtx.Err() == nil {
				if g.maxAttempts > 0 && attempts.Add(1) > g.maxAttempts {
					return cryptoalg.Errorf("GenerateLargePrime", cryptoalg.ErrCompositeCandidateExhausted,
						"no %d-bit prime within %d candidates", bits, g.maxAttempts)
				}

				candidate, err := randomOddWithBits(g.random, bits)
				if err != nil {
					return fmt.Errorf("failed to sample candidate: %w", err)
				}
				prime, err := g.tester.IsProbablyPrime(candidate, rounds)
				if err != nil {
					return fmt.Errorf("failed to test candidate: %w", err)
				}
				if prime {
					found <- candidate
					cancel()
					return nil
				}
			}
			return nil
		})
	}

	err := group.Wait()

	// a prime found by one worker wins over an error raised by another
	select {
	case p := <-found:
		return p, nil
	default:
	}
	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("prime search cancelled: %w", ctx.Err())
}
