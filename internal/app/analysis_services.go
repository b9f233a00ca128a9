package app

import (
	"context"
	"fmt"
	"math/big"
	"runtime"
	"slices"
	"time"

	"github.com/jakenef/project-rsa/internal/domain/analysis"
	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
	"github.com/jakenef/project-rsa/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// analysisService implements the analysis Service interface with an RSAProcessor
type analysisService struct {
	rsaProcessor cryptoalg.RSAProcessor
	logger       logger.Logger
}

// NewAnalysisService creates a new analysisService instance
func NewAnalysisService(rsaProcessor cryptoalg.RSAProcessor, logger logger.Logger) (analysis.Service, error) {
	if rsaProcessor == nil {
		return nil, fmt.Errorf("rsa processor cannot be nil")
	}
	return &analysisService{
		rsaProcessor: rsaProcessor,
		logger:       logger,
	}, nil
}

// CarmichaelExperiment counts how often Fermat and Miller-Rabin accept number, a
// known Carmichael number, for every round count from 1 to maxRounds.
func (s *analysisService) CarmichaelExperiment(ctx context.Context, number int64, maxRounds, trials int) (*analysis.FalsePositiveReport, error) {
	if !slices.Contains(cryptoalg.CarmichaelNumbers(), number) {
		return nil, fmt.Errorf("%d is not one of the known Carmichael numbers %v", number, cryptoalg.CarmichaelNumbers())
	}
	if maxRounds < 1 {
		return nil, fmt.Errorf("max rounds must be at least 1, got %d", maxRounds)
	}
	if trials < 1 {
		return nil, fmt.Errorf("trials must be at least 1, got %d", trials)
	}

	n := big.NewInt(number)
	rates := make([]analysis.FalsePositiveRate, maxRounds)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for k := 1; k <= maxRounds; k++ {
		k := k
		group.Go(func() error {
			fermat, err := s.acceptanceRate(groupCtx, n, cryptoalg.PrimalityTestFermat, k, trials)
			if err != nil {
				return err
			}
			millerRabin, err := s.acceptanceRate(groupCtx, n, cryptoalg.PrimalityTestMillerRabin, k, trials)
			if err != nil {
				return err
			}
			rates[k-1] = analysis.FalsePositiveRate{Rounds: k, Fermat: fermat, MillerRabin: millerRabin}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Carmichael experiment on %d finished: %d round counts, %d trials each", number, maxRounds, trials))
	return &analysis.FalsePositiveReport{
		Number:    number,
		MaxRounds: maxRounds,
		Trials:    trials,
		Rates:     rates,
	}, nil
}

// acceptanceRate is the share of trials in which test declared n probably prime.
func (s *analysisService) acceptanceRate(ctx context.Context, n *big.Int, test cryptoalg.PrimalityTest, rounds, trials int) (float64, error) {
	accepted := 0
	for i := 0; i < trials; i++ {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("experiment cancelled: %w", err)
		}
		ok, err := s.rsaProcessor.IsProbablyPrime(n, test, rounds)
		if err != nil {
			return 0, fmt.Errorf("failed to run %s test: %w", test, err)
		}
		if ok {
			accepted++
		}
	}
	return float64(accepted) / float64(trials), nil
}

// BenchmarkPrimeGeneration times runs prime searches for every size in bits.
func (s *analysisService) BenchmarkPrimeGeneration(ctx context.Context, bits []int, runs int) ([]*analysis.BenchmarkResult, error) {
	return s.benchmark(ctx, analysis.OperationGeneratePrime, bits, runs, func(b int) error {
		_, err := s.rsaProcessor.GeneratePrime(ctx, b)
		return err
	})
}

// BenchmarkKeyPairGeneration times runs key pair generations for every prime size in bits.
func (s *analysisService) BenchmarkKeyPairGeneration(ctx context.Context, bits []int, runs int) ([]*analysis.BenchmarkResult, error) {
	return s.benchmark(ctx, analysis.OperationGenerateKeyPair, bits, runs, func(b int) error {
		_, err := s.rsaProcessor.GenerateKeys(ctx, b)
		return err
	})
}

// benchmark runs are sequential so that they do not compete for CPU time.
func (s *analysisService) benchmark(ctx context.Context, operation string, bits []int, runs int, fn func(bits int) error) ([]*analysis.BenchmarkResult, error) {
	if len(bits) == 0 {
		return nil, fmt.Errorf("at least one bit size is required")
	}
	if runs < 1 {
		return nil, fmt.Errorf("runs must be at least 1, got %d", runs)
	}

	results := make([]*analysis.BenchmarkResult, 0, len(bits))
	for _, b := range bits {
		times := make([]time.Duration, 0, runs)
		for i := 0; i < runs; i++ {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("benchmark cancelled: %w", err)
			}
			start := time.Now()
			if err := fn(b); err != nil {
				return nil, fmt.Errorf("%s with %d bits failed: %w", operation, b, err)
			}
			times = append(times, time.Since(start))
		}

		result := analysis.NewBenchmarkResult(operation, b, times)
		s.logger.Info(fmt.Sprintf("Benchmark %s %d bits: avg %.3f ms, min %.3f ms, max %.3f ms",
			operation, b, result.AverageMs, result.MinMs, result.MaxMs))
		results = append(results, result)
	}
	return results, nil
}
