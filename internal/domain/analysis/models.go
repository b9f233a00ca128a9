package analysis

import (
	"context"
	"time"
)

// FalsePositiveRate is the share of trials in which a composite passed a test run with Rounds witnesses.
type FalsePositiveRate struct {
	Rounds      int     `json:"rounds"`
	Fermat      float64 `json:"fermat"`
	MillerRabin float64 `json:"miller_rabin"`
}

// FalsePositiveReport collects the rates for rounds 1..MaxRounds on a single composite.
type FalsePositiveReport struct {
	Number    int64               `json:"number"`
	MaxRounds int                 `json:"max_rounds"`
	Trials    int                 `json:"trials"`
	Rates     []FalsePositiveRate `json:"rates"`
}

// Benchmark operations
const (
	OperationGeneratePrime   = "generate-prime"
	OperationGenerateKeyPair = "generate-key-pair"
)

// BenchmarkResult summarises repeated timings of one operation at one bit size.
type BenchmarkResult struct {
	Operation string          `json:"operation"`
	Bits      int             `json:"bits"`
	Runs      int             `json:"runs"`
	Times     []time.Duration `json:"-"`
	AverageMs float64         `json:"average_ms"`
	MinMs     float64         `json:"min_ms"`
	MaxMs     float64         `json:"max_ms"`
}

// NewBenchmarkResult derives the summary figures from the individual run times.
func NewBenchmarkResult(operation string, bits int, times []time.Duration) *BenchmarkResult {
	result := &BenchmarkResult{
		Operation: operation,
		Bits:      bits,
		Runs:      len(times),
		Times:     times,
	}
	if len(times) == 0 {
		return result
	}

	lo, hi, total := times[0], times[0], time.Duration(0)
	for _, d := range times {
		total += d
		lo = min(lo, d)
		hi = max(hi, d)
	}
	result.AverageMs = milliseconds(total) / float64(len(times))
	result.MinMs = milliseconds(lo)
	result.MaxMs = milliseconds(hi)
	return result
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// Service runs the experiments.
type Service interface {
	// CarmichaelExperiment measures how often each test accepts number for every
	// round count from 1 to maxRounds, over trials runs each.
	CarmichaelExperiment(ctx context.Context, number int64, maxRounds, trials int) (*FalsePositiveReport, error)

	// BenchmarkPrimeGeneration times runs prime searches for every size in bits.
	BenchmarkPrimeGeneration(ctx context.Context, bits []int, runs int) ([]*BenchmarkResult, error)

	// BenchmarkKeyPairGeneration times runs key pair generations for every prime size in bits.
	BenchmarkKeyPairGeneration(ctx context.Context, bits []int, runs int) ([]*BenchmarkResult, error)
}
