//go:build unit
// +build unit

package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewBenchmarkResult(t *testing.T) {
	times := []time.Duration{
		2 * time.Millisecond,
		6 * time.Millisecond,
		1 * time.Millisecond,
		3 * time.Millisecond,
	}

	result := NewBenchmarkResult(OperationGeneratePrime, 64, times)

	assert.Equal(t, OperationGeneratePrime, result.Operation)
	assert.Equal(t, 64, result.Bits)
	assert.Equal(t, 4, result.Runs)
	assert.InDelta(t, 3.0, result.AverageMs, 1e-9)
	assert.InDelta(t, 1.0, result.MinMs, 1e-9)
	assert.InDelta(t, 6.0, result.MaxMs, 1e-9)
}

func TestNewBenchmarkResult_NoRuns(t *testing.T) {
	result := NewBenchmarkResult(OperationGenerateKeyPair, 32, nil)

	assert.Equal(t, 0, result.Runs)
	assert.Zero(t, result.AverageMs)
	assert.Zero(t, result.MinMs)
	assert.Zero(t, result.MaxMs)
}
