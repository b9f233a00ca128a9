//go:build unit
// +build unit

package cryptography

import (
	"math/big"
	"testing"

	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveModExp multiplies base into the accumulator exponent times.
func naiveModExp(base, exponent, modulus int64) int64 {
	result := int64(1) % modulus
	for i := int64(0); i < exponent; i++ {
		result = (result * (base % modulus)) % modulus
	}
	return result
}

func TestModExp_KnownValues(t *testing.T) {
	tests := []struct {
		base, exponent, modulus, expected int64
	}{
		{4, 13, 497, 445},
		{65, 17, 3233, 2790},
		{2790, 2753, 3233, 65},
		{0, 0, 7, 1},
		{0, 5, 7, 0},
		{5, 0, 2, 1},
		{1000, 1, 7, 6},
	}

	for _, tt := range tests {
		result, err := ModExp(big.NewInt(tt.base), big.NewInt(tt.exponent), big.NewInt(tt.modulus))
		require.NoError(t, err)
		assert.Equal(t, tt.expected, result.Int64(), "%d^%d mod %d", tt.base, tt.exponent, tt.modulus)
	}
}

func TestModExp_MatchesNaive(t *testing.T) {
	for modulus := int64(2); modulus <= 40; modulus++ {
		for base := int64(0); base < modulus; base++ {
			for exponent := int64(0); exponent <= 24; exponent++ {
				result, err := ModExp(big.NewInt(base), big.NewInt(exponent), big.NewInt(modulus))
				require.NoError(t, err)
				require.Equal(t, naiveModExp(base, exponent, modulus), result.Int64(),
					"%d^%d mod %d", base, exponent, modulus)
				require.Equal(t, -1, result.Cmp(big.NewInt(modulus)))
			}
		}
	}
}

func TestModExp_MatchesStdlibOnLargeOperands(t *testing.T) {
	random := NewSeededSource(7)
	limit := new(big.Int).Lsh(big.NewInt(1), 1024)

	for i := 0; i < 20; i++ {
		base, err := random.Int(limit)
		require.NoError(t, err)
		exponent, err := random.Int(limit)
		require.NoError(t, err)
		modulus, err := random.Int(limit)
		require.NoError(t, err)
		modulus.SetBit(modulus, 1023, 1)

		result, err := ModExp(base, exponent, modulus)
		require.NoError(t, err)
		assert.Equal(t, 0, new(big.Int).Exp(base, exponent, modulus).Cmp(result))
	}
}

func TestModExp_DoesNotMutateInputs(t *testing.T) {
	base, exponent, modulus := big.NewInt(123456), big.NewInt(65537), big.NewInt(1000003)

	_, err := ModExp(base, exponent, modulus)
	require.NoError(t, err)

	assert.Equal(t, int64(123456), base.Int64())
	assert.Equal(t, int64(65537), exponent.Int64())
	assert.Equal(t, int64(1000003), modulus.Int64())
}

func TestModExp_InvalidInput(t *testing.T) {
	tests := []struct {
		name                    string
		base, exponent, modulus *big.Int
		wantErr                 error
	}{
		{"modulus one", big.NewInt(3), big.NewInt(2), big.NewInt(1), cryptoalg.ErrInvalidModulus},
		{"modulus zero", big.NewInt(3), big.NewInt(2), big.NewInt(0), cryptoalg.ErrInvalidModulus},
		{"negative modulus", big.NewInt(3), big.NewInt(2), big.NewInt(-7), cryptoalg.ErrInvalidModulus},
		{"nil modulus", big.NewInt(3), big.NewInt(2), nil, cryptoalg.ErrInvalidModulus},
		{"negative base", big.NewInt(-3), big.NewInt(2), big.NewInt(7), cryptoalg.ErrInvalidOperand},
		{"negative exponent", big.NewInt(3), big.NewInt(-2), big.NewInt(7), cryptoalg.ErrInvalidOperand},
		{"nil exponent", big.NewInt(3), nil, big.NewInt(7), cryptoalg.ErrInvalidOperand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ModExp(tt.base, tt.exponent, tt.modulus)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
