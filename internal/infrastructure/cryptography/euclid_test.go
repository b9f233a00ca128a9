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

func TestExtendedGCD_KnownValues(t *testing.T) {
	tests := []struct {
		a, b    int64
		x, y, g int64
	}{
		{240, 46, -9, 47, 2},
		{46, 240, 47, -9, 2},
		{7, 0, 1, 0, 7},
		{0, 7, 0, 1, 7},
		{3120, 17, 2, -367, 1},
		{1, 1, 0, 1, 1},
	}

	for _, tt := range tests {
		x, y, g, err := ExtendedGCD(big.NewInt(tt.a), big.NewInt(tt.b))
		require.NoError(t, err)
		assert.Equal(t, tt.x, x.Int64(), "x for (%d, %d)", tt.a, tt.b)
		assert.Equal(t, tt.y, y.Int64(), "y for (%d, %d)", tt.a, tt.b)
		assert.Equal(t, tt.g, g.Int64(), "g for (%d, %d)", tt.a, tt.b)
	}
}

func TestExtendedGCD_BezoutIdentity(t *testing.T) {
	for a := int64(0); a <= 60; a++ {
		for b := int64(0); b <= 60; b++ {
			if a == 0 && b == 0 {
				continue
			}
			bigA, bigB := big.NewInt(a), big.NewInt(b)
			x, y, g, err := ExtendedGCD(bigA, bigB)
			require.NoError(t, err)

			lhs := new(big.Int).Add(new(big.Int).Mul(bigA, x), new(big.Int).Mul(bigB, y))
			require.Equal(t, 0, lhs.Cmp(g), "a*x + b*y != g for (%d, %d)", a, b)
			require.Equal(t, 0, new(big.Int).GCD(nil, nil, bigA, bigB).Cmp(g), "gcd mismatch for (%d, %d)", a, b)
		}
	}
}

func TestExtendedGCD_InvalidInput(t *testing.T) {
	_, _, _, err := ExtendedGCD(big.NewInt(0), big.NewInt(0))
	assert.ErrorIs(t, err, cryptoalg.ErrInvalidOperand)

	_, _, _, err = ExtendedGCD(big.NewInt(-4), big.NewInt(6))
	assert.ErrorIs(t, err, cryptoalg.ErrInvalidOperand)

	_, _, _, err = ExtendedGCD(nil, big.NewInt(6))
	assert.ErrorIs(t, err, cryptoalg.ErrInvalidOperand)
}

func TestModInverse(t *testing.T) {
	d, err := ModInverse(big.NewInt(17), big.NewInt(3120))
	require.NoError(t, err)
	assert.Equal(t, int64(2753), d.Int64())

	for modulus := int64(2); modulus <= 200; modulus++ {
		for value := int64(1); value < modulus; value++ {
			d, err := ModInverse(big.NewInt(value), big.NewInt(modulus))
			if new(big.Int).GCD(nil, nil, big.NewInt(value), big.NewInt(modulus)).Int64() != 1 {
				require.ErrorIs(t, err, cryptoalg.ErrNoInvertibleExponent)
				continue
			}
			require.NoError(t, err)
			require.GreaterOrEqual(t, d.Sign(), 0)
			require.Equal(t, int64(1), (value*d.Int64())%modulus, "inverse of %d mod %d", value, modulus)
		}
	}
}

func TestModInverse_InvalidModulus(t *testing.T) {
	_, err := ModInverse(big.NewInt(3), big.NewInt(1))
	assert.ErrorIs(t, err, cryptoalg.ErrInvalidModulus)
}
