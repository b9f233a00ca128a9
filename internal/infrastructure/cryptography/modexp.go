package cryptography

import (
	"math/big"

	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
)

var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
)

// ModExp computes base^exponent mod modulus by repeated squaring.
// modulus must be at least 2; base and exponent must be non-negative.
// The inputs are never modified.
func ModExp(base, exponent, modulus *big.Int) (*big.Int, error) {
	if modulus == nil || modulus.Cmp(bigTwo) < 0 {
		return nil, cryptoalg.Errorf("ModExp", cryptoalg.ErrInvalidModulus, "modulus must be at least 2")
	}
	if base == nil || exponent == nil || base.Sign() < 0 || exponent.Sign() < 0 {
		return nil, cryptoalg.Errorf("ModExp", cryptoalg.ErrInvalidOperand, "base and exponent must be non-negative")
	}
	return modExp(base, exponent, modulus), nil
}

// modExp walks the exponent from its most significant bit, squaring the
// accumulator for every bit and multiplying by the base for every set bit.
// Each product is reduced at once so operands never exceed twice the modulus width.
func modExp(base, exponent, modulus *big.Int) *big.Int {
	b := new(big.Int).Mod(base, modulus)
	result := big.NewInt(1)
	for i := exponent.BitLen() - 1; i >= 0; i-- {
		result.Mul(result, result)
		result.Mod(result, modulus)
		if exponent.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
	}
	return result
}
