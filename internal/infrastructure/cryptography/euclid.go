package cryptography

import (
	"math/big"

	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
)

// ExtendedGCD returns x, y and g with a*x + b*y = g = gcd(a, b).
// a and b must be non-negative and not both zero. With b = 0 the result is (1, 0, a).
func ExtendedGCD(a, b *big.Int) (x, y, g *big.Int, err error) {
	if a == nil || b == nil || a.Sign() < 0 || b.Sign() < 0 {
		return nil, nil, nil, cryptoalg.Errorf("ExtendedGCD", cryptoalg.ErrInvalidOperand, "operands must be non-negative")
	}
	if a.Sign() == 0 && b.Sign() == 0 {
		return nil, nil, nil, cryptoalg.Errorf("ExtendedGCD", cryptoalg.ErrInvalidOperand, "operands must not both be zero")
	}
	x, y, g = extendedGCD(a, b)
	return x, y, g, nil
}

// extendedGCD keeps the remainder sequence and both Bezout coefficient sequences
// in lockstep. It returns the same coefficients as the recursive definition
// (x', y', g) = egcd(b, a mod b); (y', x' - (a div b)*y', g).
func extendedGCD(a, b *big.Int) (x, y, g *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		q.Div(oldR, r)

		tmp.Mul(q, r)
		oldR, r = r, new(big.Int).Sub(oldR, tmp)

		tmp.Mul(q, s)
		oldS, s = s, new(big.Int).Sub(oldS, tmp)

		tmp.Mul(q, t)
		oldT, t = t, new(big.Int).Sub(oldT, tmp)
	}
	return oldS, oldT, oldR
}

// ModInverse returns d in [0, modulus) with value*d ≡ 1 (mod modulus).
// It reports ErrNoInvertibleExponent when gcd(modulus, value) != 1.
func ModInverse(value, modulus *big.Int) (*big.Int, error) {
	if modulus == nil || modulus.Cmp(bigTwo) < 0 {
		return nil, cryptoalg.Errorf("ModInverse", cryptoalg.ErrInvalidModulus, "modulus must be at least 2")
	}
	_, y, g, err := ExtendedGCD(modulus, value)
	if err != nil {
		return nil, err
	}
	if g.Cmp(bigOne) != 0 {
		return nil, cryptoalg.Errorf("ModInverse", cryptoalg.ErrNoInvertibleExponent,
			"gcd(%s, %s) = %s", modulus, value, g)
	}
	// Mod is Euclidean in math/big, so the result is never negative
	return y.Mod(y, modulus), nil
}
