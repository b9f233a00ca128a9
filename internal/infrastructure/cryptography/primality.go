package cryptography

import (
	"fmt"
	"math/big"

	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
)

// NewPrimalityTester returns the tester named by test, drawing witnesses from random.
func NewPrimalityTester(test cryptoalg.PrimalityTest, random cryptoalg.RandomSource) (cryptoalg.PrimalityTester, error) {
	if random == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	switch test {
	case cryptoalg.PrimalityTestMillerRabin:
		return &millerRabinTester{random: random}, nil
	case cryptoalg.PrimalityTestFermat:
		return &fermatTester{random: random}, nil
	default:
		return nil, fmt.Errorf("unsupported primality test: %s", test)
	}
}

// fermatTester applies Fermat's little theorem with random bases.
// For n that is not a Carmichael number a composite survives one round with
// probability at most 1/2. Carmichael numbers pass for every coprime base.
type fermatTester struct {
	random cryptoalg.RandomSource
}

func (f *fermatTester) IsProbablyPrime(n *big.Int, rounds int) (bool, error) {
	if decided, prime, err := screen("Fermat", n, rounds); decided || err != nil {
		return prime, err
	}

	nMinusOne := new(big.Int).Sub(n, bigOne)
	nMinusTwo := new(big.Int).Sub(n, bigTwo)
	for i := 0; i < rounds; i++ {
		a, err := randomInRange(f.random, bigTwo, nMinusTwo)
		if err != nil {
			return false, err
		}
		if modExp(a, nMinusOne, n).Cmp(bigOne) != 0 {
			return false, nil
		}
	}
	return true, nil
}

// millerRabinTester runs the strong probable prime test. A composite survives
// one round with probability at most 1/4, Carmichael numbers included.
type millerRabinTester struct {
	random cryptoalg.RandomSource
}

func (m *millerRabinTester) IsProbablyPrime(n *big.Int, rounds int) (bool, error) {
	if decided, prime, err := screen("MillerRabin", n, rounds); decided || err != nil {
		return prime, err
	}

	// n-1 = 2^t * u with u odd
	nMinusOne := new(big.Int).Sub(n, bigOne)
	nMinusTwo := new(big.Int).Sub(n, bigTwo)
	t := nMinusOne.TrailingZeroBits()
	u := new(big.Int).Rsh(nMinusOne, t)

	for i := 0; i < rounds; i++ {
		a, err := randomInRange(m.random, bigTwo, nMinusTwo)
		if err != nil {
			return false, err
		}
		if !strongWitnessPasses(a, u, t, n, nMinusOne) {
			return false, nil
		}
	}
	return true, nil
}

// strongWitnessPasses reports whether base a fails to prove n composite.
func strongWitnessPasses(a, u *big.Int, t uint, n, nMinusOne *big.Int) bool {
	x := modExp(a, u, n)
	if x.Cmp(bigOne) == 0 || x.Cmp(nMinusOne) == 0 {
		return true
	}
	for j := uint(1); j < t; j++ {
		x.Mul(x, x)
		x.Mod(x, n)
		if x.Cmp(nMinusOne) == 0 {
			return true
		}
		// a nontrivial square root of 1 was skipped; n is composite
		if x.Cmp(bigOne) == 0 {
			return false
		}
	}
	return false
}

// screen settles the inputs that need no witness: n <= 1, 2, 3 and even n.
// decided is false when the caller has to run witness rounds on an odd n >= 5.
func screen(op string, n *big.Int, rounds int) (decided, prime bool, err error) {
	if n == nil {
		return true, false, cryptoalg.Errorf(op, cryptoalg.ErrInvalidOperand, "candidate is nil")
	}
	if rounds < 1 {
		return true, false, cryptoalg.Errorf(op, cryptoalg.ErrInvalidOperand, "rounds must be at least 1, got %d", rounds)
	}
	switch {
	case n.Cmp(bigOne) <= 0:
		return true, false, nil
	case n.Cmp(bigThree) <= 0:
		return true, true, nil
	case n.Bit(0) == 0:
		return true, false, nil
	}
	return false, false, nil
}
