package cryptoalg

// PrimalityTest names a probabilistic primality test.
type PrimalityTest string

// Supported primality tests
const (
	PrimalityTestMillerRabin PrimalityTest = "miller-rabin"
	PrimalityTestFermat      PrimalityTest = "fermat"
)

// DefaultRounds is the number of witness rounds used when the caller does not choose.
const DefaultRounds = 20

// MinPrimeBits is the smallest prime size accepted by key generation. Two primes of
// this size always give a modulus of at least MinModulusBits bits.
const MinPrimeBits = 8

// MinModulusBits is the smallest modulus whose plaintext chunk holds at least one byte.
const MinModulusBits = 9

// DefaultCandidateExponents returns the public exponents tried, in order, during
// key generation. A fresh slice is returned on every call.
func DefaultCandidateExponents() []int64 {
	return []int64{
		3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
		53, 59, 61, 67, 71, 73, 79, 83, 89, 97, 257, 65537,
	}
}

// CarmichaelNumbers are composites that satisfy Fermat's little theorem for every
// coprime base. They are the worst case for the Fermat test.
func CarmichaelNumbers() []int64 {
	return []int64{561, 1105, 1729, 2465, 2821, 6601, 8911}
}
