// Package cryptoalg defines the types and contracts of the textbook RSA engine:
// key material, the chunk layout derived from a modulus, the primitives that
// generate primes and key pairs, and the block cipher that encrypts byte slices
// chunk by chunk.
//
// No padding scheme is applied beyond zero-filling the final chunk, so the
// cipher is deterministic and malleable. It exists to study the arithmetic,
// not to protect data.
package cryptoalg
