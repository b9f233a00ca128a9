// Package analysis describes the experiments run against the RSA primitives:
// false positive rates of the primality tests on Carmichael numbers and timing
// runs of prime and key pair generation.
package analysis
