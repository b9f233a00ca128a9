package cryptoalg

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidModulus indicates a modulus below 2 was passed to modular exponentiation
	ErrInvalidModulus = errors.New("rsa: invalid modulus")

	// ErrInvalidOperand indicates a negative base or exponent
	ErrInvalidOperand = errors.New("rsa: invalid operand")

	// ErrInvalidBitLength indicates a requested bit length that cannot produce a usable value
	ErrInvalidBitLength = errors.New("rsa: invalid bit length")

	// ErrCompositeCandidateExhausted indicates the prime search hit its attempt cap
	ErrCompositeCandidateExhausted = errors.New("rsa: prime search attempts exhausted")

	// ErrNoInvertibleExponent indicates no candidate public exponent is coprime to phi
	ErrNoInvertibleExponent = errors.New("rsa: no invertible public exponent")

	// ErrChunkWidthMismatch indicates cipher input that is not aligned to the key's block width
	ErrChunkWidthMismatch = errors.New("rsa: chunk width mismatch")

	// ErrBlockOutOfRange indicates a ciphertext block whose value is not below the modulus
	ErrBlockOutOfRange = errors.New("rsa: block value out of range")

	// ErrNilKey indicates a missing key or a key without modulus or exponent
	ErrNilKey = errors.New("rsa: nil key")
)

// Error wraps an underlying error with the operation that failed
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("rsa.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds an *Error for op whose message is formatted from sentinel and the
// remaining arguments; errors.Is(err, sentinel) holds for the result.
func Errorf(op string, sentinel error, format string, args ...interface{}) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...)),
	}
}
