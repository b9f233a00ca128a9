package v1

import (
	"errors"
	"net/http"

	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
	"github.com/jakenef/project-rsa/internal/domain/keys"
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, keys.ErrKeyPairNotFound):
		return http.StatusNotFound
	case errors.Is(err, cryptoalg.ErrChunkWidthMismatch),
		errors.Is(err, cryptoalg.ErrBlockOutOfRange),
		errors.Is(err, cryptoalg.ErrInvalidBitLength),
		errors.Is(err, cryptoalg.ErrInvalidOperand),
		errors.Is(err, cryptoalg.ErrInvalidModulus):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
