package v1

import (
	"fmt"
	"time"

	"github.com/jakenef/project-rsa/internal/domain/keys"
	"github.com/jakenef/project-rsa/internal/pkg/validators"
)

// GenerateKeyPairRequest is the body of POST /keys.
type GenerateKeyPairRequest struct {
	PrimeBits int `json:"prime_bits" validate:"primebits"`
}

// Validate checks the requested prime size.
func (r *GenerateKeyPairRequest) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to build validator: %w", err)
	}
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// KeyPairMetaResponse describes a stored key pair. The private exponent is never returned.
type KeyPairMetaResponse struct {
	ID              string    `json:"id"`
	DateTimeCreated time.Time `json:"date_time_created"`
	PrimeBits       int       `json:"prime_bits"`
	ModulusBits     int       `json:"modulus_bits"`
	ChunkSize       int       `json:"chunk_size"`
	BlockSize       int       `json:"block_size"`
	PrimalityTest   string    `json:"primality_test"`
	Modulus         string    `json:"modulus"`
	PublicExponent  string    `json:"public_exponent"`
}

// NewKeyPairMetaResponse maps a stored key pair to its public description.
func NewKeyPairMetaResponse(k *keys.KeyPairMeta) KeyPairMetaResponse {
	return KeyPairMetaResponse{
		ID:              k.ID,
		DateTimeCreated: k.DateTimeCreated,
		PrimeBits:       k.PrimeBits,
		ModulusBits:     k.ModulusBits,
		ChunkSize:       k.ChunkSize,
		BlockSize:       k.BlockSize,
		PrimalityTest:   k.PrimalityTest,
		Modulus:         k.Modulus,
		PublicExponent:  k.PublicExponent,
	}
}

// PrimalityRequest is the body of POST /primality. Number is a decimal string so
// that values wider than 64 bits survive JSON decoding.
type PrimalityRequest struct {
	Number string `json:"number" validate:"required,numeric"`
	Test   string `json:"test" validate:"omitempty,oneof=miller-rabin fermat"`
	Rounds int    `json:"rounds" validate:"omitempty,min=1,max=256"`
}

// Validate checks the primality request.
func (r *PrimalityRequest) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to build validator: %w", err)
	}
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// PrimalityResponse reports the verdict of a primality test.
type PrimalityResponse struct {
	Number        string `json:"number"`
	Test          string `json:"test"`
	Rounds        int    `json:"rounds"`
	ProbablyPrime bool   `json:"probably_prime"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational response
type InfoResponse struct {
	Message string `json:"message"`
}
