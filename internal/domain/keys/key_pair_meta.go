package keys

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
	"github.com/jakenef/project-rsa/internal/pkg/validators"
)

// KeyPairMeta is a stored key pair. Big integers are kept as decimal strings.
type KeyPairMeta struct {
	ID              string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
	PrimeBits       int       `validate:"primebits"`
	ModulusBits     int       `validate:"required,min=9"`
	ChunkSize       int       `validate:"required,min=1"`
	BlockSize       int       `validate:"required,gtfield=ChunkSize"`
	PrimalityTest   string    `validate:"required,oneof=miller-rabin fermat"`
	Modulus         string    `validate:"required,numeric"`
	PublicExponent  string    `validate:"required,numeric"`
	PrivateExponent string    `validate:"required,numeric"`
}

// NewKeyPairMeta describes keyPair as a storable entity.
func NewKeyPairMeta(id string, primeBits int, primalityTest string, keyPair *cryptoalg.KeyPair, created time.Time) (*KeyPairMeta, error) {
	if keyPair == nil {
		return nil, fmt.Errorf("key pair cannot be nil")
	}
	layout, err := keyPair.Public.Layout()
	if err != nil {
		return nil, err
	}
	if err := keyPair.Private.Validate(); err != nil {
		return nil, err
	}

	return &KeyPairMeta{
		ID:              id,
		DateTimeCreated: created,
		PrimeBits:       primeBits,
		ModulusBits:     keyPair.ModulusBits(),
		ChunkSize:       layout.ChunkSize,
		BlockSize:       layout.BlockSize,
		PrimalityTest:   primalityTest,
		Modulus:         keyPair.Public.Modulus.String(),
		PublicExponent:  keyPair.Public.Exponent.String(),
		PrivateExponent: keyPair.Private.Exponent.String(),
	}, nil
}

// PublicKey parses the public half of the key pair.
func (k *KeyPairMeta) PublicKey() (*cryptoalg.PublicKey, error) {
	modulus, exponent, err := k.parse(k.PublicExponent)
	if err != nil {
		return nil, err
	}
	return &cryptoalg.PublicKey{Modulus: modulus, Exponent: exponent}, nil
}

// PrivateKey parses the private half of the key pair.
func (k *KeyPairMeta) PrivateKey() (*cryptoalg.PrivateKey, error) {
	modulus, exponent, err := k.parse(k.PrivateExponent)
	if err != nil {
		return nil, err
	}
	return &cryptoalg.PrivateKey{Modulus: modulus, Exponent: exponent}, nil
}

func (k *KeyPairMeta) parse(exponentText string) (modulus, exponent *big.Int, err error) {
	modulus, ok := new(big.Int).SetString(k.Modulus, 10)
	if !ok || modulus.Sign() <= 0 {
		return nil, nil, fmt.Errorf("key pair %s has a malformed modulus", k.ID)
	}
	exponent, ok = new(big.Int).SetString(exponentText, 10)
	if !ok || exponent.Sign() <= 0 {
		return nil, nil, fmt.Errorf("key pair %s has a malformed exponent", k.ID)
	}
	return modulus, exponent, nil
}

// Validate for validating KeyPairMeta struct
func (k *KeyPairMeta) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err = validate.Struct(k)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
