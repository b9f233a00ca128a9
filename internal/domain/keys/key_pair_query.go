package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jakenef/project-rsa/internal/pkg/validators"
)

// KeyPairQuery filters and pages a key pair listing. Zero values disable a filter.
type KeyPairQuery struct {
	PrimeBits       int       `validate:"omitempty,primebits"`
	PrimalityTest   string    `validate:"omitempty,oneof=miller-rabin fermat"`
	DateTimeCreated time.Time `validate:"omitempty"`

	// Pagination properties
	Limit  int `validate:"omitempty,min=1,max=1000"`
	Offset int `validate:"omitempty,min=0"`

	// Sorting properties
	SortBy    string `validate:"omitempty,oneof=date_time_created prime_bits modulus_bits"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewKeyPairQuery creates a KeyPairQuery with default values.
func NewKeyPairQuery() *KeyPairQuery {
	return &KeyPairQuery{
		Limit:     100,
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating KeyPairQuery struct
func (q *KeyPairQuery) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err = validate.Struct(q)
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
