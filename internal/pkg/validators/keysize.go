package validators

import (
	"github.com/go-playground/validator/v10"
	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
)

// Bounds for the bit length of each RSA prime.
const (
	MinPrimeBits = cryptoalg.MinPrimeBits
	MaxPrimeBits = 4096
)

// PrimeBitsTag is the validate tag registered by Register.
const PrimeBitsTag = "primebits"

// PrimeBitsValidation accepts prime bit lengths that produce a usable modulus.
func PrimeBitsValidation(fl validator.FieldLevel) bool {
	bits := fl.Field().Int()
	return bits >= MinPrimeBits && bits <= MaxPrimeBits
}

// New returns a validator with the custom rules of this project registered.
func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := Register(validate); err != nil {
		return nil, err
	}
	return validate, nil
}

// Register adds the custom rules to an existing validator.
func Register(validate *validator.Validate) error {
	if err := validate.RegisterValidation(PrimeBitsTag, PrimeBitsValidation); err != nil {
		return err
	}
	return validate.RegisterValidation(DatabaseNameTag, DatabaseNameValidation)
}
