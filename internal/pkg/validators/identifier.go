package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// DatabaseNameTag is the validate tag for database names used in DDL statements.
const DatabaseNameTag = "dbname"

// databaseName matches an unquoted PostgreSQL identifier of at most 63 bytes.
var databaseName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

// DatabaseNameValidation accepts names that can be spliced into CREATE or DROP DATABASE.
func DatabaseNameValidation(fl validator.FieldLevel) bool {
	return IsDatabaseName(fl.Field().String())
}

// IsDatabaseName reports whether name is a plain SQL identifier.
func IsDatabaseName(name string) bool {
	return databaseName.MatchString(name)
}
