//go:build unit
// +build unit

package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type primeBitsHolder struct {
	Bits int `validate:"primebits"`
}

func TestPrimeBitsValidation(t *testing.T) {
	validate, err := New()
	require.NoError(t, err)

	tests := []struct {
		name    string
		bits    int
		wantErr bool
	}{
		{"minimum", MinPrimeBits, false},
		{"typical", 512, false},
		{"maximum", MaxPrimeBits, false},
		{"too small", MinPrimeBits - 1, true},
		{"zero", 0, true},
		{"negative", -16, true},
		{"too large", MaxPrimeBits + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(&primeBitsHolder{Bits: tt.bits})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

type databaseNameHolder struct {
	Name string `validate:"dbname"`
}

func TestDatabaseNameValidation(t *testing.T) {
	validate, err := New()
	require.NoError(t, err)

	tests := []struct {
		name    string
		dbName  string
		wantErr bool
	}{
		{"snake case", "project_rsa", false},
		{"leading underscore", "_x", false},
		{"maximum length", "a" + strings.Repeat("b", 62), false},
		{"statement injection", "rsa; DROP TABLE key_pairs", true},
		{"leading digit", "1abc", true},
		{"whitespace", "has space", true},
		{"quote", `rsa"keys`, true},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 64), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(&databaseNameHolder{Name: tt.dbName})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, !tt.wantErr, IsDatabaseName(tt.dbName))
		})
	}
}
