//go:build unit
// +build unit

package keys

import (
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textbookKeyPair is the p = 61, q = 53 example with e = 17
func textbookKeyPair() *cryptoalg.KeyPair {
	return &cryptoalg.KeyPair{
		Public:  cryptoalg.PublicKey{Modulus: big.NewInt(3233), Exponent: big.NewInt(17)},
		Private: cryptoalg.PrivateKey{Modulus: big.NewInt(3233), Exponent: big.NewInt(2753)},
	}
}

func TestNewKeyPairMeta(t *testing.T) {
	id := uuid.NewString()
	created := time.Now()

	meta, err := NewKeyPairMeta(id, 8, "miller-rabin", textbookKeyPair(), created)
	require.NoError(t, err)

	assert.Equal(t, id, meta.ID)
	assert.Equal(t, 12, meta.ModulusBits)
	assert.Equal(t, 1, meta.ChunkSize)
	assert.Equal(t, 2, meta.BlockSize)
	assert.Equal(t, "3233", meta.Modulus)
	assert.Equal(t, "17", meta.PublicExponent)
	assert.Equal(t, "2753", meta.PrivateExponent)
	assert.NoError(t, meta.Validate())

	public, err := meta.PublicKey()
	require.NoError(t, err)
	assert.Equal(t, int64(3233), public.Modulus.Int64())
	assert.Equal(t, int64(17), public.Exponent.Int64())

	private, err := meta.PrivateKey()
	require.NoError(t, err)
	assert.Equal(t, int64(2753), private.Exponent.Int64())
}

func TestNewKeyPairMeta_InvalidKeyPair(t *testing.T) {
	_, err := NewKeyPairMeta(uuid.NewString(), 8, "miller-rabin", nil, time.Now())
	assert.Error(t, err)

	small := &cryptoalg.KeyPair{
		Public:  cryptoalg.PublicKey{Modulus: big.NewInt(15), Exponent: big.NewInt(3)},
		Private: cryptoalg.PrivateKey{Modulus: big.NewInt(15), Exponent: big.NewInt(3)},
	}
	_, err = NewKeyPairMeta(uuid.NewString(), 8, "miller-rabin", small, time.Now())
	assert.ErrorIs(t, err, cryptoalg.ErrInvalidModulus)

	missing := textbookKeyPair()
	missing.Private.Exponent = nil
	_, err = NewKeyPairMeta(uuid.NewString(), 8, "miller-rabin", missing, time.Now())
	assert.ErrorIs(t, err, cryptoalg.ErrNilKey)
}

func TestKeyPairMeta_Validate(t *testing.T) {
	valid := func() *KeyPairMeta {
		meta, err := NewKeyPairMeta(uuid.NewString(), 8, "fermat", textbookKeyPair(), time.Now())
		require.NoError(t, err)
		return meta
	}

	tests := []struct {
		name   string
		mutate func(m *KeyPairMeta)
	}{
		{"id not a uuid", func(m *KeyPairMeta) { m.ID = "key-1" }},
		{"missing creation time", func(m *KeyPairMeta) { m.DateTimeCreated = time.Time{} }},
		{"prime bits too small", func(m *KeyPairMeta) { m.PrimeBits = 4 }},
		{"prime bits too large", func(m *KeyPairMeta) { m.PrimeBits = 8192 }},
		{"block not wider than chunk", func(m *KeyPairMeta) { m.BlockSize = m.ChunkSize }},
		{"unknown primality test", func(m *KeyPairMeta) { m.PrimalityTest = "lucas" }},
		{"modulus not numeric", func(m *KeyPairMeta) { m.Modulus = "0xCA1" }},
		{"missing private exponent", func(m *KeyPairMeta) { m.PrivateExponent = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := valid()
			tt.mutate(meta)
			assert.Error(t, meta.Validate())
		})
	}
}

func TestKeyPairMeta_MalformedNumbers(t *testing.T) {
	meta, err := NewKeyPairMeta(uuid.NewString(), 8, "fermat", textbookKeyPair(), time.Now())
	require.NoError(t, err)

	meta.Modulus = "-3233"
	_, err = meta.PublicKey()
	assert.Error(t, err)

	meta.Modulus = "3233"
	meta.PrivateExponent = "abc"
	_, err = meta.PrivateKey()
	assert.Error(t, err)
}

func TestKeyPairQuery_Validate(t *testing.T) {
	assert.NoError(t, NewKeyPairQuery().Validate())
	assert.NoError(t, (&KeyPairQuery{}).Validate())

	tests := []struct {
		name  string
		query KeyPairQuery
	}{
		{"prime bits too small", KeyPairQuery{PrimeBits: 2}},
		{"unknown test", KeyPairQuery{PrimalityTest: "lucas"}},
		{"limit too large", KeyPairQuery{Limit: 5000}},
		{"negative offset", KeyPairQuery{Offset: -1}},
		{"unknown sort column", KeyPairQuery{SortBy: "modulus"}},
		{"unknown sort order", KeyPairQuery{SortOrder: "up"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.query.Validate())
		})
	}
}
