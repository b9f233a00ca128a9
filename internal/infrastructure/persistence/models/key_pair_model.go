package models

import (
	"time"

	"github.com/jakenef/project-rsa/internal/domain/keys"
)

// KeyPairModel is the GORM database model for key pairs
type KeyPairModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	DateTimeCreated time.Time `gorm:"not null;index"`
	PrimeBits       int       `gorm:"not null;index"`
	ModulusBits     int       `gorm:"not null"`
	ChunkSize       int       `gorm:"not null"`
	BlockSize       int       `gorm:"not null"`
	PrimalityTest   string    `gorm:"type:varchar(20);not null"`
	Modulus         string    `gorm:"type:text;not null"`
	PublicExponent  string    `gorm:"type:text;not null"`
	PrivateExponent string    `gorm:"type:text;not null"`
}

// TableName specifies the table name for GORM
func (KeyPairModel) TableName() string {
	return "key_pairs"
}

// ToDomain converts GORM model to domain entity
func (m *KeyPairModel) ToDomain() *keys.KeyPairMeta {
	return &keys.KeyPairMeta{
		ID:              m.ID,
		DateTimeCreated: m.DateTimeCreated,
		PrimeBits:       m.PrimeBits,
		ModulusBits:     m.ModulusBits,
		ChunkSize:       m.ChunkSize,
		BlockSize:       m.BlockSize,
		PrimalityTest:   m.PrimalityTest,
		Modulus:         m.Modulus,
		PublicExponent:  m.PublicExponent,
		PrivateExponent: m.PrivateExponent,
	}
}

// FromDomain converts domain entity to GORM model
func (m *KeyPairModel) FromDomain(k *keys.KeyPairMeta) {
	m.ID = k.ID
	m.DateTimeCreated = k.DateTimeCreated
	m.PrimeBits = k.PrimeBits
	m.ModulusBits = k.ModulusBits
	m.ChunkSize = k.ChunkSize
	m.BlockSize = k.BlockSize
	m.PrimalityTest = k.PrimalityTest
	m.Modulus = k.Modulus
	m.PublicExponent = k.PublicExponent
	m.PrivateExponent = k.PrivateExponent
}
