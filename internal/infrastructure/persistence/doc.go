// Package persistence provides the gorm backed key pair repository and the
// connection factory for sqlite and PostgreSQL stores.
package persistence
