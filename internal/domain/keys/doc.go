// Package keys holds the stored key pair entity and the contracts of the services
// that generate, persist and use key pairs.
package keys
