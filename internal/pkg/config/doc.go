// Package config provides the settings structs for the RSA tooling and the loader
// that reads them from YAML files and environment variables.
//
// Every settings struct carries mapstructure tags for loading and validate tags
// that are checked by its Validate method before the settings are used.
package config
