// Package models contains the GORM database models. They are kept apart from the
// domain entities so storage concerns such as column types stay out of the domain.
package models
