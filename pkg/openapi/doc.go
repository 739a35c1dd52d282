// Package openapi exposes the public contracts for loading and parsing the
// prediction service contract. Implementations live under internal/openapi to
// keep kin-openapi dependencies hidden from consumers.
package openapi
