// Package ayurdeploy exposes files embedded into the binary.
package ayurdeploy

import "embed"

// Migrations holds the goose migrations for the internal tables.
//
//go:embed migrations/*.sql
var Migrations embed.FS
