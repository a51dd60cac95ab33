// Package catconnect is the root of the Catanduanes Connect module. It only
// carries assets that have to be embedded relative to the repository root.
package catconnect

import "embed"

// Migrations holds goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
