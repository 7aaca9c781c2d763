// Package migrations holds the goose SQL migrations, embedded into the
// binaries that apply them.
package migrations

import "embed"

// FS contains every *.sql migration at its root.
//
//go:embed *.sql
var FS embed.FS
