// Package migrations embeds the versioned schema and seed scripts.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
