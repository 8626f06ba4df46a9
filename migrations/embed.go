// Package migrations embeds the PostgreSQL schema so binaries can apply it
// without shipping the .sql files alongside.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
