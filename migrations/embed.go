// Package migrations holds the goose SQL migrations, embedded so the server
// binary can bring a fresh database up to date on start.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
