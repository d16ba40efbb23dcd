// Package migrations embeds the goose migrations of the local call journal.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
