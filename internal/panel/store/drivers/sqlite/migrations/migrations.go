// Package migrations embeds the SQLite schema so it ships inside the binary.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
