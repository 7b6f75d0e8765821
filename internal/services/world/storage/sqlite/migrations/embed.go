// Package migrations contains embedded SQL migrations for the dialog journal.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
