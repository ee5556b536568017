// Package migrations embeds the SQL schema migrations so the binary and the
// test suites share a single schema source.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
