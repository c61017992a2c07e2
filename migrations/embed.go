// Package migrations embeds the SQL schema migrations so the binary can run them
// without shipping a migrations directory.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
