// Package catalog embeds the goose migrations for the item catalog schema.
package catalog

import "embed"

//go:embed *.sql
var FS embed.FS
