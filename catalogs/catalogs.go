// Package catalogs embeds the built-in token catalog so the server can
// start without any files on disk.
package catalogs

import _ "embed"

// DefaultJSON is the built-in catalog, used when no catalog path is
// configured and auto-discovery finds nothing.
//
//go:embed default/catalog.json
var DefaultJSON []byte
