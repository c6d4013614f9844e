// Package data carries the versioned media-type corpus embedded into the
// binary. The file format is the registry loader's record grammar; see the
// registry package.
package data

import _ "embed"

// Version identifies the corpus snapshot, not the module.
const Version = "2026.0819"

//go:embed mime.types
var MIMETypes []byte
