// Package common holds the handful of YAML constants the scanner,
// parser, and emitter all need to agree on but that don't belong to
// any one of them.
package common

import (
	"github.com/go-valconf/valconf/internal/yamlh"
)

// DefaultTagDirectives are the two tag handles every YAML document
// gets for free ("!" and "!!") even when it declares no %TAG
// directives of its own. The emitter appends them after the
// document-supplied directives and skips any whose handle the document
// already declared, so an explicit redeclaration still takes precedence.
var DefaultTagDirectives = []yamlh.TagDirective{
	{Handle: []byte("!"), Prefix: []byte("!")},
	{Handle: []byte("!!"), Prefix: []byte("tag:yaml.org,2002:")},
}
