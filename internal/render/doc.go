// Package render writes a resolved configuration as a C header, a Go
// constants file, or JSON. It is the boundary surface between the resolver
// and the builds that consume the constant set.
package render
