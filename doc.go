// Package gdsii reads and writes GDSII stream format files: the binary,
// hierarchical layout exchange format used throughout IC design tooling.
//
// A Library holds a named, unit-scaled set of cells; cells hold polygons,
// paths, text labels, and references to other cells. Parse decodes a
// byte buffer into a fully-linked Library; (*Library).Bytes serializes
// one back to the wire format.
package gdsii
