package gdsii

import (
	"github.com/layoutkit/gdsii/internal/core"
	"github.com/layoutkit/gdsii/internal/graph"
	"github.com/layoutkit/gdsii/internal/structures"
)

// Date is the modification/access timestamp pair GDSII stores on
// libraries and cells.
type Date = core.Date

// CellID is a library-relative, stable identifier for a cell. It never
// aliases a pointer or memory address; a cell keeps its CellID for its
// entire membership in the library that issued it.
type CellID = structures.CellID

// Cell is a GDSII structure: a name, a pair of timestamps, and four
// element collections. A cell may exist unowned before being added to a
// library with (*Library).AddCell.
type Cell = graph.Cell

// NewCell returns an empty, unowned cell with the given name. name must
// be at most 32 ASCII characters (alphanumerics plus "_?$") to survive
// serialization.
func NewCell(name string) *Cell {
	return &Cell{Name: name}
}
