package gdsii

import (
	"github.com/layoutkit/gdsii/internal/core"
	"github.com/layoutkit/gdsii/internal/graph"
	"github.com/layoutkit/gdsii/internal/structures"
	"github.com/layoutkit/gdsii/internal/writer"
)

// Bytes serializes the whole library to the GDSII wire format: HEADER,
// BGNLIB, LIBNAME, UNITS, each cell, then ENDLIB. Cells are emitted in
// AllCells order; within a cell, elements are emitted polygons, paths,
// references, then texts. A reference whose target cell has been removed
// from the library fails as UnresolvedReference.
func (l *Library) Bytes() ([]byte, error) {
	entries := l.arena.AllCells()
	cells := make([]*graph.Cell, len(entries))
	for i, e := range entries {
		for _, ref := range e.Cell.References {
			if r, ok := ref.Target.(structures.ResolvedReference); ok && l.arena.Get(r.CellID) == nil {
				return nil, core.NewError(core.KindUnresolvedReference,
					"cell \""+e.Cell.Name+"\" references removed cell \""+r.Name+"\"")
			}
		}
		cells[i] = e.Cell
	}
	header := writer.Header{
		Version:         600,
		Date:            l.Date,
		Name:            l.Name,
		UserPerDbUnit:   l.Precision / l.UserUnit,
		MetersPerDbUnit: l.Precision,
	}
	return writer.Emit(header, cells)
}
