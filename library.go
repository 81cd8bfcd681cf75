package gdsii

import (
	"github.com/layoutkit/gdsii/internal/core"
	"github.com/layoutkit/gdsii/internal/graph"
)

const (
	defaultUserUnit = 1e-6
	defaultPrecision = 1e-9
)

// Library is a named, versioned container of cells. Every cell name in a
// library is unique and the cell reference graph is a DAG; both
// invariants are enforced by AddCell.
type Library struct {
	Name      string
	UserUnit  float64 // meters per user coordinate
	Precision float64 // meters per database-grid integer
	Date      Date

	arena *graph.Arena
}

// NewLibrary returns an empty library with default units (1e-6 m) and
// precision (1e-9 m).
func NewLibrary(name string) *Library {
	return &Library{
		Name:      name,
		UserUnit:  defaultUserUnit,
		Precision: defaultPrecision,
		arena:     graph.NewArena(),
	}
}

// AddCell inserts cell, and every cell transitively reachable through
// its (and its descendants') references, into the library. Reference
// targets are resolved by name against cell itself and every cell in
// universe; a name with no match is UnresolvedReference. Two distinct
// cells sharing a name is DuplicateCellName; a reference that would
// close a cycle is CycleDetected. On any error the library is left
// exactly as it was before the call.
func (l *Library) AddCell(cell *Cell, universe ...*Cell) (CellID, error) {
	byName := make(map[string]*Cell, len(universe)+1)
	byName[cell.Name] = cell
	for _, c := range universe {
		byName[c.Name] = c
	}
	return l.arena.AddCell(cell, byName)
}

// RemoveCell removes one cell by id. It does not cascade: references
// from other cells to the removed one become dangling and are reported
// at serialization time rather than fixed up.
func (l *Library) RemoveCell(id CellID) {
	l.arena.RemoveCell(id)
}

// Cell returns the cell stored at id, or nil if id is unknown or has
// been removed.
func (l *Library) Cell(id CellID) *Cell {
	return l.arena.Get(id)
}

// TopCells returns the ids of every cell with in-degree zero in the
// reference graph: cells no other cell in the library references.
func (l *Library) TopCells() []CellID {
	return l.arena.TopCells()
}

// AllCells enumerates every cell currently in the library, in
// unspecified order.
func (l *Library) AllCells() []*Cell {
	entries := l.arena.AllCells()
	out := make([]*Cell, len(entries))
	for i, e := range entries {
		out[i] = e.Cell
	}
	return out
}

// Error is the structured error type every gdsii operation returns:
// a classified Kind, a human-readable message, and a byte offset when
// one is meaningful.
type Error = core.Error

// ErrorKind classifies an Error so callers can branch on failure
// category without parsing the message text.
type ErrorKind = core.Kind
