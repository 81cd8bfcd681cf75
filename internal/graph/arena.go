// Package graph holds the library's cell arena and reference graph: a
// CellID-indexed store of cells plus the directed-acyclic-graph
// invariant over the reference edges between them. It replaces the
// original implementation's address-hashed Arc<RwLock<_>> aliasing with
// a flat arena, since Go has no stable object address to hash and no
// need for one: a cell's identity is its arena slot.
package graph

import (
	"github.com/layoutkit/gdsii/internal/core"
	"github.com/layoutkit/gdsii/internal/structures"
)

// Cell is the arena's payload: a named structure holding element
// collections. The graph package only cares about Name and the outgoing
// edges implied by References; everything else is opaque to it.
type Cell struct {
	Name       string
	Date       core.Date
	Polygons   []*structures.Polygon
	Paths      []*structures.Path
	References []*structures.Reference
	Texts      []*structures.Text
}

// Arena is the library's cell store: a dense slice of slots keyed by
// CellID, plus a name index kept in lockstep. Slot reuse never happens —
// removing a cell tombstones its slot rather than recycling the ID, so a
// stale ResolvedReference can always be detected as dangling rather than
// silently pointing at an unrelated cell.
type Arena struct {
	slots     []*Cell // nil entries are removed/tombstoned
	byName    map[string]structures.CellID
	adjacency map[structures.CellID]map[structures.CellID]bool
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{
		byName:    make(map[string]structures.CellID),
		adjacency: make(map[structures.CellID]map[structures.CellID]bool),
	}
}

// Get returns the cell at id, or nil if id was never issued or has been
// removed.
func (a *Arena) Get(id structures.CellID) *Cell {
	if int(id) >= len(a.slots) {
		return nil
	}
	return a.slots[id]
}

// Lookup returns the CellID of the cell named name, if present.
func (a *Arena) Lookup(name string) (structures.CellID, bool) {
	id, ok := a.byName[name]
	return id, ok
}

// AllCells enumerates every live cell and its id, in arena order (which
// is insertion order, not a meaningful graph order).
func (a *Arena) AllCells() []struct {
	ID   structures.CellID
	Cell *Cell
} {
	out := make([]struct {
		ID   structures.CellID
		Cell *Cell
	}, 0, len(a.slots))
	for id, c := range a.slots {
		if c != nil {
			out = append(out, struct {
				ID   structures.CellID
				Cell *Cell
			}{structures.CellID(id), c})
		}
	}
	return out
}

// insert allocates a new slot for cell and returns its id. Callers are
// responsible for transactional rollback on failure; insert itself never
// fails.
func (a *Arena) insert(cell *Cell) structures.CellID {
	id := structures.CellID(len(a.slots))
	a.slots = append(a.slots, cell)
	a.byName[cell.Name] = id
	a.adjacency[id] = make(map[structures.CellID]bool)
	return id
}

// remove tombstones id's slot, dropping it from the name index and
// adjacency map. It does not touch other cells' edges into id; those
// become dangling, reported at serialization time rather than eagerly.
func (a *Arena) remove(id structures.CellID) {
	c := a.Get(id)
	if c == nil {
		return
	}
	delete(a.byName, c.Name)
	delete(a.adjacency, id)
	a.slots[id] = nil
}
