package graph

import (
	"github.com/layoutkit/gdsii/internal/core"
	"github.com/layoutkit/gdsii/internal/structures"
)

// transaction records everything AddCell did so it can be undone if a
// descendant insertion fails partway through a recursive call.
type transaction struct {
	insertedIDs []structures.CellID
	addedEdges  []edge
}

type edge struct{ from, to structures.CellID }

func (a *Arena) rollback(tx *transaction) {
	for i := len(tx.addedEdges) - 1; i >= 0; i-- {
		e := tx.addedEdges[i]
		delete(a.adjacency[e.from], e.to)
	}
	for i := len(tx.insertedIDs) - 1; i >= 0; i-- {
		a.remove(tx.insertedIDs[i])
	}
}

// AddCell inserts cell and, recursively, every cell transitively
// reachable through its References, resolving each pending reference
// target against universe (a name-indexed lookup of cells the caller
// intends to be addable — typically every cell parsed from one file, or
// every cell a program has built so far). It fails with
// DuplicateCellName if a reachable cell's name collides with a
// different cell already in the arena, or with CycleDetected if any
// reference would close a cycle. On failure every insertion and edge
// this call made (including through recursive descent) is rolled back;
// the arena is left exactly as it was before the call.
func (a *Arena) AddCell(cell *Cell, universe map[string]*Cell) (structures.CellID, error) {
	tx := &transaction{}
	id, err := a.addCell(cell, universe, tx)
	if err != nil {
		a.rollback(tx)
		return 0, err
	}
	return id, nil
}

func (a *Arena) addCell(cell *Cell, universe map[string]*Cell, tx *transaction) (structures.CellID, error) {
	if existingID, ok := a.byName[cell.Name]; ok {
		if a.slots[existingID] != cell {
			return 0, core.NewError(core.KindDuplicateCellName,
				"cell named \""+cell.Name+"\" already exists in the library with different identity")
		}
		// Same cell reached again via another reference path: its own
		// references were already connected when it was first inserted.
		// Re-walking them here would recurse forever on any true cycle
		// instead of surfacing it as an edge-closing check below.
		return existingID, nil
	}

	id := a.insert(cell)
	tx.insertedIDs = append(tx.insertedIDs, id)

	if err := a.connectReferences(id, cell, universe, tx); err != nil {
		return 0, err
	}
	return id, nil
}

func (a *Arena) connectReferences(fromID structures.CellID, cell *Cell, universe map[string]*Cell, tx *transaction) error {
	for _, ref := range cell.References {
		name, resolved := targetName(ref)
		if resolved {
			continue
		}
		target, ok := universe[name]
		if !ok {
			return core.NewError(core.KindUnresolvedReference,
				"reference to cell \""+name+"\" has no matching cell in the supplied universe")
		}
		toID, err := a.addCell(target, universe, tx)
		if err != nil {
			return err
		}
		if a.adjacency[fromID][toID] {
			ref.Target = structures.ResolvedReference{CellID: toID, Name: target.Name}
			continue // edge already present, nothing new to check
		}
		if a.reaches(toID, fromID) {
			return core.NewError(core.KindCycleDetected,
				"adding reference from \""+cell.Name+"\" to \""+target.Name+"\" would create a cycle")
		}
		a.adjacency[fromID][toID] = true
		tx.addedEdges = append(tx.addedEdges, edge{from: fromID, to: toID})
		ref.Target = structures.ResolvedReference{CellID: toID, Name: target.Name}
	}
	return nil
}

func targetName(ref *structures.Reference) (string, bool) {
	switch t := ref.Target.(type) {
	case structures.PendingReference:
		return t.Name, false
	case structures.ResolvedReference:
		return t.Name, true
	default:
		return "", true
	}
}

// reaches reports whether to is reachable from from via existing edges.
// Cycle detection calls reaches(toID, fromID) to ask "does the edge's
// target already reach its source" before adding source->target.
func (a *Arena) reaches(from, to structures.CellID) bool {
	if from == to {
		return true
	}
	visited := make(map[structures.CellID]bool)
	stack := []structures.CellID{from}
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		if cur == to {
			return true
		}
		for next := range a.adjacency[cur] {
			if !visited[next] {
				stack = append(stack, next)
			}
		}
	}
	return false
}

// RemoveCell tombstones id's slot without touching other cells'
// references to it; those become dangling and are reported, not fixed
// up, at serialization time.
func (a *Arena) RemoveCell(id structures.CellID) {
	a.remove(id)
}

// TopCells returns every cell with in-degree zero in the reference
// graph: cells no other cell in the library references.
func (a *Arena) TopCells() []structures.CellID {
	inDegree := make(map[structures.CellID]int)
	for id := range a.adjacency {
		if a.slots[id] != nil {
			inDegree[id] = 0
		}
	}
	for _, targets := range a.adjacency {
		for to := range targets {
			if a.slots[to] != nil {
				inDegree[to]++
			}
		}
	}
	var top []structures.CellID
	for id, c := range a.slots {
		if c == nil {
			continue
		}
		if inDegree[structures.CellID(id)] == 0 {
			top = append(top, structures.CellID(id))
		}
	}
	return top
}
