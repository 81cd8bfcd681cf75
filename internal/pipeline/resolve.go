package pipeline

import (
	"github.com/layoutkit/gdsii/internal/core"
	"github.com/layoutkit/gdsii/internal/graph"
)

// Resolve runs stage 4: it builds a name index over every parsed cell,
// then adds each one to a fresh arena, which resolves every reference's
// symbolic target name to a concrete CellID and checks the reference
// graph stays a DAG. A reference whose target name never appears among
// the parsed cells fails as UnresolvedReference; two same-named cells
// fail as DuplicateCellName; any reference closing a cycle fails as
// CycleDetected. Resolve never returns a partially-linked arena: on
// error the returned arena is nil.
func Resolve(result *ParseResult) (*graph.Arena, error) {
	universe := make(map[string]*graph.Cell, len(result.Cells))
	for _, cell := range result.Cells {
		if existing, ok := universe[cell.Name]; ok && existing != cell {
			return nil, core.NewError(core.KindDuplicateCellName,
				"cell named \""+cell.Name+"\" appears more than once in the parsed library")
		}
		universe[cell.Name] = cell
	}

	arena := graph.NewArena()
	for _, cell := range result.Cells {
		if _, err := arena.AddCell(cell, universe); err != nil {
			return nil, err
		}
	}
	return arena, nil
}
