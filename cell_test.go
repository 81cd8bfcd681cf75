package gdsii

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCell_StartsEmpty(t *testing.T) {
	cell := NewCell("A")
	require.Equal(t, "A", cell.Name)
	require.Empty(t, cell.Polygons)
	require.Empty(t, cell.Paths)
	require.Empty(t, cell.References)
	require.Empty(t, cell.Texts)
}

func TestLibrary_CellReturnsNilForUnknownID(t *testing.T) {
	lib := NewLibrary("X")
	require.Nil(t, lib.Cell(CellID(42)))
}

func TestLibrary_RemoveCell(t *testing.T) {
	lib := NewLibrary("X")
	id, err := lib.AddCell(NewCell("A"))
	require.NoError(t, err)

	lib.RemoveCell(id)
	require.Nil(t, lib.Cell(id))
}
