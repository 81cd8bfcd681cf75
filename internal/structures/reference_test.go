package structures

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSRef_StartsPending(t *testing.T) {
	ref := NewSRef("CELL_A", Point{X: 1, Y: 2})
	pending, ok := ref.Target.(PendingReference)
	require.True(t, ok)
	require.Equal(t, "CELL_A", pending.Name)
	require.False(t, ref.IsArray())
	require.Equal(t, 1.0, ref.Magnification)
}

func TestNewARef_IsArray(t *testing.T) {
	ref := NewARef("CELL_B", Point{}, ArrayParams{Rows: 3, Cols: 2, RowSpacing: Vector{DX: 0, DY: 50}, ColSpacing: Vector{DX: 50, DY: 0}})
	require.True(t, ref.IsArray())
	require.Equal(t, int16(3), ref.Array.Rows)
	require.Equal(t, int16(2), ref.Array.Cols)
}

func TestReference_ResolvedTarget(t *testing.T) {
	ref := NewSRef("CELL_A", Point{})
	ref.Target = ResolvedReference{CellID: 7, Name: "CELL_A"}
	resolved, ok := ref.Target.(ResolvedReference)
	require.True(t, ok)
	require.Equal(t, CellID(7), resolved.CellID)
}
