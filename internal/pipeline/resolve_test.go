package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/layoutkit/gdsii/internal/core"
	"github.com/layoutkit/gdsii/internal/structures"
)

func parseBuf(t *testing.T, buf []byte) *ParseResult {
	t.Helper()
	records, err := Decode(buf, 0)
	require.NoError(t, err)
	result, err := Parse(records)
	require.NoError(t, err)
	return result
}

func TestResolve_LinksReferenceToTarget(t *testing.T) {
	buf := buildLibrary(buildTriangleCell("TRI"), buildRefCell("TOP", "TRI"))
	result := parseBuf(t, buf)

	arena, err := Resolve(result)
	require.NoError(t, err)

	topID, ok := arena.Lookup("TOP")
	require.True(t, ok)
	top := arena.Get(topID)
	require.Len(t, top.References, 1)

	resolved, ok := top.References[0].Target.(structures.ResolvedReference)
	require.True(t, ok)
	require.Equal(t, "TRI", resolved.Name)

	top2Cells := arena.TopCells()
	require.Equal(t, []structures.CellID{topID}, top2Cells)
}

func TestResolve_UnresolvedReferenceFails(t *testing.T) {
	buf := buildLibrary(buildRefCell("TOP", "MISSING"))
	result := parseBuf(t, buf)

	_, err := Resolve(result)
	require.Error(t, err)
	var gdsErr *core.Error
	require.ErrorAs(t, err, &gdsErr)
	require.Equal(t, core.KindUnresolvedReference, gdsErr.Kind)
}

func TestResolve_DuplicateCellNameFails(t *testing.T) {
	buf := buildLibrary(buildTriangleCell("DUP"), buildTriangleCell("DUP"))
	result := parseBuf(t, buf)

	_, err := Resolve(result)
	require.Error(t, err)
	var gdsErr *core.Error
	require.ErrorAs(t, err, &gdsErr)
	require.Equal(t, core.KindDuplicateCellName, gdsErr.Kind)
}

func TestResolve_EmptyLibrary(t *testing.T) {
	buf := buildLibrary()
	result := parseBuf(t, buf)

	arena, err := Resolve(result)
	require.NoError(t, err)
	require.Empty(t, arena.AllCells())
}
