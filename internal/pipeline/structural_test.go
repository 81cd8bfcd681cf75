package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/layoutkit/gdsii/internal/core"
	"github.com/layoutkit/gdsii/internal/structures"
)

func TestParse_EmptyLibrary(t *testing.T) {
	buf := buildLibrary()
	records, err := Decode(buf, 0)
	require.NoError(t, err)

	result, err := Parse(records)
	require.NoError(t, err)
	require.Equal(t, "LIB", result.Header.Name)
	require.InEpsilon(t, 1e-3, result.Header.UserPerDbUnit, 1e-12)
	require.Empty(t, result.Cells)
}

func TestParse_TriangleCell_ScalesCoordinates(t *testing.T) {
	buf := buildLibrary(buildTriangleCell("TRI"))
	records, err := Decode(buf, 0)
	require.NoError(t, err)

	result, err := Parse(records)
	require.NoError(t, err)
	require.Len(t, result.Cells, 1)

	cell := result.Cells[0]
	require.Equal(t, "TRI", cell.Name)
	require.Len(t, cell.Polygons, 1)

	poly := cell.Polygons[0]
	require.Equal(t, int16(1), poly.Layer)
	// UserPerDbUnit is 1e-3: raw database-unit integers are multiplied by
	// it to recover user-unit coordinates, and the closing vertex is
	// stripped.
	require.Equal(t, 3, len(poly.Points))
	require.InDelta(t, 0.1, poly.Points[1].X, 1e-9)
}

func TestParse_SRefCell_StartsPending(t *testing.T) {
	buf := buildLibrary(buildTriangleCell("TRI"), buildRefCell("TOP", "TRI"))
	records, err := Decode(buf, 0)
	require.NoError(t, err)

	result, err := Parse(records)
	require.NoError(t, err)
	require.Len(t, result.Cells, 2)

	top := result.Cells[1]
	require.Equal(t, "TOP", top.Name)
	require.Len(t, top.References, 1)
	pending, ok := top.References[0].Target.(structures.PendingReference)
	require.True(t, ok)
	require.Equal(t, "TRI", pending.Name)
}

func TestParse_RejectsWrongRecordOrder(t *testing.T) {
	buf := core.EncodeRecord(core.KindBgnLib, cellDate())
	records, err := Decode(buf, 0)
	require.NoError(t, err)

	_, err = Parse(records)
	require.Error(t, err)
	var gdsErr *core.Error
	require.ErrorAs(t, err, &gdsErr)
	require.Equal(t, core.KindMalformedRecord, gdsErr.Kind)
}

func TestParse_RejectsOverlongCellName(t *testing.T) {
	longName := ""
	for i := 0; i < 33; i++ {
		longName += "A"
	}
	buf := buildLibrary(buildTriangleCell(longName))
	records, err := Decode(buf, 0)
	require.NoError(t, err)

	_, err = Parse(records)
	require.Error(t, err)
	var gdsErr *core.Error
	require.ErrorAs(t, err, &gdsErr)
	require.Equal(t, core.KindNameConstraint, gdsErr.Kind)
}

func TestParse_OrphanPropValue(t *testing.T) {
	var buf []byte
	buf = append(buf, core.EncodeRecord(core.KindBgnStr, cellDate())...)
	buf = append(buf, core.EncodeRecord(core.KindStrName, core.EncodeASCII(nil, "TRI"))...)
	buf = append(buf, core.EncodeRecord(core.KindBoundary, nil)...)
	buf = append(buf, core.EncodeRecord(core.KindLayer, core.EncodeInt16(nil, 1))...)
	buf = append(buf, core.EncodeRecord(core.KindDataType, core.EncodeInt16(nil, 0))...)
	xy := core.EncodeInt32(nil, 0)
	xy = core.EncodeInt32(xy, 0)
	buf = append(buf, core.EncodeRecord(core.KindXY, xy)...)
	buf = append(buf, core.EncodeRecord(core.KindPropValue, core.EncodeASCII(nil, "orphan"))...)
	buf = append(buf, core.EncodeRecord(core.KindEndEl, nil)...)
	buf = append(buf, core.EncodeRecord(core.KindEndStr, nil)...)

	full := buildLibrary(buf)
	records, err := Decode(full, 0)
	require.NoError(t, err)

	_, err = Parse(records)
	require.Error(t, err)
	var gdsErr *core.Error
	require.ErrorAs(t, err, &gdsErr)
	require.Equal(t, core.KindOrphanProperty, gdsErr.Kind)
}
