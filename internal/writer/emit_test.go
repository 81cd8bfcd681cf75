package writer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/layoutkit/gdsii/internal/core"
	"github.com/layoutkit/gdsii/internal/graph"
	"github.com/layoutkit/gdsii/internal/pipeline"
	"github.com/layoutkit/gdsii/internal/structures"
)

func TestEmit_EmptyLibrary_FramesCleanly(t *testing.T) {
	header := Header{Version: 600, UserPerDbUnit: 1e-3, MetersPerDbUnit: 1e-9}
	buf, err := Emit(header, nil)
	require.NoError(t, err)

	frames, err := core.FrameAll(buf)
	require.NoError(t, err)
	require.NotEmpty(t, frames)
	require.Equal(t, core.KindEndLib, mustDecode(t, frames[len(frames)-1]).Kind())
}

func TestEmit_TriangleCell_RoundTripsThroughReadPipeline(t *testing.T) {
	poly, err := structures.NewPolygon(1, 0, []structures.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	require.NoError(t, err)
	poly.Properties = structures.Properties{}

	cell := &graph.Cell{Name: "TRI", Polygons: []*structures.Polygon{poly}}
	header := Header{Version: 600, UserPerDbUnit: 1e-3, MetersPerDbUnit: 1e-9}

	buf, err := Emit(header, []*graph.Cell{cell})
	require.NoError(t, err)

	records, err := pipeline.Decode(buf, 0)
	require.NoError(t, err)
	result, err := pipeline.Parse(records)
	require.NoError(t, err)
	require.Len(t, result.Cells, 1)

	got := result.Cells[0]
	require.Equal(t, "TRI", got.Name)
	require.Len(t, got.Polygons, 1)
	require.InDelta(t, 10.0, got.Polygons[0].Points[1].X, 1e-9)
}

func TestScaleCoord_RoundsToNearestInteger(t *testing.T) {
	v, err := scaleCoord(0.00101, 1000)
	require.NoError(t, err)
	require.Equal(t, int32(1), v)
}

func TestScaleCoord_RejectsOverflow(t *testing.T) {
	_, err := scaleCoord(1e12, 1)
	require.Error(t, err)
	var gdsErr *core.Error
	require.ErrorAs(t, err, &gdsErr)
	require.Equal(t, core.KindCoordinateOverflow, gdsErr.Kind)
}

func TestScaleCoord_AcceptsBoundaryValues(t *testing.T) {
	v, err := scaleCoord(float64(math.MaxInt32), 1)
	require.NoError(t, err)
	require.Equal(t, int32(math.MaxInt32), v)

	v, err = scaleCoord(float64(math.MinInt32), 1)
	require.NoError(t, err)
	require.Equal(t, int32(math.MinInt32), v)
}

func TestHeader_Scaling_IsInverseOfUserPerDbUnit(t *testing.T) {
	h := Header{UserPerDbUnit: 1e-3}
	require.InEpsilon(t, 1000.0, h.Scaling(), 1e-12)
}

func TestEmit_ExplicitExtendPath_EmitsExtensions(t *testing.T) {
	path := structures.NewPath(1, 0, 50.0, []structures.Point{{X: 0, Y: 0}, {X: 100, Y: 0}})
	path.End = structures.EndStyleExtend
	path.BeginExtn = 5.0
	path.EndExtn = 5.0

	cell := &graph.Cell{Name: "WIRE", Paths: []*structures.Path{path}}
	header := Header{Version: 600, UserPerDbUnit: 1e-3, MetersPerDbUnit: 1e-9}

	buf, err := Emit(header, []*graph.Cell{cell})
	require.NoError(t, err)

	records, err := pipeline.Decode(buf, 0)
	require.NoError(t, err)
	result, err := pipeline.Parse(records)
	require.NoError(t, err)

	got := result.Cells[0].Paths[0]
	require.Equal(t, structures.EndStyleExtend, got.End)
	require.InDelta(t, 5.0, got.BeginExtn, 1e-9)
	require.InDelta(t, 5.0, got.EndExtn, 1e-9)
}

func TestEmit_RejectsOutOfRangeLayer(t *testing.T) {
	poly, err := structures.NewPolygon(300, 0, []structures.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	require.NoError(t, err)
	poly.Properties = structures.Properties{}

	cell := &graph.Cell{Name: "BAD", Polygons: []*structures.Polygon{poly}}
	header := Header{Version: 600, UserPerDbUnit: 1e-3, MetersPerDbUnit: 1e-9}

	_, err = Emit(header, []*graph.Cell{cell})
	require.Error(t, err)
	var gdsErr *core.Error
	require.ErrorAs(t, err, &gdsErr)
	require.Equal(t, core.KindNameConstraint, gdsErr.Kind)
}

func TestEmit_RejectsOutOfRangeDataType(t *testing.T) {
	poly, err := structures.NewPolygon(1, 300, []structures.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	require.NoError(t, err)
	poly.Properties = structures.Properties{}

	cell := &graph.Cell{Name: "BAD", Polygons: []*structures.Polygon{poly}}
	header := Header{Version: 600, UserPerDbUnit: 1e-3, MetersPerDbUnit: 1e-9}

	_, err = Emit(header, []*graph.Cell{cell})
	require.Error(t, err)
	var gdsErr *core.Error
	require.ErrorAs(t, err, &gdsErr)
	require.Equal(t, core.KindNameConstraint, gdsErr.Kind)
}

func mustDecode(t *testing.T, f core.Frame) core.Record {
	t.Helper()
	rec, err := core.DecodeRecord(f)
	require.NoError(t, err)
	return rec
}
