// Package writer serializes a parsed-or-built library back to the GDSII
// wire format: computing the user-to-database scaling factor once and
// emitting HEADER/BGNLIB/LIBNAME/UNITS, each cell's BGNSTR/STRNAME/
// elements/ENDSTR, and a trailing ENDLIB.
package writer

import (
	"math"

	"github.com/layoutkit/gdsii/internal/core"
	"github.com/layoutkit/gdsii/internal/graph"
	"github.com/layoutkit/gdsii/internal/structures"
)

// Header carries the library-level fields the writer needs, mirroring
// pipeline.LibraryHeader without importing it (writer never depends on
// the read-side pipeline).
type Header struct {
	Version         int16
	Date            core.Date
	Name            string
	UserPerDbUnit   float64
	MetersPerDbUnit float64
}

// Scaling returns the database-units-per-user-unit factor applied to
// every coordinate on write: units/precision, the inverse of the UNITS
// record's first field.
func (h Header) Scaling() float64 {
	return 1 / h.UserPerDbUnit
}

// Emit serializes header and cells (in the order they're given) to the
// GDSII wire format, in the element order polygons/paths/references/
// texts within each cell.
func Emit(header Header, cells []*graph.Cell) ([]byte, error) {
	scaling := header.Scaling()

	var out []byte
	out = append(out, core.EncodeRecord(core.KindHeader, core.EncodeInt16(nil, header.Version))...)
	out = append(out, core.EncodeRecord(core.KindBgnLib, dateBytes(header.Date))...)
	out = append(out, core.EncodeRecord(core.KindLibName, core.EncodeASCII(nil, header.Name))...)

	unitsPayload, err := core.EncodeReal8(nil, header.UserPerDbUnit)
	if err != nil {
		return nil, err
	}
	unitsPayload, err = core.EncodeReal8(unitsPayload, header.MetersPerDbUnit)
	if err != nil {
		return nil, err
	}
	out = append(out, core.EncodeRecord(core.KindUnits, unitsPayload)...)

	for _, cell := range cells {
		cellBytes, err := emitCell(cell, scaling)
		if err != nil {
			return nil, err
		}
		out = append(out, cellBytes...)
	}

	out = append(out, core.EncodeRecord(core.KindEndLib, nil)...)
	return out, nil
}

func dateBytes(d core.Date) []byte {
	var out []byte
	for _, v := range d.Int16s() {
		out = core.EncodeInt16(out, v)
	}
	return out
}

func emitCell(cell *graph.Cell, scaling float64) ([]byte, error) {
	var out []byte
	out = append(out, core.EncodeRecord(core.KindBgnStr, dateBytes(cell.Date))...)
	out = append(out, core.EncodeRecord(core.KindStrName, core.EncodeASCII(nil, cell.Name))...)

	for _, poly := range cell.Polygons {
		b, err := emitPolygon(poly, scaling)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	for _, path := range cell.Paths {
		b, err := emitPath(path, scaling)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	for _, ref := range cell.References {
		b, err := emitReference(ref, scaling)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	for _, text := range cell.Texts {
		b, err := emitText(text, scaling)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}

	out = append(out, core.EncodeRecord(core.KindEndStr, nil)...)
	return out, nil
}

// checkLayerRange rejects a layer or datatype value outside the
// conventional 0-255 range. Unlike the read side, the writer has no
// strict/warn-only mode to pick between: a value this far out of range
// can only have come from a caller-built element, so it is always an
// error here.
func checkLayerRange(what string, value int16) error {
	if value >= 0 && value <= 255 {
		return nil
	}
	return core.NewError(core.KindNameConstraint, what+" value out of the conventional 0-255 range")
}

// scaleCoord rounds v*scaling to the nearest database-unit integer and
// rejects values that would not fit in a signed 32-bit integer.
func scaleCoord(v, scaling float64) (int32, error) {
	scaled := math.Round(v * scaling)
	if scaled > math.MaxInt32 || scaled < math.MinInt32 {
		return 0, core.NewError(core.KindCoordinateOverflow, "scaled coordinate does not fit in a signed 32-bit integer")
	}
	return int32(scaled), nil
}

func encodeXY(points []structures.Point, scaling float64) ([]byte, error) {
	var out []byte
	for _, pt := range points {
		x, err := scaleCoord(pt.X, scaling)
		if err != nil {
			return nil, err
		}
		y, err := scaleCoord(pt.Y, scaling)
		if err != nil {
			return nil, err
		}
		out = core.EncodeInt32(out, x)
		out = core.EncodeInt32(out, y)
	}
	return out, nil
}

func emitProperties(props structures.Properties) []byte {
	var out []byte
	for key, value := range props {
		out = append(out, core.EncodeRecord(core.KindPropAttr, core.EncodeInt16(nil, key))...)
		out = append(out, core.EncodeRecord(core.KindPropValue, core.EncodeASCII(nil, value))...)
	}
	return out
}

func emitPolygon(poly *structures.Polygon, scaling float64) ([]byte, error) {
	if err := checkLayerRange("layer", poly.Layer); err != nil {
		return nil, err
	}
	if err := checkLayerRange("datatype", poly.DataType); err != nil {
		return nil, err
	}
	xy, err := encodeXY(poly.ClosedPoints(), scaling)
	if err != nil {
		return nil, err
	}
	var out []byte
	out = append(out, core.EncodeRecord(core.KindBoundary, nil)...)
	out = append(out, core.EncodeRecord(core.KindLayer, core.EncodeInt16(nil, poly.Layer))...)
	out = append(out, core.EncodeRecord(core.KindDataType, core.EncodeInt16(nil, poly.DataType))...)
	out = append(out, core.EncodeRecord(core.KindXY, xy)...)
	out = append(out, emitProperties(poly.Properties)...)
	out = append(out, core.EncodeRecord(core.KindEndEl, nil)...)
	return out, nil
}

func emitPath(path *structures.Path, scaling float64) ([]byte, error) {
	if err := checkLayerRange("layer", path.Layer); err != nil {
		return nil, err
	}
	if err := checkLayerRange("datatype", path.DataType); err != nil {
		return nil, err
	}
	width, err := scaleCoord(path.Width, scaling)
	if err != nil {
		return nil, err
	}
	xy, err := encodeXY(path.Points, scaling)
	if err != nil {
		return nil, err
	}

	var out []byte
	out = append(out, core.EncodeRecord(core.KindPath, nil)...)
	out = append(out, core.EncodeRecord(core.KindLayer, core.EncodeInt16(nil, path.Layer))...)
	out = append(out, core.EncodeRecord(core.KindDataType, core.EncodeInt16(nil, path.DataType))...)
	out = append(out, core.EncodeRecord(core.KindPathType, core.EncodeInt16(nil, int16(path.End)))...)
	out = append(out, core.EncodeRecord(core.KindWidth, core.EncodeInt32(nil, width))...)

	if path.End == structures.EndStyleExtend {
		beginExtn, err := scaleCoord(path.BeginExtn, scaling)
		if err != nil {
			return nil, err
		}
		endExtn, err := scaleCoord(path.EndExtn, scaling)
		if err != nil {
			return nil, err
		}
		out = append(out, core.EncodeRecord(core.KindBgnExtn, core.EncodeInt32(nil, beginExtn))...)
		out = append(out, core.EncodeRecord(core.KindEndExtn, core.EncodeInt32(nil, endExtn))...)
	}

	out = append(out, core.EncodeRecord(core.KindXY, xy)...)
	out = append(out, emitProperties(path.Properties)...)
	out = append(out, core.EncodeRecord(core.KindEndEl, nil)...)
	return out, nil
}

func emitTransform(out []byte, xReflection bool, magnification, angleDegrees float64) ([]byte, error) {
	hasTransform := xReflection || magnification != 1.0 || angleDegrees != 0
	if !hasTransform {
		return out, nil
	}
	var flags uint16
	if xReflection {
		flags |= 0x8000
	}
	out = append(out, core.EncodeRecord(core.KindStrans, core.EncodeUint16(nil, flags))...)
	magBytes, err := core.EncodeReal8(nil, magnification)
	if err != nil {
		return nil, err
	}
	out = append(out, core.EncodeRecord(core.KindMag, magBytes)...)
	angleBytes, err := core.EncodeReal8(nil, angleDegrees)
	if err != nil {
		return nil, err
	}
	out = append(out, core.EncodeRecord(core.KindAngle, angleBytes)...)
	return out, nil
}

func referenceName(ref *structures.Reference) string {
	switch t := ref.Target.(type) {
	case structures.ResolvedReference:
		return t.Name
	case structures.PendingReference:
		return t.Name
	default:
		return ""
	}
}

func emitReference(ref *structures.Reference, scaling float64) ([]byte, error) {
	var out []byte
	if ref.IsArray() {
		out = append(out, core.EncodeRecord(core.KindARef, nil)...)
	} else {
		out = append(out, core.EncodeRecord(core.KindSRef, nil)...)
	}
	out = append(out, core.EncodeRecord(core.KindSName, core.EncodeASCII(nil, referenceName(ref)))...)
	out, err := emitTransform(out, ref.XReflection, ref.Magnification, ref.Angle)
	if err != nil {
		return nil, err
	}

	var points []structures.Point
	if ref.IsArray() {
		a := ref.Array
		out = append(out, core.EncodeRecord(core.KindColRow, append(core.EncodeInt16(nil, a.Cols), core.EncodeInt16(nil, a.Rows)...))...)
		colCorner := structures.Point{
			X: ref.Origin.X + float64(a.Cols)*a.ColSpacing.DX,
			Y: ref.Origin.Y + float64(a.Cols)*a.ColSpacing.DY,
		}
		rowCorner := structures.Point{
			X: ref.Origin.X + float64(a.Rows)*a.RowSpacing.DX,
			Y: ref.Origin.Y + float64(a.Rows)*a.RowSpacing.DY,
		}
		points = []structures.Point{ref.Origin, colCorner, rowCorner}
	} else {
		points = []structures.Point{ref.Origin}
	}
	xy, err := encodeXY(points, scaling)
	if err != nil {
		return nil, err
	}
	out = append(out, core.EncodeRecord(core.KindXY, xy)...)
	out = append(out, emitProperties(ref.Properties)...)
	out = append(out, core.EncodeRecord(core.KindEndEl, nil)...)
	return out, nil
}

func emitText(text *structures.Text, scaling float64) ([]byte, error) {
	if err := checkLayerRange("layer", text.Layer); err != nil {
		return nil, err
	}
	if err := checkLayerRange("datatype", text.DataType); err != nil {
		return nil, err
	}
	var out []byte
	out = append(out, core.EncodeRecord(core.KindText, nil)...)
	out = append(out, core.EncodeRecord(core.KindLayer, core.EncodeInt16(nil, text.Layer))...)
	out = append(out, core.EncodeRecord(core.KindTextType, core.EncodeInt16(nil, text.DataType))...)
	presentation := structures.AnchorToPresentation(text.Anchor, text.Font)
	out = append(out, core.EncodeRecord(core.KindPresentation, core.EncodeUint16(nil, presentation))...)
	out, err := emitTransform(out, text.XReflection, text.Magnification, text.Rotation*(180/math.Pi))
	if err != nil {
		return nil, err
	}

	xy, err := encodeXY([]structures.Point{text.Position}, scaling)
	if err != nil {
		return nil, err
	}
	out = append(out, core.EncodeRecord(core.KindXY, xy)...)
	out = append(out, core.EncodeRecord(core.KindString, core.EncodeASCII(nil, text.String))...)
	out = append(out, emitProperties(text.Properties)...)
	out = append(out, core.EncodeRecord(core.KindEndEl, nil)...)
	return out, nil
}
