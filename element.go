package gdsii

import "github.com/layoutkit/gdsii/internal/structures"

// Point is a single (x, y) user-unit coordinate.
type Point = structures.Point

// Vector is a displacement between two points.
type Vector = structures.Vector

// Properties is the integer-keyed, ASCII-valued attribute bag every
// element carries.
type Properties = structures.Properties

// Polygon is a GDSII BOUNDARY element.
type Polygon = structures.Polygon

// MaxPolygonPoints is the largest vertex count one polygon may carry.
const MaxPolygonPoints = structures.MaxPolygonPoints

// NewPolygon returns a Polygon on the given layer/datatype, validating
// its vertex count.
func NewPolygon(layer, dataType int16, points []Point) (*Polygon, error) {
	return structures.NewPolygon(layer, dataType, points)
}

// EndStyle is a path's end-cap style.
type EndStyle = structures.EndStyle

const (
	EndStyleFlush           = structures.EndStyleFlush
	EndStyleRound           = structures.EndStyleRound
	EndStyleExtendHalfWidth = structures.EndStyleExtendHalfWidth
	EndStyleExtend          = structures.EndStyleExtend
)

// Path is a GDSII PATH element.
type Path = structures.Path

// NewPath returns a Path with flush ends and no properties.
func NewPath(layer, dataType int16, width float64, points []Point) *Path {
	return structures.NewPath(layer, dataType, width, points)
}

// Anchor is a text element's nine-way justification.
type Anchor = structures.Anchor

const (
	AnchorNW = structures.AnchorNW
	AnchorN  = structures.AnchorN
	AnchorNE = structures.AnchorNE
	AnchorW  = structures.AnchorW
	AnchorO  = structures.AnchorO
	AnchorE  = structures.AnchorE
	AnchorSW = structures.AnchorSW
	AnchorS  = structures.AnchorS
	AnchorSE = structures.AnchorSE
)

// Text is a GDSII TEXT (label) element.
type Text = structures.Text

// NewText returns a Text centered at position with default magnification.
func NewText(layer, dataType int16, s string, position Point) *Text {
	return structures.NewText(layer, dataType, s, position)
}

// ArrayParams carries an AREF's row/column counts and spacing vectors.
type ArrayParams = structures.ArrayParams

// Reference is a placement of another cell: an SREF when Array is nil,
// an AREF otherwise.
type Reference = structures.Reference

// ReferenceTarget is the cell a Reference points at.
type ReferenceTarget = structures.ReferenceTarget

// PendingReference holds a reference's target by name only, before it
// has been bound to a cell in a library.
type PendingReference = structures.PendingReference

// ResolvedReference holds a reference's target as a concrete CellID,
// once it has been bound to a cell in a library.
type ResolvedReference = structures.ResolvedReference

// NewReference returns a single-placement (SREF) reference to targetName.
func NewReference(targetName string, origin Point) *Reference {
	return structures.NewSRef(targetName, origin)
}

// NewArrayReference returns an array-placement (AREF) reference to
// targetName.
func NewArrayReference(targetName string, origin Point, array ArrayParams) *Reference {
	return structures.NewARef(targetName, origin, array)
}
