package structures

// Vector is a displacement between two points, used for array reference
// row/column spacing.
type Vector struct {
	DX, DY float64
}

// ArrayParams carries an AREF's row/column counts and spacing vectors. A
// Reference with Array == nil is a single SREF placement.
type ArrayParams struct {
	Rows, Cols  int16
	RowSpacing  Vector
	ColSpacing  Vector
}

// Reference is a placement of another cell: a single SREF when Array is
// nil, an AREF otherwise. Target starts out as a PendingReference (a bare
// cell name, before stage 4 resolution) and becomes a ResolvedReference
// once the structural parse's output has been bound to real cells.
type Reference struct {
	Target        ReferenceTarget
	XReflection   bool
	Magnification float64
	Angle         float64 // degrees, counterclockwise
	Origin        Point
	Array         *ArrayParams
	Properties    Properties
}

// NewSRef returns a single-placement reference to targetName, pending
// resolution.
func NewSRef(targetName string, origin Point) *Reference {
	return &Reference{
		Target:        PendingReference{Name: targetName},
		Magnification: 1.0,
		Origin:        origin,
		Properties:    Properties{},
	}
}

// NewARef returns an array-placement reference to targetName, pending
// resolution.
func NewARef(targetName string, origin Point, array ArrayParams) *Reference {
	return &Reference{
		Target:        PendingReference{Name: targetName},
		Magnification: 1.0,
		Origin:        origin,
		Array:         &array,
		Properties:    Properties{},
	}
}

// IsArray reports whether this reference is an AREF.
func (r *Reference) IsArray() bool {
	return r.Array != nil
}

// ReferenceTarget is the cell a Reference points at: either a
// PendingReference (symbolic, by name, used between stage 3 and stage 4
// of parsing) or a caller-supplied ResolvedReference (an opaque handle
// into a library's cell arena, used once resolution has run or when an
// application builds references programmatically against cells it
// already holds).
type ReferenceTarget interface {
	referenceTarget()
}

// PendingReference holds a reference's target by name only, before the
// library's cell index has been built. This is the "FakeRef" of the
// two-phase resolution scheme: stage 3 never looks up cells, so a
// reference to a forward-declared or not-yet-parsed cell is never an
// error at this point.
type PendingReference struct {
	Name string
}

func (PendingReference) referenceTarget() {}

// CellID is a stable, arena-relative identifier for a cell held by a
// library. It never aliases a pointer or address: two cells with
// identical contents still get distinct CellIDs, and a CellID remains
// valid for the cell's entire membership in the library that issued it.
type CellID uint32

// ResolvedReference holds a reference's target as a concrete cell
// identifier, once stage 4 (or an application building a library
// directly) has bound it.
type ResolvedReference struct {
	CellID CellID
	Name   string
}

func (ResolvedReference) referenceTarget() {}
