package structures

import (
	"fmt"

	"github.com/layoutkit/gdsii/internal/core"
)

// MaxPolygonPoints is the largest vertex count a single BOUNDARY element
// may carry, GDSII's own limit on an XY record's practical size.
const MaxPolygonPoints = 8190

// Point is a single (x, y) coordinate, in user units once decoded from the
// wire's scaled database-unit integers.
type Point struct {
	X, Y float64
}

// Polygon is a GDSII BOUNDARY element.
type Polygon struct {
	Layer      int16
	DataType   int16
	Points     []Point
	Properties Properties
}

// NewPolygon validates point count and returns a Polygon with an empty
// property bag.
func NewPolygon(layer, dataType int16, points []Point) (*Polygon, error) {
	if len(points) > MaxPolygonPoints {
		return nil, core.NewError(core.KindNameConstraint,
			fmt.Sprintf("polygon has %d vertices, exceeding the %d limit", len(points), MaxPolygonPoints))
	}
	return &Polygon{Layer: layer, DataType: dataType, Points: points, Properties: Properties{}}, nil
}

// ClosedPoints returns the on-wire vertex list: Points with the first
// vertex repeated at the end, as BOUNDARY's XY record requires.
func (p *Polygon) ClosedPoints() []Point {
	if len(p.Points) == 0 {
		return nil
	}
	out := make([]Point, len(p.Points)+1)
	copy(out, p.Points)
	out[len(out)-1] = p.Points[0]
	return out
}

// StripClosure drops a trailing vertex that duplicates the first, the
// inverse of ClosedPoints, as performed when reading a BOUNDARY's XY.
func StripClosure(points []Point) []Point {
	if len(points) >= 2 && points[0] == points[len(points)-1] {
		return points[:len(points)-1]
	}
	return points
}
