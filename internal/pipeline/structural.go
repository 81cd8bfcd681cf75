package pipeline

import (
	"github.com/layoutkit/gdsii/internal/core"
	"github.com/layoutkit/gdsii/internal/graph"
	"github.com/layoutkit/gdsii/internal/structures"
)

// LibraryHeader carries the library-level fields gathered before the
// first BGNSTR.
type LibraryHeader struct {
	Version         int16
	Date            core.Date
	Name            string
	UserPerDbUnit   float64
	MetersPerDbUnit float64
}

// ParseResult is stage 3's output: the library header plus every parsed
// cell, with reference targets still pending (symbolic, by name).
type ParseResult struct {
	Header LibraryHeader
	Cells  []*graph.Cell
}

// Parse runs stage 3 over an ordered record stream: it expects HEADER
// then BGNLIB, gathers library fields until the first BGNSTR, then
// dispatches each element-begin marker to a builder until ENDEL, once
// per cell until ENDLIB.
func Parse(records []core.Record) (*ParseResult, error) {
	p := &parser{records: records}
	return p.run()
}

type parser struct {
	records []core.Record
	pos     int
	result  ParseResult
}

func (p *parser) run() (*ParseResult, error) {
	if err := p.expectHeader(); err != nil {
		return nil, err
	}
	if err := p.expectLibraryPreamble(); err != nil {
		return nil, err
	}
	for p.pos < len(p.records) {
		rec := p.peek()
		switch rec.(type) {
		case core.BgnStrRecord:
			cell, err := p.parseCell()
			if err != nil {
				return nil, err
			}
			p.result.Cells = append(p.result.Cells, cell)
		case core.EndLibRecord:
			p.pos++
			return &p.result, nil
		default:
			return nil, unexpected(rec, "BGNSTR or ENDLIB")
		}
	}
	return nil, core.NewError(core.KindMalformedRecord, "record stream ended before ENDLIB")
}

func (p *parser) peek() core.Record {
	if p.pos >= len(p.records) {
		return nil
	}
	return p.records[p.pos]
}

func (p *parser) next() core.Record {
	r := p.peek()
	p.pos++
	return r
}

func unexpected(rec core.Record, want string) error {
	if rec == nil {
		return core.NewError(core.KindMalformedRecord, "record stream ended while expecting "+want)
	}
	return core.NewErrorAt(core.KindMalformedRecord, rec.ByteOffset(),
		"expected "+want+", found "+rec.Kind().String())
}

func (p *parser) expectHeader() error {
	rec := p.next()
	h, ok := rec.(core.HeaderRecord)
	if !ok {
		return unexpected(rec, "HEADER")
	}
	p.result.Header.Version = h.Version
	return nil
}

func (p *parser) expectLibraryPreamble() error {
	rec := p.next()
	bgn, ok := rec.(core.BgnLibRecord)
	if !ok {
		return unexpected(rec, "BGNLIB")
	}
	p.result.Header.Date = bgn.Date

	rec = p.next()
	name, ok := rec.(core.LibNameRecord)
	if !ok {
		return unexpected(rec, "LIBNAME")
	}
	p.result.Header.Name = name.Name

	rec = p.next()
	units, ok := rec.(core.UnitsRecord)
	if !ok {
		return unexpected(rec, "UNITS")
	}
	p.result.Header.UserPerDbUnit = units.UserPerDbUnit
	p.result.Header.MetersPerDbUnit = units.MetersPerDbUnit
	return nil
}

func (p *parser) parseCell() (*graph.Cell, error) {
	bgn := p.next().(core.BgnStrRecord)
	cell := &graph.Cell{Date: bgn.Date}

	rec := p.next()
	name, ok := rec.(core.StrNameRecord)
	if !ok {
		return nil, unexpected(rec, "STRNAME")
	}
	if len(name.Name) > 32 {
		return nil, core.NewErrorAt(core.KindNameConstraint, rec.ByteOffset(),
			"cell name exceeds 32 characters")
	}
	cell.Name = name.Name

	for {
		rec := p.peek()
		switch r := rec.(type) {
		case core.EndStrRecord:
			p.pos++
			return cell, nil
		case core.BoundaryRecord:
			poly, err := p.parsePolygon()
			if err != nil {
				return nil, err
			}
			cell.Polygons = append(cell.Polygons, poly)
		case core.PathRecord:
			path, err := p.parsePath()
			if err != nil {
				return nil, err
			}
			cell.Paths = append(cell.Paths, path)
		case core.SRefRecord:
			ref, err := p.parseReference(false)
			if err != nil {
				return nil, err
			}
			cell.References = append(cell.References, ref)
		case core.ARefRecord:
			ref, err := p.parseReference(true)
			if err != nil {
				return nil, err
			}
			cell.References = append(cell.References, ref)
		case core.TextRecord:
			text, err := p.parseText()
			if err != nil {
				return nil, err
			}
			cell.Texts = append(cell.Texts, text)
		default:
			return nil, unexpected(r, "an element-begin marker or ENDSTR")
		}
	}
}

// parseProperties consumes a run of PROPATTR/PROPVALUE pairs until it
// sees ENDEL (left unconsumed for the caller) or any other record.
func (p *parser) parseProperties() (structures.Properties, error) {
	b := structures.NewPropertyBuilder()
	for {
		rec := p.peek()
		switch r := rec.(type) {
		case core.PropAttrRecord:
			p.pos++
			b.Attr(r.Key)
		case core.PropValueRecord:
			p.pos++
			if err := b.Value(r.ByteOffset(), r.Value); err != nil {
				return nil, err
			}
		default:
			var offset int64 = -1
			if rec != nil {
				offset = rec.ByteOffset()
			}
			return b.Finish(offset)
		}
	}
}

func (p *parser) expectEndEl() error {
	rec := p.next()
	if _, ok := rec.(core.EndElRecord); !ok {
		return unexpected(rec, "ENDEL")
	}
	return nil
}

func xyToPoints(xy core.XYRecord, userPerDbUnit float64) []structures.Point {
	out := make([]structures.Point, len(xy.Points))
	for i, pt := range xy.Points {
		out[i] = structures.Point{X: float64(pt[0]) * userPerDbUnit, Y: float64(pt[1]) * userPerDbUnit}
	}
	return out
}

func (p *parser) parsePolygon() (*structures.Polygon, error) {
	p.pos++ // BOUNDARY
	rec := p.next()
	layer, ok := rec.(core.LayerRecord)
	if !ok {
		return nil, unexpected(rec, "LAYER")
	}
	rec = p.next()
	dtype, ok := rec.(core.DataTypeRecord)
	if !ok {
		return nil, unexpected(rec, "DATATYPE")
	}
	rec = p.next()
	xy, ok := rec.(core.XYRecord)
	if !ok {
		return nil, unexpected(rec, "XY")
	}
	points := structures.StripClosure(xyToPoints(xy, p.result.Header.UserPerDbUnit))
	poly, err := structures.NewPolygon(layer.Value, dtype.Value, points)
	if err != nil {
		return nil, err
	}
	props, err := p.parseProperties()
	if err != nil {
		return nil, err
	}
	poly.Properties = props
	return poly, p.expectEndEl()
}

func (p *parser) parsePath() (*structures.Path, error) {
	p.pos++ // PATH
	rec := p.next()
	layer, ok := rec.(core.LayerRecord)
	if !ok {
		return nil, unexpected(rec, "LAYER")
	}
	rec = p.next()
	dtype, ok := rec.(core.DataTypeRecord)
	if !ok {
		return nil, unexpected(rec, "DATATYPE")
	}
	rec = p.next()
	ptype, ok := rec.(core.PathTypeRecord)
	if !ok {
		return nil, unexpected(rec, "PATHTYPE")
	}
	rec = p.next()
	width, ok := rec.(core.WidthRecord)
	if !ok {
		return nil, unexpected(rec, "WIDTH")
	}

	path := structures.NewPath(layer.Value, dtype.Value, float64(width.Value)*p.result.Header.UserPerDbUnit, nil)
	path.End = structures.EndStyle(ptype.Value)

	if path.End == structures.EndStyleExtend {
		rec = p.next()
		bgnExtn, ok := rec.(core.BgnExtnRecord)
		if !ok {
			return nil, unexpected(rec, "BGNEXTN")
		}
		rec = p.next()
		endExtn, ok := rec.(core.EndExtnRecord)
		if !ok {
			return nil, unexpected(rec, "ENDEXTN")
		}
		path.BeginExtn = float64(bgnExtn.Value) * p.result.Header.UserPerDbUnit
		path.EndExtn = float64(endExtn.Value) * p.result.Header.UserPerDbUnit
	}

	rec = p.next()
	xy, ok := rec.(core.XYRecord)
	if !ok {
		return nil, unexpected(rec, "XY")
	}
	path.Points = xyToPoints(xy, p.result.Header.UserPerDbUnit)

	props, err := p.parseProperties()
	if err != nil {
		return nil, err
	}
	path.Properties = props
	return path, p.expectEndEl()
}

func (p *parser) parseText() (*structures.Text, error) {
	p.pos++ // TEXT
	rec := p.next()
	layer, ok := rec.(core.LayerRecord)
	if !ok {
		return nil, unexpected(rec, "LAYER")
	}
	rec = p.next()
	ttype, ok := rec.(core.TextTypeRecord)
	if !ok {
		return nil, unexpected(rec, "TEXTTYPE")
	}
	rec = p.next()
	pres, ok := rec.(core.PresentationRecord)
	if !ok {
		return nil, unexpected(rec, "PRESENTATION")
	}

	text := &structures.Text{
		Layer: layer.Value, DataType: ttype.Value,
		Anchor: structures.PresentationToAnchor(pres.Flags),
		Font:   structures.PresentationFont(pres.Flags),
		Magnification: 1.0,
	}

	if sref, ok := p.peek().(core.StransRecord); ok {
		p.pos++
		text.XReflection = sref.Flags&0x8000 != 0
		rec = p.next()
		mag, ok := rec.(core.MagRecord)
		if !ok {
			return nil, unexpected(rec, "MAG")
		}
		text.Magnification = mag.Value
		rec = p.next()
		angle, ok := rec.(core.AngleRecord)
		if !ok {
			return nil, unexpected(rec, "ANGLE")
		}
		text.Rotation = angle.Value * (3.141592653589793 / 180)
	}

	rec = p.next()
	xy, ok := rec.(core.XYRecord)
	if !ok || len(xy.Points) < 1 {
		return nil, unexpected(rec, "XY")
	}
	pts := xyToPoints(xy, p.result.Header.UserPerDbUnit)
	text.Position = pts[0]

	rec = p.next()
	str, ok := rec.(core.StringRecord)
	if !ok {
		return nil, unexpected(rec, "STRING")
	}
	text.String = str.Value

	props, err := p.parseProperties()
	if err != nil {
		return nil, err
	}
	text.Properties = props
	return text, p.expectEndEl()
}

func (p *parser) parseReference(isArray bool) (*structures.Reference, error) {
	p.pos++ // SREF or AREF

	rec := p.next()
	sname, ok := rec.(core.SNameRecord)
	if !ok {
		return nil, unexpected(rec, "SNAME")
	}

	ref := &structures.Reference{
		Target:        structures.PendingReference{Name: sname.Name},
		Magnification: 1.0,
		Properties:    structures.Properties{},
	}

	if sref, ok := p.peek().(core.StransRecord); ok {
		p.pos++
		ref.XReflection = sref.Flags&0x8000 != 0
		rec = p.next()
		mag, ok := rec.(core.MagRecord)
		if !ok {
			return nil, unexpected(rec, "MAG")
		}
		ref.Magnification = mag.Value
		rec = p.next()
		angle, ok := rec.(core.AngleRecord)
		if !ok {
			return nil, unexpected(rec, "ANGLE")
		}
		ref.Angle = angle.Value
	}

	var colrow core.ColRowRecord
	if isArray {
		rec = p.next()
		cr, ok := rec.(core.ColRowRecord)
		if !ok {
			return nil, unexpected(rec, "COLROW")
		}
		colrow = cr
	}

	rec = p.next()
	xy, ok := rec.(core.XYRecord)
	if !ok {
		return nil, unexpected(rec, "XY")
	}
	pts := xyToPoints(xy, p.result.Header.UserPerDbUnit)

	if isArray {
		if len(pts) != 3 {
			return nil, core.NewErrorAt(core.KindMalformedRecord, xy.ByteOffset(),
				"AREF XY must carry exactly 3 points")
		}
		origin, colCorner, rowCorner := pts[0], pts[1], pts[2]
		ref.Origin = origin
		ref.Array = &structures.ArrayParams{
			Rows: colrow.Rows,
			Cols: colrow.Cols,
			ColSpacing: structures.Vector{
				DX: (colCorner.X - origin.X) / float64(colrow.Cols),
				DY: (colCorner.Y - origin.Y) / float64(colrow.Cols),
			},
			RowSpacing: structures.Vector{
				DX: (rowCorner.X - origin.X) / float64(colrow.Rows),
				DY: (rowCorner.Y - origin.Y) / float64(colrow.Rows),
			},
		}
	} else {
		if len(pts) != 1 {
			return nil, core.NewErrorAt(core.KindMalformedRecord, xy.ByteOffset(),
				"SREF XY must carry exactly 1 point")
		}
		ref.Origin = pts[0]
	}

	props, err := p.parseProperties()
	if err != nil {
		return nil, err
	}
	ref.Properties = props
	return ref, p.expectEndEl()
}
