package core

import "fmt"

// Record is a fully decoded GDSII record: a typed, position-tagged value
// produced by stage-2 decoding and consumed by the structural parser
// without needing to look at neighboring records.
type Record interface {
	Kind() RecordKind
	ByteOffset() int64
}

type base struct {
	kind RecordKind
	off  int64
}

func (b base) Kind() RecordKind   { return b.kind }
func (b base) ByteOffset() int64 { return b.off }

// EncodeRecord frames payload under kind's tag: a 2-byte big-endian
// total length (header included), the record-type and data-type bytes,
// then payload itself. payload must already be even-length.
func EncodeRecord(kind RecordKind, payload []byte) []byte {
	tagBytes := TagBytes(kind)
	out := make([]byte, 0, len(payload)+4)
	out = EncodeUint16(out, uint16(len(payload)+4))
	out = append(out, tagBytes[0], tagBytes[1])
	out = append(out, payload...)
	return out
}

// HeaderRecord carries the GDSII stream version (600 for modern files).
type HeaderRecord struct {
	base
	Version int16
}

// BgnLibRecord marks the beginning of the library and carries its
// modification/access timestamps.
type BgnLibRecord struct {
	base
	Date Date
}

// LibNameRecord carries the library's name.
type LibNameRecord struct {
	base
	Name string
}

// UnitsRecord carries the two UNITS doubles, in wire order: the number of
// user units per database unit (precision/user-unit — multiply a raw XY
// integer by this to recover a user-unit coordinate), then the number of
// meters per database unit (precision).
type UnitsRecord struct {
	base
	UserPerDbUnit   float64
	MetersPerDbUnit float64
}

// EndLibRecord terminates the library.
type EndLibRecord struct{ base }

// BgnStrRecord marks the beginning of a cell and carries its timestamps.
type BgnStrRecord struct {
	base
	Date Date
}

// StrNameRecord carries a cell's name.
type StrNameRecord struct {
	base
	Name string
}

// EndStrRecord terminates a cell.
type EndStrRecord struct{ base }

// BoundaryRecord marks the beginning of a polygon element.
type BoundaryRecord struct{ base }

// PathRecord marks the beginning of a path element.
type PathRecord struct{ base }

// SRefRecord marks the beginning of a single structure reference.
type SRefRecord struct{ base }

// ARefRecord marks the beginning of an array reference.
type ARefRecord struct{ base }

// TextRecord marks the beginning of a text (label) element.
type TextRecord struct{ base }

// LayerRecord carries an element's layer number.
type LayerRecord struct {
	base
	Value int16
}

// DataTypeRecord carries an element's datatype number.
type DataTypeRecord struct {
	base
	Value int16
}

// WidthRecord carries a path's width, in database units.
type WidthRecord struct {
	base
	Value int32
}

// XYRecord carries an element's vertex list as raw database-unit
// coordinate pairs.
type XYRecord struct {
	base
	Points [][2]int32
}

// EndElRecord terminates an element.
type EndElRecord struct{ base }

// SNameRecord carries a reference's target cell name.
type SNameRecord struct {
	base
	Name string
}

// ColRowRecord carries an array reference's column/row counts.
type ColRowRecord struct {
	base
	Cols int16
	Rows int16
}

// TextTypeRecord carries a text element's datatype number.
type TextTypeRecord struct {
	base
	Value int16
}

// PresentationRecord carries a text element's font/justification flags.
type PresentationRecord struct {
	base
	Flags uint16
}

// StringRecord carries a text element's string content.
type StringRecord struct {
	base
	Value string
}

// StransRecord carries a reference or text element's transform flags.
type StransRecord struct {
	base
	Flags uint16
}

// MagRecord carries a reference or text element's magnification.
type MagRecord struct {
	base
	Value float64
}

// AngleRecord carries a reference or text element's rotation, in degrees.
type AngleRecord struct {
	base
	Value float64
}

// PathTypeRecord carries a path's end-style code (0, 1, 2, or 4).
type PathTypeRecord struct {
	base
	Value int16
}

// PropAttrRecord carries a property key; must be followed by a matching
// PropValueRecord.
type PropAttrRecord struct {
	base
	Key int16
}

// PropValueRecord carries a property's ASCII value.
type PropValueRecord struct {
	base
	Value string
}

// BoxRecord marks the beginning of a BOX element. It decodes as its own
// marker record; the structural parser does not accept BOX elements and
// fails a cell that contains one as MalformedRecord.
type BoxRecord struct{ base }

// BoxTypeRecord carries a BOX element's datatype number.
type BoxTypeRecord struct {
	base
	Value int16
}

// BgnExtnRecord carries a path's begin-extension distance, in database
// units. Meaningful only when the path's end-style is explicit-extend.
type BgnExtnRecord struct {
	base
	Value int32
}

// EndExtnRecord carries a path's end-extension distance, in database
// units. Meaningful only when the path's end-style is explicit-extend.
type EndExtnRecord struct {
	base
	Value int32
}

// DecodeRecord decodes one framed record independently of its neighbors,
// per the §4.2 tag table. Unknown tags fail with KindUnsupportedRecord;
// reserved/obsolete tags are named in the error message rather than
// reported as a bare hex pair.
func DecodeRecord(f Frame) (Record, error) {
	wireTag := tag(f.RecordType, f.DataType)
	kind, ok := supportedTags[wireTag]
	if !ok {
		if name, reserved := reservedNames[f.RecordType]; reserved {
			return nil, NewErrorAt(KindUnsupportedRecord, f.Offset,
				fmt.Sprintf("reserved/obsolete record %s (tag 0x%02x%02x) is not supported", name, f.RecordType, f.DataType))
		}
		return nil, NewErrorAt(KindUnsupportedRecord, f.Offset,
			fmt.Sprintf("unknown record tag 0x%02x%02x", f.RecordType, f.DataType))
	}

	b := base{kind: kind, off: f.Offset}
	switch kind {
	case KindHeader:
		v, err := DecodeInt16s(f.Payload, f.Offset)
		if err != nil || len(v) < 1 {
			return nil, malformed(f, "HEADER requires one int16 version field", err)
		}
		return HeaderRecord{base: b, Version: v[0]}, nil
	case KindBgnLib:
		v, err := DecodeInt16s(f.Payload, f.Offset)
		if err != nil {
			return nil, err
		}
		d, err := DateFromInt16s(v, f.Offset)
		if err != nil {
			return nil, err
		}
		return BgnLibRecord{base: b, Date: d}, nil
	case KindLibName:
		s, err := DecodeASCII(f.Payload, f.Offset)
		if err != nil {
			return nil, err
		}
		return LibNameRecord{base: b, Name: s}, nil
	case KindUnits:
		v, err := DecodeReal8s(f.Payload, f.Offset)
		if err != nil || len(v) < 2 {
			return nil, malformed(f, "UNITS requires two float64 fields", err)
		}
		return UnitsRecord{base: b, UserPerDbUnit: v[0], MetersPerDbUnit: v[1]}, nil
	case KindEndLib:
		return EndLibRecord{base: b}, nil
	case KindBgnStr:
		v, err := DecodeInt16s(f.Payload, f.Offset)
		if err != nil {
			return nil, err
		}
		d, err := DateFromInt16s(v, f.Offset)
		if err != nil {
			return nil, err
		}
		return BgnStrRecord{base: b, Date: d}, nil
	case KindStrName:
		s, err := DecodeASCII(f.Payload, f.Offset)
		if err != nil {
			return nil, err
		}
		return StrNameRecord{base: b, Name: s}, nil
	case KindEndStr:
		return EndStrRecord{base: b}, nil
	case KindBoundary:
		return BoundaryRecord{base: b}, nil
	case KindPath:
		return PathRecord{base: b}, nil
	case KindSRef:
		return SRefRecord{base: b}, nil
	case KindARef:
		return ARefRecord{base: b}, nil
	case KindText:
		return TextRecord{base: b}, nil
	case KindLayer:
		v, err := DecodeInt16s(f.Payload, f.Offset)
		if err != nil || len(v) < 1 {
			return nil, malformed(f, "LAYER requires one int16 field", err)
		}
		return LayerRecord{base: b, Value: v[0]}, nil
	case KindDataType:
		v, err := DecodeInt16s(f.Payload, f.Offset)
		if err != nil || len(v) < 1 {
			return nil, malformed(f, "DATATYPE requires one int16 field", err)
		}
		return DataTypeRecord{base: b, Value: v[0]}, nil
	case KindWidth:
		v, err := DecodeInt32s(f.Payload, f.Offset)
		if err != nil || len(v) < 1 {
			return nil, malformed(f, "WIDTH requires one int32 field", err)
		}
		return WidthRecord{base: b, Value: v[0]}, nil
	case KindXY:
		v, err := DecodeInt32s(f.Payload, f.Offset)
		if err != nil {
			return nil, err
		}
		if len(v)%2 != 0 {
			return nil, NewErrorAt(KindMalformedRecord, f.Offset, "XY payload has an odd number of int32 values")
		}
		points := make([][2]int32, len(v)/2)
		for i := range points {
			points[i] = [2]int32{v[2*i], v[2*i+1]}
		}
		return XYRecord{base: b, Points: points}, nil
	case KindEndEl:
		return EndElRecord{base: b}, nil
	case KindSName:
		s, err := DecodeASCII(f.Payload, f.Offset)
		if err != nil {
			return nil, err
		}
		return SNameRecord{base: b, Name: s}, nil
	case KindColRow:
		v, err := DecodeInt16s(f.Payload, f.Offset)
		if err != nil || len(v) < 2 {
			return nil, malformed(f, "COLROW requires two int16 fields", err)
		}
		return ColRowRecord{base: b, Cols: v[0], Rows: v[1]}, nil
	case KindTextType:
		v, err := DecodeInt16s(f.Payload, f.Offset)
		if err != nil || len(v) < 1 {
			return nil, malformed(f, "TEXTTYPE requires one int16 field", err)
		}
		return TextTypeRecord{base: b, Value: v[0]}, nil
	case KindPresentation:
		if len(f.Payload) < 2 {
			return nil, NewErrorAt(KindMalformedRecord, f.Offset, "PRESENTATION requires 2 bytes")
		}
		flags := uint16(f.Payload[0])<<8 | uint16(f.Payload[1])
		return PresentationRecord{base: b, Flags: flags}, nil
	case KindString:
		s, err := DecodeASCII(f.Payload, f.Offset)
		if err != nil {
			return nil, err
		}
		if len(s) > 512 {
			return nil, NewErrorAt(KindNameConstraint, f.Offset, "STRING exceeds 512 ASCII characters")
		}
		return StringRecord{base: b, Value: s}, nil
	case KindStrans:
		if len(f.Payload) < 2 {
			return nil, NewErrorAt(KindMalformedRecord, f.Offset, "STRANS requires 2 bytes")
		}
		flags := uint16(f.Payload[0])<<8 | uint16(f.Payload[1])
		return StransRecord{base: b, Flags: flags}, nil
	case KindMag:
		v, err := DecodeReal8s(f.Payload, f.Offset)
		if err != nil || len(v) < 1 {
			return nil, malformed(f, "MAG requires one float64 field", err)
		}
		return MagRecord{base: b, Value: v[0]}, nil
	case KindAngle:
		v, err := DecodeReal8s(f.Payload, f.Offset)
		if err != nil || len(v) < 1 {
			return nil, malformed(f, "ANGLE requires one float64 field", err)
		}
		return AngleRecord{base: b, Value: v[0]}, nil
	case KindPathType:
		v, err := DecodeInt16s(f.Payload, f.Offset)
		if err != nil || len(v) < 1 {
			return nil, malformed(f, "PATHTYPE requires one int16 field", err)
		}
		return PathTypeRecord{base: b, Value: v[0]}, nil
	case KindPropAttr:
		v, err := DecodeInt16s(f.Payload, f.Offset)
		if err != nil || len(v) < 1 {
			return nil, malformed(f, "PROPATTR requires one int16 field", err)
		}
		return PropAttrRecord{base: b, Key: v[0]}, nil
	case KindPropValue:
		s, err := DecodeASCII(f.Payload, f.Offset)
		if err != nil {
			return nil, err
		}
		if len(s) > 126 {
			return nil, NewErrorAt(KindNameConstraint, f.Offset, "PROPVALUE exceeds 126 ASCII characters")
		}
		return PropValueRecord{base: b, Value: s}, nil
	case KindBox:
		return BoxRecord{base: b}, nil
	case KindBoxType:
		v, err := DecodeInt16s(f.Payload, f.Offset)
		if err != nil || len(v) < 1 {
			return nil, malformed(f, "BOXTYPE requires one int16 field", err)
		}
		return BoxTypeRecord{base: b, Value: v[0]}, nil
	case KindBgnExtn:
		v, err := DecodeInt32s(f.Payload, f.Offset)
		if err != nil || len(v) < 1 {
			return nil, malformed(f, "BGNEXTN requires one int32 field", err)
		}
		return BgnExtnRecord{base: b, Value: v[0]}, nil
	case KindEndExtn:
		v, err := DecodeInt32s(f.Payload, f.Offset)
		if err != nil || len(v) < 1 {
			return nil, malformed(f, "ENDEXTN requires one int32 field", err)
		}
		return EndExtnRecord{base: b, Value: v[0]}, nil
	default:
		return nil, NewErrorAt(KindUnsupportedRecord, f.Offset, "unreachable record kind")
	}
}

func malformed(f Frame, msg string, cause error) error {
	if cause != nil {
		return cause
	}
	return NewErrorAt(KindMalformedRecord, f.Offset, msg)
}
