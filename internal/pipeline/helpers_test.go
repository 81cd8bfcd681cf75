package pipeline

import (
	"github.com/layoutkit/gdsii/internal/core"
)

// buildLibrary assembles a minimal well-formed GDSII stream: HEADER,
// BGNLIB, LIBNAME, UNITS, the caller-supplied cell bodies, then ENDLIB.
// Each entry in cells is the fully framed byte sequence for one
// BGNSTR..ENDSTR cell, as produced by buildTriangleCell et al.
func buildLibrary(cells ...[]byte) []byte {
	var buf []byte
	buf = append(buf, core.EncodeRecord(core.KindHeader, core.EncodeInt16(nil, 600))...)

	date := make([]byte, 0, 24)
	for i := 0; i < 12; i++ {
		date = core.EncodeInt16(date, 0)
	}
	buf = append(buf, core.EncodeRecord(core.KindBgnLib, date)...)
	buf = append(buf, core.EncodeRecord(core.KindLibName, core.EncodeASCII(nil, "LIB"))...)

	units, _ := core.EncodeReal8(nil, 1e-3)
	precision, _ := core.EncodeReal8(nil, 1e-9)
	buf = append(buf, core.EncodeRecord(core.KindUnits, append(units, precision...))...)

	for _, c := range cells {
		buf = append(buf, c...)
	}
	buf = append(buf, core.EncodeRecord(core.KindEndLib, nil)...)
	return buf
}

func cellDate() []byte {
	var date []byte
	for i := 0; i < 12; i++ {
		date = core.EncodeInt16(date, 0)
	}
	return date
}

// buildTriangleCell builds a cell named name containing one BOUNDARY
// triangle on layer/datatype 1/0, with vertices (0,0) (100,0) (100,100)
// in database units.
func buildTriangleCell(name string) []byte {
	var buf []byte
	buf = append(buf, core.EncodeRecord(core.KindBgnStr, cellDate())...)
	buf = append(buf, core.EncodeRecord(core.KindStrName, core.EncodeASCII(nil, name))...)

	buf = append(buf, core.EncodeRecord(core.KindBoundary, nil)...)
	buf = append(buf, core.EncodeRecord(core.KindLayer, core.EncodeInt16(nil, 1))...)
	buf = append(buf, core.EncodeRecord(core.KindDataType, core.EncodeInt16(nil, 0))...)

	var xy []byte
	for _, pt := range [][2]int32{{0, 0}, {100, 0}, {100, 100}, {0, 0}} {
		xy = core.EncodeInt32(xy, pt[0])
		xy = core.EncodeInt32(xy, pt[1])
	}
	buf = append(buf, core.EncodeRecord(core.KindXY, xy)...)
	buf = append(buf, core.EncodeRecord(core.KindEndEl, nil)...)

	buf = append(buf, core.EncodeRecord(core.KindEndStr, nil)...)
	return buf
}

// buildRefCell builds a cell named name with no elements except a
// single SREF to targetName at the origin.
func buildRefCell(name, targetName string) []byte {
	var buf []byte
	buf = append(buf, core.EncodeRecord(core.KindBgnStr, cellDate())...)
	buf = append(buf, core.EncodeRecord(core.KindStrName, core.EncodeASCII(nil, name))...)

	buf = append(buf, core.EncodeRecord(core.KindSRef, nil)...)
	buf = append(buf, core.EncodeRecord(core.KindSName, core.EncodeASCII(nil, targetName))...)
	xy := core.EncodeInt32(nil, 0)
	xy = core.EncodeInt32(xy, 0)
	buf = append(buf, core.EncodeRecord(core.KindXY, xy)...)
	buf = append(buf, core.EncodeRecord(core.KindEndEl, nil)...)

	buf = append(buf, core.EncodeRecord(core.KindEndStr, nil)...)
	return buf
}
