package core

// RecordKind enumerates every record tag this codec understands.
type RecordKind uint8

const (
	KindHeader RecordKind = iota
	KindBgnLib
	KindLibName
	KindUnits
	KindEndLib
	KindBgnStr
	KindStrName
	KindEndStr
	KindBoundary
	KindPath
	KindSRef
	KindARef
	KindText
	KindLayer
	KindDataType
	KindWidth
	KindXY
	KindEndEl
	KindSName
	KindColRow
	KindTextType
	KindPresentation
	KindString
	KindStrans
	KindMag
	KindAngle
	KindPathType
	KindPropAttr
	KindPropValue
	KindBox
	KindBoxType
	KindBgnExtn
	KindEndExtn
)

func (k RecordKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

var kindNames = map[RecordKind]string{
	KindHeader:       "HEADER",
	KindBgnLib:       "BGNLIB",
	KindLibName:      "LIBNAME",
	KindUnits:        "UNITS",
	KindEndLib:       "ENDLIB",
	KindBgnStr:       "BGNSTR",
	KindStrName:      "STRNAME",
	KindEndStr:       "ENDSTR",
	KindBoundary:     "BOUNDARY",
	KindPath:         "PATH",
	KindSRef:         "SREF",
	KindARef:         "AREF",
	KindText:         "TEXT",
	KindLayer:        "LAYER",
	KindDataType:     "DATATYPE",
	KindWidth:        "WIDTH",
	KindXY:           "XY",
	KindEndEl:        "ENDEL",
	KindSName:        "SNAME",
	KindColRow:       "COLROW",
	KindTextType:     "TEXTTYPE",
	KindPresentation: "PRESENTATION",
	KindString:       "STRING",
	KindStrans:       "STRANS",
	KindMag:          "MAG",
	KindAngle:        "ANGLE",
	KindPathType:     "PATHTYPE",
	KindPropAttr:     "PROPATTR",
	KindPropValue:    "PROPVALUE",
	KindBox:          "BOX",
	KindBoxType:      "BOXTYPE",
	KindBgnExtn:      "BGNEXTN",
	KindEndExtn:      "ENDEXTN",
}

// tag packs a record's two header bytes (record type, data type) into one
// uint16 for table lookups.
func tag(recordType, dataType byte) uint16 {
	return uint16(recordType)<<8 | uint16(dataType)
}

// supportedTags maps a record's wire tag to the RecordKind this codec
// decodes it as. Values mirror the tag table in the GDSII stream format
// and the constant list kept in the original implementation's record
// module.
var supportedTags = map[uint16]RecordKind{
	tag(0x00, 0x02): KindHeader,
	tag(0x01, 0x02): KindBgnLib,
	tag(0x02, 0x06): KindLibName,
	tag(0x03, 0x05): KindUnits,
	tag(0x04, 0x00): KindEndLib,
	tag(0x05, 0x02): KindBgnStr,
	tag(0x06, 0x06): KindStrName,
	tag(0x07, 0x00): KindEndStr,
	tag(0x08, 0x00): KindBoundary,
	tag(0x09, 0x00): KindPath,
	tag(0x0a, 0x00): KindSRef,
	tag(0x0b, 0x00): KindARef,
	tag(0x0c, 0x00): KindText,
	tag(0x0d, 0x02): KindLayer,
	tag(0x0e, 0x02): KindDataType,
	tag(0x0f, 0x03): KindWidth,
	tag(0x10, 0x03): KindXY,
	tag(0x11, 0x00): KindEndEl,
	tag(0x12, 0x06): KindSName,
	tag(0x13, 0x02): KindColRow,
	tag(0x16, 0x02): KindTextType,
	tag(0x17, 0x01): KindPresentation,
	tag(0x19, 0x06): KindString,
	tag(0x1a, 0x01): KindStrans,
	tag(0x1b, 0x05): KindMag,
	tag(0x1c, 0x05): KindAngle,
	tag(0x21, 0x02): KindPathType,
	tag(0x2b, 0x02): KindPropAttr,
	tag(0x2c, 0x06): KindPropValue,
	tag(0x2d, 0x00): KindBox,
	tag(0x2e, 0x02): KindBoxType,
	tag(0x30, 0x03): KindBgnExtn,
	tag(0x31, 0x03): KindEndExtn,
}

// recordTypeByte returns the tag bytes a writer must emit for kind.
var recordTypeByte = map[RecordKind][2]byte{
	KindHeader:       {0x00, 0x02},
	KindBgnLib:       {0x01, 0x02},
	KindLibName:      {0x02, 0x06},
	KindUnits:        {0x03, 0x05},
	KindEndLib:       {0x04, 0x00},
	KindBgnStr:       {0x05, 0x02},
	KindStrName:      {0x06, 0x06},
	KindEndStr:       {0x07, 0x00},
	KindBoundary:     {0x08, 0x00},
	KindPath:         {0x09, 0x00},
	KindSRef:         {0x0a, 0x00},
	KindARef:         {0x0b, 0x00},
	KindText:         {0x0c, 0x00},
	KindLayer:        {0x0d, 0x02},
	KindDataType:     {0x0e, 0x02},
	KindWidth:        {0x0f, 0x03},
	KindXY:           {0x10, 0x03},
	KindEndEl:        {0x11, 0x00},
	KindSName:        {0x12, 0x06},
	KindColRow:       {0x13, 0x02},
	KindTextType:     {0x16, 0x02},
	KindPresentation: {0x17, 0x01},
	KindString:       {0x19, 0x06},
	KindStrans:       {0x1a, 0x01},
	KindMag:          {0x1b, 0x05},
	KindAngle:        {0x1c, 0x05},
	KindPathType:     {0x21, 0x02},
	KindPropAttr:     {0x2b, 0x02},
	KindPropValue:    {0x2c, 0x06},
	KindBox:          {0x2d, 0x00},
	KindBoxType:      {0x2e, 0x02},
	KindBgnExtn:      {0x30, 0x03},
	KindEndExtn:      {0x31, 0x03},
}

// TagBytes returns the two header bytes a record of kind k is written
// with (record type, data type).
func TagBytes(k RecordKind) [2]byte {
	return recordTypeByte[k]
}

// reservedNames maps the record-type byte (the first of the two tag
// bytes) of every reserved/obsolete GDSII record to a human name, purely
// so UnsupportedRecord errors can name what was rejected instead of
// printing a bare hex pair. None of these are ever decoded into a Record.
var reservedNames = map[byte]string{
	0x14: "TEXTNODE",
	0x15: "NODE",
	0x1f: "REFLIBS",
	0x20: "FONTS",
	0x22: "GENERATIONS",
	0x23: "ATTRTABLE",
	0x24: "STYPTABLE",
	0x25: "STRTYPE",
	0x26: "ELFLAGS",
	0x27: "ELKEY",
	0x28: "LINKTYPE",
	0x29: "LINKKEYS",
	0x2a: "NODETYPE",
	0x2f: "PLEX",
	0x32: "TAPENUM",
	0x33: "TAPECODE",
	0x34: "STRCLASS",
	0x35: "RESERVED",
	0x36: "FORMAT",
	0x37: "MASK",
	0x38: "ENDMASKS",
	0x39: "LIBDIRSIZE",
	0x3a: "SRFNAME",
	0x3b: "LIBSECUR",
	0x3c: "BORDER",
	0x3d: "SOFTFENCE",
	0x3e: "HARDFENCE",
	0x3f: "SOFTWIRE",
	0x40: "HARDWIRE",
	0x41: "PATHPORT",
	0x42: "NODEPORT",
	0x43: "USERCONSTRAINT",
	0x44: "SPACERERROR",
	0x45: "CONTACT",
}
