package structures

// EndStyle is a path's PATHTYPE code, controlling how its two ends are
// capped.
type EndStyle int16

const (
	EndStyleFlush           EndStyle = 0
	EndStyleRound           EndStyle = 1
	EndStyleExtendHalfWidth EndStyle = 2
	EndStyleExtend          EndStyle = 4
)

func (s EndStyle) String() string {
	switch s {
	case EndStyleFlush:
		return "Flush"
	case EndStyleRound:
		return "Round"
	case EndStyleExtendHalfWidth:
		return "ExtendHalfWidth"
	case EndStyleExtend:
		return "Extend"
	default:
		return "Unknown"
	}
}

// Path is a GDSII PATH element. BeginExtn and EndExtn are meaningful only
// when End is EndStyleExtend; GDSII omits BGNEXTN/ENDEXTN entirely for the
// other three end styles.
type Path struct {
	Layer      int16
	DataType   int16
	Width      float64
	End        EndStyle
	BeginExtn  float64
	EndExtn    float64
	Points     []Point
	Properties Properties
}

// NewPath returns a Path with an empty property bag and flush ends.
func NewPath(layer, dataType int16, width float64, points []Point) *Path {
	return &Path{Layer: layer, DataType: dataType, Width: width, End: EndStyleFlush, Points: points, Properties: Properties{}}
}
