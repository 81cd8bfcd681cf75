package structures

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnchorPresentation_RoundTrip(t *testing.T) {
	anchors := []Anchor{AnchorNW, AnchorN, AnchorNE, AnchorW, AnchorO, AnchorE, AnchorSW, AnchorS, AnchorSE}
	for _, a := range anchors {
		flags := AnchorToPresentation(a, 2)
		require.Equal(t, a, PresentationToAnchor(flags))
		require.Equal(t, int16(2), PresentationFont(flags))
	}
}

func TestPresentationToAnchor_UnknownBitsFallBackToOrigin(t *testing.T) {
	require.Equal(t, AnchorO, PresentationToAnchor(0xF))
}

func TestNewText_Defaults(t *testing.T) {
	txt := NewText(1, 0, "hello", Point{X: 10, Y: 20})
	require.Equal(t, AnchorO, txt.Anchor)
	require.Equal(t, 1.0, txt.Magnification)
	require.False(t, txt.HasTransform())
}

func TestText_HasTransform(t *testing.T) {
	txt := NewText(1, 0, "hello", Point{})
	require.False(t, txt.HasTransform())

	txt.Rotation = 1.0
	require.True(t, txt.HasTransform())

	txt2 := NewText(1, 0, "hello", Point{})
	txt2.Magnification = 2.0
	require.True(t, txt2.HasTransform())

	txt3 := NewText(1, 0, "hello", Point{})
	txt3.XReflection = true
	require.True(t, txt3.HasTransform())
}
