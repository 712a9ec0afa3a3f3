package console

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestIsAtBottom(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
		want bool
	}{
		{"content fits", Geometry{ViewportHeight: 100, ContentHeight: 50, ScrollOffset: 0}, true},
		{"exactly at max scroll", Geometry{ViewportHeight: 100, ContentHeight: 200, ScrollOffset: 100}, true},
		{"one row short", Geometry{ViewportHeight: 100, ContentHeight: 200, ScrollOffset: 99}, false},
		{"at top of long content", Geometry{ViewportHeight: 100, ContentHeight: 200, ScrollOffset: 0}, false},
		{"insets shrink usable height", Geometry{ViewportHeight: 100, TopInset: 5, BottomInset: 5, ContentHeight: 200, ScrollOffset: 109}, false},
		{"insets at max scroll", Geometry{ViewportHeight: 100, TopInset: 5, BottomInset: 5, ContentHeight: 200, ScrollOffset: 110}, true},
		{"empty content", Geometry{ViewportHeight: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsAtBottom(tt.g))
		})
	}
}

func TestGeometry_ClampsNegativeHeights(t *testing.T) {
	g := Geometry{ViewportHeight: 4, TopInset: 3, BottomInset: 3, ContentHeight: 10}

	require.Equal(t, 0, g.UsableHeight())
	require.Equal(t, 10, g.MaxScroll())

	g = Geometry{ViewportHeight: -5, ContentHeight: -1}
	require.Equal(t, 0, g.UsableHeight())
	require.Equal(t, 0, g.MaxScroll())
	require.True(t, IsAtBottom(g))
}

func TestPosition_String(t *testing.T) {
	require.Equal(t, "top", Top.String())
	require.Equal(t, "bottom", Bottom.String())
	require.Equal(t, "unknown", Position(7).String())
}

func TestProperty_MaxScrollIsAlwaysBottom(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := Geometry{
			ViewportHeight: rapid.IntRange(-10, 200).Draw(rt, "height"),
			TopInset:       rapid.IntRange(0, 20).Draw(rt, "top"),
			BottomInset:    rapid.IntRange(0, 20).Draw(rt, "bottom"),
			ContentHeight:  rapid.IntRange(0, 1000).Draw(rt, "content"),
		}
		require.GreaterOrEqual(rt, g.MaxScroll(), 0)

		g.ScrollOffset = g.MaxScroll()
		require.True(rt, IsAtBottom(g))

		if g.MaxScroll() > 0 {
			g.ScrollOffset = g.MaxScroll() - 1
			require.False(rt, IsAtBottom(g))
		}
	})
}
