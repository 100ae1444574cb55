package gesture

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		dx, dy int
		want   Direction
	}{
		{"left", 50, 10, Left},
		{"right", -50, 10, Right},
		{"up", 5, 50, Up},
		{"down", 5, -50, Down},
		{"tie goes vertical", 10, 10, Up},
		{"no displacement", 0, 0, Down},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.dx, tc.dy))
		})
	}
}

func TestRecognizer_SingleShotPerGesture(t *testing.T) {
	r := NewRecognizer()
	var got []Direction
	r.Register("base", func(d Direction) { got = append(got, d) })

	r.TouchStart("base", 100, 100)
	dir, ok := r.TouchMove("base", 50, 90)
	require.True(t, ok)
	require.Equal(t, Left, dir)

	// Same drag keeps moving: no baseline, ignored.
	_, ok = r.TouchMove("base", 10, 90)
	require.False(t, ok)
	require.Equal(t, []Direction{Left}, got)

	r.TouchStart("base", 10, 10)
	_, ok = r.TouchMove("base", 12, 60)
	require.True(t, ok)
	require.Equal(t, []Direction{Left, Down}, got)
}

func TestRecognizer_IgnoresUnregisteredSurface(t *testing.T) {
	r := NewRecognizer()
	r.TouchStart("nowhere", 1, 1)
	_, ok := r.TouchMove("nowhere", 50, 1)
	require.False(t, ok)
	require.False(t, r.Registered("nowhere"))
}

func TestRecognizer_SurfacesAreIndependent(t *testing.T) {
	r := NewRecognizer()
	var base, menu int
	r.Register("base", func(Direction) { base++ })
	r.Register("menu", func(Direction) { menu++ })

	r.TouchStart("base", 0, 0)
	_, ok := r.TouchMove("menu", 0, 20)
	require.False(t, ok)
	_, ok = r.TouchMove("base", 0, 20)
	require.True(t, ok)
	require.Equal(t, 1, base)
	require.Equal(t, 0, menu)
}

func TestRecognizer_Cancel(t *testing.T) {
	r := NewRecognizer()
	r.Register("base", func(Direction) { t.Fatalf("handler must not fire after Cancel") })
	r.TouchStart("base", 0, 0)
	r.Cancel("base")
	_, ok := r.TouchMove("base", 30, 0)
	require.False(t, ok)
}

func TestDirectionString(t *testing.T) {
	require.Equal(t, "up", Up.String())
	require.Equal(t, "right", Right.String())
	require.Equal(t, "unknown", Direction(42).String())
}
