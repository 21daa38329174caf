package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

const tolerance = 1e-6

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestFlatten(t *testing.T) {
	points := []Point{{1, 2}, {3, 4}, {-5, 6.5}}
	flat := Flatten(points)
	assert.Equal(t, []float64{1, 2, 3, 4, -5, 6.5}, flat)
	assert.Equal(t, points, Unflatten(flat))

	t.Run("odd length drops the tail", func(t *testing.T) {
		assert.Equal(t, []Point{{1, 2}}, Unflatten([]float64{1, 2, 3}))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Flatten(nil))
		assert.Empty(t, Unflatten(nil))
	})
}

func TestBounds(t *testing.T) {
	r := Bounds([]Point{{3, -1}, {-2, 4}, {0, 0}})
	assert.Equal(t, Rect{MinX: -2, MinY: -1, MaxX: 3, MaxY: 4}, r)
	assert.Equal(t, 5.0, r.Width())
	assert.Equal(t, 5.0, r.Height())

	assert.True(t, r.Contains(Pt(3, 4)))
	assert.True(t, r.Contains(Pt(0, 0)))
	assert.False(t, r.Contains(Pt(3.1, 0)))
	assert.False(t, r.Contains(Pt(math.NaN(), 0)))

	empty := Bounds(nil)
	assert.False(t, empty.Contains(Pt(0, 0)))
}

func TestReverse(t *testing.T) {
	poly := Polygon{Points: []Point{{0, 0}, {1, 0}, {1, 1}}}
	assert.Equal(t, []Point{{1, 1}, {1, 0}, {0, 0}}, poly.Reverse().Points)
	// The original is untouched
	assert.Equal(t, Pt(0, 0), poly.Points[0])
}

func TestParseLineType(t *testing.T) {
	for input, expected := range map[string]LineType{
		"":         Straight,
		"straight": Straight,
		"Line":     Straight,
		"CURVE":    Curve,
		" curve ":  Curve,
	} {
		lt, err := ParseLineType(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, lt, input)
	}

	_, err := ParseLineType("bezier")
	assert.EqualError(t, err, `unknown line type "bezier"`)

	var lt LineType
	require.NoError(t, lt.UnmarshalText([]byte("curve")))
	assert.Equal(t, Curve, lt)
	text, err := lt.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "curve", string(text))
	assert.Equal(t, "LineType(7)", LineType(7).String())
}
