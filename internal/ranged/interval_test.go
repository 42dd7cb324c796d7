package ranged

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	inf  = math.Inf(1)
	ninf = math.Inf(-1)
	nan  = math.NaN()
)

func TestNewInterval_ErrorCases(t *testing.T) {
	cases := []struct {
		name     string
		min, max float64
	}{
		{"nan_min", nan, 1},
		{"nan_max", 0, nan},
		{"both_nan", nan, nan},
		{"min_gt_max", 2, 1},
		{"inf_reversed", inf, ninf},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			iv, err := NewInterval(tc.min, tc.max)
			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.Nil(t, iv)
		})
	}
}

func TestInterval_Width(t *testing.T) {
	cases := []struct {
		name     string
		min, max float64
		exp      float64
	}{
		{"finite", -160, 240, 400},
		{"zero_width", 7, 7, 0},
		{"half_open_up", 0, inf, inf},
		{"half_open_down", ninf, 0, inf},
		{"unbounded", ninf, inf, inf},
		{"both_pos_inf", inf, inf, inf},
		{"both_neg_inf", ninf, ninf, inf},
		{"overflow", -math.MaxFloat64, math.MaxFloat64, inf},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			iv, err := NewInterval(tc.min, tc.max)
			require.NoError(t, err)
			got := iv.Width()
			assert.False(t, math.IsNaN(got))
			assert.Equal(t, tc.exp, got)
		})
	}
}

func TestInterval_Contains_DirectCases(t *testing.T) {
	iv, err := NewInterval(-1, 3)
	require.NoError(t, err)

	cases := []struct {
		name string
		val  float64
		exp  bool
	}{
		{"inside", 1, true},
		{"at_min", -1, true},
		{"at_max", 3, true},
		{"below", -1.0000001, false},
		{"above", 3.0000001, false},
		{"nan", nan, false},
		{"pos_inf", inf, false},
		{"neg_inf", ninf, false},
	}

	for _, tc := range cases {
		if got := iv.Contains(tc.val); got != tc.exp {
			t.Fatalf("%s: Contains(%v) = %v, want %v (interval=%v)", tc.name, tc.val, got, tc.exp, iv)
		}
	}
}

func TestInterval_Contains_Unbounded(t *testing.T) {
	iv, err := NewInterval(ninf, inf)
	require.NoError(t, err)

	assert.True(t, iv.Contains(ninf))
	assert.True(t, iv.Contains(inf))
	assert.True(t, iv.Contains(0))
	assert.False(t, iv.Contains(nan))
}

func TestInterval_SetMin(t *testing.T) {
	iv, err := NewInterval(0, 10)
	require.NoError(t, err)

	require.NoError(t, iv.SetMin(10))
	assert.Equal(t, 10.0, iv.Min())
	require.NoError(t, iv.SetMin(ninf))
	assert.Equal(t, ninf, iv.Min())

	require.ErrorIs(t, iv.SetMin(10.5), ErrInvalidArgument)
	require.ErrorIs(t, iv.SetMin(nan), ErrInvalidArgument)
	assert.Equal(t, ninf, iv.Min())
	assert.Equal(t, 10.0, iv.Max())
}

func TestInterval_SetMax(t *testing.T) {
	iv, err := NewInterval(0, 10)
	require.NoError(t, err)

	require.NoError(t, iv.SetMax(0))
	assert.Equal(t, 0.0, iv.Max())

	require.ErrorIs(t, iv.SetMax(-0.5), ErrInvalidArgument)
	require.ErrorIs(t, iv.SetMax(nan), ErrInvalidArgument)
	assert.Equal(t, 0.0, iv.Min())
	assert.Equal(t, 0.0, iv.Max())
}

func TestInterval_MoveBy(t *testing.T) {
	deltas := []float64{0, 1, -1, 0.25, -1000, 1e6}

	for _, d := range deltas {
		iv, err := NewInterval(-2.5, 4)
		require.NoError(t, err)
		require.NoError(t, iv.MoveBy(d))
		assert.Equal(t, -2.5+d, iv.Min(), "delta %v", d)
		assert.Equal(t, 4+d, iv.Max(), "delta %v", d)
	}
}

func TestInterval_MoveBy_Errors(t *testing.T) {
	iv, err := NewInterval(1, 2)
	require.NoError(t, err)
	require.ErrorIs(t, iv.MoveBy(nan), ErrInvalidArgument)
	assert.Equal(t, "[1, 2]", iv.String())

	unbounded, err := NewInterval(ninf, 0)
	require.NoError(t, err)
	require.ErrorIs(t, unbounded.MoveBy(inf), ErrInvalidArgument)
	assert.Equal(t, ninf, unbounded.Min())
	assert.Equal(t, 0.0, unbounded.Max())
}

func TestInterval_Clone_IsIndependent(t *testing.T) {
	src, err := NewInterval(0, 1)
	require.NoError(t, err)

	cp := src.Clone()
	require.NoError(t, cp.SetMax(5))
	require.NoError(t, cp.MoveBy(1))

	assert.Equal(t, "[0, 1]", src.String())
	assert.Equal(t, "[1, 6]", cp.String())
}

func TestInterval_String(t *testing.T) {
	cases := []struct {
		min, max float64
		exp      string
	}{
		{-1024, 3071, "[-1024, 3071]"},
		{-0.5, 0.5, "[-0.5, 0.5]"},
		{ninf, inf, "[-Inf, +Inf]"},
	}

	for _, tc := range cases {
		iv, err := NewInterval(tc.min, tc.max)
		require.NoError(t, err)
		assert.Equal(t, tc.exp, iv.String())
	}
}

func TestInterval_IntersectAndOverlaps(t *testing.T) {
	a, _ := NewInterval(0, 10)
	b, _ := NewInterval(5, 20)
	c, _ := NewInterval(10, 11)
	d, _ := NewInterval(11, 12)

	got, ok := a.Intersect(b)
	require.True(t, ok)
	assert.Equal(t, "[5, 10]", got.String())

	got, ok = a.Intersect(c)
	require.True(t, ok)
	assert.Equal(t, 0.0, got.Width())

	_, ok = a.Intersect(d)
	assert.False(t, ok)
	assert.False(t, d.Overlaps(a))
	assert.True(t, b.Overlaps(a))
}

func TestInterval_Clamp(t *testing.T) {
	iv, _ := NewInterval(-1, 1)

	assert.Equal(t, -1.0, iv.Clamp(-5))
	assert.Equal(t, 1.0, iv.Clamp(5))
	assert.Equal(t, 0.5, iv.Clamp(0.5))
	assert.True(t, math.IsNaN(iv.Clamp(nan)))
}

func TestClamp_Generic(t *testing.T) {
	assert.Equal(t, 0, Clamp(-3, 0, 255))
	assert.Equal(t, 255, Clamp(300, 0, 255))
	assert.Equal(t, uint8(7), Clamp[uint8](7, 0, 10))
}
