package ranged

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRangedValue(t *testing.T) {
	rv, err := NewRangedValue(-1, 1, 0.25)
	require.NoError(t, err)

	assert.Equal(t, 0.25, rv.Value())
	assert.Equal(t, -1.0, rv.Min())
	assert.Equal(t, 1.0, rv.Max())
	assert.Equal(t, "[-1: 0.25: 1]", rv.String())
}

func TestNewRangedValue_ErrorCases(t *testing.T) {
	cases := []struct {
		name            string
		min, max, value float64
	}{
		{"nan_min", nan, 1, 0},
		{"nan_max", 0, nan, 0},
		{"nan_value", 0, 1, nan},
		{"min_gt_max", 1, 0, 0.5},
		{"below", 0, 1, -0.1},
		{"above", 0, 1, 1.1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rv, err := NewRangedValue(tc.min, tc.max, tc.value)
			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.Nil(t, rv)
		})
	}
}

func TestRangedValue_Bounds(t *testing.T) {
	for _, v := range []float64{-2, 5} {
		rv, err := NewRangedValue(-2, 5, v)
		require.NoError(t, err)
		assert.Equal(t, v, rv.Value())
	}
}

func TestRangedValue_SetValue(t *testing.T) {
	rv, err := NewRangedValue(0, 10, 3)
	require.NoError(t, err)

	require.NoError(t, rv.SetValue(10))
	assert.Equal(t, 10.0, rv.Value())
	require.NoError(t, rv.SetValue(0))
	assert.Equal(t, 0.0, rv.Value())

	for _, bad := range []float64{-0.01, 10.01, nan, inf, ninf} {
		require.ErrorIs(t, rv.SetValue(bad), ErrInvalidArgument, "value %v", bad)
		assert.Equal(t, 0.0, rv.Value())
	}
}

func TestRangedValue_IntervalIsDefensiveCopy(t *testing.T) {
	rv, err := NewRangedValue(0, 10, 5)
	require.NoError(t, err)

	iv := rv.Interval()
	require.NoError(t, iv.SetMax(100))
	require.NoError(t, iv.MoveBy(-50))

	assert.Equal(t, 10.0, rv.Max())
	assert.Equal(t, 0.0, rv.Min())
	require.ErrorIs(t, rv.SetValue(20), ErrInvalidArgument)
	assert.Equal(t, "[0, 10]", rv.Interval().String())
}

func TestRangedValue_Clone_IsIndependent(t *testing.T) {
	src, err := NewRangedValue(0, 10, 5)
	require.NoError(t, err)

	cp := src.Clone()
	require.NoError(t, cp.SetValue(7))

	assert.Equal(t, 5.0, src.Value())
	assert.Equal(t, 7.0, cp.Value())
	assert.True(t, src.Interval().Equal(cp.Interval()))
}

func TestRangedValue_Contains(t *testing.T) {
	rv, err := NewRangedValue(-1, 1, 0)
	require.NoError(t, err)

	var r Range[float64] = rv
	assert.True(t, r.Contains(-1))
	assert.True(t, r.Contains(1))
	assert.False(t, r.Contains(1.5))
}
