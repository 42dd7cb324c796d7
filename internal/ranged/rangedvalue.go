package ranged

import (
	"fmt"
	"math"
)

// RangedValue is a float64 that is guaranteed to lie within a fixed interval.
// The interval cannot change once the value is created; the value can.
type RangedValue struct {
	interval Interval
	value    float64
}

// NewRangedValue returns value constrained to [min, max].
//
// It fails with ErrInvalidArgument if any argument is NaN, if min is greater
// than max, or if value lies outside [min, max].
func NewRangedValue(min, max, value float64) (*RangedValue, error) {
	iv, err := NewInterval(min, max)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(value) {
		return nil, invalidf("value is NaN")
	}
	if !iv.Contains(value) {
		return nil, invalidf("value %v is outside %v", value, iv)
	}
	return &RangedValue{interval: *iv, value: value}, nil
}

// Clone returns a copy of rv that owns its own interval.
func (rv *RangedValue) Clone() *RangedValue {
	c := *rv
	return &c
}

func (rv *RangedValue) Min() float64 {
	return rv.interval.Min()
}

func (rv *RangedValue) Max() float64 {
	return rv.interval.Max()
}

// Interval returns a copy of the interval of values rv can take. Changes to
// the returned interval are not reflected in rv.
func (rv *RangedValue) Interval() *Interval {
	return rv.interval.Clone()
}

func (rv *RangedValue) Contains(v float64) bool {
	return rv.interval.Contains(v)
}

func (rv *RangedValue) Value() float64 {
	return rv.value
}

// SetValue replaces the value. Values outside the interval, NaN included,
// fail with ErrInvalidArgument and leave rv unchanged.
func (rv *RangedValue) SetValue(value float64) error {
	if !rv.interval.Contains(value) {
		return invalidf("value %v is outside %v", value, &rv.interval)
	}
	rv.value = value
	return nil
}

// String returns "[min: value: max]".
func (rv *RangedValue) String() string {
	return fmt.Sprintf("[%v: %v: %v]", rv.interval.min, rv.value, rv.interval.max)
}
