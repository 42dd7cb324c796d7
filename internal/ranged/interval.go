// Package ranged provides closed floating-point intervals and values that are
// guaranteed to stay inside one.
package ranged

import (
	"fmt"
	"math"
)

// Interval is a closed interval [min, max] of float64 values.
//
// Neither bound is ever NaN and min <= max holds after every successful
// operation. Either bound may be infinite. A zero-width interval is possible
// when both bounds are finite and equal.
type Interval struct {
	min float64
	max float64
}

// NewInterval returns the interval [min, max].
//
// It fails with ErrInvalidArgument if min or max is NaN or if min is greater
// than max.
func NewInterval(min, max float64) (*Interval, error) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return nil, invalidf("interval bounds must not be NaN (min=%v, max=%v)", min, max)
	}
	if min > max {
		return nil, invalidf("min %v is greater than max %v", min, max)
	}
	return &Interval{min: min, max: max}, nil
}

// Clone returns an independent copy of iv.
func (iv *Interval) Clone() *Interval {
	c := *iv
	return &c
}

// Min returns the lower bound.
func (iv *Interval) Min() float64 {
	return iv.min
}

// Max returns the upper bound.
func (iv *Interval) Max() float64 {
	return iv.max
}

// Width returns max - min. When the difference is not a finite float64 (an
// overflow, or Inf - Inf for an interval with equal infinite bounds) the
// width is reported as +Inf.
func (iv *Interval) Width() float64 {
	w := iv.max - iv.min
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return math.Inf(1)
	}
	return w
}

// SetMin replaces the lower bound. The new bound is checked against the
// current upper bound; on failure iv is left untouched.
func (iv *Interval) SetMin(min float64) error {
	if math.IsNaN(min) {
		return invalidf("min is NaN")
	}
	if min > iv.max {
		return invalidf("min %v is greater than max %v", min, iv.max)
	}
	iv.min = min
	return nil
}

// SetMax replaces the upper bound. The new bound is checked against the
// current lower bound; on failure iv is left untouched.
func (iv *Interval) SetMax(max float64) error {
	if math.IsNaN(max) {
		return invalidf("max is NaN")
	}
	if max < iv.min {
		return invalidf("max %v is less than min %v", max, iv.min)
	}
	iv.max = max
	return nil
}

// MoveBy shifts both bounds by delta. Positive deltas move the interval up,
// negative deltas move it down.
func (iv *Interval) MoveBy(delta float64) error {
	if math.IsNaN(delta) {
		return invalidf("delta is NaN")
	}
	min, max := iv.min+delta, iv.max+delta
	// -Inf + +Inf style shifts cannot keep the invariant.
	if math.IsNaN(min) || math.IsNaN(max) {
		return invalidf("moving %v by %v leaves no valid interval", iv, delta)
	}
	iv.min, iv.max = min, max
	return nil
}

// Contains reports whether val lies inside iv. Both bounds are inside; NaN
// never is.
func (iv *Interval) Contains(val float64) bool {
	return val >= iv.min && val <= iv.max
}

// Clamp returns the point of iv closest to val. NaN is returned unchanged.
func (iv *Interval) Clamp(val float64) float64 {
	return Clamp(val, iv.min, iv.max)
}

// Overlaps reports whether iv and other share at least one point. Intervals
// that only touch at an endpoint overlap.
func (iv *Interval) Overlaps(other *Interval) bool {
	return iv.min <= other.max && other.min <= iv.max
}

// Intersect returns the common part of iv and other, or false when they do
// not overlap.
func (iv *Interval) Intersect(other *Interval) (*Interval, bool) {
	if !iv.Overlaps(other) {
		return nil, false
	}
	return &Interval{
		min: math.Max(iv.min, other.min),
		max: math.Min(iv.max, other.max),
	}, true
}

// Equal reports whether both bounds are identical.
func (iv *Interval) Equal(other *Interval) bool {
	return iv.min == other.min && iv.max == other.max
}

// String implements fmt.Stringer, returning "[min, max]". ParseInterval
// accepts the result.
func (iv *Interval) String() string {
	return fmt.Sprintf("[%v, %v]", iv.min, iv.max)
}
