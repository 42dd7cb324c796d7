package ranged

// Ordered restricts a type parameter to the built-in numeric kinds (signed,
// unsigned and floating point). The ~ prefix admits named types built on them.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Range is a closed interval of T.
type Range[T Ordered] interface {
	// Contains reports whether v lies within the range, bounds included.
	Contains(v T) bool
	Min() T
	Max() T
}

var (
	_ Range[float64] = (*Interval)(nil)
	_ Range[float64] = (*RangedValue)(nil)
)

// Clamp returns v limited to [lo, hi]. A value that compares false against
// both bounds (NaN) is returned as is.
func Clamp[T Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
