package hounsfield

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/vipcxj/hounsfield/internal/ranged"
)

const (
	DefaultLevel = 0
	DefaultWidth = 400
)

// HWindow is a windowed view of Hounsfield units, defined by a level (the
// value the window is centred on) and a width (the span of values it shows).
//
// The window bounds are
//
//	lo = level - width/2
//	hi = level + width/2
//
// and MapLinear sends a unit below lo to 0, above hi to 1, and anything in
// between to (v - lo) / width. The zero HWindow is the default window with
// level DefaultLevel and width DefaultWidth.
type HWindow struct {
	level  HUnit
	window ranged.Interval
}

// NewHWindow returns a window with level DefaultLevel and width DefaultWidth.
func NewHWindow() *HWindow {
	w, err := NewHWindowOf(DefaultLevel, DefaultWidth)
	if err != nil {
		panic(err)
	}
	return w
}

// NewHWindowOf returns a window with the given level and width. It fails with
// ErrInvalidArgument if width is less than 1 or level is not a valid
// Hounsfield unit.
func NewHWindowOf(level, width int) (*HWindow, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	h, err := NewHUnitOf(level)
	if err != nil {
		return nil, err
	}
	bounds, err := boundsAround(level, width)
	if err != nil {
		return nil, err
	}
	return &HWindow{level: *h, window: *bounds}, nil
}

func (w *HWindow) Level() int {
	return w.level.Value()
}

func (w *HWindow) Width() int {
	return int(w.bounds().Width())
}

// SetLevel moves the window so that it is centred on level. The width is
// unchanged.
func (w *HWindow) SetLevel(level int) error {
	bounds := w.bounds()
	old, err := w.level.SetValue(level)
	if err != nil {
		return err
	}
	return bounds.MoveBy(float64(level - old))
}

// SetWidth recomputes both bounds around the current level.
func (w *HWindow) SetWidth(width int) error {
	if err := checkWidth(width); err != nil {
		return err
	}
	bounds, err := boundsAround(w.Level(), width)
	if err != nil {
		return err
	}
	w.window = *bounds
	return nil
}

// Bounds returns a copy of [lo, hi].
func (w *HWindow) Bounds() *ranged.Interval {
	return w.bounds().Clone()
}

// Visible returns the part of the window that real Hounsfield units can fall
// in. Wide windows reach past the 12-bit domain on one or both sides.
func (w *HWindow) Visible() (*ranged.Interval, bool) {
	return w.bounds().Intersect(Domain())
}

// MapLinear maps h onto [0, 1]. Units exactly at lo or hi take the linear
// branch, which yields 0 and 1 respectively.
func (w *HWindow) MapLinear(h *HUnit) float64 {
	v := float64(h.Value())
	bounds := w.bounds()
	switch {
	case v < bounds.Min():
		return 0
	case v > bounds.Max():
		return 1
	default:
		return (v - bounds.Min()) / float64(w.Width())
	}
}

// bounds returns the window interval. Only a zero HWindow has an empty one; it
// is laid out around the level with DefaultWidth first.
func (w *HWindow) bounds() *ranged.Interval {
	if w.window.Min() == 0 && w.window.Max() == 0 {
		b, err := boundsAround(w.level.Value(), DefaultWidth)
		if err != nil {
			panic(err)
		}
		w.window = *b
	}
	return &w.window
}

// MapGray quantizes MapLinear onto the display levels 0..levels-1, rounding
// half up. An 8-bit display uses 256 levels.
func (w *HWindow) MapGray(h *HUnit, levels int) (int, error) {
	if levels < 2 {
		return 0, errors.Wrapf(ErrInvalidArgument, "gray levels %d is less than 2", levels)
	}
	top := levels - 1
	g := int(math.Floor(w.MapLinear(h)*float64(top) + 0.5))
	return ranged.Clamp(g, 0, top), nil
}

// String returns "L=<level> W=<width>".
func (w *HWindow) String() string {
	return fmt.Sprintf("L=%d W=%d", w.Level(), w.Width())
}

// ParseWindow parses "LEVEL/WIDTH" or "LEVEL:WIDTH", e.g. "40/400" or
// "-600:1500".
func ParseWindow(value string) (*HWindow, error) {
	s := strings.TrimSpace(value)
	sep := strings.IndexAny(s, "/:")
	if sep <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "malformed window %q, want LEVEL/WIDTH", value)
	}
	level, err := strconv.Atoi(strings.TrimSpace(s[:sep]))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "malformed window level in %q", value)
	}
	width, err := strconv.Atoi(strings.TrimSpace(s[sep+1:]))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "malformed window width in %q", value)
	}
	return NewHWindowOf(level, width)
}

func boundsAround(level, width int) (*ranged.Interval, error) {
	half := 0.5 * float64(width)
	return ranged.NewInterval(float64(level)-half, float64(level)+half)
}

func checkWidth(width int) error {
	if width < 1 {
		return errors.Wrapf(ErrInvalidArgument, "width %d is less than 1", width)
	}
	return nil
}
