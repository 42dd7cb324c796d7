// Package hounsfield models CT radiodensity samples and the level/width
// windows used to display them.
//
// The Hounsfield scale fixes the radiodensity of air at -1000 and of
// distilled water at 0. Medical CT scanners report integers in [-1024, 3071]
// so that a sample fits in 12 bits; HUnit enforces that domain.
package hounsfield

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/vipcxj/hounsfield/internal/ranged"
)

const (
	MinValue = -1024
	MaxValue = 3071
)

// ErrInvalidArgument is returned, wrapped, for every out-of-domain argument.
var ErrInvalidArgument = ranged.ErrInvalidArgument

// HUnit is a single Hounsfield measurement in [MinValue, MaxValue]. The zero
// HUnit holds 0.
type HUnit struct {
	rv ranged.RangedValue
}

// NewHUnit returns a Hounsfield unit with value 0.
func NewHUnit() *HUnit {
	return &HUnit{rv: domainValue(0)}
}

// NewHUnitOf returns a Hounsfield unit holding value. Values outside
// [MinValue, MaxValue] fail with ErrInvalidArgument.
func NewHUnitOf(value int) (*HUnit, error) {
	if err := checkDomain(value); err != nil {
		return nil, err
	}
	return &HUnit{rv: domainValue(value)}, nil
}

// Clone returns a new Hounsfield unit with the value of h.
func (h *HUnit) Clone() *HUnit {
	return &HUnit{rv: domainValue(h.Value())}
}

func (h *HUnit) Value() int {
	return int(h.unit().Value())
}

// SetValue overwrites the value of h and returns the value it replaced. On
// error h keeps its value.
func (h *HUnit) SetValue(value int) (int, error) {
	if err := checkDomain(value); err != nil {
		return 0, err
	}
	rv := h.unit()
	old := int(rv.Value())
	if err := rv.SetValue(float64(value)); err != nil {
		return 0, err
	}
	return old, nil
}

func (h *HUnit) Min() int {
	return MinValue
}

func (h *HUnit) Max() int {
	return MaxValue
}

// Interval returns a copy of [MinValue, MaxValue].
func (h *HUnit) Interval() *ranged.Interval {
	return h.unit().Interval()
}

// String returns the value in braces, e.g. "{-1000}".
func (h *HUnit) String() string {
	return "{" + strconv.Itoa(h.Value()) + "}"
}

// unit returns the wrapped value. A zero HUnit has the interval [0, 0], which
// no constructed HUnit can have, and is given the full domain first.
func (h *HUnit) unit() *ranged.RangedValue {
	if h.rv.Min() == 0 && h.rv.Max() == 0 {
		h.rv = domainValue(int(h.rv.Value()))
	}
	return &h.rv
}

// Domain returns a fresh [MinValue, MaxValue] interval.
func Domain() *ranged.Interval {
	iv, err := ranged.NewInterval(MinValue, MaxValue)
	if err != nil {
		panic(err)
	}
	return iv
}

// domainValue wraps a value already known to be inside the domain.
func domainValue(value int) ranged.RangedValue {
	rv, err := ranged.NewRangedValue(MinValue, MaxValue, float64(value))
	if err != nil {
		panic(err)
	}
	return *rv
}

func checkDomain(value int) error {
	if value < MinValue || value > MaxValue {
		return errors.Wrapf(ErrInvalidArgument, "hounsfield value %d is outside [%d, %d]", value, MinValue, MaxValue)
	}
	return nil
}
