package ranged

import (
	"strconv"
	"strings"
)

// ParseInterval parses the form produced by Interval.String.
//
// Supported formats:
//   - [min, max]
//   - [min,max]
//
// Spaces around the bounds are ignored. A bound may be written as inf, +inf
// or -inf (any case) for an unbounded side. NaN bounds, reversed bounds and
// any other syntax fail with ErrInvalidArgument.
//
// Examples:
//
//	ParseInterval("[-1024, 3071]") -> [-1024, 3071]
//	ParseInterval("[0,+Inf]")      -> [0, +Inf]
//	ParseInterval("(0, 1)")        -> error
func ParseInterval(value string) (*Interval, error) {
	s := strings.TrimSpace(value)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, invalidf("malformed interval %q", value)
	}
	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != 2 {
		return nil, invalidf("malformed interval %q", value)
	}
	min, err := parseBound(parts[0])
	if err != nil {
		return nil, err
	}
	max, err := parseBound(parts[1])
	if err != nil {
		return nil, err
	}
	return NewInterval(min, max)
}

func parseBound(tok string) (float64, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return 0, invalidf("empty interval bound")
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, invalidf("malformed bound %q", tok)
	}
	return f, nil
}
