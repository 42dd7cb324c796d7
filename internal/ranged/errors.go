package ranged

import "github.com/pkg/errors"

// ErrInvalidArgument is the cause of every precondition failure reported by
// this package and the types built on it. Test for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}
