package control

import "github.com/zeebo/errs"

// Error is the class of errors returned by this package.
var Error = errs.Class("control")

// ErrInvalidOperation is returned when a method does not apply to the current
// block type.
var ErrInvalidOperation = Error.New("invalid operation")

// MaxSize is the largest payload a single block may carry.
const MaxSize = 4294967296 // 2^(4 * 8)

// Parse returns the control block type of b and the value bits embedded in
// it.
func Parse(b byte) (t Type, value byte, err error) {
	t, ok := Types.Match(b)
	if !ok {
		return Unknown, 0, Error.New("invalid control byte: %08b", b)
	}

	return t, b & t.Mask, nil
}
