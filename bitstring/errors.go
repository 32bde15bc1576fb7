package bitstring

import "github.com/zeebo/errs"

// Error is the class of errors returned by this package.
var Error = errs.Class("bitstring")

var (
	// ErrMalformed is returned when text is empty or contains a digit
	// other than '0' or '1'.
	ErrMalformed = Error.New("malformed bit string")

	// ErrOverflow is returned when a value does not fit the requested
	// native integer type.
	ErrOverflow = Error.New("overflow")

	// ErrNegative is returned when a negative big.Int is converted.
	ErrNegative = Error.New("negative value")

	// ErrUnderflow is returned by Sub when the subtrahend is greater than
	// the minuend.
	ErrUnderflow = Error.New("subtrahend exceeds minuend")

	// ErrDivisionByZero is returned by DivMod when the divisor is zero.
	ErrDivisionByZero = Error.New("division by zero")
)
