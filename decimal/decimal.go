package decimal

import (
	"fmt"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/bitint/bitstring"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

// ErrSyntax is returned when text is not a decimal number.
var ErrSyntax = Error.New("invalid decimal")

var ten = bitstring.FromUint64(10)

// digits holds the bit strings for 0 through 9.
var digits = func() (ds [10]bitstring.BitString) {
	for i := range ds {
		ds[i] = bitstring.FromUint64(uint64(i))
	}

	return ds
}()

// Parse returns the bit string for the base 10 text s. Leading zeros are
// accepted.
func Parse(s string) (b bitstring.BitString, err error) {
	if len(s) == 0 {
		return b, fmt.Errorf("%w: empty", ErrSyntax)
	}

	acc := digits[0]
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return b, fmt.Errorf("%w: invalid digit %q at offset %d", ErrSyntax, c, i)
		}

		// acc = acc * 10 + digit
		acc = bitstring.Add(bitstring.Mul(acc, ten), digits[c-'0'])
	}

	return acc, nil
}

// Format returns the base 10 text for b.
func Format(b bitstring.BitString) string {
	if b.IsZero() {
		return "0"
	}

	out := []byte{}
	for !b.IsZero() {
		// Neither call can fail: the divisor is ten and r < 10.
		q, r, _ := bitstring.DivMod(b, ten)
		d, _ := r.Uint64()

		out = append(out, byte('0'+d))
		b = q
	}

	// Digits were produced least significant first.
	var sb strings.Builder
	sb.Grow(len(out))
	for i := len(out) - 1; i >= 0; i-- {
		sb.WriteByte(out[i])
	}

	return sb.String()
}
