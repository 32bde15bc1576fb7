package bitstring

import (
	"fmt"
	"strconv"
	"strings"
)

// Bit is a single binary digit.
type Bit uint8

// Binary digits.
const (
	Zero Bit = 0
	One  Bit = 1
)

// String returns "0" or "1".
func (b Bit) String() string {
	if b == One {
		return "1"
	}

	return "0"
}

// BitString is an immutable unsigned integer stored as binary digits, most
// significant digit first.
//
// The zero value has no digits and represents 0.
type BitString struct {
	bits []Bit
}

// IsWellFormed reports whether s is non-empty and only contains the digits
// '0' and '1'.
func IsWellFormed(s string) bool {
	if len(s) == 0 {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}

	return true
}

// Normalize strips the leading zero digits from s. If nothing remains
// (including when s is empty) it returns "0".
func Normalize(s string) string {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}

	return s
}

// Parse returns the bit string for the well-formed text s. Leading zeros are
// kept.
func Parse(s string) (BitString, error) {
	if len(s) == 0 {
		return BitString{}, fmt.Errorf("%w: empty", ErrMalformed)
	}

	bits := make([]Bit, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			bits[i] = Zero
		case '1':
			bits[i] = One
		default:
			return BitString{}, fmt.Errorf("%w: invalid digit %q at offset %d", ErrMalformed, s[i], i)
		}
	}

	return BitString{bits: bits}, nil
}

// MustParse is like Parse but panics if s is not well-formed.
func MustParse(s string) BitString {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return b
}

// Zeros returns n zero digits. The result is not normalized unless n is 1.
func Zeros(n int) BitString {
	if n <= 0 {
		return BitString{}
	}

	return BitString{bits: make([]Bit, n)}
}

// Len returns the number of digits, including leading zeros.
func (b BitString) Len() int {
	return len(b.bits)
}

// Bit returns the i-th digit counted from the most significant end.
func (b BitString) Bit(i int) Bit {
	return b.bits[i]
}

// Bits returns a copy of the digits, most significant first.
func (b BitString) Bits() []Bit {
	out := make([]Bit, len(b.bits))
	copy(out, b.bits)

	return out
}

// IsZero reports whether b represents 0.
func (b BitString) IsZero() bool {
	for _, d := range b.bits {
		if d == One {
			return false
		}
	}

	return true
}

// IsOne reports whether b represents 1.
func (b BitString) IsOne() bool {
	n := b.significant()

	return len(n) == 1 && n[0] == One
}

// IsNormalized reports whether b has exactly one digit or a leading one.
func (b BitString) IsNormalized() bool {
	return len(b.bits) == 1 || (len(b.bits) > 1 && b.bits[0] == One)
}

// Normalize returns b without leading zeros. Zero normalizes to "0".
func (b BitString) Normalize() BitString {
	if b.IsNormalized() {
		return b
	}

	return BitString{bits: b.significant()}.orZero()
}

// significant returns the digits of b after the leading zeros. The returned
// slice aliases b and must not be modified.
func (b BitString) significant() []Bit {
	for i, d := range b.bits {
		if d == One {
			return b.bits[i:]
		}
	}

	return nil
}

// orZero substitutes the canonical "0" for an empty digit sequence.
func (b BitString) orZero() BitString {
	if len(b.bits) == 0 {
		return BitString{bits: []Bit{Zero}}
	}

	return b
}

// String returns the digits of b. The zero value is "0".
func (b BitString) String() string {
	if len(b.bits) == 0 {
		return "0"
	}

	var sb strings.Builder
	sb.Grow(len(b.bits))

	for _, d := range b.bits {
		sb.WriteByte('0' + byte(d))
	}

	return sb.String()
}

// Format implements fmt.Formatter. The verbs s, v and b print the digits as
// stored, d prints the decimal value and x/X the hexadecimal value. Width and
// flags apply to every verb.
func (b BitString) Format(s fmt.State, c rune) {
	switch c {
	case 'd', 'x', 'X', 'o', 'O':
		b.BigInt().Format(s, c)
	case 'q':
		fmt.Fprintf(s, directive(s, 'q'), b.String())
	default:
		fmt.Fprintf(s, directive(s, 's'), b.String())
	}
}

// directive rebuilds the format directive of s for the verb c.
func directive(s fmt.State, c rune) string {
	var sb strings.Builder
	sb.WriteByte('%')

	for _, f := range "+-# 0" {
		if s.Flag(int(f)) {
			sb.WriteRune(f)
		}
	}

	if w, ok := s.Width(); ok {
		sb.WriteString(strconv.Itoa(w))
	}

	if p, ok := s.Precision(); ok {
		sb.WriteByte('.')
		sb.WriteString(strconv.Itoa(p))
	}

	sb.WriteRune(c)

	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (b BitString) MarshalText() (text []byte, err error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BitString) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*b = v

	return nil
}

var _ fmt.Formatter = BitString{}
