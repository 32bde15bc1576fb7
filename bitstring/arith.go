package bitstring

// Add returns a + b.
func Add(a, b BitString) BitString {
	x, y := a.bits, b.bits

	n := len(x)
	if len(y) > n {
		n = len(y)
	}

	// out is filled least significant first and reversed at the end. The
	// only growth point is the final carry.
	out := make([]Bit, 0, n+1)

	var carry Bit
	for i := 0; i < n; i++ {
		sum := carry
		if i < len(x) {
			sum += x[len(x)-1-i]
		}
		if i < len(y) {
			sum += y[len(y)-1-i]
		}

		out = append(out, sum%2)
		carry = sum / 2
	}

	if carry == One {
		out = append(out, One)
	}

	reverse(out)

	return BitString{bits: out}.Normalize()
}

// Sub returns a - b. When b is greater than a the result is zero and
// ErrUnderflow is returned.
func Sub(a, b BitString) (BitString, error) {
	if Compare(a, b) == Less {
		return Zeros(1), ErrUnderflow
	}

	return sub(a, b), nil
}

// sub returns a - b for a >= b.
func sub(a, b BitString) BitString {
	if b.IsZero() {
		return a.Normalize()
	}

	if a.String() == b.String() {
		return Zeros(1)
	}

	x, y := pad(a.bits, b.bits)

	out := make([]Bit, len(x))

	var borrow bool
	for i := len(x) - 1; i >= 0; i-- {
		raw := int(x[i]) - int(y[i])
		if borrow {
			raw--
		}

		borrow = raw < 0
		if borrow {
			raw += 2
		}

		out[i] = Bit(raw)
	}

	return BitString{bits: out}.Normalize()
}

// pad left pads the shorter of x and y with zeros so both have the same
// length.
func pad(x, y []Bit) ([]Bit, []Bit) {
	switch {
	case len(x) < len(y):
		return append(make([]Bit, len(y)-len(x)), x...), y
	case len(y) < len(x):
		return x, append(make([]Bit, len(x)-len(y)), y...)
	}

	return x, y
}

// Lsh returns a shifted left by n digits, i.e. a * 2^n. It panics if n is
// negative.
func Lsh(a BitString, n int) BitString {
	if n < 0 {
		panic(Error.New("negative shift count %d", n))
	}

	if a.IsZero() {
		return Zeros(1)
	}

	digits := a.significant()

	out := make([]Bit, len(digits)+n)
	copy(out, digits)

	return BitString{bits: out}
}

// Mul returns a * b.
func Mul(a, b BitString) BitString {
	if a.IsZero() || b.IsZero() {
		return Zeros(1)
	}

	multiplicand := BitString{bits: append([]Bit(nil), a.significant()...)}
	product := Zeros(1)

	digits := b.significant()
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] == One {
			product = Add(product, multiplicand)
		}

		multiplicand = Lsh(multiplicand, 1)
	}

	return product
}

// DivMod returns the quotient and remainder of dividend / divisor.
//
// A zero divisor returns ("0", "0") together with ErrDivisionByZero.
func DivMod(dividend, divisor BitString) (q, r BitString, err error) {
	if divisor.IsZero() {
		return Zeros(1), Zeros(1), ErrDivisionByZero
	}

	q, r = divMod(dividend, divisor)

	return q, r, nil
}

// Div returns the floor of dividend / divisor.
func Div(dividend, divisor BitString) (BitString, error) {
	q, _, err := DivMod(dividend, divisor)

	return q, err
}

// Mod returns dividend modulo divisor.
func Mod(dividend, divisor BitString) (BitString, error) {
	_, r, err := DivMod(dividend, divisor)

	return r, err
}

// divMod is restoring long division for a non-zero divisor.
func divMod(dividend, divisor BitString) (q, r BitString) {
	if dividend.IsZero() {
		return Zeros(1), Zeros(1)
	}

	switch Compare(dividend, divisor) {
	case Equal:
		return FromUint64(1), Zeros(1)
	case Less:
		return Zeros(1), dividend.Normalize()
	}

	digits := dividend.significant()
	quotient := make([]Bit, len(digits))

	r = Zeros(1)
	for i, d := range digits {
		r = appendDigit(r, d)

		if Compare(r, divisor) != Less {
			quotient[i] = One
			r = sub(r, divisor)
		}
	}

	return BitString{bits: quotient}.Normalize(), r
}

// appendDigit returns 2*r + d. A zero remainder is replaced rather than
// extended so the result stays normalized.
func appendDigit(r BitString, d Bit) BitString {
	if r.IsZero() {
		return BitString{bits: []Bit{d}}
	}

	out := make([]Bit, len(r.bits)+1)
	copy(out, r.bits)
	out[len(r.bits)] = d

	return BitString{bits: out}
}
