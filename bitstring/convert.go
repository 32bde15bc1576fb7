package bitstring

import (
	"math/big"
)

// FromUint64 returns the normalized bit string for n.
func FromUint64(n uint64) BitString {
	if n == 0 {
		return BitString{bits: []Bit{Zero}}
	}

	// Collect least significant first, then reverse.
	bits := make([]Bit, 0, 64)
	for n > 0 {
		bits = append(bits, Bit(n%2))
		n /= 2
	}

	reverse(bits)

	return BitString{bits: bits}
}

// Uint64 returns the value of b. Leading zeros are ignored; ErrOverflow is
// returned when more than 64 significant digits remain.
func (b BitString) Uint64() (uint64, error) {
	digits := b.significant()
	if len(digits) > 64 {
		return 0, ErrOverflow
	}

	var acc uint64
	for _, d := range digits {
		acc = 2*acc + uint64(d)
	}

	return acc, nil
}

// FromBigInt returns the normalized bit string for i. Negative values are
// rejected with ErrNegative.
func FromBigInt(i *big.Int) (BitString, error) {
	if i.Sign() < 0 {
		return BitString{}, ErrNegative
	}

	n := i.BitLen()
	if n == 0 {
		return BitString{bits: []Bit{Zero}}, nil
	}

	bits := make([]Bit, n)
	for k := 0; k < n; k++ {
		bits[n-1-k] = Bit(i.Bit(k))
	}

	return BitString{bits: bits}, nil
}

// BigInt returns the value of b as a new big.Int.
func (b BitString) BigInt() *big.Int {
	digits := b.significant()

	i := new(big.Int)
	for k, d := range digits {
		if d == One {
			i.SetBit(i, len(digits)-1-k, 1)
		}
	}

	return i
}

// FromBytes returns the normalized bit string for the big-endian magnitude
// data. Empty data is zero.
func FromBytes(data []byte) BitString {
	bits := make([]Bit, 0, 8*len(data))
	for _, octet := range data {
		for shift := 7; shift >= 0; shift-- {
			bits = append(bits, Bit(octet>>uint(shift)&1))
		}
	}

	return BitString{bits: bits}.Normalize()
}

// Bytes returns the big-endian magnitude of b in the fewest bytes.
//
// Note: zero is encoded as a single zero byte rather than an empty slice.
func (b BitString) Bytes() []byte {
	digits := b.significant()
	if len(digits) == 0 {
		return []byte{0}
	}

	data := make([]byte, (len(digits)+7)/8)

	// Fill from the least significant end so the first byte carries the
	// leftover high digits.
	for k := 0; k < len(digits); k++ {
		d := digits[len(digits)-1-k]
		data[len(data)-1-k/8] |= byte(d) << uint(k%8)
	}

	return data
}

// BitLen returns the number of significant digits of b. Zero has length 0.
func (b BitString) BitLen() int {
	return len(b.significant())
}

func reverse(bits []Bit) {
	for i, j := 0, len(bits)-1; i < j; i, j = i+1, j-1 {
		bits[i], bits[j] = bits[j], bits[i]
	}
}
