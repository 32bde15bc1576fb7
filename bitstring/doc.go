// Package bitstring provides arbitrary precision unsigned integers stored as
// explicit sequences of binary digits.
//
// A bit string is written most significant digit first and represents
//
//  value = Σ digit[i] * 2^(len-1-i)
//
// Text is well-formed when it is non-empty and every character is '0' or '1'.
// Leading zeros are allowed ("0011" is 3) and a string is normalized when it
// is a single digit or starts with a one. The canonical zero is "0".
//
// Values are immutable: every operation returns a new BitString and results
// are always normalized.
//
// Operations
//
//  | Operation | Algorithm                               | Cost    |
//  |-----------|-----------------------------------------|---------|
//  | Compare   | length, then MSB-first digit scan       | O(n)    |
//  | Add       | ripple carry from the LSB end           | O(n)    |
//  | Sub       | left pad, borrow propagate, normalize   | O(n)    |
//  | Mul       | shift and add over the multiplier       | O(n*m)  |
//  | DivMod    | restoring long division                 | O(n^2)  |
//
// For example 13 + 6:
//
//    1 1 0 1
//  + 0 1 1 0
//  ---------
//  1 0 0 1 1
//
// Errors
//
// Sub reports ErrUnderflow when the subtrahend is larger than the minuend.
// DivMod with a zero divisor returns ("0", "0") together with
// ErrDivisionByZero so callers ignoring the error still see a defined
// result. All errors belong to the Error class.
package bitstring
