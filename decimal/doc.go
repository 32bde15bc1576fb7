// Package decimal converts bit strings to and from base 10 text.
//
// Conversion only uses the arithmetic of package bitstring:
//
//  Parse:  acc = acc * 1010 + digit        (for each digit, most significant first)
//  Format: value, digit = DivMod(value, 1010) (until value is zero)
//
// For example 19:
//
//  | value | DivMod(value, 1010) | digit |
//  |-------|---------------------|-------|
//  | 10011 | 1, 1001             | 9     |
//  | 1     | 0, 1                | 1     |
//  |-------|---------------------|-------|
//
// Digits are produced least significant first, so the text is "19".
//
// Both directions cost O(n^2) digit operations per output digit; the package
// is meant for display and test oracles rather than bulk conversion.
package decimal
