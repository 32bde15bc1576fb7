package control

// Type is a control block type. A control byte matches a type when the bits
// outside Mask equal Prefix.
type Type struct {
	// Prefix holds the fixed bits that identify the type.
	Prefix byte

	// Mask selects the bits that carry data or size information.
	Mask byte

	// Abbr is the short name used in logs and test output.
	Abbr string
}

// Match returns true if this control type matches the given byte.
func (t Type) Match(b byte) bool {
	return b&^t.Mask == t.Prefix
}

// Fits returns true if b can be stored in the masked bits of this type.
func (t Type) Fits(b byte) bool {
	return b&t.Mask == b
}

type types []Type

// Match returns the first type in ts that matches b.
func (ts types) Match(b byte) (t Type, ok bool) {
	for _, t := range ts {
		if t.Match(b) {
			return t, true
		}
	}

	return t, false
}

// Control block types. Unknown is the zero Type and is reported before the
// first block is read and after a control byte fails to parse.
var (
	Unknown      = Type{}
	Data         = Type{0b_1000_0000, 0b_0111_1111, "d"}
	DataSize     = Type{0b_0100_0000, 0b_0011_1111, "dz"}
	Data1        = Type{0b_0010_0000, 0b_0001_1111, "d1"}
	Data2        = Type{0b_0001_0000, 0b_0000_1111, "d2"}
	DataSizeSize = Type{0b_0000_1000, 0b_0000_0111, "dzz"}
	Null         = Type{0b_0000_0000, 0b_0000_0000, "n"}

	// Types lists the defined types in match order. Null must be last
	// because its empty mask only matches the zero byte.
	Types = types{
		Data,
		DataSize,
		Data1,
		Data2,
		DataSizeSize,
		Null,
	}
)
