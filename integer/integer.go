package integer

import (
	"io"

	"github.com/zeebo/errs"

	"github.com/calebcase/bitint/bitstring"
	"github.com/calebcase/bitint/control"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

var (
	// ErrTooLarge is returned when a value has more significant bits than
	// the schema allows.
	ErrTooLarge = Error.New("too large")

	// ErrNull is returned when a null block is used with a schema that is
	// not nullable.
	ErrNull = Error.New("null value for non-nullable schema")
)

// Block is an unsigned integer number.
type Block struct {
	Value bitstring.BitString
	Null  bool
}

// MarshalBinary implements encoding.BinaryMarshaler. The value is written as
// big-endian magnitude bytes.
func (b Block) MarshalBinary() (data []byte, err error) {
	if b.Null {
		return nil, ErrNull
	}

	// Note: zero is encoded as an actual zero byte rather than an empty
	// byte array.
	return b.Value.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	b.Value = bitstring.FromBytes(data)
	b.Null = false

	return nil
}

// Schema for an integer.
type Schema struct {
	// Bits is the maximum number of significant bits. Zero means
	// unbounded.
	Bits uint64

	Nullable    bool
	Key         bool
	ContentType string
}

func (s Schema) check(v bitstring.BitString) (err error) {
	if s.Bits != 0 && uint64(v.BitLen()) > s.Bits {
		return ErrTooLarge
	}

	return nil
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode parses a block from the reader. At the end of the input the error
// is io.EOF (check with errors.Is).
func (d *Decoder) Decode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if !d.cd.Next() {
		err = d.cd.Err()
		if err != nil {
			return err
		}

		return io.EOF
	}

	if d.cd.Type() == control.Null {
		if !d.schema.Nullable {
			return ErrNull
		}

		b.Value = bitstring.BitString{}
		b.Null = true

		return nil
	}

	data, err := d.cd.Data()
	if err != nil {
		return err
	}

	v := bitstring.FromBytes(data)

	err = d.schema.check(v)
	if err != nil {
		return err
	}

	b.Value = v
	b.Null = false

	return nil
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode write a block to the writer.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if b.Null {
		if !e.schema.Nullable {
			return ErrNull
		}

		return e.ce.Null()
	}

	err = e.schema.check(b.Value)
	if err != nil {
		return err
	}

	// The control encoder picks the smallest block for the bytes (Data for
	// up to 7 bits, Data + 1 for 13, Data + 2 for 20, then sized blocks).
	return e.ce.Data(b.Value.Bytes())
}
