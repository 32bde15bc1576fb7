package integer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitint/bitstring"
	"github.com/calebcase/bitint/control"
)

// value returns the bit string for the decimal name of a test case.
func value(t *testing.T, name string) bitstring.BitString {
	i := new(big.Int)
	err := i.UnmarshalText([]byte(name))
	require.NoError(t, err)

	v, err := bitstring.FromBigInt(i)
	require.NoError(t, err)

	return v
}

func TestMarshalUnmarshal(t *testing.T) {
	type TC struct {
		name string
		data []byte
	}

	tcs := []TC{
		{
			name: "0",
			data: []byte{
				0b0000_0000,
			},
		},
		{
			name: "1",
			data: []byte{
				0b0000_0001,
			},
		},
		{
			name: "255",
			data: []byte{
				0b1111_1111,
			},
		},
		{
			name: "256",
			data: []byte{
				0b0000_0001,
				0b0000_0000,
			},
		},
		{
			name: "65535",
			data: []byte{
				0b1111_1111,
				0b1111_1111,
			},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			blk := &Block{Value: value(t, tc.name)}

			t.Run("marshal", func(t *testing.T) {
				data, err := blk.MarshalBinary()
				require.NoError(t, err)
				require.Equal(t, tc.data, data)
			})

			t.Run("unmarshal", func(t *testing.T) {
				out := &Block{Null: true}
				err := out.UnmarshalBinary(tc.data)
				require.NoError(t, err)
				require.False(t, out.Null)
				require.Equal(t, blk.Value.String(), out.Value.String())

				// These checks ensure that our test case name matches the value.
				require.Equal(t, tc.name, fmt.Sprintf("%d", out.Value))
			})
		})
	}

	t.Run("null", func(t *testing.T) {
		_, err := Block{Null: true}.MarshalBinary()
		require.True(t, errors.Is(err, ErrNull))
	})
}

func TestEncodeDecode(t *testing.T) {
	type TC struct {
		name   string
		schema Schema
		data   []byte
		Mark   error
	}

	tcs := []TC{
		{
			name:   "0",
			schema: Schema{Bits: 64},
			data: []byte{
				0b1000_0000,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name:   "1",
			schema: Schema{Bits: 64},
			data: []byte{
				0b1000_0001,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name:   "127",
			schema: Schema{Bits: 7},
			data: []byte{
				0b1111_1111,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name:   "128",
			schema: Schema{Bits: 64},
			data: []byte{
				0b0100_0000,
				0b1000_0000,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name:   "4095",
			schema: Schema{Bits: 64},
			data: []byte{
				0b0010_1111,
				0b1111_1111,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name:   "8191",
			schema: Schema{Bits: 13},
			data: []byte{
				0b0011_1111,
				0b1111_1111,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name:   "8192",
			schema: Schema{Bits: 64},
			data: []byte{
				0b0100_0001,
				0b0010_0000,
				0b0000_0000,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name:   "1048575",
			schema: Schema{Bits: 20},
			data: []byte{
				0b0001_1111,
				0b1111_1111,
				0b1111_1111,
			},
			Mark: oops.New("unexpected"),
		},
		{
			name:   "26187124863169134960105517574620793217733136368344518315866330944769070371237396439066160738607233257207093473020480568073738052367083144426628220715007",
			schema: Schema{Bits: 503},
			data: append(
				[]byte{0b0111_1110, 0b0111_1111},
				bytes.Repeat([]byte{0b1111_1111}, 62)...,
			),
			Mark: oops.New("unexpected"),
		},
		{
			name:   "26187124863169134960105517574620793217733136368344518315866330944769070371237396439066160738607233257207093473020480568073738052367083144426628220715007",
			schema: Schema{},
			data: append(
				[]byte{0b0111_1110, 0b0111_1111},
				bytes.Repeat([]byte{0b1111_1111}, 62)...,
			),
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			blk := &Block{Value: value(t, tc.name)}

			t.Run("encode", func(t *testing.T) {
				enc := NewEncoder(tc.schema, control.NewEncoder(buf))
				err := enc.Encode(blk)
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.data, buf.Bytes(), tc.Mark)
			})

			t.Run("decode", func(t *testing.T) {
				dec := NewDecoder(tc.schema, control.NewDecoder(buf))
				out := &Block{}
				err := dec.Decode(out)
				require.NoError(t, err, tc.Mark)
				require.Equal(t, blk.Value.String(), out.Value.String(), tc.Mark)
				require.True(t, out.Value.IsNormalized(), tc.Mark)

				// These checks ensure that our test case name matches the value.
				require.Equal(t, tc.name, fmt.Sprintf("%d", out.Value), tc.Mark)

				err = dec.Decode(out)
				require.True(t, errors.Is(err, io.EOF), tc.Mark)
			})
		})
	}
}

func TestSchema(t *testing.T) {
	t.Run("too large", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		enc := NewEncoder(Schema{Bits: 4}, control.NewEncoder(buf))

		// Leading zeros do not count against the width.
		err := enc.Encode(&Block{Value: bitstring.MustParse("0001111")})
		require.NoError(t, err)

		err = enc.Encode(&Block{Value: bitstring.MustParse("10000")})
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrTooLarge))

		// A wider writer produces a value the narrow reader rejects.
		buf.Reset()
		wide := NewEncoder(Schema{Bits: 8}, control.NewEncoder(buf))
		require.NoError(t, wide.Encode(&Block{Value: bitstring.FromUint64(200)}))

		dec := NewDecoder(Schema{Bits: 4}, control.NewDecoder(buf))
		err = dec.Decode(&Block{})
		require.True(t, errors.Is(err, ErrTooLarge))
	})

	t.Run("nullable", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		schema := Schema{Nullable: true}

		enc := NewEncoder(schema, control.NewEncoder(buf))
		require.NoError(t, enc.Encode(&Block{Null: true}))
		require.NoError(t, enc.Encode(&Block{Value: bitstring.FromUint64(5)}))
		require.Equal(t, []byte{0b0000_0000, 0b1000_0101}, buf.Bytes())

		dec := NewDecoder(schema, control.NewDecoder(bytes.NewBuffer(buf.Bytes())))

		out := &Block{}
		require.NoError(t, dec.Decode(out))
		require.True(t, out.Null)

		require.NoError(t, dec.Decode(out))
		require.False(t, out.Null)
		require.Equal(t, "101", out.Value.String())

		// The same bytes are invalid for a non-nullable reader.
		strict := NewDecoder(Schema{}, control.NewDecoder(bytes.NewBuffer(buf.Bytes())))
		err := strict.Decode(out)
		require.True(t, errors.Is(err, ErrNull))
	})

	t.Run("not nullable", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		enc := NewEncoder(Schema{}, control.NewEncoder(buf))

		err := enc.Encode(&Block{Null: true})
		require.True(t, errors.Is(err, ErrNull))
		require.Equal(t, 0, buf.Len())
	})

	t.Run("corrupt", func(t *testing.T) {
		dec := NewDecoder(Schema{}, control.NewDecoder(bytes.NewBuffer([]byte{0b0000_0010})))
		err := dec.Decode(&Block{})
		require.Error(t, err)
		require.False(t, errors.Is(err, io.EOF))
	})
}

func TestStream(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	enc := NewEncoder(Schema{}, control.NewEncoder(buf))

	values := []string{"0", "1", "1101", "10011", "1111111", "10000000", "1" + bitstring.Zeros(200).String()}
	for _, v := range values {
		require.NoError(t, enc.Encode(&Block{Value: bitstring.MustParse(v)}))
	}

	dec := NewDecoder(Schema{}, control.NewDecoder(buf))

	got := []string{}
	for {
		out := &Block{}
		err := dec.Decode(out)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)

		got = append(got, out.Value.String())
	}

	require.Equal(t, values, got)
}

func BenchmarkEncode(b *testing.B) {
	buf := bytes.NewBuffer(nil)
	ce := control.NewEncoder(buf)

	schema := Schema{
		Bits: 64,
	}
	enc := NewEncoder(schema, ce)

	blk := &Block{
		Value: bitstring.FromUint64(524287),
	}

	for n := 0; n < b.N; n++ {
		err := enc.Encode(blk)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	data := []byte{
		0b0001_0111,
		0b1111_1111,
		0b1111_1111,
	}

	blk := Block{}

	for n := 0; n < b.N; n++ {
		buf := bytes.NewBuffer(data)
		cd := control.NewDecoder(buf)

		schema := Schema{
			Bits: 64,
		}
		dec := NewDecoder(schema, cd)

		err := dec.Decode(&blk)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
