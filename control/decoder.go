package control

import (
	"bytes"
	"errors"
	"io"

	"github.com/calebcase/oops"
)

// Decoder reads control blocks.
//
//	for d.Next() {
//		data, err := d.Data()
//		...
//	}
//	if err := d.Err(); err != nil {
//		...
//	}
type Decoder interface {
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Consumed() uint64

	Data() (data []byte, err error)
}

type decoder struct {
	r io.Reader

	consumed uint64

	value [1]byte
	t     Type
	data  []byte

	err error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	return &decoder{
		r: r,
	}
}

func (d *decoder) read(p []byte) (err error) {
	n, err := io.ReadFull(d.r, p)
	d.consumed += uint64(n)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return Error.Wrap(err)
	}

	return nil
}

// readN reads size bytes. The buffer grows only with the bytes received so a
// large declared size on a short input fails without allocating it.
func (d *decoder) readN(size uint64) (data []byte, err error) {
	buf := &bytes.Buffer{}

	n, err := io.CopyN(buf, d.r, int64(size))
	d.consumed += uint64(n)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return nil, Error.Wrap(err)
	}

	return buf.Bytes(), nil
}

// Next reads the next block. It returns false at the end of the input or on
// error.
func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Reset state for next field.
	d.value[0] = 0
	d.t = Unknown
	d.data = nil

	// Read the field control block.
	n, err := io.ReadFull(d.r, d.value[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false
		}

		d.err = Error.Wrap(err)

		return false
	}

	d.consumed += uint64(n)

	t, value, err := Parse(d.value[0])
	if err != nil {
		d.err = err

		return false
	}

	d.t = t

	d.err = d.payload(value)
	if d.err != nil {
		return false
	}

	return true
}

// payload reads the data following the control byte.
func (d *decoder) payload(value byte) (err error) {
	switch d.t {
	case Data:
		d.data = []byte{value}
	case Data1:
		d.data = make([]byte, 2)
		d.data[0] = value

		return d.read(d.data[1:])
	case Data2:
		d.data = make([]byte, 3)
		d.data[0] = value

		return d.read(d.data[1:])
	case DataSize:
		d.data = make([]byte, int(value)+1)

		return d.read(d.data)
	case DataSizeSize:
		sb := make([]byte, int(value)+1)

		err = d.read(sb)
		if err != nil {
			return err
		}

		var size uint64
		for _, b := range sb {
			if size > MaxSize>>8 {
				return Error.New("invalid: size exceeds %d", uint64(MaxSize))
			}

			size = size<<8 | uint64(b)
		}
		size++

		if size > MaxSize {
			return Error.New("invalid: size=%d exceeds %d", size, uint64(MaxSize))
		}

		d.data, err = d.readN(size)

		return err
	case Null:
		// No additional bytes need to be read.
	}

	return nil
}

func (d *decoder) Err() (err error) {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Data returns the payload of the current data block.
func (d *decoder) Data() (data []byte, err error) {
	switch d.t {
	case Data, Data1, Data2, DataSize, DataSizeSize:
		return d.data, nil
	}

	return nil, oops.Trace(ErrInvalidOperation)
}
