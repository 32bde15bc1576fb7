package control

import (
	"io"
	"math/big"
)

// Encoder writes control blocks.
type Encoder interface {
	// Data writes data using the smallest block type able to hold it.
	Data(data []byte) (err error)

	// Null writes a null block.
	Null() (err error)
}

type encoder struct {
	w io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	e := &encoder{
		w: w,
	}

	return e
}

func (e *encoder) write(p []byte) (err error) {
	_, err = e.w.Write(p)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

func (e *encoder) Data(data []byte) (err error) {
	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && Data.Fits(data[0]):
		return e.write([]byte{
			Data.Prefix | data[0],
		})
	case size == 2 && Data1.Fits(data[0]):
		return e.write([]byte{
			Data1.Prefix | data[0],
			data[1],
		})
	case size == 3 && Data2.Fits(data[0]):
		return e.write([]byte{
			Data2.Prefix | data[0],
			data[1],
			data[2],
		})
	case size <= 64:
		err = e.write([]byte{
			DataSize.Prefix | byte(size-1),
		})
		if err != nil {
			return err
		}

		return e.write(data)
	case uint64(size) <= MaxSize:
		// The size is stored minus one so that 2^32 bytes fits in four
		// size bytes.
		s := new(big.Int).SetUint64(uint64(size))
		s.Sub(s, big.NewInt(1))

		sb := s.Bytes()

		err = e.write([]byte{
			DataSizeSize.Prefix | byte(len(sb)-1),
		})
		if err != nil {
			return err
		}

		err = e.write(sb)
		if err != nil {
			return err
		}

		return e.write(data)
	}

	return Error.New("invalid: size=%d exceeds %d", size, uint64(MaxSize))
}

func (e *encoder) Null() (err error) {
	return e.write([]byte{
		Null.Prefix,
	})
}
