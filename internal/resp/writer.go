package resp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrUnknownType is returned when a Value carries a type byte that has no wire form
var ErrUnknownType = errors.New("unknown value type")

const crlf = "\r\n"

// Encoder serializes Values onto a buffered stream. Nothing reaches the
// underlying writer before Flush or a full buffer
type Encoder struct {
	wr *bufio.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{wr: bufio.NewWriter(w)}
}

// Write encodes v into the buffer. The whole reply is built in the buffer's
// spare capacity and handed to the writer in a single call
func (e *Encoder) Write(v Value) error {
	buf, err := AppendValue(e.wr.AvailableBuffer(), v)
	if err != nil {
		return err
	}
	_, err = e.wr.Write(buf)
	return err
}

func (e *Encoder) Flush() error {
	return e.wr.Flush()
}

// Buffered returns the number of encoded bytes waiting for Flush
func (e *Encoder) Buffered() int {
	return e.wr.Buffered()
}

// AppendValue appends the wire form of v to dst.
// Simple strings and errors are single-line by definition, so CR and LF inside them become spaces
func AppendValue(dst []byte, v Value) ([]byte, error) {
	switch v.Type {
	case TypeInteger:
		return appendPrefixed(dst, TypeInteger, v.Integer), nil

	case TypeSimpleString, TypeError:
		dst = append(dst, v.Type)
		for _, c := range v.String {
			if c == '\r' || c == '\n' {
				c = ' '
			}
			dst = append(dst, c)
		}
		return append(dst, crlf...), nil

	case TypeBulkString:
		if v.IsNull {
			return appendPrefixed(dst, TypeBulkString, -1), nil
		}
		dst = appendPrefixed(dst, TypeBulkString, int64(len(v.String)))
		dst = append(dst, v.String...)
		return append(dst, crlf...), nil

	case TypeArray:
		if v.IsNull {
			return appendPrefixed(dst, TypeArray, -1), nil
		}
		dst = appendPrefixed(dst, TypeArray, int64(len(v.Array)))
		for _, el := range v.Array {
			var err error
			if dst, err = AppendValue(dst, el); err != nil {
				return dst, err
			}
		}
		return dst, nil
	}

	return dst, fmt.Errorf("%w %q", ErrUnknownType, v.Type)
}

// appendPrefixed writes a type byte followed by a decimal number and CRLF
func appendPrefixed(dst []byte, prefix byte, n int64) []byte {
	dst = append(dst, prefix)
	dst = strconv.AppendInt(dst, n, 10)
	return append(dst, crlf...)
}
