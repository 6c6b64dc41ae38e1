package resp

import (
	"bytes"
)

// MakeCommand builds the array a client sends for a command
func MakeCommand(args ...string) Value {
	return MakeStringArray(args)
}

// SerializeCommand uses a standard Encoder to convert the command to bytes
func SerializeCommand(args ...string) ([]byte, error) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	if err := enc.Write(MakeCommand(args...)); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
