package resp

import (
	"bufio"
	"io"
)

// Encoder writes RESP values to a byte stream. Writes are buffered; call
// Flush to push them to the underlying writer.
type Encoder struct {
	writer *bufio.Writer
}

// NewEncoder initializes an Encoder with a buffered writer.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{writer: bufio.NewWriter(w)}
}

// Write appends a value's wire encoding to the output buffer. Values carry
// their complete encoding, so this is a verbatim copy.
func (e *Encoder) Write(v Value) error {
	_, err := e.writer.Write(v.Bytes())
	return err
}

// Flush sends all buffered data to the underlying writer.
func (e *Encoder) Flush() error {
	return e.writer.Flush()
}
