package resp

import (
	"bufio"
	"errors"
	"io"
)

// Decoder reads complete RESP values from a byte stream. Grammar violations
// surface the same sentinel errors as the slice validators; transport
// failures surface the underlying I/O error. io.EOF is returned only on a
// clean stream end between values; a stream cut mid-value reports the
// grammar error the truncation produced.
type Decoder struct {
	rd *bufio.Reader

	// MaxDepth bounds array nesting. Zero means DefaultMaxDepth.
	MaxDepth int
}

// NewDecoder wraps rd in a buffered RESP decoder.
func NewDecoder(rd io.Reader) *Decoder {
	return &Decoder{rd: bufio.NewReader(rd)}
}

// Buffered returns the number of input bytes already read from the
// underlying reader and waiting to be decoded.
func (d *Decoder) Buffered() int {
	return d.rd.Buffered()
}

// Read decodes the next value from the stream.
func (d *Decoder) Read() (Value, error) {
	depth := d.MaxDepth
	if depth <= 0 {
		depth = DefaultMaxDepth
	}
	return d.read(depth)
}

func (d *Decoder) read(depth int) (Value, error) {
	tag, err := d.rd.ReadByte()
	if err != nil {
		return nil, err
	}

	switch tag {
	case TypeSimpleString, TypeError, TypeInteger:
		return d.readLine(tag)
	case TypeBulkString:
		return d.readBulkString()
	case TypeArray:
		return d.readArray(depth)
	default:
		return nil, ErrInvalidValue
	}
}

// readLine consumes payload + CRLF after an already-consumed line tag and
// materializes the matching kind.
func (d *Decoder) readLine(tag byte) (Value, error) {
	payload, err := d.readCRLFLine()
	if err != nil {
		return nil, err
	}
	// A stray CR inside the line means the value was not terminated where
	// its first CR/LF occurs, same as the slice scan.
	if validateLineValue(payload) != nil {
		return nil, ErrInvalidTerminate
	}

	raw := encodeLine(tag, payload)
	switch tag {
	case TypeSimpleString:
		return SimpleString{raw: raw}, nil
	case TypeError:
		return Error{raw: raw}, nil
	default:
		return Integer{raw: raw}, nil
	}
}

func (d *Decoder) readBulkString() (Value, error) {
	header, err := d.readCRLFLine()
	if err != nil {
		return nil, err
	}
	if len(header) > 0 && header[0] == '-' {
		if len(header) != 2 || header[1] != '1' {
			return nil, ErrInvalidValue
		}
		return NullBulkString, nil
	}
	length, err := parseLengthField(header)
	if err != nil {
		return nil, err
	}
	if length == 0 {
		term, err := d.readCRLFLine()
		if err != nil {
			return nil, err
		}
		if len(term) != 0 {
			return nil, ErrInvalidTerminate
		}
		return EmptyBulkString, nil
	}

	raw := make([]byte, 0, len(header)+length+5)
	raw = append(raw, TypeBulkString)
	raw = append(raw, header...)
	raw = append(raw, '\r', '\n')

	// Payload plus trailing CRLF, delimited by the declared length alone.
	body := make([]byte, length+2)
	n, err := io.ReadFull(d.rd, body)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			if n >= length {
				return nil, ErrInvalidTerminate
			}
			return nil, ErrLengthsNotMatch
		}
		return nil, err
	}
	if body[length] != '\r' || body[length+1] != '\n' {
		return nil, ErrInvalidTerminate
	}
	return BulkString{raw: append(raw, body...)}, nil
}

func (d *Decoder) readArray(depth int) (Value, error) {
	if depth <= 0 {
		return nil, ErrMaxDepthExceeded
	}
	header, err := d.readCRLFLine()
	if err != nil {
		return nil, err
	}
	if len(header) > 0 && header[0] == '-' {
		if len(header) != 2 || header[1] != '1' {
			return nil, ErrInvalidValue
		}
		return NullArray, nil
	}
	count, err := parseLengthField(header)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return EmptyArray, nil
	}

	builder := NewArrayBuilder()
	for n := 0; n < count; n++ {
		element, err := d.read(depth - 1)
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Stream ended where an element tag should be.
				return nil, ErrInvalidValue
			}
			return nil, err
		}
		builder.Insert(element)
	}
	return builder.Build(), nil
}

// readCRLFLine reads through the next LF and returns the line without its
// CRLF. It is only called after a tag byte was consumed, so a stream end
// here is a missing terminator, not EOF.
func (d *Decoder) readCRLFLine() ([]byte, error) {
	line, err := d.rd.ReadBytes('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrInvalidTerminate
		}
		return nil, err
	}
	if len(line) < 2 || line[len(line)-2] != '\r' {
		return nil, ErrInvalidTerminate
	}
	return line[:len(line)-2], nil
}
