package resp

import "strconv"

// Integer is the ":<ascii-decimal>\r\n" kind. The payload is kept as raw
// ASCII text; the codec round-trips it byte-for-byte and leaves numeric
// interpretation to the caller.
type Integer struct {
	raw []byte
}

// NewInteger encodes n as an integer value in a single allocation.
func NewInteger(n int64) Integer {
	text := strconv.FormatInt(n, 10)
	raw := make([]byte, 0, len(text)+3)
	raw = append(raw, TypeInteger)
	raw = append(raw, text...)
	raw = append(raw, '\r', '\n')
	return Integer{raw: raw}
}

// Bytes returns the full wire encoding. The slice is shared backing storage
// and must not be modified.
func (n Integer) Bytes() []byte { return n.raw }

// Len returns the encoded length in bytes.
func (n Integer) Len() int { return len(n.raw) }

// Type returns the ':' tag byte.
func (n Integer) Type() byte { return TypeInteger }

// RawValue returns a copy of the ASCII decimal payload.
func (n Integer) RawValue() []byte {
	return copySpan(n.raw, 1, len(n.raw)-2)
}

// ValueLen returns the payload length in bytes.
func (n Integer) ValueLen() int { return len(n.raw) - 3 }

func (n Integer) respValue() {}

// ValidateIntegerValue reports whether value may be carried by an integer
// line; CR and LF are not allowed.
func ValidateIntegerValue(value []byte) error {
	return validateLineValue(value)
}

// ValidateInteger scans one integer at input[start:end] without allocating
// and returns the position just past its terminator. The payload is not
// interpreted; only the line grammar is checked.
func ValidateInteger(input []byte, start, end int) (int, error) {
	return validateLine(TypeInteger, input, start, end)
}

// ParseInteger validates one integer at input[start:end] and copies the
// confirmed span into an independently owned value.
func ParseInteger(input []byte, start, end int) (Integer, int, error) {
	next, err := validateLine(TypeInteger, input, start, end)
	if err != nil {
		return Integer{}, start, err
	}
	return Integer{raw: copySpan(input, start, next)}, next, nil
}
