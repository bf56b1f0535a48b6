package resp

// Error is the protocol error kind ("-<payload>\r\n"). It shares the simple
// string grammar, differing only in tag byte. An Error is an ordinary value,
// not a Go error: application failures travel the wire as Errors while the
// codec's own failures are returned as errors.
type Error struct {
	raw []byte
}

// NewError encodes value as a protocol error in a single allocation. The
// payload is not checked here; see ValidateErrorValue.
func NewError(value []byte) Error {
	return Error{raw: encodeLine(TypeError, value)}
}

// Bytes returns the full wire encoding. The slice is shared backing storage
// and must not be modified.
func (e Error) Bytes() []byte { return e.raw }

// Len returns the encoded length in bytes.
func (e Error) Len() int { return len(e.raw) }

// Type returns the '-' tag byte.
func (e Error) Type() byte { return TypeError }

// Value returns a copy of the payload, without tag and terminator.
func (e Error) Value() []byte {
	return copySpan(e.raw, 1, len(e.raw)-2)
}

// ValueLen returns the payload length in bytes.
func (e Error) ValueLen() int { return len(e.raw) - 3 }

func (e Error) respValue() {}

// ValidateErrorValue reports whether value may be carried by a protocol
// error; CR and LF are not allowed.
func ValidateErrorValue(value []byte) error {
	return validateLineValue(value)
}

// ValidateError scans one protocol error at input[start:end] without
// allocating and returns the position just past its terminator.
func ValidateError(input []byte, start, end int) (int, error) {
	return validateLine(TypeError, input, start, end)
}

// ParseError validates one protocol error at input[start:end] and copies the
// confirmed span into an independently owned value.
func ParseError(input []byte, start, end int) (Error, int, error) {
	next, err := validateLine(TypeError, input, start, end)
	if err != nil {
		return Error{}, start, err
	}
	return Error{raw: copySpan(input, start, next)}, next, nil
}
