package resp

// SimpleString is the non-binary-safe line kind ("+<payload>\r\n"). The
// payload may not contain CR or LF.
type SimpleString struct {
	raw []byte
}

// NewSimpleString encodes value as a simple string in a single allocation.
// The payload is not checked here; callers building values from arbitrary
// input should run ValidateSimpleStringValue first.
func NewSimpleString(value []byte) SimpleString {
	return SimpleString{raw: encodeLine(TypeSimpleString, value)}
}

// Bytes returns the full wire encoding. The slice is shared backing storage
// and must not be modified.
func (s SimpleString) Bytes() []byte { return s.raw }

// Len returns the encoded length in bytes.
func (s SimpleString) Len() int { return len(s.raw) }

// Type returns the '+' tag byte.
func (s SimpleString) Type() byte { return TypeSimpleString }

// Value returns a copy of the payload, without tag and terminator.
func (s SimpleString) Value() []byte {
	return copySpan(s.raw, 1, len(s.raw)-2)
}

// ValueLen returns the payload length in bytes.
func (s SimpleString) ValueLen() int { return len(s.raw) - 3 }

func (s SimpleString) respValue() {}

// ValidateSimpleStringValue reports whether value may be carried by a simple
// string; CR and LF are not allowed.
func ValidateSimpleStringValue(value []byte) error {
	return validateLineValue(value)
}

// ValidateSimpleString scans one simple string at input[start:end] without
// allocating and returns the position just past its terminator.
func ValidateSimpleString(input []byte, start, end int) (int, error) {
	return validateLine(TypeSimpleString, input, start, end)
}

// ParseSimpleString validates one simple string at input[start:end] and
// copies the confirmed span into an independently owned value.
func ParseSimpleString(input []byte, start, end int) (SimpleString, int, error) {
	next, err := validateLine(TypeSimpleString, input, start, end)
	if err != nil {
		return SimpleString{}, start, err
	}
	return SimpleString{raw: copySpan(input, start, next)}, next, nil
}
