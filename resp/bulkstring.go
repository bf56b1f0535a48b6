package resp

import (
	"bytes"
	"strconv"
)

// Canonical bulk string sentinels. They are fixed values shared by every
// caller; their backing bytes must not be modified.
var (
	EmptyBulkString = BulkString{raw: []byte("$0\r\n\r\n")}
	NullBulkString  = BulkString{raw: []byte("$-1\r\n")}
)

// BulkString is the length-prefixed binary-safe kind
// ("$<len>\r\n<len bytes>\r\n"). Any byte, CR and LF included, is legal
// inside the payload; only the declared length delimits it.
type BulkString struct {
	raw []byte
}

// NewBulkString encodes value as a bulk string in a single allocation. An
// empty payload yields the canonical EmptyBulkString sentinel without
// allocating.
func NewBulkString(value []byte) BulkString {
	if len(value) == 0 {
		return EmptyBulkString
	}
	length := strconv.Itoa(len(value))
	raw := make([]byte, 0, len(length)+len(value)+5)
	raw = append(raw, TypeBulkString)
	raw = append(raw, length...)
	raw = append(raw, '\r', '\n')
	raw = append(raw, value...)
	raw = append(raw, '\r', '\n')
	return BulkString{raw: raw}
}

// Bytes returns the full wire encoding. The slice is shared backing storage
// and must not be modified.
func (b BulkString) Bytes() []byte { return b.raw }

// Len returns the encoded length in bytes.
func (b BulkString) Len() int { return len(b.raw) }

// Type returns the '$' tag byte.
func (b BulkString) Type() byte { return TypeBulkString }

// IsNull reports whether this is the "$-1\r\n" null form.
func (b BulkString) IsNull() bool {
	return bytes.Equal(b.raw, NullBulkString.raw)
}

// IsEmpty reports whether this is the canonical "$0\r\n\r\n" empty form.
func (b BulkString) IsEmpty() bool {
	return bytes.Equal(b.raw, EmptyBulkString.raw)
}

// Value returns a copy of the payload. The null form yields nil.
func (b BulkString) Value() []byte {
	if b.IsNull() {
		return nil
	}
	i := bytes.IndexByte(b.raw, '\n') + 1
	return copySpan(b.raw, i, len(b.raw)-2)
}

// ValueLen returns the payload length in bytes; zero for the null form.
func (b BulkString) ValueLen() int {
	if b.IsNull() {
		return 0
	}
	i := bytes.IndexByte(b.raw, '\n') + 1
	return len(b.raw) - i - 2
}

func (b BulkString) respValue() {}

// ValidateBulkString scans one bulk string at input[start:end] without
// allocating and returns the position just past its terminator. The null
// marker must be exactly "-1"; a declared length with a superfluous leading
// zero is rejected; fewer payload bytes than declared is a length mismatch.
func ValidateBulkString(input []byte, start, end int) (int, error) {
	i := start
	if i >= end || input[i] != TypeBulkString {
		return start, ErrInvalidFirstChar
	}
	i++
	if i < end && input[i] == '-' {
		if i+3 >= end || input[i+1] != '1' || input[i+2] != '\r' || input[i+3] != '\n' {
			return start, ErrInvalidValue
		}
		return i + 4, nil
	}
	length, next, err := scanLength(input, i, end)
	if err != nil {
		return start, err
	}
	if length > end-next {
		return start, ErrLengthsNotMatch
	}
	i = next + length
	if i+1 >= end || input[i] != '\r' || input[i+1] != '\n' {
		return start, ErrInvalidTerminate
	}
	return i + 2, nil
}

// ParseBulkString validates one bulk string at input[start:end] and copies
// the confirmed span into an independently owned value. The null and empty
// forms come back as the shared sentinels.
func ParseBulkString(input []byte, start, end int) (BulkString, int, error) {
	next, err := ValidateBulkString(input, start, end)
	if err != nil {
		return BulkString{}, start, err
	}
	span := input[start:next]
	if bytes.Equal(span, NullBulkString.raw) {
		return NullBulkString, next, nil
	}
	if bytes.Equal(span, EmptyBulkString.raw) {
		return EmptyBulkString, next, nil
	}
	return BulkString{raw: copySpan(input, start, next)}, next, nil
}
