package resp

import (
	"bytes"
	"strconv"
)

// DefaultMaxDepth bounds array nesting when no explicit bound is given.
// Adversarial input cannot recurse deeper than the bound, so stack use stays
// proportional to it.
const DefaultMaxDepth = 64

// Canonical array sentinels. They are fixed values shared by every caller;
// their backing bytes must not be modified.
var (
	EmptyArray = Array{raw: []byte("*0\r\n")}
	NullArray  = Array{raw: []byte("*-1\r\n")}
)

// Array is the recursive composite kind: "*<count>\r\n" followed by count
// encoded values of any kind. The stored bytes keep no element boundaries;
// Elements re-parses them on demand. An array has no terminator of its own,
// the last nested value's terminator ends it.
type Array struct {
	raw []byte
}

// Bytes returns the full wire encoding, nested elements included. The slice
// is shared backing storage and must not be modified.
func (a Array) Bytes() []byte { return a.raw }

// Len returns the encoded length in bytes.
func (a Array) Len() int { return len(a.raw) }

// Type returns the '*' tag byte.
func (a Array) Type() byte { return TypeArray }

// IsNull reports whether this is the "*-1\r\n" null form.
func (a Array) IsNull() bool {
	return bytes.Equal(a.raw, NullArray.raw)
}

// IsEmpty reports whether this is the canonical "*0\r\n" empty form.
func (a Array) IsEmpty() bool {
	return bytes.Equal(a.raw, EmptyArray.raw)
}

func (a Array) respValue() {}

// Elements re-parses the stored encoding into its element sequence, one
// owned value per element in wire order. The null form yields nil.
func (a Array) Elements() ([]Value, error) {
	if a.IsNull() {
		return nil, nil
	}
	end := len(a.raw)
	count, i, err := scanLength(a.raw, 1, end)
	if err != nil {
		return nil, err
	}
	// Stored bytes are valid by construction; nesting cannot exceed the
	// encoded length, so the length itself is a sufficient depth bound.
	elements := make([]Value, 0, count)
	for n := 0; n < count; n++ {
		element, next, err := parseValue(a.raw, i, end, end)
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)
		i = next
	}
	return elements, nil
}

// ValidateArray scans one array at input[start:end] without allocating,
// recursing into nested elements, and returns the position just past the
// last element. Nesting is bounded by DefaultMaxDepth.
func ValidateArray(input []byte, start, end int) (int, error) {
	return validateArray(input, start, end, DefaultMaxDepth)
}

// ValidateArrayMaxDepth is ValidateArray with an explicit nesting bound.
// A bound of zero or less falls back to DefaultMaxDepth.
func ValidateArrayMaxDepth(input []byte, start, end, maxDepth int) (int, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return validateArray(input, start, end, maxDepth)
}

// ParseArray validates one array at input[start:end] and copies the full
// confirmed span, nested elements included, into an independently owned
// value. The null and empty forms come back as the shared sentinels.
func ParseArray(input []byte, start, end int) (Array, int, error) {
	return parseArray(input, start, end, DefaultMaxDepth)
}

// ParseArrayMaxDepth is ParseArray with an explicit nesting bound. A bound
// of zero or less falls back to DefaultMaxDepth.
func ParseArrayMaxDepth(input []byte, start, end, maxDepth int) (Array, int, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return parseArray(input, start, end, maxDepth)
}

func parseArray(input []byte, start, end, depth int) (Array, int, error) {
	next, err := validateArray(input, start, end, depth)
	if err != nil {
		return Array{}, start, err
	}
	return arrayFromSpan(input, start, next), next, nil
}

// arrayFromSpan adopts an already-validated span, mapping the fixed forms to
// their sentinels.
func arrayFromSpan(input []byte, start, next int) Array {
	span := input[start:next]
	if bytes.Equal(span, NullArray.raw) {
		return NullArray
	}
	if bytes.Equal(span, EmptyArray.raw) {
		return EmptyArray
	}
	return Array{raw: copySpan(input, start, next)}
}

// validateArray checks the header then dispatches per element on the tag
// byte. depth is the remaining nesting allowance.
func validateArray(input []byte, start, end, depth int) (int, error) {
	if depth <= 0 {
		return start, ErrMaxDepthExceeded
	}
	i := start
	if i >= end || input[i] != TypeArray {
		return start, ErrInvalidFirstChar
	}
	i++
	if i < end && input[i] == '-' {
		if i+3 >= end || input[i+1] != '1' || input[i+2] != '\r' || input[i+3] != '\n' {
			return start, ErrInvalidValue
		}
		return i + 4, nil
	}
	count, next, err := scanLength(input, i, end)
	if err != nil {
		return start, err
	}
	i = next
	for n := 0; n < count; n++ {
		next, err := validateValue(input, i, end, depth-1)
		if err != nil {
			return start, err
		}
		i = next
	}
	return i, nil
}

// validateValue dispatches on the tag byte at input[start]. A missing or
// unrecognized tag is a malformed value region.
func validateValue(input []byte, start, end, depth int) (int, error) {
	if start >= end {
		return start, ErrInvalidValue
	}
	switch input[start] {
	case TypeSimpleString:
		return ValidateSimpleString(input, start, end)
	case TypeError:
		return ValidateError(input, start, end)
	case TypeInteger:
		return ValidateInteger(input, start, end)
	case TypeBulkString:
		return ValidateBulkString(input, start, end)
	case TypeArray:
		return validateArray(input, start, end, depth)
	default:
		return start, ErrInvalidValue
	}
}

// parseValue is validateValue's materializing twin, used by Elements.
func parseValue(input []byte, start, end, depth int) (Value, int, error) {
	if start >= end {
		return nil, start, ErrInvalidValue
	}
	switch input[start] {
	case TypeSimpleString:
		v, next, err := ParseSimpleString(input, start, end)
		if err != nil {
			return nil, start, err
		}
		return v, next, nil
	case TypeError:
		v, next, err := ParseError(input, start, end)
		if err != nil {
			return nil, start, err
		}
		return v, next, nil
	case TypeInteger:
		v, next, err := ParseInteger(input, start, end)
		if err != nil {
			return nil, start, err
		}
		return v, next, nil
	case TypeBulkString:
		v, next, err := ParseBulkString(input, start, end)
		if err != nil {
			return nil, start, err
		}
		return v, next, nil
	case TypeArray:
		next, err := validateArray(input, start, end, depth)
		if err != nil {
			return nil, start, err
		}
		return arrayFromSpan(input, start, next), next, nil
	default:
		return nil, start, ErrInvalidValue
	}
}

// ArrayBuilder accumulates already-encoded values and assembles them into an
// Array. Elements are complete encodings by construction, so Build never
// re-validates them. A builder belongs to one goroutine while it is being
// filled.
type ArrayBuilder struct {
	elements []Value
}

// NewArrayBuilder returns an empty builder.
func NewArrayBuilder() *ArrayBuilder {
	return &ArrayBuilder{}
}

// Insert appends v and returns the builder for chaining.
func (b *ArrayBuilder) Insert(v Value) *ArrayBuilder {
	b.elements = append(b.elements, v)
	return b
}

// Values returns a copy of the accumulated elements in insertion order.
func (b *ArrayBuilder) Values() []Value {
	values := make([]Value, len(b.elements))
	copy(values, b.elements)
	return values
}

// Build assembles the array in a single exactly-sized allocation: header
// digits + tag + CRLF + the elements' own encoded lengths. An empty builder
// yields the EmptyArray sentinel without allocating.
func (b *ArrayBuilder) Build() Array {
	count := len(b.elements)
	if count == 0 {
		return EmptyArray
	}
	header := strconv.Itoa(count)
	total := len(header) + 3
	for _, element := range b.elements {
		total += element.Len()
	}
	raw := make([]byte, 0, total)
	raw = append(raw, TypeArray)
	raw = append(raw, header...)
	raw = append(raw, '\r', '\n')
	for _, element := range b.elements {
		raw = append(raw, element.Bytes()...)
	}
	return Array{raw: raw}
}
