package resp

// Tag bytes, the first byte of every encoded value.
const (
	TypeSimpleString = '+'
	TypeError        = '-'
	TypeInteger      = ':'
	TypeBulkString   = '$'
	TypeArray        = '*'
)

// Value is the closed union over the five RESP kinds. A Value always carries
// a complete, self-delimited wire encoding; there is no partial value.
type Value interface {
	// Bytes returns the full wire encoding, tag byte and terminator
	// included. The returned slice is the value's backing storage and must
	// not be modified.
	Bytes() []byte
	// Len returns the encoded length in bytes.
	Len() int
	// Type returns the kind's tag byte.
	Type() byte

	respValue()
}
