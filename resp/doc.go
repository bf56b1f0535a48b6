// Package resp implements a codec for the RESP wire format: five value
// kinds (simple string, error, integer, bulk string, array), each stored as
// its complete, immutable wire encoding.
//
// Decoding is two-phase. The Validate functions scan a borrowed byte slice
// without allocating and report where the encoding ends; the Parse functions
// run the same scan and then copy the confirmed span into an independently
// owned value. Both take an explicit (input, start, end) cursor and return
// the advanced position, so the caller always owns its read position and
// concurrent calls on separate buffers never interact. On failure the
// returned position is unspecified and must not be used to resume.
//
// Encoding is bottom-up: leaf constructors produce complete encodings in a
// single allocation, and ArrayBuilder assembles already-encoded elements
// into an array. Decoder and Encoder adapt the slice codec to byte streams.
package resp
