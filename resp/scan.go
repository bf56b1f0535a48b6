package resp

import "bytes"

const maxInt = int(^uint(0) >> 1)

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func copySpan(input []byte, start, end int) []byte {
	span := make([]byte, end-start)
	copy(span, input[start:end])
	return span
}

// encodeLine builds tag + payload + CRLF in a single allocation.
func encodeLine(tag byte, value []byte) []byte {
	raw := make([]byte, 0, len(value)+3)
	raw = append(raw, tag)
	raw = append(raw, value...)
	return append(raw, '\r', '\n')
}

// validateLineValue rejects payloads that cannot travel inside a
// CRLF-terminated line.
func validateLineValue(value []byte) error {
	if bytes.IndexByte(value, '\r') >= 0 || bytes.IndexByte(value, '\n') >= 0 {
		return ErrInvalidValueChar
	}
	return nil
}

// validateLine scans one tag + payload + CRLF encoding at input[start:end]
// and returns the position just past the terminator. Scanning stops at the
// first CR or LF; anything but an immediate CRLF pair there is a missing
// terminator.
func validateLine(tag byte, input []byte, start, end int) (int, error) {
	i := start
	if i >= end || input[i] != tag {
		return start, ErrInvalidFirstChar
	}
	i++
	for i < end && input[i] != '\r' && input[i] != '\n' {
		i++
	}
	if i+1 >= end || input[i] != '\r' || input[i+1] != '\n' {
		return start, ErrInvalidTerminate
	}
	return i + 2, nil
}

// scanLength reads an ASCII-decimal length or count field at input[start:end]
// followed by CRLF and returns its value and the position just past the
// separator. A leading zero followed by another digit is rejected: lengths
// have exactly one canonical spelling.
func scanLength(input []byte, start, end int) (int, int, error) {
	i := start
	if i >= end || !isDigit(input[i]) {
		return 0, start, ErrInvalidLength
	}
	if input[i] == '0' && i+1 < end && isDigit(input[i+1]) {
		return 0, start, ErrInvalidLength
	}
	n := 0
	for i < end && isDigit(input[i]) {
		if n > (maxInt-9)/10 {
			return 0, start, ErrInvalidLength
		}
		n = n*10 + int(input[i]-'0')
		i++
	}
	if i+1 >= end || input[i] != '\r' || input[i+1] != '\n' {
		return 0, start, ErrInvalidLengthSeparator
	}
	return n, i + 2, nil
}

// parseLengthField is scanLength for a field already stripped of its CRLF,
// as read from a stream line.
func parseLengthField(field []byte) (int, error) {
	if len(field) == 0 {
		return 0, ErrInvalidLength
	}
	if field[0] == '0' && len(field) > 1 {
		return 0, ErrInvalidLength
	}
	n := 0
	for i := 0; i < len(field); i++ {
		if !isDigit(field[i]) {
			if i == 0 {
				return 0, ErrInvalidLength
			}
			return 0, ErrInvalidLengthSeparator
		}
		if n > (maxInt-9)/10 {
			return 0, ErrInvalidLength
		}
		n = n*10 + int(field[i]-'0')
	}
	return n, nil
}
