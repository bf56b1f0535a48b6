package resp_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/eternalApril/respwire/resp"
)

func TestNewBulkString(t *testing.T) {
	b := resp.NewBulkString([]byte("hello"))

	if !bytes.Equal(b.Bytes(), []byte("$5\r\nhello\r\n")) {
		t.Errorf("Bytes() = %q", b.Bytes())
	}
	if b.Len() != 11 {
		t.Errorf("Len() = %d, want 11", b.Len())
	}
	if !bytes.Equal(b.Value(), []byte("hello")) {
		t.Errorf("Value() = %q", b.Value())
	}
	if b.ValueLen() != 5 {
		t.Errorf("ValueLen() = %d, want 5", b.ValueLen())
	}
	if b.IsNull() || b.IsEmpty() {
		t.Error("unexpected sentinel form")
	}
}

func TestNewBulkStringEmpty(t *testing.T) {
	b := resp.NewBulkString(nil)

	if !bytes.Equal(b.Bytes(), []byte("$0\r\n\r\n")) {
		t.Errorf("Bytes() = %q, want the canonical empty form", b.Bytes())
	}
	if !b.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
	if !bytes.Equal(b.Bytes(), resp.EmptyBulkString.Bytes()) {
		t.Error("empty bulk string differs from the canonical sentinel")
	}
}

func TestNullBulkString(t *testing.T) {
	if !resp.NullBulkString.IsNull() {
		t.Error("IsNull() = false, want true")
	}
	if resp.NullBulkString.Value() != nil {
		t.Errorf("Value() = %q, want nil", resp.NullBulkString.Value())
	}
	if resp.NullBulkString.ValueLen() != 0 {
		t.Errorf("ValueLen() = %d, want 0", resp.NullBulkString.ValueLen())
	}
}

func TestParseBulkString(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantNext  int
		wantValue string
		wantErr   error
	}{
		{
			name:      "valid",
			input:     "$5\r\nhello\r\n",
			want:      "$5\r\nhello\r\n",
			wantNext:  11,
			wantValue: "hello",
		},
		{
			name:      "binary payload with CRLF",
			input:     "$6\r\nab\r\ncd\r\n",
			want:      "$6\r\nab\r\ncd\r\n",
			wantNext:  12,
			wantValue: "ab\r\ncd",
		},
		{
			name:     "null",
			input:    "$-1\r\n",
			want:     "$-1\r\n",
			wantNext: 5,
		},
		{
			name:      "empty",
			input:     "$0\r\n\r\n",
			want:      "$0\r\n\r\n",
			wantNext:  6,
			wantValue: "",
		},
		{
			name:    "bad null marker",
			input:   "$-2\r\n",
			wantErr: resp.ErrInvalidValue,
		},
		{
			name:    "leading zero length",
			input:   "$012\r\nhello world!\r\n",
			wantErr: resp.ErrInvalidLength,
		},
		{
			name:    "missing length",
			input:   "$\r\n",
			wantErr: resp.ErrInvalidLength,
		},
		{
			name:    "length without separator",
			input:   "$5hello\r\n",
			wantErr: resp.ErrInvalidLengthSeparator,
		},
		{
			name:    "length truncated",
			input:   "$5",
			wantErr: resp.ErrInvalidLengthSeparator,
		},
		{
			name:    "payload shorter than declared",
			input:   "$5\r\nhe\r\n",
			wantErr: resp.ErrLengthsNotMatch,
		},
		{
			name:    "payload longer than declared",
			input:   "$4\r\nhello\r\n",
			wantErr: resp.ErrInvalidTerminate,
		},
		{
			name:    "missing trailing CRLF",
			input:   "$5\r\nhello",
			wantErr: resp.ErrInvalidTerminate,
		},
		{
			name:    "wrong tag",
			input:   "*5\r\nhello\r\n",
			wantErr: resp.ErrInvalidFirstChar,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := []byte(tt.input)
			b, next, err := resp.ParseBulkString(input, 0, len(input))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseBulkString() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBulkString() unexpected error %v", err)
			}
			if !bytes.Equal(b.Bytes(), []byte(tt.want)) {
				t.Errorf("Bytes() = %q, want %q", b.Bytes(), tt.want)
			}
			if next != tt.wantNext {
				t.Errorf("next = %d, want %d", next, tt.wantNext)
			}
			if !b.IsNull() && !bytes.Equal(b.Value(), []byte(tt.wantValue)) {
				t.Errorf("Value() = %q, want %q", b.Value(), tt.wantValue)
			}
		})
	}
}

func TestParseBulkStringNullSentinel(t *testing.T) {
	input := []byte("$-1\r\n")
	b, next, err := resp.ParseBulkString(input, 0, len(input))
	if err != nil {
		t.Fatalf("ParseBulkString() failed: %v", err)
	}
	if next != 5 {
		t.Errorf("next = %d, want 5", next)
	}
	if !b.IsNull() {
		t.Error("IsNull() = false, want true")
	}
	if !bytes.Equal(b.Bytes(), resp.NullBulkString.Bytes()) {
		t.Error("decoded null differs from the canonical sentinel")
	}
}

func TestBulkStringRoundTrip(t *testing.T) {
	payloads := [][]byte{
		[]byte("x"),
		[]byte("hello, world"),
		[]byte("line\r\nbreaks\nand\rmore"),
		bytes.Repeat([]byte{0x00, 0xff}, 100),
	}

	for _, payload := range payloads {
		original := resp.NewBulkString(payload)
		encoded := original.Bytes()

		decoded, next, err := resp.ParseBulkString(encoded, 0, len(encoded))
		if err != nil {
			t.Fatalf("ParseBulkString(%q) failed: %v", payload, err)
		}
		if !bytes.Equal(decoded.Bytes(), encoded) {
			t.Errorf("round trip mismatch for %q", payload)
		}
		if !bytes.Equal(decoded.Value(), payload) {
			t.Errorf("Value() = %q, want %q", decoded.Value(), payload)
		}
		if next != original.Len() {
			t.Errorf("cursor advanced by %d, want %d", next, original.Len())
		}
	}
}
