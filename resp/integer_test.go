package resp_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/eternalApril/respwire/resp"
)

func TestNewInteger(t *testing.T) {
	tests := []struct {
		name  string
		input int64
		want  string
	}{
		{name: "positive", input: 100, want: ":100\r\n"},
		{name: "negative", input: -100, want: ":-100\r\n"},
		{name: "zero", input: 0, want: ":0\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := resp.NewInteger(tt.input)
			if !bytes.Equal(n.Bytes(), []byte(tt.want)) {
				t.Errorf("Bytes() = %q, want %q", n.Bytes(), tt.want)
			}
		})
	}
}

func TestIntegerRawValue(t *testing.T) {
	n := resp.NewInteger(-100)

	if !bytes.Equal(n.RawValue(), []byte("-100")) {
		t.Errorf("RawValue() = %q, want %q", n.RawValue(), "-100")
	}
	if n.ValueLen() != 4 {
		t.Errorf("ValueLen() = %d, want 4", n.ValueLen())
	}
	if n.Type() != resp.TypeInteger {
		t.Errorf("Type() = %q, want ':'", n.Type())
	}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		wantNext int
		wantErr  error
	}{
		{
			name:     "valid with trailing data",
			input:    ":100\r\n+bar\r\n",
			want:     ":100\r\n",
			wantNext: 6,
		},
		{
			name:     "negative",
			input:    ":-15\r\n",
			want:     ":-15\r\n",
			wantNext: 6,
		},
		{
			name:    "wrong tag",
			input:   "$100\r\n",
			wantErr: resp.ErrInvalidFirstChar,
		},
		{
			name:    "lone LF",
			input:   ":100\n",
			wantErr: resp.ErrInvalidTerminate,
		},
		{
			name:    "truncated",
			input:   ":10",
			wantErr: resp.ErrInvalidTerminate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := []byte(tt.input)
			n, next, err := resp.ParseInteger(input, 0, len(input))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseInteger() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInteger() unexpected error %v", err)
			}
			if !bytes.Equal(n.Bytes(), []byte(tt.want)) {
				t.Errorf("Bytes() = %q, want %q", n.Bytes(), tt.want)
			}
			if next != tt.wantNext {
				t.Errorf("next = %d, want %d", next, tt.wantNext)
			}
		})
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 100, -100, 1<<62 - 1} {
		original := resp.NewInteger(v)
		encoded := original.Bytes()

		decoded, next, err := resp.ParseInteger(encoded, 0, len(encoded))
		if err != nil {
			t.Fatalf("ParseInteger(%d) failed: %v", v, err)
		}
		if !bytes.Equal(decoded.Bytes(), encoded) {
			t.Errorf("round trip mismatch for %d: %q != %q", v, decoded.Bytes(), encoded)
		}
		if next != original.Len() {
			t.Errorf("cursor advanced by %d, want %d", next, original.Len())
		}
	}
}
