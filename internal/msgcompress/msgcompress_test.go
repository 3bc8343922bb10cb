package msgcompress

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestDeflateInflateRoundtrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short", []byte("hello")},
		{"repetitive", bytes.Repeat([]byte("abcd"), 1024)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := Deflate(tt.data)
			if err != nil {
				t.Fatalf("Deflate: %v", err)
			}
			if got := binary.BigEndian.Uint64(body); got != uint64(len(tt.data)) {
				t.Errorf("size prefix = %d, want %d", got, len(tt.data))
			}

			out, err := Inflate(body)
			if err != nil {
				t.Fatalf("Inflate: %v", err)
			}
			if !bytes.Equal(out, tt.data) {
				t.Errorf("roundtrip mismatch: got %d bytes, want %d", len(out), len(tt.data))
			}
		})
	}
}

func TestInflateShortBody(t *testing.T) {
	if _, err := Inflate([]byte{0, 0, 0}); err == nil {
		t.Error("expected an error for a body shorter than the size prefix")
	}
}

func TestInflateSizeMismatch(t *testing.T) {
	body, err := Deflate([]byte("hello"))
	if err != nil {
		t.Fatalf("Deflate: %v", err)
	}
	// Declare one byte fewer than the stream inflates to.
	binary.BigEndian.PutUint64(body, 4)
	if _, err := Inflate(body); err == nil {
		t.Error("expected a size mismatch error")
	}
}

func TestInflateGarbageStream(t *testing.T) {
	body := make([]byte, 16)
	binary.BigEndian.PutUint64(body, 8)
	for i := sizePrefixLen; i < len(body); i++ {
		body[i] = 0x42
	}
	if _, err := Inflate(body); err == nil {
		t.Error("expected an error for a garbage zlib stream")
	}
}
