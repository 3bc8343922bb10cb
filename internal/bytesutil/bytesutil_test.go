package bytesutil

import (
	"bytes"
	"math"
	"testing"
)

// -----------------------------------------------------------------------------
// Fixed-width encoding tests
// -----------------------------------------------------------------------------

func TestUint16(t *testing.T) {
	tests := []struct {
		name  string
		value uint16
		want  []byte
	}{
		{"zero", 0, []byte{0x00, 0x00}},
		{"one", 1, []byte{0x00, 0x01}},
		{"max", 0xFFFF, []byte{0xFF, 0xFF}},
		{"0x1234", 0x1234, []byte{0x12, 0x34}}, // big-endian
		{"256", 256, []byte{0x01, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 2)
			EncodeUint16(buf, tt.value)
			if !bytes.Equal(buf, tt.want) {
				t.Errorf("EncodeUint16(%d) = %v, want %v", tt.value, buf, tt.want)
			}

			got := DecodeUint16(tt.want)
			if got != tt.value {
				t.Errorf("DecodeUint16(%v) = %d, want %d", tt.want, got, tt.value)
			}

			appended := AppendUint16(nil, tt.value)
			if !bytes.Equal(appended, tt.want) {
				t.Errorf("AppendUint16(%d) = %v, want %v", tt.value, appended, tt.want)
			}
		})
	}
}

func TestUint32(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		want  []byte
	}{
		{"zero", 0, []byte{0x00, 0x00, 0x00, 0x00}},
		{"one", 1, []byte{0x00, 0x00, 0x00, 0x01}},
		{"max", 0xFFFFFFFF, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"0x12345678", 0x12345678, []byte{0x12, 0x34, 0x56, 0x78}},
		{"65536", 65536, []byte{0x00, 0x01, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 4)
			EncodeUint32(buf, tt.value)
			if !bytes.Equal(buf, tt.want) {
				t.Errorf("EncodeUint32(%d) = %v, want %v", tt.value, buf, tt.want)
			}

			got := DecodeUint32(tt.want)
			if got != tt.value {
				t.Errorf("DecodeUint32(%v) = %d, want %d", tt.want, got, tt.value)
			}

			appended := AppendUint32(nil, tt.value)
			if !bytes.Equal(appended, tt.want) {
				t.Errorf("AppendUint32(%d) = %v, want %v", tt.value, appended, tt.want)
			}
		})
	}
}

func TestUint48(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		want  []byte
	}{
		{"zero", 0, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"one", 1, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x01}},
		{"max", Int48Max, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{"0x123456789ABC", 0x123456789ABC, []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC}},
		{"proto header size", 30, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x1E}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 6)
			EncodeUint48(buf, tt.value)
			if !bytes.Equal(buf, tt.want) {
				t.Errorf("EncodeUint48(%d) = %v, want %v", tt.value, buf, tt.want)
			}

			got := DecodeUint48(tt.want)
			if got != tt.value {
				t.Errorf("DecodeUint48(%v) = %d, want %d", tt.want, got, tt.value)
			}

			appended := AppendUint48(nil, tt.value)
			if !bytes.Equal(appended, tt.want) {
				t.Errorf("AppendUint48(%d) = %v, want %v", tt.value, appended, tt.want)
			}
		})
	}
}

func TestUint48TruncatesHighBits(t *testing.T) {
	buf := make([]byte, 6)
	EncodeUint48(buf, 0xFFFF_123456789ABC)
	want := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC}
	if !bytes.Equal(buf, want) {
		t.Errorf("EncodeUint48 high bits not truncated: got %v, want %v", buf, want)
	}
}

func TestUint64(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		want  []byte
	}{
		{"zero", 0, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{"one", 1, []byte{0, 0, 0, 0, 0, 0, 0, 1}},
		{"max", math.MaxUint64, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{"0x0123456789ABCDEF", 0x0123456789ABCDEF, []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 8)
			EncodeUint64(buf, tt.value)
			if !bytes.Equal(buf, tt.want) {
				t.Errorf("EncodeUint64(%d) = %v, want %v", tt.value, buf, tt.want)
			}

			got := DecodeUint64(tt.want)
			if got != tt.value {
				t.Errorf("DecodeUint64(%v) = %d, want %d", tt.want, got, tt.value)
			}

			appended := AppendUint64(nil, tt.value)
			if !bytes.Equal(appended, tt.want) {
				t.Errorf("AppendUint64(%d) = %v, want %v", tt.value, appended, tt.want)
			}
		})
	}
}

func TestInt64Negative(t *testing.T) {
	buf := make([]byte, 8)
	EncodeInt64(buf, -1)
	want := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	if !bytes.Equal(buf, want) {
		t.Errorf("EncodeInt64(-1) = %v, want %v", buf, want)
	}
	if got := DecodeInt64(want); got != -1 {
		t.Errorf("DecodeInt64 = %d, want -1", got)
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 3.141592653589793, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(1), math.Inf(-1)}
	for _, v := range values {
		buf := make([]byte, 8)
		EncodeFloat64(buf, v)
		if got := DecodeFloat64(buf); got != v {
			t.Errorf("Float64 round trip: got %v, want %v", got, v)
		}
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	values := []float32{0, 1, -1, 3.14159, math.MaxFloat32}
	for _, v := range values {
		buf := make([]byte, 4)
		EncodeFloat32(buf, v)
		if got := DecodeFloat32(buf); got != v {
			t.Errorf("Float32 round trip: got %v, want %v", got, v)
		}
	}
}

func TestDecodeLittleUint32(t *testing.T) {
	// Digest prefix reads are little-endian.
	src := []byte{0x78, 0x56, 0x34, 0x12}
	if got := DecodeLittleUint32(src); got != 0x12345678 {
		t.Errorf("DecodeLittleUint32 = 0x%08x, want 0x12345678", got)
	}
}
