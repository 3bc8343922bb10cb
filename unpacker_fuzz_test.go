package aswire

import (
	"math"
	"testing"
)

// FuzzUnpackObject tests that arbitrary input never panics the decoder:
// every byte sequence either decodes or returns a parse error.
func FuzzUnpackObject(f *testing.F) {
	// Seed with one representative of each header family
	f.Add([]byte{0xc0})
	f.Add([]byte{0x05})
	f.Add([]byte{0xe0})
	f.Add([]byte{0xcc, 0x80})
	f.Add([]byte{0xd3, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
	f.Add([]byte{0xa2, 0x03, 'k'})
	f.Add([]byte{0x93, 0x01, 0x02, 0x03})
	f.Add([]byte{0x82, 0xd4, 0xff, 0x01, 0xc0, 0xa2, 0x03, 'a', 0x05})
	f.Add([]byte{0xc4, 0x02, 0x01, 0x02})
	f.Add([]byte{0xd4, 0xff, 0x01})
	f.Add([]byte{0xc1})
	f.Add([]byte{0xdd, 0xff, 0xff, 0xff, 0xff, 0x01})

	f.Fuzz(func(t *testing.T, data []byte) {
		u := NewUnpacker(nil, data)
		if _, err := u.UnpackObject(); err != nil {
			return
		}
		if u.Offset() > len(data) {
			t.Fatalf("offset %d past end of %d-byte buffer", u.Offset(), len(data))
		}
	})
}

// FuzzPackInt64Roundtrip tests that any integer survives the
// smallest-fitting encoding and back.
func FuzzPackInt64Roundtrip(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(127))
	f.Add(int64(128))
	f.Add(int64(256))
	f.Add(int64(65536))
	f.Add(int64(1) << 32)
	f.Add(int64(math.MaxInt64))
	f.Add(int64(-1))
	f.Add(int64(-32))
	f.Add(int64(-33))
	f.Add(int64(-129))
	f.Add(int64(-32769))
	f.Add(int64(math.MinInt64))

	f.Fuzz(func(t *testing.T, value int64) {
		p := NewPacker(nil)
		p.PackInt64(value)
		got, err := NewUnpacker(nil, p.Bytes()).UnpackObject()
		if err != nil {
			t.Fatalf("UnpackObject error: %v", err)
		}
		if got != value {
			t.Fatalf("roundtrip failed: packed %d, decoded %v", value, got)
		}
	})
}
