package aswire

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

// -----------------------------------------------------------------------------
// Scalar decode tests
// -----------------------------------------------------------------------------

func TestUnpackScalars(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want any
	}{
		{"nil", []byte{0xc0}, nil},
		{"true", []byte{0xc3}, true},
		{"false", []byte{0xc2}, false},
		{"fixint", []byte{0x05}, int64(5)},
		{"fixint max", []byte{0x7f}, int64(127)},
		{"negative fixint", []byte{0xe0}, int64(-32)},
		{"uint8", []byte{0xcc, 0x80}, int64(128)},
		{"uint16", []byte{0xcd, 0x01, 0x00}, int64(256)},
		{"uint32", []byte{0xce, 0x00, 0x01, 0x00, 0x00}, int64(65536)},
		{"int8", []byte{0xd0, 0x80}, int64(-128)},
		{"int16", []byte{0xd1, 0x80, 0x00}, int64(-32768)},
		{"int32", []byte{0xd2, 0x80, 0x00, 0x00, 0x00}, int64(-2147483648)},
		{"int64", []byte{0xd3, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, int64(math.MinInt64)},
		{"float32", []byte{0xca, 0x3f, 0xc0, 0x00, 0x00}, float32(1.5)},
		{"float64", []byte{0xcb, 0x3f, 0xf8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, float64(1.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewUnpacker(nil, tt.data).UnpackObject()
			if err != nil {
				t.Fatalf("UnpackObject(% x) error: %v", tt.data, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("UnpackObject(% x) = %v (%T), want %v (%T)", tt.data, got, got, tt.want, tt.want)
			}
		})
	}
}

// Unsigned 64-bit payloads above the signed range decode to the same bit
// pattern as a negative int64.
func TestUnpackUint64BitPattern(t *testing.T) {
	data := []byte{0xcf, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	got, err := NewUnpacker(nil, data).UnpackObject()
	if err != nil {
		t.Fatalf("UnpackObject error: %v", err)
	}
	if got != int64(-1) {
		t.Errorf("max uint64 decoded to %v, want int64(-1)", got)
	}
}

// -----------------------------------------------------------------------------
// Raw payload dispatch tests
// -----------------------------------------------------------------------------

func TestUnpackBlobDispatch(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want any
	}{
		{"string particle", []byte{0xa2, 0x03, 'k'}, "k"},
		{"empty raw", []byte{0xa0}, []byte{}},
		{"blob particle", []byte{0xa3, 0x04, 0x01, 0x02}, []byte{0x01, 0x02}},
		{"hll particle", []byte{0xa2, 0x12, 0xff}, HLLValue{0xff}},
		{"geojson particle", []byte{0xa6, 0x17, 0x00, 0x00, 0x00, '{', '}'}, GeoJSONValue("{}")},
		{"unknown tag", []byte{0xa2, 0x63, 0xaa}, []byte{0xaa}},
		{"bin family", []byte{0xc4, 0x02, 0x01, 0x02}, []byte{0x01, 0x02}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewUnpacker(nil, tt.data).UnpackObject()
			if err != nil {
				t.Fatalf("UnpackObject(% x) error: %v", tt.data, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("UnpackObject(% x) = %#v, want %#v", tt.data, got, tt.want)
			}
		})
	}
}

func TestUnpackTruncatedGeoJSON(t *testing.T) {
	data := []byte{0xa3, 0x17, 0x00, 0x00} // only 2 header bytes after the tag
	if _, err := NewUnpacker(nil, data).UnpackObject(); err == nil {
		t.Fatal("expected error for truncated GeoJSON particle")
	}
}

func TestUnpackSerializedBlobWithoutDeserializer(t *testing.T) {
	data := []byte{0xa2, 0x07, 0x00} // C#-serialized particle
	_, err := NewUnpacker(nil, data).UnpackObject()
	if !errors.Is(err, ErrDeserializerDisabled) {
		t.Fatalf("error = %v, want ErrDeserializerDisabled", err)
	}
}

// -----------------------------------------------------------------------------
// Collection decode tests
// -----------------------------------------------------------------------------

func TestUnpackList(t *testing.T) {
	data := []byte{0x93, 0x01, 0xa2, 0x03, 'a', 0xc0}
	got, err := NewUnpacker(nil, data).UnpackList()
	if err != nil {
		t.Fatalf("UnpackList error: %v", err)
	}
	want := []any{int64(1), "a", nil}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UnpackList = %#v, want %#v", got, want)
	}
}

func TestUnpackListTypeMismatch(t *testing.T) {
	if _, err := NewUnpacker(nil, []byte{0x05}).UnpackList(); err == nil {
		t.Fatal("expected error decoding an integer as a list")
	}
}

func TestUnpackPlainMap(t *testing.T) {
	data := []byte{0x81, 0x01, 0x02}
	got, err := NewUnpacker(nil, data).UnpackMap()
	if err != nil {
		t.Fatalf("UnpackMap error: %v", err)
	}
	want := map[any]any{int64(1): int64(2)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UnpackMap = %#v, want %#v", got, want)
	}
}

// A map whose first key is an extension marker with the key-ordered flag
// decodes to an OrderedMap; the marker pair itself is dropped.
func TestUnpackKeyOrderedMap(t *testing.T) {
	data := []byte{
		0x82, // 2 pairs, including the marker pair
		0xd4, 0xff, 0x01, 0xc0, // fixext1 marker with flag 0x01, nil companion
		0xa2, 0x03, 'a', 0x05, // "a": 5
	}
	got, err := NewUnpacker(nil, data).UnpackMap()
	if err != nil {
		t.Fatalf("UnpackMap error: %v", err)
	}
	om, ok := got.(*OrderedMap)
	if !ok {
		t.Fatalf("decoded %T, want *OrderedMap", got)
	}
	want := []MapPair{{Key: "a", Value: int64(5)}}
	if !reflect.DeepEqual(om.Pairs, want) {
		t.Errorf("pairs = %#v, want %#v", om.Pairs, want)
	}
}

// The key-and-value-ordered flag decodes to a flat pair list, preserving
// result order for index/rank-range responses.
func TestUnpackKeyValueOrderedMap(t *testing.T) {
	data := []byte{
		0x83,
		0xd4, 0xff, 0x03, 0xc0,
		0x01, 0xa2, 0x03, 'x',
		0x02, 0xa2, 0x03, 'y',
	}
	got, err := NewUnpacker(nil, data).UnpackMap()
	if err != nil {
		t.Fatalf("UnpackMap error: %v", err)
	}
	pairs, ok := got.([]MapPair)
	if !ok {
		t.Fatalf("decoded %T, want []MapPair", got)
	}
	want := []MapPair{
		{Key: int64(1), Value: "x"},
		{Key: int64(2), Value: "y"},
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("pairs = %#v, want %#v", pairs, want)
	}
}

// Byte-array keys are not hashable; they normalize to strings in the
// native map form.
func TestUnpackMapNormalizesByteKeys(t *testing.T) {
	data := []byte{0x81, 0xa2, 0x04, 'b', 0x05} // blob particle key
	got, err := NewUnpacker(nil, data).UnpackMap()
	if err != nil {
		t.Fatalf("UnpackMap error: %v", err)
	}
	want := map[any]any{"b": int64(5)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UnpackMap = %#v, want %#v", got, want)
	}
}

// -----------------------------------------------------------------------------
// Error path tests
// -----------------------------------------------------------------------------

func TestUnpackErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty buffer", nil},
		{"unknown header", []byte{0xc1}},
		{"truncated uint16", []byte{0xcd, 0x01}},
		{"truncated raw", []byte{0xa5, 0x03, 'a'}},
		{"truncated array element", []byte{0x92, 0x01}},
		{"truncated map value", []byte{0x81, 0x01}},
		{"truncated ext", []byte{0xd4, 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUnpacker(nil, tt.data).UnpackObject()
			if err == nil {
				t.Fatalf("UnpackObject(% x) succeeded, want error", tt.data)
			}
			var e *Error
			if !errors.As(err, &e) || e.ResultCode != ResultParseError {
				t.Errorf("error = %v, want parse error", err)
			}
		})
	}
}

// A header may declare far more elements than the buffer behind it could
// possibly hold. Decoding must fail on the first missing element without
// sizing a collection for the declared count.
func TestUnpackHugeDeclaredCount(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"array32", []byte{0xdd, 0xff, 0xff, 0xff, 0xff, 0x01}},
		{"map32", []byte{0xdf, 0xff, 0xff, 0xff, 0xff, 0xa2, 0x03, 'a', 0x01}},
		{"ordered map16", []byte{0xde, 0xff, 0xff, 0xd4, 0xff, 0x01, 0xc0, 0xa2, 0x03, 'a', 0x05}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUnpacker(nil, tt.data).UnpackObject()
			if err == nil {
				t.Fatalf("UnpackObject(% x) succeeded, want error", tt.data)
			}
			var e *Error
			if !errors.As(err, &e) || e.ResultCode != ResultParseError {
				t.Errorf("error = %v, want parse error", err)
			}
		})
	}
}

func TestUnpackerOffset(t *testing.T) {
	u := NewUnpacker(nil, []byte{0x05, 0xa2, 0x03, 'k'})
	if _, err := u.UnpackObject(); err != nil {
		t.Fatal(err)
	}
	if u.Offset() != 1 {
		t.Errorf("offset after first object = %d, want 1", u.Offset())
	}
	if _, err := u.UnpackObject(); err != nil {
		t.Fatal(err)
	}
	if u.Offset() != 4 {
		t.Errorf("offset after second object = %d, want 4", u.Offset())
	}
}

// -----------------------------------------------------------------------------
// Round trip tests
// -----------------------------------------------------------------------------

func TestPackUnpackRoundtrip(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"nil", nil},
		{"bool", true},
		{"int", int64(42)},
		{"negative int", int64(-42)},
		{"float", float64(3.25)},
		{"string", "hello"},
		{"nested list", []any{int64(1), "a", []any{int64(2)}}},
	}

	cfg := &Config{UseBoolBin: true}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPacker(cfg)
			if err := p.PackObject(tt.value); err != nil {
				t.Fatalf("PackObject error: %v", err)
			}
			got, err := NewUnpacker(cfg, p.Bytes()).UnpackObject()
			if err != nil {
				t.Fatalf("UnpackObject error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.value) {
				t.Errorf("roundtrip = %#v, want %#v", got, tt.value)
			}
		})
	}
}
