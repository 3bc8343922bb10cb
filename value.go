// value.go implements the polymorphic value hierarchy.
//
// A Value knows three things: its particle type tag, its flat bin-particle
// encoding (EstimateSize/Write, used when a value is the entire content of a
// bin), and its MessagePack operand encoding (Pack, used when a value appears
// inside a CDT command array). The two encodings are deliberately distinct
// code paths and must never be conflated: bin particles are flat and
// self-describing through the particle type in the enclosing message, while
// operands carry their particle tag inline so they can nest inside arrays
// and maps.
//
// EstimateSize must return exactly the number of bytes Write will emit; the
// pair is used to pre-size record buffers and a mismatch corrupts the whole
// message. That contract is a programmer error, not a recoverable condition.
//
// Values are immutable after construction and may be shared freely across
// goroutines. The one exception is composite List/Map values: they wrap the
// caller's collection without copying, so the caller must not mutate it
// concurrently with (or after) packing.
//
// Reference: Aerospike CDT MessagePack operand format, as_val serialization.
package aswire

import (
	"fmt"
	"math"
	"reflect"

	"github.com/aswire/aswire/internal/bytesutil"
)

// Value is the wire representation of a single typed datum.
type Value interface {
	// ParticleType returns the stable wire tag for this value.
	ParticleType(cfg *Config) ParticleType

	// EstimateSize returns the exact number of bytes Write will emit.
	EstimateSize(cfg *Config) (int, error)

	// Write emits the flat bin-particle encoding into buf at offset and
	// returns the number of bytes written.
	// REQUIRES: buf has at least EstimateSize() bytes available at offset.
	Write(cfg *Config, buf []byte, offset int) (int, error)

	// Pack emits the MessagePack operand encoding.
	Pack(p *Packer) error

	// GetObject returns the underlying native value.
	GetObject() any

	fmt.Stringer
}

// NewValue wraps a native Go value. Unsupported host types fall back to an
// opaque blob variant; the fallback is not validated until it is packed (or
// rejected earlier by ValidateKeyType).
func NewValue(v any) Value {
	switch val := v.(type) {
	case nil:
		return NullValue{}
	case Value:
		return val
	case bool:
		return BoolValue(val)
	case int:
		return LongValue(val)
	case int8:
		return LongValue(val)
	case int16:
		return LongValue(val)
	case int32:
		return LongValue(val)
	case int64:
		return LongValue(val)
	case uint:
		if uint64(val) <= math.MaxInt64 {
			return LongValue(val)
		}
		return UnsignedLongValue(val)
	case uint8:
		return LongValue(val)
	case uint16:
		return LongValue(val)
	case uint32:
		return LongValue(val)
	case uint64:
		if val <= math.MaxInt64 {
			return LongValue(val)
		}
		return UnsignedLongValue(val)
	case float32:
		return FloatValue(val)
	case float64:
		return DoubleValue(val)
	case string:
		return StringValue(val)
	case []byte:
		return BytesValue(val)
	case []Value:
		return ValueArray(val)
	case []any:
		return ListValue(val)
	case map[any]any:
		return MapValue(val)
	case map[string]any:
		m := make(map[any]any, len(val))
		for k, item := range val {
			m[k] = item
		}
		return MapValue(m)
	default:
		return BlobValue{Object: v}
	}
}

// ValidateKeyType returns a parameter error unless v is one of the variants
// legal as a record key: integers, strings and raw byte arrays. Floats,
// booleans, collections, GeoJSON, opaque blobs, null and the range sentinels
// are rejected.
func ValidateKeyType(v Value) error {
	switch v.(type) {
	case LongValue, UnsignedLongValue, StringValue, BytesValue:
		return nil
	default:
		return newErrorf(ResultParameterError, "invalid key type: %T", v)
	}
}

// ValueEquals reports whether two values are equal under the codec's
// equality: by underlying native value for data-carrying variants, by type
// identity for null and the range sentinels. Integer widths are compared
// post-widening, so a 32-bit integer equals its 64-bit round-trip result.
func ValueEquals(a, b Value) bool {
	switch a.(type) {
	case NullValue:
		_, ok := b.(NullValue)
		return ok
	case InfinityValue:
		_, ok := b.(InfinityValue)
		return ok
	case WildCardValue:
		_, ok := b.(WildCardValue)
		return ok
	}
	return reflect.DeepEqual(a.GetObject(), b.GetObject())
}

// -----------------------------------------------------------------------------
// Null
// -----------------------------------------------------------------------------

// NullValue is an absent value.
type NullValue struct{}

// ParticleType implements Value.
func (v NullValue) ParticleType(cfg *Config) ParticleType { return ParticleTypeNull }

// EstimateSize implements Value.
func (v NullValue) EstimateSize(cfg *Config) (int, error) { return 0, nil }

// Write implements Value.
func (v NullValue) Write(cfg *Config, buf []byte, offset int) (int, error) { return 0, nil }

// Pack implements Value.
func (v NullValue) Pack(p *Packer) error {
	p.PackNil()
	return nil
}

// GetObject implements Value.
func (v NullValue) GetObject() any { return nil }

func (v NullValue) String() string { return "NULL" }

// -----------------------------------------------------------------------------
// Boolean
// -----------------------------------------------------------------------------

// BoolValue is a boolean. Wire form depends on Config.UseBoolBin: the native
// BOOL particle, or an integer 0/1 for servers predating boolean bins.
type BoolValue bool

// ParticleType implements Value.
func (v BoolValue) ParticleType(cfg *Config) ParticleType {
	if cfg.useBoolBin() {
		return ParticleTypeBool
	}
	return ParticleTypeInteger
}

// EstimateSize implements Value.
func (v BoolValue) EstimateSize(cfg *Config) (int, error) {
	if cfg.useBoolBin() {
		return 1, nil
	}
	return 8, nil
}

// Write implements Value.
func (v BoolValue) Write(cfg *Config, buf []byte, offset int) (int, error) {
	var n int64
	if v {
		n = 1
	}
	if cfg.useBoolBin() {
		buf[offset] = byte(n)
		return 1, nil
	}
	bytesutil.EncodeInt64(buf[offset:], n)
	return 8, nil
}

// Pack implements Value.
func (v BoolValue) Pack(p *Packer) error {
	if p.cfg.useBoolBin() {
		p.PackBool(bool(v))
		return nil
	}
	if v {
		p.PackInt64(1)
	} else {
		p.PackInt64(0)
	}
	return nil
}

// GetObject implements Value.
func (v BoolValue) GetObject() any { return bool(v) }

func (v BoolValue) String() string { return fmt.Sprintf("%t", bool(v)) }

// -----------------------------------------------------------------------------
// Integers
// -----------------------------------------------------------------------------

// LongValue is a signed 64-bit integer. All narrower host integer widths
// widen into this variant.
type LongValue int64

// ParticleType implements Value.
func (v LongValue) ParticleType(cfg *Config) ParticleType { return ParticleTypeInteger }

// EstimateSize implements Value.
func (v LongValue) EstimateSize(cfg *Config) (int, error) { return 8, nil }

// Write implements Value.
func (v LongValue) Write(cfg *Config, buf []byte, offset int) (int, error) {
	bytesutil.EncodeInt64(buf[offset:], int64(v))
	return 8, nil
}

// Pack implements Value.
func (v LongValue) Pack(p *Packer) error {
	p.PackInt64(int64(v))
	return nil
}

// GetObject implements Value.
func (v LongValue) GetObject() any { return int64(v) }

func (v LongValue) String() string { return fmt.Sprintf("%d", int64(v)) }

// UnsignedLongValue is an unsigned 64-bit integer. Values that exceed the
// signed range cost one extra prefix byte on the wire: 9 bytes instead of 8.
type UnsignedLongValue uint64

// ParticleType implements Value.
func (v UnsignedLongValue) ParticleType(cfg *Config) ParticleType { return ParticleTypeInteger }

// EstimateSize implements Value.
func (v UnsignedLongValue) EstimateSize(cfg *Config) (int, error) {
	if uint64(v) > math.MaxInt64 {
		return 9, nil
	}
	return 8, nil
}

// Write implements Value.
func (v UnsignedLongValue) Write(cfg *Config, buf []byte, offset int) (int, error) {
	if uint64(v) > math.MaxInt64 {
		buf[offset] = 0
		bytesutil.EncodeUint64(buf[offset+1:], uint64(v))
		return 9, nil
	}
	bytesutil.EncodeUint64(buf[offset:], uint64(v))
	return 8, nil
}

// Pack implements Value.
func (v UnsignedLongValue) Pack(p *Packer) error {
	p.PackUInt64(uint64(v))
	return nil
}

// GetObject implements Value.
func (v UnsignedLongValue) GetObject() any { return uint64(v) }

func (v UnsignedLongValue) String() string { return fmt.Sprintf("%d", uint64(v)) }

// -----------------------------------------------------------------------------
// Floating point
// -----------------------------------------------------------------------------

// FloatValue is a 32-bit IEEE 754 floating point number.
type FloatValue float32

// ParticleType implements Value.
func (v FloatValue) ParticleType(cfg *Config) ParticleType { return ParticleTypeDouble }

// EstimateSize implements Value.
func (v FloatValue) EstimateSize(cfg *Config) (int, error) { return 4, nil }

// Write implements Value.
func (v FloatValue) Write(cfg *Config, buf []byte, offset int) (int, error) {
	bytesutil.EncodeFloat32(buf[offset:], float32(v))
	return 4, nil
}

// Pack implements Value.
func (v FloatValue) Pack(p *Packer) error {
	p.PackFloat32(float32(v))
	return nil
}

// GetObject implements Value.
func (v FloatValue) GetObject() any { return float32(v) }

func (v FloatValue) String() string { return fmt.Sprintf("%v", float32(v)) }

// DoubleValue is a 64-bit IEEE 754 floating point number.
type DoubleValue float64

// ParticleType implements Value.
func (v DoubleValue) ParticleType(cfg *Config) ParticleType { return ParticleTypeDouble }

// EstimateSize implements Value.
func (v DoubleValue) EstimateSize(cfg *Config) (int, error) { return 8, nil }

// Write implements Value.
func (v DoubleValue) Write(cfg *Config, buf []byte, offset int) (int, error) {
	bytesutil.EncodeFloat64(buf[offset:], float64(v))
	return 8, nil
}

// Pack implements Value.
func (v DoubleValue) Pack(p *Packer) error {
	p.PackFloat64(float64(v))
	return nil
}

// GetObject implements Value.
func (v DoubleValue) GetObject() any { return float64(v) }

func (v DoubleValue) String() string { return fmt.Sprintf("%v", float64(v)) }

// -----------------------------------------------------------------------------
// String and bytes
// -----------------------------------------------------------------------------

// StringValue is a UTF-8 string.
type StringValue string

// ParticleType implements Value.
func (v StringValue) ParticleType(cfg *Config) ParticleType { return ParticleTypeString }

// EstimateSize implements Value.
func (v StringValue) EstimateSize(cfg *Config) (int, error) { return len(v), nil }

// Write implements Value.
func (v StringValue) Write(cfg *Config, buf []byte, offset int) (int, error) {
	return copy(buf[offset:], v), nil
}

// Pack implements Value.
func (v StringValue) Pack(p *Packer) error {
	p.PackParticleString(string(v))
	return nil
}

// GetObject implements Value.
func (v StringValue) GetObject() any { return string(v) }

func (v StringValue) String() string { return string(v) }

// BytesValue is a raw byte array.
type BytesValue []byte

// ParticleType implements Value.
func (v BytesValue) ParticleType(cfg *Config) ParticleType { return ParticleTypeBlob }

// EstimateSize implements Value.
func (v BytesValue) EstimateSize(cfg *Config) (int, error) { return len(v), nil }

// Write implements Value.
func (v BytesValue) Write(cfg *Config, buf []byte, offset int) (int, error) {
	return copy(buf[offset:], v), nil
}

// Pack implements Value.
func (v BytesValue) Pack(p *Packer) error {
	p.PackParticleBytes(v)
	return nil
}

// GetObject implements Value.
func (v BytesValue) GetObject() any { return []byte(v) }

func (v BytesValue) String() string { return fmt.Sprintf("%x", []byte(v)) }

// -----------------------------------------------------------------------------
// GeoJSON and HLL
// -----------------------------------------------------------------------------

// GeoJSONValue is a GeoJSON document. Its particle carries a 3-byte header
// (one flags byte, a 16-bit cell count, both zero on the client side) ahead
// of the raw JSON text.
type GeoJSONValue string

const geoJSONHeaderSize = 3

// NewGeoJSONValue wraps a GeoJSON document string.
func NewGeoJSONValue(doc string) GeoJSONValue { return GeoJSONValue(doc) }

// ParticleType implements Value.
func (v GeoJSONValue) ParticleType(cfg *Config) ParticleType { return ParticleTypeGeoJSON }

// EstimateSize implements Value.
func (v GeoJSONValue) EstimateSize(cfg *Config) (int, error) {
	return len(v) + geoJSONHeaderSize, nil
}

// Write implements Value.
func (v GeoJSONValue) Write(cfg *Config, buf []byte, offset int) (int, error) {
	buf[offset] = 0 // flags
	bytesutil.EncodeUint16(buf[offset+1:], 0)
	n := copy(buf[offset+geoJSONHeaderSize:], v)
	return n + geoJSONHeaderSize, nil
}

// Pack implements Value.
func (v GeoJSONValue) Pack(p *Packer) error {
	p.PackParticleGeoJSON(string(v))
	return nil
}

// GetObject implements Value.
func (v GeoJSONValue) GetObject() any { return string(v) }

func (v GeoJSONValue) String() string { return string(v) }

// HLLValue is a HyperLogLog register blob, produced by the server's HLL
// operations and treated as opaque bytes on the client.
type HLLValue []byte

// ParticleType implements Value.
func (v HLLValue) ParticleType(cfg *Config) ParticleType { return ParticleTypeHLL }

// EstimateSize implements Value.
func (v HLLValue) EstimateSize(cfg *Config) (int, error) { return len(v), nil }

// Write implements Value.
func (v HLLValue) Write(cfg *Config, buf []byte, offset int) (int, error) {
	return copy(buf[offset:], v), nil
}

// Pack implements Value.
func (v HLLValue) Pack(p *Packer) error {
	p.PackParticleBlob(ParticleTypeHLL, v)
	return nil
}

// GetObject implements Value.
func (v HLLValue) GetObject() any { return []byte(v) }

func (v HLLValue) String() string { return fmt.Sprintf("HLL(%d bytes)", len(v)) }

// -----------------------------------------------------------------------------
// Opaque blob
// -----------------------------------------------------------------------------

// BlobValue is an opaque host object handled by the injected BlobSerializer.
// Without a serializer in the configuration, every encoding path fails with
// ErrSerializerDisabled.
type BlobValue struct {
	Object any
}

// ParticleType implements Value.
func (v BlobValue) ParticleType(cfg *Config) ParticleType { return ParticleTypeCSharpBlob }

func (v BlobValue) serialize(cfg *Config) ([]byte, error) {
	s := cfg.serializer()
	if s == nil {
		return nil, wrapError(ResultSerializeError, ErrSerializerDisabled,
			fmt.Sprintf("cannot pack object of type %T", v.Object))
	}
	data, err := s.Serialize(v.Object)
	if err != nil {
		return nil, wrapError(ResultSerializeError, err,
			fmt.Sprintf("serializing object of type %T", v.Object))
	}
	return data, nil
}

// EstimateSize implements Value.
func (v BlobValue) EstimateSize(cfg *Config) (int, error) {
	data, err := v.serialize(cfg)
	if err != nil {
		return 0, err
	}
	return len(data), nil
}

// Write implements Value.
func (v BlobValue) Write(cfg *Config, buf []byte, offset int) (int, error) {
	data, err := v.serialize(cfg)
	if err != nil {
		return 0, err
	}
	return copy(buf[offset:], data), nil
}

// Pack implements Value.
func (v BlobValue) Pack(p *Packer) error {
	data, err := v.serialize(p.cfg)
	if err != nil {
		return err
	}
	p.PackParticleBlob(ParticleTypeCSharpBlob, data)
	return nil
}

// GetObject implements Value.
func (v BlobValue) GetObject() any { return v.Object }

func (v BlobValue) String() string { return fmt.Sprintf("BLOB(%T)", v.Object) }

// -----------------------------------------------------------------------------
// Collections
// -----------------------------------------------------------------------------

// packedForm runs a value's Pack path into a fresh packer. Collections have
// no flat form: their bin particle is their MessagePack encoding.
func packedForm(cfg *Config, v Value) ([]byte, error) {
	p := NewPacker(cfg)
	if err := v.Pack(p); err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}

// ValueArray is an ordered array of Values.
type ValueArray []Value

// ParticleType implements Value.
func (v ValueArray) ParticleType(cfg *Config) ParticleType { return ParticleTypeList }

// EstimateSize implements Value.
func (v ValueArray) EstimateSize(cfg *Config) (int, error) {
	data, err := packedForm(cfg, v)
	if err != nil {
		return 0, err
	}
	return len(data), nil
}

// Write implements Value.
func (v ValueArray) Write(cfg *Config, buf []byte, offset int) (int, error) {
	data, err := packedForm(cfg, v)
	if err != nil {
		return 0, err
	}
	return copy(buf[offset:], data), nil
}

// Pack implements Value.
func (v ValueArray) Pack(p *Packer) error {
	p.PackArrayBegin(len(v))
	for _, item := range v {
		if err := item.Pack(p); err != nil {
			return err
		}
	}
	return nil
}

// GetObject implements Value.
func (v ValueArray) GetObject() any { return []Value(v) }

func (v ValueArray) String() string { return fmt.Sprintf("%v", []Value(v)) }

// ListValue is an ordered list of native values. It wraps the caller's slice
// without copying; ownership stays with the caller.
type ListValue []any

// ParticleType implements Value.
func (v ListValue) ParticleType(cfg *Config) ParticleType { return ParticleTypeList }

// EstimateSize implements Value.
func (v ListValue) EstimateSize(cfg *Config) (int, error) {
	data, err := packedForm(cfg, v)
	if err != nil {
		return 0, err
	}
	return len(data), nil
}

// Write implements Value.
func (v ListValue) Write(cfg *Config, buf []byte, offset int) (int, error) {
	data, err := packedForm(cfg, v)
	if err != nil {
		return 0, err
	}
	return copy(buf[offset:], data), nil
}

// Pack implements Value.
func (v ListValue) Pack(p *Packer) error {
	p.PackArrayBegin(len(v))
	for _, item := range v {
		if err := p.PackObject(item); err != nil {
			return err
		}
	}
	return nil
}

// GetObject implements Value.
func (v ListValue) GetObject() any { return []any(v) }

func (v ListValue) String() string { return fmt.Sprintf("%v", []any(v)) }

// MapValue is an unordered map of native values. It wraps the caller's map
// without copying; ownership stays with the caller.
//
// Host map iteration order is not stable, so the packed form of a MapValue
// with more than one entry is not byte-deterministic. Ordered wire maps come
// from the server only (see OrderedMap).
type MapValue map[any]any

// ParticleType implements Value.
func (v MapValue) ParticleType(cfg *Config) ParticleType { return ParticleTypeMap }

// EstimateSize implements Value.
func (v MapValue) EstimateSize(cfg *Config) (int, error) {
	data, err := packedForm(cfg, v)
	if err != nil {
		return 0, err
	}
	return len(data), nil
}

// Write implements Value.
func (v MapValue) Write(cfg *Config, buf []byte, offset int) (int, error) {
	data, err := packedForm(cfg, v)
	if err != nil {
		return 0, err
	}
	return copy(buf[offset:], data), nil
}

// Pack implements Value.
func (v MapValue) Pack(p *Packer) error {
	p.PackMapBegin(len(v))
	for key, val := range v {
		if err := p.PackObject(key); err != nil {
			return err
		}
		if err := p.PackObject(val); err != nil {
			return err
		}
	}
	return nil
}

// GetObject implements Value.
func (v MapValue) GetObject() any { return map[any]any(v) }

func (v MapValue) String() string { return fmt.Sprintf("%v", map[any]any(v)) }

// MapPair is a single key/value entry of an ordered map result.
type MapPair struct {
	Key   any
	Value any
}

// OrderedMap is a map whose entry order is semantically significant. The
// unpacker produces it for server maps flagged as key-ordered; it packs back
// as a map in pair order.
type OrderedMap struct {
	Pairs []MapPair
}

// ParticleType implements Value.
func (v *OrderedMap) ParticleType(cfg *Config) ParticleType { return ParticleTypeMap }

// EstimateSize implements Value.
func (v *OrderedMap) EstimateSize(cfg *Config) (int, error) {
	data, err := packedForm(cfg, v)
	if err != nil {
		return 0, err
	}
	return len(data), nil
}

// Write implements Value.
func (v *OrderedMap) Write(cfg *Config, buf []byte, offset int) (int, error) {
	data, err := packedForm(cfg, v)
	if err != nil {
		return 0, err
	}
	return copy(buf[offset:], data), nil
}

// Pack implements Value.
func (v *OrderedMap) Pack(p *Packer) error {
	p.PackMapBegin(len(v.Pairs))
	for _, pair := range v.Pairs {
		if err := p.PackObject(pair.Key); err != nil {
			return err
		}
		if err := p.PackObject(pair.Value); err != nil {
			return err
		}
	}
	return nil
}

// GetObject implements Value.
func (v *OrderedMap) GetObject() any { return v.Pairs }

func (v *OrderedMap) String() string { return fmt.Sprintf("%v", v.Pairs) }

// -----------------------------------------------------------------------------
// Range sentinels
// -----------------------------------------------------------------------------

// InfinityValue is the write-only upper/lower range sentinel. It is valid
// only inside range comparisons and cannot be stored in a bin.
type InfinityValue struct{}

// ParticleType implements Value.
func (v InfinityValue) ParticleType(cfg *Config) ParticleType { return ParticleTypeNull }

// EstimateSize implements Value.
func (v InfinityValue) EstimateSize(cfg *Config) (int, error) {
	return 0, newError(ResultParameterError, "infinity is not a valid bin value")
}

// Write implements Value.
func (v InfinityValue) Write(cfg *Config, buf []byte, offset int) (int, error) {
	return 0, newError(ResultParameterError, "infinity is not a valid bin value")
}

// Pack implements Value.
func (v InfinityValue) Pack(p *Packer) error {
	p.PackInfinity()
	return nil
}

// GetObject implements Value.
func (v InfinityValue) GetObject() any { return v }

func (v InfinityValue) String() string { return "INF" }

// WildCardValue is the write-only wildcard sentinel. It is valid only inside
// range comparisons and cannot be stored in a bin.
type WildCardValue struct{}

// ParticleType implements Value.
func (v WildCardValue) ParticleType(cfg *Config) ParticleType { return ParticleTypeNull }

// EstimateSize implements Value.
func (v WildCardValue) EstimateSize(cfg *Config) (int, error) {
	return 0, newError(ResultParameterError, "wildcard is not a valid bin value")
}

// Write implements Value.
func (v WildCardValue) Write(cfg *Config, buf []byte, offset int) (int, error) {
	return 0, newError(ResultParameterError, "wildcard is not a valid bin value")
}

// Pack implements Value.
func (v WildCardValue) Pack(p *Packer) error {
	p.PackWildCard()
	return nil
}

// GetObject implements Value.
func (v WildCardValue) GetObject() any { return v }

func (v WildCardValue) String() string { return "*" }
