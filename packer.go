// packer.go implements the MessagePack-derived operand encoder.
//
// The format is MessagePack with Aerospike conventions layered on top:
//
//   - Strings, blobs, GeoJSON and serialized objects are written in the raw
//     (str) family with a leading particle type byte counted inside the
//     payload length, so nested operands stay self-describing. The generic
//     PackString/PackBytes entry points omit that byte; the PackParticle*
//     entry points include it. The two sets are not interchangeable.
//   - Integers use the smallest encoding that round-trips the exact value
//     and sign. Unsigned values above the signed 64-bit range use the
//     9-byte uint64 form.
//   - The range sentinels infinity and wildcard are fixext1 markers with
//     extension type 0xff and data 0x01 / 0x00.
//
// A Packer owns a growing buffer and is not safe for concurrent use;
// allocate one per encode.
//
// Reference: Aerospike CDT MessagePack operand format; msgpack spec
// (https://github.com/msgpack/msgpack/blob/master/spec.md).
package aswire

import (
	"math"

	"github.com/aswire/aswire/internal/bytesutil"
)

// MessagePack header bytes used by the packer. The unpacker recognizes the
// full header families, including forms the packer never emits.
const (
	msgpackNil      = 0xc0
	msgpackFalse    = 0xc2
	msgpackTrue     = 0xc3
	msgpackBin8     = 0xc4
	msgpackBin16    = 0xc5
	msgpackBin32    = 0xc6
	msgpackExt8     = 0xc7
	msgpackExt16    = 0xc8
	msgpackExt32    = 0xc9
	msgpackFloat32  = 0xca
	msgpackFloat64  = 0xcb
	msgpackUint8    = 0xcc
	msgpackUint16   = 0xcd
	msgpackUint32   = 0xce
	msgpackUint64   = 0xcf
	msgpackInt8     = 0xd0
	msgpackInt16    = 0xd1
	msgpackInt32    = 0xd2
	msgpackInt64    = 0xd3
	msgpackFixExt1  = 0xd4
	msgpackFixExt2  = 0xd5
	msgpackFixExt4  = 0xd6
	msgpackFixExt8  = 0xd7
	msgpackFixExt16 = 0xd8
	msgpackStr8     = 0xd9
	msgpackStr16    = 0xda
	msgpackStr32    = 0xdb
	msgpackArray16  = 0xdc
	msgpackArray32  = 0xdd
	msgpackMap16    = 0xde
	msgpackMap32    = 0xdf
)

// Extension type 0xff marks the protocol's special scalar sentinels.
const (
	extTypeSentinel = 0xff
	extDataWildCard = 0x00
	extDataInfinity = 0x01
)

// Packer encodes values into the MessagePack-derived operand format.
type Packer struct {
	cfg *Config
	buf []byte
}

// NewPacker creates a packer with the given configuration. A nil cfg is
// valid and behaves like DefaultConfig().
func NewPacker(cfg *Config) *Packer {
	return &Packer{cfg: cfg}
}

// Bytes returns the packed buffer. The slice aliases the packer's internal
// storage and is invalidated by further packing.
func (p *Packer) Bytes() []byte {
	return p.buf
}

// Len returns the number of bytes packed so far.
func (p *Packer) Len() int {
	return len(p.buf)
}

// PackNil packs a nil marker.
func (p *Packer) PackNil() {
	p.buf = append(p.buf, msgpackNil)
}

// PackBool packs a native boolean literal.
func (p *Packer) PackBool(v bool) {
	if v {
		p.buf = append(p.buf, msgpackTrue)
	} else {
		p.buf = append(p.buf, msgpackFalse)
	}
}

// PackInt packs an int using the smallest-fitting encoding.
func (p *Packer) PackInt(v int) {
	p.PackInt64(int64(v))
}

// PackInt64 packs a signed integer using the smallest-fitting encoding.
func (p *Packer) PackInt64(v int64) {
	if v >= 0 {
		switch {
		case v < 128:
			p.buf = append(p.buf, byte(v))
		case v < 256:
			p.buf = append(p.buf, msgpackUint8, byte(v))
		case v < 65536:
			p.buf = append(p.buf, msgpackUint16)
			p.buf = bytesutil.AppendUint16(p.buf, uint16(v))
		case v < (1 << 32):
			p.buf = append(p.buf, msgpackUint32)
			p.buf = bytesutil.AppendUint32(p.buf, uint32(v))
		default:
			p.buf = append(p.buf, msgpackInt64)
			p.buf = bytesutil.AppendUint64(p.buf, uint64(v))
		}
		return
	}
	switch {
	case v >= -32:
		p.buf = append(p.buf, byte(v))
	case v >= -128:
		p.buf = append(p.buf, msgpackInt8, byte(v))
	case v >= -32768:
		p.buf = append(p.buf, msgpackInt16)
		p.buf = bytesutil.AppendUint16(p.buf, uint16(v))
	case v >= -(1 << 31):
		p.buf = append(p.buf, msgpackInt32)
		p.buf = bytesutil.AppendUint32(p.buf, uint32(v))
	default:
		p.buf = append(p.buf, msgpackInt64)
		p.buf = bytesutil.AppendUint64(p.buf, uint64(v))
	}
}

// PackUInt64 packs an unsigned integer. Values within the signed 64-bit
// range use the signed encodings; larger values need the 9-byte uint64 form.
func (p *Packer) PackUInt64(v uint64) {
	if v&(1<<63) != 0 {
		p.buf = append(p.buf, msgpackUint64)
		p.buf = bytesutil.AppendUint64(p.buf, v)
		return
	}
	p.PackInt64(int64(v))
}

// PackFloat32 packs a 32-bit float.
func (p *Packer) PackFloat32(v float32) {
	p.buf = append(p.buf, msgpackFloat32)
	p.buf = bytesutil.AppendUint32(p.buf, math.Float32bits(v))
}

// PackFloat64 packs a 64-bit float.
func (p *Packer) PackFloat64(v float64) {
	p.buf = append(p.buf, msgpackFloat64)
	p.buf = bytesutil.AppendUint64(p.buf, math.Float64bits(v))
}

// PackArrayBegin packs an array header. The caller must pack exactly n
// elements afterwards; a count mismatch desynchronizes the server's parse of
// every following byte.
func (p *Packer) PackArrayBegin(n int) {
	switch {
	case n < 16:
		p.buf = append(p.buf, 0x90|byte(n))
	case n < 65536:
		p.buf = append(p.buf, msgpackArray16)
		p.buf = bytesutil.AppendUint16(p.buf, uint16(n))
	default:
		p.buf = append(p.buf, msgpackArray32)
		p.buf = bytesutil.AppendUint32(p.buf, uint32(n))
	}
}

// PackMapBegin packs a map header. The caller must pack exactly n key/value
// pairs afterwards.
func (p *Packer) PackMapBegin(n int) {
	switch {
	case n < 16:
		p.buf = append(p.buf, 0x80|byte(n))
	case n < 65536:
		p.buf = append(p.buf, msgpackMap16)
		p.buf = bytesutil.AppendUint16(p.buf, uint16(n))
	default:
		p.buf = append(p.buf, msgpackMap32)
		p.buf = bytesutil.AppendUint32(p.buf, uint32(n))
	}
}

// packRawBegin packs a raw (str family) header for n payload bytes.
func (p *Packer) packRawBegin(n int) {
	switch {
	case n < 32:
		p.buf = append(p.buf, 0xa0|byte(n))
	case n < 256:
		p.buf = append(p.buf, msgpackStr8, byte(n))
	case n < 65536:
		p.buf = append(p.buf, msgpackStr16)
		p.buf = bytesutil.AppendUint16(p.buf, uint16(n))
	default:
		p.buf = append(p.buf, msgpackStr32)
		p.buf = bytesutil.AppendUint32(p.buf, uint32(n))
	}
}

// PackString packs a string without a particle type byte. Use
// PackParticleString for operand values; this generic form is only correct
// where the surrounding command implies the type.
func (p *Packer) PackString(s string) {
	p.packRawBegin(len(s))
	p.buf = append(p.buf, s...)
}

// PackBytes packs raw bytes without a particle type byte. See PackString for
// when the generic form applies.
func (p *Packer) PackBytes(b []byte) {
	p.packRawBegin(len(b))
	p.buf = append(p.buf, b...)
}

// PackParticleString packs a string operand: a raw payload whose first byte
// is the STRING particle tag.
func (p *Packer) PackParticleString(s string) {
	p.packRawBegin(len(s) + 1)
	p.buf = append(p.buf, byte(ParticleTypeString))
	p.buf = append(p.buf, s...)
}

// PackParticleBytes packs a byte array operand: a raw payload whose first
// byte is the BLOB particle tag.
func (p *Packer) PackParticleBytes(b []byte) {
	p.PackParticleBlob(ParticleTypeBlob, b)
}

// PackParticleGeoJSON packs a GeoJSON operand: a raw payload carrying the
// GEOJSON particle tag, the 3-byte flags/cell-count header, then the JSON.
func (p *Packer) PackParticleGeoJSON(doc string) {
	p.packRawBegin(len(doc) + 1 + geoJSONHeaderSize)
	p.buf = append(p.buf, byte(ParticleTypeGeoJSON))
	p.buf = append(p.buf, 0, 0, 0) // flags + cell count
	p.buf = append(p.buf, doc...)
}

// PackParticleBlob packs a byte payload under an explicit particle tag.
// Used for BLOB, HLL and the serialized object blob kinds.
func (p *Packer) PackParticleBlob(tag ParticleType, b []byte) {
	p.packRawBegin(len(b) + 1)
	p.buf = append(p.buf, byte(tag))
	p.buf = append(p.buf, b...)
}

// PackRaw appends pre-packed bytes verbatim. The caller is responsible for
// the bytes forming well-formed elements.
func (p *Packer) PackRaw(b []byte) {
	p.buf = append(p.buf, b...)
}

// PackInfinity packs the infinity range sentinel.
func (p *Packer) PackInfinity() {
	p.buf = append(p.buf, msgpackFixExt1, extTypeSentinel, extDataInfinity)
}

// PackWildCard packs the wildcard range sentinel.
func (p *Packer) PackWildCard() {
	p.buf = append(p.buf, msgpackFixExt1, extTypeSentinel, extDataWildCard)
}

// PackValue packs a Value operand.
func (p *Packer) PackValue(v Value) error {
	return v.Pack(p)
}

// PackObject packs a native Go value operand, wrapping it via NewValue.
func (p *Packer) PackObject(obj any) error {
	return NewValue(obj).Pack(p)
}
