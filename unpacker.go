// unpacker.go implements the MessagePack-derived operand decoder.
//
// The decoder is the inverse of the packer, with three server conventions on
// top of plain MessagePack:
//
//   - Raw (str family) payloads carry a leading particle type byte and are
//     dispatched on it: STRING decodes to a string, GEOJSON strips its
//     3-byte flags/cell-count header, the serialized object kinds go through
//     the injected deserializer, everything else is a raw byte copy. The bin
//     family (0xc4..0xc6) has no particle byte and always decodes to bytes.
//   - A map whose first key is an extension marker is order-flagged: flag
//     0x01 decodes to an OrderedMap (sorted, order preserved), flag 0x03 to
//     a flat []MapPair, because index/rank-range results are sequences and a
//     hash map would silently lose their order.
//   - All other extension markers are skipped and decode as nil. Skips go
//     through a single type-length table so every ext family shares one
//     code path.
//
// Unsigned 64-bit integers decode to int64 with the same bit pattern.
// Callers needing unsigned semantics reinterpret the bits themselves; this
// is a deliberate, documented lossy contract.
package aswire

import (
	"github.com/aswire/aswire/internal/bytesutil"
)

// Unpacker decodes a MessagePack-derived buffer into native values.
type Unpacker struct {
	cfg *Config
	buf []byte
	off int
}

// NewUnpacker creates an unpacker over buf. A nil cfg is valid and behaves
// like DefaultConfig(). The unpacker does not copy buf; the caller must not
// mutate it during decoding.
func NewUnpacker(cfg *Config, buf []byte) *Unpacker {
	return &Unpacker{cfg: cfg, buf: buf}
}

// Offset returns the number of bytes consumed so far.
func (u *Unpacker) Offset() int {
	return u.off
}

// UnpackObject decodes the next object in the buffer.
func (u *Unpacker) UnpackObject() (any, error) {
	return u.unpackObject()
}

// UnpackList decodes the buffer head as a list.
func (u *Unpacker) UnpackList() ([]any, error) {
	obj, err := u.unpackObject()
	if err != nil {
		return nil, err
	}
	list, ok := obj.([]any)
	if !ok {
		return nil, newErrorf(ResultParseError, "expected list, decoded %T", obj)
	}
	return list, nil
}

// UnpackMap decodes the buffer head as a map. The result is map[any]any,
// *OrderedMap or []MapPair depending on the server's order flags.
func (u *Unpacker) UnpackMap() (any, error) {
	obj, err := u.unpackObject()
	if err != nil {
		return nil, err
	}
	switch obj.(type) {
	case map[any]any, *OrderedMap, []MapPair:
		return obj, nil
	}
	return nil, newErrorf(ResultParseError, "expected map, decoded %T", obj)
}

func (u *Unpacker) need(n int) error {
	if u.off+n > len(u.buf) {
		return newErrorf(ResultParseError, "unexpected end of buffer at offset %d (need %d bytes of %d)",
			u.off, n, len(u.buf))
	}
	return nil
}

func (u *Unpacker) readByte() (byte, error) {
	if err := u.need(1); err != nil {
		return 0, err
	}
	b := u.buf[u.off]
	u.off++
	return b, nil
}

func (u *Unpacker) readBytes(n int) ([]byte, error) {
	if err := u.need(n); err != nil {
		return nil, err
	}
	b := u.buf[u.off : u.off+n]
	u.off += n
	return b, nil
}

func (u *Unpacker) readUint16() (int, error) {
	b, err := u.readBytes(2)
	if err != nil {
		return 0, err
	}
	return int(bytesutil.DecodeUint16(b)), nil
}

func (u *Unpacker) readUint32() (int, error) {
	b, err := u.readBytes(4)
	if err != nil {
		return 0, err
	}
	return int(bytesutil.DecodeUint32(b)), nil
}

func (u *Unpacker) unpackObject() (any, error) {
	header, err := u.readByte()
	if err != nil {
		return nil, err
	}

	switch {
	case header <= 0x7f: // positive fixint
		return int64(header), nil
	case header >= 0xe0: // negative fixint
		return int64(int8(header)), nil
	case header >= 0x80 && header <= 0x8f: // fixmap
		return u.unpackMapElements(int(header & 0x0f))
	case header >= 0x90 && header <= 0x9f: // fixarray
		return u.unpackListElements(int(header & 0x0f))
	case header >= 0xa0 && header <= 0xbf: // fixstr
		return u.unpackBlob(int(header & 0x1f))
	}

	switch header {
	case msgpackNil:
		return nil, nil
	case msgpackFalse:
		return false, nil
	case msgpackTrue:
		return true, nil

	case msgpackBin8:
		n, err := u.readByte()
		if err != nil {
			return nil, err
		}
		return u.unpackRawBytes(int(n))
	case msgpackBin16:
		n, err := u.readUint16()
		if err != nil {
			return nil, err
		}
		return u.unpackRawBytes(n)
	case msgpackBin32:
		n, err := u.readUint32()
		if err != nil {
			return nil, err
		}
		return u.unpackRawBytes(n)

	case msgpackFloat32:
		b, err := u.readBytes(4)
		if err != nil {
			return nil, err
		}
		return bytesutil.DecodeFloat32(b), nil
	case msgpackFloat64:
		b, err := u.readBytes(8)
		if err != nil {
			return nil, err
		}
		return bytesutil.DecodeFloat64(b), nil

	case msgpackUint8:
		b, err := u.readByte()
		if err != nil {
			return nil, err
		}
		return int64(b), nil
	case msgpackUint16:
		n, err := u.readUint16()
		if err != nil {
			return nil, err
		}
		return int64(n), nil
	case msgpackUint32:
		n, err := u.readUint32()
		if err != nil {
			return nil, err
		}
		return int64(uint32(n)), nil
	case msgpackUint64:
		b, err := u.readBytes(8)
		if err != nil {
			return nil, err
		}
		// Bit-pattern reinterpretation: values >= 2^63 come back negative.
		return int64(bytesutil.DecodeUint64(b)), nil

	case msgpackInt8:
		b, err := u.readByte()
		if err != nil {
			return nil, err
		}
		return int64(int8(b)), nil
	case msgpackInt16:
		n, err := u.readUint16()
		if err != nil {
			return nil, err
		}
		return int64(int16(n)), nil
	case msgpackInt32:
		n, err := u.readUint32()
		if err != nil {
			return nil, err
		}
		return int64(int32(n)), nil
	case msgpackInt64:
		b, err := u.readBytes(8)
		if err != nil {
			return nil, err
		}
		return bytesutil.DecodeInt64(b), nil

	case msgpackFixExt1, msgpackFixExt2, msgpackFixExt4, msgpackFixExt8, msgpackFixExt16,
		msgpackExt8, msgpackExt16, msgpackExt32:
		extType, data, err := u.readExtBody(header)
		if err != nil {
			return nil, err
		}
		u.cfg.logger().Debugf("[unpacker] skipped ext type 0x%02x (%d bytes)", extType, len(data))
		return nil, nil

	case msgpackStr8:
		n, err := u.readByte()
		if err != nil {
			return nil, err
		}
		return u.unpackBlob(int(n))
	case msgpackStr16:
		n, err := u.readUint16()
		if err != nil {
			return nil, err
		}
		return u.unpackBlob(n)
	case msgpackStr32:
		n, err := u.readUint32()
		if err != nil {
			return nil, err
		}
		return u.unpackBlob(n)

	case msgpackArray16:
		n, err := u.readUint16()
		if err != nil {
			return nil, err
		}
		return u.unpackListElements(n)
	case msgpackArray32:
		n, err := u.readUint32()
		if err != nil {
			return nil, err
		}
		return u.unpackListElements(n)

	case msgpackMap16:
		n, err := u.readUint16()
		if err != nil {
			return nil, err
		}
		return u.unpackMapElements(n)
	case msgpackMap32:
		n, err := u.readUint32()
		if err != nil {
			return nil, err
		}
		return u.unpackMapElements(n)
	}

	return nil, newErrorf(ResultParseError, "unknown header byte 0x%02x at offset %d", header, u.off-1)
}

// extBodyLengths maps fixed-extension header bytes to their data lengths.
// The variable-length ext headers (0xc7..0xc9) carry their own length
// prefix and are handled separately in readExtBody.
var extBodyLengths = map[byte]int{
	msgpackFixExt1:  1,
	msgpackFixExt2:  2,
	msgpackFixExt4:  4,
	msgpackFixExt8:  8,
	msgpackFixExt16: 16,
}

// readExtBody consumes the extension type byte and data that follow an
// already-read extension header byte.
func (u *Unpacker) readExtBody(header byte) (byte, []byte, error) {
	var length int
	if n, ok := extBodyLengths[header]; ok {
		length = n
	} else {
		switch header {
		case msgpackExt8:
			b, err := u.readByte()
			if err != nil {
				return 0, nil, err
			}
			length = int(b)
		case msgpackExt16:
			n, err := u.readUint16()
			if err != nil {
				return 0, nil, err
			}
			length = n
		case msgpackExt32:
			n, err := u.readUint32()
			if err != nil {
				return 0, nil, err
			}
			length = n
		default:
			return 0, nil, newErrorf(ResultParseError, "not an extension header: 0x%02x", header)
		}
	}

	extType, err := u.readByte()
	if err != nil {
		return 0, nil, err
	}
	data, err := u.readBytes(length)
	if err != nil {
		return 0, nil, err
	}
	return extType, data, nil
}

func isExtHeader(b byte) bool {
	if _, ok := extBodyLengths[b]; ok {
		return true
	}
	return b == msgpackExt8 || b == msgpackExt16 || b == msgpackExt32
}

// unpackRawBytes decodes a bin-family payload, which carries no particle
// type byte.
func (u *Unpacker) unpackRawBytes(count int) (any, error) {
	b, err := u.readBytes(count)
	if err != nil {
		return nil, err
	}
	out := make([]byte, count)
	copy(out, b)
	return out, nil
}

// unpackBlob decodes a raw (str family) payload, dispatching on the leading
// particle type byte.
func (u *Unpacker) unpackBlob(count int) (any, error) {
	if count == 0 {
		return []byte{}, nil
	}
	payload, err := u.readBytes(count)
	if err != nil {
		return nil, err
	}
	tag := ParticleType(payload[0])
	body := payload[1:]

	switch {
	case tag == ParticleTypeString:
		return string(body), nil

	case tag == ParticleTypeGeoJSON:
		if len(body) < geoJSONHeaderSize {
			return nil, newErrorf(ResultParseError, "GeoJSON particle truncated: %d bytes", len(body))
		}
		return GeoJSONValue(body[geoJSONHeaderSize:]), nil

	case tag == ParticleTypeHLL:
		out := make(HLLValue, len(body))
		copy(out, body)
		return out, nil

	case tag.isSerializedBlob():
		s := u.cfg.serializer()
		if s == nil {
			return nil, wrapError(ResultSerializeError, ErrDeserializerDisabled,
				"cannot decode "+tag.String()+" particle")
		}
		obj, err := s.Deserialize(body)
		if err != nil {
			return nil, wrapError(ResultSerializeError, err, "deserializing "+tag.String()+" particle")
		}
		return obj, nil

	default:
		// BLOB and any unrecognized tag: raw byte copy.
		out := make([]byte, len(body))
		copy(out, body)
		return out, nil
	}
}

// allocCount caps a declared element count for pre-allocation purposes by
// the bytes still in the buffer, at minBytes per element. The declared count
// stays the loop bound: a buffer too short for its own header fails on the
// first missing element rather than sizing a collection the buffer could
// never hold.
func (u *Unpacker) allocCount(count, minBytes int) int {
	if remaining := (len(u.buf) - u.off) / minBytes; count > remaining {
		return remaining
	}
	return count
}

func (u *Unpacker) unpackListElements(count int) ([]any, error) {
	out := make([]any, 0, u.allocCount(count, 1))
	for i := 0; i < count; i++ {
		item, err := u.unpackObject()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// Server map order flags carried in the first-pair extension marker.
const (
	mapFlagKeyOrdered      = 0x01
	mapFlagKeyValueOrdered = 0x03
)

func (u *Unpacker) unpackMapElements(count int) (any, error) {
	if count == 0 {
		return map[any]any{}, nil
	}

	if err := u.need(1); err != nil {
		return nil, err
	}
	flags := 0
	if isExtHeader(u.buf[u.off]) {
		header, err := u.readByte()
		if err != nil {
			return nil, err
		}
		_, data, err := u.readExtBody(header)
		if err != nil {
			return nil, err
		}
		if len(data) > 0 {
			flags = int(data[0])
		}
		// The marker is a full key/value pair; discard the companion value.
		if _, err := u.unpackObject(); err != nil {
			return nil, err
		}
		count--
	}

	switch flags & mapFlagKeyValueOrdered {
	case mapFlagKeyValueOrdered:
		// Index/rank-range result: order is the payload, keep a pair list.
		pairs, err := u.unpackMapPairs(count)
		if err != nil {
			return nil, err
		}
		return pairs, nil
	case mapFlagKeyOrdered:
		pairs, err := u.unpackMapPairs(count)
		if err != nil {
			return nil, err
		}
		return &OrderedMap{Pairs: pairs}, nil
	}

	out := make(map[any]any, u.allocCount(count, 2))
	for i := 0; i < count; i++ {
		key, err := u.unpackObject()
		if err != nil {
			return nil, err
		}
		val, err := u.unpackObject()
		if err != nil {
			return nil, err
		}
		out[normalizeMapKey(key)] = val
	}
	return out, nil
}

func (u *Unpacker) unpackMapPairs(count int) ([]MapPair, error) {
	pairs := make([]MapPair, 0, u.allocCount(count, 2))
	for i := 0; i < count; i++ {
		key, err := u.unpackObject()
		if err != nil {
			return nil, err
		}
		val, err := u.unpackObject()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, MapPair{Key: key, Value: val})
	}
	return pairs, nil
}

// normalizeMapKey converts unhashable decoded keys into hashable ones for
// use in a native Go map. Byte-array keys become strings.
func normalizeMapKey(key any) any {
	if b, ok := key.([]byte); ok {
		return string(b)
	}
	return key
}
