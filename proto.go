// proto.go implements the outer wire-message frame.
//
// Every message starts with an 8-byte header: a protocol version byte, a
// message type byte, and a 48-bit big-endian body size. A compressed
// message wraps a complete plain message (header included) in a zlib body
// prefixed with its uncompressed size.
package aswire

import (
	"github.com/aswire/aswire/internal/bytesutil"
	"github.com/aswire/aswire/internal/msgcompress"
)

const (
	// ProtoVersion is the only protocol version this codec speaks.
	ProtoVersion = 2

	// ProtoTypeMessage frames a record request/response body.
	ProtoTypeMessage = 3

	// ProtoTypeCompressed frames a zlib-compressed complete message.
	ProtoTypeCompressed = 4

	// ProtoHeaderSize is the fixed frame header length.
	ProtoHeaderSize = 8
)

// compressThreshold is the smallest body worth compressing. Below it the
// zlib framing overhead exceeds any saving.
const compressThreshold = 128

// ProtoHeader is a parsed wire-message frame header.
type ProtoHeader struct {
	Version byte
	Type    byte
	Size    uint64 // body length, excluding the header itself
}

// WriteProtoHeader writes an 8-byte frame header into buf.
// REQUIRES: len(buf) >= ProtoHeaderSize; size < 2^48.
func WriteProtoHeader(buf []byte, msgType byte, size uint64) {
	buf[0] = ProtoVersion
	buf[1] = msgType
	bytesutil.EncodeUint48(buf[2:], size)
}

// ParseProtoHeader parses an 8-byte frame header. It rejects unknown
// versions and message types so a desynchronized stream fails fast.
func ParseProtoHeader(buf []byte) (ProtoHeader, error) {
	if len(buf) < ProtoHeaderSize {
		return ProtoHeader{}, newErrorf(ResultParseError,
			"proto header truncated: %d of %d bytes", len(buf), ProtoHeaderSize)
	}
	h := ProtoHeader{
		Version: buf[0],
		Type:    buf[1],
		Size:    bytesutil.DecodeUint48(buf[2:]),
	}
	if h.Version != ProtoVersion {
		return ProtoHeader{}, newErrorf(ResultParseError,
			"unsupported proto version %d", h.Version)
	}
	if h.Type != ProtoTypeMessage && h.Type != ProtoTypeCompressed {
		return ProtoHeader{}, newErrorf(ResultParseError,
			"unsupported proto type %d", h.Type)
	}
	return h, nil
}

// FrameMessage prepends a message-type frame header to body.
func FrameMessage(body []byte) []byte {
	out := make([]byte, ProtoHeaderSize+len(body))
	WriteProtoHeader(out, ProtoTypeMessage, uint64(len(body)))
	copy(out[ProtoHeaderSize:], body)
	return out
}

// CompressMessage wraps a complete framed message in a compressed frame.
// Messages below the compression threshold are returned unchanged.
func CompressMessage(msg []byte) ([]byte, error) {
	if len(msg) < compressThreshold {
		return msg, nil
	}
	body, err := msgcompress.Deflate(msg)
	if err != nil {
		return nil, wrapError(ResultSerializeError, err, "compress message")
	}
	out := make([]byte, ProtoHeaderSize+len(body))
	WriteProtoHeader(out, ProtoTypeCompressed, uint64(len(body)))
	copy(out[ProtoHeaderSize:], body)
	return out, nil
}

// DecompressMessage unwraps a compressed frame back to the complete inner
// message. A plain message frame passes through unchanged.
func DecompressMessage(msg []byte) ([]byte, error) {
	h, err := ParseProtoHeader(msg)
	if err != nil {
		return nil, err
	}
	body := msg[ProtoHeaderSize:]
	if uint64(len(body)) != h.Size {
		return nil, newErrorf(ResultParseError,
			"proto body truncated: declared %d, got %d", h.Size, len(body))
	}
	if h.Type != ProtoTypeCompressed {
		return msg, nil
	}
	inner, err := msgcompress.Inflate(body)
	if err != nil {
		return nil, wrapError(ResultParseError, err, "decompress message")
	}
	if _, err := ParseProtoHeader(inner); err != nil {
		return nil, err
	}
	return inner, nil
}
