// Package bytesutil provides fixed-width binary encoding/decoding primitives
// for the Aerospike wire protocol.
//
// All multi-byte integers on the Aerospike wire are big-endian (network byte
// order). The proto header size field is a 48-bit big-endian integer, so this
// package also carries 48-bit helpers that have no stdlib equivalent.
//
// Reference: Aerospike wire protocol version 2 (AS_MSG), proto.h
package bytesutil

import (
	"encoding/binary"
	"math"
)

// Int48Max is the largest value representable in the 48-bit proto size field.
const Int48Max = (1 << 48) - 1

// -----------------------------------------------------------------------------
// Fixed-width encoding (big-endian)
// -----------------------------------------------------------------------------

// EncodeUint16 encodes a uint16 into a 2-byte big-endian buffer.
// REQUIRES: dst has at least 2 bytes.
func EncodeUint16(dst []byte, value uint16) {
	binary.BigEndian.PutUint16(dst, value)
}

// DecodeUint16 decodes a uint16 from a 2-byte big-endian buffer.
// REQUIRES: src has at least 2 bytes.
func DecodeUint16(src []byte) uint16 {
	return binary.BigEndian.Uint16(src)
}

// EncodeUint32 encodes a uint32 into a 4-byte big-endian buffer.
// REQUIRES: dst has at least 4 bytes.
func EncodeUint32(dst []byte, value uint32) {
	binary.BigEndian.PutUint32(dst, value)
}

// DecodeUint32 decodes a uint32 from a 4-byte big-endian buffer.
// REQUIRES: src has at least 4 bytes.
func DecodeUint32(src []byte) uint32 {
	return binary.BigEndian.Uint32(src)
}

// EncodeUint48 encodes the low 48 bits of value into a 6-byte big-endian
// buffer. The proto header carries message sizes in this form.
// REQUIRES: dst has at least 6 bytes.
func EncodeUint48(dst []byte, value uint64) {
	dst[0] = byte(value >> 40)
	dst[1] = byte(value >> 32)
	dst[2] = byte(value >> 24)
	dst[3] = byte(value >> 16)
	dst[4] = byte(value >> 8)
	dst[5] = byte(value)
}

// DecodeUint48 decodes a 48-bit big-endian integer from a 6-byte buffer.
// REQUIRES: src has at least 6 bytes.
func DecodeUint48(src []byte) uint64 {
	return uint64(src[0])<<40 | uint64(src[1])<<32 | uint64(src[2])<<24 |
		uint64(src[3])<<16 | uint64(src[4])<<8 | uint64(src[5])
}

// EncodeUint64 encodes a uint64 into an 8-byte big-endian buffer.
// REQUIRES: dst has at least 8 bytes.
func EncodeUint64(dst []byte, value uint64) {
	binary.BigEndian.PutUint64(dst, value)
}

// DecodeUint64 decodes a uint64 from an 8-byte big-endian buffer.
// REQUIRES: src has at least 8 bytes.
func DecodeUint64(src []byte) uint64 {
	return binary.BigEndian.Uint64(src)
}

// EncodeInt64 encodes an int64 into an 8-byte big-endian buffer.
// REQUIRES: dst has at least 8 bytes.
func EncodeInt64(dst []byte, value int64) {
	binary.BigEndian.PutUint64(dst, uint64(value))
}

// DecodeInt64 decodes an int64 from an 8-byte big-endian buffer.
// REQUIRES: src has at least 8 bytes.
func DecodeInt64(src []byte) int64 {
	return int64(binary.BigEndian.Uint64(src))
}

// EncodeFloat32 encodes a float32 as 4 big-endian IEEE 754 bytes.
// REQUIRES: dst has at least 4 bytes.
func EncodeFloat32(dst []byte, value float32) {
	binary.BigEndian.PutUint32(dst, math.Float32bits(value))
}

// DecodeFloat32 decodes a float32 from 4 big-endian IEEE 754 bytes.
// REQUIRES: src has at least 4 bytes.
func DecodeFloat32(src []byte) float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(src))
}

// EncodeFloat64 encodes a float64 as 8 big-endian IEEE 754 bytes.
// REQUIRES: dst has at least 8 bytes.
func EncodeFloat64(dst []byte, value float64) {
	binary.BigEndian.PutUint64(dst, math.Float64bits(value))
}

// DecodeFloat64 decodes a float64 from 8 big-endian IEEE 754 bytes.
// REQUIRES: src has at least 8 bytes.
func DecodeFloat64(src []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(src))
}

// DecodeLittleUint32 decodes a uint32 from a 4-byte little-endian buffer.
// Key digests map to partitions through their little-endian prefix, which is
// the one little-endian read in the whole protocol.
// REQUIRES: src has at least 4 bytes.
func DecodeLittleUint32(src []byte) uint32 {
	return binary.LittleEndian.Uint32(src)
}

// -----------------------------------------------------------------------------
// Appending variants (for building buffers)
// -----------------------------------------------------------------------------

// AppendUint16 appends a big-endian uint16 to dst and returns the extended slice.
func AppendUint16(dst []byte, value uint16) []byte {
	return binary.BigEndian.AppendUint16(dst, value)
}

// AppendUint32 appends a big-endian uint32 to dst and returns the extended slice.
func AppendUint32(dst []byte, value uint32) []byte {
	return binary.BigEndian.AppendUint32(dst, value)
}

// AppendUint48 appends the low 48 bits of value as 6 big-endian bytes.
func AppendUint48(dst []byte, value uint64) []byte {
	var buf [6]byte
	EncodeUint48(buf[:], value)
	return append(dst, buf[:]...)
}

// AppendUint64 appends a big-endian uint64 to dst and returns the extended slice.
func AppendUint64(dst []byte, value uint64) []byte {
	return binary.BigEndian.AppendUint64(dst, value)
}
