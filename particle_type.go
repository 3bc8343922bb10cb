// particle_type.go defines the server particle type tags.
//
// Every bin value travels as a particle: a type tag plus payload bytes. The
// tag tells the server how to interpret the payload, both in the flat bin
// value section of a record message and as the leading byte of string/blob
// operands inside CDT MessagePack arrays.
//
// Reference: Aerospike wire protocol, particle.h
package aswire

import "fmt"

// ParticleType is the wire tag identifying a bin value's type.
type ParticleType int

const (
	// ParticleTypeNull is an absent value.
	ParticleTypeNull ParticleType = 0

	// ParticleTypeInteger is a signed 64-bit integer.
	ParticleTypeInteger ParticleType = 1

	// ParticleTypeDouble is an IEEE 754 floating point number.
	ParticleTypeDouble ParticleType = 2

	// ParticleTypeString is a UTF-8 string.
	ParticleTypeString ParticleType = 3

	// ParticleTypeBlob is a raw byte array.
	ParticleTypeBlob ParticleType = 4

	// ParticleTypeDigest is a key digest.
	ParticleTypeDigest ParticleType = 6

	// ParticleTypeJavaBlob is an opaque object serialized by a Java client.
	ParticleTypeJavaBlob ParticleType = 7

	// ParticleTypeCSharpBlob is an opaque object serialized by a C# client.
	// This library writes opaque blob values under this tag for wire
	// compatibility with the upstream client it is pinned to.
	ParticleTypeCSharpBlob ParticleType = 8

	// ParticleTypePythonBlob is an opaque object serialized by a Python client.
	ParticleTypePythonBlob ParticleType = 9

	// ParticleTypeRubyBlob is an opaque object serialized by a Ruby client.
	ParticleTypeRubyBlob ParticleType = 10

	// ParticleTypeBool is a native boolean. Only sent when the configuration
	// enables boolean bins; otherwise booleans travel as integers.
	ParticleTypeBool ParticleType = 17

	// ParticleTypeHLL is a HyperLogLog blob.
	ParticleTypeHLL ParticleType = 18

	// ParticleTypeMap is a MessagePack-encoded map.
	ParticleTypeMap ParticleType = 19

	// ParticleTypeList is a MessagePack-encoded list.
	ParticleTypeList ParticleType = 20

	// ParticleTypeGeoJSON is a GeoJSON document.
	ParticleTypeGeoJSON ParticleType = 23
)

// String returns the protocol name of the particle type.
func (pt ParticleType) String() string {
	switch pt {
	case ParticleTypeNull:
		return "NULL"
	case ParticleTypeInteger:
		return "INTEGER"
	case ParticleTypeDouble:
		return "DOUBLE"
	case ParticleTypeString:
		return "STRING"
	case ParticleTypeBlob:
		return "BLOB"
	case ParticleTypeDigest:
		return "DIGEST"
	case ParticleTypeJavaBlob:
		return "JBLOB"
	case ParticleTypeCSharpBlob:
		return "CSHARP_BLOB"
	case ParticleTypePythonBlob:
		return "PYTHON_BLOB"
	case ParticleTypeRubyBlob:
		return "RUBY_BLOB"
	case ParticleTypeBool:
		return "BOOL"
	case ParticleTypeHLL:
		return "HLL"
	case ParticleTypeMap:
		return "MAP"
	case ParticleTypeList:
		return "LIST"
	case ParticleTypeGeoJSON:
		return "GEOJSON"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(pt))
	}
}

// isSerializedBlob reports whether the tag is one of the language-specific
// opaque object blobs that must go through the deserializer hook.
func (pt ParticleType) isSerializedBlob() bool {
	return pt >= ParticleTypeJavaBlob && pt <= ParticleTypeRubyBlob
}
