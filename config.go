// config.go defines the codec configuration.
//
// The codec has no package-level mutable state. Every knob that changes wire
// output is a field on Config, passed explicitly into packers, unpackers and
// operation builders, so concurrent callers can run with different
// configurations and tests need no global setup.
package aswire

import "github.com/aswire/aswire/internal/logging"

// BlobSerializer converts opaque host objects to and from bytes for blob
// particles. The codec itself has no opinion on the object format; inject a
// strategy (see the cborblob package) or leave it nil, in which case packing
// or unpacking an opaque blob fails with ErrSerializerDisabled or
// ErrDeserializerDisabled.
type BlobSerializer interface {
	// Serialize converts an object to bytes.
	Serialize(obj any) ([]byte, error)

	// Deserialize reconstructs an object from bytes.
	Deserialize(data []byte) (any, error)
}

// Config carries the process-independent codec settings.
//
// A nil *Config is valid everywhere and behaves like DefaultConfig().
// A Config must not be mutated while any packer or unpacker built from it is
// in use; sharing an immutable Config across goroutines is safe.
type Config struct {
	// UseBoolBin selects the native boolean particle type for boolean
	// values. When false, booleans are encoded as integers 0/1 for
	// compatibility with servers predating boolean bins.
	UseBoolBin bool

	// Serializer handles opaque blob values. Nil disables the object
	// serialization paths entirely; they then fail loudly.
	Serializer BlobSerializer

	// Logger receives diagnostic messages. Defaults to logging.Discard.
	Logger logging.Logger
}

// DefaultConfig returns the default codec configuration: boolean-as-integer
// encoding, no object serializer, discard logger.
func DefaultConfig() *Config {
	return &Config{Logger: logging.Discard}
}

func (c *Config) useBoolBin() bool {
	return c != nil && c.UseBoolBin
}

func (c *Config) serializer() BlobSerializer {
	if c == nil {
		return nil
	}
	return c.Serializer
}

func (c *Config) logger() logging.Logger {
	if c == nil || c.Logger == nil {
		return logging.Discard
	}
	return c.Logger
}
