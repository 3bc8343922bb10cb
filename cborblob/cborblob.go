// Package cborblob provides a CBOR-backed blob serializer.
//
// The codec core stores opaque Go objects as serialized-blob particles
// only through an injected serializer strategy; nothing in the core
// depends on a serialization format. This package supplies one such
// strategy using canonical CBOR, so the same object encodes to the same
// bytes on every run.
package cborblob

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("cborblob: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Serializer implements the codec's BlobSerializer strategy with CBOR.
// The zero value is ready to use.
type Serializer struct{}

// New returns a CBOR serializer.
func New() *Serializer {
	return &Serializer{}
}

// Serialize encodes v as canonical CBOR.
func (s *Serializer) Serialize(v any) ([]byte, error) {
	data, err := cborEncMode.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cborblob: marshal %T: %w", v, err)
	}
	return data, nil
}

// Deserialize decodes CBOR bytes into the generic Go shape CBOR maps to:
// numbers, strings, byte slices, []any, and map[any]any.
func (s *Serializer) Deserialize(data []byte) (any, error) {
	var v any
	if err := cbor.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("cborblob: unmarshal: %w", err)
	}
	return v, nil
}
