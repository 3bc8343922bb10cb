// key.go implements record keys and their server digest.
//
// A record is addressed on the wire by a 20-byte RIPEMD-160 digest over
// the set name, the key's particle type byte, and the key's particle
// bytes. The user key itself never has to travel; two clients computing
// the same digest address the same record.
package aswire

import (
	"fmt"

	"golang.org/x/crypto/ripemd160"

	"github.com/aswire/aswire/internal/bytesutil"
)

// DigestSize is the length of a record digest.
const DigestSize = 20

// PartitionCount is the fixed number of partitions in a namespace.
const PartitionCount = 4096

// Key addresses one record. Build it with NewKey; the digest is computed
// once at construction and the Key is immutable afterwards.
type Key struct {
	// Namespace is the target namespace.
	Namespace string

	// SetName is the optional set within the namespace.
	SetName string

	// UserKey is the original key value. It is kept for callers that send
	// the key with the record; only the digest addresses the record.
	UserKey Value

	digest [DigestSize]byte
}

// NewKey builds a key and computes its digest. The key value must be an
// integer, string, or blob.
func NewKey(namespace, setName string, userKey Value) (*Key, error) {
	if err := ValidateKeyType(userKey); err != nil {
		return nil, err
	}
	k := &Key{Namespace: namespace, SetName: setName, UserKey: userKey}
	if err := k.computeDigest(); err != nil {
		return nil, err
	}
	return k, nil
}

// NewKeyWithDigest builds a key from an externally computed digest, for
// callers replaying digests from scans or secondary stores. userKey may
// be nil.
func NewKeyWithDigest(namespace, setName string, userKey Value, digest []byte) (*Key, error) {
	if len(digest) != DigestSize {
		return nil, newErrorf(ResultParameterError,
			"digest must be %d bytes, got %d", DigestSize, len(digest))
	}
	k := &Key{Namespace: namespace, SetName: setName, UserKey: userKey}
	copy(k.digest[:], digest)
	return k, nil
}

func (k *Key) computeDigest() error {
	size, err := k.UserKey.EstimateSize(nil)
	if err != nil {
		return err
	}
	buf := make([]byte, size)
	n, err := k.UserKey.Write(nil, buf, 0)
	if err != nil {
		return err
	}

	h := ripemd160.New()
	h.Write([]byte(k.SetName))
	h.Write([]byte{byte(k.UserKey.ParticleType(nil))})
	h.Write(buf[:n])
	h.Sum(k.digest[:0])
	return nil
}

// Digest returns the 20-byte record digest.
func (k *Key) Digest() []byte {
	d := make([]byte, DigestSize)
	copy(d, k.digest[:])
	return d
}

// PartitionID returns the partition the record maps to: the digest's
// little-endian leading bytes modulo the partition count.
func (k *Key) PartitionID() int {
	return int(bytesutil.DecodeLittleUint32(k.digest[:4])&0xFFFF) % PartitionCount
}

// Equals reports whether both keys address the same record.
func (k *Key) Equals(other *Key) bool {
	return other != nil && k.Namespace == other.Namespace && k.digest == other.digest
}

func (k *Key) String() string {
	return fmt.Sprintf("%s:%s:%v:%x", k.Namespace, k.SetName, k.UserKey, k.digest)
}
