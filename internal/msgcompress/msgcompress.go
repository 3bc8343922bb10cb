// Package msgcompress provides zlib compression for wire message payloads.
//
// The protocol carries a compressed message as an 8-byte big-endian
// uncompressed size followed by a zlib stream. The size prefix lets the
// receiver allocate once and acts as a hard bound against decompression
// bombs; this package validates it on inflate.
//
// Reference: Aerospike compressed proto body layout.
package msgcompress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/aswire/aswire/internal/bytesutil"
)

// sizePrefixLen is the length of the uncompressed-size prefix.
const sizePrefixLen = 8

// Deflate compresses data into a compressed message body: the original
// length followed by the zlib stream.
func Deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(sizePrefixLen + len(data)/2)

	var prefix [sizePrefixLen]byte
	bytesutil.EncodeUint64(prefix[:], uint64(len(data)))
	buf.Write(prefix[:])

	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("zlib write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib close: %w", err)
	}
	return buf.Bytes(), nil
}

// Inflate decompresses a compressed message body produced by Deflate. The
// declared uncompressed size must match the inflated length exactly.
func Inflate(body []byte) ([]byte, error) {
	if len(body) < sizePrefixLen {
		return nil, fmt.Errorf("compressed body too short: %d bytes", len(body))
	}
	size := bytesutil.DecodeUint64(body)

	r, err := zlib.NewReader(bytes.NewReader(body[sizePrefixLen:]))
	if err != nil {
		return nil, fmt.Errorf("zlib reader: %w", err)
	}
	defer func() { _ = r.Close() }()

	out := make([]byte, 0, size)
	buf := bytes.NewBuffer(out)
	n, err := io.Copy(buf, io.LimitReader(r, int64(size)+1))
	if err != nil {
		return nil, fmt.Errorf("zlib inflate: %w", err)
	}
	if uint64(n) != size {
		return nil, fmt.Errorf("uncompressed size mismatch: declared %d, got %d", size, n)
	}
	return buf.Bytes(), nil
}
