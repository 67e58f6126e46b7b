package chainhash

import (
	"crypto/sha256"
	"fmt"
	"hash"
)

// HashWriter incrementally hashes data without concatenating it into a
// single buffer first. HashWriter.Write(slice).Finalize() == HashH(slice).
type HashWriter struct {
	inner hash.Hash
}

// DoubleHashWriter incrementally double-hashes data without concatenating it
// into a single buffer first.
// DoubleHashWriter.Write(slice).Finalize() == DoubleHashH(slice).
type DoubleHashWriter struct {
	inner hash.Hash
}

// NewHashWriter returns a new HashWriter.
func NewHashWriter() *HashWriter {
	return &HashWriter{sha256.New()}
}

// Write always returns (len(p), nil).
func (h *HashWriter) Write(p []byte) (n int, err error) {
	return h.inner.Write(p)
}

// Finalize returns the resulting hash.
func (h *HashWriter) Finalize() Hash {
	res := Hash{}
	err := res.SetBytes(h.inner.Sum(nil))
	if err != nil {
		panic(fmt.Sprintf("sha256.Sum is always HashSize bytes: %+v", err))
	}
	return res
}

// NewDoubleHashWriter returns a new DoubleHashWriter.
func NewDoubleHashWriter() *DoubleHashWriter {
	return &DoubleHashWriter{sha256.New()}
}

// Write always returns (len(p), nil).
func (h *DoubleHashWriter) Write(p []byte) (n int, err error) {
	return h.inner.Write(p)
}

// Finalize returns the resulting double hash.
func (h *DoubleHashWriter) Finalize() Hash {
	firstHashInTheSum := h.inner.Sum(nil)
	return sha256.Sum256(firstHashInTheSum)
}
