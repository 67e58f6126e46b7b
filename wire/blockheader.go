// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"
	"time"

	"github.com/palladium-core/plmd/chainhash"
)

// BlockHeaderLen is the number of bytes a block header occupies on the
// wire: version 4 bytes + prev hash 32 bytes + merkle root 32 bytes +
// timestamp 4 bytes + bits 4 bytes + nonce 4 bytes.
const BlockHeaderLen = 80

// AuxpowVersionBit is the bit of BlockHeader.Version that signals an AuxPoW
// proof is attached to the containing block.
const AuxpowVersionBit = 1 << 8

// BlockHeader defines information about a block and is used in both the
// Block and standalone header messages.
type BlockHeader struct {
	// Version of the block. The AuxpowVersionBit signals that an AuxPow
	// proof is carried alongside the block body.
	Version int32

	// Hash of the previous block in the chain.
	PrevHash chainhash.Hash

	// Merkle tree reference to the hash of all transactions in the block.
	MerkleRoot chainhash.Hash

	// Time the block was created. Encoded on the wire as a uint32 unix
	// timestamp and therefore limited to the year 2106.
	Timestamp time.Time

	// Difficulty target for the block, compact-encoded.
	Bits uint32

	// Nonce used to generate the block.
	Nonce uint32
}

// IsAuxpow reports whether the version field's AuxPoW bit is set.
func (h *BlockHeader) IsAuxpow() bool {
	return h.Version&AuxpowVersionBit != 0
}

// BlockHash computes the block identifier hash for the given block header,
// including the AuxPoW version bit as-is. AuxPoW commitment verification
// instead hashes a copy with the bit cleared; see auxpow.ExpectedCommitHash.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, BlockHeaderLen))
	_ = writeBlockHeader(buf, h)
	return chainhash.DoubleHashH(buf.Bytes())
}

// Deserialize decodes a block header from r into the receiver.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	return readBlockHeader(r, h)
}

// Serialize encodes the block header to w.
func (h *BlockHeader) Serialize(w io.Writer) error {
	return writeBlockHeader(w, h)
}

// NewBlockHeader returns a new BlockHeader using the provided version,
// previous block hash, merkle root, difficulty bits, and nonce, with the
// current time as its timestamp.
func NewBlockHeader(version int32, prevHash, merkleRoot chainhash.Hash, bits, nonce uint32) *BlockHeader {
	return &BlockHeader{
		Version:    version,
		PrevHash:   prevHash,
		MerkleRoot: merkleRoot,
		Timestamp:  time.Unix(time.Now().Unix(), 0),
		Bits:       bits,
		Nonce:      nonce,
	}
}

func readBlockHeader(r io.Reader, bh *BlockHeader) error {
	return readElements(r, &bh.Version, &bh.PrevHash, &bh.MerkleRoot,
		(*uint32Time)(&bh.Timestamp), &bh.Bits, &bh.Nonce)
}

func writeBlockHeader(w io.Writer, bh *BlockHeader) error {
	sec := uint32Time(bh.Timestamp)
	return writeElements(w, bh.Version, &bh.PrevHash, &bh.MerkleRoot, sec, bh.Bits, bh.Nonce)
}
