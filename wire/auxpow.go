package wire

import (
	"io"

	"github.com/palladium-core/plmd/chainhash"
)

// maxMerkleBranchLen bounds the number of sibling hashes carried in an
// AuxPoW merkle branch, a generous sanity limit rather than a consensus
// value: no realistic parent-chain block has a tree deeper than this.
const maxMerkleBranchLen = 32

// AuxPow carries the merge-mining proof attached to a block whose header
// sets AuxpowVersionBit: a parent-chain coinbase transaction committing to
// this block's hash, the merkle branch proving that coinbase is part of
// the parent block, and the parent block's header itself (which must meet
// this block's target).
type AuxPow struct {
	// ParentCoinbase is the parent-chain coinbase transaction whose
	// scriptSig commits to this block's hash.
	ParentCoinbase MsgTx

	// CoinbaseBranch proves ParentCoinbase's hash is included in
	// ParentHeader's merkle root.
	CoinbaseBranch []chainhash.Hash
	CoinbaseIndex  uint32

	// ChainBranch proves this chain's id is included in a merge-mining
	// tree when more than one auxiliary chain shares the same parent
	// coinbase commitment. Unused (empty) chains carry an empty branch
	// and index 0.
	ChainBranch []chainhash.Hash
	ChainIndex  uint32

	// ParentHeader is the parent-chain block header whose hash must
	// satisfy this block's target difficulty.
	ParentHeader BlockHeader
}

// ParentBlockHash returns the hash of the parent-chain header carried by
// the proof.
func (ap *AuxPow) ParentBlockHash() chainhash.Hash {
	return ap.ParentHeader.BlockHash()
}

// Serialize encodes the AuxPoW proof to w.
func (ap *AuxPow) Serialize(w io.Writer) error {
	if err := ap.ParentCoinbase.Serialize(w); err != nil {
		return err
	}
	if err := writeHashSlice(w, ap.CoinbaseBranch); err != nil {
		return err
	}
	if err := writeElement(w, ap.CoinbaseIndex); err != nil {
		return err
	}
	if err := writeHashSlice(w, ap.ChainBranch); err != nil {
		return err
	}
	if err := writeElement(w, ap.ChainIndex); err != nil {
		return err
	}
	return ap.ParentHeader.Serialize(w)
}

// Deserialize decodes an AuxPoW proof from r into the receiver.
func (ap *AuxPow) Deserialize(r io.Reader) error {
	if err := ap.ParentCoinbase.Deserialize(r); err != nil {
		return err
	}
	var err error
	if ap.CoinbaseBranch, err = readHashSlice(r); err != nil {
		return err
	}
	if err := readElement(r, &ap.CoinbaseIndex); err != nil {
		return err
	}
	if ap.ChainBranch, err = readHashSlice(r); err != nil {
		return err
	}
	if err := readElement(r, &ap.ChainIndex); err != nil {
		return err
	}
	return ap.ParentHeader.Deserialize(r)
}

func writeHashSlice(w io.Writer, hashes []chainhash.Hash) error {
	if err := writeVarInt(w, uint64(len(hashes))); err != nil {
		return err
	}
	for i := range hashes {
		if err := writeElement(w, &hashes[i]); err != nil {
			return err
		}
	}
	return nil
}

func readHashSlice(r io.Reader) ([]chainhash.Hash, error) {
	count, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	if count > maxMerkleBranchLen {
		return nil, messageError("readHashSlice", "branch length %d exceeds max %d", count, maxMerkleBranchLen)
	}
	hashes := make([]chainhash.Hash, count)
	for i := range hashes {
		if err := readElement(r, &hashes[i]); err != nil {
			return nil, err
		}
	}
	return hashes, nil
}
