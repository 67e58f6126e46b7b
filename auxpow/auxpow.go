package auxpow

import (
	"bytes"
	"math/big"

	"github.com/palladium-core/plmd/chainhash"
	"github.com/palladium-core/plmd/pow"
	"github.com/palladium-core/plmd/wire"
)

// MagicPrefix precedes the committed block hash in the parent-chain
// coinbase's signature script. It has no relation to any other merge-mining
// scheme's magic bytes; this chain uses its own to avoid colliding with an
// unrelated proof committed to the same parent coinbase.
var MagicPrefix = [4]byte{0x70, 0x6c, 0x6d, 0x01}

// Check verifies block's AuxPoW proof against params.powLimit, in the order
// the consensus rules require: the version bit and proof must both be
// present, the parent header's hash must satisfy this block's target, the
// parent coinbase must be proven part of the parent header's merkle tree,
// the coinbase's signature script must commit to this block's hash via
// MagicPrefix, and the parent header's hash must not have already been
// spent by another AuxPoW proof recorded in seen.
func Check(block *wire.MsgBlock, powLimit *big.Int, seen *DuplicateSet) error {
	if !block.Header.IsAuxpow() {
		return ruleError(ErrMissingAuxpowBit, "block does not have the AuxPoW version bit set")
	}
	ap := block.AuxPow
	if ap == nil {
		return ruleError(ErrMissingProof, "no AuxPoW data present in AuxPoW block")
	}

	parentHash := ap.ParentBlockHash()
	if err := pow.CheckProofOfWork(parentHash, block.Header.Bits, powLimit); err != nil {
		return ruleError(ErrParentPoW, "parent block PoW does not meet target: "+err.Error())
	}

	coinbaseHash := ap.ParentCoinbase.TxHash()
	if err := pow.CheckBranch(coinbaseHash, ap.CoinbaseBranch, ap.CoinbaseIndex, ap.ParentHeader.MerkleRoot); err != nil {
		return ruleError(ErrCoinbaseBranch, "coinbase merkle branch verification failed: "+err.Error())
	}

	commitment, err := ExtractCommitment(ap.ParentCoinbase)
	if err != nil {
		return err
	}

	expected := ExpectedCommitHash(&block.Header)
	if commitment != expected {
		return ruleError(ErrCommitmentMismatch, "AuxPoW commitment does not match this block's hash")
	}

	if seen != nil && seen.Contains(parentHash) {
		return ruleError(ErrDuplicateParentHash, "duplicate proof-of-work parent block hash")
	}

	log.Debugf("accepted AuxPoW proof with parent block hash %s", parentHash)
	return nil
}

// ExpectedCommitHash returns the hash a valid AuxPoW proof must commit to:
// this block's header hashed with the AuxPoW version bit cleared, since the
// committed hash identifies the block independent of whether it happens to
// be merge-mined.
func ExpectedCommitHash(header *wire.BlockHeader) chainhash.Hash {
	headerNoAux := *header
	headerNoAux.Version &^= wire.AuxpowVersionBit
	return headerNoAux.BlockHash()
}

// ExtractCommitment locates MagicPrefix in the coinbase transaction's first
// input's signature script and returns the 32-byte hash that follows it,
// byte-reversed to match this chain's big-endian display convention (the
// commitment is written into the scriptSig in the same reversed-byte order
// a miner's string-serialized block hash would use).
func ExtractCommitment(coinbase wire.MsgTx) (chainhash.Hash, error) {
	var zero chainhash.Hash
	if len(coinbase.TxIn) == 0 {
		return zero, ruleError(ErrMagicNotFound, "coinbase transaction has no inputs")
	}
	scriptSig := coinbase.TxIn[0].SignatureScript

	idx := bytes.Index(scriptSig, MagicPrefix[:])
	if idx == -1 {
		return zero, ruleError(ErrMagicNotFound, "AuxPoW magic bytes not found in coinbase scriptSig")
	}

	commitmentStart := idx + len(MagicPrefix)
	if len(scriptSig)-commitmentStart < chainhash.HashSize {
		return zero, ruleError(ErrCommitmentTooShort, "commitment data too short in coinbase scriptSig")
	}

	raw := scriptSig[commitmentStart : commitmentStart+chainhash.HashSize]
	var reversed [chainhash.HashSize]byte
	for i, b := range raw {
		reversed[chainhash.HashSize-1-i] = b
	}
	return chainhash.Hash(reversed), nil
}

// BuildCommitment constructs the bytes a merge-mining coinbase's signature
// script must contain to commit to the given block hash: MagicPrefix
// followed by the hash, byte-reversed.
func BuildCommitment(blockHash chainhash.Hash) []byte {
	out := make([]byte, 0, len(MagicPrefix)+chainhash.HashSize)
	out = append(out, MagicPrefix[:]...)
	for i := chainhash.HashSize - 1; i >= 0; i-- {
		out = append(out, blockHash[i])
	}
	return out
}
