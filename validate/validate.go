// Package validate orchestrates per-block consensus checks: the AuxPoW
// activation invariant, the retarget engine's expected difficulty, the
// transaction merkle root, and the proof of work itself (either the
// block's own hash or, once AuxPoW is active, its parent-chain proof).
package validate

import (
	"github.com/palladium-core/plmd/auxpow"
	"github.com/palladium-core/plmd/blockindex"
	"github.com/palladium-core/plmd/chaincfg"
	"github.com/palladium-core/plmd/pow"
	"github.com/palladium-core/plmd/wire"
)

// CheckBlockHeader validates block against the chain built on prevNode,
// using params for all network-specific thresholds and seen to reject
// AuxPoW proofs that reuse an already-spent parent block hash. prevNode may
// be nil only when block is the genesis block.
func CheckBlockHeader(block *wire.MsgBlock, prevNode *blockindex.Node, params *chaincfg.Params, seen *auxpow.DuplicateSet) error {
	height := headerHeight(prevNode)

	if err := checkHeaderCommon(block, height, prevNode, params); err != nil {
		return err
	}

	if err := checkMerkleRoot(block); err != nil {
		return err
	}

	if err := checkProofOfWork(block, params, seen); err != nil {
		return err
	}

	log.Debugf("block %s at height %d passed header validation", block.Header.BlockHash(), height)
	return nil
}

// CheckHeader validates a bare header against the chain built on prevNode,
// without the Merkle root check: a header carries no transaction list to
// check it against. Used by header-only submission, which is only valid
// below the AuxPoW activation height.
func CheckHeader(header *wire.BlockHeader, prevNode *blockindex.Node, params *chaincfg.Params, seen *auxpow.DuplicateSet) error {
	height := headerHeight(prevNode)
	block := wire.NewMsgBlock(header)

	if err := checkHeaderCommon(block, height, prevNode, params); err != nil {
		return err
	}

	if err := checkProofOfWork(block, params, seen); err != nil {
		return err
	}

	log.Debugf("header %s at height %d passed header-only validation", header.BlockHash(), height)
	return nil
}

func headerHeight(prevNode *blockindex.Node) int32 {
	if prevNode == nil {
		return 0
	}
	return prevNode.Height() + 1
}

// checkHeaderCommon runs the checks shared by a full block and a bare
// header: the AuxPoW activation invariant and the expected difficulty.
func checkHeaderCommon(block *wire.MsgBlock, height int32, prevNode *blockindex.Node, params *chaincfg.Params) error {
	if err := checkAuxpowActivation(block, height, params); err != nil {
		return err
	}
	return checkDifficulty(block, prevNode, params)
}

// checkAuxpowActivation enforces that the AuxPoW version bit is set if and
// only if height is at or above params.AuxpowStartHeight.
func checkAuxpowActivation(block *wire.MsgBlock, height int32, params *chaincfg.Params) error {
	isAuxpow := block.Header.IsAuxpow()
	mustBeAuxpow := height >= params.AuxpowStartHeight

	if mustBeAuxpow && !isAuxpow {
		return ruleError(ErrAuxpowRequired, "block at or above the AuxPoW activation height must set the AuxPoW version bit")
	}
	if !mustBeAuxpow && isAuxpow {
		return ruleError(ErrAuxpowNotAllowed, "block below the AuxPoW activation height must not set the AuxPoW version bit")
	}
	return nil
}

// checkDifficulty verifies the header's bits equal what the retarget
// engine requires for a block built on prevNode.
func checkDifficulty(block *wire.MsgBlock, prevNode *blockindex.Node, params *chaincfg.Params) error {
	expected := params.PowLimitBits
	if prevNode != nil {
		expected = pow.NextWorkRequired(prevNode.AsHeaderAccessor(), block.Header.Timestamp.Unix(), params.DifficultyParams())
	}
	if block.Header.Bits != expected {
		return ruleError(ErrUnexpectedDifficulty, "block bits do not match the value the retarget engine requires")
	}
	return nil
}

// checkMerkleRoot verifies the header's merkle root matches the block's
// actual transaction list.
func checkMerkleRoot(block *wire.MsgBlock) error {
	root := pow.TxListRoot(block.TxHashes())
	if root != block.Header.MerkleRoot {
		return ruleError(ErrBadMerkleRoot, "block's transaction list does not match its merkle root")
	}
	return nil
}

// checkProofOfWork dispatches to the AuxPoW verifier when the block is
// merge-mined, or checks the block's own hash against its target otherwise.
func checkProofOfWork(block *wire.MsgBlock, params *chaincfg.Params, seen *auxpow.DuplicateSet) error {
	if block.Header.IsAuxpow() {
		return auxpow.Check(block, params.PowLimit, seen)
	}

	if err := pow.CheckProofOfWork(block.BlockHash(), block.Header.Bits, params.PowLimit); err != nil {
		return ruleError(ErrHighHash, err.Error())
	}
	return nil
}
