package mining

import (
	"github.com/palladium-core/plmd/auxpow"
	"github.com/palladium-core/plmd/blockindex"
	"github.com/palladium-core/plmd/chaincfg"
	"github.com/palladium-core/plmd/chainhash"
	"github.com/palladium-core/plmd/validate"
	"github.com/palladium-core/plmd/wire"
)

// Submit validates block against store and params and applies it, returning
// the BIP22 verdict string: VerdictAccepted on success, or one of the
// rejection/duplicate verdicts otherwise. seen records AuxPoW parent block
// hashes already spent by an accepted block, to enforce the duplicate
// parent check across submissions.
func Submit(block *wire.MsgBlock, store *blockindex.Store, params *chaincfg.Params, seen *auxpow.DuplicateSet) Verdict {
	hash := block.BlockHash()

	verdict, prevNode := classifyBlock(block, store, params)
	if verdict != VerdictAccepted {
		return verdict
	}

	if err := validate.CheckBlockHeader(block, prevNode, params, seen); err != nil {
		log.Warnf("rejecting submitted block %s: %s", hash, err)
		store.MarkInvalid(hash)
		return VerdictRejected
	}

	node := blockindex.NewNode(&block.Header, prevNode)
	store.AddNode(node)
	if block.Header.IsAuxpow() {
		seen.Add(block.AuxPow.ParentBlockHash())
	}

	log.Infof("accepted block %s at height %d", hash, node.Height())
	return VerdictAccepted
}

// CheckProposal validates block as a getblocktemplate "proposal" candidate,
// returning the same verdict taxonomy as Submit but never mutating store:
// a miner can test whether a candidate block would be accepted without
// actually connecting it.
func CheckProposal(block *wire.MsgBlock, store *blockindex.Store, params *chaincfg.Params, seen *auxpow.DuplicateSet) Verdict {
	hash := block.BlockHash()

	verdict, prevNode := classifyBlock(block, store, params)
	if verdict != VerdictAccepted {
		return verdict
	}

	if err := validate.CheckBlockHeader(block, prevNode, params, seen); err != nil {
		log.Debugf("proposal %s rejected: %s", hash, err)
		return VerdictRejected
	}

	return VerdictAccepted
}

// classifyBlock runs the checks common to Submit and CheckProposal that
// never require mutating the chain index: the duplicate/invalid lookup,
// previous-block resolution, and the AuxPoW/coinbase presence cross-checks.
// A non-accepted verdict means the caller should return it immediately
// without running full header validation. prevNode is only meaningful when
// the returned verdict is VerdictAccepted.
func classifyBlock(block *wire.MsgBlock, store *blockindex.Store, params *chaincfg.Params) (Verdict, *blockindex.Node) {
	hash := block.BlockHash()

	if store.IsInvalid(hash) {
		return VerdictDuplicateInvalid, nil
	}
	if store.LookupNode(hash) != nil {
		return VerdictDuplicate, nil
	}

	var prevNode *blockindex.Node
	height := int32(0)
	if block.Header.PrevHash != chainhash.ZeroHash {
		// Any block other than genesis must resolve to a known previous
		// node; an unknown one means we can't yet tell whether this
		// would extend the best chain.
		prevNode = store.LookupNode(block.Header.PrevHash)
		if prevNode == nil {
			return VerdictInconclusiveNotBestPrevBlk, nil
		}
		height = prevNode.Height() + 1
	}

	shouldHaveAuxpow := height >= params.AuxpowStartHeight
	hasAuxpow := block.Header.IsAuxpow()
	if shouldHaveAuxpow && !hasAuxpow {
		return VerdictBadAuxpowVersionMissing, nil
	}
	if !shouldHaveAuxpow && hasAuxpow {
		return VerdictBadAuxpowUnexpected, nil
	}
	if shouldHaveAuxpow && block.AuxPow == nil {
		return VerdictBadAuxpowDataMissing, nil
	}

	if len(block.Transactions) == 0 || !block.Transactions[0].IsCoinBase() {
		return VerdictBadCoinbaseMissing, nil
	}

	return VerdictAccepted, prevNode
}
