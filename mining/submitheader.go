package mining

import (
	"github.com/pkg/errors"

	"github.com/palladium-core/plmd/blockindex"
	"github.com/palladium-core/plmd/chaincfg"
	"github.com/palladium-core/plmd/chainhash"
	"github.com/palladium-core/plmd/validate"
	"github.com/palladium-core/plmd/wire"
)

// ErrSubmitHeaderIncompatibleWithAuxpow is returned by SubmitHeader when the
// header's would-be height is at or above params.AuxpowStartHeight. A bare
// header can never carry the AuxPoW proof consensus requires there, so the
// request itself is invalid rather than merely rejected.
var ErrSubmitHeaderIncompatibleWithAuxpow = errors.New("submitheader is incompatible with active AuxPoW")

// SubmitHeader validates header as a candidate chain tip without a full
// block body, connecting it on success. It is valid only for heights
// strictly below params.AuxpowStartHeight; at or above that height it
// returns ErrSubmitHeaderIncompatibleWithAuxpow instead of a verdict.
func SubmitHeader(header *wire.BlockHeader, store *blockindex.Store, params *chaincfg.Params) (Verdict, error) {
	hash := header.BlockHash()

	var prevNode *blockindex.Node
	height := int32(0)
	if header.PrevHash != chainhash.ZeroHash {
		prevNode = store.LookupNode(header.PrevHash)
		if prevNode == nil {
			return VerdictInconclusiveNotBestPrevBlk, nil
		}
		height = prevNode.Height() + 1
	}

	if height >= params.AuxpowStartHeight {
		return "", ErrSubmitHeaderIncompatibleWithAuxpow
	}

	if store.IsInvalid(hash) {
		return VerdictDuplicateInconclusive, nil
	}
	if store.LookupNode(hash) != nil {
		return VerdictDuplicate, nil
	}

	if err := validate.CheckHeader(header, prevNode, params, nil); err != nil {
		log.Warnf("rejecting submitted header %s: %s", hash, err)
		store.MarkInvalid(hash)
		return VerdictRejected, nil
	}

	node := blockindex.NewNode(header, prevNode)
	store.AddNode(node)

	log.Infof("accepted header %s at height %d", hash, node.Height())
	return VerdictAccepted, nil
}
