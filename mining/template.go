// Package mining implements the BIP22-shaped block template and submission
// contract: building a candidate block for a miner to solve (NewTemplate),
// checking a candidate without connecting it (CheckProposal, getblocktemplate's
// "proposal" mode), and validating a solved block or bare header back into
// the chain (Submit, SubmitHeader) with the BIP22 verdict taxonomy.
package mining

import (
	"math/big"
	"strconv"

	"github.com/btcsuite/btcutil"

	"github.com/palladium-core/plmd/auxpow"
	"github.com/palladium-core/plmd/blockindex"
	"github.com/palladium-core/plmd/chaincfg"
	"github.com/palladium-core/plmd/chainhash"
	"github.com/palladium-core/plmd/pow"
	"github.com/palladium-core/plmd/wire"
)

// auxChainID is the integer form of auxpow.MagicPrefix, reported in the
// template's aux.chainid field for merge-mining pools.
const auxChainID = 0x706C6D01

// AuxTemplate carries the fields a merge-mining pool needs once AuxPoW is
// active: the chain id to embed in its own getauxblock response and the
// magic prefix bytes that precede the block hash commitment.
type AuxTemplate struct {
	ChainID     uint32
	MagicPrefix [4]byte
}

// Template is a candidate block a miner can solve: everything required to
// compute a header hash and, on success, resubmit a full block.
type Template struct {
	PreviousBlockHash chainhash.Hash
	Height            int32
	Version           int32
	Bits              uint32
	CurTime           int64
	MinTime           int64
	Transactions      []*wire.MsgTx
	CoinbaseValue     btcutil.Amount
	Target            *big.Int
	Mutable           []string
	Aux               *AuxTemplate
	SubmitOld         bool
	LongPollID        string
}

// NewTemplate builds a Template for a block extending tip (nil only for
// the genesis block), with the given already-assembled transaction list
// (transactions[0] must be the coinbase) and coinbase output value.
// txUpdateCounter is folded into LongPollID so a long-poll waiter can
// detect a mempool change even when the tip hash hasn't moved.
//
// A miner normally solves the returned Template and resubmits it through
// Submit. A pool wanting to sanity-check a candidate block it did not
// build from NewTemplate (getblocktemplate's "proposal" mode) uses
// CheckProposal instead, which runs the same validation without
// connecting the block to the chain index.
func NewTemplate(tip *blockindex.Node, params *chaincfg.Params, transactions []*wire.MsgTx,
	coinbaseValue btcutil.Amount, curTime int64, txUpdateCounter uint64) *Template {

	height := int32(0)
	prevHash := chainhash.Hash{}
	minTime := int64(0)
	bits := params.PowLimitBits

	if tip != nil {
		height = tip.Height() + 1
		prevHash = tip.Hash()
		minTime = tip.MedianTimePast() + 1
		if curTime < minTime {
			curTime = minTime
		}
		bits = pow.NextWorkRequired(tip.AsHeaderAccessor(), curTime, params.DifficultyParams())
	}

	version := int32(1)
	var aux *AuxTemplate
	if height >= params.AuxpowStartHeight {
		version |= wire.AuxpowVersionBit
		aux = &AuxTemplate{ChainID: auxChainID, MagicPrefix: auxpow.MagicPrefix}
	}

	tmpl := &Template{
		PreviousBlockHash: prevHash,
		Height:            height,
		Version:           version,
		Bits:              bits,
		CurTime:           curTime,
		MinTime:           minTime,
		Transactions:      transactions,
		CoinbaseValue:     coinbaseValue,
		Target:            pow.CompactToBig(bits),
		Mutable:           []string{"time", "transactions", "prevblock"},
		Aux:               aux,
		SubmitOld:         false,
		LongPollID:        longPollID(prevHash, txUpdateCounter),
	}
	return tmpl
}

// Block assembles the template into a full, unsolved block header: the
// miner fills in the nonce (and, for AuxPoW, the proof) and submits it back
// through Submit.
func (tmpl *Template) Block() *wire.MsgBlock {
	block := wire.NewMsgBlock(wire.NewBlockHeader(tmpl.Version, tmpl.PreviousBlockHash,
		chainhash.Hash{}, tmpl.Bits, 0))
	for _, tx := range tmpl.Transactions {
		block.AddTransaction(tx)
	}
	block.Header.MerkleRoot = pow.TxListRoot(block.TxHashes())
	return block
}

func longPollID(tipHash chainhash.Hash, txUpdateCounter uint64) string {
	return tipHash.String() + strconv.FormatUint(txUpdateCounter, 10)
}
