// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/palladium-core/plmd/chainhash"
)

// maxTxPerBlock is a sanity limit on the number of transactions a decoded
// block may carry, independent of any block-weight consensus rule.
const maxTxPerBlock = 1000000

// MsgBlock implements a block message: a header, its transactions, and,
// when Header.IsAuxpow() is set, the merge-mining proof that header's
// difficulty was met on a parent chain instead of directly.
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*MsgTx
	AuxPow       *AuxPow
}

// NewMsgBlock returns a new block message with the given header and no
// transactions or AuxPoW proof.
func NewMsgBlock(header *BlockHeader) *MsgBlock {
	return &MsgBlock{
		Header:       *header,
		Transactions: make([]*MsgTx, 0),
	}
}

// AddTransaction adds a transaction to the message.
func (msg *MsgBlock) AddTransaction(tx *MsgTx) {
	msg.Transactions = append(msg.Transactions, tx)
}

// BlockHash returns the block identifier hash of the message's header.
func (msg *MsgBlock) BlockHash() chainhash.Hash {
	return msg.Header.BlockHash()
}

// TxHashes returns the hashes of all transactions in the block, in order.
func (msg *MsgBlock) TxHashes() []chainhash.Hash {
	hashes := make([]chainhash.Hash, len(msg.Transactions))
	for i, tx := range msg.Transactions {
		hashes[i] = tx.TxHash()
	}
	return hashes
}

// Serialize encodes the block to w. When the header's AuxPoW bit is set,
// the AuxPoW proof is written immediately after the header and before the
// transaction list, mirroring the original chain's on-disk block layout.
func (msg *MsgBlock) Serialize(w io.Writer) error {
	if err := msg.Header.Serialize(w); err != nil {
		return err
	}

	if msg.Header.IsAuxpow() {
		if msg.AuxPow == nil {
			return messageError("MsgBlock.Serialize", "header sets the AuxPoW bit but AuxPow is nil")
		}
		if err := msg.AuxPow.Serialize(w); err != nil {
			return err
		}
	}

	if err := writeVarInt(w, uint64(len(msg.Transactions))); err != nil {
		return err
	}
	for _, tx := range msg.Transactions {
		if err := tx.Serialize(w); err != nil {
			return err
		}
	}
	return nil
}

// Deserialize decodes a block from r into the receiver.
func (msg *MsgBlock) Deserialize(r io.Reader) error {
	if err := msg.Header.Deserialize(r); err != nil {
		return err
	}

	if msg.Header.IsAuxpow() {
		msg.AuxPow = new(AuxPow)
		if err := msg.AuxPow.Deserialize(r); err != nil {
			return err
		}
		if msg.AuxPow.ParentHeader.PrevHash == chainhash.ZeroHash {
			return messageError("MsgBlock.Deserialize", "AuxPoW parent header has a null prev-hash")
		}
	}

	count, err := readVarInt(r)
	if err != nil {
		return err
	}
	if count > maxTxPerBlock {
		return messageError("MsgBlock.Deserialize", "too many transactions to fit into a block %d", count)
	}

	msg.Transactions = make([]*MsgTx, count)
	for i := range msg.Transactions {
		tx := new(MsgTx)
		if err := tx.Deserialize(r); err != nil {
			return err
		}
		msg.Transactions[i] = tx
	}
	return nil
}
