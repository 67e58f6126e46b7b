// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"

	"github.com/palladium-core/plmd/chainhash"
)

// MaxTxInSequenceNum is the maximum sequence number a TxIn can have, used
// by the coinbase input.
const MaxTxInSequenceNum uint32 = 0xffffffff

// maxScriptLen bounds a single input/output script read off the wire, a
// sanity limit rather than a consensus rule enforced elsewhere.
const maxScriptLen = 10000

// OutPoint identifies the transaction output a TxIn spends.
type OutPoint struct {
	TxID  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new OutPoint referencing the given output index of
// the transaction identified by txID.
func NewOutPoint(txID *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{TxID: *txID, Index: index}
}

// String returns the OutPoint in human-readable form.
func (o OutPoint) String() string {
	return fmt.Sprintf("%s:%d", o.TxID, o.Index)
}

// TxIn defines a transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// NewTxIn returns a new transaction input with the provided previous
// outpoint and signature script, using the default MaxTxInSequenceNum.
func NewTxIn(prevOut *OutPoint, signatureScript []byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Sequence:         MaxTxInSequenceNum,
	}
}

// TxOut defines a transaction output.
type TxOut struct {
	Value    uint64
	PkScript []byte
}

// NewTxOut returns a new transaction output with the provided value and
// output script.
func NewTxOut(value uint64, pkScript []byte) *TxOut {
	return &TxOut{Value: value, PkScript: pkScript}
}

// MsgTx implements a Bitcoin-lineage transaction, enough of one to build
// and identify a coinbase transaction for AuxPoW commitment and mining
// template purposes. It deliberately carries no script-interpretation
// support.
type MsgTx struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// NewMsgTx returns a new transaction message with the given version and no
// inputs or outputs.
func NewMsgTx(version int32) *MsgTx {
	return &MsgTx{
		Version: version,
		TxIn:    make([]*TxIn, 0, 1),
		TxOut:   make([]*TxOut, 0, 1),
	}
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// IsCoinBase determines whether the transaction is a coinbase transaction:
// a single input spending a null outpoint.
func (msg *MsgTx) IsCoinBase() bool {
	if len(msg.TxIn) != 1 {
		return false
	}
	prevOut := &msg.TxIn[0].PreviousOutPoint
	return prevOut.Index == 0xffffffff && prevOut.TxID == chainhash.ZeroHash
}

// TxHash computes the double sha256 hash of the serialized transaction.
func (msg *MsgTx) TxHash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, msg.SerializeSize()))
	_ = msg.Serialize(buf)
	return chainhash.DoubleHashH(buf.Bytes())
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction.
func (msg *MsgTx) SerializeSize() int {
	n := 12 // version + input count + output count + locktime, roughly
	for _, ti := range msg.TxIn {
		n += 40 + len(ti.SignatureScript)
	}
	for _, to := range msg.TxOut {
		n += 8 + len(to.PkScript)
	}
	return n
}

// Serialize encodes the transaction to w.
func (msg *MsgTx) Serialize(w io.Writer) error {
	if err := writeElement(w, msg.Version); err != nil {
		return err
	}
	if err := writeVarInt(w, uint64(len(msg.TxIn))); err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		if err := writeElements(w, &ti.PreviousOutPoint.TxID, ti.PreviousOutPoint.Index); err != nil {
			return err
		}
		if err := writeVarBytes(w, ti.SignatureScript); err != nil {
			return err
		}
		if err := writeElement(w, ti.Sequence); err != nil {
			return err
		}
	}
	if err := writeVarInt(w, uint64(len(msg.TxOut))); err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		if err := writeElement(w, to.Value); err != nil {
			return err
		}
		if err := writeVarBytes(w, to.PkScript); err != nil {
			return err
		}
	}
	return writeElement(w, msg.LockTime)
}

// Deserialize decodes a transaction from r into the receiver.
func (msg *MsgTx) Deserialize(r io.Reader) error {
	if err := readElement(r, &msg.Version); err != nil {
		return err
	}

	inCount, err := readVarInt(r)
	if err != nil {
		return err
	}
	msg.TxIn = make([]*TxIn, inCount)
	for i := range msg.TxIn {
		ti := new(TxIn)
		if err := readElements(r, &ti.PreviousOutPoint.TxID, &ti.PreviousOutPoint.Index); err != nil {
			return err
		}
		ti.SignatureScript, err = readVarBytes(r, maxScriptLen, "TxIn.SignatureScript")
		if err != nil {
			return err
		}
		if err := readElement(r, &ti.Sequence); err != nil {
			return err
		}
		msg.TxIn[i] = ti
	}

	outCount, err := readVarInt(r)
	if err != nil {
		return err
	}
	msg.TxOut = make([]*TxOut, outCount)
	for i := range msg.TxOut {
		to := new(TxOut)
		if err := readElement(r, &to.Value); err != nil {
			return err
		}
		to.PkScript, err = readVarBytes(r, maxScriptLen, "TxOut.PkScript")
		if err != nil {
			return err
		}
		msg.TxOut[i] = to
	}

	return readElement(r, &msg.LockTime)
}
