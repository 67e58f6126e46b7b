// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/palladium-core/plmd/chainhash"
)

func TestTx(t *testing.T) {
	txID := chainhash.HashH([]byte("prevtx"))

	prevOutIndex := uint32(1)
	prevOut := NewOutPoint(&txID, prevOutIndex)
	if prevOut.TxID != txID {
		t.Errorf("NewOutPoint: wrong ID - got %v, want %v", prevOut.TxID, txID)
	}
	if prevOut.Index != prevOutIndex {
		t.Errorf("NewOutPoint: wrong index - got %v, want %v", prevOut.Index, prevOutIndex)
	}

	sigScript := []byte{0x04, 0x31, 0xdc, 0x00, 0x1b, 0x01, 0x62}
	txIn := NewTxIn(prevOut, sigScript)
	if txIn.PreviousOutPoint != *prevOut {
		t.Errorf("NewTxIn: wrong prev outpoint")
	}
	if !bytes.Equal(txIn.SignatureScript, sigScript) {
		t.Errorf("NewTxIn: wrong signature script")
	}

	txValue := uint64(5000000000)
	pkScript := []byte{0x41, 0x04, 0xd6, 0xac}
	txOut := NewTxOut(txValue, pkScript)
	if txOut.Value != txValue {
		t.Errorf("NewTxOut: wrong value - got %v, want %v", txOut.Value, txValue)
	}

	msg := NewMsgTx(1)
	msg.AddTxIn(txIn)
	msg.AddTxOut(txOut)
	if len(msg.TxIn) != 1 || len(msg.TxOut) != 1 {
		t.Fatalf("AddTxIn/AddTxOut: wrong input/output counts")
	}
}

func TestTxSerializeRoundTrip(t *testing.T) {
	txID := chainhash.HashH([]byte("coinbase-input"))
	msg := NewMsgTx(1)
	msg.AddTxIn(NewTxIn(NewOutPoint(&txID, 0xffffffff), []byte{0x01, 0x02, 0x03}))
	msg.AddTxOut(NewTxOut(5000000000, []byte{0x76, 0xa9}))

	var buf bytes.Buffer
	if err := msg.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	var got MsgTx
	if err := got.Deserialize(&buf); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	if got.Version != msg.Version || len(got.TxIn) != 1 || len(got.TxOut) != 1 {
		t.Fatalf("round trip mismatch:\ngot:  %s\nwant: %s", spew.Sdump(got), spew.Sdump(msg))
	}
	if got.TxOut[0].Value != msg.TxOut[0].Value {
		t.Fatalf("output value mismatch: got %d want %d", got.TxOut[0].Value, msg.TxOut[0].Value)
	}
}

func TestIsCoinBase(t *testing.T) {
	coinbase := NewMsgTx(1)
	coinbase.AddTxIn(NewTxIn(NewOutPoint(&chainhash.ZeroHash, 0xffffffff), []byte{0x00}))
	if !coinbase.IsCoinBase() {
		t.Fatalf("transaction with a null outpoint should be a coinbase")
	}

	txID := chainhash.HashH([]byte("some tx"))
	regular := NewMsgTx(1)
	regular.AddTxIn(NewTxIn(NewOutPoint(&txID, 0), []byte{0x00}))
	if regular.IsCoinBase() {
		t.Fatalf("transaction spending a real outpoint should not be a coinbase")
	}
}
