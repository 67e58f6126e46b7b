package mining

import (
	"testing"

	"github.com/btcsuite/btcutil"

	"github.com/palladium-core/plmd/chaincfg"
	"github.com/palladium-core/plmd/chainhash"
	"github.com/palladium-core/plmd/wire"
)

func coinbaseTx() *wire.MsgTx {
	tx := wire.NewMsgTx(1)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{}, 0xffffffff), []byte{0x51}))
	tx.AddTxOut(wire.NewTxOut(5000000000, []byte{0x51}))
	return tx
}

func TestNewTemplateGenesis(t *testing.T) {
	params := chaincfg.RegressionNetParams
	tmpl := NewTemplate(nil, &params, []*wire.MsgTx{coinbaseTx()}, btcutil.Amount(5000000000), 1296688602, 0)

	if tmpl.Height != 0 {
		t.Fatalf("expected genesis height 0, got %d", tmpl.Height)
	}
	if tmpl.Bits != params.PowLimitBits {
		t.Fatalf("expected genesis bits to equal powLimitBits")
	}
	if tmpl.Aux != nil {
		t.Fatalf("regtest's default AuxpowStartHeight should not trigger at height 0")
	}
}

func TestTemplateBlockMerkleRootMatchesTransactions(t *testing.T) {
	params := chaincfg.RegressionNetParams
	tmpl := NewTemplate(nil, &params, []*wire.MsgTx{coinbaseTx()}, btcutil.Amount(5000000000), 1296688602, 0)

	block := tmpl.Block()
	if len(block.Transactions) != 1 {
		t.Fatalf("expected one transaction in the assembled block")
	}
	if block.Header.MerkleRoot != block.Transactions[0].TxHash() {
		t.Fatalf("single-transaction block's merkle root should equal that transaction's hash")
	}
}
