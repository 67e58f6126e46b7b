package chaincfg

import (
	"math"
	"time"

	"github.com/palladium-core/plmd/chainhash"
	"github.com/palladium-core/plmd/pow"
	"github.com/palladium-core/plmd/wire"
)

// genesisCoinbaseTx is the coinbase transaction shared by the genesis block
// of every network: the same scriptSig and payout script the Bitcoin
// genesis block carries, inherited unchanged since this chain forked
// before any network-specific genesis data was minted.
var genesisCoinbaseTx = wire.MsgTx{
	Version: 1,
	TxIn: []*wire.TxIn{
		{
			PreviousOutPoint: wire.OutPoint{
				TxID:  chainhash.ZeroHash,
				Index: 0xffffffff,
			},
			SignatureScript: []byte{
				0x04, 0xff, 0xff, 0x00, 0x1d, 0x01, 0x04, 0x45,
				0x54, 0x68, 0x65, 0x20, 0x54, 0x69, 0x6d, 0x65,
				0x73, 0x20, 0x30, 0x33, 0x2f, 0x4a, 0x61, 0x6e,
				0x2f, 0x32, 0x30, 0x30, 0x39, 0x20, 0x43, 0x68,
				0x61, 0x6e, 0x63, 0x65, 0x6c, 0x6c, 0x6f, 0x72,
				0x20, 0x6f, 0x6e, 0x20, 0x62, 0x72, 0x69, 0x6e,
				0x6b, 0x20, 0x6f, 0x66, 0x20, 0x73, 0x65, 0x63,
				0x6f, 0x6e, 0x64, 0x20, 0x62, 0x61, 0x69, 0x6c,
				0x6f, 0x75, 0x74, 0x20, 0x66, 0x6f, 0x72, 0x20,
				0x62, 0x61, 0x6e, 0x6b, 0x73,
			},
			Sequence: math.MaxUint32,
		},
	},
	TxOut: []*wire.TxOut{
		{
			Value: 0x12a05f200,
			PkScript: []byte{
				0x41, 0x04, 0x67, 0x8a, 0xfd, 0xb0, 0xfe, 0x55,
				0x48, 0x27, 0x19, 0x67, 0xf1, 0xa6, 0x71, 0x30,
				0xb7, 0x10, 0x5c, 0xd6, 0xa8, 0x28, 0xe0, 0x39,
				0x09, 0xa6, 0x79, 0x62, 0xe0, 0xea, 0x1f, 0x61,
				0xde, 0xb6, 0x49, 0xf6, 0xbc, 0x3f, 0x4c, 0xef,
				0x38, 0xc4, 0xf3, 0x55, 0x04, 0xe5, 0x1e, 0xc1,
				0x12, 0xde, 0x5c, 0x38, 0x4d, 0xf7, 0xba, 0x0b,
				0x8d, 0x57, 0x8a, 0x4c, 0x70, 0x2b, 0x6b, 0xf1,
				0x1d, 0x5f, 0xac,
			},
		},
	},
	LockTime: 0,
}

// genesisMerkleRootStr is the Merkle root of the single-coinbase genesis
// block, identical on every network since genesisCoinbaseTx is shared.
const genesisMerkleRootStr = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"

// Expected genesis block hashes, asserted against the constructed block on
// every network at init time. A mismatch here means the coinbase, nonce,
// bits, or timestamp above no longer produce the chain's actual genesis
// block, and the process must not start.
const (
	mainNetGenesisHashStr       = "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"
	testNetGenesisHashStr       = "000000000933ea01ad0ee984209779baaec3ced90fa3f408719526f8d77f4943"
	regressionNetGenesisHashStr = "0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206"
)

// newGenesisBlock builds a genesis block from the parameters Bitcoin-lineage
// chains vary per network: the block time, nonce, and compact target. The
// coinbase transaction and its embedded message are the same across every
// network this chain defines. wantHash is asserted against the resulting
// block hash, mirroring Bitcoin Core's assert(consensus.hashGenesisBlock ==
// uint256S(...)) check in its chain params constructor: a mismatch is a
// fatal configuration error, not something to validate at runtime.
func newGenesisBlock(blockTime time.Time, nonce uint32, bits uint32, wantHash string) *wire.MsgBlock {
	coinbase := genesisCoinbaseTx
	merkleRoot := pow.TxListRoot([]chainhash.Hash{coinbase.TxHash()})
	if merkleRoot != mustHashFromStr(genesisMerkleRootStr) {
		panic("genesis merkle root mismatch: coinbase transaction does not match the expected constant")
	}

	header := wire.NewBlockHeader(1, chainhash.ZeroHash, merkleRoot, bits, nonce)
	header.Timestamp = blockTime

	block := wire.NewMsgBlock(header)
	block.AddTransaction(&coinbase)

	if block.BlockHash() != mustHashFromStr(wantHash) {
		panic("genesis block hash mismatch: constructed genesis block does not match the expected constant")
	}
	return block
}

// mainNetGenesisBlock is the genesis block for the main network, using the
// same timestamp, nonce, and bits as the Bitcoin genesis block this chain
// was forked from.
var mainNetGenesisBlock = newGenesisBlock(time.Unix(1231006505, 0), 2083236893, 0x1d00ffff, mainNetGenesisHashStr)

// testNetGenesisBlock is the genesis block for the test network.
var testNetGenesisBlock = newGenesisBlock(time.Unix(1296688602, 0), 414098458, 0x1d00ffff, testNetGenesisHashStr)

// regressionNetGenesisBlock is the genesis block for the regression test
// network, mined instantly against the loosest possible target.
var regressionNetGenesisBlock = newGenesisBlock(time.Unix(1296688602, 0), 2, 0x207fffff, regressionNetGenesisHashStr)
