package mining

import (
	"testing"

	"github.com/palladium-core/plmd/auxpow"
	"github.com/palladium-core/plmd/blockindex"
	"github.com/palladium-core/plmd/chaincfg"
)

func TestSubmitAcceptsGenesis(t *testing.T) {
	params := chaincfg.RegressionNetParams
	store := blockindex.NewStore()
	seen := auxpow.NewDuplicateSet()

	verdict := Submit(params.GenesisBlock, store, &params, seen)
	if verdict != VerdictAccepted {
		t.Fatalf("expected the regtest genesis block to be accepted, got %q", verdict)
	}
	if store.LookupNode(params.GenesisBlock.BlockHash()) == nil {
		t.Fatalf("expected the genesis block to be registered in the store")
	}
}

func TestSubmitRejectsDuplicate(t *testing.T) {
	params := chaincfg.RegressionNetParams
	store := blockindex.NewStore()
	seen := auxpow.NewDuplicateSet()

	Submit(params.GenesisBlock, store, &params, seen)
	verdict := Submit(params.GenesisBlock, store, &params, seen)
	if verdict != VerdictDuplicate {
		t.Fatalf("expected a duplicate verdict on resubmission, got %q", verdict)
	}
}

func TestSubmitRejectsBadMerkleRoot(t *testing.T) {
	params := chaincfg.RegressionNetParams
	store := blockindex.NewStore()
	seen := auxpow.NewDuplicateSet()

	block := *params.GenesisBlock
	block.Header.MerkleRoot[0] ^= 0xff

	verdict := Submit(&block, store, &params, seen)
	if verdict != VerdictRejected {
		t.Fatalf("expected a rejected verdict for a bad merkle root, got %q", verdict)
	}
	if !store.IsInvalid(block.BlockHash()) {
		t.Fatalf("expected the bad block's hash to be recorded as invalid")
	}
}

func TestSubmitInconclusiveForUnknownPrevBlock(t *testing.T) {
	params := chaincfg.RegressionNetParams
	store := blockindex.NewStore()
	seen := auxpow.NewDuplicateSet()

	block := *params.GenesisBlock
	block.Header.PrevHash[0] ^= 0xff

	verdict := Submit(&block, store, &params, seen)
	if verdict != VerdictInconclusiveNotBestPrevBlk {
		t.Fatalf("expected an inconclusive verdict for an unknown previous block, got %q", verdict)
	}
}

func TestCheckProposalAcceptsWithoutConnecting(t *testing.T) {
	params := chaincfg.RegressionNetParams
	store := blockindex.NewStore()
	seen := auxpow.NewDuplicateSet()

	verdict := CheckProposal(params.GenesisBlock, store, &params, seen)
	if verdict != VerdictAccepted {
		t.Fatalf("expected the regtest genesis block to validate as a proposal, got %q", verdict)
	}
	if store.LookupNode(params.GenesisBlock.BlockHash()) != nil {
		t.Fatalf("CheckProposal must not connect the candidate to the chain index")
	}
}

func TestCheckProposalRejectsBadMerkleRootWithoutMarkingInvalid(t *testing.T) {
	params := chaincfg.RegressionNetParams
	store := blockindex.NewStore()
	seen := auxpow.NewDuplicateSet()

	block := *params.GenesisBlock
	block.Header.MerkleRoot[0] ^= 0xff

	verdict := CheckProposal(&block, store, &params, seen)
	if verdict != VerdictRejected {
		t.Fatalf("expected a rejected verdict for a bad merkle root, got %q", verdict)
	}
	if store.IsInvalid(block.BlockHash()) {
		t.Fatalf("CheckProposal must not record the candidate as invalid in the chain index")
	}
}
