package pow

import (
	"testing"

	"github.com/palladium-core/plmd/chainhash"
)

func TestTxListRootSingleLeaf(t *testing.T) {
	leaf := chainhash.HashH([]byte("only tx"))
	root := TxListRoot([]chainhash.Hash{leaf})
	if root != leaf {
		t.Fatalf("single-leaf root should equal the leaf itself, got %v want %v", root, leaf)
	}
}

func TestTxListRootOddDuplicatesLast(t *testing.T) {
	a := chainhash.HashH([]byte("a"))
	b := chainhash.HashH([]byte("b"))
	c := chainhash.HashH([]byte("c"))

	got := TxListRoot([]chainhash.Hash{a, b, c})
	want := TxListRoot([]chainhash.Hash{a, b, c, c})
	if got != want {
		t.Fatalf("odd-length root should duplicate the last leaf, got %v want %v", got, want)
	}
}

func TestBranchRootMatchesTxListRoot(t *testing.T) {
	leaves := []chainhash.Hash{
		chainhash.HashH([]byte("tx0")),
		chainhash.HashH([]byte("tx1")),
		chainhash.HashH([]byte("tx2")),
		chainhash.HashH([]byte("tx3")),
	}
	root := TxListRoot(leaves)

	// Manually build the branch for leaf index 2: level0 sibling is leaf 3,
	// level1 sibling is the hash of (leaf0 || leaf1).
	var buf [chainhash.HashSize * 2]byte
	copy(buf[:chainhash.HashSize], leaves[0][:])
	copy(buf[chainhash.HashSize:], leaves[1][:])
	level1Sibling := chainhash.DoubleHashH(buf[:])

	branch := []chainhash.Hash{leaves[3], level1Sibling}
	got := BranchRoot(leaves[2], branch, 2)
	if got != root {
		t.Fatalf("BranchRoot disagreed with TxListRoot: got %v want %v", got, root)
	}

	if err := CheckBranch(leaves[2], branch, 2, root); err != nil {
		t.Fatalf("CheckBranch returned unexpected error: %v", err)
	}

	wrongRoot := chainhash.HashH([]byte("wrong"))
	if err := CheckBranch(leaves[2], branch, 2, wrongRoot); err == nil {
		t.Fatalf("CheckBranch should have failed against an unrelated root")
	}
}
