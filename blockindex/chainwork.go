package blockindex

import (
	"math/big"

	"github.com/palladium-core/plmd/pow"
)

// chainWork is the cumulative proof-of-work a node's chain represents, used
// to pick the best chain among competing tips independent of height (an
// AuxPoW block and a directly-mined block at the same height do not
// necessarily represent equal work).
type chainWork struct {
	total *big.Int
}

var oneLsh256 = new(big.Int).Lsh(big.NewInt(1), 256)

// blockWork returns the work a single block of the given compact difficulty
// represents: 2^256 / (target+1), the same quantity CalcWork computes in
// btcd-lineage code.
func blockWork(bits uint32) *big.Int {
	target := pow.CompactToBig(bits)
	if target.Sign() <= 0 {
		return big.NewInt(0)
	}
	denominator := new(big.Int).Add(target, big.NewInt(1))
	return new(big.Int).Div(oneLsh256, denominator)
}

func parentChainWork(parent *Node) *big.Int {
	if parent == nil {
		return big.NewInt(0)
	}
	return parent.chainWork.total
}

func addWork(parentTotal *big.Int, bits uint32) *chainWork {
	return &chainWork{total: new(big.Int).Add(parentTotal, blockWork(bits))}
}

// ChainWork returns the node's cumulative chain work.
func (node *Node) ChainWork() *big.Int {
	return new(big.Int).Set(node.chainWork.total)
}

// MoreWorkThan reports whether node's chain represents strictly more
// cumulative work than other's.
func (node *Node) MoreWorkThan(other *Node) bool {
	if other == nil {
		return true
	}
	return node.chainWork.total.Cmp(other.chainWork.total) > 0
}
