package blockindex

import (
	"time"

	"github.com/palladium-core/plmd/chainhash"
	"github.com/palladium-core/plmd/wire"
)

// Node is a node in the best-chain index: a single-parent linked list, one
// entry per connected block header. Unlike a DAG block node it has exactly
// one parent, so ancestor lookups use a height-indexed skip list instead of
// walking a selected-parent chain one block at a time.
type Node struct {
	parent *Node
	skip   *Node

	hash      chainhash.Hash
	height    int32
	version   int32
	bits      uint32
	timestamp int64
	chainWork *chainWork
}

// NewNode builds a chain-index node for header, linked to parent. parent
// may be nil only for the genesis node.
func NewNode(header *wire.BlockHeader, parent *Node) *Node {
	node := &Node{
		parent:    parent,
		hash:      header.BlockHash(),
		version:   header.Version,
		bits:      header.Bits,
		timestamp: header.Timestamp.Unix(),
	}
	if parent != nil {
		node.height = parent.height + 1
		node.skip = parent.Ancestor(skipHeight(node.height))
	}
	node.chainWork = addWork(parentChainWork(parent), node.bits)
	log.Tracef("linked node %s at height %d", node.hash, node.height)
	return node
}

// Hash returns the node's block hash.
func (node *Node) Hash() chainhash.Hash { return node.hash }

// Height returns the node's height, the genesis node being height 0.
func (node *Node) Height() int32 { return node.height }

// Bits returns the node's compact-encoded target.
func (node *Node) Bits() uint32 { return node.bits }

// Timestamp returns the node's block time as a unix timestamp.
func (node *Node) Timestamp() int64 { return node.timestamp }

// Version returns the node's header version, including the AuxPoW bit.
func (node *Node) Version() int32 { return node.version }

// Parent returns the node's single parent, or nil for the genesis node.
func (node *Node) Parent() *Node { return node.parent }

// Time returns the node's block time as a time.Time.
func (node *Node) Time() time.Time { return time.Unix(node.timestamp, 0) }

// Ancestor returns the ancestor at the given height by walking the skip
// list, amortizing to O(log n) instead of the O(n) walk a plain
// parent-pointer chain would require. It returns nil if height is out of
// range.
func (node *Node) Ancestor(height int32) *Node {
	if height < 0 || height > node.height {
		return nil
	}

	walk := node
	for walk.height > height {
		skipHeight := skipHeight(walk.height)
		skipHeightPrev := skipHeight2(walk.height - 1)
		if walk.skip != nil && (skipHeight == height ||
			(skipHeight > height && !(skipHeightPrev < skipHeight-2 && skipHeightPrev >= height))) {
			walk = walk.skip
		} else {
			walk = walk.parent
		}
	}
	return walk
}

// skipHeight2 is skipHeight guarded against negative input, since callers
// probe height-1 which can go below zero at the chain's base.
func skipHeight2(height int32) int32 {
	if height < 0 {
		return 0
	}
	return skipHeight(height)
}

// skipHeight implements Bitcoin Core's CBlockIndex::GetSkipHeight: the
// height a node's skip pointer targets, chosen so that repeated lookups
// amortize to O(log n) regardless of access pattern.
func skipHeight(height int32) int32 {
	if height < 2 {
		return 0
	}
	if height&1 != 0 {
		return invertLowestOne(invertLowestOne(height-1)) + 1
	}
	return invertLowestOne(height)
}

func invertLowestOne(n int32) int32 {
	return n & (n - 1)
}
