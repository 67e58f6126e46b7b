package blockindex

import (
	"testing"
	"time"

	"github.com/palladium-core/plmd/chainhash"
	"github.com/palladium-core/plmd/wire"
)

func buildChain(t *testing.T, n int) []*Node {
	t.Helper()
	nodes := make([]*Node, 0, n)
	var parent *Node
	for i := 0; i < n; i++ {
		header := wire.NewBlockHeader(1, chainhash.HashH([]byte{byte(i)}), chainhash.HashH([]byte{byte(i), 1}),
			0x1d00ffff, uint32(i))
		header.Timestamp = time.Unix(int64(i)*120, 0)
		node := NewNode(header, parent)
		nodes = append(nodes, node)
		parent = node
	}
	return nodes
}

func TestAncestorMatchesLinearWalk(t *testing.T) {
	nodes := buildChain(t, 500)
	tip := nodes[len(nodes)-1]

	for _, h := range []int32{0, 1, 50, 123, 250, 400, 499} {
		got := tip.Ancestor(h)
		if got == nil {
			t.Fatalf("Ancestor(%d) returned nil", h)
		}
		if got.Height() != h {
			t.Fatalf("Ancestor(%d).Height() = %d", h, got.Height())
		}
		if got != nodes[h] {
			t.Fatalf("Ancestor(%d) did not return the node built at that height", h)
		}
	}
}

func TestAncestorOutOfRange(t *testing.T) {
	nodes := buildChain(t, 10)
	tip := nodes[len(nodes)-1]

	if tip.Ancestor(-1) != nil {
		t.Fatalf("Ancestor(-1) should be nil")
	}
	if tip.Ancestor(tip.Height()+1) != nil {
		t.Fatalf("Ancestor(height+1) should be nil")
	}
	if tip.Ancestor(tip.Height()) != tip {
		t.Fatalf("Ancestor(own height) should return the node itself")
	}
}

func TestChainWorkAccumulates(t *testing.T) {
	nodes := buildChain(t, 5)
	for i := 1; i < len(nodes); i++ {
		if !nodes[i].MoreWorkThan(nodes[i-1]) {
			t.Fatalf("node %d should have more cumulative work than node %d", i, i-1)
		}
	}
}

func TestAsHeaderAccessorAncestorChain(t *testing.T) {
	nodes := buildChain(t, 50)
	tip := nodes[len(nodes)-1].AsHeaderAccessor()

	ancestor := tip.Ancestor(10)
	if ancestor == nil || ancestor.Height() != 10 {
		t.Fatalf("expected ancestor at height 10, got %+v", ancestor)
	}

	if got := ancestor.Ancestor(-1); got != nil {
		t.Fatalf("expected nil ancestor below the chain base")
	}
}
