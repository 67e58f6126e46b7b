package blockindex

import "github.com/palladium-core/plmd/pow"

// headerAccessor adapts *Node to pow.HeaderAccessor. It exists because Go
// interface satisfaction is invariant in method return types: Node.Ancestor
// returns *Node for callers that want the richer type, while the
// difficulty engine only needs the narrower pow.HeaderAccessor view.
type headerAccessor struct {
	node *Node
}

func (a headerAccessor) Height() int32    { return a.node.Height() }
func (a headerAccessor) Bits() uint32     { return a.node.Bits() }
func (a headerAccessor) Timestamp() int64 { return a.node.Timestamp() }

func (a headerAccessor) Ancestor(height int32) pow.HeaderAccessor {
	ancestor := a.node.Ancestor(height)
	if ancestor == nil {
		return nil
	}
	return headerAccessor{ancestor}
}

// AsHeaderAccessor exposes node through the pow package's narrower
// ancestor-walking interface, for use as the lastNode argument to
// pow.NextWorkRequired.
func (node *Node) AsHeaderAccessor() pow.HeaderAccessor {
	if node == nil {
		return nil
	}
	return headerAccessor{node}
}
