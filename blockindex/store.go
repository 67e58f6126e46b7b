package blockindex

import (
	"sync"

	"github.com/palladium-core/plmd/chainhash"
)

// Store is a concurrency-safe lookup table from block hash to chain-index
// node, plus the set of hashes known to fail validation. It stands in for
// the full block store; only the bookkeeping the mining/submission contract
// needs is kept here.
type Store struct {
	mtx     sync.RWMutex
	nodes   map[chainhash.Hash]*Node
	invalid map[chainhash.Hash]struct{}
	tip     *Node
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		nodes:   make(map[chainhash.Hash]*Node),
		invalid: make(map[chainhash.Hash]struct{}),
	}
}

// AddNode registers node under its hash and, if it has more cumulative work
// than the current tip, makes it the tip.
func (s *Store) AddNode(node *Node) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.nodes[node.Hash()] = node
	if s.tip == nil || node.MoreWorkThan(s.tip) {
		s.tip = node
	}
}

// LookupNode returns the node registered under hash, or nil if none is
// known.
func (s *Store) LookupNode(hash chainhash.Hash) *Node {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.nodes[hash]
}

// Tip returns the current best-chain node, or nil if the store is empty.
func (s *Store) Tip() *Node {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.tip
}

// MarkInvalid records hash as having failed validation, so future
// resubmissions are rejected as duplicate-invalid rather than re-validated.
func (s *Store) MarkInvalid(hash chainhash.Hash) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.invalid[hash] = struct{}{}
}

// IsInvalid reports whether hash was previously recorded by MarkInvalid.
func (s *Store) IsInvalid(hash chainhash.Hash) bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	_, ok := s.invalid[hash]
	return ok
}
