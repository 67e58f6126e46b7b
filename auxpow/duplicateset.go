package auxpow

import (
	"sync"

	"github.com/palladium-core/plmd/chainhash"
)

// DuplicateSet tracks parent-chain block hashes that have already been
// spent as an AuxPoW proof, guarding against the same parent-chain PoW
// being reused to satisfy more than one auxiliary block. It is a
// process-wide, mutex-guarded set rather than a consensus-committed
// structure: membership is advisory local bookkeeping, populated only once
// a block carrying the proof is actually connected to the best chain.
type DuplicateSet struct {
	mtx    sync.Mutex
	hashes map[chainhash.Hash]struct{}
}

// NewDuplicateSet returns an empty DuplicateSet.
func NewDuplicateSet() *DuplicateSet {
	return &DuplicateSet{hashes: make(map[chainhash.Hash]struct{})}
}

// Contains reports whether hash has already been recorded.
func (s *DuplicateSet) Contains(hash chainhash.Hash) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	_, ok := s.hashes[hash]
	return ok
}

// Add records hash as spent. Callers insert only after the block carrying
// the proof has been connected to the best chain, never during validation
// of a candidate that might still be rejected or reorganized away.
func (s *DuplicateSet) Add(hash chainhash.Hash) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.hashes[hash] = struct{}{}
}

// Remove forgets hash, used when a block that recorded it is disconnected
// during a reorganization.
func (s *DuplicateSet) Remove(hash chainhash.Hash) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	delete(s.hashes, hash)
}
