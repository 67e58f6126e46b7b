package pow

import "github.com/palladium-core/plmd/chainhash"

// BranchRoot recomputes a Merkle root from a leaf hash, an ordered list of
// sibling hashes, and an integer index describing the leaf's position in its
// tree. It implements the same pairing rule used both for a block's
// transaction Merkle root and for AuxPoW's parent-coinbase proof (§4.2):
// at each level, the low bit of index selects whether the sibling is
// concatenated before or after the running hash.
func BranchRoot(leaf chainhash.Hash, branch []chainhash.Hash, index uint32) chainhash.Hash {
	current := leaf
	for _, sibling := range branch {
		var buf [chainhash.HashSize * 2]byte
		if index&1 != 0 {
			copy(buf[:chainhash.HashSize], sibling[:])
			copy(buf[chainhash.HashSize:], current[:])
		} else {
			copy(buf[:chainhash.HashSize], current[:])
			copy(buf[chainhash.HashSize:], sibling[:])
		}
		current = chainhash.DoubleHashH(buf[:])
		index >>= 1
	}
	return current
}

// CheckBranch reports whether the branch recovers the given root and, if
// not, returns a BadMerkleRoot RuleError describing the mismatch.
func CheckBranch(leaf chainhash.Hash, branch []chainhash.Hash, index uint32, root chainhash.Hash) error {
	got := BranchRoot(leaf, branch, index)
	if got != root {
		return ruleError(ErrBadMerkleRoot, "merkle branch does not recompute the expected root")
	}
	return nil
}

// TxListRoot computes the Merkle root of an ordered list of transaction
// hashes using the standard Bitcoin pairing rule: at each level, any odd one
// out is duplicated against itself. Used to derive and verify
// BlockHeader.MerkleRoot.
func TxListRoot(leaves []chainhash.Hash) chainhash.Hash {
	if len(leaves) == 0 {
		return chainhash.Hash{}
	}

	level := make([]chainhash.Hash, len(leaves))
	copy(level, leaves)

	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}
		next := make([]chainhash.Hash, len(level)/2)
		for i := 0; i < len(next); i++ {
			var buf [chainhash.HashSize * 2]byte
			copy(buf[:chainhash.HashSize], level[2*i][:])
			copy(buf[chainhash.HashSize:], level[2*i+1][:])
			next[i] = chainhash.DoubleHashH(buf[:])
		}
		level = next
	}
	return level[0]
}
