package pow

import (
	"math/big"

	"github.com/palladium-core/plmd/chainhash"
)

// CheckProofOfWork reports whether hash satisfies the target difficulty
// encoded by bits, given the network's proof-of-work limit. It enforces the
// same range check as Decode().Accepted before comparing the hash itself,
// so a block can never claim a target weaker than powLimit.
func CheckProofOfWork(hash chainhash.Hash, bits uint32, powLimit *big.Int) error {
	result := Decode(bits)
	if !result.Accepted(powLimit) {
		return ruleError(ErrBadPoWEncoding, "nBits below minimum work or invalid")
	}

	hashNum := chainhash.HashToBig(&hash)
	if hashNum.Cmp(result.Value) > 0 {
		return ruleError(ErrHighHash, "block hash does not meet the target difficulty")
	}
	return nil
}
