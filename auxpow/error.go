package auxpow

import "fmt"

// ErrorCode identifies the kind of AuxPoW rule a proof violated.
type ErrorCode int

const (
	// ErrMissingAuxpowBit indicates the header's version does not set
	// the AuxPoW bit but a proof was expected.
	ErrMissingAuxpowBit ErrorCode = iota

	// ErrMissingProof indicates a header sets the AuxPoW bit but carries
	// no proof data.
	ErrMissingProof

	// ErrParentPoW indicates the parent header's hash does not satisfy
	// this block's target difficulty.
	ErrParentPoW

	// ErrCoinbaseBranch indicates the coinbase merkle branch does not
	// recompute the parent header's merkle root.
	ErrCoinbaseBranch

	// ErrMagicNotFound indicates the commitment's magic prefix was not
	// found in the coinbase's signature script.
	ErrMagicNotFound

	// ErrCommitmentTooShort indicates fewer than 32 bytes follow the
	// magic prefix in the signature script.
	ErrCommitmentTooShort

	// ErrCommitmentMismatch indicates the committed hash does not equal
	// the hash of this block's header with the AuxPoW bit cleared.
	ErrCommitmentMismatch

	// ErrDuplicateParentHash indicates the parent header's hash has
	// already been used to satisfy a different AuxPoW proof.
	ErrDuplicateParentHash
)

var errorCodeStrings = map[ErrorCode]string{
	ErrMissingAuxpowBit:    "ErrMissingAuxpowBit",
	ErrMissingProof:        "ErrMissingProof",
	ErrParentPoW:           "ErrParentPoW",
	ErrCoinbaseBranch:      "ErrCoinbaseBranch",
	ErrMagicNotFound:       "ErrMagicNotFound",
	ErrCommitmentTooShort:  "ErrCommitmentTooShort",
	ErrCommitmentMismatch:  "ErrCommitmentMismatch",
	ErrDuplicateParentHash: "ErrDuplicateParentHash",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s, ok := errorCodeStrings[e]; ok {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RuleError identifies a rule violation produced by the auxpow package.
type RuleError struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface.
func (e RuleError) Error() string {
	return e.Description
}

func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}
