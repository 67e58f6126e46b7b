package validate

import "fmt"

// ErrorCode identifies the kind of header validation rule that failed.
type ErrorCode int

const (
	// ErrAuxpowRequired indicates a block at or above the AuxPoW
	// activation height does not set the AuxPoW version bit.
	ErrAuxpowRequired ErrorCode = iota

	// ErrAuxpowNotAllowed indicates a block below the AuxPoW activation
	// height sets the AuxPoW version bit.
	ErrAuxpowNotAllowed

	// ErrUnexpectedDifficulty indicates the header's bits do not match
	// the value the retarget engine requires for this height.
	ErrUnexpectedDifficulty

	// ErrBadMerkleRoot indicates the header's merkle root does not match
	// the block's actual transaction list.
	ErrBadMerkleRoot

	// ErrHighHash indicates a non-AuxPoW block's own hash does not
	// satisfy its claimed target.
	ErrHighHash
)

var errorCodeStrings = map[ErrorCode]string{
	ErrAuxpowRequired:       "ErrAuxpowRequired",
	ErrAuxpowNotAllowed:     "ErrAuxpowNotAllowed",
	ErrUnexpectedDifficulty: "ErrUnexpectedDifficulty",
	ErrBadMerkleRoot:        "ErrBadMerkleRoot",
	ErrHighHash:             "ErrHighHash",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s, ok := errorCodeStrings[e]; ok {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RuleError identifies a rule violation produced by the validate package.
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
