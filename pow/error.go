package pow

import "fmt"

// ErrorCode identifies the kind of consensus rule a proof-of-work check
// violated.
type ErrorCode int

const (
	// ErrBadPoWEncoding indicates the compact target bits decode to a
	// negative, zero, overflowing, or out-of-range value.
	ErrBadPoWEncoding ErrorCode = iota

	// ErrHighHash indicates the block hash is higher than the target
	// difficulty encoded in its bits.
	ErrHighHash

	// ErrBadMerkleRoot indicates a Merkle branch did not reproduce the
	// expected root.
	ErrBadMerkleRoot
)

var errorCodeStrings = map[ErrorCode]string{
	ErrBadPoWEncoding: "ErrBadPoWEncoding",
	ErrHighHash:       "ErrHighHash",
	ErrBadMerkleRoot:  "ErrBadMerkleRoot",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s, ok := errorCodeStrings[e]; ok {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RuleError identifies a rule violation produced by the pow package. It
// carries both a symbolic ErrorCode for programmatic dispatch and a
// human-readable description.
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
