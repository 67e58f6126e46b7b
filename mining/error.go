package mining

// Verdict is a BIP22-shaped submitblock result string. An empty Verdict
// means the block was accepted.
type Verdict string

const (
	// VerdictAccepted indicates the block was accepted as the new best
	// chain tip (submitblock returns JSON null, modeled here as "").
	VerdictAccepted Verdict = ""

	// VerdictDuplicate indicates the block was already known and valid.
	VerdictDuplicate Verdict = "duplicate"

	// VerdictDuplicateInvalid indicates the block was already known and
	// previously failed validation.
	VerdictDuplicateInvalid Verdict = "duplicate-invalid"

	// VerdictDuplicateInconclusive indicates a submitted header duplicates
	// one already known to be invalid.
	VerdictDuplicateInconclusive Verdict = "duplicate-inconclusive"

	// VerdictInconclusiveNotBestPrevBlk indicates the block's previous
	// block is unknown, so whether it would extend the best chain cannot
	// be determined.
	VerdictInconclusiveNotBestPrevBlk Verdict = "inconclusive-not-best-prevblk"

	// VerdictBadAuxpowVersionMissing indicates a block at or above the
	// AuxPoW activation height did not set the AuxPoW version bit.
	VerdictBadAuxpowVersionMissing Verdict = "rejected: bad-auxpow-version-missing"

	// VerdictBadAuxpowUnexpected indicates a block below the AuxPoW
	// activation height set the AuxPoW version bit.
	VerdictBadAuxpowUnexpected Verdict = "rejected: bad-auxpow-unexpected"

	// VerdictBadAuxpowDataMissing indicates a block expected to carry an
	// AuxPoW proof set the version bit but carried no proof.
	VerdictBadAuxpowDataMissing Verdict = "rejected: bad-auxpow-data-missing"

	// VerdictBadCoinbaseMissing indicates the block has no transactions,
	// or its first transaction is not a coinbase.
	VerdictBadCoinbaseMissing Verdict = "rejected: bad-cb-missing"

	// VerdictRejected is the generic fallback for any other header
	// validation failure (bad proof of work, bad merkle root, bad
	// difficulty, a broken AuxPoW commitment).
	VerdictRejected Verdict = "rejected"
)
