package pow

import "math/big"

// lwmaWindowSize is the number of blocks averaged by the LWMA retarget.
const lwmaWindowSize = 240

// lwmaActivationHeight is the height at which LWMA becomes the active
// retarget algorithm. Heights in [lwmaResetWindowStart, lwmaActivationHeight)
// are forced to powLimit so the new average has a clean difficulty to grow
// from instead of inheriting the tail of the legacy algorithm's window.
const (
	lwmaActivationHeight = 29000
	lwmaResetWindowStart = 28930
	lwmaResetWindowEnd   = 28999
)

// HeaderAccessor is the read-only view of chain-index state the difficulty
// engine needs from a block's ancestry. It is satisfied by blockindex.Node.
type HeaderAccessor interface {
	Height() int32
	Bits() uint32
	Timestamp() int64
	Ancestor(height int32) HeaderAccessor
}

// DifficultyParams collects the subset of chain parameters the retarget
// algorithms read. It is populated by chaincfg.Params so this package does
// not need to import it.
type DifficultyParams struct {
	PowLimit                 *big.Int
	PowLimitBits             uint32
	PowTargetTimespan        int64
	PowTargetSpacing         int64
	PowTargetSpacingV2       int64
	AllowMinDifficultyBlocks bool
	NoRetargeting            bool
}

// DifficultyAdjustmentInterval mirrors the dual-spacing quirk of the
// original retarget parameters: the pre-activation branch divides the
// timespan by the legacy spacing and is the one actually consulted by the
// legacy retarget path below; the post-activation branch divides by the V2
// spacing but is otherwise unused once LWMA takes over, since LWMA computes
// its own fixed-size window.
func (p *DifficultyParams) DifficultyAdjustmentInterval(height int32) int64 {
	if height < lwmaActivationHeight {
		return p.PowTargetTimespan / p.PowTargetSpacing
	}
	return p.PowTargetTimespan / p.PowTargetSpacingV2
}

// NextWorkRequired determines the nBits value a block built on top of
// lastNode must satisfy. newBlockTime is only consulted by the legacy
// min-difficulty special case on testnet/regtest.
func NextWorkRequired(lastNode HeaderAccessor, newBlockTime int64, params *DifficultyParams) uint32 {
	if lastNode == nil {
		return params.PowLimitBits
	}

	if lastNode.Height() >= lwmaResetWindowStart && lastNode.Height() <= lwmaResetWindowEnd {
		log.Debugf("height %d is in the LWMA reset window, forcing powLimit", lastNode.Height())
		return params.PowLimitBits
	}

	height := lastNode.Height() + 1
	if height >= lwmaActivationHeight {
		return LwmaNextWorkRequired(lastNode, params)
	}

	interval := params.DifficultyAdjustmentInterval(height)
	if int64(height)%interval != 0 {
		if params.AllowMinDifficultyBlocks {
			if newBlockTime > lastNode.Timestamp()+params.PowTargetSpacing*2 {
				return params.PowLimitBits
			}
			node := lastNode
			for {
				ancestor := node.Ancestor(node.Height() - 1)
				if ancestor == nil {
					break
				}
				if int64(node.Height())%params.DifficultyAdjustmentInterval(node.Height()) == 0 {
					break
				}
				if node.Bits() != params.PowLimitBits {
					break
				}
				node = ancestor
			}
			return node.Bits()
		}
		return lastNode.Bits()
	}

	firstHeight := lastNode.Height() - int32(interval-1)
	firstNode := lastNode.Ancestor(firstHeight)
	if firstNode == nil {
		return params.PowLimitBits
	}
	return CalculateNextWorkRequired(lastNode, firstNode.Timestamp(), params)
}

// CalculateNextWorkRequired implements the legacy Bitcoin-style retarget:
// the actual timespan since firstBlockTime is clamped to
// [target/4, target*4] and the previous target is scaled by that ratio.
func CalculateNextWorkRequired(lastNode HeaderAccessor, firstBlockTime int64, params *DifficultyParams) uint32 {
	if params.NoRetargeting {
		return lastNode.Bits()
	}

	actualTimespan := lastNode.Timestamp() - firstBlockTime
	minTimespan := params.PowTargetTimespan / 4
	maxTimespan := params.PowTargetTimespan * 4
	if actualTimespan < minTimespan {
		actualTimespan = minTimespan
	}
	if actualTimespan > maxTimespan {
		actualTimespan = maxTimespan
	}

	newTarget := CompactToBig(lastNode.Bits())
	newTarget.Mul(newTarget, big.NewInt(actualTimespan))
	newTarget.Div(newTarget, big.NewInt(params.PowTargetTimespan))

	if newTarget.Cmp(params.PowLimit) > 0 {
		return params.PowLimitBits
	}
	return BigToCompact(newTarget)
}

// LwmaNextWorkRequired implements the Linearly Weighted Moving Average
// retarget: each of the most recent lwmaWindowSize blocks contributes a
// solvetime clamped to [1, 6T] weighted by its recency, and the next target
// is the window's average target multiplied by the weighted solvetime sum and
// divided by k*T, where k = N*(N+1)*T/2.
func LwmaNextWorkRequired(lastNode HeaderAccessor, params *DifficultyParams) uint32 {
	height := lastNode.Height()
	if height < lwmaWindowSize {
		return params.PowLimitBits
	}

	t := params.PowTargetSpacingV2
	const n = int64(lwmaWindowSize)
	k := n * (n + 1) * t / 2

	sumTarget := big.NewInt(0)
	var weightedSolvetime int64
	var j int64

	blockStart := lastNode.Ancestor(height - lwmaWindowSize)
	if blockStart == nil {
		return params.PowLimitBits
	}
	previousTimestamp := blockStart.Timestamp()
	for i := height - lwmaWindowSize + 1; i <= height; i++ {
		current := lastNode.Ancestor(i)
		if current == nil {
			return params.PowLimitBits
		}
		thisTimestamp := current.Timestamp()
		if thisTimestamp < previousTimestamp {
			thisTimestamp = previousTimestamp
		}

		solvetime := thisTimestamp - previousTimestamp
		if solvetime < 1 {
			solvetime = 1
		}
		if maxSolvetime := 6 * t; solvetime > maxSolvetime {
			solvetime = maxSolvetime
		}
		previousTimestamp = thisTimestamp

		j++
		weightedSolvetime += solvetime * j
		sumTarget.Add(sumTarget, CompactToBig(current.Bits()))
	}

	avgTarget := sumTarget.Div(sumTarget, big.NewInt(n))
	nextTarget := avgTarget.Mul(avgTarget, big.NewInt(weightedSolvetime))
	nextTarget.Div(nextTarget, big.NewInt(k*t))

	if nextTarget.Cmp(params.PowLimit) > 0 {
		return params.PowLimitBits
	}
	return BigToCompact(nextTarget)
}
