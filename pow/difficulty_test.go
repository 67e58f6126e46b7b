package pow

import (
	"math/big"
	"testing"
)

// fakeNode is a minimal HeaderAccessor backed by a slice, used to exercise
// the retarget algorithms without pulling in the blockindex package.
type fakeNode struct {
	chain *[]*fakeNode
	index int32
	bits  uint32
	time  int64
}

func (n *fakeNode) Height() int32    { return n.index }
func (n *fakeNode) Bits() uint32     { return n.bits }
func (n *fakeNode) Timestamp() int64 { return n.time }
func (n *fakeNode) Ancestor(height int32) HeaderAccessor {
	if height < 0 || int(height) >= len(*n.chain) {
		return nil
	}
	return (*n.chain)[height]
}

func newTestParams() *DifficultyParams {
	powLimit := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 224), big.NewInt(1))
	return &DifficultyParams{
		PowLimit:           powLimit,
		PowLimitBits:       BigToCompact(powLimit),
		PowTargetTimespan:  14 * 24 * 60 * 60,
		PowTargetSpacing:   10 * 60,
		PowTargetSpacingV2: 120,
	}
}

func buildSteadyChain(t *testing.T, n int, params *DifficultyParams) []*fakeNode {
	t.Helper()
	chain := make([]*fakeNode, 0, n)
	for i := 0; i < n; i++ {
		node := &fakeNode{
			chain: nil,
			index: int32(i),
			bits:  params.PowLimitBits,
			time:  int64(i) * params.PowTargetSpacingV2,
		}
		chain = append(chain, node)
	}
	// wire up the shared backing slice pointer after all nodes exist
	backing := make([]*fakeNode, len(chain))
	copy(backing, chain)
	for _, node := range chain {
		node.chain = &backing
	}
	return chain
}

func TestLwmaReturnsPowLimitBelowWindow(t *testing.T) {
	params := newTestParams()
	chain := buildSteadyChain(t, 10, params)
	last := chain[len(chain)-1]

	got := LwmaNextWorkRequired(last, params)
	if got != params.PowLimitBits {
		t.Fatalf("expected powLimitBits below the window size, got %08x", got)
	}
}

func TestLwmaSteadyIntervalDividesAverageBySpacing(t *testing.T) {
	params := newTestParams()
	chain := buildSteadyChain(t, lwmaWindowSize+5, params)
	last := chain[len(chain)-1]

	got := LwmaNextWorkRequired(last, params)
	// Every solvetime equals T, so the weighted sum equals k and
	// avgTarget*W/(k*T) reduces to avgTarget/T.
	want := BigToCompact(new(big.Int).Div(CompactToBig(params.PowLimitBits), big.NewInt(params.PowTargetSpacingV2)))
	if got != want {
		t.Fatalf("steady block spacing at the target rate should divide the average target by T, got %08x want %08x", got, want)
	}
}

func TestLwmaFasterBlocksTightenTarget(t *testing.T) {
	params := newTestParams()
	n := lwmaWindowSize + 5
	chain := make([]*fakeNode, 0, n)
	backing := make([]*fakeNode, n)
	for i := 0; i < n; i++ {
		chain = append(chain, &fakeNode{
			chain: &backing,
			index: int32(i),
			bits:  params.PowLimitBits,
			time:  int64(i) * (params.PowTargetSpacingV2 / 2),
		})
	}
	copy(backing, chain)

	got := LwmaNextWorkRequired(chain[len(chain)-1], params)
	gotTarget := CompactToBig(got)
	if gotTarget.Cmp(params.PowLimit) >= 0 {
		t.Fatalf("faster-than-target solvetimes should tighten the target below powLimit, got %s", gotTarget)
	}
}

func TestNextWorkRequiredForcesResetWindow(t *testing.T) {
	params := newTestParams()
	node := &fakeNode{index: lwmaResetWindowStart, bits: 0x1d00ffff, time: 1000}
	got := NextWorkRequired(node, 2000, params)
	if got != params.PowLimitBits {
		t.Fatalf("heights in the reset window must force powLimitBits, got %08x", got)
	}
}

func TestNextWorkRequiredDispatchesToLwmaAtActivation(t *testing.T) {
	params := newTestParams()
	// A predecessor at lwmaActivationHeight-1 still falls in the reset
	// window, so the first block on the LWMA path is the one built on
	// height lwmaActivationHeight.
	chain := buildSteadyChain(t, lwmaActivationHeight+1, params)
	last := chain[len(chain)-1]

	got := NextWorkRequired(last, last.time+params.PowTargetSpacingV2, params)
	want := BigToCompact(new(big.Int).Div(CompactToBig(params.PowLimitBits), big.NewInt(params.PowTargetSpacingV2)))
	if got != want {
		t.Fatalf("steady LWMA window should divide the average target by T, got %08x want %08x", got, want)
	}
}

func TestCalculateNextWorkRequiredNoRetargeting(t *testing.T) {
	params := newTestParams()
	params.NoRetargeting = true
	node := &fakeNode{index: 100, bits: 0x1d00ffff, time: 1000}
	got := CalculateNextWorkRequired(node, 0, params)
	if got != node.bits {
		t.Fatalf("NoRetargeting should leave bits unchanged, got %08x want %08x", got, node.bits)
	}
}

func TestCalculateNextWorkRequiredClampsTimespan(t *testing.T) {
	params := newTestParams()
	node := &fakeNode{index: 2016, bits: params.PowLimitBits, time: params.PowTargetTimespan * 100}

	// First block time of zero makes the actual timespan far exceed 4x target,
	// so the clamp should leave the target at powLimit (it was already there).
	got := CalculateNextWorkRequired(node, 0, params)
	if got != params.PowLimitBits {
		t.Fatalf("clamped retarget starting at powLimit should stay at powLimit, got %08x", got)
	}
}
