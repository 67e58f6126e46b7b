package chaincfg

import (
	"errors"
	"math/big"

	"github.com/palladium-core/plmd/chainhash"
	"github.com/palladium-core/plmd/pow"
	"github.com/palladium-core/plmd/wire"
)

// ErrDuplicateNet is returned when Register is called with chain parameters
// for a network that is already registered.
var ErrDuplicateNet = errors.New("duplicate network")

// Checkpoint identifies a known-good block at a given height, consulted as
// a sanity check against deep reorganizations rather than as a consensus
// rule.
type Checkpoint struct {
	Height int32
	Hash   chainhash.Hash
}

// ConsensusDeployment defines the parameters for a BIP9-style soft fork
// deployment.
type ConsensusDeployment struct {
	// BitNumber is the bit position, 0-28, in the block version used to
	// signal this deployment.
	BitNumber uint8

	// StartTime is the median block time after which voting on this
	// deployment begins.
	StartTime int64

	// ExpireTime is the median block time after which this deployment is
	// considered failed if it has not already locked in.
	ExpireTime int64
}

// Params defines a Bitcoin-lineage network's consensus parameters: genesis
// data, retarget configuration, AuxPoW activation, address encoding
// prefixes, and the checkpoint/deployment tables used to supplement chain
// selection and version-bit signaling.
type Params struct {
	Name        string
	Net         wire.BitcoinNet
	DefaultPort string

	GenesisBlock *wire.MsgBlock
	GenesisHash  chainhash.Hash

	// PowLimit is the highest (easiest) proof-of-work target permitted
	// on the network.
	PowLimit     *big.Int
	PowLimitBits uint32

	PowTargetTimespan        int64
	PowTargetSpacing         int64
	PowTargetSpacingV2       int64
	AllowMinDifficultyBlocks bool
	NoRetargeting            bool

	SubsidyHalvingInterval int32

	// AuxpowStartHeight is the first height at which a block must carry
	// an AuxPoW proof (and below which it must not). See DESIGN.md for
	// why this chain pins it to the same height as the LWMA retarget
	// switchover instead of leaving it unset.
	AuxpowStartHeight int32

	BIP34Height  int32
	BIP65Height  int32
	BIP66Height  int32
	CSVHeight    int32
	SegwitHeight int32

	RuleChangeActivationThreshold uint32
	MinerConfirmationWindow       uint32
	Deployments                   map[string]ConsensusDeployment

	Checkpoints []Checkpoint

	// PubKeyHashAddrID, ScriptHashAddrID, and PrivateKeyID are the
	// base58check version bytes for P2PKH addresses, P2SH addresses,
	// and WIF-encoded private keys.
	PubKeyHashAddrID byte
	ScriptHashAddrID byte
	PrivateKeyID     byte

	HDPublicKeyID  [4]byte
	HDPrivateKeyID [4]byte

	// Bech32HRP is the human-readable part of this network's bech32
	// segwit address encoding.
	Bech32HRP string
}

// DifficultyParams adapts Params to the field set pow.NextWorkRequired
// consumes.
func (p *Params) DifficultyParams() *pow.DifficultyParams {
	return &pow.DifficultyParams{
		PowLimit:                 p.PowLimit,
		PowLimitBits:             p.PowLimitBits,
		PowTargetTimespan:        p.PowTargetTimespan,
		PowTargetSpacing:         p.PowTargetSpacing,
		PowTargetSpacingV2:       p.PowTargetSpacingV2,
		AllowMinDifficultyBlocks: p.AllowMinDifficultyBlocks,
		NoRetargeting:            p.NoRetargeting,
	}
}

// registeredNets tracks every network registered via Register, guarding
// against a caller accidentally registering the same network twice.
var registeredNets = make(map[wire.BitcoinNet]struct{})

// Register marks the network defined by params as valid and prevents it
// from being registered again without first calling a hypothetical
// unregister, mirroring the registration discipline of chain parameter
// packages throughout the btcd/kaspad lineage.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Net] = struct{}{}
	log.Debugf("registered chain parameters for %s", params.Name)
	return nil
}

func init() {
	mustRegister(&MainNetParams)
	mustRegister(&TestNetParams)
	mustRegister(&RegressionNetParams)
}

func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic(err)
	}
}
