package chaincfg

import (
	"math/big"

	"github.com/palladium-core/plmd/chainhash"
	"github.com/palladium-core/plmd/pow"
	"github.com/palladium-core/plmd/wire"
)

func mustHashFromStr(s string) chainhash.Hash {
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		panic(err)
	}
	return *h
}

// mainPowLimit is the loosest target permitted on the main network: the
// same 256-bit value ("00000000ffff0000...") Bitcoin itself uses, equal to
// decode(0x1d00ffff) so the genesis bits round-trip through PowLimitBits.
var mainPowLimit = func() *big.Int {
	n := new(big.Int)
	n.SetString("00000000ffff0000000000000000000000000000000000000000000000000000", 16)
	return n
}()

// regressionPowLimit is the loosest target the regtest genesis bits
// (0x207fffff) encode, so PowLimitBits round-trips back to it exactly.
var regressionPowLimit = new(big.Int).Lsh(big.NewInt(0x7fffff), 232)

// auxpowActivationHeight is shared by main and test net: the height at
// which AuxPoW commitment enforcement and the LWMA retarget both take
// over, matching BIP34/65/66/CSV/Segwit activation in the same block.
const auxpowActivationHeight = 29000

// MainNetParams defines the network parameters for the main network.
var MainNetParams = Params{
	Name:        "mainnet",
	Net:         wire.MainNet,
	DefaultPort: "2333",

	GenesisBlock: mainNetGenesisBlock,
	GenesisHash:  mustHashFromStr(mainNetGenesisHashStr),

	PowLimit:     mainPowLimit,
	PowLimitBits: pow.BigToCompact(mainPowLimit),

	PowTargetTimespan:        24 * 60 * 60,
	PowTargetSpacing:         10 * 60,
	PowTargetSpacingV2:       2 * 60,
	AllowMinDifficultyBlocks: false,
	NoRetargeting:            false,

	SubsidyHalvingInterval: 210000,

	AuxpowStartHeight: auxpowActivationHeight,

	BIP34Height:  29000,
	BIP65Height:  29000,
	BIP66Height:  29000,
	CSVHeight:    29000,
	SegwitHeight: 29000,

	RuleChangeActivationThreshold: 720,
	MinerConfirmationWindow:       540,
	Deployments: map[string]ConsensusDeployment{
		"testdummy": {BitNumber: 28, StartTime: 1199145601, ExpireTime: 1230767999},
	},

	Checkpoints: []Checkpoint{
		{Height: 1, Hash: mustHashFromStr("00000000082962e4c2838933cb63507142c1abb748d84b7ddce6bb233d6407e0")},
		{Height: 16, Hash: mustHashFromStr("000000004cc3eca82841f0691e6231b86c3b269e447fa7d6e7221cd42f725390")},
		{Height: 69, Hash: mustHashFromStr("00000000ae75d0169080e9f0ddbcd80827eda623cfe1f4a2b1be6dcd49b916e6")},
		{Height: 22170, Hash: mustHashFromStr("000000000000086425f826a2eb60c588aefd3e0783ddeccf0f4f0c985d348e69")},
		{Height: 26619, Hash: mustHashFromStr("00000000000000d66df607146de7d9b423cf97150beb804d22439d199e868ca9")},
		{Height: 28879, Hash: mustHashFromStr("0000000000000017e9e74b9b403b775098905418b1333e9612f510af66746aa7")},
		{Height: 28925, Hash: mustHashFromStr("0000000000000014351dee34029945d5a4dea299ec8843626695c88b084b4d10")},
	},

	PubKeyHashAddrID: 55,
	ScriptHashAddrID: 5,
	PrivateKeyID:     128,
	HDPublicKeyID:    [4]byte{0x04, 0x88, 0xB2, 0x1E},
	HDPrivateKeyID:   [4]byte{0x04, 0x88, 0xAD, 0xE4},
	Bech32HRP:        "plm",
}

// TestNetParams defines the network parameters for the test network.
var TestNetParams = Params{
	Name:        "testnet",
	Net:         wire.TestNet,
	DefaultPort: "12333",

	GenesisBlock: testNetGenesisBlock,
	GenesisHash:  mustHashFromStr(testNetGenesisHashStr),

	PowLimit:     mainPowLimit,
	PowLimitBits: pow.BigToCompact(mainPowLimit),

	PowTargetTimespan:        24 * 60 * 60,
	PowTargetSpacing:         2 * 60,
	PowTargetSpacingV2:       2 * 60,
	AllowMinDifficultyBlocks: true,
	NoRetargeting:            false,

	SubsidyHalvingInterval: 210000,

	AuxpowStartHeight: auxpowActivationHeight,

	BIP34Height:  0,
	BIP65Height:  0,
	BIP66Height:  0,
	CSVHeight:    0,
	SegwitHeight: 0,

	RuleChangeActivationThreshold: 720,
	MinerConfirmationWindow:       540,
	Deployments: map[string]ConsensusDeployment{
		"testdummy": {BitNumber: 28, StartTime: 1199145601, ExpireTime: 1230767999},
	},

	PubKeyHashAddrID: 127,
	ScriptHashAddrID: 115,
	PrivateKeyID:     255,
	HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xCF},
	HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94},
	Bech32HRP:        "tplm",
}

// RegressionNetParams defines the network parameters for the regression
// test network.
var RegressionNetParams = Params{
	Name:        "regtest",
	Net:         wire.RegressionNet,
	DefaultPort: "28444",

	GenesisBlock: regressionNetGenesisBlock,
	GenesisHash:  mustHashFromStr(regressionNetGenesisHashStr),

	PowLimit:     regressionPowLimit,
	PowLimitBits: pow.BigToCompact(regressionPowLimit),

	PowTargetTimespan:        24 * 60 * 60,
	PowTargetSpacing:         2 * 60,
	PowTargetSpacingV2:       2 * 60,
	AllowMinDifficultyBlocks: true,
	NoRetargeting:            true,

	SubsidyHalvingInterval: 150,

	// Disabled by default: regtest blocks never carry AuxPoW unless a
	// test explicitly lowers this.
	AuxpowStartHeight: 1 << 30,

	BIP34Height:  0,
	BIP65Height:  0,
	BIP66Height:  0,
	CSVHeight:    0,
	SegwitHeight: 0,

	RuleChangeActivationThreshold: 108,
	MinerConfirmationWindow:       144,
	Deployments: map[string]ConsensusDeployment{
		"testdummy": {BitNumber: 28, StartTime: 0, ExpireTime: 9999999999},
	},

	PubKeyHashAddrID: 127,
	ScriptHashAddrID: 115,
	PrivateKeyID:     255,
	HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xCF},
	HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94},
	Bech32HRP:        "rplm",
}
