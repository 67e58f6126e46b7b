// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

// BitcoinNet represents a magic number that identifies the network a
// message was meant for, so peers on different networks never mistake one
// another's traffic for their own.
type BitcoinNet uint32

const (
	// MainNet is the main network's magic number.
	MainNet BitcoinNet = 0xdab2c7fa

	// TestNet is the test network's magic number.
	TestNet BitcoinNet = 0x07091109

	// RegressionNet is the regression test network's magic number.
	RegressionNet BitcoinNet = 0xdab5bffa
)

var bitcoinNetStrings = map[BitcoinNet]string{
	MainNet:       "MainNet",
	TestNet:       "TestNet",
	RegressionNet: "RegressionNet",
}

// String returns the BitcoinNet in human-readable form.
func (n BitcoinNet) String() string {
	if s, ok := bitcoinNetStrings[n]; ok {
		return s
	}
	return "Unknown BitcoinNet"
}
