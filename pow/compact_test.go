// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"math/big"
	"testing"
)

func TestBigToCompact(t *testing.T) {
	tests := []struct {
		in  int64
		out uint32
	}{
		{0, 0},
		{-1, 25231360},
	}

	for x, test := range tests {
		n := big.NewInt(test.in)
		r := BigToCompact(n)
		if r != test.out {
			t.Errorf("TestBigToCompact test #%d failed: got %d want %d\n", x, r, test.out)
		}
	}
}

func TestCompactToBig(t *testing.T) {
	tests := []struct {
		in  uint32
		out int64
	}{
		{10000000, 0},
	}

	for x, test := range tests {
		n := CompactToBig(test.in)
		want := big.NewInt(test.out)
		if n.Cmp(want) != 0 {
			t.Errorf("TestCompactToBig test #%d failed: got %d want %d\n", x, n.Int64(), want.Int64())
		}
	}
}

func TestCompactRoundTrip(t *testing.T) {
	tests := []int64{1, 255, 256, 65535, 1 << 20, 1 << 30}
	for _, in := range tests {
		n := big.NewInt(in)
		compact := BigToCompact(n)
		back := CompactToBig(compact)
		if back.Cmp(n) != 0 {
			t.Errorf("round trip mismatch for %d: got %s via compact %08x", in, back, compact)
		}
	}
}

func TestDecodeAccepted(t *testing.T) {
	powLimit := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 224), big.NewInt(1))
	powLimitBits := BigToCompact(powLimit)

	tests := []struct {
		name     string
		compact  uint32
		accepted bool
	}{
		{"zero", 0, false},
		{"at limit", powLimitBits, true},
		{"negative flag set", powLimitBits | 0x00800000, false},
		{"overflow exponent", 0xff123456, false},
	}

	for _, test := range tests {
		result := Decode(test.compact)
		if got := result.Accepted(powLimit); got != test.accepted {
			t.Errorf("%s: Accepted() = %v, want %v", test.name, got, test.accepted)
		}
	}
}
