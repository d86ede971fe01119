// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// mainNetSeeds are the fixed seed nodes of the main network in compact form.
var mainNetSeeds = []SeedSpec{
	{Addr: [16]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0x2d, 0x4c, 0xd0, 0xb7}, Port: 29871},
	{Addr: [16]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xc6, 0x0d, 0x26, 0x77}, Port: 29871},
	{Addr: [16]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0x2d, 0x4d, 0x15, 0x46}, Port: 29871},
	{Addr: [16]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0x2d, 0x20, 0x27, 0xf7}, Port: 29871},
}

// testNetSeeds are the fixed seed nodes added by the test network.
var testNetSeeds = []SeedSpec{}
