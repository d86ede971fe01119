// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// UnitTestParams returns the default parameters of the unit test network.
// They are the main network parameters, checkpoints included, with peer
// discovery disabled.  Tests that need to vary consensus values use
// MutableParams instead of writing to the returned struct.
func UnitTestParams() *Params {
	return derive(MainNetParams(), func(p *Params) {
		p.ID = UnitTest
		p.Name = "unittest"
		p.DefaultPort = "51478"
		p.FixedSeeds = nil
		p.DNSSeeds = nil

		p.MiningRequiresPeers = false
		p.DefaultConsistencyChecks = true
		p.AllowMinDifficultyBlocks = false
		p.MineBlocksOnDemand = true
	})
}
