// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/wire"
)

// RegressionNetParams returns the parameters of the regression test
// network.  They are the test network parameters with the overrides below.
// The genesis block has its own header fields and its hash is computed, not
// checked against a literal.
func RegressionNetParams() *Params {
	return derive(TestNetParams(), func(p *Params) {
		p.ID = RegTest
		p.Name = "regtest"
		p.Net = wire.BitcoinNet(0xbc32ee20)
		p.DefaultPort = "14034"
		p.SubsidyHalvingInterval = 150
		p.Majority = UpgradeMajority{Enforce: 750, Reject: 950, Window: 1000}
		p.MinerThreads = 1
		p.PowTargetTimespan = 24 * time.Hour
		p.PowTargetSpacing = 2 * time.Minute
		p.PowLimit = limitShift(1)

		p.GenesisBlock = newGenesisBlock(regTestGenesisTime,
			regTestGenesisBits, regTestGenesisNonce)
		p.GenesisHash = genesisHash(p.GenesisBlock)

		p.FixedSeeds = nil
		p.DNSSeeds = nil

		p.MiningRequiresPeers = false
		p.AllowMinDifficultyBlocks = true
		p.DefaultConsistencyChecks = true
		p.RequireStandard = false
		p.MineBlocksOnDemand = true
		p.TestnetToBeDeprecatedFieldRPC = false

		p.Checkpoints = NewCheckpointTable(CheckpointData{
			Checkpoints: []Checkpoint{
				{0, p.GenesisHash},
			},
			LastCheckpointTime:           p.GenesisBlock.Header.Timestamp,
			TransactionsAtLastCheckpoint: 0,
			TransactionsPerDay:           1440,
		})
	})
}
