// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/wire"
)

// testNetCheckpointData holds the checkpoints of the test network, which
// shares the main network genesis block.
var testNetCheckpointData = CheckpointData{
	Checkpoints: []Checkpoint{
		{0, newHashFromStr(mainGenesisHashStr)},
	},
	LastCheckpointTime:           time.Unix(mainGenesisTime, 0),
	TransactionsAtLastCheckpoint: 0,
	TransactionsPerDay:           1440,
}

// TestNetParams returns the parameters of the public test network.  They are
// the main network parameters with the overrides below.
func TestNetParams() *Params {
	return derive(MainNetParams(), testNetIdentity, testNetConsensus,
		testNetGenesis, testNetEncoding, testNetBehavior, testNetGovernance)
}

func testNetIdentity(p *Params) {
	p.ID = TestNet
	p.Name = "test"
	p.Net = wire.BitcoinNet(0xbcccc2a4)
	p.DefaultPort = "29873"
	p.FixedSeeds = append(p.FixedSeeds, testNetSeeds...)
}

func testNetConsensus(p *Params) {
	p.Majority = UpgradeMajority{Enforce: 51, Reject: 75, Window: 100}
	p.MinerThreads = 0
	p.PowLimit = limitShift(20)
	p.PowTargetTimespan = time.Minute
	p.PowTargetSpacing = time.Minute
	p.PosLimit = limitShift(20)
	p.PosTargetTimespan = 40 * time.Minute
	p.PosTargetSpacing = time.Minute
	p.LastPowBlock = 525601
	p.CoinbaseMaturity = 5
	p.MasternodeCountDrift = 4
	p.ModifierUpdateBlock = 1
	p.Checkpoints = NewCheckpointTable(testNetCheckpointData)
}

// testNetGenesis re-specifies the genesis time and nonce.  They equal the
// main network values, so the test network keeps the main genesis hash.
func testNetGenesis(p *Params) {
	p.GenesisBlock = newGenesisBlock(mainGenesisTime, mainGenesisBits,
		mainGenesisNonce)
	p.GenesisHash = assertGenesis("test", p.GenesisBlock,
		mainGenesisHashStr, mainGenesisMerkleRootStr)
}

func testNetEncoding(p *Params) {
	p.Prefixes.PubKeyHash = 110
	p.Prefixes.ScriptHash = 125
	p.Prefixes.PrivateKey = 193
	p.Prefixes.HDCoinType = 0x80000001
}

func testNetBehavior(p *Params) {
	p.MiningRequiresPeers = true
	p.AllowMinDifficultyBlocks = false
	p.DefaultConsistencyChecks = false
	p.RequireStandard = false
	p.MineBlocksOnDemand = false
	p.TestnetToBeDeprecatedFieldRPC = true
}

func testNetGovernance(p *Params) {
	p.PoolMaxTransactions = 2
	p.ObfuscationPoolDummyAddress = "mP5DQxNJ41jaDqiRNJeJMjSF1auhfW9zMQ"
	p.MasternodePaymentsStartTime = p.GenesisBlock.Header.Timestamp.Add(24 * time.Hour)

	// The finalization window is only 8 blocks long on the test network.
	p.BudgetFeeConfirmations = 3
	p.TreasuryAddress = "mHk54sqsqmU4z2bxty1vak3iDAt1ApP15y"
}
