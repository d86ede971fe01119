// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
)

const (
	// alertPubKey signs network alerts on every network.
	alertPubKey = "04093f483bfefb589393158612f3e949905007bcad76e09e449f88bd5af83dd5a1" +
		"eeedd5ae3aced724cbed84722c580357a863a7cf0e867dba34ffad053998802a"

	// sporkPubKey signs spork messages on every network.
	sporkPubKey = "045aabb21152a1f5c0cfb3a9fc67ca457c03804d241239db04347b72b319f348c8" +
		"8e224ba4afed80b01d16af91615aa3ab6ba82277ca7fd8cc95175df5079a49d1"
)

// mainNetCheckpointData holds the checkpoints of the main network.
var mainNetCheckpointData = CheckpointData{
	Checkpoints: []Checkpoint{
		{0, newHashFromStr(mainGenesisHashStr)},
		{1000, newHashFromStr("0000017403e1e3da894b523e7efb27a7060da0cad0d4a1d24647bd24dd056ece")},
		{2000, newHashFromStr("0000005f58812f17b99f5dfbc1349f2e656f7c4c655b5bac883e58ee51a7e049")},
		{4000, newHashFromStr("000000bf41e29bf35c0ab6221a9d86a31425569c54afc0e42e2ab2d0a6e975f3")},
		{8000, newHashFromStr("0000016763d88f65fb4c3ab9ce9b31f58a5e44ae65ef74b190dbd791d08ee9b1")},
		{10000, newHashFromStr("000000000028088c742c40ecfb3ddc359e36a1e9dc53768babc5a31d4449d8e9")},
		{15000, newHashFromStr("0000000000002aa7f82185f8f893b64ca859df449166be598d6f18e7040fe7b0")},
		{19000, newHashFromStr("00000000000179f33ab4261292e903a911407000ebbe674395b7190a7262d8eb")},
		{35301, newHashFromStr("9d51c6d46f9fa97fa269641666bf7985ffc1a9e4f2777574eb215e4b2b254acb")},
		{35401, newHashFromStr("f99ff888de96c77fd726bf7a613ee506d8df9475f3676501d83e7b4047042a73")},
		{45490, newHashFromStr("4568f68742ef5b374acd156354c2a493443228004beae6864c70066bf38b3fd9")},
	},
	LastCheckpointTime:           time.Unix(1560133073, 0),
	TransactionsAtLastCheckpoint: 60726,
	TransactionsPerDay:           1440,
}

// MainNetParams returns the parameters of the main network.  Every other
// network is derived from them.
func MainNetParams() *Params {
	genesis := newGenesisBlock(mainGenesisTime, mainGenesisBits, mainGenesisNonce)
	genesisHash := assertGenesis("main", genesis, mainGenesisHashStr,
		mainGenesisMerkleRootStr)

	return &Params{
		ID:                     MainNet,
		Name:                   "main",
		Net:                    wire.BitcoinNet(0xcb21dc3c),
		AlertPubKey:            hexDecode(alertPubKey),
		DefaultPort:            "29871",
		MinerThreads:           0,
		SubsidyHalvingInterval: 1050000,
		MaxReorganizationDepth: 100,
		Majority: UpgradeMajority{
			Enforce: 750,
			Reject:  950,
			Window:  1000,
		},

		PowLimit:          limitShift(20),
		PowTargetTimespan: time.Minute,
		PowTargetSpacing:  time.Minute,
		PosLimit:          limitShift(20),
		PosTargetTimespan: 40 * time.Minute,
		PosTargetSpacing:  time.Minute,

		CoinbaseMaturity:     5,
		MasternodeCountDrift: 20,
		MaxMoney:             30000000 * btcutil.SatoshiPerBitcoin,

		LastPowBlock:        35300,
		ModifierUpdateBlock: 1,

		GenesisBlock: genesis,
		GenesisHash:  genesisHash,

		Prefixes: AddressPrefixes{
			PubKeyHash:   50,
			ScriptHash:   63,
			PrivateKey:   193,
			HDPublicKey:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // xpub
			HDPrivateKey: [4]byte{0x04, 0x88, 0xad, 0xe4}, // xprv
			HDCoinType:   0x800092f1,
		},

		FixedSeeds: append([]SeedSpec(nil), mainNetSeeds...),
		DNSSeeds: []DNSSeed{
			{"45.76.208.183", "45.76.208.183"},
			{"198.13.38.119", "198.13.38.119"},
			{"45.77.21.70", "45.77.21.70"},
			{"45.32.39.247", "45.32.39.247"},
		},

		MiningRequiresPeers:           true,
		AllowMinDifficultyBlocks:      false,
		DefaultConsistencyChecks:      false,
		RequireStandard:               true,
		MineBlocksOnDemand:            false,
		SkipProofOfWorkCheck:          false,
		TestnetToBeDeprecatedFieldRPC: false,
		HeadersFirstSyncingActive:     false,

		PoolMaxTransactions:         3,
		SporkPubKey:                 hexDecode(sporkPubKey),
		ObfuscationPoolDummyAddress: "MQ7Y1bswueUMpbdrX69NbqU9cVyJHFy73H",
		MasternodePaymentsStartTime: time.Unix(1525192183, 0),
		BudgetFeeConfirmations:      6,
		TreasuryAddress:             "MHGrD2ua36ii4L73rvXiJZBJR6KrsZBZji",

		Checkpoints: NewCheckpointTable(mainNetCheckpointData),
	}
}

// override is a named set of field changes applied to a parameter set.
type override func(p *Params)

// derive returns a copy of base with the overrides applied in order.
func derive(base *Params, overrides ...override) *Params {
	p := base.Clone()
	for _, o := range overrides {
		o(p)
	}
	return p
}
