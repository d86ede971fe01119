// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// These variables are the proof-of-work and proof-of-stake limit parameters
// for each default network.
var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// maxUint256 is the largest 256-bit unsigned value, ~uint256(0).
	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256), bigOne)
)

// limitShift returns ~uint256(0) >> n as a freshly allocated big.Int.
func limitShift(n uint) *big.Int {
	return new(big.Int).Rsh(maxUint256, n)
}

// NetworkID identifies one of the logical networks known to the registry.
type NetworkID int

const (
	// MainNet is the production network.
	MainNet NetworkID = iota

	// TestNet is the public test network.
	TestNet

	// RegTest is the local regression test network.
	RegTest

	// UnitTest is the in-process network used by unit tests.  It is the
	// only network whose parameters may be modified after construction.
	UnitTest

	// numNetworks is the number of defined networks.  It must always come
	// last.
	numNetworks
)

// networkNames maps each network to the name used on the command line and in
// logs.
var networkNames = [numNetworks]string{
	MainNet:  "main",
	TestNet:  "test",
	RegTest:  "regtest",
	UnitTest: "unittest",
}

// String returns the NetworkID in human-readable form.
func (id NetworkID) String() string {
	if id < 0 || id >= numNetworks {
		return fmt.Sprintf("Unknown NetworkID (%d)", int(id))
	}
	return networkNames[id]
}

// IsValid returns whether id names one of the defined networks.
func (id NetworkID) IsValid() bool {
	return id >= 0 && id < numNetworks
}

// ParseNetworkID returns the network identified by name.  Besides the names
// returned by NetworkID.String, "mainnet" and "testnet" are accepted.
func ParseNetworkID(name string) (NetworkID, error) {
	switch strings.ToLower(name) {
	case "main", "mainnet":
		return MainNet, nil
	case "test", "testnet":
		return TestNet, nil
	case "regtest":
		return RegTest, nil
	case "unittest":
		return UnitTest, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
}

var (
	// ErrUnknownNetwork describes an error where a network identifier does
	// not name one of the defined networks.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrWrongNetwork describes an error where an address is well formed but
	// is encoded for a different network than the one requested.
	ErrWrongNetwork = errors.New("address is for a different network")
)

// UpgradeMajority holds the block version majority thresholds.  Enforce and
// Reject are counted over the most recent Window blocks.
type UpgradeMajority struct {
	// Enforce is the number of blocks that must carry a new version before
	// the new rules are enforced for blocks of that version.
	Enforce int32

	// Reject is the number of blocks that must carry a new version before
	// blocks with an older version are rejected.
	Reject int32

	// Window is the number of recent blocks examined.
	Window int32
}

// AddressKind identifies one of the base58 prefixes of a network.
type AddressKind int

const (
	PubKeyHashAddr AddressKind = iota
	ScriptHashAddr
	PrivateKey
	ExtPublicKey
	ExtPrivateKey
	ExtCoinType
)

var addressKindStrings = map[AddressKind]string{
	PubKeyHashAddr: "pubkeyhash",
	ScriptHashAddr: "scripthash",
	PrivateKey:     "privatekey",
	ExtPublicKey:   "extpublickey",
	ExtPrivateKey:  "extprivatekey",
	ExtCoinType:    "extcointype",
}

// String returns the AddressKind in human-readable form.
func (k AddressKind) String() string {
	if s, ok := addressKindStrings[k]; ok {
		return s
	}
	return fmt.Sprintf("Unknown AddressKind (%d)", int(k))
}

// AddressPrefixes holds the version bytes used by the base58 encoder.
type AddressPrefixes struct {
	PubKeyHash byte // First byte of a P2PKH address
	ScriptHash byte // First byte of a P2SH address
	PrivateKey byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPublicKey  [4]byte
	HDPrivateKey [4]byte

	// BIP44 coin type, stored with the hardened bit set as it appears in
	// the serialized prefix.
	HDCoinType uint32
}

// Prefix returns the prefix bytes for the given address kind, or nil for an
// unknown kind.
func (p *AddressPrefixes) Prefix(kind AddressKind) []byte {
	switch kind {
	case PubKeyHashAddr:
		return []byte{p.PubKeyHash}
	case ScriptHashAddr:
		return []byte{p.ScriptHash}
	case PrivateKey:
		return []byte{p.PrivateKey}
	case ExtPublicKey:
		return append([]byte(nil), p.HDPublicKey[:]...)
	case ExtPrivateKey:
		return append([]byte(nil), p.HDPrivateKey[:]...)
	case ExtCoinType:
		return []byte{
			byte(p.HDCoinType >> 24), byte(p.HDCoinType >> 16),
			byte(p.HDCoinType >> 8), byte(p.HDCoinType),
		}
	}
	return nil
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Label is the display name of the seed.
	Label string

	// Host defines the hostname (or literal address) of the seed.
	Host string
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// Params defines a MasterCoreCoin network by its parameters.  These
// parameters may be used by applications to differentiate networks as well
// as addresses and keys for one network from those intended for use on
// another network.
type Params struct {
	// ID is the identity of the network within the registry.
	ID NetworkID

	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// AlertPubKey is the serialized public key that signs network alerts.
	AlertPubKey []byte

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// MinerThreads is the default number of internal miner threads.  Zero
	// means one thread per CPU.
	MinerThreads int

	// SubsidyHalvingInterval is the interval of blocks before the subsidy
	// is reduced.
	SubsidyHalvingInterval int32

	// MaxReorganizationDepth is the deepest reorganization the node will
	// accept.
	MaxReorganizationDepth int32

	// Majority holds the block version upgrade thresholds.
	Majority UpgradeMajority

	// PowLimit and PosLimit define the highest allowed target of a block
	// in the proof-of-work and proof-of-stake eras.
	PowLimit *big.Int
	PosLimit *big.Int

	// Block timing of the proof-of-work era.
	PowTargetTimespan time.Duration
	PowTargetSpacing  time.Duration

	// Block timing of the proof-of-stake era.
	PosTargetTimespan time.Duration
	PosTargetSpacing  time.Duration

	// CoinbaseMaturity is the number of blocks required before newly
	// minted coins can be spent.
	CoinbaseMaturity uint16

	// MasternodeCountDrift is the tolerated difference between the local
	// masternode count and the network estimate.
	MasternodeCountDrift int32

	// MaxMoney is the total supply cap.
	MaxMoney btcutil.Amount

	// LastPowBlock is the height of the final proof-of-work block.
	LastPowBlock int32

	// ModifierUpdateBlock is the height from which the stake modifier
	// is computed with the updated rules.
	ModifierUpdateBlock int32

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// Prefixes holds the address and extended key encoding magics.
	Prefixes AddressPrefixes

	// FixedSeeds holds compact peer records used when DNS discovery
	// yields nothing.  See SeedAddresses.
	FixedSeeds []SeedSpec

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// Behavioral flags.
	MiningRequiresPeers           bool
	AllowMinDifficultyBlocks      bool
	DefaultConsistencyChecks      bool
	RequireStandard               bool
	MineBlocksOnDemand            bool
	SkipProofOfWorkCheck          bool
	TestnetToBeDeprecatedFieldRPC bool
	HeadersFirstSyncingActive     bool

	// Masternode, spork and budget parameters.
	PoolMaxTransactions         int
	SporkPubKey                 []byte
	ObfuscationPoolDummyAddress string
	MasternodePaymentsStartTime time.Time
	BudgetFeeConfirmations      int
	TreasuryAddress             string

	// Checkpoints is the checkpoint table of the network.
	Checkpoints *CheckpointTable
}

// Clone returns a deep copy of p.  The checkpoint table and the genesis
// block are immutable and are shared.
func (p *Params) Clone() *Params {
	c := *p
	c.AlertPubKey = append([]byte(nil), p.AlertPubKey...)
	c.SporkPubKey = append([]byte(nil), p.SporkPubKey...)
	c.FixedSeeds = append([]SeedSpec(nil), p.FixedSeeds...)
	c.DNSSeeds = append([]DNSSeed(nil), p.DNSSeeds...)
	if p.PowLimit != nil {
		c.PowLimit = new(big.Int).Set(p.PowLimit)
	}
	if p.PosLimit != nil {
		c.PosLimit = new(big.Int).Set(p.PosLimit)
	}
	return &c
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}

// hexDecode decodes a hard-coded hex string and panics on failure, for the
// same reason as newHashFromStr.
func hexDecode(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}
