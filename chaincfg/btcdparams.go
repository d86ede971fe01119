// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	btcdchaincfg "github.com/btcsuite/btcd/chaincfg"
)

// BtcdParams returns the network parameters in the form used by btcd
// packages, so btcutil address handling and other btcd-based collaborators
// can work with MasterCoreCoin networks.  Fields btcd has no equivalent for
// are left out.
func (p *Params) BtcdParams() *btcdchaincfg.Params {
	dnsSeeds := make([]btcdchaincfg.DNSSeed, 0, len(p.DNSSeeds))
	for _, seed := range p.DNSSeeds {
		dnsSeeds = append(dnsSeeds, btcdchaincfg.DNSSeed{Host: seed.Host})
	}

	var checkpoints []btcdchaincfg.Checkpoint
	for _, cp := range p.Checkpoints.Checkpoints() {
		checkpoints = append(checkpoints, btcdchaincfg.Checkpoint{
			Height: cp.Height,
			Hash:   cp.Hash,
		})
	}

	genesisHash := *p.GenesisHash
	return &btcdchaincfg.Params{
		Name:        p.Name,
		Net:         p.Net,
		DefaultPort: p.DefaultPort,
		DNSSeeds:    dnsSeeds,

		GenesisBlock: p.GenesisBlock,
		GenesisHash:  &genesisHash,

		PowLimit:                 p.PowLimit,
		PowLimitBits:             blockchain.BigToCompact(p.PowLimit),
		CoinbaseMaturity:         p.CoinbaseMaturity,
		SubsidyReductionInterval: p.SubsidyHalvingInterval,
		TargetTimespan:           p.PowTargetTimespan,
		TargetTimePerBlock:       p.PowTargetSpacing,
		RetargetAdjustmentFactor: 4,
		ReduceMinDifficulty:      p.AllowMinDifficultyBlocks,
		GenerateSupported:        p.MineBlocksOnDemand,

		Checkpoints: checkpoints,

		RelayNonStdTxs: !p.RequireStandard,

		PubKeyHashAddrID: p.Prefixes.PubKeyHash,
		ScriptHashAddrID: p.Prefixes.ScriptHash,
		PrivateKeyID:     p.Prefixes.PrivateKey,

		HDPrivateKeyID: p.Prefixes.HDPrivateKey,
		HDPublicKeyID:  p.Prefixes.HDPublicKey,
		HDCoinType:     p.Prefixes.HDCoinType &^ hardenedKeyStart,
	}
}

// hardenedKeyStart is the BIP32 hardened bit carried by the stored coin
// types.
const hardenedKeyStart = 0x80000000

// EncodePubKeyHash returns the base58 address paying to the given 20-byte
// public key hash on the network.
func EncodePubKeyHash(pkHash []byte, p *Params) (string, error) {
	addr, err := btcutil.NewAddressPubKeyHash(pkHash, p.BtcdParams())
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// EncodeScriptHash returns the base58 address paying to the given 20-byte
// script hash on the network.
func EncodeScriptHash(scriptHash []byte, p *Params) (string, error) {
	addr, err := btcutil.NewAddressScriptHashFromHash(scriptHash, p.BtcdParams())
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// DecodeAddress decodes a base58 pay-to-pubkey-hash or pay-to-script-hash
// address of the network.  A well formed address whose version byte belongs
// to another network returns ErrWrongNetwork.
func DecodeAddress(addr string, p *Params) (btcutil.Address, error) {
	_, version, err := base58.CheckDecode(addr)
	if err != nil {
		return nil, fmt.Errorf("decode address %q: %w", addr, err)
	}
	if version != p.Prefixes.PubKeyHash && version != p.Prefixes.ScriptHash {
		return nil, fmt.Errorf("%w: %q has version %d, %s network uses "+
			"%d and %d", ErrWrongNetwork, addr, version, p.Name,
			p.Prefixes.PubKeyHash, p.Prefixes.ScriptHash)
	}

	decoded, err := btcutil.DecodeAddress(addr, p.BtcdParams())
	if err != nil {
		return nil, fmt.Errorf("decode address %q: %w", addr, err)
	}
	return decoded, nil
}

// AlertKey parses the network alert public key.
func (p *Params) AlertKey() (*btcec.PublicKey, error) {
	if len(p.AlertPubKey) == 0 {
		return nil, fmt.Errorf("%s network has no alert key", p.Name)
	}
	return btcec.ParsePubKey(p.AlertPubKey)
}

// SporkKey parses the public key that signs spork messages.
func (p *Params) SporkKey() (*btcec.PublicKey, error) {
	if len(p.SporkPubKey) == 0 {
		return nil, fmt.Errorf("%s network has no spork key", p.Name)
	}
	return btcec.ParsePubKey(p.SporkPubKey)
}

// String returns a short description of the network.
func (p *Params) String() string {
	return p.Name + " (port " + p.DefaultPort + ", magic 0x" +
		strconv.FormatUint(uint64(p.Net), 16) + ")"
}
