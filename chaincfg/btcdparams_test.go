// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/require"
)

func TestBtcdParams(t *testing.T) {
	main := MainNetParams()
	bp := main.BtcdParams()

	require.Equal(t, "main", bp.Name)
	require.Equal(t, main.Net, bp.Net)
	require.Equal(t, "29871", bp.DefaultPort)
	require.Equal(t, main.GenesisHash, bp.GenesisHash)
	require.Equal(t, byte(50), bp.PubKeyHashAddrID)
	require.Equal(t, byte(63), bp.ScriptHashAddrID)
	require.Equal(t, byte(193), bp.PrivateKeyID)
	require.Equal(t, [4]byte{0x04, 0x88, 0xb2, 0x1e}, bp.HDPublicKeyID)
	require.Equal(t, uint32(0x92f1), bp.HDCoinType)
	require.Equal(t, uint16(5), bp.CoinbaseMaturity)
	require.Equal(t, int32(1050000), bp.SubsidyReductionInterval)
	require.Len(t, bp.Checkpoints, 11)
	require.Len(t, bp.DNSSeeds, 4)
	require.Equal(t, "45.76.208.183", bp.DNSSeeds[0].Host)
	require.False(t, bp.RelayNonStdTxs)
	require.Equal(t, uint32(0x1e0fffff), bp.PowLimitBits)

	require.True(t, TestNetParams().BtcdParams().RelayNonStdTxs)
	require.Equal(t, uint32(1), TestNetParams().BtcdParams().HDCoinType)
}

func TestDecodeAddress(t *testing.T) {
	main, test := MainNetParams(), TestNetParams()

	for _, encoded := range []string{main.TreasuryAddress, main.ObfuscationPoolDummyAddress} {
		addr, err := DecodeAddress(encoded, main)
		require.NoError(t, err, encoded)
		require.IsType(t, &btcutil.AddressPubKeyHash{}, addr)
		require.Equal(t, encoded, addr.EncodeAddress())
		require.True(t, addr.IsForNet(main.BtcdParams()))
	}

	addr, err := DecodeAddress(main.TreasuryAddress, main)
	require.NoError(t, err)
	require.Equal(t, "66d33ccae71cccf49299ab5e96ad368606d1d695",
		hex.EncodeToString(addr.ScriptAddress()))

	_, err = DecodeAddress(main.TreasuryAddress, test)
	require.True(t, errors.Is(err, ErrWrongNetwork))

	// The test network addresses carry bad checksums.
	_, err = DecodeAddress(test.TreasuryAddress, test)
	require.True(t, errors.Is(err, base58.ErrChecksum))

	_, err = DecodeAddress("not an address", main)
	require.Error(t, err)
}

func TestEncodeAddress(t *testing.T) {
	main, test := MainNetParams(), TestNetParams()
	hash, err := hex.DecodeString("66d33ccae71cccf49299ab5e96ad368606d1d695")
	require.NoError(t, err)

	encoded, err := EncodePubKeyHash(hash, main)
	require.NoError(t, err)
	require.Equal(t, "MHGrD2ua36ii4L73rvXiJZBJR6KrsZBZji", encoded)

	for _, p := range []*Params{main, test} {
		encoded, err := EncodePubKeyHash(hash, p)
		require.NoError(t, err)
		_, version, err := base58.CheckDecode(encoded)
		require.NoError(t, err)
		require.Equal(t, p.Prefixes.PubKeyHash, version)

		decoded, err := DecodeAddress(encoded, p)
		require.NoError(t, err)
		require.Equal(t, hash, decoded.ScriptAddress())

		encoded, err = EncodeScriptHash(hash, p)
		require.NoError(t, err)
		_, version, err = base58.CheckDecode(encoded)
		require.NoError(t, err)
		require.Equal(t, p.Prefixes.ScriptHash, version)

		decoded, err = DecodeAddress(encoded, p)
		require.NoError(t, err)
		require.IsType(t, &btcutil.AddressScriptHash{}, decoded)
	}

	_, err = EncodePubKeyHash(hash[:10], main)
	require.Error(t, err)
}

func TestNetworkKeys(t *testing.T) {
	for _, p := range allParams() {
		key, err := p.AlertKey()
		require.NoError(t, err, p.Name)
		require.Equal(t, p.AlertPubKey, key.SerializeUncompressed(), p.Name)

		key, err = p.SporkKey()
		require.NoError(t, err, p.Name)
		require.Equal(t, p.SporkPubKey, key.SerializeUncompressed(), p.Name)
	}

	p := MainNetParams()
	p.AlertPubKey = nil
	_, err := p.AlertKey()
	require.Error(t, err)

	p.SporkPubKey = []byte{0x04, 0x01}
	_, err = p.SporkKey()
	require.Error(t, err)
}
