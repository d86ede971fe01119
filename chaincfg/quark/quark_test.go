// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package quark

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
)

// Serialized genesis headers of the main and regression test networks.
const (
	mainGenesisHeader = "01000000000000000000000000000000000000000000000000" +
		"000000000000000000000034653ba4547a26a8ecff542b13a3f2f10f289b" +
		"409cd5c51f419b344a7f2880de98d4d25cf0ff0f1e224d0600"

	regTestGenesisHeader = "01000000000000000000000000000000000000000000000000" +
		"000000000000000000000034653ba4547a26a8ecff542b13a3f2f10f289b" +
		"409cd5c51f419b344a7f2880dedc766a5affff7f205c733901"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{
			name:   "main genesis",
			header: mainGenesisHeader,
			want:   "0000097b575ab70b0eb8ae6c5ded0fa5e271a2e5fd3c35d3224d96e48ae0c4b6",
		},
		{
			name:   "regtest genesis",
			header: regTestGenesisHeader,
			want:   "9c2d2c3ec97f180ad465129b2d2364aafc6f950ae6439e3ee6d6d26b1a18e00a",
		},
	}

	for _, test := range tests {
		raw, err := hex.DecodeString(test.header)
		require.NoError(t, err, test.name)
		require.Len(t, raw, wire.MaxBlockHeaderPayload, test.name)

		got := Hash(raw)
		require.Equal(t, test.want, got.String(), test.name)

		var header wire.BlockHeader
		require.NoError(t, header.Deserialize(bytes.NewReader(raw)), test.name)
		require.Equal(t, got, BlockHash(&header), test.name)
	}
}

func TestHasherReuse(t *testing.T) {
	raw, err := hex.DecodeString(mainGenesisHeader)
	require.NoError(t, err)

	q := New()
	first := q.Sum(raw)
	other := q.Sum([]byte("MasterCoreCoin"))
	second := q.Sum(raw)

	require.Equal(t, first, second)
	require.NotEqual(t, first, other)
	require.Equal(t, Hash([]byte("MasterCoreCoin")), other)
}
