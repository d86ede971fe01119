// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"

	"github.com/MasterCoreCoin/mastercorecoin/chaincfg"
	"github.com/MasterCoreCoin/mastercorecoin/chaincfg/quark"
	"github.com/MasterCoreCoin/mastercorecoin/netsync"
)

// chainFrom returns n linked headers on top of parent.
func chainFrom(parent *wire.BlockHeader, n int) []*wire.BlockHeader {
	headers := make([]*wire.BlockHeader, 0, n)
	prev := parent
	for i := 0; i < n; i++ {
		header := &wire.BlockHeader{
			Version:    1,
			PrevBlock:  quark.BlockHash(prev),
			MerkleRoot: chainhash.Hash{byte(i)},
			Timestamp:  prev.Timestamp.Add(time.Minute),
			Bits:       prev.Bits,
		}
		headers = append(headers, header)
		prev = header
	}
	return headers
}

func serializeHeaders(t *testing.T, headers []*wire.BlockHeader) []byte {
	t.Helper()

	var buf bytes.Buffer
	for _, h := range headers {
		require.NoError(t, h.Serialize(&buf))
	}
	return buf.Bytes()
}

func TestReadHeaders(t *testing.T) {
	genesis := &chaincfg.MainNetParams().GenesisBlock.Header
	headers := chainFrom(genesis, 5)
	data := serializeHeaders(t, headers)

	var batches []int
	var got []*wire.BlockHeader
	n, err := readHeaders(bytes.NewReader(data), 2, func(msg *wire.MsgHeaders) error {
		batches = append(batches, len(msg.Headers))
		got = append(got, msg.Headers...)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, []int{2, 2, 1}, batches)
	for i := range headers {
		require.Equal(t, headers[i].BlockHash(), got[i].BlockHash())
	}

	// An empty stream has no headers.
	n, err = readHeaders(bytes.NewReader(nil), 0, func(*wire.MsgHeaders) error {
		t.Fatal("unexpected batch")
		return nil
	})
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestReadHeadersErrors(t *testing.T) {
	genesis := &chaincfg.MainNetParams().GenesisBlock.Header
	data := serializeHeaders(t, chainFrom(genesis, 3))

	// A stream cut inside a header is rejected.
	n, err := readHeaders(bytes.NewReader(data[:len(data)-10]), 0,
		func(*wire.MsgHeaders) error { return nil })
	require.True(t, errors.Is(err, io.ErrUnexpectedEOF), err)
	require.Zero(t, n)

	// Errors from the batch handler stop the read.
	errStop := errors.New("stop")
	n, err = readHeaders(bytes.NewReader(data), 1,
		func(*wire.MsgHeaders) error { return errStop })
	require.True(t, errors.Is(err, errStop), err)
	require.Zero(t, n)
}

func TestImportHeaders(t *testing.T) {
	m := chaincfg.NewMutableParams(chaincfg.UnitTestParams())
	m.SetSkipProofOfWorkCheck(true)
	params := m.Params()

	sm, err := netsync.New(&netsync.Config{
		ChainParams:        params,
		DisableCheckpoints: true,
	})
	require.NoError(t, err)
	sm.Start()
	defer sm.Stop()

	path := filepath.Join(t.TempDir(), "headers.dat")
	headers := chainFrom(&params.GenesisBlock.Header, 7)
	require.NoError(t, os.WriteFile(path, serializeHeaders(t, headers), 0600))

	require.NoError(t, importHeaders(path, sm, make(chan struct{})))
	hash, height := sm.BestHeader()
	require.Equal(t, int32(7), height)
	want := quark.BlockHash(headers[6])
	require.Equal(t, &want, hash)

	// An interrupted import stops before handing over any headers.
	interrupt := make(chan struct{})
	close(interrupt)
	err = importHeaders(path, sm, interrupt)
	require.True(t, errors.Is(err, errInterrupted), err)

	require.Error(t, importHeaders(filepath.Join(t.TempDir(), "missing"),
		sm, interrupt))
}
