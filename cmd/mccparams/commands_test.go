// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MasterCoreCoin/mastercorecoin/chaincfg"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	parser, err := newParser(&out)
	require.NoError(t, err)
	_, err = parser.ParseArgs(args)
	return out.String(), err
}

func TestShow(t *testing.T) {
	out, err := run(t, "show")
	require.NoError(t, err)
	require.Contains(t, out, "network:            main")
	require.Contains(t, out, "magic:              0xcb21dc3c")
	require.Contains(t, out,
		"0000097b575ab70b0eb8ae6c5ded0fa5e271a2e5fd3c35d3224d96e48ae0c4b6")

	out, err = run(t, "--network", "regtest", "show")
	require.NoError(t, err)
	require.Contains(t, out, "network:            regtest")

	out, err = run(t, "-n", "test", "show", "--verbose")
	require.NoError(t, err)
	require.Contains(t, out, "DefaultPort")

	_, err = run(t, "-n", "nosuchnet", "show")
	require.True(t, errors.Is(err, chaincfg.ErrUnknownNetwork), err)
}

func TestCheckpoints(t *testing.T) {
	out, err := run(t, "checkpoints")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, chaincfg.MainNetParams().Checkpoints.Len()+1)
	require.Contains(t, lines[0], "0000097b575ab70b")
	require.Contains(t, lines[len(lines)-1], "60726 transactions")
}

func TestVerify(t *testing.T) {
	genesis := "0000097b575ab70b0eb8ae6c5ded0fa5e271a2e5fd3c35d3224d96e48ae0c4b6"
	other := strings.Repeat("00", 31) + "01"

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{name: "match", args: []string{"verify", "0", genesis}, want: "CheckpointMatch"},
		{name: "mismatch", args: []string{"verify", "0", other}, want: "CheckpointMismatch", wantErr: errCheckpointMismatch},
		{name: "no checkpoint", args: []string{"verify", "5", other}, want: "NoCheckpointAtHeight"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := run(t, test.args...)
			if test.wantErr != nil {
				require.True(t, errors.Is(err, test.wantErr), err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, test.want, strings.TrimSpace(out))
		})
	}

	_, err := run(t, "verify", "0", "xyz")
	require.Error(t, err)
}

func TestSeeds(t *testing.T) {
	out, err := run(t, "seeds")
	require.NoError(t, err)
	require.Contains(t, out, "dns 45.76.208.183")
	require.Contains(t, out, "fixed /ip4/45.76.208.183/tcp/29871")

	out, err = run(t, "-n", "regtest", "seeds")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestAddress(t *testing.T) {
	hash := "66d33ccae71cccf49299ab5e96ad368606d1d695"

	out, err := run(t, "address", hash)
	require.NoError(t, err)
	require.Equal(t, "MHGrD2ua36ii4L73rvXiJZBJR6KrsZBZji", strings.TrimSpace(out))

	out, err = run(t, "decode", "MHGrD2ua36ii4L73rvXiJZBJR6KrsZBZji")
	require.NoError(t, err)
	require.Contains(t, out, hash)

	out, err = run(t, "address", "--script", hash)
	require.NoError(t, err)
	decoded, err := run(t, "decode", strings.TrimSpace(out))
	require.NoError(t, err)
	require.Contains(t, decoded, "AddressScriptHash")

	_, err = run(t, "-n", "test", "decode", "MHGrD2ua36ii4L73rvXiJZBJR6KrsZBZji")
	require.True(t, errors.Is(err, chaincfg.ErrWrongNetwork), err)

	_, err = run(t, "address", "abcd")
	require.Error(t, err)
}

func TestProgress(t *testing.T) {
	p := chaincfg.MainNetParams()
	last := p.Checkpoints.LastCheckpointTime().Unix()

	// At the last checkpoint with no time elapsed the chain is synced.
	out, err := run(t, "progress", "--txcount", "60726",
		"--time", strconv.FormatInt(last, 10), "--now", strconv.FormatInt(last, 10))
	require.NoError(t, err)
	require.Equal(t, "1.000000", strings.TrimSpace(out))

	out, err = run(t, "progress", "--txcount", "0",
		"--time", strconv.FormatInt(last, 10), "--now", strconv.FormatInt(last, 10))
	require.NoError(t, err)
	require.Equal(t, "0.000000", strings.TrimSpace(out))

	_, err = run(t, "progress", "--time", "0")
	require.Error(t, err)
}
