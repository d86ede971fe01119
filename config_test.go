// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MasterCoreCoin/mastercorecoin/chaincfg"
)

func closeLogRotator(t *testing.T) {
	t.Cleanup(func() {
		if logRotator != nil {
			logRotator.Close()
			logRotator = nil
		}
	})
}

func TestSelectedNetwork(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config
		want    chaincfg.NetworkID
		wantErr bool
	}{
		{name: "default", cfg: config{}, want: chaincfg.MainNet},
		{name: "testnet", cfg: config{TestNet: true}, want: chaincfg.TestNet},
		{name: "regtest", cfg: config{RegressionTest: true}, want: chaincfg.RegTest},
		{name: "unittest", cfg: config{UnitTest: true}, want: chaincfg.UnitTest},
		{
			name:    "two networks",
			cfg:     config{TestNet: true, RegressionTest: true},
			wantErr: true,
		},
		{
			name:    "all networks",
			cfg:     config{TestNet: true, RegressionTest: true, UnitTest: true},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := test.cfg.selectedNetwork()
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}

func TestLoadConfigCommandLine(t *testing.T) {
	closeLogRotator(t)
	dir := t.TempDir()

	cfg, _, err := loadConfig([]string{
		"--configfile", filepath.Join(dir, "missing.conf"),
		"--logdir", dir,
		"--regtest",
		"--nodnsseed",
		"-d", "SYNC=debug,CHCF=warn",
	})
	require.NoError(t, err)
	require.Equal(t, chaincfg.RegTest, cfg.network)
	require.True(t, cfg.NoDNSSeed)
	require.Equal(t, filepath.Join(dir, "regtest"), cfg.LogDir)

	_, err = os.Stat(filepath.Join(cfg.LogDir, defaultLogFilename))
	require.NoError(t, err)
}

func TestLoadConfigFile(t *testing.T) {
	closeLogRotator(t)
	dir := t.TempDir()

	configFile := filepath.Join(dir, defaultConfigFilename)
	contents := "[Application Options]\ntestnet=1\nnocheckpoints=1\n"
	require.NoError(t, os.WriteFile(configFile, []byte(contents), 0600))

	cfg, _, err := loadConfig([]string{
		"--configfile", configFile,
		"--logdir", dir,
	})
	require.NoError(t, err)
	require.Equal(t, chaincfg.TestNet, cfg.network)
	require.True(t, cfg.DisableCheckpoints)
	require.Equal(t, filepath.Join(dir, "test"), cfg.LogDir)
}

func TestLoadConfigErrors(t *testing.T) {
	closeLogRotator(t)
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.conf")

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "conflicting networks",
			args: []string{"--configfile", missing, "--logdir", dir,
				"--testnet", "--unittest"},
		},
		{
			name: "bad debug level",
			args: []string{"--configfile", missing, "--logdir", dir,
				"-d", "loud"},
		},
		{
			name: "unknown subsystem",
			args: []string{"--configfile", missing, "--logdir", dir,
				"-d", "NOPE=info"},
		},
		{
			name: "unknown flag",
			args: []string{"--configfile", missing, "--bogus"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := loadConfig(test.args)
			require.Error(t, err)
		})
	}
}
