// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"math/rand"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MasterCoreCoin/mastercorecoin/chaincfg"
)

func TestResolveDNSSeeds(t *testing.T) {
	params := chaincfg.MainNetParams()
	require.Len(t, params.DNSSeeds, 4)

	answers := map[string][]net.IP{
		params.DNSSeeds[0].Host: {net.ParseIP("1.2.3.4"), net.ParseIP("5.6.7.8")},
		params.DNSSeeds[2].Host: {net.ParseIP("2001:db8::1")},
		params.DNSSeeds[3].Host: nil,
	}
	lookup := func(ctx context.Context, host string) ([]net.IP, error) {
		ips, ok := answers[host]
		if !ok {
			return nil, errors.New("no such host")
		}
		return ips, nil
	}

	start := time.Now()
	addrs := resolveDNSSeeds(context.Background(), params, lookup,
		rand.New(rand.NewSource(1)))
	end := time.Now()
	require.Len(t, addrs, 3)

	want := []net.IP{
		net.ParseIP("1.2.3.4"),
		net.ParseIP("5.6.7.8"),
		net.ParseIP("2001:db8::1"),
	}
	for i, na := range addrs {
		require.True(t, want[i].Equal(na.IP), na.IP)
		require.Equal(t, params.DefaultPortNumber(), na.Port)
		require.False(t, na.Timestamp.After(end.Add(-3*24*time.Hour)))
		require.True(t, na.Timestamp.After(start.Add(-7*24*time.Hour-time.Minute)))
	}
}

func TestResolveDNSSeedsCancelled(t *testing.T) {
	params := chaincfg.TestNetParams()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lookup := func(ctx context.Context, host string) ([]net.IP, error) {
		return nil, ctx.Err()
	}
	addrs := resolveDNSSeeds(ctx, params, lookup, nil)
	require.Empty(t, addrs)
}

func TestGatherPeerAddresses(t *testing.T) {
	params := chaincfg.MainNetParams()
	lookup := func(ctx context.Context, host string) ([]net.IP, error) {
		return []net.IP{net.ParseIP(host)}, nil
	}

	n := gatherPeerAddresses(context.Background(), params, true, lookup)
	require.Equal(t, len(params.FixedSeeds), n)

	n = gatherPeerAddresses(context.Background(), params, false, lookup)
	require.Equal(t, len(params.FixedSeeds)+len(params.DNSSeeds), n)
}
