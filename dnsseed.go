// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"math/rand"
	"net"
	"time"

	"github.com/btcsuite/btcd/wire"
	"golang.org/x/sync/errgroup"

	"github.com/MasterCoreCoin/mastercorecoin/chaincfg"
)

const (
	// maxConcurrentSeedLookups bounds the number of DNS seeds queried at
	// once.
	maxConcurrentSeedLookups = 8

	// seedLookupTimeout is how long a single DNS seed may take to answer.
	seedLookupTimeout = 10 * time.Second
)

// lookupFunc resolves a host name to its addresses.
type lookupFunc func(ctx context.Context, host string) ([]net.IP, error)

// defaultLookup resolves hosts with the system resolver.
func defaultLookup(ctx context.Context, host string) ([]net.IP, error) {
	return net.DefaultResolver.LookupIP(ctx, "ip", host)
}

// resolveDNSSeeds queries every DNS seed of the network and returns the
// addresses they answered with, in the order of the seeds.  A seed that fails
// to resolve is logged and skipped.  Like the fixed seeds, each address is
// given a random last seen time between three and seven days ago.
func resolveDNSSeeds(ctx context.Context, params *chaincfg.Params,
	lookup lookupFunc, rng *rand.Rand) []*wire.NetAddress {

	if lookup == nil {
		lookup = defaultLookup
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	port := params.DefaultPortNumber()

	results := make([][]net.IP, len(params.DNSSeeds))
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxConcurrentSeedLookups)
	for i, seed := range params.DNSSeeds {
		i, seed := i, seed
		g.Go(func() error {
			sem <- struct{}{}
			defer func() { <-sem }()

			lctx, cancel := context.WithTimeout(gctx, seedLookupTimeout)
			defer cancel()
			ips, err := lookup(lctx, seed.Host)
			if err != nil {
				dnsLog.Infof("DNS discovery failed on seed %s: %v",
					seed, err)
				return nil
			}
			results[i] = ips
			return nil
		})
	}
	_ = g.Wait()

	// The rng is not safe for concurrent use, so timestamps are assigned
	// after all lookups are done.
	var addrs []*wire.NetAddress
	now := time.Now()
	for i, ips := range results {
		if len(ips) == 0 {
			continue
		}
		for _, ip := range ips {
			lastSeen := now.Add(-time.Hour * 24 *
				time.Duration(rng.Int31n(4)+3))
			addrs = append(addrs, wire.NewNetAddressTimestamp(lastSeen,
				wire.SFNodeNetwork, ip, port))
		}
		dnsLog.Infof("%d addresses found from DNS seed %s", len(ips),
			params.DNSSeeds[i])
	}
	return addrs
}
