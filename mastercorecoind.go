// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"runtime/pprof"
	"time"

	"github.com/MasterCoreCoin/mastercorecoin/chaincfg"
	"github.com/MasterCoreCoin/mastercorecoin/netsync"
)

var (
	cfg *config
)

// logNetworkParams writes a summary of the active network to the log.
func logNetworkParams(params *chaincfg.Params) {
	mccdLog.Infof("Active network: %v", params)
	mccdLog.Infof("Genesis block %v, %d checkpoints up to height %d",
		params.GenesisHash, params.Checkpoints.Len(),
		params.Checkpoints.LatestCheckpointHeight())
	mccdLog.Debugf("Last proof-of-work block %d, modifier update at %d, "+
		"block time %v", params.LastPowBlock, params.ModifierUpdateBlock,
		params.PowTargetSpacing)
}

// gatherPeerAddresses collects the bootstrap addresses of the network: the
// fixed seeds and, unless disabled, the answers of its DNS seeds.
func gatherPeerAddresses(ctx context.Context, params *chaincfg.Params,
	noDNSSeed bool, lookup lookupFunc) int {

	addrs := params.SeedAddresses(time.Now(), nil)
	for _, na := range addrs {
		if ma, err := chaincfg.SeedMultiaddr(na); err == nil {
			mccdLog.Tracef("Fixed seed %v", ma)
		}
	}
	mccdLog.Infof("Loaded %d fixed seed addresses", len(addrs))

	if noDNSSeed {
		mccdLog.Infof("DNS seeding disabled -- skipping %d DNS seeds",
			len(params.DNSSeeds))
		return len(addrs)
	}
	addrs = append(addrs, resolveDNSSeeds(ctx, params, lookup, nil)...)
	return len(addrs)
}

// mccdMain is the real main function for mastercorecoind.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func mccdMain() error {
	tcfg, _, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	cfg = tcfg
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	// Get a channel that will be closed when a shutdown signal has been
	// triggered from an OS signal such as SIGINT (Ctrl+C).
	interrupt := interruptListener()
	defer mccdLog.Info("Shutdown complete")

	// Show version at startup.
	mccdLog.Infof("Version %s", version())

	// Write cpu profile if requested.
	if cfg.CPUProfile != "" {
		f, err := os.Create(cfg.CPUProfile)
		if err != nil {
			mccdLog.Errorf("Unable to create cpu profile: %v", err)
			return err
		}
		pprof.StartCPUProfile(f)
		defer f.Close()
		defer pprof.StopCPUProfile()
	}

	registry := chaincfg.NewRegistry()
	if err := registry.SelectNetwork(cfg.network); err != nil {
		mccdLog.Errorf("%v", err)
		return err
	}
	params := registry.ActiveParams()
	logNetworkParams(params)

	if interruptRequested(interrupt) {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-interrupt
		cancel()
	}()
	gatherPeerAddresses(ctx, params, cfg.NoDNSSeed, nil)

	if interruptRequested(interrupt) {
		return nil
	}

	syncManager, err := netsync.New(&netsync.Config{
		ChainParams:        params,
		DisableCheckpoints: cfg.DisableCheckpoints,
	})
	if err != nil {
		mccdLog.Errorf("Unable to create header sync manager: %v", err)
		return err
	}
	syncManager.Start()
	defer func() {
		mccdLog.Infof("Gracefully shutting down the header sync manager...")
		syncManager.Stop()
	}()

	if cfg.ImportHeaders != "" {
		err := importHeaders(cfg.ImportHeaders, syncManager, interrupt)
		if err != nil && !errors.Is(err, errInterrupted) {
			mccdLog.Errorf("%v", err)
			return err
		}
		mccdLog.Infof("Header sync progress %.2f%%",
			syncManager.Progress()*100)
	}

	// Wait until the interrupt signal is received from an OS signal.
	<-interrupt
	return nil
}

func main() {
	// Header processing can cause bursty allocations.  This limits the
	// garbage collector from excessively overallocating during bursts.
	debug.SetGCPercent(30)

	// Work around defer not working after os.Exit()
	if err := mccdMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
