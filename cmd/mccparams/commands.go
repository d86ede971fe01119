// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/davecgh/go-spew/spew"
	flags "github.com/jessevdk/go-flags"

	"github.com/MasterCoreCoin/mastercorecoin/chaincfg"
)

// errCheckpointMismatch is returned by the verify command when the given
// hash contradicts the checkpoint at the height.
var errCheckpointMismatch = errors.New("hash does not match checkpoint")

// options are the flags shared by all commands.
type options struct {
	Network string `short:"n" long:"network" default:"main" description:"Network to inspect {main, test, regtest, unittest}"`
}

// app carries the state shared by the commands.
type app struct {
	opts     options
	out      io.Writer
	registry *chaincfg.Registry
}

// params returns the parameters of the network chosen on the command line.
func (a *app) params() (*chaincfg.Params, error) {
	id, err := chaincfg.ParseNetworkID(a.opts.Network)
	if err != nil {
		return nil, err
	}
	if a.registry == nil {
		a.registry = chaincfg.NewRegistry()
	}
	return a.registry.Lookup(id)
}

type showCmd struct {
	app *app

	Verbose bool `short:"v" long:"verbose" description:"Dump every field"`
}

func (c *showCmd) Execute(args []string) error {
	p, err := c.app.params()
	if err != nil {
		return err
	}
	if c.Verbose {
		// Dump the fields rather than the String form of the set.
		cfg := spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisablePointerMethods:   true,
			MaxDepth:                3,
		}
		cfg.Fdump(c.app.out, *p)
		return nil
	}

	out := c.app.out
	fmt.Fprintf(out, "network:            %s\n", p.Name)
	fmt.Fprintf(out, "magic:              0x%08x\n", uint32(p.Net))
	fmt.Fprintf(out, "port:               %s\n", p.DefaultPort)
	fmt.Fprintf(out, "genesis:            %v\n", p.GenesisHash)
	fmt.Fprintf(out, "merkle root:        %v\n", p.GenesisBlock.Header.MerkleRoot)
	fmt.Fprintf(out, "max money:          %v\n", p.MaxMoney)
	fmt.Fprintf(out, "halving interval:   %d\n", p.SubsidyHalvingInterval)
	fmt.Fprintf(out, "last pow block:     %d\n", p.LastPowBlock)
	fmt.Fprintf(out, "target spacing:     %v\n", p.PowTargetSpacing)
	fmt.Fprintf(out, "upgrade majority:   %d/%d of %d\n", p.Majority.Enforce,
		p.Majority.Reject, p.Majority.Window)
	fmt.Fprintf(out, "address prefixes:   pubkeyhash %d, scripthash %d, "+
		"privatekey %d\n", p.Prefixes.PubKeyHash, p.Prefixes.ScriptHash,
		p.Prefixes.PrivateKey)
	fmt.Fprintf(out, "checkpoints:        %d\n", p.Checkpoints.Len())
	return nil
}

type checkpointsCmd struct {
	app *app
}

func (c *checkpointsCmd) Execute(args []string) error {
	p, err := c.app.params()
	if err != nil {
		return err
	}

	out := c.app.out
	for _, cp := range p.Checkpoints.Checkpoints() {
		fmt.Fprintf(out, "%8d %v\n", cp.Height, cp.Hash)
	}
	table := p.Checkpoints
	fmt.Fprintf(out, "last checkpoint time %s, %d transactions, %.0f per day\n",
		table.LastCheckpointTime().UTC().Format(time.RFC3339),
		table.TransactionsAtLastCheckpoint(), table.TransactionsPerDay())
	return nil
}

type verifyCmd struct {
	app *app

	Args struct {
		Height int32  `positional-arg-name:"height"`
		Hash   string `positional-arg-name:"hash"`
	} `positional-args:"yes" required:"yes"`
}

func (c *verifyCmd) Execute(args []string) error {
	p, err := c.app.params()
	if err != nil {
		return err
	}
	hash, err := chainhash.NewHashFromStr(c.Args.Hash)
	if err != nil {
		return err
	}

	result := p.Checkpoints.Verify(c.Args.Height, hash)
	fmt.Fprintln(c.app.out, result)
	if result == chaincfg.CheckpointMismatch {
		return errCheckpointMismatch
	}
	return nil
}

type seedsCmd struct {
	app *app
}

func (c *seedsCmd) Execute(args []string) error {
	p, err := c.app.params()
	if err != nil {
		return err
	}

	out := c.app.out
	for _, seed := range p.DNSSeeds {
		fmt.Fprintf(out, "dns %s\n", seed)
	}
	for _, na := range p.SeedAddresses(time.Now(), nil) {
		ma, err := chaincfg.SeedMultiaddr(na)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "fixed %v\n", ma)
	}
	return nil
}

type addressCmd struct {
	app *app

	Script bool `short:"s" long:"script" description:"Encode as a pay-to-script-hash address"`

	Args struct {
		Hash string `positional-arg-name:"hash160"`
	} `positional-args:"yes" required:"yes"`
}

func (c *addressCmd) Execute(args []string) error {
	p, err := c.app.params()
	if err != nil {
		return err
	}
	hash, err := hex.DecodeString(c.Args.Hash)
	if err != nil {
		return err
	}

	encode := chaincfg.EncodePubKeyHash
	if c.Script {
		encode = chaincfg.EncodeScriptHash
	}
	addr, err := encode(hash, p)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.app.out, addr)
	return nil
}

type decodeCmd struct {
	app *app

	Args struct {
		Address string `positional-arg-name:"address"`
	} `positional-args:"yes" required:"yes"`
}

func (c *decodeCmd) Execute(args []string) error {
	p, err := c.app.params()
	if err != nil {
		return err
	}
	addr, err := chaincfg.DecodeAddress(c.Args.Address, p)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.app.out, "%T %x\n", addr, addr.ScriptAddress())
	return nil
}

type progressCmd struct {
	app *app

	Height  int32  `long:"height" description:"Height of the chain tip"`
	TxCount int64  `long:"txcount" required:"yes" description:"Transactions from genesis up to the chain tip"`
	Time    int64  `long:"time" required:"yes" description:"Unix time of the chain tip"`
	Now     string `long:"now" description:"Unix time to estimate at, defaults to the current time"`
}

func (c *progressCmd) Execute(args []string) error {
	p, err := c.app.params()
	if err != nil {
		return err
	}
	now := time.Now()
	if c.Now != "" {
		secs, err := strconv.ParseInt(c.Now, 10, 64)
		if err != nil {
			return err
		}
		now = time.Unix(secs, 0)
	}

	tip := chaincfg.ChainTip{
		Height:  c.Height,
		TxCount: c.TxCount,
		Time:    time.Unix(c.Time, 0),
	}
	progress := p.Checkpoints.EstimateSyncProgress(tip, now)
	fmt.Fprintf(c.app.out, "%.6f\n", progress)
	return nil
}

// newParser returns the command line parser of the tool with its commands
// writing to out.
func newParser(out io.Writer) (*flags.Parser, error) {
	a := &app{out: out}
	parser := flags.NewParser(&a.opts, flags.HelpFlag|flags.PassDoubleDash)

	commands := []struct {
		name, short, long string
		data              interface{}
	}{
		{"show", "Show network parameters", "Print a summary of the parameters of the network.", &showCmd{app: a}},
		{"checkpoints", "List checkpoints", "List the checkpoints of the network by height.", &checkpointsCmd{app: a}},
		{"verify", "Verify a block hash", "Check a block hash at a height against the checkpoints.", &verifyCmd{app: a}},
		{"seeds", "List seed nodes", "List the DNS seeds and fixed seed addresses of the network.", &seedsCmd{app: a}},
		{"address", "Encode an address", "Encode a hex hash160 as an address of the network.", &addressCmd{app: a}},
		{"decode", "Decode an address", "Decode an address of the network.", &decodeCmd{app: a}},
		{"progress", "Estimate sync progress", "Estimate verification progress of a chain tip.", &progressCmd{app: a}},
	}
	for _, cmd := range commands {
		if _, err := parser.AddCommand(cmd.name, cmd.short, cmd.long, cmd.data); err != nil {
			return nil, err
		}
	}
	return parser, nil
}
