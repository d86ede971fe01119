// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	flags "github.com/jessevdk/go-flags"

	"github.com/MasterCoreCoin/mastercorecoin/chaincfg"
)

const (
	defaultConfigFilename = "mastercorecoind.conf"
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "mastercorecoind.log"
)

var (
	defaultHomeDir    = btcutil.AppDataDir("mastercorecoind", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// config defines the configuration options for mastercorecoind.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion        bool   `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile         string `short:"C" long:"configfile" description:"Path to configuration file"`
	LogDir             string `long:"logdir" description:"Directory to log output."`
	DebugLevel         string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	TestNet            bool   `long:"testnet" description:"Use the test network"`
	RegressionTest     bool   `long:"regtest" description:"Use the regression test network"`
	UnitTest           bool   `long:"unittest" description:"Use the unit test network"`
	NoDNSSeed          bool   `long:"nodnsseed" description:"Disable DNS seeding for peers"`
	DisableCheckpoints bool   `long:"nocheckpoints" description:"Disable built-in checkpoints.  Don't do this unless you know what you're doing."`
	ImportHeaders      string `long:"importheaders" description:"Verify the serialized block headers in the given file against the checkpoints of the selected network"`
	CPUProfile         string `long:"cpuprofile" description:"Write CPU profile to the specified file"`

	network chaincfg.NetworkID
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(defaultHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// selectedNetwork returns the network chosen by the network flags.  Only
// one of them may be given.
func (cfg *config) selectedNetwork() (chaincfg.NetworkID, error) {
	numNets := 0
	network := chaincfg.MainNet
	if cfg.TestNet {
		numNets++
		network = chaincfg.TestNet
	}
	if cfg.RegressionTest {
		numNets++
		network = chaincfg.RegTest
	}
	if cfg.UnitTest {
		numNets++
		network = chaincfg.UnitTest
	}
	if numNets > 1 {
		return 0, errors.New("the testnet, regtest, and unittest params " +
			"can't be used together -- choose one of the three")
	}
	return network, nil
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The above results in mastercorecoind functioning properly without any config
// settings while still allowing the user to override settings with config files
// and command line options.  Command line options always take precedence.
func loadConfig(args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		ConfigFile: defaultConfigFile,
		DebugLevel: defaultLogLevel,
		LogDir:     defaultLogDir,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.  Any errors aside from the
	// help message error can be ignored here since they will be caught by
	// the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
			return nil, nil, err
		}
	}

	// Show the version and exit if the version flag was specified.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)
	if preCfg.ShowVersion {
		fmt.Println(appName, "version", version())
		os.Exit(0)
	}

	// Load additional config from file.
	var configFileError error
	parser := flags.NewParser(&cfg, flags.Default)
	err = flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
	if err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			fmt.Fprintf(os.Stderr, "Error parsing config "+
				"file: %v\n", err)
			fmt.Fprintln(os.Stderr, usageMessage)
			return nil, nil, err
		}
		configFileError = err
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if !errors.As(err, &e) || e.Type != flags.ErrHelp {
			fmt.Fprintln(os.Stderr, usageMessage)
		}
		return nil, nil, err
	}

	// Multiple networks can't be selected simultaneously.
	cfg.network, err = cfg.selectedNetwork()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}

	// Append the network type to the log directory so it is "namespaced"
	// per network.
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	cfg.LogDir = filepath.Join(cfg.LogDir, cfg.network.String())

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}

	// Initialize log rotation.  After log rotation has been initialized, the
	// logger variables may be used.
	if err := initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("%s: %v", "loadConfig", err.Error())
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}

	if cfg.ImportHeaders != "" {
		cfg.ImportHeaders = cleanAndExpandPath(cfg.ImportHeaders)
	}
	if cfg.CPUProfile != "" {
		cfg.CPUProfile = cleanAndExpandPath(cfg.CPUProfile)
	}

	// Warn about missing config file only after all other configuration is
	// done.  This prevents the warning on help messages and invalid
	// options.  Note this should go directly before the return.
	if configFileError != nil {
		mccdLog.Warnf("%v", configFileError)
	}

	return &cfg, remainingArgs, nil
}
