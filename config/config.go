// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package config parses plmd's command-line flags and optional config file
// into an immutable Config, including the -segwitheight and -vbparams
// regtest knobs used to exercise chain-parameter overrides without
// recompiling.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/palladium-core/plmd/chaincfg"
	"github.com/palladium-core/plmd/logger"
)

const (
	defaultConfigFilename = "plmd.conf"
	defaultDataDirname    = "data"
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "plmd.log"
	defaultErrLogFilename = "plmd_err.log"
	defaultNetwork        = "mainnet"
)

var (
	// DefaultHomeDir is the default application data directory.
	DefaultHomeDir = appDataDir("plmd", false)

	defaultConfigFile = filepath.Join(DefaultHomeDir, defaultConfigFilename)
	defaultDataDir    = filepath.Join(DefaultHomeDir, defaultDataDirname)
	defaultLogDir     = filepath.Join(DefaultHomeDir, defaultLogDirname)
)

// VBParamsOverride holds a parsed -vbparams override for one deployment.
type VBParamsOverride struct {
	Deployment string
	StartTime  int64
	Timeout    int64
}

// Flags defines the raw command-line and config-file options for plmd.
type Flags struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir    string `short:"b" long:"datadir" description:"Directory to store data"`
	LogDir     string `long:"logdir" description:"Directory to log output"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical}"`

	Network string `long:"network" description:"Network to use {mainnet, testnet, regtest}"`

	SegwitHeight string   `long:"segwitheight" description:"Override the Segwit activation height on regtest. -1 disables Segwit by setting the height to the maximum int32."`
	VBParams     []string `long:"vbparams" description:"Override a deployment's start/timeout in name:start:timeout form, regtest only"`
}

// Config is the fully validated, immutable configuration plmd runs with.
type Config struct {
	*Flags

	Params      *chaincfg.Params
	VBOverrides []VBParamsOverride
}

// activeConfig is set once by LoadAndSetActiveConfig and read thereafter.
var activeConfig *Config

// LoadAndSetActiveConfig parses os.Args and any config file, validates the
// result, and stores it so ActiveConfig can retrieve it.
func LoadAndSetActiveConfig() error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	activeConfig = cfg
	return nil
}

// ActiveConfig returns the configuration parsed by LoadAndSetActiveConfig.
func ActiveConfig() *Config {
	return activeConfig
}

func loadConfig() (*Config, []string, error) {
	cfgFlags := Flags{
		ConfigFile: defaultConfigFile,
		DataDir:    defaultDataDir,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
		Network:    defaultNetwork,
	}

	parser := flags.NewParser(&cfgFlags, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil, nil, err
		}
		return nil, nil, err
	}

	if _, err := os.Stat(cfgFlags.ConfigFile); err == nil {
		iniParser := flags.NewIniParser(parser)
		if err := iniParser.ParseFile(cfgFlags.ConfigFile); err != nil {
			return nil, nil, errors.Wrap(err, "loadConfig: failed to parse config file")
		}
		// Re-parse the command line so it takes precedence over the file.
		if _, err := parser.ParseArgs(os.Args[1:]); err != nil {
			return nil, nil, errors.Wrap(err, "loadConfig: failed to re-parse command line")
		}
	}

	funcName := "loadConfig"

	if err := os.MkdirAll(cfgFlags.DataDir, 0700); err != nil {
		return nil, nil, errors.Wrapf(err, "%s: failed to create data directory", funcName)
	}
	if err := os.MkdirAll(cfgFlags.LogDir, 0700); err != nil {
		return nil, nil, errors.Wrapf(err, "%s: failed to create log directory", funcName)
	}

	logger.InitLog(filepath.Join(cfgFlags.LogDir, defaultLogFilename),
		filepath.Join(cfgFlags.LogDir, defaultErrLogFilename))
	if err := logger.ParseAndSetDebugLevels(cfgFlags.DebugLevel); err != nil {
		return nil, nil, errors.Wrapf(err, "%s: invalid debuglevel", funcName)
	}

	params, err := paramsForNetwork(cfgFlags.Network)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "%s", funcName)
	}
	log.Infof("using network %s", params.Name)

	cfg := &Config{
		Flags:  &cfgFlags,
		Params: params,
	}

	if cfgFlags.SegwitHeight != "" {
		if cfg.Params != &chaincfg.RegressionNetParams {
			return nil, nil, errors.Errorf("%s: -segwitheight may only be used on regtest", funcName)
		}
		height, err := parseSegwitHeight(cfgFlags.SegwitHeight)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "%s: invalid -segwitheight", funcName)
		}
		cfg.Params.SegwitHeight = height
	}

	if len(cfgFlags.VBParams) > 0 {
		if cfg.Params != &chaincfg.RegressionNetParams {
			return nil, nil, errors.Errorf("%s: -vbparams may only be used on regtest", funcName)
		}
		overrides, err := parseVBParams(cfgFlags.VBParams, cfg.Params)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "%s: invalid -vbparams", funcName)
		}
		cfg.VBOverrides = overrides
		applyVBOverrides(cfg.Params, overrides)
	}

	return cfg, remainingArgs, nil
}

func paramsForNetwork(name string) (*chaincfg.Params, error) {
	switch name {
	case "mainnet", "":
		return &chaincfg.MainNetParams, nil
	case "testnet":
		return &chaincfg.TestNetParams, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, errors.Errorf("unknown network %q", name)
	}
}

// parseSegwitHeight implements spec S7: "-1" disables Segwit by setting the
// activation height to the maximum int32; any other out-of-range value is
// rejected.
func parseSegwitHeight(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Errorf("malformed height %q", s)
	}
	if v == -1 {
		return math.MaxInt32, nil
	}
	if v < 0 || v > math.MaxInt32 {
		return 0, errors.Errorf("height %d out of range", v)
	}
	return int32(v), nil
}

// parseVBParams parses entries of the form name:start:timeout, validating
// that name matches one of params' known deployments.
func parseVBParams(entries []string, params *chaincfg.Params) ([]VBParamsOverride, error) {
	overrides := make([]VBParamsOverride, 0, len(entries))
	for _, entry := range entries {
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, errors.Errorf("expected name:start:timeout, got %q", entry)
		}
		name := parts[0]
		if _, ok := params.Deployments[name]; !ok {
			return nil, errors.Errorf("unknown deployment %q", name)
		}
		start, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return nil, errors.Errorf("malformed start time in %q", entry)
		}
		timeout, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			return nil, errors.Errorf("malformed timeout in %q", entry)
		}
		overrides = append(overrides, VBParamsOverride{Deployment: name, StartTime: start, Timeout: timeout})
	}
	return overrides, nil
}

func applyVBOverrides(params *chaincfg.Params, overrides []VBParamsOverride) {
	for _, o := range overrides {
		d := params.Deployments[o.Deployment]
		d.StartTime = o.StartTime
		d.ExpireTime = o.Timeout
		params.Deployments[o.Deployment] = d
	}
}

// appDataDir mirrors btcutil.AppDataDir: it returns the OS-appropriate
// per-user application data directory for the given app name.
func appDataDir(appName string, roaming bool) string {
	if appName == "" || appName == "." {
		return "."
	}

	appNameLower := strings.ToLower(appName[:1]) + strings.TrimPrefix(appName, appName[:1])

	homeDir, err := osUserHomeDir()
	if err != nil || homeDir == "" {
		return fmt.Sprintf(".%s", appNameLower)
	}
	return filepath.Join(homeDir, fmt.Sprintf(".%s", appNameLower))
}

func osUserHomeDir() (string, error) {
	if dir := os.Getenv("HOME"); dir != "" {
		return dir, nil
	}
	return os.UserHomeDir()
}
