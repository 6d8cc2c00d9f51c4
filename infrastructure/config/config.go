package config

import (
	"os"
	"path/filepath"

	"github.com/btcsuite/btcutil"
	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/hybridgate/infrastructure/logger"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const (
	appName            = "hybridgate"
	defaultLogFilename = "hybridgate.log"
	defaultErrLogFile  = "hybridgate_err.log"
	defaultLogLevel    = "info"
	defaultDBCacheMiB  = 64

	// envPrefix prefixes the environment variables that set config values
	envPrefix = "HYBRIDGATE"
)

var defaultHomeDir = btcutil.AppDataDir(appName, false)

// Config defines the configuration options shared by every command.
//
// Values come from DefaultConfig, then the environment (ApplyEnvironment),
// then the command line, and are checked by Resolve.
type Config struct {
	AppDir     string `short:"b" long:"appdir" description:"Directory to store data" envconfig:"APPDIR"`
	LogDir     string `long:"logdir" description:"Directory to log output" envconfig:"LOGDIR"`
	LogLevel   string `short:"d" long:"loglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems" envconfig:"LOGLEVEL"`
	DBCacheMiB int    `long:"dbcache" description:"Size of the header database cache in MiB" envconfig:"DBCACHE"`
	NetworkFlags
}

// DefaultConfig returns a Config with every option at its default value
func DefaultConfig() *Config {
	return &Config{
		AppDir:     defaultHomeDir,
		LogLevel:   defaultLogLevel,
		DBCacheMiB: defaultDBCacheMiB,
	}
}

// ApplyEnvironment overrides cfg with the HYBRIDGATE_* environment variables
// that are set. It is meant to run before the command line is parsed so that
// flags take precedence over the environment.
func (cfg *Config) ApplyEnvironment() error {
	err := envconfig.Process(envPrefix, cfg)
	if err != nil {
		return errors.Wrap(err, "error processing environment")
	}
	return nil
}

// Resolve validates cfg after the command line was parsed into it. It picks
// the active network and fills in the directories derived from it.
func (cfg *Config) Resolve(parser *flags.Parser) error {
	err := cfg.ResolveNetwork(parser)
	if err != nil {
		return err
	}

	if cfg.DBCacheMiB <= 0 {
		return errors.Errorf("dbcache must be positive, got %d", cfg.DBCacheMiB)
	}

	cfg.AppDir = cleanAndExpandPath(cfg.AppDir)
	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Join(cfg.AppDir, cfg.NetParams().Name, "logs")
	}
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)

	return nil
}

// DBPath returns the directory of the header database of the active network
func (cfg *Config) DBPath() string {
	return filepath.Join(cfg.AppDir, cfg.NetParams().Name, "headers")
}

// InitLogs starts the log backend with log files under LogDir and applies
// LogLevel.
func (cfg *Config) InitLogs() error {
	logger.InitLog(filepath.Join(cfg.LogDir, defaultLogFilename), filepath.Join(cfg.LogDir, defaultErrLogFile))
	return logger.ParseAndSetLogLevels(cfg.LogLevel)
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if len(path) > 0 && path[0] == '~' {
		homeDir := filepath.Dir(defaultHomeDir)
		path = filepath.Join(homeDir, path[1:])
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}
