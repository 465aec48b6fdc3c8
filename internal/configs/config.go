package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/setavenger/zclwallet-desktop/internal/logging"
)

// Config is the resolved application configuration
type Config struct {
	DataDir string

	RPCHost     string
	RPCPort     int
	RPCUser     string
	RPCPassword string

	// ExportDir is the directory zcld was started with via -exportdir.
	// Only used for display, the daemon resolves backup paths itself.
	ExportDir string

	UnlockTimeout   time.Duration
	RefreshInterval time.Duration
	ClipboardClear  time.Duration
	BackupReminder  time.Duration
}

// RPCAddress is host:port of the daemon RPC endpoint
func (c *Config) RPCAddress() string {
	return fmt.Sprintf("%s:%d", c.RPCHost, c.RPCPort)
}

// setDefaultConfig sets default configuration values
func setDefaultConfig(config *viper.Viper) {
	config.SetDefault("rpc_host", DefaultRPCHost)
	config.SetDefault("rpc_port", DefaultRPCPort)
	config.SetDefault("rpc_user", "")
	config.SetDefault("rpc_password", "")
	config.SetDefault("export_dir", UserHomeDir())
	config.SetDefault("unlock_timeout", DefaultUnlockTimeout)
	config.SetDefault("refresh_interval", DefaultRefreshIntervalSeconds)
	config.SetDefault("clipboard_clear", DefaultClipboardClearSeconds)
	config.SetDefault("backup_reminder_days", DefaultBackupReminderDays)
}

// InitializeConfig loads dataDir/zclwallet.toml, writing a default file if none exists.
// Environment variables prefixed with ZCLWALLET_ override file values.
func InitializeConfig(dataDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	config := viper.New()
	config.SetConfigName(ConfigName)
	config.SetConfigType(ConfigType)
	config.AddConfigPath(dataDir)

	setDefaultConfig(config)

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		path := filepath.Join(dataDir, ConfigName+"."+ConfigType)
		if err := config.WriteConfigAs(path); err != nil {
			return nil, fmt.Errorf("failed to write default config: %w", err)
		}
		logging.L.Info().Str("path", path).Msg("default config file created")
	} else {
		logging.L.Debug().Str("path", config.ConfigFileUsed()).Msg("existing config loaded")
	}

	// bound after the default file is written so env secrets never end up on disk
	config.SetEnvPrefix("ZCLWALLET")
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()

	return config, nil
}

// Load reads the configuration for dataDir into a Config.
// An empty dataDir means DefaultDataDir.
func Load(dataDir string) (*Config, error) {
	if dataDir == "" {
		dataDir = DefaultDataDir()
	} else {
		dataDir = ResolvePath(dataDir)
	}

	v, err := InitializeConfig(dataDir)
	if err != nil {
		return nil, err
	}

	return FromViper(dataDir, v), nil
}

// FromViper converts an initialised viper instance into a Config
func FromViper(dataDir string, v *viper.Viper) *Config {
	return &Config{
		DataDir:         dataDir,
		RPCHost:         v.GetString("rpc_host"),
		RPCPort:         v.GetInt("rpc_port"),
		RPCUser:         v.GetString("rpc_user"),
		RPCPassword:     v.GetString("rpc_password"),
		ExportDir:       v.GetString("export_dir"),
		UnlockTimeout:   time.Duration(v.GetInt("unlock_timeout")) * time.Second,
		RefreshInterval: time.Duration(v.GetInt("refresh_interval")) * time.Second,
		ClipboardClear:  time.Duration(v.GetInt("clipboard_clear")) * time.Second,
		BackupReminder:  time.Duration(v.GetInt("backup_reminder_days")) * 24 * time.Hour,
	}
}

// BackupWarningFlagPath is the marker file of the one time backup directory warning
func (c *Config) BackupWarningFlagPath() string {
	return filepath.Join(c.DataDir, BackupWarningFlagFilename)
}

// BackupDBPath is the bbolt file used by the backup tracker
func (c *Config) BackupDBPath() string {
	return filepath.Join(c.DataDir, BackupDBFilename)
}
