package configs

import (
	"os"
	"path/filepath"

	"github.com/setavenger/zclwallet-desktop/internal/logging"
)

// DefaultDataDir returns the default data dir "~/.zclwallet-desktop/"
// if homedir is not found falls back to current directory "."
func DefaultDataDir() string {
	dataDir := filepath.Join(UserHomeDir(), ".zclwallet-desktop")
	logging.L.Trace().Str("data_dir", dataDir).Msg("data directory")
	return dataDir
}

// UserHomeDir is the home directory or "." if it cannot be determined.
// zcld is started with -exportdir pointing here unless configured otherwise.
func UserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		logging.L.Err(err).Msg("error getting home directory")
		logging.L.Info().Msg("falling back to current directory")
		homeDir = "."
	}
	return homeDir
}

// ResolvePath expands a leading "~" and makes the path absolute
func ResolvePath(path string) string {
	if path == "~" || len(path) > 1 && path[:2] == "~/" {
		path = filepath.Join(UserHomeDir(), path[1:])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

const (
	ConfigName = "zclwallet"
	ConfigType = "toml"

	DefaultRPCHost = "127.0.0.1"
	DefaultRPCPort = 8023

	// seconds passed to walletpassphrase, the wallet is relocked right after use anyway
	DefaultUnlockTimeout = 300

	DefaultRefreshIntervalSeconds = 10
	DefaultClipboardClearSeconds  = 60

	// days without a backup before the dashboard reminds the user
	DefaultBackupReminderDays = 30

	BackupWarningFlagFilename = "backupInfoShownNG.flag"
	BackupDBFilename          = "backups.db"
)
