package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWritesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, DefaultRPCHost, cfg.RPCHost)
	assert.Equal(t, DefaultRPCPort, cfg.RPCPort)
	assert.Equal(t, 300*time.Second, cfg.UnlockTimeout)
	assert.Equal(t, "127.0.0.1:8023", cfg.RPCAddress())
	assert.Equal(t, filepath.Join(dir, BackupWarningFlagFilename), cfg.BackupWarningFlagPath())

	_, err = os.Stat(filepath.Join(dir, "zclwallet.toml"))
	require.NoError(t, err)
}

func TestLoadReadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	content := "rpc_port = 18023\nrpc_user = \"alice\"\nunlock_timeout = 30\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zclwallet.toml"), []byte(content), 0600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 18023, cfg.RPCPort)
	assert.Equal(t, "alice", cfg.RPCUser)
	assert.Equal(t, 30*time.Second, cfg.UnlockTimeout)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ZCLWALLET_RPC_PASSWORD", "from-env")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.RPCPassword)
}
