package termui

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setavenger/zclwallet-desktop/internal/rpc"
	"github.com/setavenger/zclwallet-desktop/internal/walletops"
)

type backupService struct {
	backupErr error
}

func (s *backupService) IsEncrypted(context.Context) (bool, error) { return false, nil }
func (s *backupService) Encrypt(context.Context, string) error     { return nil }
func (s *backupService) Unlock(context.Context, string) error      { return nil }
func (s *backupService) Lock(context.Context) error                { return nil }
func (s *backupService) ImportKeys(context.Context, string) error  { return nil }
func (s *backupService) ExportKeys(_ context.Context, name string) (string, error) {
	return "/exports/" + name, nil
}

func (s *backupService) SecretKey(context.Context, string) (string, error) { return "", nil }
func (s *backupService) ImportPrivateKey(context.Context, string, bool) error {
	return nil
}

func (s *backupService) Backup(_ context.Context, name string) (string, error) {
	if s.backupErr != nil {
		return "", s.backupErr
	}
	return "/exports/" + name, nil
}

type countingTracker struct{ backups int }

func (t *countingTracker) RecordBackupPerformed() error { t.backups++; return nil }
func (t *countingTracker) RecordKeypoolFlushed() error  { return nil }

func runBackup(t *testing.T, service walletops.WalletService) (*Session, *countingTracker, string) {
	t.Helper()

	var out bytes.Buffer
	session := &Session{}
	tracker := &countingTracker{}
	// "2" dismisses the directory warning with OK, then the file name
	prompt := newPromptIO(strings.NewReader("2\nwallet1\n"), &out)

	ops := walletops.NewCoordinator(walletops.Collaborators{
		Service:   service,
		Tracker:   tracker,
		Prompt:    session.Watch(prompt),
		Addresses: Address(""),
		Exit:      session,
		Busy:      Busy{Out: &out},
		Reporter:  session,
	}, walletops.NewBackupDirectoryWarning(filepath.Join(t.TempDir(), "backupInfoShownNG.flag"), ""), t.TempDir())

	ops.BackupWallet(context.Background())
	return session, tracker, out.String()
}

func TestSessionFailsOnDaemonError(t *testing.T) {
	session, tracker, out := runBackup(t, &backupService{backupErr: &rpc.Error{
		Code:    -4,
		Message: "Filename is invalid as only alphanumeric characters are allowed.  Try again with the filename, e.g. wallet123.",
	}})

	assert.True(t, session.Failed())
	assert.False(t, session.Terminated())
	assert.Zero(t, tracker.backups)
	assert.Contains(t, out, "ERROR: Error Backing Up Wallet")
}

func TestSessionSucceedsOnBackup(t *testing.T) {
	session, tracker, out := runBackup(t, &backupService{})

	assert.False(t, session.Failed())
	assert.Equal(t, 1, tracker.backups)
	assert.Contains(t, out, "/exports/wallet1")
}

func TestParseAddress(t *testing.T) {
	taddr := base58.CheckEncode(make([]byte, 20), 0x1c)

	addr, err := ParseAddress(" " + taddr + "\n")
	require.NoError(t, err)
	assert.Equal(t, taddr, addr.SelectedAddress())

	zaddr := "zc" + strings.Repeat("a", 93)
	addr, err = ParseAddress(zaddr)
	require.NoError(t, err)
	assert.Equal(t, zaddr, string(addr))

	_, err = ParseAddress(taddr[:len(taddr)-1])
	assert.Error(t, err)

	_, err = ParseAddress("  ")
	assert.Error(t, err)
}
