package backup

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestTracker(t *testing.T) (*Tracker, *time.Time) {
	tracker, err := Open(filepath.Join(t.TempDir(), "backups.db"))
	require.NoError(t, err)
	t.Cleanup(func() { tracker.Close() })

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tracker.now = func() time.Time { return now }
	return tracker, &now
}

func TestNoBackupNeedsReminder(t *testing.T) {
	tracker, _ := openTestTracker(t)

	_, ok, err := tracker.LastBackup()
	require.NoError(t, err)
	assert.False(t, ok)

	remind, err := tracker.NeedsReminder(24 * time.Hour)
	require.NoError(t, err)
	assert.True(t, remind)
}

func TestRecordBackupPerformed(t *testing.T) {
	tracker, now := openTestTracker(t)

	require.NoError(t, tracker.RecordBackupPerformed())
	*now = now.Add(time.Hour)
	require.NoError(t, tracker.RecordBackupPerformed())

	last, ok, err := tracker.LastBackup()
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, now.Equal(last.Time))
	assert.Equal(t, KindBackup, last.Kind)

	history, err := tracker.History()
	require.NoError(t, err)
	assert.Len(t, history, 2)

	remind, err := tracker.NeedsReminder(24 * time.Hour)
	require.NoError(t, err)
	assert.False(t, remind)

	*now = now.Add(25 * time.Hour)
	remind, err = tracker.NeedsReminder(24 * time.Hour)
	require.NoError(t, err)
	assert.True(t, remind)
}

func TestKeypoolFlushRequiresNewBackup(t *testing.T) {
	tracker, now := openTestTracker(t)

	require.NoError(t, tracker.RecordBackupPerformed())
	require.NoError(t, tracker.RecordKeypoolFlushed())

	remind, err := tracker.NeedsReminder(24 * time.Hour)
	require.NoError(t, err)
	assert.True(t, remind)

	*now = now.Add(time.Minute)
	require.NoError(t, tracker.RecordBackupPerformed())
	remind, err = tracker.NeedsReminder(24 * time.Hour)
	require.NoError(t, err)
	assert.False(t, remind)
}

func TestReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backups.db")
	tracker, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, tracker.RecordBackupPerformed())
	require.NoError(t, tracker.Close())

	tracker, err = Open(path)
	require.NoError(t, err)
	defer tracker.Close()

	_, ok, err := tracker.LastBackup()
	require.NoError(t, err)
	assert.True(t, ok)
}
