// Package backup records when the wallet was last backed up
package backup

import (
	"fmt"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/setavenger/zclwallet-desktop/internal/logging"
)

var (
	bucketEvents = []byte("backups")
	bucketState  = []byte("state")

	keyKeypoolFlushed = []byte("keypool-flushed")
)

// Kind of a recorded event
type Kind string

const (
	KindBackup Kind = "backup"
)

// Event is one successful backup
type Event struct {
	Time time.Time
	Kind Kind
}

// Tracker persists backup events in a bbolt database
type Tracker struct {
	db  *bolt.DB
	now func() time.Time

	mu sync.Mutex
}

// Open opens (or creates) the tracker database at path
func Open(path string) (*Tracker, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open backup db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketEvents); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bucketState)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create buckets: %w", err)
	}

	return &Tracker{db: db, now: time.Now}, nil
}

func (t *Tracker) Close() error {
	return t.db.Close()
}

// RecordBackupPerformed stores a backup event at the current time and clears
// a pending keypool flush.
func (t *Tracker) RecordBackupPerformed() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now().UTC()
	err := t.db.Update(func(tx *bolt.Tx) error {
		key := []byte(now.Format(time.RFC3339Nano))
		if err := tx.Bucket(bucketEvents).Put(key, []byte(KindBackup)); err != nil {
			return err
		}
		return tx.Bucket(bucketState).Delete(keyKeypoolFlushed)
	})
	if err != nil {
		logging.L.Err(err).Msg("failed to record backup")
		return err
	}
	logging.L.Info().Time("at", now).Msg("backup recorded")
	return nil
}

// RecordKeypoolFlushed marks that all earlier backups are incomplete.
// Encrypting the wallet regenerates the keypool.
func (t *Tracker) RecordKeypoolFlushed() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now().UTC()
	return t.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).Put(keyKeypoolFlushed, []byte(now.Format(time.RFC3339Nano)))
	})
}

// LastBackup returns the most recent backup. ok is false if none was recorded.
func (t *Tracker) LastBackup() (ev Event, ok bool, err error) {
	err = t.db.View(func(tx *bolt.Tx) error {
		k, v := tx.Bucket(bucketEvents).Cursor().Last()
		if k == nil {
			return nil
		}
		at, err := time.Parse(time.RFC3339Nano, string(k))
		if err != nil {
			return fmt.Errorf("corrupt backup record %q: %w", k, err)
		}
		ev = Event{Time: at, Kind: Kind(v)}
		ok = true
		return nil
	})
	return ev, ok, err
}

// History returns all recorded backups oldest first
func (t *Tracker) History() ([]Event, error) {
	var events []Event
	err := t.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketEvents).ForEach(func(k, v []byte) error {
			at, err := time.Parse(time.RFC3339Nano, string(k))
			if err != nil {
				return fmt.Errorf("corrupt backup record %q: %w", k, err)
			}
			events = append(events, Event{Time: at, Kind: Kind(v)})
			return nil
		})
	})
	return events, err
}

// NeedsReminder is true if there was never a backup, the last one is older
// than maxAge, or the keypool was flushed since.
func (t *Tracker) NeedsReminder(maxAge time.Duration) (bool, error) {
	var flushed bool
	err := t.db.View(func(tx *bolt.Tx) error {
		flushed = tx.Bucket(bucketState).Get(keyKeypoolFlushed) != nil
		return nil
	})
	if err != nil {
		return false, err
	}
	if flushed {
		return true, nil
	}

	last, ok, err := t.LastBackup()
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}
	return t.now().Sub(last.Time) > maxAge, nil
}
