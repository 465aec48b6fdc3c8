// Package walletops sequences the wallet maintenance actions (encrypt, backup,
// key export and import, private key display) against the wallet daemon.
//
// Every public operation reports its own outcome through the UserPrompt and
// never returns an error or panics into the caller.
package walletops

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/setavenger/zclwallet-desktop/internal/logging"
)

// Collaborators are the capabilities a Coordinator works with.
// Busy, Background and Reporter are optional.
type Collaborators struct {
	Service    WalletService
	Tracker    BackupTracker
	Prompt     UserPrompt
	Clipboard  ClipboardSink
	Addresses  AddressView
	Exit       Terminator
	Busy       BusyIndicator
	Background BackgroundWork
	Reporter   ErrorReporter
}

// Coordinator runs one wallet maintenance operation at a time
type Coordinator struct {
	service    WalletService
	tracker    BackupTracker
	prompt     UserPrompt
	clipboard  ClipboardSink
	addresses  AddressView
	exit       Terminator
	busy       BusyIndicator
	background BackgroundWork
	reporter   ErrorReporter

	warning *BackupDirectoryWarning
	homeDir string

	opMu       sync.Mutex
	terminated atomic.Bool
}

// NewCoordinator creates a coordinator. homeDir is where file choosers start.
func NewCoordinator(c Collaborators, warning *BackupDirectoryWarning, homeDir string) *Coordinator {
	coord := &Coordinator{
		service:    c.Service,
		tracker:    c.Tracker,
		prompt:     c.Prompt,
		clipboard:  c.Clipboard,
		addresses:  c.Addresses,
		exit:       c.Exit,
		busy:       c.Busy,
		background: c.Background,
		reporter:   c.Reporter,
		warning:    warning,
		homeDir:    homeDir,
	}
	if coord.busy == nil {
		coord.busy = noBusy{}
	}
	if coord.reporter == nil {
		coord.reporter = logReporter{}
	}
	return coord
}

// Terminated reports whether a successful encryption requested the application to exit
func (c *Coordinator) Terminated() bool {
	return c.terminated.Load()
}

// run is the outer boundary of every public operation. fn returns only
// unexpected errors, service call failures are reported by fn itself.
func (c *Coordinator) run(op string, fn func() error) {
	if c.terminated.Load() {
		logging.L.Warn().Str("op", op).Msg("application is terminating, operation ignored")
		return
	}
	if !c.opMu.TryLock() {
		logging.L.Warn().Str("op", op).Msg("another wallet operation is in progress")
		return
	}
	defer c.opMu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			logging.L.Error().Str("op", op).Interface("panic", r).Msg("wallet operation panicked")
			c.reporter.ReportError(fmt.Errorf("%s: unexpected failure: %v", op, r))
		}
	}()

	logging.L.Debug().Str("op", op).Msg("wallet operation started")
	if err := fn(); err != nil {
		logging.L.Err(err).Str("op", op).Msg("wallet operation failed")
		c.reporter.ReportError(fmt.Errorf("%s: %w", op, err))
	}
}

// call runs a service call sequence in the busy state. The busy state is
// left on every exit path.
func (c *Coordinator) call(fn func() error) error {
	restore := c.busy.Busy()
	defer restore()
	return fn()
}

// callFailed shows the error dialog of a failed service call. The daemon's
// message is appended verbatim, broken into lines after each comma.
func (c *Coordinator) callFailed(title, intro string, err error) {
	logging.L.Err(err).Str("dialog", title).Msg("wallet call failed")
	c.prompt.Error(title, intro+"\n"+wrapDaemonMessage(daemonMessage(err)))
}

func daemonMessage(err error) string {
	var de daemonError
	if errors.As(err, &de) {
		return de.DaemonMessage()
	}
	return err.Error()
}

func wrapDaemonMessage(msg string) string {
	return strings.ReplaceAll(msg, ",", ",\n")
}

// terminate asks the application to exit, at most once
func (c *Coordinator) terminate() {
	if c.terminated.CompareAndSwap(false, true) {
		logging.L.Info().Msg("terminating application after wallet encryption")
		c.exit.Exit()
	}
}

func (c *Coordinator) recordBackup() {
	if err := c.tracker.RecordBackupPerformed(); err != nil {
		c.reporter.ReportError(fmt.Errorf("failed to record backup: %w", err))
	}
}

type noBusy struct{}

func (noBusy) Busy() func() { return func() {} }

type logReporter struct{}

func (logReporter) ReportError(err error) {
	logging.L.Err(err).Msg("unexpected error")
}
