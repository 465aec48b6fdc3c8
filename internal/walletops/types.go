package walletops

import "context"

// WalletService is the daemon side of every wallet operation.
// All calls block until the daemon answers.
type WalletService interface {
	IsEncrypted(ctx context.Context) (bool, error)
	Encrypt(ctx context.Context, password string) error
	Unlock(ctx context.Context, password string) error
	Lock(ctx context.Context) error
	// Backup and ExportKeys take a bare file name, the daemon places the
	// file in its export directory and returns the full path.
	Backup(ctx context.Context, filename string) (string, error)
	ExportKeys(ctx context.Context, filename string) (string, error)
	ImportKeys(ctx context.Context, path string) error
	SecretKey(ctx context.Context, addr string) (string, error)
	ImportPrivateKey(ctx context.Context, key string, rescan bool) error
}

// BackupTracker is told about every successful backup or key export, and
// about encryption flushing the keypool, which leaves earlier backups incomplete.
type BackupTracker interface {
	RecordBackupPerformed() error
	RecordKeypoolFlushed() error
}

// UserPrompt shows modal dialogs. Every method blocks until the user answered.
type UserPrompt interface {
	Inform(title, message string)
	Error(title, message string)
	Confirm(title, message string) bool
	// Options returns the index of the chosen option or -1 if the dialog was closed
	Options(title, message string, options []string, defaultOption int) int
	// NewPassword asks for a password twice and only returns once both match
	NewPassword(title string) (password string, ok bool)
	Password(title string) (password string, ok bool)
	SaveFile(title, startDir string) (path string, ok bool)
	OpenFile(title, startDir string) (path string, ok bool)
	PrivateKey(title string) (key string, rescan bool, ok bool)
}

// ClipboardSink receives text copied for the user
type ClipboardSink interface {
	SetText(text string)
}

// AddressView is the "My Addresses" view the private key operations read the selection from
type AddressView interface {
	IsActive() bool
	Activate()
	// SelectedAddress returns "" if nothing is selected
	SelectedAddress() string
}

// BusyIndicator switches the UI into a wait state. The returned function restores it.
type BusyIndicator interface {
	Busy() (restore func())
}

// Terminator ends the application
type Terminator interface {
	Exit()
}

// BackgroundWork is stopped before the daemon is shut down by encryption
type BackgroundWork interface {
	StopBackgroundWork()
}

// ErrorReporter receives errors no operation specific dialog exists for
type ErrorReporter interface {
	ReportError(err error)
}

// daemonError is implemented by service errors that carry the daemon's own text
type daemonError interface {
	DaemonMessage() string
}
