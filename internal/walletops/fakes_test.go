package walletops

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// daemonErr mimics the typed error of the RPC client
type daemonErr struct{ msg string }

func (e *daemonErr) Error() string         { return "daemon: " + e.msg }
func (e *daemonErr) DaemonMessage() string { return e.msg }

// fakeService records every call in order
type fakeService struct {
	encrypted bool

	encryptErr error
	unlockErr  error
	lockErr    error
	backupErr  error
	exportErr  error
	importErr  error
	keyErr     error
	keyPanic   bool

	secret string
	calls  []string
}

func (s *fakeService) record(format string, args ...any) {
	s.calls = append(s.calls, fmt.Sprintf(format, args...))
}

func (s *fakeService) count(prefix string) int {
	n := 0
	for _, c := range s.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (s *fakeService) IsEncrypted(context.Context) (bool, error) {
	s.record("isEncrypted")
	return s.encrypted, nil
}

func (s *fakeService) Encrypt(_ context.Context, password string) error {
	s.record("encrypt %s", password)
	return s.encryptErr
}

func (s *fakeService) Unlock(_ context.Context, password string) error {
	s.record("unlock %s", password)
	return s.unlockErr
}

func (s *fakeService) Lock(context.Context) error {
	s.record("lock")
	return s.lockErr
}

func (s *fakeService) Backup(_ context.Context, filename string) (string, error) {
	s.record("backup %s", filename)
	if s.backupErr != nil {
		return "", s.backupErr
	}
	return "/export/" + filename, nil
}

func (s *fakeService) ExportKeys(_ context.Context, filename string) (string, error) {
	s.record("export %s", filename)
	if s.exportErr != nil {
		return "", s.exportErr
	}
	return "/export/" + filename, nil
}

func (s *fakeService) ImportKeys(_ context.Context, path string) error {
	s.record("import %s", path)
	return s.importErr
}

func (s *fakeService) SecretKey(_ context.Context, addr string) (string, error) {
	s.record("secretKey %s", addr)
	if s.keyPanic {
		panic("boom")
	}
	return s.secret, s.keyErr
}

func (s *fakeService) ImportPrivateKey(_ context.Context, key string, rescan bool) error {
	s.record("importKey %s %t", key, rescan)
	return s.importErr
}

type dialog struct {
	kind  string
	title string
	text  string
}

// fakePrompt answers dialogs from preset values and records what was shown
type fakePrompt struct {
	confirm     bool
	option      int
	password    string
	passwordOK  bool
	file        string
	fileOK      bool
	key         string
	rescan      bool
	keyOK       bool
	dialogs     []dialog
	optionCalls int
}

func (p *fakePrompt) Inform(title, message string) {
	p.dialogs = append(p.dialogs, dialog{"inform", title, message})
}

func (p *fakePrompt) Error(title, message string) {
	p.dialogs = append(p.dialogs, dialog{"error", title, message})
}

func (p *fakePrompt) Confirm(title, message string) bool {
	p.dialogs = append(p.dialogs, dialog{"confirm", title, message})
	return p.confirm
}

func (p *fakePrompt) Options(title, message string, _ []string, _ int) int {
	p.optionCalls++
	p.dialogs = append(p.dialogs, dialog{"options", title, message})
	return p.option
}

func (p *fakePrompt) NewPassword(title string) (string, bool) {
	p.dialogs = append(p.dialogs, dialog{"newPassword", title, ""})
	return p.password, p.passwordOK
}

func (p *fakePrompt) Password(title string) (string, bool) {
	p.dialogs = append(p.dialogs, dialog{"password", title, ""})
	return p.password, p.passwordOK
}

func (p *fakePrompt) SaveFile(title, _ string) (string, bool) {
	p.dialogs = append(p.dialogs, dialog{"save", title, ""})
	return p.file, p.fileOK
}

func (p *fakePrompt) OpenFile(title, _ string) (string, bool) {
	p.dialogs = append(p.dialogs, dialog{"open", title, ""})
	return p.file, p.fileOK
}

func (p *fakePrompt) PrivateKey(title string) (string, bool, bool) {
	p.dialogs = append(p.dialogs, dialog{"privateKey", title, ""})
	return p.key, p.rescan, p.keyOK
}

func (p *fakePrompt) last() dialog {
	if len(p.dialogs) == 0 {
		return dialog{}
	}
	return p.dialogs[len(p.dialogs)-1]
}

func (p *fakePrompt) has(kind, title string) bool {
	for _, d := range p.dialogs {
		if d.kind == kind && d.title == title {
			return true
		}
	}
	return false
}

type fakeTracker struct {
	backups  int
	flushes  int
	err      error
	flushErr error
}

func (t *fakeTracker) RecordBackupPerformed() error {
	t.backups++
	return t.err
}

func (t *fakeTracker) RecordKeypoolFlushed() error {
	t.flushes++
	return t.flushErr
}

type fakeClipboard struct{ text string }

func (c *fakeClipboard) SetText(text string) { c.text = text }

type fakeAddresses struct {
	active    bool
	selected  string
	activated int
}

func (a *fakeAddresses) IsActive() bool          { return a.active }
func (a *fakeAddresses) Activate()               { a.activated++ }
func (a *fakeAddresses) SelectedAddress() string { return a.selected }

type fakeExit struct{ calls int }

func (e *fakeExit) Exit() { e.calls++ }

type fakeBusy struct {
	active   int
	restored int
}

func (b *fakeBusy) Busy() func() {
	b.active++
	return func() { b.restored++ }
}

type fakeBackground struct{ stopped int }

func (b *fakeBackground) StopBackgroundWork() { b.stopped++ }

type fakeReporter struct{ errs []error }

func (r *fakeReporter) ReportError(err error) { r.errs = append(r.errs, err) }

type harness struct {
	service    *fakeService
	prompt     *fakePrompt
	tracker    *fakeTracker
	clipboard  *fakeClipboard
	addresses  *fakeAddresses
	exit       *fakeExit
	busy       *fakeBusy
	background *fakeBackground
	reporter   *fakeReporter
	flagPath   string
	coord      *Coordinator
}

func newHarness(flagPath string) *harness {
	h := &harness{
		service:    &fakeService{},
		prompt:     &fakePrompt{option: optionOK},
		tracker:    &fakeTracker{},
		clipboard:  &fakeClipboard{},
		addresses:  &fakeAddresses{},
		exit:       &fakeExit{},
		busy:       &fakeBusy{},
		background: &fakeBackground{},
		reporter:   &fakeReporter{},
		flagPath:   flagPath,
	}
	h.coord = NewCoordinator(Collaborators{
		Service:    h.service,
		Tracker:    h.tracker,
		Prompt:     h.prompt,
		Clipboard:  h.clipboard,
		Addresses:  h.addresses,
		Exit:       h.exit,
		Busy:       h.busy,
		Background: h.background,
		Reporter:   h.reporter,
	}, NewBackupDirectoryWarning(flagPath, "/home/user"), "/home/user")
	return h
}

var errTransport = errors.New("connection refused")
