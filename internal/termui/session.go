package termui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.design/x/clipboard"

	"github.com/setavenger/zclwallet-desktop/internal/address"
	"github.com/setavenger/zclwallet-desktop/internal/logging"
)

// Clipboard writes to the system clipboard and wipes it after clearAfter.
// Without a clipboard (headless sessions) the text is only shown on screen.
type Clipboard struct {
	clearAfter time.Duration
	available  bool
	wg         sync.WaitGroup
}

// NewClipboard initialises the system clipboard
func NewClipboard(clearAfter time.Duration) *Clipboard {
	c := &Clipboard{clearAfter: clearAfter}
	if err := clipboard.Init(); err != nil {
		logging.L.Warn().Err(err).Msg("system clipboard unavailable")
		return c
	}
	c.available = true
	return c
}

func (c *Clipboard) SetText(text string) {
	if !c.available {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	if c.clearAfter <= 0 {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		time.Sleep(c.clearAfter)
		if string(clipboard.Read(clipboard.FmtText)) == text {
			clipboard.Write(clipboard.FmtText, []byte(""))
		}
	}()
}

// Wait blocks until pending clipboard wipes are done
func (c *Clipboard) Wait() {
	c.wg.Wait()
}

// Address is a fixed address given on the command line
type Address string

func (a Address) IsActive() bool          { return true }
func (a Address) Activate()               {}
func (a Address) SelectedAddress() string { return string(a) }

// Busy prints a wait notice while zcld works
type Busy struct {
	Out io.Writer
}

func (b Busy) Busy() func() {
	out := b.Out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprint(out, "waiting for zcld... ")
	return func() { fmt.Fprintln(out, "done") }
}

// Session collects the outcome of one command for the exit code
type Session struct {
	mu        sync.Mutex
	failed    bool
	terminate bool
}

// Exit is called after a successful encryption. zcld has stopped, the
// command line tool simply ends after the current command.
func (s *Session) Exit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.terminate = true
}

func (s *Session) ReportError(err error) {
	logging.L.Err(err).Msg("wallet operation failed")
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed = true
}

// Watch returns p with its error dialogs counted as a failed command
func (s *Session) Watch(p *Prompt) *SessionPrompt {
	return &SessionPrompt{Prompt: p, session: s}
}

// SessionPrompt is a Prompt whose error dialogs mark the session failed
type SessionPrompt struct {
	*Prompt
	session *Session
}

func (p *SessionPrompt) Error(title, message string) {
	p.Prompt.Error(title, message)
	p.session.mu.Lock()
	defer p.session.mu.Unlock()
	p.session.failed = true
}

// ParseAddress validates an address given on the command line.
// Shielded addresses are left to zcld.
func ParseAddress(arg string) (Address, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", errors.New("address is empty")
	}
	if address.Classify(arg) == address.Transparent && !address.CheckTransparent(arg) {
		return "", fmt.Errorf("%s is not a valid transparent address", arg)
	}
	return Address(arg), nil
}

// Failed reports whether an error dialog was shown or an unexpected error was reported
func (s *Session) Failed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failed
}

// Terminated reports whether the application was asked to exit
func (s *Session) Terminated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.terminate
}
