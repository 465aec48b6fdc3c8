// Package termui implements the wallet operation dialogs on a terminal
package termui

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Prompt asks questions on a terminal. Passwords and keys are read without echo.
type Prompt struct {
	in     *bufio.Reader
	out    io.Writer
	fd     int
	secret func(fd int) ([]byte, error)
}

// NewPrompt creates a prompt on stdin/stdout
func NewPrompt() *Prompt {
	return &Prompt{
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		fd:     int(os.Stdin.Fd()),
		secret: term.ReadPassword,
	}
}

// newPromptIO is used by tests. Secrets are read as plain lines from in.
func newPromptIO(in io.Reader, out io.Writer) *Prompt {
	p := &Prompt{in: bufio.NewReader(in), out: out}
	p.secret = func(int) ([]byte, error) {
		line, err := p.readLine()
		return []byte(line), err
	}
	return p
}

func (p *Prompt) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompt) readSecret(label string) (string, bool) {
	fmt.Fprint(p.out, label)
	raw, err := p.secret(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", false
	}
	defer clear(raw)
	return string(bytes.TrimSpace(raw)), true
}

func (p *Prompt) header(title string) {
	fmt.Fprintf(p.out, "\n== %s ==\n", title)
}

func (p *Prompt) Inform(title, message string) {
	p.header(title)
	fmt.Fprintln(p.out, message)
}

func (p *Prompt) Error(title, message string) {
	p.header("ERROR: " + title)
	fmt.Fprintln(p.out, message)
}

func (p *Prompt) Confirm(title, message string) bool {
	p.header(title)
	fmt.Fprintln(p.out, message)
	for {
		fmt.Fprint(p.out, "(y/n) [n]: ")
		reply, err := p.readLine()
		if err != nil {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(reply)) {
		case "y", "yes":
			return true
		case "", "n", "no":
			return false
		}
	}
}

func (p *Prompt) Options(title, message string, options []string, defaultOption int) int {
	p.header(title)
	fmt.Fprintln(p.out, message)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
	}
	for {
		fmt.Fprintf(p.out, "choice [%d]: ", defaultOption+1)
		reply, err := p.readLine()
		if err != nil {
			return -1
		}
		reply = strings.TrimSpace(reply)
		if reply == "" {
			return defaultOption
		}
		n, err := strconv.Atoi(reply)
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1
		}
	}
}

func (p *Prompt) NewPassword(title string) (string, bool) {
	p.header(title)
	for {
		password, ok := p.readSecret("New wallet password: ")
		if !ok || password == "" {
			return "", false
		}
		repeat, ok := p.readSecret("Confirm password: ")
		if !ok {
			return "", false
		}
		if password == repeat {
			return password, true
		}
		fmt.Fprintln(p.out, "Passwords do not match, try again (empty password cancels).")
	}
}

func (p *Prompt) Password(title string) (string, bool) {
	p.header(title)
	password, ok := p.readSecret("Wallet password: ")
	if !ok || password == "" {
		return "", false
	}
	return password, true
}

func (p *Prompt) SaveFile(title, _ string) (string, bool) {
	p.header(title)
	fmt.Fprint(p.out, "File name (empty cancels): ")
	name, err := p.readLine()
	if err != nil {
		return "", false
	}
	name = strings.TrimSpace(name)
	return name, name != ""
}

func (p *Prompt) OpenFile(title, startDir string) (string, bool) {
	p.header(title)
	fmt.Fprintf(p.out, "Path (relative to %s, empty cancels): ", startDir)
	path, err := p.readLine()
	if err != nil {
		return "", false
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return "", false
	}
	if !filepath.IsAbs(path) && startDir != "" {
		path = filepath.Join(startDir, path)
	}
	return path, true
}

func (p *Prompt) PrivateKey(title string) (string, bool, bool) {
	p.header(title)
	key, ok := p.readSecret("Private key (WIF or shielded spending key): ")
	if !ok || key == "" {
		return "", false, false
	}
	fmt.Fprint(p.out, "Rescan the blockchain (y/n) [y]: ")
	reply, err := p.readLine()
	if err != nil {
		return "", false, false
	}
	reply = strings.ToLower(strings.TrimSpace(reply))
	return key, reply != "n" && reply != "no", true
}
