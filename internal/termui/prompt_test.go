package termui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	p := newPromptIO(strings.NewReader("maybe\nyes\n"), &out)

	assert.True(t, p.Confirm("Import Private Keys", "Continue?"))
	assert.Contains(t, out.String(), "== Import Private Keys ==")

	p = newPromptIO(strings.NewReader("\n"), &out)
	assert.False(t, p.Confirm("t", "m"))
}

func TestOptions(t *testing.T) {
	var out bytes.Buffer
	p := newPromptIO(strings.NewReader("7\n1\n"), &out)
	assert.Equal(t, 0, p.Options("Info", "msg", []string{"Don't show this again", "OK"}, 1))

	p = newPromptIO(strings.NewReader("\n"), &out)
	assert.Equal(t, 1, p.Options("Info", "msg", []string{"Don't show this again", "OK"}, 1))

	p = newPromptIO(strings.NewReader(""), &out)
	assert.Equal(t, -1, p.Options("Info", "msg", []string{"a", "b"}, 1))
}

func TestNewPasswordRetriesOnMismatch(t *testing.T) {
	var out bytes.Buffer
	p := newPromptIO(strings.NewReader("pw1\npw2\npw123\npw123\n"), &out)

	password, ok := p.NewPassword("Encrypt Wallet")
	assert.True(t, ok)
	assert.Equal(t, "pw123", password)
	assert.Contains(t, out.String(), "Passwords do not match")
}

func TestPasswordEmptyCancels(t *testing.T) {
	var out bytes.Buffer
	p := newPromptIO(strings.NewReader("\n"), &out)

	_, ok := p.Password("Enter Wallet Password")
	assert.False(t, ok)
}

func TestSaveAndOpenFile(t *testing.T) {
	var out bytes.Buffer
	p := newPromptIO(strings.NewReader("backup1\nkeys1\n\n"), &out)

	name, ok := p.SaveFile("Back Up Wallet to File", "/home/u")
	assert.True(t, ok)
	assert.Equal(t, "backup1", name)

	path, ok := p.OpenFile("Import Private Keys from File", "/home/u")
	assert.True(t, ok)
	assert.Equal(t, "/home/u/keys1", path)

	_, ok = p.OpenFile("Import Private Keys from File", "/home/u")
	assert.False(t, ok)
}

func TestPrivateKey(t *testing.T) {
	var out bytes.Buffer
	p := newPromptIO(strings.NewReader("secret-extended-key-main1qqq\nn\n"), &out)

	key, rescan, ok := p.PrivateKey("Import Private Key")
	assert.True(t, ok)
	assert.False(t, rescan)
	assert.Equal(t, "secret-extended-key-main1qqq", key)
}
