package gui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/setavenger/zclwallet-desktop/internal/logging"
)

// Dialogs shows fyne dialogs and blocks the calling goroutine until the
// user answered. It must never be called from the fyne event goroutine.
type Dialogs struct {
	window    fyne.Window
	exportDir string
}

// NewDialogs creates the dialog adapter for window
func NewDialogs(window fyne.Window, exportDir string) *Dialogs {
	return &Dialogs{window: window, exportDir: exportDir}
}

func (d *Dialogs) showMessage(title, message string) {
	done := make(chan struct{})
	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord

	dlg := dialog.NewCustom(title, "OK", label, d.window)
	dlg.SetOnClosed(func() { close(done) })
	dlg.Resize(fyne.NewSize(560, 0))
	dlg.Show()
	<-done
}

func (d *Dialogs) Inform(title, message string) {
	d.showMessage(title, message)
}

func (d *Dialogs) Error(title, message string) {
	d.showMessage("⚠️ "+title, message)
}

func (d *Dialogs) Confirm(title, message string) bool {
	answer := make(chan bool, 1)
	dialog.ShowConfirm(title, message, func(ok bool) { answer <- ok }, d.window)
	return <-answer
}

func (d *Dialogs) Options(title, message string, options []string, defaultOption int) int {
	answer := make(chan int, 1)

	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord
	dlg := dialog.NewCustomWithoutButtons(title, label, d.window)

	buttons := make([]fyne.CanvasObject, 0, len(options))
	for i, opt := range options {
		btn := widget.NewButton(opt, func() {
			answer <- i
			dlg.Hide()
		})
		if i == defaultOption {
			btn.Importance = widget.HighImportance
		}
		buttons = append(buttons, btn)
	}
	dlg.SetButtons(buttons)
	dlg.Resize(fyne.NewSize(640, 0))
	dlg.Show()

	return <-answer
}

func (d *Dialogs) NewPassword(title string) (string, bool) {
	password := widget.NewPasswordEntry()
	password.Validator = func(s string) error {
		if s == "" {
			return errors.New("password must not be empty")
		}
		return nil
	}
	repeat := widget.NewPasswordEntry()
	repeat.Validator = func(s string) error {
		if s != password.Text {
			return errors.New("passwords do not match")
		}
		return nil
	}

	items := []*widget.FormItem{
		widget.NewFormItem("Password", password),
		widget.NewFormItem("Confirm password", repeat),
	}
	return d.passwordForm(title, items, password)
}

func (d *Dialogs) Password(title string) (string, bool) {
	password := widget.NewPasswordEntry()
	items := []*widget.FormItem{
		widget.NewFormItem("Wallet password", password),
	}
	return d.passwordForm(title, items, password)
}

func (d *Dialogs) passwordForm(title string, items []*widget.FormItem, password *widget.Entry) (string, bool) {
	answer := make(chan bool, 1)
	dlg := dialog.NewForm(title, "OK", "Cancel", items, func(ok bool) { answer <- ok }, d.window)
	dlg.Resize(fyne.NewSize(420, 0))
	dlg.Show()

	if !<-answer {
		return "", false
	}
	return password.Text, true
}

// SaveFile only asks for a file name, zcld writes into its own export directory
func (d *Dialogs) SaveFile(title, _ string) (string, bool) {
	answer := make(chan bool, 1)

	name := widget.NewEntry()
	name.SetPlaceHolder("e.g. wallet123")
	name.Validator = func(s string) error {
		if s == "" {
			return errors.New("file name must not be empty")
		}
		return nil
	}
	hint := widget.NewLabel(fmt.Sprintf("The file is written by zcld to %s", d.exportDir))
	hint.Wrapping = fyne.TextWrapWord

	items := []*widget.FormItem{
		widget.NewFormItem("File name", name),
		widget.NewFormItem("", hint),
	}
	dlg := dialog.NewForm(title, "Save", "Cancel", items, func(ok bool) { answer <- ok }, d.window)
	dlg.Resize(fyne.NewSize(480, 0))
	dlg.Show()

	if !<-answer {
		return "", false
	}
	return name.Text, true
}

// OpenFile uses the fyne file picker, which has a fixed title
func (d *Dialogs) OpenFile(_ string, startDir string) (string, bool) {
	type result struct {
		path string
		ok   bool
	}
	answer := make(chan result, 1)

	dlg := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			logging.L.Err(err).Msg("file open dialog failed")
			answer <- result{}
			return
		}
		if reader == nil {
			answer <- result{}
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		answer <- result{path: path, ok: true}
	}, d.window)

	if startDir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(startDir)); err == nil {
			dlg.SetLocation(lister)
		}
	}
	dlg.Show()

	res := <-answer
	return res.path, res.ok
}

func (d *Dialogs) PrivateKey(title string) (string, bool, bool) {
	answer := make(chan bool, 1)

	key := widget.NewPasswordEntry()
	key.SetPlaceHolder("WIF or shielded spending key")
	rescan := widget.NewCheck("Rescan the blockchain for transactions", nil)
	rescan.SetChecked(true)

	hint := widget.NewLabel("Rescanning can take several minutes.")
	hint.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(
		widget.NewLabel("Private key:"),
		key,
		rescan,
		hint,
	)
	dlg := dialog.NewCustomConfirm(title, "Import", "Cancel", content, func(ok bool) { answer <- ok }, d.window)
	dlg.Resize(fyne.NewSize(560, 0))
	dlg.Show()

	if !<-answer {
		return "", false, false
	}
	return key.Text, rescan.Checked, true
}
