package gui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type walletStatus struct {
	encrypted  bool
	err        error
	lastBackup time.Time
	backups    int
	remind     bool
}

type overviewTab struct {
	content         *fyne.Container
	daemonLabel     *widget.Label
	encryptionLabel *widget.Label
	backupLabel     *widget.Label
	reminderLabel   *widget.Label
}

func newOverviewTab() *overviewTab {
	t := &overviewTab{
		daemonLabel:     widget.NewLabel("zcld: connecting..."),
		encryptionLabel: widget.NewLabel("Encryption: unknown"),
		backupLabel:     widget.NewLabel("Last backup: unknown"),
		reminderLabel:   widget.NewLabel(""),
	}
	t.reminderLabel.TextStyle = fyne.TextStyle{Bold: true}
	t.reminderLabel.Wrapping = fyne.TextWrapWord
	t.reminderLabel.Hide()

	title := widget.NewLabel("Wallet Status")
	title.TextStyle = fyne.TextStyle{Bold: true}

	t.content = container.NewVBox(
		title,
		widget.NewSeparator(),
		t.daemonLabel,
		t.encryptionLabel,
		t.backupLabel,
		widget.NewSeparator(),
		t.reminderLabel,
	)
	return t
}

func (t *overviewTab) update(s walletStatus) {
	if s.err != nil {
		t.daemonLabel.SetText(fmt.Sprintf("zcld: not reachable (%v)", s.err))
		t.encryptionLabel.SetText("Encryption: unknown")
	} else {
		t.daemonLabel.SetText("zcld: running")
		if s.encrypted {
			t.encryptionLabel.SetText("Encryption: encrypted")
		} else {
			t.encryptionLabel.SetText("Encryption: not encrypted")
		}
	}

	if s.lastBackup.IsZero() {
		t.backupLabel.SetText("Last backup: never")
	} else {
		t.backupLabel.SetText(fmt.Sprintf("Last backup: %s (%d recorded)",
			s.lastBackup.Local().Format("2006-01-02 15:04"), s.backups))
	}

	if s.remind {
		t.reminderLabel.SetText("⚠️  Your wallet has no recent backup. Use Wallet >> Backup to create one.")
		t.reminderLabel.Show()
	} else {
		t.reminderLabel.Hide()
	}
}
